package pathfilter

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FilterPaths runs the filter over an already-discovered list of paths with
// up to workers concurrent checks, returning the kept paths in input order.
// Each check is a pure function of the path and the filter, so the fan-out
// needs no coordination; the only error source is context cancellation.
func (f *Filter) FilterPaths(ctx context.Context, paths []string, workers int) ([]string, error) {
	if workers < 1 {
		workers = 1
	}

	keep := make([]bool, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			keep[i] = f.ShouldInclude(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(paths))
	for i, path := range paths {
		if keep[i] {
			kept = append(kept, path)
		}
	}

	return kept, nil
}
