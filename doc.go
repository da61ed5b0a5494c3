// Package pathfilter decides whether filesystem paths should be kept based on
// include and exclude pattern lists.
//
// It is the filtering core of a file-collection pipeline: a traversal layer
// discovers candidate paths and asks this package, once per path, whether the
// path belongs in the output.
//
// Each include pattern is tried under three rules, in order:
//
//   - glob syntax ("*", "?", "[...]", "**") matched against the canonical
//     absolute form of the path; "*" crosses directory boundaries
//   - if the pattern ends in "*", the literal prefix before the "*" matched
//     against the start of the path's base name
//   - exact equality with the path's base name
//
// Exclude patterns use the glob rule only. When a path is matched by both
// lists, the include-priority flag decides; when the include list is empty,
// every path the exclude list does not reject is kept. A path that cannot be
// resolved is always excluded.
package pathfilter
