// Package fileutil locates files and folders by exact name under a project root.
//
// The package has two layers:
//
//   - Walker performs a depth-first traversal with an explicit frame stack, so
//     deep trees do not grow the goroutine stack. Each directory's children are
//     visited in the order os.ReadDir returns them (sorted by name), and a
//     subdirectory is descended into as soon as it is reached, before its later
//     siblings. The walk is exposed as an iter.Seq and re-reads the disk every
//     time it is ranged over.
//
//   - Search drives a Walker and applies an exact, case-sensitive name
//     predicate (file name or directory name, never both) to every entry,
//     returning the matches in traversal order.
//
// # Error Tolerance
//
// A directory that cannot be listed, or an entry that cannot be stat-ed, is
// reported as a *models.AccessError and treated as having no children. The
// walk carries on with the remaining siblings, so one unreadable subtree never
// hides matches elsewhere in the tree. Diagnostics are collected in
// SearchResult.Errors and, when SearchOptions.OnError is set, delivered as
// they happen.
//
// Symlinks are followed. A directory that resolves to one of its own
// ancestors is reported with Op "cycle" and not entered.
//
// # Usage
//
//	result, err := fileutil.Search(root, "config.yaml", models.SearchFiles, fileutil.SearchOptions{})
//	if err != nil {
//	    return err
//	}
//	for _, path := range result.Matches {
//	    fmt.Println(path)
//	}
package fileutil
