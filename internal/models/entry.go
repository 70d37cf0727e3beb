package models

import "path/filepath"

// EntryKind distinguishes files from directories in a tree walk.
type EntryKind int

const (
	// KindFile is any non-directory entry (regular file, device, socket...).
	KindFile EntryKind = iota
	// KindDirectory is a directory, including a symlink that resolves to one.
	KindDirectory
)

// String returns the string representation of EntryKind.
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// TreeEntry is a single node produced by a directory walk.
type TreeEntry struct {
	Path string    // Absolute path of the entry
	Kind EntryKind // File or directory
}

// Name returns the final path element of the entry.
func (e TreeEntry) Name() string {
	return filepath.Base(e.Path)
}

// IsDir reports whether the entry is a directory.
func (e TreeEntry) IsDir() bool {
	return e.Kind == KindDirectory
}

// SearchMode selects which kind of entry a search matches against.
type SearchMode int

const (
	// SearchFiles matches file names only.
	SearchFiles SearchMode = iota
	// SearchFolders matches directory names only.
	SearchFolders
)

// String returns the string representation of SearchMode.
func (m SearchMode) String() string {
	switch m {
	case SearchFiles:
		return "file"
	case SearchFolders:
		return "folder"
	default:
		return "unknown"
	}
}

// MatchSet is the ordered list of absolute paths a search matched.
// Order is traversal order; it is never sorted after the fact.
type MatchSet []string

// Len returns the number of matches.
func (m MatchSet) Len() int {
	return len(m)
}

// IsEmpty reports whether the search found nothing.
func (m MatchSet) IsEmpty() bool {
	return len(m) == 0
}
