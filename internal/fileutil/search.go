package fileutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/harrison/filechecker/internal/models"
)

// SearchOptions configures a name search.
type SearchOptions struct {
	// OnError is called for each traversal diagnostic as it is encountered.
	OnError func(*models.AccessError)
}

// SearchResult contains the results of a name search
type SearchResult struct {
	// Matches holds absolute paths in the order the walk reached them
	Matches models.MatchSet
	// Errors contains the non-fatal access failures seen during the walk
	Errors []error
	// Visited is the number of entries examined
	Visited int
}

// MatchesFileName reports whether entry is a file named exactly target.
func MatchesFileName(entry models.TreeEntry, target string) bool {
	return !entry.IsDir() && entry.Name() == target
}

// MatchesDirName reports whether entry is a directory named exactly target.
func MatchesDirName(entry models.TreeEntry, target string) bool {
	return entry.IsDir() && entry.Name() == target
}

// predicateFor returns the name predicate for mode.
func predicateFor(mode models.SearchMode) (func(models.TreeEntry, string) bool, error) {
	switch mode {
	case models.SearchFiles:
		return MatchesFileName, nil
	case models.SearchFolders:
		return MatchesDirName, nil
	default:
		return nil, fmt.Errorf("unknown search mode %d", mode)
	}
}

// Search walks root and returns every entry whose name equals target under
// the predicate selected by mode. An empty MatchSet is a valid result.
// Errors are returned only for a blank target, an unknown mode, or a root
// that is not a directory; failures below the root end up in Result.Errors.
func Search(root, target string, mode models.SearchMode, opts SearchOptions) (*SearchResult, error) {
	if strings.TrimSpace(target) == "" {
		return nil, &models.EmptyInputError{Field: mode.String() + " name"}
	}

	matches, err := predicateFor(mode)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	walker := NewWalker()
	walker.OnError = opts.OnError

	result := &SearchResult{
		Matches: make(models.MatchSet, 0),
	}
	for entry := range walker.Walk(root) {
		if matches(entry, target) {
			result.Matches = append(result.Matches, entry.Path)
		}
	}

	result.Errors = walker.Errors()
	result.Visited = walker.Visited()
	return result, nil
}
