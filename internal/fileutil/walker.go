package fileutil

import (
	"iter"
	"os"
	"path/filepath"

	"github.com/harrison/filechecker/internal/models"
)

// frame is one directory on the walk stack together with the position of the
// next child to visit.
type frame struct {
	dir   string
	info  os.FileInfo
	names []string
	next  int
}

// Walker traverses a directory tree depth-first.
// A Walker is not safe for concurrent use.
type Walker struct {
	// OnError, if set, is called for every access failure as it happens.
	OnError func(*models.AccessError)

	errors  []error
	visited int
}

// NewWalker creates a Walker with no error callback.
func NewWalker() *Walker {
	return &Walker{}
}

// Errors returns the access failures recorded by the most recent walk.
func (w *Walker) Errors() []error {
	return w.errors
}

// Visited returns the number of entries yielded by the most recent walk.
func (w *Walker) Visited() int {
	return w.visited
}

// Walk returns a lazy sequence of every entry below root. The root itself is
// not yielded. Stopping the range loop early stops the walk.
func (w *Walker) Walk(root string) iter.Seq[models.TreeEntry] {
	return func(yield func(models.TreeEntry) bool) {
		w.errors = nil
		w.visited = 0

		absRoot, err := filepath.Abs(root)
		if err != nil {
			w.report(&models.AccessError{Op: "list", Path: root, Err: err})
			return
		}
		rootInfo, err := os.Stat(absRoot)
		if err != nil {
			w.report(&models.AccessError{Op: "list", Path: absRoot, Err: err})
			return
		}

		stack := []*frame{w.open(absRoot, rootInfo)}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.next >= len(top.names) {
				stack = stack[:len(stack)-1]
				continue
			}

			name := top.names[top.next]
			top.next++
			path := filepath.Join(top.dir, name)

			// Stat, not Lstat: symlinked directories are walked like real ones.
			info, err := os.Stat(path)
			if err != nil {
				w.report(&models.AccessError{Op: "stat", Path: path, Err: err})
				continue
			}

			if !info.IsDir() {
				w.visited++
				if !yield(models.TreeEntry{Path: path, Kind: models.KindFile}) {
					return
				}
				continue
			}

			w.visited++
			if !yield(models.TreeEntry{Path: path, Kind: models.KindDirectory}) {
				return
			}

			if onStack(stack, info) {
				w.report(&models.AccessError{Op: "cycle", Path: path})
				continue
			}
			stack = append(stack, w.open(path, info))
		}
	}
}

// open lists dir. A listing failure yields a frame with no children.
func (w *Walker) open(dir string, info os.FileInfo) *frame {
	f := &frame{dir: dir, info: info}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.report(&models.AccessError{Op: "list", Path: dir, Err: err})
		return f
	}

	f.names = make([]string, 0, len(entries))
	for _, entry := range entries {
		f.names = append(f.names, entry.Name())
	}
	return f
}

func (w *Walker) report(err *models.AccessError) {
	w.errors = append(w.errors, err)
	if w.OnError != nil {
		w.OnError(err)
	}
}

// onStack reports whether info is the same directory as any frame on the stack.
func onStack(stack []*frame, info os.FileInfo) bool {
	for _, f := range stack {
		if f.info != nil && os.SameFile(f.info, info) {
			return true
		}
	}
	return false
}
