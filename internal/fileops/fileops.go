package fileops

import (
	"errors"
	"os"

	"github.com/harrison/filechecker/internal/models"
)

// ErrIsDirectory is the cause of an IOError raised when a file operation is
// pointed at a directory.
var ErrIsDirectory = errors.New("is a directory")

// ReadText returns the whole content of the file at path.
func ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", models.NewIOError("read", path, err)
	}
	if info.IsDir() {
		return "", models.NewIOError("read", path, ErrIsDirectory)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", models.NewIOError("read", path, err)
	}
	return string(data), nil
}

// WriteText truncates the file at path and writes content in place.
// There is no temp-file-and-rename step: see Writer for that.
func WriteText(path, content string) error {
	return models.NewIOError("write", path, os.WriteFile(path, []byte(content), 0644))
}

// DeleteFile removes a single file. A missing path is an error, and so is a
// directory (use DeleteTree for folders).
func DeleteFile(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return models.NewIOError("delete", path, err)
	}
	if info.IsDir() {
		return models.NewIOError("delete", path, ErrIsDirectory)
	}
	return models.NewIOError("delete", path, os.Remove(path))
}

// DeleteTree removes path and everything below it. A missing path is a no-op.
func DeleteTree(path string) error {
	if _, err := os.Lstat(path); os.IsNotExist(err) {
		return nil
	}
	return models.NewIOError("delete", path, os.RemoveAll(path))
}

// Writer persists text with optional safety measures. The zero value
// behaves exactly like WriteText.
type Writer struct {
	// Atomic writes through a temp file in the same directory and renames it
	// over the target.
	Atomic bool
	// Lock holds an exclusive flock on "<path>.lock" for the duration of the
	// write. The lock file stays on disk; removing it would let a waiter and a
	// newcomer lock different inodes.
	Lock bool
}

// Write stores content at path according to the Writer's options.
func (w Writer) Write(path, content string) error {
	if w.Lock {
		lock := NewFileLock(lockPathFor(path))
		if err := lock.Lock(); err != nil {
			return models.NewIOError("lock", path, err)
		}
		defer lock.Unlock()
	}

	if w.Atomic {
		return models.NewIOError("write", path, AtomicWrite(path, []byte(content)))
	}
	return WriteText(path, content)
}
