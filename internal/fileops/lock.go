// Package fileops is the persistence layer for selected paths: whole-file
// text reads and writes, single-file deletion and recursive deletion.
//
// WriteText overwrites the target in place. A crash in the middle of the
// write can leave the file truncated or partially written. Callers that want
// protection opt in through Writer, which can write through a temp file and
// rename (AtomicWrite) and can hold an advisory flock while doing so.
package fileops

import (
	"fmt"

	"github.com/gofrs/flock"
)

// FileLock wraps a flock file lock for coordinating writers across processes.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a new file lock for the given path.
// The lock file is created on first Lock.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Path returns the lock file path.
func (fl *FileLock) Path() string {
	return fl.path
}

// Lock acquires an exclusive lock on the file, blocking until the lock is available.
func (fl *FileLock) Lock() error {
	if err := fl.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// lockPathFor derives the lock file for a target: "notes.txt" -> "notes.txt.lock".
func lockPathFor(path string) string {
	return path + ".lock"
}
