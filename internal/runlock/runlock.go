// Package runlock keeps two curation runs from working on the same store at
// once.
package runlock

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrLocked reports that another run holds the lock.
var ErrLocked = errors.New("another curate run is using this store")

// Lock is an exclusive advisory lock next to the store file.
type Lock struct {
	path string
	lock *flock.Flock
}

// PathFor returns the lock file used for storePath.
func PathFor(storePath string) string {
	return storePath + ".lock"
}

// Acquire takes the lock for storePath without waiting.
func Acquire(storePath string) (*Lock, error) {
	path := PathFor(storePath)
	l := &Lock{path: path, lock: flock.New(path)}
	ok, err := l.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock file %s)", ErrLocked, path)
	}
	return l, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks. Releasing a nil lock is a no-op.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
