package runlock_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/UoEMainLibrary/dspace-additions/internal/runlock"
)

func TestAcquireIsExclusive(t *testing.T) {
	store := filepath.Join(t.TempDir(), "repository.db")

	first, err := runlock.Acquire(store)
	if err != nil {
		t.Fatalf("first Acquire: %v", err)
	}
	if first.Path() != store+".lock" {
		t.Fatalf("unexpected lock path %q", first.Path())
	}

	if _, err := runlock.Acquire(store); !errors.Is(err, runlock.ErrLocked) {
		t.Fatalf("expected ErrLocked while held, got %v", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	again, err := runlock.Acquire(store)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	defer again.Release()
}

func TestReleaseNilLock(t *testing.T) {
	var l *runlock.Lock
	if err := l.Release(); err != nil {
		t.Fatalf("expected nil release to succeed, got %v", err)
	}
}
