package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

// Transaction stages file writes and commits them as a unit.
// If any write fails, files written so far are removed again.
//
// Used by `plume init`, where a half-initialized project is worse than none.
// Class generation deliberately does not use it: a surviving sibling file is
// useful output there.
type Transaction struct {
	staged    []stagedFile
	committed bool
}

type stagedFile struct {
	path    string
	content []byte
	mode    os.FileMode
}

// NewTransaction creates an empty write transaction.
func NewTransaction() *Transaction {
	return &Transaction{}
}

// StageFile records a pending file write. Nothing touches the disk yet.
func (t *Transaction) StageFile(path string, content []byte, mode os.FileMode) {
	t.staged = append(t.staged, stagedFile{path: path, content: content, mode: mode})
}

// Commit writes all staged files. On the first failure it deletes the files
// already written and returns the error.
func (t *Transaction) Commit() error {
	if t.committed {
		return fmt.Errorf("transaction already committed")
	}

	written := make([]string, 0, len(t.staged))

	for _, f := range t.staged {
		if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
			t.remove(written)
			return fmt.Errorf("failed to create directory for %s: %w", f.path, err)
		}

		if err := os.WriteFile(f.path, f.content, f.mode); err != nil {
			t.remove(written)
			return fmt.Errorf("failed to write %s: %w", f.path, err)
		}

		written = append(written, f.path)
	}

	t.committed = true
	return nil
}

// Rollback removes any staged files that made it to disk.
// Safe to call in a defer; a no-op after a successful Commit.
func (t *Transaction) Rollback() {
	if t.committed {
		return
	}
	paths := make([]string, 0, len(t.staged))
	for _, f := range t.staged {
		if _, err := os.Stat(f.path); err == nil {
			paths = append(paths, f.path)
		}
	}
	t.remove(paths)
}

func (t *Transaction) remove(paths []string) {
	for _, path := range paths {
		os.Remove(path) // Best effort
	}
}
