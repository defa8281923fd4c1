package generator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hsolberg/plume/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_CommitWritesAll(t *testing.T) {
	dir := t.TempDir()

	tx := generator.NewTransaction()
	tx.StageFile(filepath.Join(dir, "plume.yml"), []byte("workspace:\n"), 0644)
	tx.StageFile(filepath.Join(dir, "COPYRIGHT.txt"), []byte("/* notice */\n"), 0644)

	require.NoError(t, tx.Commit())

	for _, name := range []string{"plume.yml", "COPYRIGHT.txt"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "%s should exist after commit", name)
	}
}

func TestTransaction_FailureRollsBack(t *testing.T) {
	dir := t.TempDir()

	// Second write fails: its parent "parent" is a regular file, so
	// MkdirAll cannot create the directory.
	blocker := filepath.Join(dir, "parent")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	first := filepath.Join(dir, "first.txt")
	tx := generator.NewTransaction()
	tx.StageFile(first, []byte("a"), 0644)
	tx.StageFile(filepath.Join(blocker, "second.txt"), []byte("b"), 0644)

	err := tx.Commit()
	require.Error(t, err)

	_, statErr := os.Stat(first)
	assert.True(t, os.IsNotExist(statErr), "first file should be rolled back")
}

func TestTransaction_DoubleCommit(t *testing.T) {
	tx := generator.NewTransaction()
	require.NoError(t, tx.Commit())
	assert.Error(t, tx.Commit())
}

func TestTransaction_RollbackBeforeCommit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")

	tx := generator.NewTransaction()
	tx.StageFile(path, []byte("x"), 0644)
	require.NoError(t, tx.Commit())

	// Rollback after a successful commit is a no-op.
	tx.Rollback()
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
