package generator_test

import (
	"testing"

	"github.com/hsolberg/plume/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolver_FlagConflicts(t *testing.T) {
	_, err := generator.NewResolver(true, true, false)
	assert.Error(t, err, "--force with --skip must be rejected")

	_, err = generator.NewResolver(true, false, true)
	assert.Error(t, err, "--force with --diff must be rejected")

	_, err = generator.NewResolver(false, true, true)
	assert.NoError(t, err, "--skip with --diff is allowed")
}

func TestForceStrategy(t *testing.T) {
	resolver, err := generator.NewResolver(true, false, false)
	require.NoError(t, err)

	res, err := resolver.ResolveConflict("Foo.hpp", []byte("old"), []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, generator.Overwrite, res)
}

func TestSkipStrategy(t *testing.T) {
	resolver, err := generator.NewResolver(false, true, false)
	require.NoError(t, err)

	res, err := resolver.ResolveConflict("Foo.hpp", []byte("old"), []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, generator.Skip, res)
}

// The diff and interactive strategies need a terminal; they are exercised
// manually.
