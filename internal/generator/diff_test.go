package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff_Identical(t *testing.T) {
	content := []byte("line one\nline two\n")
	assert.Empty(t, Diff("Foo.hpp", content, content))
}

func TestDiff_ShowsChanges(t *testing.T) {
	old := []byte("#pragma once\n\nclass Foo {\n};\n")
	newer := []byte("#pragma once\n\nclass Bar {\n};\n")

	diff := Diff("Foo.hpp", old, newer)

	assert.Contains(t, diff, "Foo.hpp")
	assert.Contains(t, diff, "class Foo {")
	assert.Contains(t, diff, "class Bar {")
	// Shared lines appear once, changed lines appear on both sides.
	assert.Equal(t, 1, strings.Count(diff, "#pragma once"))
}

func TestDiff_AdditionsAndRemovals(t *testing.T) {
	old := []byte("a\nb\n")
	newer := []byte("a\nb\nc\n")

	diff := Diff("x", old, newer)
	assert.Contains(t, diff, "c")

	diff = Diff("x", newer, old)
	assert.Contains(t, diff, "c")
}

func TestEditScript_MinimalEdits(t *testing.T) {
	edits := editScript([]string{"a", "b", "c"}, []string{"a", "x", "c"})

	var kinds []editKind
	for _, e := range edits {
		kinds = append(kinds, e.kind)
	}
	assert.Equal(t, []editKind{editKeep, editRemove, editAdd, editKeep}, kinds)
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb"))
}
