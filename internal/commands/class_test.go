package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hsolberg/plume/internal/scaffold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePrompter serves canned answers keyed by prompt message substrings.
// Prompts without an answer report cancellation. Confirms answer their
// default unless dismissConfirm is set.
type fakePrompter struct {
	answers        map[string]string
	picks          map[string]int
	dismissConfirm bool
}

func (f *fakePrompter) Input(message, defaultValue string) (string, bool) {
	for key, v := range f.answers {
		if strings.Contains(message, key) {
			return v, true
		}
	}
	return "", false
}

func (f *fakePrompter) Confirm(message string, defaultYes bool) (bool, bool) {
	if f.dismissConfirm {
		return false, false
	}
	return defaultYes, true
}

func (f *fakePrompter) Pick(message string, choices []string) (int, bool) {
	for key, v := range f.picks {
		if strings.Contains(message, key) {
			return v, true
		}
	}
	return 0, false
}

// noWrites asserts that no generated class files exist under dir.
func noWrites(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".hpp") || strings.HasSuffix(e.Name(), ".cpp") {
			t.Errorf("unexpected generated file: %s", e.Name())
		}
	}
}

func TestRunClass_Unified(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	prompter := &fakePrompter{answers: map[string]string{
		"Author":  "Jane",
		"Project": "Nebula",
	}}

	err := runClass(classOptions{
		name:      "Foo",
		dir:       ".",
		namespace: "a::b",
		nsSet:     true,
		splitSet:  true, // unified
	}, prompter)
	require.NoError(t, err)

	header, err := os.ReadFile("Foo.hpp")
	require.NoError(t, err)
	source, err := os.ReadFile("Foo.cpp")
	require.NoError(t, err)

	assert.Contains(t, string(header), "namespace a {")
	assert.Contains(t, string(header), "#pragma once")
	assert.Contains(t, string(header), "Copyright (c) 2026 Jane")
	assert.Contains(t, string(source), `#include "Foo.hpp"`)

	// The notice was persisted alongside the generated files.
	_, err = os.Stat(scaffold.NoticeFileName)
	assert.NoError(t, err)
}

func TestRunClass_Split(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	prompter := &fakePrompter{answers: map[string]string{
		"Author":  "Jane",
		"Project": "Nebula",
	}}

	err := runClass(classOptions{
		name:      "Foo",
		dir:       ".",
		nsSet:     true,
		split:     true,
		splitSet:  true,
		headerDir: "include",
		sourceDir: "src",
	}, prompter)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join("include", "Foo.hpp"))
	require.NoError(t, err)

	source, err := os.ReadFile(filepath.Join("src", "Foo.cpp"))
	require.NoError(t, err)
	assert.Contains(t, string(source), `#include "../include/Foo.hpp"`)
}

func TestRunClass_CancelledAtClassName(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	// Notice already exists, so the first prompt is the class name -
	// which the fake dismisses.
	require.NoError(t, os.WriteFile(scaffold.NoticeFileName, []byte("/* n */\n"), 0644))

	err := runClass(classOptions{dir: "."}, &fakePrompter{})
	assert.ErrorIs(t, err, scaffold.ErrCancelled)
	noWrites(t, dir)
}

func TestRunClass_EmptyClassName(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(scaffold.NoticeFileName, []byte("/* n */\n"), 0644))

	prompter := &fakePrompter{answers: map[string]string{"Class name": ""}}
	err := runClass(classOptions{dir: "."}, prompter)
	assert.ErrorIs(t, err, scaffold.ErrMissingInput)
	noWrites(t, dir)
}

func TestRunClass_CancelledAtPlacement(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(scaffold.NoticeFileName, []byte("/* n */\n"), 0644))

	// The split/unified confirm is dismissed. The command must end there,
	// before rendering, with nothing on disk.
	err := runClass(classOptions{
		name:  "Foo",
		dir:   ".",
		nsSet: true,
	}, &fakePrompter{dismissConfirm: true})
	assert.ErrorIs(t, err, scaffold.ErrCancelled)
	noWrites(t, dir)
}

func TestRunClass_CancelledAtNotice(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	// No notice and the author prompt is dismissed: the command ends
	// before anything else is asked or written.
	err := runClass(classOptions{name: "Foo", dir: "."}, &fakePrompter{})
	assert.ErrorIs(t, err, scaffold.ErrMissingInput)
	noWrites(t, dir)

	_, statErr := os.Stat(scaffold.NoticeFileName)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunClass_DryRun(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(scaffold.NoticeFileName, []byte("/* n */\n"), 0644))

	err := runClass(classOptions{
		name:     "Foo",
		dir:      ".",
		nsSet:    true,
		splitSet: true,
		dryRun:   true,
	}, &fakePrompter{})
	require.NoError(t, err)
	noWrites(t, dir)
}

func TestRunClass_SkipKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(scaffold.NoticeFileName, []byte("/* n */\n"), 0644))
	require.NoError(t, os.WriteFile("Foo.hpp", []byte("// my edits\n"), 0644))

	err := runClass(classOptions{
		name:     "Foo",
		dir:      ".",
		nsSet:    true,
		splitSet: true,
		skip:     true,
	}, &fakePrompter{})
	require.NoError(t, err)

	// Existing header kept, fresh source still written.
	header, err := os.ReadFile("Foo.hpp")
	require.NoError(t, err)
	assert.Equal(t, "// my edits\n", string(header))

	_, err = os.Stat("Foo.cpp")
	assert.NoError(t, err)
}

func TestRunClass_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(scaffold.NoticeFileName, []byte("/* n */\n"), 0644))
	require.NoError(t, os.WriteFile("Foo.hpp", []byte("// my edits\n"), 0644))

	err := runClass(classOptions{
		name:     "Foo",
		dir:      ".",
		nsSet:    true,
		splitSet: true,
		force:    true,
	}, &fakePrompter{})
	require.NoError(t, err)

	header, err := os.ReadFile("Foo.hpp")
	require.NoError(t, err)
	assert.Contains(t, string(header), "class Foo {")
}

func TestRunClass_ConflictingFlags(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	err := runClass(classOptions{name: "Foo", dir: ".", force: true, skip: true}, &fakePrompter{})
	assert.Error(t, err)
	noWrites(t, dir)
}
