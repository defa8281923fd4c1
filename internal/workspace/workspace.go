// Package workspace resolves the base directory that generated files are
// written into. Roots come from configuration; narrowing down to a
// subdirectory happens through an interactive picker.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hsolberg/plume/internal/scaffold"
)

// Picker presents a single-choice list and reports the chosen index, or
// ok=false when the user dismissed it.
type Picker interface {
	Pick(message string, choices []string) (index int, ok bool)
}

// Roots returns the configured workspace roots that actually exist on disk.
// Missing roots are dropped; any other stat failure is surfaced. Returns
// scaffold.ErrNoWorkspace when no root exists.
func Roots(configured []string) ([]string, error) {
	var roots []string
	for _, root := range configured {
		info, err := os.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("checking root %s: %w", root, err)
		}
		if info.IsDir() {
			roots = append(roots, root)
		}
	}
	if len(roots) == 0 {
		return nil, scaffold.ErrNoWorkspace
	}
	return roots, nil
}

// ListSubdirs returns the immediate subdirectories of dir, sorted by name.
// Hidden directories are skipped. Listing failures are surfaced, not retried.
func ListSubdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() && entry.Name()[0] != '.' {
			subdirs = append(subdirs, entry.Name())
		}
	}
	sort.Strings(subdirs)
	return subdirs, nil
}

// pickRoot returns the sole root directly, or asks the picker to choose one
// by name when there is more than one.
func pickRoot(roots []string, picker Picker) (string, error) {
	if len(roots) == 1 {
		return roots[0], nil
	}

	names := make([]string, len(roots))
	for i, root := range roots {
		names[i] = filepath.Base(root)
	}

	idx, ok := picker.Pick("Workspace folder", names)
	if !ok {
		return "", scaffold.ErrCancelled
	}
	return roots[idx], nil
}
