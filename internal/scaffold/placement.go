package scaffold

import (
	"path/filepath"
)

// Placement decides where the two generated files live. Header and source
// either share one directory (unified) or live in separate ones (split),
// which also determines the include directive the source file uses.
type Placement struct {
	HeaderDir string
	SourceDir string
}

// UnifiedPlacement puts the header and source in the same directory.
func UnifiedPlacement(dir string) Placement {
	return Placement{HeaderDir: dir, SourceDir: dir}
}

// SplitPlacement puts the header and source in separate directories.
func SplitPlacement(headerDir, sourceDir string) Placement {
	return Placement{HeaderDir: headerDir, SourceDir: sourceDir}
}

// Unified reports whether both files share a directory.
func (p Placement) Unified() bool {
	return filepath.Clean(p.HeaderDir) == filepath.Clean(p.SourceDir)
}

// HeaderPath returns the full path of the header file.
func (p Placement) HeaderPath(fileName string) string {
	return filepath.Join(p.HeaderDir, fileName)
}

// SourcePath returns the full path of the source file.
func (p Placement) SourcePath(fileName string) string {
	return filepath.Join(p.SourceDir, fileName)
}

// IncludeDirective computes the #include line the source file uses to reach
// its header.
//
// Policy: the real relative path from the source directory to the header
// directory, with separators normalized to forward slashes. Unified
// placement (and any case where the relative path degenerates) yields a
// bare `#include "Name.hpp"`. String heuristics such as stripping a leading
// "include/" are deliberately not used.
func (p Placement) IncludeDirective(headerFileName string) string {
	if p.Unified() {
		return `#include "` + headerFileName + `"`
	}

	rel, err := filepath.Rel(p.SourceDir, p.HeaderDir)
	if err != nil || rel == "." || rel == "" {
		return `#include "` + headerFileName + `"`
	}

	return `#include "` + filepath.ToSlash(rel) + "/" + headerFileName + `"`
}
