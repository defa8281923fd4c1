package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/hsolberg/plume/internal/scaffold"
)

// Mode names for StrategyFor, matching the workspace.mode config values.
const (
	ModeFixed  = "fixed"  // root only, no narrowing
	ModeNarrow = "narrow" // root, then one level of subdirectories
)

// currentFolderChoice is the sentinel prepended to the subfolder list.
const currentFolderChoice = ". (use this folder)"

// Strategy resolves the base folder for generated files.
// Selection never creates directories; it only lists existing ones.
type Strategy interface {
	Select() (string, error)
}

// StrategyFor maps a configured mode name to a strategy.
func StrategyFor(mode string, roots []string, picker Picker) (Strategy, error) {
	switch mode {
	case ModeFixed, "":
		return &FixedStrategy{Roots: roots, Picker: picker}, nil
	case ModeNarrow:
		return &NarrowingStrategy{Roots: roots, Picker: picker}, nil
	default:
		return nil, fmt.Errorf("unknown workspace mode %q", mode)
	}
}

// FixedStrategy returns the workspace root itself: the sole root directly,
// or one picked by name when several are configured.
type FixedStrategy struct {
	Roots  []string
	Picker Picker
}

func (s *FixedStrategy) Select() (string, error) {
	roots, err := Roots(s.Roots)
	if err != nil {
		return "", err
	}
	return pickRoot(roots, s.Picker)
}

// NarrowingStrategy picks a root, then offers its immediate subdirectories
// with a "use this folder" sentinel first. Choosing the sentinel returns the
// root itself.
type NarrowingStrategy struct {
	Roots  []string
	Picker Picker
}

func (s *NarrowingStrategy) Select() (string, error) {
	roots, err := Roots(s.Roots)
	if err != nil {
		return "", err
	}

	root, err := pickRoot(roots, s.Picker)
	if err != nil {
		return "", err
	}

	subdirs, err := ListSubdirs(root)
	if err != nil {
		return "", err
	}
	if len(subdirs) == 0 {
		return root, nil
	}

	choices := append([]string{currentFolderChoice}, subdirs...)
	idx, ok := s.Picker.Pick("Target folder", choices)
	if !ok {
		return "", scaffold.ErrCancelled
	}
	if idx == 0 {
		return root, nil
	}
	return filepath.Join(root, subdirs[idx-1]), nil
}
