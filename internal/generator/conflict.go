package generator

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConflictResolution is the decision for a generated file that already exists.
type ConflictResolution int

const (
	Skip ConflictResolution = iota
	Overwrite
	ShowDiff
	Cancel
)

// ConflictStrategy decides what happens to an existing file.
type ConflictStrategy interface {
	Resolve(path string, existing, generated []byte) (ConflictResolution, error)
}

// Resolver adjudicates conflicts between generated files and files already
// on disk, using the strategy selected by command-line flags.
type Resolver struct {
	strategy ConflictStrategy
}

var (
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	choiceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
	viewportTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
)

// NewResolver creates a conflict resolver for the given flags.
// --force cannot be combined with --skip or --diff.
func NewResolver(force, skip, diff bool) (*Resolver, error) {
	if force && (skip || diff) {
		return nil, fmt.Errorf("--force cannot be combined with --skip or --diff")
	}

	var strategy ConflictStrategy
	switch {
	case force:
		strategy = &ForceStrategy{}
	case skip:
		strategy = &SkipStrategy{}
	case diff:
		strategy = &DiffStrategy{}
	default:
		strategy = &InteractiveStrategy{}
	}

	return &Resolver{strategy: strategy}, nil
}

// ResolveConflict returns the decision for an existing file.
func (r *Resolver) ResolveConflict(path string, existing, generated []byte) (ConflictResolution, error) {
	return r.strategy.Resolve(path, existing, generated)
}

// ForceStrategy always overwrites.
type ForceStrategy struct{}

func (s *ForceStrategy) Resolve(path string, existing, generated []byte) (ConflictResolution, error) {
	return Overwrite, nil
}

// SkipStrategy always keeps the existing file.
type SkipStrategy struct{}

func (s *SkipStrategy) Resolve(path string, existing, generated []byte) (ConflictResolution, error) {
	return Skip, nil
}

// DiffStrategy shows the diff, then hands over to the interactive menu.
type DiffStrategy struct{}

func (s *DiffStrategy) Resolve(path string, existing, generated []byte) (ConflictResolution, error) {
	diff := Diff(path, existing, generated)

	if strings.Count(diff, "\n") > 20 {
		model := newDiffViewerModel(path, diff)
		p := tea.NewProgram(model, tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return Cancel, fmt.Errorf("failed to show diff: %w", err)
		}
		if finalModel.(diffViewerModel).cancelled {
			return Cancel, nil
		}
	} else {
		fmt.Println(diff)
	}

	interactive := &InteractiveStrategy{}
	return interactive.Resolve(path, existing, generated)
}

// InteractiveStrategy shows a menu with keyboard navigation. Choosing
// "Show diff" displays the diff and brings the menu back, so the user can
// review it as often as needed before deciding.
type InteractiveStrategy struct{}

func (s *InteractiveStrategy) Resolve(path string, existing, generated []byte) (ConflictResolution, error) {
	fileInfo, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return Cancel, fmt.Errorf("failed to stat file: %w", err)
	}

	model := newConflictMenuModel(path, fileInfo)
	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return Cancel, fmt.Errorf("failed to show menu: %w", err)
	}

	result := finalModel.(conflictMenuModel)
	if result.selected == nil {
		return Cancel, nil
	}

	if *result.selected == ShowDiff {
		diffStrategy := &DiffStrategy{}
		return diffStrategy.Resolve(path, existing, generated)
	}

	return *result.selected, nil
}

// conflictMenuModel is the BubbleTea model for the conflict menu.
type conflictMenuModel struct {
	path     string
	fileInfo os.FileInfo
	choices  []string
	cursor   int
	selected *ConflictResolution
}

func newConflictMenuModel(path string, fileInfo os.FileInfo) conflictMenuModel {
	return conflictMenuModel{
		path:     path,
		fileInfo: fileInfo,
		choices: []string{
			"Show diff and decide",
			"Keep the existing file",
			"Overwrite with generated code",
			"Abort",
		},
	}
}

func (m conflictMenuModel) Init() tea.Cmd {
	return nil
}

func (m conflictMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}

		case "enter":
			resolution := [...]ConflictResolution{ShowDiff, Skip, Overwrite, Cancel}[m.cursor]
			m.selected = &resolution
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m conflictMenuModel) View() string {
	var b strings.Builder

	b.WriteString(warningStyle.Render("⚠️  File already exists: ") + titleStyle.Render(m.path) + "\n")

	if m.fileInfo != nil {
		b.WriteString(dimStyle.Render("    Last modified: ") + formatRelativeTime(m.fileInfo.ModTime()) + "\n")
		b.WriteString(dimStyle.Render("    Size: ") + formatFileSize(m.fileInfo.Size()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("    [↑/↓] Navigate    [Enter] Select    [q] Abort") + "\n\n")

	for i, choice := range m.choices {
		if m.cursor == i {
			b.WriteString("    " + choiceStyle.Render("> "+choice) + "\n")
		} else {
			b.WriteString("      " + choice + "\n")
		}
	}

	return b.String()
}

// diffViewerModel shows a long diff in a scrollable full-screen viewport.
type diffViewerModel struct {
	path      string
	diff      string
	viewport  viewport.Model
	ready     bool
	cancelled bool
}

func newDiffViewerModel(path, diff string) diffViewerModel {
	return diffViewerModel{path: path, diff: diff}
}

func (m diffViewerModel) Init() tea.Cmd {
	return nil
}

func (m diffViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case "q", "esc", "enter":
			return m, tea.Quit

		case "up", "k":
			m.viewport.LineUp(1)

		case "down", "j":
			m.viewport.LineDown(1)

		case "pgup", "b":
			m.viewport.ViewUp()

		case "pgdown", "f", "space":
			m.viewport.ViewDown()
		}

	case tea.WindowSizeMsg:
		headerHeight := 3
		footerHeight := 2

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.diff)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m diffViewerModel) View() string {
	if !m.ready {
		return "Loading diff..."
	}

	header := viewportTitle.Render("Diff: "+m.path) + "\n\n"
	footer := "\n" + dimStyle.Render("  [↑/↓] Scroll    [PgUp/PgDn] Page    [q/Enter] Close")
	return header + m.viewport.View() + footer
}

func formatRelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}

func formatFileSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
