package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// keyMsg builds the KeyMsg a terminal would deliver for the named key.
func keyMsg(name string) tea.Msg {
	switch name {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Note: Prompt, Confirm, and the interactive Select menu require a real
// terminal and are exercised manually. The pieces with no terminal
// dependency are tested below.

func TestPrompt_Documentation(t *testing.T) {
	t.Skip("Manual testing required - needs an interactive terminal")

	// Example usage for documentation:
	// name, ok := Prompt("Class name", "")
	// if !ok { /* user cancelled */ }
}

func TestConfirm_Documentation(t *testing.T) {
	t.Skip("Manual testing required - needs an interactive terminal")

	// Example usage for documentation:
	// split, ok := Confirm("Split header and source?", false)
	// if !ok { /* user cancelled */ }
}

func TestSelect_EmptyChoices(t *testing.T) {
	_, ok := Select("Pick one", nil)
	if ok {
		t.Error("Select with no choices should report cancellation")
	}
}

func TestSelectModel_Navigation(t *testing.T) {
	m := newSelectModel("Pick a folder", []string{"a", "b", "c"})

	if m.cursor != 0 || m.selected != -1 {
		t.Fatalf("unexpected initial state: cursor=%d selected=%d", m.cursor, m.selected)
	}

	// Moving up at the top is a no-op.
	next, _ := m.Update(keyMsg("up"))
	m = next.(selectModel)
	if m.cursor != 0 {
		t.Errorf("cursor moved above first choice: %d", m.cursor)
	}

	next, _ = m.Update(keyMsg("down"))
	m = next.(selectModel)
	next, _ = m.Update(keyMsg("down"))
	m = next.(selectModel)
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	// Moving down at the bottom is a no-op.
	next, _ = m.Update(keyMsg("down"))
	m = next.(selectModel)
	if m.cursor != 2 {
		t.Errorf("cursor moved past last choice: %d", m.cursor)
	}

	next, _ = m.Update(keyMsg("enter"))
	m = next.(selectModel)
	if m.selected != 2 {
		t.Errorf("selected = %d, want 2", m.selected)
	}
}

func TestSelectModel_Dismiss(t *testing.T) {
	m := newSelectModel("Pick a folder", []string{"a", "b"})

	next, _ := m.Update(keyMsg("esc"))
	m = next.(selectModel)
	if m.selected != -1 {
		t.Errorf("dismissing the menu should leave nothing selected, got %d", m.selected)
	}
}
