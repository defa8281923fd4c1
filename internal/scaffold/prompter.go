package scaffold

import "github.com/hsolberg/plume/internal/input"

// Prompter collects interactive answers. The orchestration logic depends on
// this interface rather than a real terminal so it stays testable.
//
// Every method can report "no answer" (ok=false), which callers treat as
// cancellation.
type Prompter interface {
	Input(message, defaultValue string) (value string, ok bool)
	Confirm(message string, defaultYes bool) (answer, ok bool)
	Pick(message string, choices []string) (index int, ok bool)
}

// TerminalPrompter is the Prompter used by the CLI, backed by the input
// package.
type TerminalPrompter struct{}

func (TerminalPrompter) Input(message, defaultValue string) (string, bool) {
	return input.Prompt(message, defaultValue)
}

func (TerminalPrompter) Confirm(message string, defaultYes bool) (bool, bool) {
	return input.Confirm(message, defaultYes)
}

func (TerminalPrompter) Pick(message string, choices []string) (int, bool) {
	return input.Select(message, choices)
}
