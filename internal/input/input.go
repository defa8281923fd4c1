// Package input provides interactive terminal input for the plume CLI.
//
// Prompts are displayed in cyan and bold, hints (defaults, [Y/n]) in gray.
// In non-interactive environments callers should prefer flags and skip
// prompting; Select falls back to a numbered stdin prompt when stdin is
// not a terminal.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Prompt asks the user for text input with an optional default value.
// The second return value is false when stdin is closed before an answer
// arrives, which callers should treat as cancellation.
//
// Example:
//
//	name, ok := input.Prompt("Class name", "")
func Prompt(message, defaultValue string) (string, bool) {
	reader := bufio.NewReader(os.Stdin)

	if defaultValue != "" {
		fmt.Print(promptStyle.Render(message) + " " +
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue)) + ": ")
	} else {
		fmt.Print(promptStyle.Render(message) + ": ")
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", false
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, true
	}

	return line, true
}

// Confirm asks a yes/no question. The answer is true for y/Y/yes/YES;
// pressing Enter answers defaultYes. The second return value is false when
// stdin is closed before an answer arrives, which callers should treat as
// cancellation, the same way Prompt reports it.
func Confirm(message string, defaultYes bool) (bool, bool) {
	reader := bufio.NewReader(os.Stdin)

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Print(promptStyle.Render(message) + " " +
		hintStyle.Render(hint) + ": ")

	line, err := reader.ReadString('\n')
	if err != nil {
		return false, false
	}

	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return defaultYes, true
	}

	return line == "y" || line == "yes", true
}
