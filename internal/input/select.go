package input

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Select presents a single-choice menu with keyboard navigation and returns
// the index of the chosen option. The second return value is false when the
// user dismissed the menu (q, esc, ctrl+c) or the menu could not be shown.
//
// When stdin is not a terminal (CI, piped input), Select falls back to a
// numbered prompt read line-by-line from stdin.
func Select(message string, choices []string) (int, bool) {
	if len(choices) == 0 {
		return 0, false
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return selectPlain(message, choices)
	}

	model := newSelectModel(message, choices)
	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return 0, false
	}

	result := finalModel.(selectModel)
	if result.selected < 0 {
		return 0, false
	}
	return result.selected, true
}

// selectPlain is the non-TTY fallback: numbered list, answer by index.
func selectPlain(message string, choices []string) (int, bool) {
	fmt.Println(promptStyle.Render(message))
	for i, c := range choices {
		fmt.Printf("  %d) %s\n", i+1, c)
	}
	fmt.Print(hintStyle.Render(fmt.Sprintf("Choice [1-%d]", len(choices))) + ": ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(choices) {
		return 0, false
	}
	return n - 1, true
}

// selectModel is the BubbleTea model behind Select.
type selectModel struct {
	message  string
	choices  []string
	cursor   int
	selected int
}

func newSelectModel(message string, choices []string) selectModel {
	return selectModel{
		message:  message,
		choices:  choices,
		selected: -1,
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			m.selected = m.cursor
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder

	b.WriteString(promptStyle.Render(m.message) + "\n")
	b.WriteString(mutedStyle.Render("    [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")

	for i, choice := range m.choices {
		if m.cursor == i {
			b.WriteString("    " + selectedStyle.Render("> "+choice) + "\n")
		} else {
			b.WriteString("      " + choice + "\n")
		}
	}

	return b.String()
}
