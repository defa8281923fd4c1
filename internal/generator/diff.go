package generator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	addStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))
	removeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
)

// maxDiffLines caps the diff computation. Generated class files are tiny,
// so anything beyond this is a user file we should not try to diff inline.
const maxDiffLines = 5000

// Diff renders a colored line diff between the existing file content and
// the newly generated content. Returns "" when both are identical.
func Diff(path string, existing, generated []byte) string {
	oldLines := splitLines(string(existing))
	newLines := splitLines(string(generated))

	if len(oldLines) > maxDiffLines || len(newLines) > maxDiffLines {
		return fmt.Sprintf("Files too large for diff (%d and %d lines)\n", len(oldLines), len(newLines))
	}

	if equalLines(oldLines, newLines) {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("--- "+path+" (existing)") + "\n")
	b.WriteString(headerStyle.Render("+++ "+path+" (generated)") + "\n")

	for _, edit := range editScript(oldLines, newLines) {
		switch edit.kind {
		case editKeep:
			b.WriteString("  " + edit.line + "\n")
		case editRemove:
			b.WriteString(removeStyle.Render("- "+edit.line) + "\n")
		case editAdd:
			b.WriteString(addStyle.Render("+ "+edit.line) + "\n")
		}
	}

	return b.String()
}

type editKind int

const (
	editKeep editKind = iota
	editRemove
	editAdd
)

type edit struct {
	kind editKind
	line string
}

// editScript computes a minimal edit script via a longest-common-subsequence
// table. Quadratic, which is fine at the file sizes plume deals with.
func editScript(oldLines, newLines []string) []edit {
	n, m := len(oldLines), len(newLines)

	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var edits []edit
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case oldLines[i] == newLines[j]:
			edits = append(edits, edit{editKeep, oldLines[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			edits = append(edits, edit{editRemove, oldLines[i]})
			i++
		default:
			edits = append(edits, edit{editAdd, newLines[j]})
			j++
		}
	}
	for ; i < n; i++ {
		edits = append(edits, edit{editRemove, oldLines[i]})
	}
	for ; j < m; j++ {
		edits = append(edits, edit{editAdd, newLines[j]})
	}

	return edits
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
