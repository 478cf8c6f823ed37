package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one key/value line. Slices of Field keep their order, unlike maps.
type Field struct {
	Key   string
	Value string
}

// Header represents a command header with title, command, and parameters.
type Header struct {
	Title   string  // e.g., "DISK SNAPSHOT"
	Command string  // e.g., "lunitool disks"
	Params  []Field // e.g., {"Source", "sample"}
}

// Render returns the styled header as a string
func (h Header) Render(s Styles, width int) string {
	width = clampWidth(width)

	titleLine := s.HeaderTitle.Render(strings.ToUpper(h.Title))
	commandLine := s.HeaderCommand.Render(h.Command)
	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)

	if len(h.Params) > 0 {
		dividerWidth := width - 6 // Account for border and padding
		divider := lipgloss.NewStyle().
			Foreground(s.Colors.Primary).
			Render(strings.Repeat("─", dividerWidth))

		content = lipgloss.JoinVertical(lipgloss.Left, content, divider, renderFields(s, h.Params, 2))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Colors.Primary).
		Width(width - 2). // Account for border characters
		Render(content)
}

// renderFields aligns keys to the longest one.
func renderFields(s Styles, fields []Field, indent int) string {
	keyWidth := 0
	for _, f := range fields {
		if w := lipgloss.Width(f.Key) + 1; w > keyWidth {
			keyWidth = w
		}
	}

	pad := strings.Repeat(" ", indent)
	lines := make([]string, len(fields))
	for i, f := range fields {
		key := s.Key.Width(keyWidth).Render(f.Key + ":")
		lines[i] = pad + key + " " + s.Value.Render(f.Value)
	}
	return strings.Join(lines, "\n")
}
