package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/lunitool/lunitool/internal/theme"
)

// Colors holds the handful of colors plain CLI output uses.
type Colors struct {
	Primary lipgloss.Color // headers, borders
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Muted   lipgloss.Color // secondary info
	Text    lipgloss.Color
}

// ColorsFromPalette maps an interactive theme onto CLI output colors so that
// subcommands follow the configured theme.
func ColorsFromPalette(p theme.Palette) Colors {
	return Colors{
		Primary: p.Accent,
		Success: p.StatusCompleted,
		Error:   p.Error,
		Warning: p.StatusActive,
		Muted:   p.TextMuted,
		Text:    p.Text,
	}
}

// DefaultColors uses the registry's default palette.
func DefaultColors() Colors {
	r := theme.NewRegistry()
	return ColorsFromPalette(r.Palette(r.DefaultIndex()))
}

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
	ListMarker    = "•"
)

// Styles is the set of lipgloss styles derived from Colors.
type Styles struct {
	Colors Colors

	HeaderTitle   lipgloss.Style
	HeaderCommand lipgloss.Style
	Key           lipgloss.Style
	Value         lipgloss.Style
	Muted         lipgloss.Style
	SuccessTitle  lipgloss.Style
	ErrorTitle    lipgloss.Style
	WarningTitle  lipgloss.Style
	ErrorMessage  lipgloss.Style
}

// NewStyles builds the styles for c.
func NewStyles(c Colors) Styles {
	return Styles{
		Colors: c,

		HeaderTitle:   lipgloss.NewStyle().Foreground(c.Text).Bold(true).PaddingLeft(2),
		HeaderCommand: lipgloss.NewStyle().Foreground(c.Muted).PaddingLeft(2),
		Key:           lipgloss.NewStyle().Foreground(c.Muted),
		Value:         lipgloss.NewStyle().Foreground(c.Text),
		Muted:         lipgloss.NewStyle().Foreground(c.Muted),
		SuccessTitle:  lipgloss.NewStyle().Foreground(c.Success).Bold(true),
		ErrorTitle:    lipgloss.NewStyle().Foreground(c.Error).Bold(true),
		WarningTitle:  lipgloss.NewStyle().Foreground(c.Warning).Bold(true),
		ErrorMessage:  lipgloss.NewStyle().Foreground(c.Error),
	}
}

// boxStyle returns the double border used for result boxes.
func boxStyle(border lipgloss.Color, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 2)
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _ := GetTerminalSize()
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24 // Default fallback
	}
	return clampWidth(width), height
}

func clampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
