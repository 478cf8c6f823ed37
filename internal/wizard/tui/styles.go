package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lunitool/lunitool/internal/theme"
	"github.com/lunitool/lunitool/internal/version"
)

// Application branding constants
const (
	AppLogo       = "L U N I T O O L"
	BreadcrumbSep = " ► "
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants
const (
	MinTerminalWidth  = 60 // Below this the layout is clamped, not reflowed
	MinTerminalHeight = 20
	DefaultWidth      = 80 // Used before the first tea.WindowSizeMsg
	DefaultHeight     = 24

	YesNoDialogWidth  = 60
	YesNoDialogHeight = 8

	TaskPaneRatio     = 0.25 // Share of the content width used by the task list
	DescriptionHeight = 6    // Task description pane including its border
	LogoColumnWidth   = 28
)

// Styles holds every lipgloss style derived from one palette. It is rebuilt
// when the active theme changes.
type Styles struct {
	Palette theme.Palette

	App        lipgloss.Style
	Logo       lipgloss.Style
	Title      lipgloss.Style
	Separator  lipgloss.Style
	Breadcrumb lipgloss.Style

	FooterKey  lipgloss.Style
	FooterDesc lipgloss.Style
	FooterSep  lipgloss.Style

	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	Text       lipgloss.Style
	Muted      lipgloss.Style
	Label      lipgloss.Style

	ListItem         lipgloss.Style
	SelectedListItem lipgloss.Style

	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	CardTitle    lipgloss.Style

	Dialog         lipgloss.Style
	DialogTitle    lipgloss.Style
	DialogText     lipgloss.Style
	Button         lipgloss.Style
	SelectedButton lipgloss.Style

	LogPanel lipgloss.Style
	LogText  lipgloss.Style

	StatusActive    lipgloss.Style
	StatusCompleted lipgloss.Style
	StatusPending   lipgloss.Style
	StatusFailed    lipgloss.Style

	Error lipgloss.Style
	Info  lipgloss.Style
}

// NewStyles derives the UI styles from a palette.
func NewStyles(p theme.Palette) Styles {
	base := lipgloss.NewStyle().Background(p.ContentBg)

	return Styles{
		Palette: p,

		App: lipgloss.NewStyle().
			Background(p.ContentBg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			BorderBackground(p.AppBg),

		Logo:       base.Foreground(p.Accent).Bold(true),
		Title:      base.Foreground(p.Title).Bold(true),
		Separator:  base.Foreground(p.Accent),
		Breadcrumb: base.Foreground(p.AccentAlt).Bold(true),

		FooterKey:  base.Foreground(p.Accent),
		FooterDesc: base.Foreground(p.FooterText),
		FooterSep:  base.Foreground(p.TextMuted),

		Panel: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			BorderBackground(p.ContentBg),
		PanelTitle: base.Foreground(p.AccentAlt).Bold(true),
		Text:       base.Foreground(p.Text),
		Muted:      base.Foreground(p.TextMuted),
		Label:      base.Foreground(p.Accent).Bold(true),

		ListItem:         base.Foreground(p.Text),
		SelectedListItem: lipgloss.NewStyle().Foreground(p.SelectedFg).Background(p.SelectedBg).Bold(true),

		Card: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			BorderBackground(p.ContentBg).
			Padding(1, 1).
			Align(lipgloss.Center),
		SelectedCard: base.
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.BorderHighlight).
			BorderBackground(p.ContentBg).
			Padding(1, 1).
			Align(lipgloss.Center),
		CardTitle: base.Foreground(p.Accent).Bold(true),

		Dialog: lipgloss.NewStyle().
			Background(p.DialogBg).
			Foreground(p.DialogFg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.DialogBorder).
			BorderBackground(p.DialogBg).
			Padding(0, 1),
		DialogTitle:    lipgloss.NewStyle().Background(p.DialogBg).Foreground(p.DialogTitle).Bold(true),
		DialogText:     lipgloss.NewStyle().Background(p.DialogBg).Foreground(p.DialogFg),
		Button:         lipgloss.NewStyle().Background(p.DialogBg).Foreground(p.DialogFg),
		SelectedButton: lipgloss.NewStyle().Background(p.DialogSelectedBg).Foreground(p.DialogSelectedFg).Bold(true),

		LogPanel: lipgloss.NewStyle().
			Background(p.LogBg).
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Border).
			BorderBackground(p.ContentBg),
		LogText: lipgloss.NewStyle().Background(p.LogBg).Foreground(p.LogText),

		StatusActive:    base.Foreground(p.StatusActive),
		StatusCompleted: base.Foreground(p.StatusCompleted),
		StatusPending:   base.Foreground(p.StatusPending),
		StatusFailed:    base.Foreground(p.StatusFailed),

		Error: base.Foreground(p.Error).Bold(true),
		Info:  base.Foreground(p.Info),
	}
}

// RenderApplicationContainer is the wrapper for every non-dialog screen:
// header, content and footer stacked inside a rounded border that fills the
// terminal.
func RenderApplicationContainer(s Styles, header, content, footer string, width, height int) string {
	inner := width - 2
	fill := lipgloss.NewStyle().Background(s.Palette.ContentBg).Width(inner)

	headerBlock := fill.Render(header)
	footerBlock := fill.Align(lipgloss.Center).Render(footer)

	contentHeight := height - 2 - lipgloss.Height(headerBlock) - lipgloss.Height(footerBlock)
	if contentHeight < 1 {
		contentHeight = 1
	}
	contentBlock := fill.Height(contentHeight).MaxHeight(contentHeight).Render(content)

	body := lipgloss.JoinVertical(lipgloss.Left, headerBlock, contentBlock, footerBlock)
	bordered := s.App.Width(inner).Height(height - 2).Render(body)

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, bordered,
		lipgloss.WithWhitespaceBackground(s.Palette.AppBg))
}

// RenderModal centers a dialog on a dimmed full-screen backdrop. Nothing of
// the underlying screen is drawn.
func RenderModal(s Styles, modal string, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(theme.Overlay(s.Palette.ContentBg, 0.3)),
		lipgloss.WithWhitespaceBackground(theme.Overlay(s.Palette.AppBg, 0.6)),
	)
}

// SafeModalWidth returns requested, shrunk to leave a margin inside the
// terminal.
func SafeModalWidth(requested, terminalWidth int) int {
	maxWidth := terminalWidth - 4
	if maxWidth < 20 {
		maxWidth = 20
	}
	if requested < maxWidth {
		return requested
	}
	return maxWidth
}

// clampSize applies the defaults and minimums to a terminal size.
func clampSize(width, height int) (int, int) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}
	return width, height
}
