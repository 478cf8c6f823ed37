package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result represents a result box (success, failure, or warning)
type Result struct {
	Type    ResultType
	Title   string
	Details []Field
	Error   error    // failure only
	Hints   []string // failure only
}

// Render returns the styled result box as a string
func (r Result) Render(s Styles, width int) string {
	width = clampWidth(width)

	var (
		title  string
		border lipgloss.Color
	)
	switch r.Type {
	case ResultFailure:
		title = s.ErrorTitle.Render(fmt.Sprintf("%s  FAILED  ─  %s", FailureMarker, r.Title))
		border = s.Colors.Error
	case ResultWarning:
		title = s.WarningTitle.Render(fmt.Sprintf("%s  WARNING  ─  %s", WarningMarker, r.Title))
		border = s.Colors.Warning
	default:
		title = s.SuccessTitle.Render(fmt.Sprintf("%s  SUCCESS  ─  %s", SuccessMarker, r.Title))
		border = s.Colors.Success
	}

	lines := []string{"", title, ""}

	if r.Error != nil {
		lines = append(lines, s.ErrorMessage.Render("Error: "+r.Error.Error()), "")
	}
	if len(r.Details) > 0 {
		lines = append(lines, renderFields(s, r.Details, 0), "")
	}
	if len(r.Hints) > 0 {
		lines = append(lines, r.renderHints(s, width), "")
	}

	return boxStyle(border, width).Render(strings.Join(lines, "\n"))
}

// renderHints renders the inner troubleshooting box
func (r Result) renderHints(s Styles, width int) string {
	lines := []string{s.Muted.Bold(true).Render("Troubleshooting:"), ""}
	for _, tip := range r.Hints {
		lines = append(lines, s.Muted.Render("  "+ListMarker+" "+tip))
	}

	innerWidth := width - 12 // Indent within outer box
	if innerWidth < 40 {
		innerWidth = 40
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Colors.Muted).
		Width(innerWidth).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// RenderSuccessBox renders a success box with the given title and details
func RenderSuccessBox(s Styles, title string, details []Field, width int) string {
	return Result{Type: ResultSuccess, Title: title, Details: details}.Render(s, width)
}

// RenderErrorBox renders a failure box with the given title, error, and troubleshooting tips
func RenderErrorBox(s Styles, title string, err error, hints []string, width int) string {
	return Result{Type: ResultFailure, Title: title, Error: err, Hints: hints}.Render(s, width)
}

// RenderWarningBox renders a warning box with the given title and details
func RenderWarningBox(s Styles, title string, details []Field, width int) string {
	return Result{Type: ResultWarning, Title: title, Details: details}.Render(s, width)
}
