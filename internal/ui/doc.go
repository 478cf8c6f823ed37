// Package ui provides styled, non-interactive output for the lunitool
// subcommands.
//
// Unlike the full-screen shell in internal/wizard/tui, these components
// print once and return. They are used by the version, themes, disks,
// sysinfo and config commands.
//
// # Components
//
//   - Header: command banner with title, command line and parameters
//   - Result: success, failure or warning box with details and hints
//   - Printer: writes the above plus aligned fields and indented lists
//
// Colors come from a theme.Palette (ColorsFromPalette), so subcommand output
// follows the configured theme.
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout, ui.DefaultColors())
//	p.PrintHeader(ui.Header{Title: "System", Command: "lunitool sysinfo"})
//	p.PrintSuccess("System facts collected", []ui.Field{{Key: "Kernel", Value: "6.8.0"}})
//
// Logging never goes to stdout; see internal/logging.
package ui
