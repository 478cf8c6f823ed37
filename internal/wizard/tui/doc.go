// Package tui implements the full-screen terminal front end of the lunitool
// installer shell.
//
// The package is a thin Bubble Tea layer over wizard.Machine. AppModel turns
// key presses into machine transitions and View renders the machine state;
// no navigation rules live here.
//
// # Architecture
//
// Every frame is a pure function of the machine state plus a small view
// state:
//   - wizard.State: screen, lists, wizard step, tasks, dialog, theme index
//   - wizard.ViewState: description scroll offset, clamped during rendering
//   - RenderContext: palette, localized strings, spinner frame, terminal size
//
// Non-dialog screens share one container (RenderApplicationContainer): a
// header with the logo and the "title ► subtitle" breadcrumb, the screen
// content, and a footer legend built with bubbles/help. While a dialog is
// open only the dialog is drawn, centered on a dimmed backdrop
// (RenderModal).
//
// # Key Handling
//
// Keys are processed in a fixed order:
//
//  1. Alt+L toggles the log panel (installation screen only)
//  2. Alt+T opens the theme selector when no dialog is open
//  3. An open dialog captures every other key
//  4. Esc and Ctrl+C request exit; Backspace goes back
//  5. Screen-specific keys: list navigation, disk cursor, hostname input
//
// The YesNo dialog takes ←/h and y/j for Yes, →/l and n for No. The theme
// selector moves with ↑/k and ↓/j and wraps. Esc or Backspace cancel either
// dialog and Enter confirms.
//
// # Asynchronous Work
//
// Disk snapshots are read in a tea.Cmd whenever the machine reports that
// the disk step is waiting (Machine.NeedsDisks); the result arrives as a
// message and is handed to Machine.SetDisks. A 100ms ticker copies the
// captured log lines into the state for the log panel.
//
// # Framework Components
//
//   - bubbles/help: footer and dialog key legends
//   - bubbles/key: key bindings
//   - bubbles/spinner: disk loading indicator
//   - bubbles/progress: installation progress gauge
//   - bubbles/viewport: scrollable step description
//   - lipgloss: styling and layout
package tui
