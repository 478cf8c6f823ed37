package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/lunitool/lunitool/internal/disk"
	"github.com/lunitool/lunitool/internal/theme"
	"github.com/lunitool/lunitool/internal/wizard"
)

// TickInterval is how often the log panel is refreshed from the buffer.
const TickInterval = 100 * time.Millisecond

// descriptionPage is how many lines PgUp/PgDn scroll the step description.
const descriptionPage = 2

// LogSource provides the captured log lines shown in the log panel.
type LogSource interface {
	Lines() []string
}

// Messages
type tickMsg time.Time

type disksLoadedMsg struct {
	info *disk.SystemDiskInfo
	err  error
}

// Options configures the application model.
type Options struct {
	Machine *wizard.Machine
	Themes  *theme.Registry
	Logs    LogSource
	Logger  *zap.Logger
	Context context.Context

	// Initial terminal size, used until the first tea.WindowSizeMsg
	Width  int
	Height int
}

// AppModel is the top-level Bubble Tea model. It translates key presses into
// machine transitions and renders the machine state every frame.
type AppModel struct {
	machine *wizard.Machine
	themes  *theme.Registry
	logs    LogSource
	log     *zap.Logger
	ctx     context.Context

	// View-only state; pointer so View can store the clamped scroll offset
	view *wizard.ViewState

	// UI state
	Width  int
	Height int

	Spinner spinner.Model
	keys    keyMap

	loadingDisks bool
}

// NewAppModel creates the application model around an existing machine.
func NewAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	themes := opts.Themes
	if themes == nil {
		themes = theme.NewRegistry()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	width, height := DefaultWidth, DefaultHeight
	if opts.Width > 0 && opts.Height > 0 {
		width, height = opts.Width, opts.Height
	}

	return AppModel{
		machine: opts.Machine,
		themes:  themes,
		logs:    opts.Logs,
		log:     logger.Named("tui"),
		ctx:     ctx,
		view:    &wizard.ViewState{},
		Width:   width,
		Height:  height,
		Spinner: s,
		keys:    newKeyMap(),
	}
}

// Machine returns the navigation state machine driven by this model.
func (m AppModel) Machine() *wizard.Machine {
	return m.machine
}

// Init starts the log refresh ticker and the spinner.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(tick(), m.Spinner.Tick)
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles all messages and drives the machine.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tickMsg:
		if m.logs != nil {
			m.machine.SetLogLines(m.logs.Lines())
		}
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case disksLoadedMsg:
		m.loadingDisks = false
		m.machine.SetDisks(msg.info, msg.err)
		cmd := m.followUp()
		return m, cmd

	case tea.KeyMsg:
		step := m.machine.State().Step
		m.handleKey(msg)
		if m.machine.State().Step != step {
			m.view.DescriptionScroll = 0
		}
		cmd := m.followUp()
		return m, cmd
	}

	return m, nil
}

// followUp returns the command implied by the machine state after a
// transition.
func (m *AppModel) followUp() tea.Cmd {
	st := m.machine.State()
	if st.Quit {
		m.log.Info("Exit confirmed")
		return tea.Quit
	}
	if m.machine.NeedsDisks() && !m.loadingDisks {
		m.loadingDisks = true
		return m.loadDisks()
	}
	return nil
}

func (m AppModel) loadDisks() tea.Cmd {
	provider := m.machine.DiskProvider()
	ctx := m.ctx
	m.log.Debug("Loading disk snapshot")
	return func() tea.Msg {
		info, err := provider.Snapshot(ctx)
		return disksLoadedMsg{info: info, err: err}
	}
}

// handleKey dispatches one key press. Global shortcuts come first, then an
// open dialog captures all remaining keys, then the current screen.
func (m *AppModel) handleKey(msg tea.KeyMsg) {
	st := m.machine.State()

	switch {
	case key.Matches(msg, m.keys.ToggleLog):
		m.machine.ToggleLogPanel()
		return
	case key.Matches(msg, m.keys.Theme):
		m.machine.OpenThemeSelector()
		return
	}

	if st.Dialog != nil {
		m.handleDialogKey(st.Dialog, msg)
		return
	}

	switch {
	case key.Matches(msg, m.keys.Exit):
		if st.Screen == wizard.ScreenMessage {
			m.machine.DismissMessage()
		} else {
			m.machine.RequestExit()
		}
		return
	case key.Matches(msg, m.keys.Back):
		m.machine.Back()
		return
	case key.Matches(msg, m.keys.Enter):
		m.machine.Enter(m.ctx)
		return
	}

	switch st.Screen {
	case wizard.ScreenMainMenu:
		switch {
		case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Right):
			m.machine.NextItem()
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Left):
			m.machine.PreviousItem()
		}

	case wizard.ScreenLanguageSelect, wizard.ScreenKeyboardSelect:
		switch {
		case key.Matches(msg, m.keys.Down):
			m.machine.NextItem()
		case key.Matches(msg, m.keys.Up):
			m.machine.PreviousItem()
		}

	case wizard.ScreenSystemInstallation:
		m.handleInstallationKey(st, msg)
	}
}

func (m *AppModel) handleInstallationKey(st wizard.State, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.PageUp):
		m.view.DescriptionScroll -= descriptionPage
		if m.view.DescriptionScroll < 0 {
			m.view.DescriptionScroll = 0
		}
		return
	case key.Matches(msg, m.keys.PageDown):
		m.view.DescriptionScroll += descriptionPage
		return
	}

	if st.Step.RequiresTextInput() {
		if msg.Type == tea.KeyRunes && !msg.Alt {
			for _, r := range msg.Runes {
				m.machine.InputRune(r)
			}
		}
		return
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.machine.MoveDiskCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.machine.MoveDiskCursor(1)
	case key.Matches(msg, m.keys.Example):
		m.machine.OpenExampleDialog()
	}
}

func (m *AppModel) handleDialogKey(d wizard.Dialog, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		m.machine.ConfirmDialog()
		return
	case key.Matches(msg, dialogQuit):
		m.machine.CancelDialog()
		return
	}

	switch d.(type) {
	case wizard.YesNo:
		switch {
		case key.Matches(msg, yesNoLeft), key.Matches(msg, m.keys.Yes):
			m.machine.SetDialogOption(wizard.OptionYes)
		case key.Matches(msg, yesNoRight), key.Matches(msg, m.keys.No):
			m.machine.SetDialogOption(wizard.OptionNo)
		}
	case wizard.ThemeSelector:
		switch {
		case key.Matches(msg, themeUp):
			m.machine.MoveDialogOption(-1)
		case key.Matches(msg, themeDown):
			m.machine.MoveDialogOption(1)
		}
	}
}

// View renders the current frame.
func (m AppModel) View() string {
	st := m.machine.State()
	return Render(st, m.view, RenderContext{
		Palette:    m.themes.Palette(st.ThemeIndex),
		ThemeNames: m.themes.Names(),
		Text:       m.machine.Text,
		Spinner:    m.Spinner.View(),
		Width:      m.Width,
		Height:     m.Height,
	})
}

// Run executes the model on the alternate screen until the user quits or ctx
// is cancelled, and returns the final model.
func Run(ctx context.Context, model AppModel) (AppModel, error) {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(AppModel); ok {
		return fm, err
	}
	return model, err
}
