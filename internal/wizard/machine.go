package wizard

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/lunitool/lunitool/internal/config"
	"github.com/lunitool/lunitool/internal/disk"
	"github.com/lunitool/lunitool/internal/keyboard"
	"github.com/lunitool/lunitool/internal/sysinfo"
)

// Localizer resolves UI strings and switches the active language.
type Localizer interface {
	Text(key string) string
	SetLanguage(code string) error
	Language() string
}

// ThemeSource is the part of the theme registry the machine needs.
type ThemeSource interface {
	Count() int
	Names() []string
}

// Options configures a Machine. Localizer and Themes are required.
type Options struct {
	Localizer Localizer
	Keyboard  keyboard.Applier
	Disks     disk.Provider
	Themes    ThemeSource

	ThemeIndex     int    // palette active at startup
	KeyboardLayout string // layout configured at startup
	System         sysinfo.Info
	Logger         *zap.Logger
}

// Machine owns State and implements every navigation transition. It is not
// safe for concurrent use; the event loop is its only caller.
type Machine struct {
	st State

	tr       Localizer
	keyboard keyboard.Applier
	disks    disk.Provider
	themes   ThemeSource
	log      *zap.Logger
}

// NewMachine creates a machine on the language selection screen.
func NewMachine(opts Options) *Machine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	applier := opts.Keyboard
	if applier == nil {
		applier = keyboard.ApplierFunc(func(context.Context, string) error { return nil })
	}
	provider := opts.Disks
	if provider == nil {
		provider = disk.NewSampleProvider()
	}

	m := &Machine{
		tr:       opts.Localizer,
		keyboard: applier,
		disks:    provider,
		themes:   opts.Themes,
		log:      logger.Named("wizard"),
	}

	themeIndex := opts.ThemeIndex
	if themeIndex < 0 || themeIndex >= m.themeCount() {
		themeIndex = 0
	}

	m.st = State{
		Screen:         ScreenLanguageSelect,
		PreviousScreen: ScreenLanguageSelect,
		Languages:      []string{"de", "en"},
		Keyboards:      config.KeyboardOrder(m.tr.Language()),
		Keyboard:       opts.KeyboardLayout,
		ThemeIndex:     themeIndex,
		System:         opts.System,
	}
	m.st.MenuItems = m.menuItems()
	return m
}

// State returns a snapshot of the navigation model. Slices are shared with
// the machine and must not be modified.
func (m *Machine) State() State {
	return m.st
}

// Text resolves a UI string in the active language.
func (m *Machine) Text(key string) string {
	return m.tr.Text(key)
}

// Language returns the active language code.
func (m *Machine) Language() string {
	return m.tr.Language()
}

// SetLogLines replaces the log panel content.
func (m *Machine) SetLogLines(lines []string) {
	m.st.LogLines = lines
}

func (m *Machine) themeCount() int {
	if m.themes == nil {
		return 0
	}
	return m.themes.Count()
}

func (m *Machine) menuItems() []MenuItem {
	return []MenuItem{
		{ID: MenuInstall, Title: m.tr.Text("LANG_INSTALL"), Description: m.tr.Text("LANG_INSTALL_DESC"), Kind: MenuCard},
		{ID: MenuBackup, Title: m.tr.Text("LANG_BACKUP"), Description: m.tr.Text("LANG_BACKUP_DESC"), Kind: MenuCard},
		{ID: MenuKeys, Title: m.tr.Text("LANG_KEYS"), Description: m.tr.Text("LANG_KEYS_DESC"), Kind: MenuCard},
	}
}

func (m *Machine) setScreen(s Screen) {
	m.st.PreviousScreen = m.st.Screen
	m.st.Screen = s

	switch s {
	case ScreenMainMenu, ScreenLanguageSelect, ScreenKeyboardSelect, ScreenConfirmExit:
		m.st.SelectedIndex = 0
	}
}

// listLen is the length of the list the shared cursor walks on the current
// screen.
func (m *Machine) listLen() int {
	switch m.st.Screen {
	case ScreenMainMenu:
		return len(m.st.MenuItems)
	case ScreenLanguageSelect:
		return len(m.st.Languages)
	case ScreenKeyboardSelect:
		return len(m.st.Keyboards)
	default:
		return 0
	}
}

// NextItem moves the list cursor down, wrapping to the top.
func (m *Machine) NextItem() {
	n := m.listLen()
	if n == 0 {
		return
	}
	m.st.SelectedIndex = (m.st.SelectedIndex + 1) % n
}

// PreviousItem moves the list cursor up, wrapping to the bottom.
func (m *Machine) PreviousItem() {
	n := m.listLen()
	if n == 0 {
		return
	}
	if m.st.SelectedIndex > 0 {
		m.st.SelectedIndex--
	} else {
		m.st.SelectedIndex = n - 1
	}
}

// Enter performs the primary action of the current screen.
func (m *Machine) Enter(ctx context.Context) {
	if m.st.Dialog != nil {
		m.ConfirmDialog()
		return
	}

	switch m.st.Screen {
	case ScreenLanguageSelect:
		m.SelectLanguage()
	case ScreenKeyboardSelect:
		m.SelectKeyboard(ctx)
	case ScreenMainMenu:
		m.ActivateMenuItem()
	case ScreenMessage:
		m.DismissMessage()
	case ScreenSystemInstallation:
		m.NextStep()
	}
}

// SelectLanguage switches to the highlighted language. On success the menu
// is rebuilt, the keyboard list is reordered and the keyboard screen opens;
// on failure an error message is shown.
func (m *Machine) SelectLanguage() {
	if m.st.SelectedIndex < 0 || m.st.SelectedIndex >= len(m.st.Languages) {
		return
	}
	code := m.st.Languages[m.st.SelectedIndex]

	if err := m.tr.SetLanguage(code); err != nil {
		m.log.Error("Failed to load language", zap.String("language", code), zap.Error(err))
		m.ShowError(m.tr.Text("ERROR_LANGUAGE_TITLE"), err.Error())
		return
	}
	m.log.Info("Language changed", zap.String("language", code))

	m.st.MenuItems = m.menuItems()
	m.st.Keyboards = config.KeyboardOrder(code)
	m.st.SelectedIndex = 0
	m.st.Screen = ScreenKeyboardSelect
}

// SelectKeyboard applies the highlighted layout and opens the main menu.
func (m *Machine) SelectKeyboard(ctx context.Context) {
	if m.st.SelectedIndex < 0 || m.st.SelectedIndex >= len(m.st.Keyboards) {
		return
	}
	layout := m.st.Keyboards[m.st.SelectedIndex]

	if err := m.keyboard.Apply(ctx, layout); err != nil {
		m.log.Error("Failed to set keyboard layout", zap.String("layout", layout), zap.Error(err))
		m.ShowError(m.tr.Text("ERROR_KEYBOARD_TITLE"), err.Error())
		return
	}
	m.log.Info("Keyboard layout changed", zap.String("layout", layout))

	m.st.Keyboard = layout
	m.st.SelectedIndex = 0
	m.st.Screen = ScreenMainMenu
}

// ActivateMenuItem runs the highlighted main menu entry.
func (m *Machine) ActivateMenuItem() {
	if m.st.SelectedIndex < 0 || m.st.SelectedIndex >= len(m.st.MenuItems) {
		return
	}
	item := m.st.MenuItems[m.st.SelectedIndex]

	switch item.ID {
	case MenuInstall:
		m.log.Info("Starting installation wizard")
		m.StartInstallation()
	case MenuBackup, MenuKeys:
		m.log.Info("Module not implemented", zap.String("id", item.ID))
		m.ShowMessage(item.Title, m.tr.Text("LANG_NOT_IMPLEMENTED"))
	default:
		m.log.Warn("Unknown menu item selected", zap.String("id", item.ID))
	}
}

// ShowMessage opens the Message screen. Dismissing it returns to the current
// screen.
func (m *Machine) ShowMessage(title, text string) {
	m.st.PreviousScreen = m.st.Screen
	m.st.Message = &Message{Title: title, Text: text}
	m.st.Screen = ScreenMessage
}

// ShowError opens the Message screen with a localized error prefix.
func (m *Machine) ShowError(title, text string) {
	m.ShowMessage(m.tr.Text("ERROR_TITLE_PREFIX")+title, text)
}

// DismissMessage closes the Message screen.
func (m *Machine) DismissMessage() {
	m.st.Message = nil
	m.st.Screen = m.st.PreviousScreen
}

// Back handles Backspace outside of dialogs.
func (m *Machine) Back() {
	if m.st.Dialog != nil {
		m.CancelDialog()
		return
	}

	switch m.st.Screen {
	case ScreenMessage:
		m.DismissMessage()
		return
	case ScreenConfirmExit:
		return
	case ScreenSystemInstallation:
		if m.st.Step.RequiresTextInput() && m.st.InputBuffer != "" {
			_, size := utf8.DecodeLastRuneInString(m.st.InputBuffer)
			m.st.InputBuffer = m.st.InputBuffer[:len(m.st.InputBuffer)-size]
			return
		}
		m.PreviousStep()
		return
	case ScreenKeyboardSelect:
		m.setScreen(ScreenLanguageSelect)
		return
	case ScreenMainMenu:
		m.setScreen(ScreenKeyboardSelect)
		return
	}

	if m.st.PreviousScreen == m.st.Screen {
		m.RequestExit()
		return
	}
	// Going back from the first screen after having been further along
	// would loop; ask to exit instead.
	if m.st.Screen == ScreenLanguageSelect && m.st.PreviousScreen == ScreenKeyboardSelect {
		m.RequestExit()
		return
	}
	m.setScreen(m.st.PreviousScreen)
}

// RequestExit opens the exit confirmation with "No" preselected. It does
// nothing while a dialog is open or on the Message and ConfirmExit screens.
func (m *Machine) RequestExit() {
	if m.st.Dialog != nil || m.st.Screen == ScreenMessage || m.st.Screen == ScreenConfirmExit {
		return
	}
	m.st.Dialog = YesNo{TitleKey: ExitConfirmTitleKey, MessageKey: exitConfirmMessageKey}
	m.st.DialogOption = OptionNo
}

// ToggleLogPanel shows or hides the log panel. It only applies to the
// installation screen and reports whether it did.
func (m *Machine) ToggleLogPanel() bool {
	if m.st.Screen != ScreenSystemInstallation {
		return false
	}
	m.st.ShowLogPanel = !m.st.ShowLogPanel
	m.log.Info("Log panel toggled", zap.Bool("visible", m.st.ShowLogPanel))
	return true
}

// OpenThemeSelector opens the theme dialog with the active theme selected.
func (m *Machine) OpenThemeSelector() {
	if m.st.Dialog != nil {
		return
	}
	m.log.Info("Opening theme selector")
	m.st.Dialog = ThemeSelector{}
	m.st.DialogOption = m.st.ThemeIndex
}

// OpenExampleDialog opens the sample YesNo dialog on the installation screen.
func (m *Machine) OpenExampleDialog() {
	if m.st.Dialog != nil || m.st.Screen != ScreenSystemInstallation {
		return
	}
	m.st.Dialog = YesNo{TitleKey: exampleDialogTitleKey, MessageKey: exampleDialogMessageKey}
	m.st.DialogOption = OptionYes
}

// MoveDialogOption moves the dialog selection by delta. YesNo clamps to its
// two buttons, ThemeSelector wraps over the theme count.
func (m *Machine) MoveDialogOption(delta int) {
	switch m.st.Dialog.(type) {
	case YesNo:
		if delta < 0 {
			m.st.DialogOption = OptionYes
		} else if delta > 0 {
			m.st.DialogOption = OptionNo
		}
	case ThemeSelector:
		n := m.themeCount()
		if n == 0 {
			return
		}
		m.st.DialogOption = ((m.st.DialogOption+delta)%n + n) % n
	}
}

// SetDialogOption selects a YesNo button directly.
func (m *Machine) SetDialogOption(option int) {
	if _, ok := m.st.Dialog.(YesNo); !ok {
		return
	}
	if option == OptionYes || option == OptionNo {
		m.st.DialogOption = option
	}
}

// ConfirmDialog applies the dialog selection and closes it. For YesNo the
// effect is keyed by TitleKey: only the exit confirmation acts on "yes".
func (m *Machine) ConfirmDialog() {
	switch d := m.st.Dialog.(type) {
	case YesNo:
		yes := m.st.DialogOption == OptionYes
		m.log.Info("Dialog confirmed", zap.String("title_key", d.TitleKey), zap.Bool("yes", yes))
		if d.TitleKey == ExitConfirmTitleKey {
			if yes {
				m.st.Quit = true
				return
			}
			m.st.Dialog = nil
			return
		}
		m.log.Warn("Unhandled YesNo dialog confirmation", zap.String("title_key", d.TitleKey))
		m.st.Dialog = nil
	case ThemeSelector:
		if m.st.DialogOption >= 0 && m.st.DialogOption < m.themeCount() {
			m.st.ThemeIndex = m.st.DialogOption
			m.log.Info("Theme selected", zap.String("theme", m.themeName(m.st.ThemeIndex)))
		} else {
			m.log.Warn("Theme selection index out of bounds", zap.Int("index", m.st.DialogOption))
		}
		m.st.Dialog = nil
	}
}

// CancelDialog closes the dialog without effect.
func (m *Machine) CancelDialog() {
	if m.st.Dialog == nil {
		return
	}
	m.log.Info("Dialog cancelled")
	m.st.Dialog = nil
}

func (m *Machine) themeName(i int) string {
	if m.themes == nil {
		return ""
	}
	names := m.themes.Names()
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}
