package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/lunitool/lunitool/internal/wizard"
)

// keyMap holds the bindings the dispatcher matches against.
type keyMap struct {
	ToggleLog key.Binding
	Theme     key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Back      key.Binding
	Exit      key.Binding
	Yes       key.Binding
	No        key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Example   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		ToggleLog: key.NewBinding(key.WithKeys("alt+l", "alt+L")),
		Theme:     key.NewBinding(key.WithKeys("alt+t", "alt+T")),
		Up:        key.NewBinding(key.WithKeys("up")),
		Down:      key.NewBinding(key.WithKeys("down")),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Enter:     key.NewBinding(key.WithKeys("enter")),
		Back:      key.NewBinding(key.WithKeys("backspace")),
		Exit:      key.NewBinding(key.WithKeys("esc", "ctrl+c")),
		Yes:       key.NewBinding(key.WithKeys("y", "j")),
		No:        key.NewBinding(key.WithKeys("n")),
		PageUp:    key.NewBinding(key.WithKeys("pgup")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown")),
		Example:   key.NewBinding(key.WithKeys("d", "D")),
	}
}

// Dialog-local bindings. The vi keys differ between the two dialogs.
var (
	yesNoLeft  = key.NewBinding(key.WithKeys("left", "h"))
	yesNoRight = key.NewBinding(key.WithKeys("right", "l"))
	themeUp    = key.NewBinding(key.WithKeys("up", "k"))
	themeDown  = key.NewBinding(key.WithKeys("down", "j"))
	dialogQuit = key.NewBinding(key.WithKeys("esc", "backspace"))
)

// helpKeys is the footer legend for one screen. It satisfies help.KeyMap.
type helpKeys []key.Binding

// ShortHelp returns keybindings to be shown in the mini help view
func (k helpKeys) ShortHelp() []key.Binding {
	return k
}

// FullHelp returns keybindings for the expanded help view
func (k helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k}
}

func hint(keys, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, desc))
}

// footerKeys builds the localized legend for the current screen.
func footerKeys(st wizard.State, text func(string) string) helpKeys {
	keys := helpKeys{hint("Alt+T", text("LANG_TOGGLE_THEME_SHORT"))}

	if st.Dialog != nil {
		switch st.Dialog.(type) {
		case wizard.ThemeSelector:
			keys = append(keys, hint("↑/↓", text("LANG_NAVIGATE_SHORT")))
		default:
			keys = append(keys, hint("←/→", text("LANG_NAVIGATE_SHORT")))
		}
		return append(keys,
			hint("Enter", text("LANG_CONFIRM_SHORT")),
			hint("Esc", text("LANG_CANCEL_SHORT")),
		)
	}

	switch st.Screen {
	case wizard.ScreenSystemInstallation:
		keys = append(keys,
			hint("Alt+L", text("LANG_TOGGLE_LOG_SHORT")),
			hint("Enter", text("LANG_NEXT_STEP_SHORT")),
			hint("Esc", text("LANG_CANCEL_SHORT")),
			hint("↑/↓", text("LANG_NAVIGATE_SHORT")),
			hint("PgUp/PgDn", text("LANG_SCROLL_SHORT")),
			hint("Backspace", text("LANG_BACK_SHORT")),
		)
	case wizard.ScreenLanguageSelect, wizard.ScreenKeyboardSelect, wizard.ScreenMainMenu:
		keys = append(keys,
			hint("↑/↓", text("LANG_NAVIGATE_SHORT")),
			hint("Enter", text("LANG_SELECT_SHORT")),
			hint("Backspace", text("LANG_BACK_SHORT")),
			hint("Esc", text("LANG_EXIT_SHORT")),
		)
	default:
		keys = append(keys, hint("Enter/Esc", text("LANG_CLOSE_SHORT")))
	}
	return keys
}
