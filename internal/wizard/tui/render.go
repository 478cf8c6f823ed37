package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/lunitool/lunitool/internal/theme"
	"github.com/lunitool/lunitool/internal/wizard"
)

const (
	headerHeight = 3
	footerHeight = 2
)

// RenderContext carries everything besides the state that a frame depends
// on.
type RenderContext struct {
	Palette    theme.Palette
	ThemeNames []string
	Text       func(key string) string
	Spinner    string
	Width      int
	Height     int
}

// frame is one render pass.
type frame struct {
	st     wizard.State
	vs     *wizard.ViewState
	s      Styles
	text   func(string) string
	themes []string
	spin   string
	width  int
	height int
}

// Render draws the whole screen. It reads st and only writes the scroll
// bookkeeping in vs.
func Render(st wizard.State, vs *wizard.ViewState, rc RenderContext) string {
	width, height := clampSize(rc.Width, rc.Height)
	text := rc.Text
	if text == nil {
		text = func(k string) string { return k }
	}
	if vs == nil {
		vs = &wizard.ViewState{}
	}

	f := frame{
		st:     st,
		vs:     vs,
		s:      NewStyles(rc.Palette),
		text:   text,
		themes: rc.ThemeNames,
		spin:   rc.Spinner,
		width:  width,
		height: height,
	}

	if st.Dialog != nil {
		return RenderModal(f.s, f.dialog(), width, height)
	}

	inner := width - 2
	contentHeight := height - 2 - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch st.Screen {
	case wizard.ScreenLanguageSelect:
		content = f.languageSelect(inner, contentHeight)
	case wizard.ScreenKeyboardSelect:
		content = f.keyboardSelect(inner, contentHeight)
	case wizard.ScreenMainMenu:
		content = f.mainMenu(inner, contentHeight)
	case wizard.ScreenSystemInstallation:
		content = f.installation(inner, contentHeight)
	case wizard.ScreenMessage:
		content = f.message(inner, contentHeight)
	case wizard.ScreenConfirmExit:
		content = ""
	}

	return RenderApplicationContainer(f.s, f.header(inner), content, f.footer(inner), width, height)
}

func subtitleKey(screen wizard.Screen) string {
	switch screen {
	case wizard.ScreenLanguageSelect:
		return "LANG_LANGUAGE_SELECT"
	case wizard.ScreenKeyboardSelect:
		return "LANG_KEYBOARD_SELECT"
	case wizard.ScreenMainMenu:
		return "LANG_MAIN_MENU"
	case wizard.ScreenSystemInstallation:
		return "INSTALL_HEADER_LINE2"
	default:
		return "LANG_SUBTITLE"
	}
}

// header renders the logo and the "base title ► subtitle" breadcrumb.
func (f frame) header(width int) string {
	bg := lipgloss.NewStyle().Background(f.s.Palette.ContentBg)

	logo := f.s.Logo.Width(LogoColumnWidth).PaddingLeft(4).Render(AppLogo)

	base, _, _ := strings.Cut(f.text("LANG_TITLE_LINE1"), " - ")
	crumb := f.s.Title.Render(base) +
		f.s.Separator.Render(BreadcrumbSep) +
		f.s.Breadcrumb.Render(f.text(subtitleKey(f.st.Screen)))

	rest := width - LogoColumnWidth
	if rest < 1 {
		rest = 1
	}
	right := bg.Width(rest).Align(lipgloss.Center).Render(ansi.Truncate(crumb, rest, "…"))

	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, logo, right) + "\n"
}

// footer renders the key legend with the bubbles help component.
func (f frame) footer(width int) string {
	h := help.New()
	h.Width = width
	h.ShortSeparator = " | "
	h.Styles.ShortKey = f.s.FooterKey
	h.Styles.ShortDesc = f.s.FooterDesc
	h.Styles.ShortSeparator = f.s.FooterSep
	h.Styles.Ellipsis = f.s.FooterSep

	return "\n" + h.View(footerKeys(f.st, f.text))
}

// panel draws a bordered box with an optional title line, sized to the given
// outer dimensions.
func (f frame) panel(style lipgloss.Style, title, body string, width, height int) string {
	innerW, innerH := width-2, height-2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}
	if title != "" {
		body = f.s.PanelTitle.Render(ansi.Truncate(title, innerW, "…")) + "\n" + body
	}
	return style.Width(innerW).Height(innerH).MaxHeight(height).Render(body)
}

// indent shifts a block one column to the right.
func (f frame) indent(block string) string {
	return lipgloss.NewStyle().Background(f.s.Palette.ContentBg).PaddingLeft(1).Render(block)
}

func languageLabel(code string) string {
	switch code {
	case "de":
		return "Deutsch (de_DE)"
	case "en":
		return "English (en_US)"
	default:
		return code
	}
}

func keyboardLabel(layout string) string {
	switch layout {
	case "de":
		return "Deutsch (de)"
	case "us":
		return "US-English (us)"
	default:
		return layout
	}
}

func (f frame) languageSelect(width, height int) string {
	labels := make([]string, len(f.st.Languages))
	for i, code := range f.st.Languages {
		labels[i] = languageLabel(code)
	}
	return f.selectList(f.text("LANG_LANGUAGE_SELECT"), labels, width, height)
}

func (f frame) keyboardSelect(width, height int) string {
	labels := make([]string, len(f.st.Keyboards))
	for i, layout := range f.st.Keyboards {
		labels[i] = keyboardLabel(layout)
	}
	return f.selectList(f.text("LANG_KEYBOARD_SELECT"), labels, width, height)
}

// selectList draws a centered single-column list inside a titled panel.
func (f frame) selectList(title string, labels []string, width, height int) string {
	itemWidth := 0
	for _, l := range labels {
		if w := lipgloss.Width(l) + 4; w > itemWidth {
			itemWidth = w
		}
	}

	rows := make([]string, len(labels))
	for i, l := range labels {
		style := f.s.ListItem
		if i == f.st.SelectedIndex {
			style = f.s.SelectedListItem
		}
		rows[i] = style.Width(itemWidth).Render("  " + l + "  ")
	}

	innerW, innerH := width-4, height-3
	list := lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		lipgloss.WithWhitespaceBackground(f.s.Palette.ContentBg))

	return f.indent(f.panel(f.s.Panel, title, list, width-2, height))
}

// mainMenu draws the menu entries as cards side by side.
func (f frame) mainMenu(width, height int) string {
	n := len(f.st.MenuItems)
	if n == 0 {
		return f.indent(f.panel(f.s.Panel, f.text("LANG_MAIN_MENU"), "", width-2, height))
	}

	const spacer = 2
	area := width - 2 - 2 - 4
	cardWidth := (area - spacer*(n-1)) / n
	if cardWidth < 12 {
		cardWidth = 12
	}
	cardHeight := height - 6
	if cardHeight > 12 {
		cardHeight = 12
	}
	if cardHeight < 5 {
		cardHeight = 5
	}

	cards := make([]string, 0, 2*n-1)
	for i, item := range f.st.MenuItems {
		style, titleStyle, descStyle := f.s.Card, f.s.CardTitle, f.s.Muted
		if i == f.st.SelectedIndex {
			style = f.s.SelectedCard
			titleStyle = f.s.Breadcrumb
			descStyle = f.s.Text
		}
		body := titleStyle.Render(item.Title) + "\n\n" + descStyle.Render(item.Description)
		cards = append(cards, style.Width(cardWidth-2).Height(cardHeight-2).MaxHeight(cardHeight).Render(body))
		if i < n-1 {
			cards = append(cards, lipgloss.NewStyle().Background(f.s.Palette.ContentBg).Width(spacer).Render(""))
		}
	}

	row := lipgloss.Place(width-6, height-3, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		lipgloss.WithWhitespaceBackground(f.s.Palette.ContentBg))

	return f.indent(f.panel(f.s.Panel, f.text("LANG_MAIN_MENU"), row, width-2, height))
}

// message draws the Message screen as a centered 60x10 box.
func (f frame) message(width, height int) string {
	if f.st.Message == nil {
		return ""
	}
	boxWidth := SafeModalWidth(60, width)
	style := f.s.Panel.BorderForeground(f.s.Palette.BorderHighlight).Padding(0, 1)

	title := f.s.Label.Render(f.st.Message.Title)
	text := f.s.Text.Width(boxWidth - 4).Align(lipgloss.Center).Render(f.st.Message.Text)
	box := style.Width(boxWidth - 2).Height(8).Render(title + "\n\n" + text)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(f.s.Palette.ContentBg))
}

// dialog draws the active modal.
func (f frame) dialog() string {
	var box string
	switch d := f.st.Dialog.(type) {
	case wizard.YesNo:
		box = f.yesNoDialog(d)
	case wizard.ThemeSelector:
		box = f.themeDialog()
	}

	h := help.New()
	h.ShortSeparator = " | "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(f.s.Palette.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(f.s.Palette.FooterText)
	hints := h.View(footerKeys(f.st, f.text))

	return lipgloss.JoinVertical(lipgloss.Center, box, hints)
}

func (f frame) yesNoDialog(d wizard.YesNo) string {
	width := SafeModalWidth(YesNoDialogWidth, f.width)
	style := f.s.Dialog
	if d.TitleKey == wizard.ExitConfirmTitleKey {
		style = style.BorderForeground(f.s.Palette.BorderHighlight)
	}
	inner := width - 4

	title := f.s.DialogTitle.Render(f.text(d.TitleKey))
	msg := f.s.DialogText.Width(inner).Align(lipgloss.Center).Render(f.text(d.MessageKey))

	half := f.s.DialogText.Width(inner / 2).Align(lipgloss.Center)
	yes, no := f.s.Button, f.s.Button
	if f.st.DialogOption == wizard.OptionYes {
		yes = f.s.SelectedButton
	} else {
		no = f.s.SelectedButton
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		half.Render(yes.Render("< "+f.text("DIALOG_YES")+" >")),
		half.Render(no.Render("< "+f.text("DIALOG_NO")+" >")),
	)

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", msg, "", buttons)
	return style.Width(width - 2).Height(YesNoDialogHeight - 2).Render(body)
}

func (f frame) themeDialog() string {
	width := 30
	for _, name := range f.themes {
		if w := lipgloss.Width(name) + 4; w > width {
			width = w
		}
	}
	width = SafeModalWidth(width, f.width)
	inner := width - 4

	title := f.s.DialogTitle.Render(f.text("DIALOG_THEME_SELECTOR_TITLE"))
	if len(f.themes) == 0 {
		body := title + "\n\n" + f.s.DialogText.Width(inner).Align(lipgloss.Center).Render(f.text("DIALOG_THEME_SELECTOR_NO_THEMES"))
		return f.s.Dialog.BorderForeground(f.s.Palette.BorderHighlight).Width(width - 2).Render(body)
	}

	rows := make([]string, len(f.themes))
	for i, name := range f.themes {
		style := f.s.DialogText
		if i == f.st.DialogOption {
			style = f.s.SelectedButton
		}
		rows[i] = style.Width(inner).Align(lipgloss.Center).Render(name)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{title, ""}, rows...)...)
	return f.s.Dialog.BorderForeground(f.s.Palette.BorderHighlight).Width(width - 2).Render(body)
}
