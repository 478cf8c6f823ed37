package theme

import "github.com/charmbracelet/lipgloss"

// Palette is a named set of colors applied by the renderer.
type Palette struct {
	Name string

	AppBg     lipgloss.Color
	ContentBg lipgloss.Color
	Text      lipgloss.Color
	TextMuted lipgloss.Color
	Title     lipgloss.Color
	Accent    lipgloss.Color
	AccentAlt lipgloss.Color

	Border          lipgloss.Color
	BorderHighlight lipgloss.Color
	HeaderText      lipgloss.Color
	FooterText      lipgloss.Color

	SelectedBg lipgloss.Color
	SelectedFg lipgloss.Color

	DialogBg         lipgloss.Color
	DialogFg         lipgloss.Color
	DialogBorder     lipgloss.Color
	DialogTitle      lipgloss.Color
	DialogSelectedBg lipgloss.Color
	DialogSelectedFg lipgloss.Color

	LogBg   lipgloss.Color
	LogText lipgloss.Color

	StatusActive    lipgloss.Color
	StatusCompleted lipgloss.Color
	StatusPending   lipgloss.Color
	StatusFailed    lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// Terminal color approximations for palettes that used named ANSI colors.
const (
	black     = lipgloss.Color("#000000")
	white     = lipgloss.Color("#FFFFFF")
	yellow    = lipgloss.Color("#CDCD00")
	green     = lipgloss.Color("#00CD00")
	red       = lipgloss.Color("#CD0000")
	cyan      = lipgloss.Color("#00CDCD")
	lightCyan = lipgloss.Color("#00FFFF")
	gray      = lipgloss.Color("#BEBEBE")
	darkGray  = lipgloss.Color("#7F7F7F")
)

func abletonDisco() Palette {
	orange := lipgloss.Color("#FF8200")
	yel := lipgloss.Color("#F0DC64")
	grn := lipgloss.Color("#50B45A")
	blue := lipgloss.Color("#64B4DC")
	muted := lipgloss.Color("#969696")
	errc := lipgloss.Color("#DC3232")
	return Palette{
		Name:             "Ableton Disco",
		AppBg:            "#121212",
		ContentBg:        "#282828",
		Text:             "#D2D2D2",
		TextMuted:        muted,
		Title:            orange,
		Accent:           orange,
		AccentAlt:        grn,
		Border:           "#3C3C3C",
		BorderHighlight:  yel,
		HeaderText:       grn,
		FooterText:       muted,
		SelectedBg:       yel,
		SelectedFg:       black,
		DialogBg:         "#2D2D2D",
		DialogFg:         "#D2D2D2",
		DialogBorder:     blue,
		DialogTitle:      orange,
		DialogSelectedBg: yel,
		DialogSelectedFg: "#141414",
		LogBg:            "#373737",
		LogText:          muted,
		StatusActive:     orange,
		StatusCompleted:  grn,
		StatusPending:    muted,
		StatusFailed:     errc,
		Success:          grn,
		Warning:          orange,
		Error:            errc,
		Info:             blue,
	}
}

func brownSugar() Palette {
	accent := lipgloss.Color("#F5AA5A")
	accentAlt := lipgloss.Color("#FFC88C")
	highlight := lipgloss.Color("#FFA546")
	muted := lipgloss.Color("#A09182")
	onAccent := lipgloss.Color("#1E0F0A")
	return Palette{
		Name:             "Brown Sugar",
		AppBg:            "#23140F",
		ContentBg:        "#412D23",
		Text:             "#FFFAF0",
		TextMuted:        muted,
		Title:            "#F08C32",
		Accent:           accent,
		AccentAlt:        accentAlt,
		Border:           "#553C2D",
		BorderHighlight:  highlight,
		HeaderText:       "#FAD2A0",
		FooterText:       muted,
		SelectedBg:       accent,
		SelectedFg:       onAccent,
		DialogBg:         "#463228",
		DialogFg:         "#FFFAF0",
		DialogBorder:     highlight,
		DialogTitle:      "#F08C32",
		DialogSelectedBg: accent,
		DialogSelectedFg: onAccent,
		LogBg:            "#190F0A",
		LogText:          muted,
		StatusActive:     accentAlt,
		StatusCompleted:  "#7CFC00",
		StatusPending:    muted,
		StatusFailed:     "#B22222",
		Success:          "#7CFC00",
		Warning:          "#FFA500",
		Error:            "#B22222",
		Info:             "#87CEEB",
	}
}

func ladyLike() Palette {
	accent := lipgloss.Color("#DA70D6")
	title := lipgloss.Color("#FF69B4")
	highlight := lipgloss.Color("#FF1493")
	muted := lipgloss.Color("#B4AAB9")
	return Palette{
		Name:             "Lady Like",
		AppBg:            "#281E2D",
		ContentBg:        "#322837",
		Text:             "#E6DCEB",
		TextMuted:        muted,
		Title:            title,
		Accent:           accent,
		AccentAlt:        "#ADD8E6",
		Border:           "#5A505F",
		BorderHighlight:  highlight,
		HeaderText:       "#FFB6C1",
		FooterText:       muted,
		SelectedBg:       accent,
		SelectedFg:       "#1E1423",
		DialogBg:         "#463C4B",
		DialogFg:         "#E6DCEB",
		DialogBorder:     highlight,
		DialogTitle:      title,
		DialogSelectedBg: accent,
		DialogSelectedFg: "#1E1423",
		LogBg:            "#1E1423",
		LogText:          "#D2C8D7",
		StatusActive:     "#ADD8E6",
		StatusCompleted:  "#98FB98",
		StatusPending:    darkGray,
		StatusFailed:     "#F08080",
		Success:          "#90EE90",
		Warning:          "#FFDFBA",
		Error:            "#FA8072",
		Info:             "#AFEEEE",
	}
}

func materiaMatter() Palette {
	accent := lipgloss.Color("#82AAFF")
	accentAlt := lipgloss.Color("#25C5DA")
	return Palette{
		Name:             "Materia Matter",
		AppBg:            "#1B1B1B",
		ContentBg:        "#252525",
		Text:             "#EEEEEE",
		TextMuted:        "#BDBDBD",
		Title:            accent,
		Accent:           accent,
		AccentAlt:        accentAlt,
		Border:           "#434343",
		BorderHighlight:  accent,
		HeaderText:       accentAlt,
		FooterText:       "#BDBDBD",
		SelectedBg:       "#3C5073",
		SelectedFg:       white,
		DialogBg:         "#393939",
		DialogFg:         "#EEEEEE",
		DialogBorder:     accent,
		DialogTitle:      accent,
		DialogSelectedBg: accent,
		DialogSelectedFg: white,
		LogBg:            "#141414",
		LogText:          "#D2D2D2",
		StatusActive:     accentAlt,
		StatusCompleted:  "#4CAF50",
		StatusPending:    gray,
		StatusFailed:     "#F44336",
		Success:          "#4CAF50",
		Warning:          "#FF9800",
		Error:            "#F44336",
		Info:             "#2196F3",
	}
}

func ratatuiRules() Palette {
	muted := lipgloss.Color("#B4B4C8")
	return Palette{
		Name:             "Ratatui Rules",
		AppBg:            "#141428",
		ContentBg:        "#1E1E32",
		Text:             "#DCDCF0",
		TextMuted:        muted,
		Title:            lightCyan,
		Accent:           yellow,
		AccentAlt:        lightCyan,
		Border:           "#50506E",
		BorderHighlight:  cyan,
		HeaderText:       "#FFA500",
		FooterText:       "#A0A0B4",
		SelectedBg:       "#464664",
		SelectedFg:       "#FAFAFA",
		DialogBg:         "#323250",
		DialogFg:         "#DCDCF0",
		DialogBorder:     "#64648C",
		DialogTitle:      yellow,
		DialogSelectedBg: "#5A5A78",
		DialogSelectedFg: "#FAFAFA",
		LogBg:            "#14141E",
		LogText:          "#DCDCF0",
		StatusActive:     yellow,
		StatusCompleted:  green,
		StatusPending:    muted,
		StatusFailed:     red,
		Success:          "#46B446",
		Warning:          "#DCB400",
		Error:            "#C84646",
		Info:             "#46AADC",
	}
}

func terminalSpirit() Palette {
	title := lipgloss.Color("#00C800")
	muted := lipgloss.Color("#A0A0A0")
	return Palette{
		Name:             "Terminal Spirit",
		AppBg:            black,
		ContentBg:        "#0F0F0F",
		Text:             "#D2D2D2",
		TextMuted:        muted,
		Title:            title,
		Accent:           yellow,
		AccentAlt:        title,
		Border:           "#505050",
		BorderHighlight:  white,
		HeaderText:       title,
		FooterText:       muted,
		SelectedBg:       "#1E1E1E",
		SelectedFg:       yellow,
		DialogBg:         "#191919",
		DialogFg:         "#D2D2D2",
		DialogBorder:     yellow,
		DialogTitle:      title,
		DialogSelectedBg: yellow,
		DialogSelectedFg: black,
		LogBg:            "#050505",
		LogText:          muted,
		StatusActive:     yellow,
		StatusCompleted:  green,
		StatusPending:    muted,
		StatusFailed:     red,
		Success:          green,
		Warning:          yellow,
		Error:            red,
		Info:             cyan,
	}
}

func ubuntuJoy() Palette {
	orange := lipgloss.Color("#E95420")
	aubergine := lipgloss.Color("#8C3876")
	muted := lipgloss.Color("#A0A0A0")
	return Palette{
		Name:             "Ubuntu Joy",
		AppBg:            "#1E1E1E",
		ContentBg:        "#262626",
		Text:             "#E6E6E6",
		TextMuted:        muted,
		Title:            orange,
		Accent:           orange,
		AccentAlt:        aubergine,
		Border:           "#373737",
		BorderHighlight:  orange,
		HeaderText:       aubergine,
		FooterText:       muted,
		SelectedBg:       orange,
		SelectedFg:       white,
		DialogBg:         "#2D2D2D",
		DialogFg:         "#E6E6E6",
		DialogBorder:     orange,
		DialogTitle:      orange,
		DialogSelectedBg: orange,
		DialogSelectedFg: white,
		LogBg:            "#1E1E1E",
		LogText:          muted,
		StatusActive:     aubergine,
		StatusCompleted:  "#2ECC71",
		StatusPending:    muted,
		StatusFailed:     "#E74C3C",
		Success:          "#2ECC71",
		Warning:          "#F1C40F",
		Error:            "#E74C3C",
		Info:             orange,
	}
}

func whiteSur() Palette {
	accent := lipgloss.Color("#007AFF")
	return Palette{
		Name:             "White Sur",
		AppBg:            "#E6E6EB",
		ContentBg:        "#F5F5FA",
		Text:             "#141419",
		TextMuted:        "#50505A",
		Title:            "#0A0A0F",
		Accent:           accent,
		AccentAlt:        "#FF9500",
		Border:           "#C8C8CD",
		BorderHighlight:  accent,
		HeaderText:       "#FF3B30",
		FooterText:       "#50505A",
		SelectedBg:       "#AAD2FF",
		SelectedFg:       "#1E1E1E",
		DialogBg:         "#F0F0F5",
		DialogFg:         "#141414",
		DialogBorder:     "#B4B4B4",
		DialogTitle:      "#0A0A0A",
		DialogSelectedBg: accent,
		DialogSelectedFg: white,
		LogBg:            "#DCDCE1",
		LogText:          "#1E1E23",
		StatusActive:     accent,
		StatusCompleted:  "#34C759",
		StatusPending:    "#787880",
		StatusFailed:     "#FF3B30",
		Success:          "#28A745",
		Warning:          "#FFC107",
		Error:            "#DC3545",
		Info:             "#17A2B8",
	}
}
