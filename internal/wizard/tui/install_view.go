package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/lunitool/lunitool/internal/disk"
	"github.com/lunitool/lunitool/internal/wizard"
)

const (
	gaugeHeight  = 3
	statusHeight = 1
)

// installation lays out the wizard: main pane and task list on top, then
// the description, the progress gauge and the status line.
func (f frame) installation(width, height int) string {
	topHeight := height - DescriptionHeight - gaugeHeight - statusHeight
	if topHeight < 3 {
		topHeight = 3
	}

	taskWidth := int(float64(width) * TaskPaneRatio)
	mainWidth := width - taskWidth

	var main string
	if f.st.ShowLogPanel {
		main = f.logPanel(mainWidth, topHeight)
	} else {
		main = f.panel(f.s.Panel, f.text("INSTALL_HEADER_LINE2"), f.stepBody(mainWidth-4, topHeight-3), mainWidth, topHeight)
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, main, f.taskList(taskWidth, topHeight))

	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		f.description(width, DescriptionHeight),
		f.gauge(width),
		f.statusLine(width),
	)
}

func (f frame) stepBody(width, height int) string {
	switch f.st.Step {
	case wizard.StepWelcome:
		return f.s.Text.Width(width).Render(f.text("INSTALL_WELCOME_MESSAGE")) + "\n\n" + f.systemSummary(width)
	case wizard.StepDiskSetup:
		return f.diskList(width, height)
	case wizard.StepUserSetup:
		return f.s.Label.Render(f.text("PROMPT_HOSTNAME")+": ") +
			f.s.Text.Render(f.st.InputBuffer) +
			f.s.StatusActive.Render("█")
	case wizard.StepSummary:
		return f.summary()
	default:
		return f.s.Muted.Render(f.text("INFO_PENDING_IMPLEMENTATION"))
	}
}

// systemSummary lists the host facts collected at startup.
func (f frame) systemSummary(width int) string {
	sys := f.st.System
	orUnknown := func(v string) string {
		if v == "" {
			return f.text("SYSINFO_UNKNOWN")
		}
		return v
	}
	live := f.text("LANG_NO")
	if sys.Live {
		live = f.text("LANG_YES")
	}

	rows := [][2]string{
		{"SYSINFO_OS", orUnknown(sys.OS)},
		{"SYSINFO_KERNEL", orUnknown(sys.Kernel)},
		{"SYSINFO_ARCH", orUnknown(sys.Architecture)},
		{"SYSINFO_MEMORY", fmt.Sprintf("%s / %s", disk.FormatSize(sys.MemoryFree), disk.FormatSize(sys.MemoryTotal))},
		{"SYSINFO_ROOT_FREE", disk.FormatSize(sys.RootFree)},
		{"SYSINFO_LIVE", live},
		{"SYSINFO_PACKAGE_MANAGER", orUnknown(sys.PackageManager)},
	}

	labelWidth := 0
	for _, r := range rows {
		if w := lipgloss.Width(f.text(r[0])); w > labelWidth {
			labelWidth = w
		}
	}

	lines := []string{f.s.PanelTitle.Render(f.text("SYSINFO_TITLE"))}
	for _, r := range rows {
		line := f.s.Label.Width(labelWidth+2).Render(f.text(r[0])+":") + f.s.Text.Render(r[1])
		lines = append(lines, ansi.Truncate(line, width, "…"))
	}
	return strings.Join(lines, "\n")
}

// diskList renders the selectable topology with the cursor kept in view.
func (f frame) diskList(width, height int) string {
	if f.st.DisksLoading {
		return f.s.StatusActive.Render(f.spin) + f.s.Text.Render(" "+f.text("INFO_LOADING_DISKS"))
	}
	if f.st.Disks.IsEmpty() || len(f.st.DiskItems) == 0 {
		return f.s.Muted.Render(f.text("INFO_NO_DISKS_FOUND"))
	}

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if f.st.DiskCursor >= visible {
		start = f.st.DiskCursor - visible + 1
	}
	end := start + visible
	if end > len(f.st.DiskItems) {
		end = len(f.st.DiskItems)
	}

	lines := []string{f.s.Text.Render(f.text("PROMPT_SELECT_DISK")), ""}
	for i := start; i < end; i++ {
		item := f.st.DiskItems[i]
		text := ansi.Truncate(item.DisplayText, width-2, "…")
		switch {
		case i == f.st.DiskCursor:
			lines = append(lines, f.s.SelectedListItem.Width(width).Render("▶ "+text))
		case item.Selectable:
			lines = append(lines, f.s.Text.Render("  "+text))
		default:
			lines = append(lines, f.s.Muted.Render("  "+text))
		}
	}
	return strings.Join(lines, "\n")
}

func (f frame) summary() string {
	orNotSet := func(v string) string {
		if v == "" {
			return f.s.Muted.Render(f.text("SUMMARY_NOT_SET"))
		}
		return f.s.Text.Render(v)
	}
	return strings.Join([]string{
		f.s.Text.Render(f.text("INSTALL_SUMMARY_MESSAGE")),
		"",
		f.s.Label.Render(f.text("SUMMARY_TARGET_DISK")+": ") + orNotSet(f.st.Install.TargetDisk),
		f.s.Label.Render(f.text("SUMMARY_HOSTNAME")+": ") + orNotSet(f.st.Install.Hostname),
	}, "\n")
}

// logPanel shows the tail of the captured log lines.
func (f frame) logPanel(width, height int) string {
	innerW, rows := width-2, height-3
	if rows < 1 {
		rows = 1
	}

	var body string
	if len(f.st.LogLines) == 0 {
		body = f.s.LogText.Render(f.text("INFO_NO_LOG_LINES"))
	} else {
		lines := f.st.LogLines
		if len(lines) > rows {
			lines = lines[len(lines)-rows:]
		}
		out := make([]string, len(lines))
		for i, l := range lines {
			out[i] = f.s.LogText.Render(ansi.Truncate(l, innerW, "…"))
		}
		body = strings.Join(out, "\n")
	}

	title := f.s.PanelTitle.Background(f.s.Palette.LogBg).Render(f.text("INSTALL_LOG_TITLE"))
	return f.s.LogPanel.Width(innerW).Height(height - 2).MaxHeight(height).Render(title + "\n" + body)
}

func statusMarker(s Styles, status wizard.TaskStatus) string {
	switch status {
	case wizard.TaskActive:
		return s.StatusActive.Render("►")
	case wizard.TaskCompleted:
		return s.StatusCompleted.Render("●")
	case wizard.TaskFailed:
		return s.StatusFailed.Render("✗")
	default:
		return s.StatusPending.Render("○")
	}
}

func (f frame) taskList(width, height int) string {
	if len(f.st.Tasks) == 0 {
		return f.panel(f.s.Panel, f.text("INSTALL_TASKS_TITLE"), f.s.Muted.Render(f.text("INFO_NO_TASKS")), width, height)
	}

	rows := make([]string, len(f.st.Tasks))
	for i, t := range f.st.Tasks {
		title := ansi.Truncate(t.Title, width-6, "…")
		style := f.s.Text
		if i == f.st.TaskIndex {
			style = f.s.Label
		}
		rows[i] = statusMarker(f.s, t.Status) + style.Render(" "+title)
	}
	return f.panel(f.s.Panel, f.text("INSTALL_TASKS_TITLE"), strings.Join(rows, "\n"), width, height)
}

func descriptionKey(step wizard.Step) string {
	switch step {
	case wizard.StepWelcome:
		return "INSTALL_WELCOME_DESC"
	case wizard.StepDiskSetup:
		return "INSTALL_DISK_SETUP_DESC"
	case wizard.StepUserSetup:
		return "INSTALL_USER_SETUP_DESC"
	case wizard.StepSummary:
		return "INSTALL_SUMMARY_DESC"
	default:
		return "INFO_PENDING_IMPLEMENTATION"
	}
}

// description renders the scrollable step description. The stored scroll
// offset is clamped to the content and written back.
func (f frame) description(width, height int) string {
	innerW, innerH := width-4, height-2
	if innerW < 1 {
		innerW = 1
	}

	vp := viewport.New(innerW, innerH)
	vp.SetContent(f.s.Muted.Width(innerW).Render(f.text(descriptionKey(f.st.Step))))
	vp.SetYOffset(f.vs.DescriptionScroll)
	f.vs.DescriptionScroll = vp.YOffset

	body := vp.View()
	if vp.TotalLineCount() > vp.Height {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, f.scrollbar(vp))
	}
	return f.s.Panel.Width(width - 2).Height(innerH).MaxHeight(height).Render(body)
}

func (f frame) scrollbar(vp viewport.Model) string {
	rows := make([]string, vp.Height)
	pos := int(vp.ScrollPercent() * float64(vp.Height-1))
	for i := range rows {
		if i == pos {
			rows[i] = f.s.Label.Render("█")
		} else {
			rows[i] = f.s.Muted.Render("│")
		}
	}
	return strings.Join(rows, "\n")
}

func (f frame) gauge(width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(f.s.Palette.StatusCompleted)),
		progress.WithFillCharacters('█', '░'),
	)
	bar.Width = width - 6
	bar.PercentageStyle = f.s.Text

	return f.s.Panel.Width(width - 2).Render(bar.ViewAs(float64(f.st.Progress()) / 100))
}

func (f frame) statusLine(width int) string {
	leftWidth := width * 60 / 100
	rightWidth := width - leftWidth

	current := f.text("UNKNOWN_TASK")
	if t, ok := f.st.ActiveTask(); ok {
		current = t.Title
	}

	left := f.s.Text.Width(leftWidth).Render("  " + f.s.Label.Render(f.text("INSTALL_LABEL_COMMAND_STATUS")) + f.s.Text.Render(" <idle>"))
	right := f.s.Text.Width(rightWidth).Align(lipgloss.Right).Render(
		f.s.Label.Render(f.text("INSTALL_LABEL_CURRENT_STEP")) + f.s.Text.Render(" "+current+" "))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}
