package wizard

import (
	"github.com/lunitool/lunitool/internal/disk"
	"github.com/lunitool/lunitool/internal/sysinfo"
)

// Screen identifies the top-level view.
type Screen string

const (
	ScreenLanguageSelect     Screen = "language_select"
	ScreenKeyboardSelect     Screen = "keyboard_select"
	ScreenMainMenu           Screen = "main_menu"
	ScreenSystemInstallation Screen = "system_installation"
	ScreenMessage            Screen = "message"
	ScreenConfirmExit        Screen = "confirm_exit"
)

// Dialog is a modal layered over the current screen. The concrete types are
// YesNo and ThemeSelector.
type Dialog interface {
	isDialog()
}

// YesNo asks a two-choice question. Option 0 is yes, 1 is no.
type YesNo struct {
	TitleKey   string
	MessageKey string
}

// ThemeSelector lists the palettes of the theme registry.
type ThemeSelector struct{}

func (YesNo) isDialog()         {}
func (ThemeSelector) isDialog() {}

// ExitConfirmTitleKey marks the exit confirmation. Confirming "yes" on a
// dialog with this title is the only way to quit.
const ExitConfirmTitleKey = "LANG_CONFIRM_TITLE"

const (
	exitConfirmMessageKey   = "LANG_EXIT_CONFIRM"
	exampleDialogTitleKey   = "DIALOG_YESNO_EXAMPLE_TITLE"
	exampleDialogMessageKey = "DIALOG_YESNO_EXAMPLE_MESSAGE"
)

// Dialog option indices for YesNo.
const (
	OptionYes = 0
	OptionNo  = 1
)

// Step is an installation wizard step. Only Welcome, DiskSetup, UserSetup and
// Summary are part of the task list; the rest are reserved.
type Step int

const (
	StepNone Step = iota
	StepWelcome
	StepDiskSetup
	StepUserSetup
	StepNetworkConfig
	StepDesktopChoice
	StepKernelChoice
	StepSecureBootChoice
	StepUpdateSettings
	StepAdditionalPackages
	StepSummary
	StepInstalling
	StepCompleted
	StepError
)

var stepNames = map[Step]string{
	StepNone:               "none",
	StepWelcome:            "welcome",
	StepDiskSetup:          "disk_setup",
	StepUserSetup:          "user_setup",
	StepNetworkConfig:      "network_config",
	StepDesktopChoice:      "desktop_choice",
	StepKernelChoice:       "kernel_choice",
	StepSecureBootChoice:   "secure_boot_choice",
	StepUpdateSettings:     "update_settings",
	StepAdditionalPackages: "additional_packages",
	StepSummary:            "summary",
	StepInstalling:         "installing",
	StepCompleted:          "completed",
	StepError:              "error",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// RequiresTextInput reports whether the step edits the input buffer.
func (s Step) RequiresTextInput() bool {
	return s == StepUserSetup
}

// TaskStatus is the progress marker of a Task.
type TaskStatus int

const (
	TaskPending TaskStatus = iota
	TaskActive
	TaskCompleted
	TaskFailed
)

func (s TaskStatus) String() string {
	switch s {
	case TaskPending:
		return "pending"
	case TaskActive:
		return "active"
	case TaskCompleted:
		return "completed"
	case TaskFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Task is one row of the installation task list.
type Task struct {
	ID     string
	Title  string
	Step   Step
	Status TaskStatus
}

// MenuKind selects how a main menu entry is drawn.
type MenuKind int

const (
	MenuSimple MenuKind = iota
	MenuCard
)

// MenuItem is a main menu entry. ID is stable across language changes.
type MenuItem struct {
	ID          string
	Title       string
	Description string
	Kind        MenuKind
}

// Main menu ids.
const (
	MenuInstall = "install"
	MenuBackup  = "backup"
	MenuKeys    = "keys"
)

// InstallConfig collects the answers given in the installation wizard.
type InstallConfig struct {
	TargetDisk string
	Hostname   string
}

// Message is the content of the Message screen.
type Message struct {
	Title string
	Text  string
}

// State is the navigation model. It is mutated only by Machine and read by
// the renderer.
type State struct {
	Screen         Screen
	PreviousScreen Screen

	MenuItems     []MenuItem
	SelectedIndex int
	Languages     []string
	Keyboards     []string
	Keyboard      string

	Message *Message

	// Installation wizard
	Step         Step
	Tasks        []Task
	TaskIndex    int
	Install      InstallConfig
	ShowLogPanel bool
	InputBuffer  string

	// Disk setup
	Disks            *disk.SystemDiskInfo
	DisksLoading     bool
	DiskItems        []disk.DisplayListItem
	DiskCursor       int
	SelectedDiskPath string

	Dialog       Dialog
	DialogOption int
	ThemeIndex   int

	LogLines []string
	System   sysinfo.Info

	Quit bool
}

// ActiveTask returns the task at TaskIndex.
func (s *State) ActiveTask() (Task, bool) {
	if s.TaskIndex < 0 || s.TaskIndex >= len(s.Tasks) {
		return Task{}, false
	}
	return s.Tasks[s.TaskIndex], true
}

// Progress returns the wizard completion in percent, rounded. It is pinned to
// 0 while the first task is current.
func (s *State) Progress() int {
	if len(s.Tasks) == 0 || s.TaskIndex <= 0 {
		return 0
	}
	return (s.TaskIndex*100 + len(s.Tasks)/2) / len(s.Tasks)
}

// ViewState holds render bookkeeping that is not part of the navigation
// model.
type ViewState struct {
	DescriptionScroll int
}
