package wizard

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lunitool/lunitool/internal/disk"
	"github.com/lunitool/lunitool/internal/keyboard"
	"github.com/lunitool/lunitool/internal/lang"
	"github.com/lunitool/lunitool/internal/theme"
)

type machineFixture struct {
	m       *Machine
	logs    *observer.ObservedLogs
	applied []string
}

func newFixture(t *testing.T) *machineFixture {
	t.Helper()
	catalog, err := lang.New(lang.German)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	f := &machineFixture{logs: logs}
	registry := theme.NewRegistry()
	f.m = NewMachine(Options{
		Localizer: catalog,
		Keyboard: keyboard.ApplierFunc(func(_ context.Context, layout string) error {
			f.applied = append(f.applied, layout)
			return nil
		}),
		Disks:      disk.NewSampleProvider(),
		Themes:     registry,
		ThemeIndex: registry.DefaultIndex(),
		Logger:     zap.New(core),
	})
	return f
}

// toMainMenu confirms the preselected language and keyboard.
func (f *machineFixture) toMainMenu(t *testing.T) {
	t.Helper()
	f.m.Enter(context.Background())
	f.m.Enter(context.Background())
	require.Equal(t, ScreenMainMenu, f.m.State().Screen)
}

// toInstallation opens the wizard from the main menu.
func (f *machineFixture) toInstallation(t *testing.T) {
	t.Helper()
	f.toMainMenu(t)
	f.m.Enter(context.Background())
	require.Equal(t, ScreenSystemInstallation, f.m.State().Screen)
}

func activeTasks(st State) []int {
	var out []int
	for i, task := range st.Tasks {
		if task.Status == TaskActive {
			out = append(out, i)
		}
	}
	return out
}

func TestNewMachineInitialState(t *testing.T) {
	f := newFixture(t)
	st := f.m.State()

	assert.Equal(t, ScreenLanguageSelect, st.Screen)
	assert.Nil(t, st.Dialog)
	assert.Equal(t, []string{"de", "en"}, st.Languages)
	assert.Equal(t, []string{"de", "us"}, st.Keyboards)
	assert.Equal(t, theme.NewRegistry().DefaultIndex(), st.ThemeIndex)
	require.Len(t, st.MenuItems, 3)
	assert.Equal(t, []string{MenuInstall, MenuBackup, MenuKeys},
		[]string{st.MenuItems[0].ID, st.MenuItems[1].ID, st.MenuItems[2].ID})
	assert.False(t, st.Quit)
}

func TestMenuCursorWraps(t *testing.T) {
	tests := []struct {
		name  string
		moves []int
		want  int
	}{
		{"previous from first wraps to last", []int{-1}, 2},
		{"next from last wraps to first", []int{1, 1, 1}, 0},
		{"down then up", []int{1, -1}, 0},
		{"two back", []int{-1, -1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.toMainMenu(t)
			for _, mv := range tt.moves {
				if mv > 0 {
					f.m.NextItem()
				} else {
					f.m.PreviousItem()
				}
			}
			assert.Equal(t, tt.want, f.m.State().SelectedIndex)
		})
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	f := newFixture(t)
	f.toMainMenu(t)
	rng := rand.New(rand.NewSource(7))
	n := len(f.m.State().MenuItems)

	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 {
			f.m.NextItem()
		} else {
			f.m.PreviousItem()
		}
		idx := f.m.State().SelectedIndex
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, n)
	}
}

func TestSelectEnglishReordersKeyboards(t *testing.T) {
	f := newFixture(t)

	f.m.NextItem()
	f.m.Enter(context.Background())

	st := f.m.State()
	assert.Equal(t, "en", f.m.Language())
	assert.Equal(t, []string{"us", "de"}, st.Keyboards)
	assert.Equal(t, ScreenKeyboardSelect, st.Screen)
	assert.Equal(t, 0, st.SelectedIndex)
	assert.Equal(t, f.m.Text("LANG_INSTALL"), st.MenuItems[0].Title, "menu is re-localized")
}

func TestSelectLanguageFailureShowsError(t *testing.T) {
	f := newFixture(t)
	f.m.st.Languages = []string{"fr"}

	f.m.Enter(context.Background())

	st := f.m.State()
	require.Equal(t, ScreenMessage, st.Screen)
	require.NotNil(t, st.Message)
	assert.Equal(t, "Fehler: Sprachfehler", st.Message.Title)
	assert.Contains(t, st.Message.Text, "unsupported language")
	assert.Equal(t, "de", f.m.Language())

	f.m.Enter(context.Background())
	assert.Equal(t, ScreenLanguageSelect, f.m.State().Screen)
	assert.Nil(t, f.m.State().Message)
}

func TestSelectKeyboard(t *testing.T) {
	f := newFixture(t)
	f.m.Enter(context.Background())
	f.m.NextItem()
	f.m.Enter(context.Background())

	st := f.m.State()
	assert.Equal(t, []string{"us"}, f.applied)
	assert.Equal(t, "us", st.Keyboard)
	assert.Equal(t, ScreenMainMenu, st.Screen)
	assert.Equal(t, 0, st.SelectedIndex)
}

func TestSelectKeyboardFailureStays(t *testing.T) {
	f := newFixture(t)
	f.m.keyboard = keyboard.ApplierFunc(func(context.Context, string) error {
		return keyboard.ErrInvalidLayout
	})
	f.m.Enter(context.Background())
	f.m.Enter(context.Background())

	st := f.m.State()
	require.Equal(t, ScreenMessage, st.Screen)
	assert.Equal(t, f.m.Text("ERROR_TITLE_PREFIX")+f.m.Text("ERROR_KEYBOARD_TITLE"), st.Message.Title)

	f.m.Back()
	assert.Equal(t, ScreenKeyboardSelect, f.m.State().Screen)
}

func TestNotImplementedModules(t *testing.T) {
	for _, id := range []string{MenuBackup, MenuKeys} {
		t.Run(id, func(t *testing.T) {
			f := newFixture(t)
			f.toMainMenu(t)
			for f.m.State().MenuItems[f.m.State().SelectedIndex].ID != id {
				f.m.NextItem()
			}
			title := f.m.State().MenuItems[f.m.State().SelectedIndex].Title

			f.m.Enter(context.Background())

			st := f.m.State()
			require.Equal(t, ScreenMessage, st.Screen)
			assert.Equal(t, title, st.Message.Title)
			assert.Equal(t, f.m.Text("LANG_NOT_IMPLEMENTED"), st.Message.Text)

			f.m.Back()
			assert.Equal(t, ScreenMainMenu, f.m.State().Screen)
		})
	}
}

func TestBackspaceNavigation(t *testing.T) {
	f := newFixture(t)
	f.toMainMenu(t)

	f.m.Back()
	assert.Equal(t, ScreenKeyboardSelect, f.m.State().Screen)

	f.m.Back()
	assert.Equal(t, ScreenLanguageSelect, f.m.State().Screen)
	assert.Nil(t, f.m.State().Dialog)

	f.m.Back()
	assert.Equal(t, ScreenLanguageSelect, f.m.State().Screen)
	assert.Equal(t, YesNo{TitleKey: ExitConfirmTitleKey, MessageKey: "LANG_EXIT_CONFIRM"}, f.m.State().Dialog)
	assert.Equal(t, OptionNo, f.m.State().DialogOption)
}

func TestBackspaceOnFirstScreenAsksToExit(t *testing.T) {
	f := newFixture(t)
	f.m.Back()
	_, ok := f.m.State().Dialog.(YesNo)
	assert.True(t, ok)
}

func TestStartInstallation(t *testing.T) {
	f := newFixture(t)
	f.toInstallation(t)

	st := f.m.State()
	assert.Equal(t, StepWelcome, st.Step)
	assert.Equal(t, 0, st.TaskIndex)
	require.Len(t, st.Tasks, 4)
	assert.Equal(t, []Step{StepWelcome, StepDiskSetup, StepUserSetup, StepSummary},
		[]Step{st.Tasks[0].Step, st.Tasks[1].Step, st.Tasks[2].Step, st.Tasks[3].Step})
	assert.Equal(t, []int{0}, activeTasks(st))
	assert.Equal(t, f.m.Text("TASK_WELCOME"), st.Tasks[0].Title)
	assert.Equal(t, 0, st.Progress())
}

func TestBackspaceOnWelcomeLeavesWizard(t *testing.T) {
	f := newFixture(t)
	f.toInstallation(t)

	f.m.Back()

	st := f.m.State()
	assert.Equal(t, ScreenMainMenu, st.Screen)
	assert.Equal(t, StepNone, st.Step)
	assert.Empty(t, st.Tasks)
}

func TestWizardWalkthrough(t *testing.T) {
	f := newFixture(t)
	f.toInstallation(t)
	ctx := context.Background()

	f.m.NextStep()
	st := f.m.State()
	require.Equal(t, StepDiskSetup, st.Step)
	assert.True(t, f.m.NeedsDisks())
	assert.Equal(t, 25, st.Progress())
	assert.Equal(t, TaskCompleted, st.Tasks[0].Status)

	f.m.LoadDisks(ctx)
	st = f.m.State()
	assert.False(t, f.m.NeedsDisks())
	want, ok := disk.FirstSelectable(st.DiskItems)
	require.True(t, ok)
	assert.Equal(t, want, st.DiskCursor)
	assert.Equal(t, st.DiskItems[want].IDPath, st.SelectedDiskPath)

	f.m.MoveDiskCursor(1)
	st = f.m.State()
	require.True(t, st.DiskItems[st.DiskCursor].Selectable)
	target := st.SelectedDiskPath

	f.m.NextStep()
	st = f.m.State()
	require.Equal(t, StepUserSetup, st.Step)
	assert.Equal(t, target, st.Install.TargetDisk)
	assert.Equal(t, 50, st.Progress())

	for _, r := range " host1 " {
		f.m.InputRune(r)
	}
	f.m.Back()
	assert.Equal(t, " host1", f.m.State().InputBuffer, "backspace erases before going back")

	f.m.NextStep()
	st = f.m.State()
	require.Equal(t, StepSummary, st.Step)
	assert.Equal(t, "host1", st.Install.Hostname)
	assert.Equal(t, 75, st.Progress())

	f.m.NextStep()
	st = f.m.State()
	assert.Equal(t, StepSummary, st.Step, "last task stays")
	assert.Equal(t, 3, st.TaskIndex)
	assert.Equal(t, TaskCompleted, st.Tasks[3].Status)

	f.m.Back()
	st = f.m.State()
	assert.Equal(t, StepUserSetup, st.Step)
	assert.Equal(t, "host1", st.InputBuffer, "stored hostname is pre-filled")
	assert.Equal(t, TaskPending, st.Tasks[3].Status)
	assert.Equal(t, []int{2}, activeTasks(st))

	// Empty buffer: Backspace goes back a step.
	for range "host1" {
		f.m.Back()
	}
	require.Equal(t, StepUserSetup, f.m.State().Step)
	f.m.Back()
	assert.Equal(t, StepDiskSetup, f.m.State().Step)
	assert.Equal(t, target, f.m.State().SelectedDiskPath)
}

func TestReenteringUserSetupRestoresHostname(t *testing.T) {
	f := newFixture(t)
	f.toInstallation(t)
	f.m.NextStep()
	f.m.LoadDisks(context.Background())
	f.m.NextStep()
	for _, r := range "box" {
		f.m.InputRune(r)
	}
	f.m.NextStep()
	f.m.PreviousStep()
	f.m.PreviousStep()
	require.Equal(t, StepDiskSetup, f.m.State().Step)

	f.m.NextStep()
	assert.Equal(t, "box", f.m.State().InputBuffer)
}

func TestBackFromSummaryKeepsHostname(t *testing.T) {
	f := newFixture(t)
	f.toInstallation(t)
	f.m.NextStep()
	f.m.LoadDisks(context.Background())
	f.m.NextStep()
	for _, r := range "box" {
		f.m.InputRune(r)
	}
	f.m.NextStep()
	require.Equal(t, StepSummary, f.m.State().Step)
	require.Equal(t, "box", f.m.State().Install.Hostname)

	f.m.PreviousStep()
	st := f.m.State()
	require.Equal(t, StepUserSetup, st.Step)
	assert.Equal(t, "box", st.InputBuffer)

	f.m.NextStep()
	st = f.m.State()
	assert.Equal(t, StepSummary, st.Step)
	assert.Equal(t, "box", st.Install.Hostname)
}

func TestInputIgnoredOutsideTextSteps(t *testing.T) {
	f := newFixture(t)
	f.toInstallation(t)
	f.m.InputRune('x')
	assert.Equal(t, "", f.m.State().InputBuffer)
}

func TestTaskInvariantUnderRandomNavigation(t *testing.T) {
	f := newFixture(t)
	f.toInstallation(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		if f.m.State().Screen != ScreenSystemInstallation {
			f.m.StartInstallation()
		}
		if rng.Intn(3) == 0 {
			f.m.PreviousStep()
		} else {
			f.m.NextStep()
		}

		st := f.m.State()
		if len(st.Tasks) == 0 {
			continue
		}
		active := activeTasks(st)
		last := len(st.Tasks) - 1
		if len(active) == 0 {
			// Completing the last task leaves nothing active.
			require.Equal(t, last, st.TaskIndex)
			require.Equal(t, TaskCompleted, st.Tasks[last].Status)
			continue
		}
		require.Equal(t, []int{st.TaskIndex}, active, "iteration %d", i)
		require.Equal(t, st.Step, st.Tasks[st.TaskIndex].Step)
		for j := st.TaskIndex + 1; j < len(st.Tasks); j++ {
			require.Equal(t, TaskPending, st.Tasks[j].Status)
		}
	}
}

func TestSyncActiveTaskRepairsIndex(t *testing.T) {
	f := newFixture(t)
	f.toInstallation(t)

	f.m.st.Step = StepUserSetup
	f.m.syncActiveTask()

	st := f.m.State()
	assert.Equal(t, 2, st.TaskIndex)
	assert.Equal(t, []int{2}, activeTasks(st))
	assert.Equal(t, 1, f.logs.FilterMessage("Task index does not match step, repairing").Len())
}

func TestSyncActiveTaskWithoutMatch(t *testing.T) {
	f := newFixture(t)
	f.toInstallation(t)

	f.m.st.Step = StepKernelChoice
	f.m.syncActiveTask()

	assert.Empty(t, activeTasks(f.m.State()))
	entries := f.logs.FilterMessage("No task matches step").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)

	f.m.st.TaskIndex = 9
	f.m.syncActiveTask()
	assert.Equal(t, 1, f.logs.FilterMessage("Task index out of bounds").Len())
}

func TestOpeningDialogWhileOpenIsNoop(t *testing.T) {
	f := newFixture(t)
	f.toInstallation(t)

	f.m.RequestExit()
	f.m.SetDialogOption(OptionYes)
	before := f.m.State()

	f.m.OpenThemeSelector()
	f.m.OpenExampleDialog()
	f.m.RequestExit()

	after := f.m.State()
	assert.Equal(t, before.Dialog, after.Dialog)
	assert.Equal(t, before.DialogOption, after.DialogOption)
}

func TestExitConfirmation(t *testing.T) {
	tests := []struct {
		name     string
		option   int
		wantQuit bool
	}{
		{"no keeps running", OptionNo, false},
		{"yes quits", OptionYes, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.m.RequestExit()
			f.m.SetDialogOption(tt.option)
			f.m.ConfirmDialog()

			st := f.m.State()
			assert.Equal(t, tt.wantQuit, st.Quit)
			if !tt.wantQuit {
				assert.Nil(t, st.Dialog)
			}
		})
	}
}

func TestExitNotOfferedOnMessage(t *testing.T) {
	f := newFixture(t)
	f.m.ShowMessage("t", "x")
	f.m.RequestExit()
	assert.Nil(t, f.m.State().Dialog)
}

func TestExampleDialogConfirmOnlyCloses(t *testing.T) {
	f := newFixture(t)
	f.toInstallation(t)

	f.m.OpenExampleDialog()
	require.Equal(t, OptionYes, f.m.State().DialogOption)
	f.m.ConfirmDialog()

	st := f.m.State()
	assert.Nil(t, st.Dialog)
	assert.False(t, st.Quit)
	assert.Equal(t, 1, f.logs.FilterMessage("Unhandled YesNo dialog confirmation").Len())
}

func TestYesNoSelectionClamps(t *testing.T) {
	f := newFixture(t)
	f.m.RequestExit()

	f.m.MoveDialogOption(1)
	assert.Equal(t, OptionNo, f.m.State().DialogOption)
	f.m.MoveDialogOption(-1)
	f.m.MoveDialogOption(-1)
	assert.Equal(t, OptionYes, f.m.State().DialogOption)
	f.m.SetDialogOption(5)
	assert.Equal(t, OptionYes, f.m.State().DialogOption)
}

func TestThemeSelector(t *testing.T) {
	f := newFixture(t)
	count := theme.NewRegistry().Count()
	start := f.m.State().ThemeIndex

	f.m.OpenThemeSelector()
	require.Equal(t, ThemeSelector{}, f.m.State().Dialog)
	assert.Equal(t, start, f.m.State().DialogOption)

	f.m.st.DialogOption = 0
	f.m.MoveDialogOption(-1)
	assert.Equal(t, count-1, f.m.State().DialogOption)
	f.m.MoveDialogOption(1)
	assert.Equal(t, 0, f.m.State().DialogOption)

	f.m.CancelDialog()
	assert.Equal(t, start, f.m.State().ThemeIndex, "cancel keeps the theme")

	f.m.OpenThemeSelector()
	f.m.MoveDialogOption(1)
	f.m.ConfirmDialog()
	st := f.m.State()
	assert.Nil(t, st.Dialog)
	assert.Equal(t, (start+1)%count, st.ThemeIndex)
}

func TestToggleLogPanelOnlyDuringInstallation(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.m.ToggleLogPanel())
	assert.False(t, f.m.State().ShowLogPanel)

	f.toInstallation(t)
	assert.True(t, f.m.ToggleLogPanel())
	assert.True(t, f.m.State().ShowLogPanel)
	f.m.NextStep()
	assert.True(t, f.m.State().ShowLogPanel)
}

func TestDiskSelectionSurvivesRebuild(t *testing.T) {
	f := newFixture(t)
	f.toInstallation(t)
	f.m.NextStep()
	f.m.LoadDisks(context.Background())

	f.m.MoveDiskCursor(1)
	f.m.MoveDiskCursor(1)
	selected := f.m.State().SelectedDiskPath

	f.m.SetDisks(disk.SampleSnapshot(), nil)

	st := f.m.State()
	assert.Equal(t, selected, st.SelectedDiskPath)
	require.Less(t, st.DiskCursor, len(st.DiskItems))
	assert.Equal(t, selected, st.DiskItems[st.DiskCursor].IDPath)
	assert.True(t, st.DiskItems[st.DiskCursor].Selectable)
}

func TestSetDisksStates(t *testing.T) {
	f := newFixture(t)
	f.toInstallation(t)
	f.m.NextStep()

	f.m.SetDisks(nil, errors.New("probe failed"))
	st := f.m.State()
	assert.False(t, st.DisksLoading)
	assert.Nil(t, st.Disks)
	assert.Empty(t, st.DiskItems)

	f.m.SetDisks(&disk.SystemDiskInfo{}, nil)
	st = f.m.State()
	assert.True(t, st.Disks.IsEmpty())
	assert.Empty(t, st.DiskItems)
	assert.Equal(t, "", st.SelectedDiskPath)

	f.m.MoveDiskCursor(1)
	assert.Equal(t, 0, f.m.State().DiskCursor)
}

func TestMoveDiskCursorWithoutSelectableRows(t *testing.T) {
	f := newFixture(t)
	f.toInstallation(t)
	f.m.NextStep()
	f.m.SetDisks(&disk.SystemDiskInfo{Disks: []disk.PhysicalDisk{{Path: "/dev/sda"}}}, nil)

	f.m.MoveDiskCursor(-1)

	assert.Equal(t, 0, f.m.State().DiskCursor)
	assert.Equal(t, 1, f.logs.FilterMessage("No selectable disk item in navigation direction").Len())
}
