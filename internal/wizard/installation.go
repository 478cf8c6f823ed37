package wizard

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lunitool/lunitool/internal/disk"
)

func (m *Machine) newTasks() []Task {
	return []Task{
		{ID: "welcome", Title: m.tr.Text("TASK_WELCOME"), Step: StepWelcome, Status: TaskActive},
		{ID: "disk_setup", Title: m.tr.Text("TASK_DISK_SETUP"), Step: StepDiskSetup, Status: TaskPending},
		{ID: "user_setup", Title: m.tr.Text("TASK_USER_SETUP"), Step: StepUserSetup, Status: TaskPending},
		{ID: "summary", Title: m.tr.Text("TASK_SUMMARY"), Step: StepSummary, Status: TaskPending},
	}
}

// StartInstallation opens the installation wizard on a fresh task list.
func (m *Machine) StartInstallation() {
	m.st.Step = StepWelcome
	m.st.TaskIndex = 0
	m.st.Tasks = m.newTasks()
	m.st.Install = InstallConfig{}
	m.st.InputBuffer = ""
	m.syncActiveTask()
	m.setScreen(ScreenSystemInstallation)
}

// NextStep completes the current task and advances to the next one. On the
// last task it only marks that task completed.
func (m *Machine) NextStep() {
	if len(m.st.Tasks) == 0 {
		m.log.Warn("Next step requested without installation tasks")
		return
	}

	if m.st.TaskIndex >= len(m.st.Tasks)-1 {
		last := &m.st.Tasks[len(m.st.Tasks)-1]
		last.Status = TaskCompleted
		m.log.Info("Last installation task reached", zap.Stringer("step", last.Step))
		return
	}

	leaving := m.st.Step
	m.st.Tasks[m.st.TaskIndex].Status = TaskCompleted
	m.st.TaskIndex++
	next := m.st.Tasks[m.st.TaskIndex]
	m.log.Info("Advancing to task", zap.String("task", next.ID), zap.Stringer("step", next.Step))

	m.leaveStep(leaving)
	m.st.Step = next.Step
	m.syncActiveTask()
	m.enterStep(next.Step)
}

// PreviousStep moves back one task. From the first task it leaves the
// wizard for the main menu and discards the task list.
func (m *Machine) PreviousStep() {
	if len(m.st.Tasks) == 0 || m.st.TaskIndex <= 0 {
		m.log.Debug("Leaving installation wizard", zap.Stringer("step", m.st.Step))
		m.setScreen(ScreenMainMenu)
		m.st.Step = StepNone
		m.st.Tasks = nil
		m.st.TaskIndex = 0
		m.st.InputBuffer = ""
		return
	}

	m.st.Tasks[m.st.TaskIndex].Status = TaskPending
	m.st.TaskIndex--
	m.st.Tasks[m.st.TaskIndex].Status = TaskActive
	m.st.Step = m.st.Tasks[m.st.TaskIndex].Step
	m.st.InputBuffer = ""
	if m.st.Step == StepUserSetup {
		m.st.InputBuffer = m.st.Install.Hostname
	}
}

func (m *Machine) leaveStep(step Step) {
	switch step {
	case StepDiskSetup:
		m.st.Install.TargetDisk = m.st.SelectedDiskPath
	case StepUserSetup:
		m.st.Install.Hostname = strings.TrimSpace(m.st.InputBuffer)
		m.st.InputBuffer = ""
	}
}

func (m *Machine) enterStep(step Step) {
	switch step {
	case StepDiskSetup:
		m.st.SelectedDiskPath = ""
		m.st.DiskItems = nil
		m.st.DiskCursor = 0
		m.st.DisksLoading = true
	case StepUserSetup:
		m.st.InputBuffer = m.st.Install.Hostname
	}
}

// syncActiveTask makes the task matching Step the only active one. A task
// index that disagrees with Step is repaired and logged.
func (m *Machine) syncActiveTask() {
	for i := range m.st.Tasks {
		if m.st.Tasks[i].Status == TaskActive {
			m.st.Tasks[i].Status = TaskPending
		}
	}

	if m.st.TaskIndex < 0 || m.st.TaskIndex >= len(m.st.Tasks) {
		m.log.Warn("Task index out of bounds",
			zap.Int("index", m.st.TaskIndex),
			zap.Int("tasks", len(m.st.Tasks)))
		return
	}

	if m.st.Tasks[m.st.TaskIndex].Step == m.st.Step {
		m.st.Tasks[m.st.TaskIndex].Status = TaskActive
		return
	}

	m.log.Warn("Task index does not match step, repairing",
		zap.Int("index", m.st.TaskIndex),
		zap.Stringer("task_step", m.st.Tasks[m.st.TaskIndex].Step),
		zap.Stringer("step", m.st.Step))
	for i := range m.st.Tasks {
		if m.st.Tasks[i].Step == m.st.Step {
			m.st.Tasks[i].Status = TaskActive
			m.st.TaskIndex = i
			return
		}
	}
	m.log.Error("No task matches step", zap.Stringer("step", m.st.Step))
}

// InputRune appends r to the input buffer on text input steps.
func (m *Machine) InputRune(r rune) {
	if m.st.Screen != ScreenSystemInstallation || !m.st.Step.RequiresTextInput() {
		return
	}
	m.st.InputBuffer += string(r)
}

// MoveDiskCursor moves the disk selection by one selectable row in
// direction dir, wrapping around.
func (m *Machine) MoveDiskCursor(dir int) {
	if m.st.Step != StepDiskSetup || len(m.st.DiskItems) == 0 {
		return
	}
	next, ok := disk.StepSelectable(m.st.DiskItems, m.st.DiskCursor, dir)
	if !ok {
		m.log.Warn("No selectable disk item in navigation direction", zap.Int("direction", dir))
		return
	}
	m.st.DiskCursor = next
	m.st.SelectedDiskPath = m.st.DiskItems[next].IDPath
	m.log.Debug("Disk item selected", zap.String("path", m.st.SelectedDiskPath), zap.Int("index", next))
}

// NeedsDisks reports whether the disk step is waiting for a snapshot.
func (m *Machine) NeedsDisks() bool {
	return m.st.Screen == ScreenSystemInstallation && m.st.Step == StepDiskSetup && m.st.DisksLoading
}

// DiskProvider returns the snapshot source.
func (m *Machine) DiskProvider() disk.Provider {
	return m.disks
}

// SetDisks installs a snapshot and rebuilds the display list. The cursor
// stays on SelectedDiskPath when it still exists, otherwise it moves to the
// first selectable row.
func (m *Machine) SetDisks(info *disk.SystemDiskInfo, err error) {
	m.st.DisksLoading = false
	if err != nil {
		m.log.Warn("Disk snapshot unavailable", zap.Error(err))
		m.st.Disks = nil
		m.st.DiskItems = nil
		m.st.DiskCursor = 0
		return
	}

	m.st.Disks = info
	m.st.DiskItems = disk.BuildDisplayList(info)
	m.log.Debug("Disk display list built", zap.Int("rows", len(m.st.DiskItems)))

	if m.st.SelectedDiskPath != "" {
		if i, ok := disk.IndexOfPath(m.st.DiskItems, m.st.SelectedDiskPath); ok {
			m.st.DiskCursor = i
			return
		}
	}
	if i, ok := disk.FirstSelectable(m.st.DiskItems); ok {
		m.st.DiskCursor = i
		m.st.SelectedDiskPath = m.st.DiskItems[i].IDPath
		return
	}
	m.st.DiskCursor = 0
	m.st.SelectedDiskPath = ""
}

// LoadDisks reads a snapshot from the provider synchronously.
func (m *Machine) LoadDisks(ctx context.Context) {
	m.st.DisksLoading = true
	info, err := m.disks.Snapshot(ctx)
	m.SetDisks(info, err)
}
