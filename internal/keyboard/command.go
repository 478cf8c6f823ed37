package keyboard

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command.
type Runner func(ctx context.Context, name string, args ...string) error

// ExecRunner runs the command and folds its combined output into the error.
func ExecRunner(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(out.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// CommandApplier applies a layout by running a single external tool.
type CommandApplier struct {
	Name string
	Args func(layout string) []string
	Run  Runner
}

// NewLoadkeysApplier switches the Linux console keymap.
func NewLoadkeysApplier() *CommandApplier {
	return &CommandApplier{
		Name: "loadkeys",
		Args: func(layout string) []string { return []string{layout} },
		Run:  ExecRunner,
	}
}

// NewSetxkbmapApplier switches the layout of a running X session.
func NewSetxkbmapApplier() *CommandApplier {
	return &CommandApplier{
		Name: "setxkbmap",
		Args: func(layout string) []string { return []string{layout} },
		Run:  ExecRunner,
	}
}

// Apply implements Applier.
func (c *CommandApplier) Apply(ctx context.Context, layout string) error {
	if err := ValidateLayout(layout); err != nil {
		return err
	}
	run := c.Run
	if run == nil {
		run = ExecRunner
	}
	return run(ctx, c.Name, c.Args(layout)...)
}
