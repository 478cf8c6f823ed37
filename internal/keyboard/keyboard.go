package keyboard

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrInvalidLayout is returned for empty or malformed layout names.
var ErrInvalidLayout = errors.New("invalid keyboard layout")

var layoutPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Applier activates a keyboard layout such as "de" or "us".
type Applier interface {
	Apply(ctx context.Context, layout string) error
}

// ApplierFunc adapts a function to the Applier interface.
type ApplierFunc func(ctx context.Context, layout string) error

// Apply implements Applier.
func (f ApplierFunc) Apply(ctx context.Context, layout string) error {
	return f(ctx, layout)
}

// ValidateLayout checks that layout is a plausible keymap name.
func ValidateLayout(layout string) error {
	if !layoutPattern.MatchString(layout) {
		return fmt.Errorf("%w: %q", ErrInvalidLayout, layout)
	}
	return nil
}

// Chain tries each backend in order and stops at the first success. When
// every backend fails the individual errors are combined.
type Chain []Applier

// Apply implements Applier.
func (c Chain) Apply(ctx context.Context, layout string) error {
	if err := ValidateLayout(layout); err != nil {
		return err
	}
	if len(c) == 0 {
		return errors.New("no keyboard backends configured")
	}

	var errs error
	for _, a := range c {
		err := a.Apply(ctx, layout)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrInvalidLayout) {
			return err
		}
		errs = multierr.Append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	return errs
}

// BestEffort wraps an Applier so that backend failures are logged and
// swallowed. Invalid layout names are still reported.
type BestEffort struct {
	Next   Applier
	Logger *zap.Logger
}

// NewBestEffort returns a BestEffort around next.
func NewBestEffort(next Applier, logger *zap.Logger) *BestEffort {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BestEffort{Next: next, Logger: logger}
}

// Apply implements Applier.
func (b *BestEffort) Apply(ctx context.Context, layout string) error {
	err := b.Next.Apply(ctx, layout)
	if err == nil {
		b.Logger.Info("Keyboard layout applied", zap.String("layout", layout))
		return nil
	}
	if errors.Is(err, ErrInvalidLayout) {
		return err
	}

	b.Logger.Warn("Could not apply keyboard layout, continuing",
		zap.String("layout", layout),
		zap.Errors("backend_errors", multierr.Errors(err)),
	)
	return nil
}

// NewSystemApplier returns the default production chain wrapped in
// BestEffort. See systemChain for the order.
func NewSystemApplier(logger *zap.Logger) Applier {
	return NewBestEffort(systemChain(), logger)
}

// systemChain tries the session-only tools first: loadkeys, then setxkbmap.
// systemd-localed, which persists the layout system-wide, comes last.
func systemChain() Chain {
	return Chain{
		NewLoadkeysApplier(),
		NewSetxkbmapApplier(),
		NewLocaledApplier(),
	}
}
