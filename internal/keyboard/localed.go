package keyboard

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	localedDest   = "org.freedesktop.locale1"
	localedPath   = dbus.ObjectPath("/org/freedesktop/locale1")
	localedMethod = "org.freedesktop.locale1.SetVConsoleKeyboard"
)

// DBusConn is the subset of *dbus.Conn used by LocaledApplier.
type DBusConn interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	Close() error
}

// LocaledApplier sets the console keymap through systemd-localed. With
// convert enabled localed also derives the matching X11 layout.
//
// The change is persistent: localed rewrites /etc/vconsole.conf and the X11
// keyboard configuration, so the layout survives a reboot.
type LocaledApplier struct {
	connect func() (DBusConn, error)
}

// NewLocaledApplier connects to the system bus on every Apply.
func NewLocaledApplier() *LocaledApplier {
	return &LocaledApplier{connect: connectSystemBus}
}

// NewLocaledApplierWithConn uses an existing connection. Close is still called
// after each Apply, so pass a connection the caller does not need afterwards
// or one whose Close is a no-op.
func NewLocaledApplierWithConn(conn DBusConn) *LocaledApplier {
	return &LocaledApplier{connect: func() (DBusConn, error) { return conn, nil }}
}

func connectSystemBus() (DBusConn, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Apply implements Applier.
func (l *LocaledApplier) Apply(ctx context.Context, layout string) error {
	if err := ValidateLayout(layout); err != nil {
		return err
	}

	conn, err := l.connect()
	if err != nil {
		return fmt.Errorf("localed: connect system bus: %w", err)
	}
	defer conn.Close()

	// keymap, keymap_toggle, convert, interactive
	call := conn.Object(localedDest, localedPath).
		CallWithContext(ctx, localedMethod, 0, layout, "", true, false)
	if call.Err != nil {
		return fmt.Errorf("localed: SetVConsoleKeyboard %s: %w", layout, call.Err)
	}
	return nil
}
