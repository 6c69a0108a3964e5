// Package logind sets the backlight through org.freedesktop.login1 so
// unprivileged sessions can write without owning the sysfs files.
// Reads still go through sysfs, logind has no getter.
package logind

import (
	"context"
	"fmt"
	"math"

	"github.com/godbus/dbus/v5"

	"github.com/hoppxi/lumo/internal/host/sysfs"
	"github.com/hoppxi/lumo/pkg/brightness"
)

const (
	busName     = "org.freedesktop.login1"
	sessionPath = "/org/freedesktop/login1/session/auto"
	setMethod   = "org.freedesktop.login1.Session.SetBrightness"
	subsystem   = "backlight"
)

type Session struct {
	conn *dbus.Conn
	obj  dbus.BusObject
	fs   *sysfs.Backlight
}

// New binds the caller's logind session. A missing system bus or
// session surfaces as an activity binding failure.
func New(fs *sysfs.Backlight) (*Session, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, brightness.ErrActivityBinding
	}

	return &Session{
		conn: conn,
		obj:  conn.Object(busName, sessionPath),
		fs:   fs,
	}, nil
}

func (s *Session) Close() error {
	return s.conn.Close()
}

func (s *Session) SystemBrightness(ctx context.Context) (float64, bool, error) {
	return s.fs.SystemBrightness(ctx)
}

func (s *Session) ScreenBrightness(ctx context.Context) (float64, bool, error) {
	return s.fs.ScreenBrightness(ctx)
}

func (s *Session) SetScreenBrightness(ctx context.Context, v float64) error {
	raw := uint32(math.Round(v * s.fs.MaxRaw()))
	call := s.obj.CallWithContext(ctx, setMethod, 0, subsystem, s.fs.Device(), raw)
	if call.Err != nil {
		return fmt.Errorf("logind SetBrightness: %w", call.Err)
	}
	return nil
}

func (s *Session) ResetScreenBrightness(ctx context.Context) error {
	base, ok, err := s.fs.SystemBrightness(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return brightness.ErrNullParameter
	}
	return s.SetScreenBrightness(ctx, base)
}
