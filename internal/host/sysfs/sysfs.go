// Package sysfs controls the display backlight through
// /sys/class/backlight.
package sysfs

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hoppxi/lumo/pkg/brightness"
)

const DefaultRoot = "/sys/class/backlight"

// Backlight exposes one backlight device as a brightness host. The
// baseline value is captured once at construction and serves as the
// reset target.
type Backlight struct {
	dir      string
	max      float64
	baseline float64
	hasBase  bool
}

// New opens the named device under /sys/class/backlight. With an empty
// name the first device found is used.
func New(device string) (*Backlight, error) {
	return NewAt(DefaultRoot, device)
}

// NewAt is New with a custom sysfs root.
func NewAt(root, device string) (*Backlight, error) {
	dir, err := findDevice(root, device)
	if err != nil {
		return nil, err
	}

	rawMax, err := readIntFile(filepath.Join(dir, "max_brightness"))
	if err != nil {
		return nil, fmt.Errorf("read max_brightness: %w", err)
	}
	if rawMax <= 0 {
		return nil, brightness.ErrSettingLookup
	}

	b := &Backlight{dir: dir, max: float64(rawMax)}
	if v, ok, err := b.ScreenBrightness(context.Background()); err == nil && ok {
		b.baseline = v
		b.hasBase = true
	}
	return b, nil
}

func findDevice(root, device string) (string, error) {
	if device != "" {
		dir := filepath.Join(root, device)
		if _, err := os.Stat(dir); err != nil {
			return "", brightness.ErrSettingLookup
		}
		return dir, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil || len(entries) == 0 {
		return "", brightness.ErrSettingLookup
	}
	return filepath.Join(root, entries[0].Name()), nil
}

// Device returns the kernel device name, e.g. "intel_backlight".
func (b *Backlight) Device() string { return filepath.Base(b.dir) }

// MaxRaw returns the device's raw maximum brightness.
func (b *Backlight) MaxRaw() float64 { return b.max }

// BrightnessPath returns the file a change watcher should observe.
func (b *Backlight) BrightnessPath() string {
	return filepath.Join(b.dir, "brightness")
}

func (b *Backlight) SystemBrightness(ctx context.Context) (float64, bool, error) {
	return b.baseline, b.hasBase, nil
}

// ScreenBrightness reads the live value. actual_brightness is tried
// first: after a reset the brightness file can lag behind what the
// panel really shows on some drivers.
func (b *Backlight) ScreenBrightness(ctx context.Context) (float64, bool, error) {
	for _, name := range []string{"actual_brightness", "brightness"} {
		raw, err := readIntFile(filepath.Join(b.dir, name))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return 0, false, fmt.Errorf("read %s: %w", name, err)
		}
		return float64(raw) / b.max, true, nil
	}
	return 0, false, nil
}

// SetScreenBrightness writes the denormalized value and reads it back;
// a readback mismatch surfaces as a change verification failure.
func (b *Backlight) SetScreenBrightness(ctx context.Context, v float64) error {
	raw := int(math.Round(v * b.max))
	path := b.BrightnessPath()

	if err := os.WriteFile(path, []byte(strconv.Itoa(raw)), 0o644); err != nil {
		return fmt.Errorf("write brightness: %w", err)
	}

	got, err := readIntFile(path)
	if err != nil {
		return fmt.Errorf("verify brightness: %w", err)
	}
	if got != raw {
		return brightness.ErrChangeVerification
	}
	return nil
}

// ResetScreenBrightness restores the launch-time baseline.
func (b *Backlight) ResetScreenBrightness(ctx context.Context) error {
	if !b.hasBase {
		return brightness.ErrNullParameter
	}
	return b.SetScreenBrightness(ctx, b.baseline)
}

func readIntFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	return n, nil
}
