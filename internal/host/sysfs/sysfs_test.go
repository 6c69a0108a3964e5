package sysfs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/hoppxi/lumo/pkg/brightness"
)

func writeDevice(t *testing.T, root, name string, current, max int) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for file, value := range map[string]int{
		"brightness":        current,
		"actual_brightness": current,
		"max_brightness":    max,
	} {
		if err := os.WriteFile(filepath.Join(dir, file), []byte(strconv.Itoa(value)+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func readRaw(t *testing.T, dir string) int {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "brightness"))
	if err != nil {
		t.Fatal(err)
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestNewPicksNamedDevice(t *testing.T) {
	root := t.TempDir()
	writeDevice(t, root, "acpi_video0", 10, 100)
	writeDevice(t, root, "intel_backlight", 200, 400)

	b, err := NewAt(root, "intel_backlight")
	if err != nil {
		t.Fatal(err)
	}
	if b.Device() != "intel_backlight" {
		t.Errorf("Device() = %q", b.Device())
	}
	if b.MaxRaw() != 400 {
		t.Errorf("MaxRaw() = %v, want 400", b.MaxRaw())
	}
}

func TestNewPicksFirstDevice(t *testing.T) {
	root := t.TempDir()
	writeDevice(t, root, "amdgpu_bl0", 128, 256)

	b, err := NewAt(root, "")
	if err != nil {
		t.Fatal(err)
	}
	if b.Device() != "amdgpu_bl0" {
		t.Errorf("Device() = %q, want amdgpu_bl0", b.Device())
	}
}

func TestNewFailsWithoutDevice(t *testing.T) {
	root := t.TempDir()

	if _, err := NewAt(root, ""); !errors.Is(err, brightness.ErrSettingLookup) {
		t.Errorf("empty root: err = %v, want ErrSettingLookup", err)
	}
	if _, err := NewAt(root, "nope"); !errors.Is(err, brightness.ErrSettingLookup) {
		t.Errorf("missing name: err = %v, want ErrSettingLookup", err)
	}
}

func TestScreenBrightnessNormalizes(t *testing.T) {
	root := t.TempDir()
	writeDevice(t, root, "panel", 128, 256)

	b, err := NewAt(root, "panel")
	if err != nil {
		t.Fatal(err)
	}

	v, ok, err := b.ScreenBrightness(context.Background())
	if err != nil || !ok {
		t.Fatalf("ScreenBrightness: %v, present %v", err, ok)
	}
	if v != 0.5 {
		t.Errorf("ScreenBrightness = %v, want 0.5", v)
	}
}

func TestSetWritesDenormalized(t *testing.T) {
	root := t.TempDir()
	dir := writeDevice(t, root, "panel", 50, 100)

	b, err := NewAt(root, "panel")
	if err != nil {
		t.Fatal(err)
	}

	if err := b.SetScreenBrightness(context.Background(), 0.25); err != nil {
		t.Fatal(err)
	}
	if raw := readRaw(t, dir); raw != 25 {
		t.Errorf("brightness file = %d, want 25", raw)
	}
}

func TestResetRestoresBaseline(t *testing.T) {
	root := t.TempDir()
	dir := writeDevice(t, root, "panel", 80, 100)

	b, err := NewAt(root, "panel")
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := b.SetScreenBrightness(ctx, 0.2); err != nil {
		t.Fatal(err)
	}
	if err := b.ResetScreenBrightness(ctx); err != nil {
		t.Fatal(err)
	}
	if raw := readRaw(t, dir); raw != 80 {
		t.Errorf("brightness file after reset = %d, want 80", raw)
	}
}

func TestSystemBrightnessIgnoresLaterSets(t *testing.T) {
	root := t.TempDir()
	writeDevice(t, root, "panel", 80, 100)

	b, err := NewAt(root, "panel")
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := b.SetScreenBrightness(ctx, 0.1); err != nil {
		t.Fatal(err)
	}

	v, ok, err := b.SystemBrightness(ctx)
	if err != nil || !ok {
		t.Fatalf("SystemBrightness: %v, present %v", err, ok)
	}
	if v != 0.8 {
		t.Errorf("SystemBrightness = %v, want launch value 0.8", v)
	}
}
