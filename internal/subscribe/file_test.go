package subscribe

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileNotifierEmitsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brightness")
	if err := os.WriteFile(path, []byte("50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	current := 0.5
	read := func() (float64, bool, error) { return current, true, nil }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := NewFile(path, read).Subscribe(ctx)
	if err != nil {
		t.Fatal(err)
	}

	current = 0.9
	if err := os.WriteFile(path, []byte("90\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case raw := <-events:
		if v, ok := raw.(float64); !ok || v != 0.9 {
			t.Errorf("payload = %v, want 0.9", raw)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no event after write")
	}
}
