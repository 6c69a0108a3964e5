package bridge

import (
	"errors"
	"testing"

	"github.com/hoppxi/lumo/internal/config"
	"github.com/hoppxi/lumo/pkg/brightness"
)

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    float64
		reset   bool
		wantErr error
	}{
		{name: "set", payload: `{"brightness": 0.5}`, want: 0.5},
		{name: "set zero", payload: `{"brightness": 0}`, want: 0},
		{name: "reset", payload: `{"reset": true}`, reset: true},
		{name: "missing brightness", payload: `{}`, wantErr: brightness.ErrNullParameter},
		{name: "null brightness", payload: `{"brightness": null}`, wantErr: brightness.ErrNullParameter},
		{name: "garbage", payload: `not json`, wantErr: brightness.ErrNullParameter},
		{name: "wrong type", payload: `{"brightness": "half"}`, wantErr: brightness.ErrNullParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := decodeCommand([]byte(tt.payload))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("decodeCommand = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if cmd.Reset != tt.reset {
				t.Errorf("Reset = %v, want %v", cmd.Reset, tt.reset)
			}
			if !tt.reset && *cmd.Brightness != tt.want {
				t.Errorf("Brightness = %v, want %v", *cmd.Brightness, tt.want)
			}
		})
	}
}

func TestTopics(t *testing.T) {
	b := &Bridge{cfg: config.MQTT{Topic: "home/panel"}}
	if got := b.stateTopic(); got != "home/panel/state" {
		t.Errorf("stateTopic = %q", got)
	}
	if got := b.commandTopic(); got != "home/panel/set" {
		t.Errorf("commandTopic = %q", got)
	}
}
