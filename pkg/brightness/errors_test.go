package brightness_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hoppxi/lumo/pkg/brightness"
)

func TestHostErrorCodes(t *testing.T) {
	tests := []struct {
		err     *brightness.HostError
		code    brightness.Code
		message string
	}{
		{brightness.ErrChangeVerification, -1, "Unable to change screen brightness"},
		{brightness.ErrNullParameter, -2, "Unexpected error on null brightness"},
		{brightness.ErrMissingValue, -9, "Brightness value returns null"},
		{brightness.ErrActivityBinding, -10, "Unexpected error on activity binding"},
		{brightness.ErrSettingLookup, -11, "Could not find system setting screen brightness value"},
	}

	for _, tt := range tests {
		if tt.err.Code != tt.code {
			t.Errorf("%v: code = %d, want %d", tt.err, tt.err.Code, tt.code)
		}
		if tt.err.Message != tt.message {
			t.Errorf("code %d: message = %q, want %q", tt.code, tt.err.Message, tt.message)
		}
	}
}

func TestHostErrorIsMatchesByCode(t *testing.T) {
	err := &brightness.HostError{Code: brightness.CodeMissingValue, Message: "different text"}
	if !errors.Is(err, brightness.ErrMissingValue) {
		t.Error("errors.Is should match HostError by code")
	}
	if errors.Is(err, brightness.ErrSettingLookup) {
		t.Error("errors.Is matched a different code")
	}
}

func TestOutOfRangeErrorMessage(t *testing.T) {
	err := &brightness.OutOfRangeError{Value: -0.1, Min: 0, Max: 1}
	msg := err.Error()
	for _, want := range []string{"-0.1", "0", "1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestNewValue(t *testing.T) {
	tests := []struct {
		value   float64
		wantErr bool
	}{
		{0.0, false},
		{1.0, false},
		{0.42, false},
		{-0.001, true},
		{1.001, true},
	}

	for _, tt := range tests {
		v, err := brightness.NewValue(tt.value)
		if tt.wantErr {
			var rangeErr *brightness.OutOfRangeError
			if !errors.As(err, &rangeErr) {
				t.Errorf("NewValue(%v) = %v, want OutOfRangeError", tt.value, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewValue(%v): %v", tt.value, err)
			continue
		}
		if float64(v) != tt.value {
			t.Errorf("NewValue(%v) = %v", tt.value, v)
		}
	}
}
