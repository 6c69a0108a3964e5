// Package mock is a scripted stand-in for the platform brightness
// capability, used by tests and the mock backend.
package mock

import (
	"context"
	"sync"
)

// Notifier is an in-memory change feed. Every subscriber shares one
// underlying channel, mirroring the single host notification stream.
type Notifier struct {
	mu         sync.Mutex
	subscribes int
	ch         chan any
}

func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan any, 32)}
}

func (n *Notifier) Subscribe(ctx context.Context) (<-chan any, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribes++
	return n.ch, nil
}

// SubscribeCalls reports how many times Subscribe ran.
func (n *Notifier) SubscribeCalls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.subscribes
}

// Emit injects a raw payload into the feed.
func (n *Notifier) Emit(payload any) {
	n.ch <- payload
}

// Host simulates the outbound brightness channel. Set and Reset apply
// their effect to the simulated current value and emit it on the
// linked Notifier, like a real host would.
type Host struct {
	mu       sync.Mutex
	system   *float64
	current  *float64
	getErr   error
	setErr   error
	resetErr error

	setCalls   []float64
	resetCalls int

	notifier *Notifier
}

func NewHost(system, current float64) *Host {
	return &Host{system: &system, current: &current, notifier: NewNotifier()}
}

// Notifier returns the change feed fed by Set and Reset.
func (h *Host) Notifier() *Notifier { return h.notifier }

// ScriptSystem replaces the launch-time baseline value.
func (h *Host) ScriptSystem(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.system = &v
}

// ScriptCurrent replaces the live value.
func (h *Host) ScriptCurrent(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = &v
}

// ScriptMissing makes both getters report an absent value.
func (h *Host) ScriptMissing() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.system = nil
	h.current = nil
}

// FailSet makes SetScreenBrightness return err.
func (h *Host) FailSet(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.setErr = err
}

// FailReset makes ResetScreenBrightness return err.
func (h *Host) FailReset(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.resetErr = err
}

// FailReads makes both getters return err.
func (h *Host) FailReads(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.getErr = err
}

// SetCalls returns every value the gateway handed to the host.
func (h *Host) SetCalls() []float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]float64, len(h.setCalls))
	copy(out, h.setCalls)
	return out
}

// ResetCalls reports how many times ResetScreenBrightness ran.
func (h *Host) ResetCalls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.resetCalls
}

func (h *Host) SystemBrightness(ctx context.Context) (float64, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.getErr != nil {
		return 0, false, h.getErr
	}
	if h.system == nil {
		return 0, false, nil
	}
	return *h.system, true, nil
}

func (h *Host) ScreenBrightness(ctx context.Context) (float64, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.getErr != nil {
		return 0, false, h.getErr
	}
	if h.current == nil {
		return 0, false, nil
	}
	return *h.current, true, nil
}

func (h *Host) SetScreenBrightness(ctx context.Context, v float64) error {
	h.mu.Lock()
	h.setCalls = append(h.setCalls, v)
	if h.setErr != nil {
		err := h.setErr
		h.mu.Unlock()
		return err
	}
	h.current = &v
	h.mu.Unlock()

	h.notifier.Emit(v)
	return nil
}

func (h *Host) ResetScreenBrightness(ctx context.Context) error {
	h.mu.Lock()
	h.resetCalls++
	if h.resetErr != nil {
		err := h.resetErr
		h.mu.Unlock()
		return err
	}
	if h.system == nil {
		h.mu.Unlock()
		return nil
	}
	v := *h.system
	h.current = &v
	h.mu.Unlock()

	h.notifier.Emit(v)
	return nil
}
