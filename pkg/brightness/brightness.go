package brightness

import (
	"context"
	"sync"
)

// Min and Max bound every brightness value handled by the gateway.
const (
	Min = 0.0
	Max = 1.0
)

// Value is a fraction of maximum hardware brightness in [Min, Max].
type Value float64

// NewValue validates v. Out-of-range values are rejected, never clamped.
func NewValue(v float64) (Value, error) {
	if v < Min || v > Max {
		return 0, &OutOfRangeError{Value: v, Min: Min, Max: Max}
	}
	return Value(v), nil
}

// Host is the outbound request/response side of the platform
// brightness capability.
type Host interface {
	// SystemBrightness returns the brightness recorded when the host
	// adapter started, independent of any value set afterwards. The
	// boolean reports whether a value was present at all.
	SystemBrightness(ctx context.Context) (float64, bool, error)

	// ScreenBrightness returns the brightness currently in effect.
	ScreenBrightness(ctx context.Context) (float64, bool, error)

	SetScreenBrightness(ctx context.Context, v float64) error
	ResetScreenBrightness(ctx context.Context) error
}

// Notifier is the inbound side: a broadcast stream of raw
// brightness-change payloads. Payloads are untyped on purpose, the
// gateway casts them at the boundary and drops what it cannot cast.
type Notifier interface {
	Subscribe(ctx context.Context) (<-chan any, error)
}

// Gateway adapts a host brightness capability to a validated API.
// Every operation is an independent host round-trip with no retries,
// no timeouts and no local recovery; the only shared state is the
// lazily created change broker.
type Gateway struct {
	host     Host
	notifier Notifier

	mu     sync.Mutex
	broker *broker
}

func NewGateway(host Host, notifier Notifier) *Gateway {
	return &Gateway{host: host, notifier: notifier}
}

// SystemBrightness returns the launch-time baseline brightness.
func (g *Gateway) SystemBrightness(ctx context.Context) (Value, error) {
	raw, ok, err := g.host.SystemBrightness(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrMissingValue
	}
	return NewValue(raw)
}

// CurrentBrightness returns the brightness currently in effect.
//
// Right after ResetBrightness some drivers keep serving a cached
// pre-reset value for a short while; callers must not assume immediate
// consistency after a reset.
func (g *Gateway) CurrentBrightness(ctx context.Context) (Value, error) {
	raw, ok, err := g.host.ScreenBrightness(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrMissingValue
	}
	return NewValue(raw)
}

// SetBrightness validates v locally and hands it to the host. The host
// is never called with an out-of-range value.
func (g *Gateway) SetBrightness(ctx context.Context, v float64) error {
	if v < Min || v > Max {
		return &OutOfRangeError{Value: v, Min: Min, Max: Max}
	}
	return g.host.SetScreenBrightness(ctx, v)
}

// ResetBrightness restores the platform default brightness. Hosts
// implement this as a set-to-default, so it shares the SetBrightness
// error taxonomy.
//
// A SetBrightness racing an in-flight reset is resolved by the host,
// last write wins; the gateway does not order the two.
func (g *Gateway) ResetBrightness(ctx context.Context) error {
	return g.host.ResetScreenBrightness(ctx)
}

// Changes registers a listener on the shared change stream. The
// underlying host subscription is created on the first call and reused
// by every later listener; the returned channel closes when ctx is
// cancelled. The stream itself never terminates and carries no errors,
// malformed host payloads are dropped before delivery.
func (g *Gateway) Changes(ctx context.Context) (<-chan Value, error) {
	g.mu.Lock()
	if g.broker == nil {
		b, err := newBroker(g.notifier)
		if err != nil {
			g.mu.Unlock()
			return nil, err
		}
		g.broker = b
	}
	b := g.broker
	g.mu.Unlock()

	return b.listen(ctx), nil
}
