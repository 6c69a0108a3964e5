package brightness

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// listenerBuffer bounds how far a listener may lag before events are
// dropped for it.
const listenerBuffer = 16

// broker owns the single host notification subscription and fans
// incoming values out to all registered listeners.
type broker struct {
	mu        sync.Mutex
	listeners map[uuid.UUID]chan Value
}

func newBroker(n Notifier) (*broker, error) {
	events, err := n.Subscribe(context.Background())
	if err != nil {
		return nil, err
	}

	b := &broker{listeners: make(map[uuid.UUID]chan Value)}
	go b.pump(events)
	return b, nil
}

func (b *broker) pump(events <-chan any) {
	for raw := range events {
		v, ok := toValue(raw)
		if !ok {
			continue
		}

		b.mu.Lock()
		for _, ch := range b.listeners {
			select {
			case ch <- v:
			default:
			}
		}
		b.mu.Unlock()
	}
}

func (b *broker) listen(ctx context.Context) <-chan Value {
	ch := make(chan Value, listenerBuffer)
	id := uuid.New()

	b.mu.Lock()
	b.listeners[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
		close(ch)
	}()

	return ch
}

// toValue casts a raw notification payload. Non-numeric payloads and
// values outside [Min, Max] are excluded from delivery; the stream has
// no error channel to report them on.
func toValue(raw any) (Value, bool) {
	var f float64
	switch n := raw.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if f < Min || f > Max {
		return 0, false
	}
	return Value(f), true
}
