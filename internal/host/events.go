package host

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/spectrum-display/display"
	"github.com/cwbudde/spectrum-display/display/params"
	"github.com/cwbudde/spectrum-display/display/scene"
)

const (
	EventStart  = "start"
	EventChange = "change"
)

var (
	// ErrUnknownEvent reports an event type other than start or change.
	ErrUnknownEvent = errors.New("unknown event type")
	// ErrMissingSymbol reports a change event without a symbol.
	ErrMissingSymbol = errors.New("change event without symbol")
)

// Event is one host notification.
type Event struct {
	Type   string        `json:"type"`
	Ports  []params.Port `json:"ports,omitempty"`
	Symbol string        `json:"symbol,omitempty"`
	Value  float64       `json:"value,omitempty"`
}

// StartEvent returns the initialization event for ports.
func StartEvent(ports []params.Port) Event {
	return Event{Type: EventStart, Ports: ports}
}

// ChangeEvent returns a single-value update event.
func ChangeEvent(symbol string, value float64) Event {
	return Event{Type: EventChange, Symbol: symbol, Value: value}
}

// Apply delivers ev to d and returns the rebuilt frame.
func Apply(d *display.Display, ev Event) (scene.Scene, error) {
	switch ev.Type {
	case EventStart:
		return d.OnInit(ev.Ports), nil
	case EventChange:
		if ev.Symbol == "" {
			return scene.Scene{}, ErrMissingSymbol
		}
		return d.OnUpdate(ev.Symbol, ev.Value), nil
	default:
		return scene.Scene{}, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
}

// Decoder reads a stream of events.
type Decoder struct {
	dec *json.Decoder
	n   int
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: json.NewDecoder(r)}
}

// Next returns the next event, or io.EOF at the end of the stream.
func (d *Decoder) Next() (Event, error) {
	var ev Event
	if err := d.dec.Decode(&ev); err != nil {
		if errors.Is(err, io.EOF) {
			return Event{}, io.EOF
		}
		return Event{}, fmt.Errorf("decode event %d: %w", d.n+1, err)
	}
	d.n++
	return ev, nil
}

// Replay applies every event from r to d. fn, when non-nil, is called after
// each event with its index and the resulting frame. It returns the number
// of events applied.
func Replay(d *display.Display, r io.Reader, fn func(i int, sc scene.Scene) error) (int, error) {
	dec := NewDecoder(r)
	for i := 0; ; i++ {
		ev, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return i, nil
		}
		if err != nil {
			return i, err
		}

		sc, err := Apply(d, ev)
		if err != nil {
			return i, fmt.Errorf("event %d: %w", i+1, err)
		}
		if fn != nil {
			if err := fn(i, sc); err != nil {
				return i + 1, err
			}
		}
	}
}
