package params

import (
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/spectrum-display/display/coord"
)

const (
	// BypassSymbol is the plugin's bypass control.
	BypassSymbol = "bypass"
	// HostBypassSymbol is the host-managed bypass reported by MOD hosts.
	HostBypassSymbol = ":bypass"

	binPrefix = "bin"
)

// Port is a single symbol/value pair as delivered by the host.
type Port struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	Value  float64 `json:"value" yaml:"value"`
}

// Snapshot is the latest value for every port symbol seen by a display.
// The zero value is not usable; use New or FromPorts.
type Snapshot struct {
	// Bins holds the normalised response, one sample per pixel column.
	// Bins that were never delivered stay at 0 (the floor).
	Bins [coord.Width]float64

	// Controls holds every non-bin symbol, unfiltered.
	Controls map[string]float64

	bypass float64
}

// New returns an empty snapshot.
func New() *Snapshot {
	return &Snapshot{Controls: make(map[string]float64)}
}

// FromPorts builds a snapshot from a full port set. Later ports override
// earlier ones with the same symbol.
func FromPorts(ports []Port) *Snapshot {
	s := New()
	for _, p := range ports {
		s.Set(p.Symbol, p.Value)
	}
	return s
}

// Set stores value under symbol.
func (s *Snapshot) Set(symbol string, value float64) {
	if n, ok := BinIndex(symbol); ok {
		s.Bins[n-1] = value
		return
	}

	s.Controls[symbol] = value
	if symbol == BypassSymbol || symbol == HostBypassSymbol {
		s.bypass = value
	}
}

// Value returns the stored value for symbol.
func (s *Snapshot) Value(symbol string) (float64, bool) {
	if n, ok := BinIndex(symbol); ok {
		return s.Bins[n-1], true
	}
	v, ok := s.Controls[symbol]
	return v, ok
}

// Bypassed reports whether the most recent bypass write was exactly 1.
func (s *Snapshot) Bypassed() bool {
	return s.bypass == 1
}

// Level returns bin i (0-based) as a drawable fraction. Non-finite values
// read as the floor; finite values are returned unclamped.
func (s *Snapshot) Level(i int) float64 {
	if i < 0 || i >= len(s.Bins) {
		return 0
	}
	v := s.Bins[i]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Levels fills dst with Level(i) for each column and returns it. A nil or
// short dst is replaced by a new slice of coord.Width.
func (s *Snapshot) Levels(dst []float64) []float64 {
	if len(dst) < coord.Width {
		dst = make([]float64, coord.Width)
	}
	dst = dst[:coord.Width]
	for i := range dst {
		dst[i] = s.Level(i)
	}
	return dst
}

// Clone returns a deep copy.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Bins:     s.Bins,
		Controls: make(map[string]float64, len(s.Controls)),
		bypass:   s.bypass,
	}
	for k, v := range s.Controls {
		c.Controls[k] = v
	}
	return c
}

// BinSymbol returns the port symbol of the n-th bin (1-based).
func BinSymbol(n int) string {
	return binPrefix + strconv.Itoa(n)
}

// BinIndex parses a canonical bin symbol and reports its 1-based index.
// Symbols such as "bin007" or "bin0", and bins past the canvas width, are
// not bins.
func BinIndex(symbol string) (int, bool) {
	rest, ok := strings.CutPrefix(symbol, binPrefix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > coord.Width || strconv.Itoa(n) != rest {
		return 0, false
	}
	return n, true
}

// BinPorts returns one port per value, named bin1 .. binN.
func BinPorts(levels []float64) []Port {
	ports := make([]Port, len(levels))
	for i, v := range levels {
		ports[i] = Port{Symbol: BinSymbol(i + 1), Value: v}
	}
	return ports
}
