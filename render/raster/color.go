package raster

import (
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

var namedColors = map[string]drawing.Color{
	"white":    {R: 255, G: 255, B: 255, A: 255},
	"black":    {R: 0, G: 0, B: 0, A: 255},
	"gray":     {R: 128, G: 128, B: 128, A: 255},
	"grey":     {R: 128, G: 128, B: 128, A: 255},
	"darkgray": {R: 169, G: 169, B: 169, A: 255},
	"darkgrey": {R: 169, G: 169, B: 169, A: 255},
}

// parseColor understands the named colors used by scenes plus #rgb and
// #rrggbb. It reports false for "none", empty and unknown values.
func parseColor(s string) (drawing.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, true
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return drawing.Color{}, false
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return drawing.Color{}, false
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return drawing.Color{}, false
	}
	return drawing.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

func withOpacity(c drawing.Color, opacity float64) drawing.Color {
	if opacity <= 0 || opacity >= 1 {
		return c
	}
	c.A = uint8(float64(c.A)*opacity + 0.5)
	return c
}
