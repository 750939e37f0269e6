package scene

import (
	"github.com/cwbudde/spectrum-display/display/coord"
	"github.com/cwbudde/spectrum-display/display/params"
)

const (
	// ClipID names the plot-area clip region used by the response curve.
	ClipID = "tfClip"

	// ColorActive and ColorBypassed are the curve colors.
	ColorActive   = "white"
	ColorBypassed = "#444444"

	colorGrid     = "gray"
	colorGridDash = "darkgray"
	colorSplash   = "#cccccc"

	gridWidth   = 0.25
	textWidth   = 0.5
	curveWidth  = 1.0
	fillOpacity = 0.35

	labelFontSize = 8
	labelFont     = "Monospace"

	// tickOverhang extends the labelled guides below the chart.
	tickOverhang = 5
	// tickLabelGap is the distance from the chart bottom to the rotated label.
	tickLabelGap = 3
	// dbLabelInset and dbLabelBaseline place dB labels at the right edge.
	dbLabelInset    = 5
	dbLabelBaseline = 3
)

var (
	gridLevels      = []float64{0, -6, -12, -18, -24, -48, -72}
	gridFrequencies = []float64{50, 200, 500, 2000, 5000, 15000}

	tickFrequencies = []struct {
		hz    float64
		label string
	}{
		{100, "100"},
		{1000, "1K"},
		{10000, "10K"},
	}

	dbLabels = []struct {
		db    float64
		label string
	}{
		{-6, "-6dBFS"},
		{-18, "-18dBFS"},
		{-48, "-48dBFS"},
		{-72, "-72dBFS"},
	}

	gridDash = []float64{1, 3}
	tickDash = []float64{3, 2}
)

// Build returns the full frame for s. It never fails: missing bins draw at
// the floor and out-of-range values draw off the chart.
func Build(s *params.Snapshot) Scene {
	const (
		width  = float64(coord.Width)
		height = float64(coord.Height)
	)

	prims := make([]Primitive, 0, 32)

	hgrid := Style{Stroke: colorGrid, StrokeWidth: gridWidth, Fill: "none"}
	for _, db := range gridLevels {
		y := coord.GridY(db)
		prims = append(prims, line(0, y, width, y, hgrid))
	}

	vgrid := Style{Stroke: colorGridDash, StrokeWidth: gridWidth, Dash: gridDash, Fill: "none"}
	for _, f := range gridFrequencies {
		x := coord.GridX(f, width)
		prims = append(prims, line(x, 0, x, height, vgrid))
	}

	tick := Style{Stroke: colorGrid, StrokeWidth: gridWidth, Dash: tickDash}
	for _, t := range tickFrequencies {
		x := coord.GridX(t.hz, width)
		prims = append(prims, line(x, 0, x, height+tickOverhang, tick))
		prims = append(prims, Primitive{
			Kind:   KindText,
			Points: []Point{{0, 0}},
			Text:   t.label,
			Transform: &Transform{
				Translate: Point{x, height + tickLabelGap},
				Rotate:    -90,
				Pivot:     Point{3, 0},
			},
			Style: labelStyle(),
		})
	}

	for _, l := range dbLabels {
		prims = append(prims, Primitive{
			Kind:   KindText,
			Points: []Point{{width - dbLabelInset, dbLabelBaseline + coord.Round(coord.DBToY(l.db))}},
			Text:   l.label,
			Style:  labelStyle(),
		})
	}

	prims = append(prims, Primitive{
		Kind: KindClip,
		ID:   ClipID,
		Rect: Rect{X: -1, Y: 0, W: width + 3, H: height},
	})

	color := ColorActive
	if s.Bypassed() {
		color = ColorBypassed
	}

	path := Curve(s)
	prims = append(prims, Primitive{
		Kind:   KindPolyline,
		Points: path,
		Clip:   ClipID,
		Style:  Style{Stroke: color, StrokeWidth: curveWidth, Fill: "none"},
	})

	area := make([]Point, len(path), len(path)+2)
	copy(area, path)
	area = append(area, Point{width + 1, height}, Point{0, height})
	prims = append(prims, Primitive{
		Kind:   KindPolygon,
		Points: area,
		Clip:   ClipID,
		Style:  Style{Stroke: "none", Fill: color, FillOpacity: fillOpacity},
	})

	return Scene{Width: coord.Width, Height: coord.SurfaceHeight, Primitives: prims}
}

// Curve returns the response polyline, one point per pixel column in
// increasing x order.
func Curve(s *params.Snapshot) []Point {
	levels := s.Levels(nil)
	ys := make([]float64, len(levels))
	coord.FractionsToY(ys, levels)

	pts := make([]Point, len(ys))
	for x, y := range ys {
		pts[x] = Point{float64(x), y}
	}
	return pts
}

// Placeholder returns the start-up label shown before the first frame.
func Placeholder() Scene {
	st := Style{Stroke: colorSplash, StrokeWidth: textWidth, FontSize: 11, Anchor: AnchorMiddle}
	lines := []struct {
		text string
		dy   float64
	}{
		{"Spectrum", -1.5},
		{"Display", 0},
		{"MOD v0.15.0 or later.", 1.5},
	}

	prims := make([]Primitive, 0, len(lines))
	for _, l := range lines {
		prims = append(prims, Primitive{
			Kind:   KindText,
			Points: []Point{{59, 65}},
			Text:   l.text,
			DY:     l.dy,
			Style:  st,
		})
	}
	return Scene{Width: coord.Width, Height: coord.SurfaceHeight, Primitives: prims}
}

func line(x1, y1, x2, y2 float64, st Style) Primitive {
	return Primitive{Kind: KindLine, Points: []Point{{x1, y1}, {x2, y2}}, Style: st}
}

func labelStyle() Style {
	return Style{
		Stroke:      colorGrid,
		StrokeWidth: textWidth,
		FontSize:    labelFontSize,
		FontFamily:  labelFont,
		Anchor:      AnchorEnd,
	}
}
