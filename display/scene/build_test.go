package scene

import (
	"reflect"
	"testing"

	"github.com/cwbudde/spectrum-display/display/coord"
	"github.com/cwbudde/spectrum-display/display/params"
	"github.com/cwbudde/spectrum-display/internal/testutil"
)

func snapshot(levels []float64, bypass float64) *params.Snapshot {
	ports := append(params.BinPorts(levels), params.Port{Symbol: params.BypassSymbol, Value: bypass})
	return params.FromPorts(ports)
}

func curveYs(t *testing.T, sc Scene) []float64 {
	t.Helper()
	lines := sc.ByKind(KindPolyline)
	if len(lines) != 1 {
		t.Fatalf("polylines=%d want=1", len(lines))
	}
	ys := make([]float64, len(lines[0].Points))
	for i, p := range lines[0].Points {
		ys[i] = p.Y
	}
	return ys
}

func TestBuildOrder(t *testing.T) {
	sc := Build(snapshot(testutil.RampLevels(coord.Width), 0))

	want := []Kind{}
	for range 7 {
		want = append(want, KindLine)
	}
	for range 6 {
		want = append(want, KindLine)
	}
	for range 3 {
		want = append(want, KindLine, KindText)
	}
	for range 4 {
		want = append(want, KindText)
	}
	want = append(want, KindClip, KindPolyline, KindPolygon)

	if len(sc.Primitives) != len(want) {
		t.Fatalf("primitives=%d want=%d", len(sc.Primitives), len(want))
	}
	for i, p := range sc.Primitives {
		if p.Kind != want[i] {
			t.Fatalf("primitive %d kind=%v want=%v", i, p.Kind, want[i])
		}
	}
	if sc.Width != coord.Width || sc.Height != coord.SurfaceHeight {
		t.Fatalf("scene size=%dx%d", sc.Width, sc.Height)
	}
}

func TestBuildGrid(t *testing.T) {
	sc := Build(params.New())
	lines := sc.ByKind(KindLine)

	wantY := []float64{0.5, 11.5, 22.5, 33.5, 44.5, 88.5, 131.5}
	for i, y := range wantY {
		l := lines[i]
		if l.Points[0] != (Point{0, y}) || l.Points[1] != (Point{coord.Width, y}) {
			t.Errorf("hgrid %d: %v want y=%v", i, l.Points, y)
		}
		if l.Style.Stroke != "gray" || len(l.Style.Dash) != 0 {
			t.Errorf("hgrid %d style=%+v", i, l.Style)
		}
	}

	wantX := []float64{34, 85, 119, 171, 205, 245}
	for i, x := range wantX {
		l := lines[len(wantY)+i]
		if l.Points[0] != (Point{x, 0}) || l.Points[1] != (Point{x, coord.Height}) {
			t.Errorf("vgrid %d: %v want x=%v", i, l.Points, x)
		}
		if !reflect.DeepEqual(l.Style.Dash, []float64{1, 3}) {
			t.Errorf("vgrid %d dash=%v", i, l.Style.Dash)
		}
	}
}

func TestBuildLabels(t *testing.T) {
	sc := Build(params.New())
	texts := sc.ByKind(KindText)
	if len(texts) != 7 {
		t.Fatalf("labels=%d want=7", len(texts))
	}

	ticks := []struct {
		label string
		x     float64
	}{{"100", 60}, {"1K", 145}, {"10K", 230}}
	for i, tk := range ticks {
		l := texts[i]
		if l.Text != tk.label || l.Transform == nil {
			t.Fatalf("tick %d=%+v", i, l)
		}
		want := Transform{Translate: Point{tk.x, coord.Height + 3}, Rotate: -90, Pivot: Point{3, 0}}
		if *l.Transform != want {
			t.Errorf("tick %s transform=%+v want=%+v", tk.label, *l.Transform, want)
		}
		if l.Style.Anchor != AnchorEnd {
			t.Errorf("tick %s anchor=%v", tk.label, l.Style.Anchor)
		}
	}

	dbs := []struct {
		label string
		y     float64
	}{{"-6dBFS", 14}, {"-18dBFS", 36}, {"-48dBFS", 91}, {"-72dBFS", 134}}
	for i, d := range dbs {
		l := texts[3+i]
		if l.Text != d.label || l.Points[0] != (Point{coord.Width - 5, d.y}) || l.Transform != nil {
			t.Errorf("db label %d=%+v want %s at y=%v", i, l, d.label, d.y)
		}
	}
}

func TestBuildClip(t *testing.T) {
	sc := Build(params.New())
	clips := sc.ByKind(KindClip)
	if len(clips) != 1 {
		t.Fatalf("clips=%d", len(clips))
	}
	want := Rect{X: -1, Y: 0, W: coord.Width + 3, H: coord.Height}
	if clips[0].ID != ClipID || clips[0].Rect != want {
		t.Fatalf("clip=%+v want id=%s rect=%+v", clips[0], ClipID, want)
	}
	for _, k := range []Kind{KindPolyline, KindPolygon} {
		if p := sc.ByKind(k)[0]; p.Clip != ClipID {
			t.Errorf("%v clip=%q want=%q", k, p.Clip, ClipID)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	s := snapshot(testutil.DeterministicLevels(11, coord.Width), 0)
	a := Build(s)
	b := Build(s)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Build is not deterministic")
	}
}

func TestBypassOnlyChangesCurveColor(t *testing.T) {
	levels := testutil.DeterministicLevels(5, coord.Width)
	on := Build(snapshot(levels, 1))
	off := Build(snapshot(levels, 0))

	if len(on.Primitives) != len(off.Primitives) {
		t.Fatal("primitive count differs")
	}
	for i := range on.Primitives {
		a, b := on.Primitives[i], off.Primitives[i]
		switch a.Kind {
		case KindPolyline:
			if a.Style.Stroke != ColorBypassed || b.Style.Stroke != ColorActive {
				t.Fatalf("polyline stroke on=%s off=%s", a.Style.Stroke, b.Style.Stroke)
			}
			a.Style.Stroke, b.Style.Stroke = "", ""
		case KindPolygon:
			if a.Style.Fill != ColorBypassed || b.Style.Fill != ColorActive {
				t.Fatalf("polygon fill on=%s off=%s", a.Style.Fill, b.Style.Fill)
			}
			a.Style.Fill, b.Style.Fill = "", ""
		}
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("primitive %d (%v) differs beyond color", i, a.Kind)
		}
	}
}

func TestCurveOnePointPerColumn(t *testing.T) {
	sc := Build(snapshot(testutil.RampLevels(coord.Width), 0))
	line := sc.ByKind(KindPolyline)[0]
	if len(line.Points) != coord.Width {
		t.Fatalf("points=%d want=%d", len(line.Points), coord.Width)
	}
	for x, p := range line.Points {
		if p.X != float64(x) {
			t.Fatalf("point %d x=%f", x, p.X)
		}
	}
}

func TestCurveFlatLevels(t *testing.T) {
	top := curveYs(t, Build(snapshot(testutil.FlatLevels(1, coord.Width), 0)))
	testutil.RequireSliceNearlyEqual(t, top, testutil.FlatLevels(0, coord.Width), 1e-9)

	floor := curveYs(t, Build(snapshot(testutil.FlatLevels(0, coord.Width), 0)))
	testutil.RequireSliceNearlyEqual(t, floor, testutil.FlatLevels(coord.Height, coord.Width), 1e-9)
}

func TestCurveMissingBinAtFloor(t *testing.T) {
	ports := params.BinPorts(testutil.FlatLevels(1, coord.Width))
	ports = append(ports[:199], ports[200:]...)
	ys := curveYs(t, Build(params.FromPorts(ports)))

	if ys[199] != coord.Height {
		t.Fatalf("missing bin200 y=%f want=%d", ys[199], coord.Height)
	}
	if ys[198] != 0 || ys[200] != 0 {
		t.Fatalf("neighbours y=%f,%f want 0", ys[198], ys[200])
	}
}

func TestCurveShortSnapshot(t *testing.T) {
	ys := curveYs(t, Build(params.FromPorts(params.BinPorts(testutil.FlatLevels(1, 10)))))
	if len(ys) != coord.Width {
		t.Fatalf("points=%d want=%d", len(ys), coord.Width)
	}
	if ys[9] != 0 || ys[10] != coord.Height {
		t.Fatalf("y[9]=%f y[10]=%f", ys[9], ys[10])
	}
}

func TestFillAreaClosesCurve(t *testing.T) {
	sc := Build(snapshot(testutil.RampLevels(coord.Width), 0))
	line := sc.ByKind(KindPolyline)[0]
	area := sc.ByKind(KindPolygon)[0]

	if len(area.Points) != coord.Width+2 {
		t.Fatalf("area points=%d", len(area.Points))
	}
	if !reflect.DeepEqual(area.Points[:coord.Width], line.Points) {
		t.Fatal("area does not follow the curve")
	}
	tail := area.Points[coord.Width:]
	if tail[0] != (Point{coord.Width + 1, coord.Height}) || tail[1] != (Point{0, coord.Height}) {
		t.Fatalf("closing points=%v", tail)
	}
	if area.Style.Stroke != "none" || area.Style.FillOpacity != 0.35 {
		t.Fatalf("area style=%+v", area.Style)
	}
	if len(line.Points) != coord.Width {
		t.Fatal("closing the area must not extend the polyline")
	}
}

func TestPlaceholder(t *testing.T) {
	sc := Placeholder()
	want := []string{"Spectrum", "Display", "MOD v0.15.0 or later."}
	if len(sc.Primitives) != len(want) {
		t.Fatalf("placeholder primitives=%d", len(sc.Primitives))
	}
	for i, p := range sc.Primitives {
		if p.Kind != KindText || p.Text != want[i] || p.Points[0] != (Point{59, 65}) {
			t.Errorf("placeholder %d=%+v", i, p)
		}
	}
	if sc.Primitives[0].DY != -1.5 || sc.Primitives[2].DY != 1.5 {
		t.Fatal("placeholder line offsets")
	}
}

func TestKindString(t *testing.T) {
	if KindPolygon.String() != "polygon" || Kind(99).String() != "unknown" {
		t.Fatal("Kind.String")
	}
}
