package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/cwbudde/spectrum-display/display/scene"
)

// ErrNotConfigured is returned when encoding a surface that has no size.
var ErrNotConfigured = errors.New("raster surface not configured")

// Surface paints primitives onto an RGBA image.
type Surface struct {
	cfg   config
	img   *image.RGBA
	clips map[string]image.Rectangle
}

// New returns an unconfigured surface.
func New(opts ...Option) *Surface {
	return &Surface{
		cfg:   applyOptions(opts...),
		clips: make(map[string]image.Rectangle),
	}
}

// Render paints sc onto a fresh image.
func Render(sc scene.Scene, opts ...Option) *image.RGBA {
	s := New(opts...)
	s.Configure(sc.Width, sc.Height)
	for _, p := range sc.Primitives {
		s.Draw(p)
	}
	return s.Image()
}

// Configure allocates a width x height image and clears it.
func (s *Surface) Configure(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	s.Clear()
}

// Clear fills the image with the background color and forgets clip regions.
func (s *Surface) Clear() {
	clear(s.clips)
	if s.img == nil {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.cfg.background), image.Point{}, draw.Src)
}

// Image returns the painted image, or nil before Configure.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// EncodePNG writes the current image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.img == nil {
		return ErrNotConfigured
	}
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Draw paints p. Primitives drawn before Configure are dropped.
func (s *Surface) Draw(p scene.Primitive) {
	if s.img == nil {
		return
	}

	if p.Kind == scene.KindClip {
		r := image.Rect(
			int(math.Floor(p.Rect.X)), int(math.Floor(p.Rect.Y)),
			int(math.Ceil(p.Rect.X+p.Rect.W)), int(math.Ceil(p.Rect.Y+p.Rect.H)),
		)
		s.clips[p.ID] = r.Intersect(s.img.Bounds())
		return
	}

	clip, clipped := s.clips[p.Clip]
	if p.Clip == "" || !clipped {
		s.paint(s.img, p)
		return
	}

	layer := image.NewRGBA(s.img.Bounds())
	s.paint(layer, p)
	draw.Draw(s.img, clip, layer, clip.Min, draw.Over)
}

func (s *Surface) paint(dst *image.RGBA, p scene.Primitive) {
	switch p.Kind {
	case scene.KindLine, scene.KindPolyline:
		if len(p.Points) < 2 {
			return
		}
		s.path(dst, p, false)
	case scene.KindPolygon:
		if len(p.Points) < 3 {
			return
		}
		s.path(dst, p, true)
	case scene.KindText:
		s.text(dst, p)
	}
}

func (s *Surface) path(dst *image.RGBA, p scene.Primitive, closed bool) {
	st := p.Style

	if closed {
		if fill, ok := parseColor(st.Fill); ok {
			gc, err := drawing.NewRasterGraphicContext(dst)
			if err != nil {
				return
			}
			gc.SetFillColor(withOpacity(fill, st.FillOpacity))
			trace(gc, p.Points, true)
			gc.Fill()
		}
	}

	stroke, ok := parseColor(st.Stroke)
	if !ok || st.StrokeWidth <= 0 {
		return
	}
	gc, err := drawing.NewRasterGraphicContext(dst)
	if err != nil {
		return
	}
	gc.SetStrokeColor(stroke)
	gc.SetLineWidth(st.StrokeWidth)
	if len(st.Dash) > 0 {
		gc.SetLineDash(st.Dash, 0)
	}
	trace(gc, p.Points, closed)
	gc.Stroke()
}

func trace(gc *drawing.RasterGraphicContext, pts []scene.Point, closed bool) {
	gc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		gc.LineTo(pt.X, pt.Y)
	}
	if closed {
		gc.Close()
	}
}

// text renders the label upright on a scratch image and then maps every
// covered pixel through the label transform onto dst.
func (s *Surface) text(dst *image.RGBA, p scene.Primitive) {
	if len(p.Points) == 0 || p.Text == "" {
		return
	}

	col, ok := parseColor(p.Style.Fill)
	if !ok {
		if col, ok = parseColor(p.Style.Stroke); !ok {
			col = namedColors["black"]
		}
	}

	face := s.cfg.face
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()

	d := &font.Drawer{Face: face}
	width := d.MeasureString(p.Text).Ceil()
	if width <= 0 || height <= 0 {
		return
	}

	x, y := p.Points[0].X, p.Points[0].Y
	if p.DY != 0 {
		em := p.Style.FontSize
		if em <= 0 {
			em = float64(metrics.Height.Ceil())
		}
		y += p.DY * em
	}
	switch p.Style.Anchor {
	case scene.AnchorMiddle:
		x -= float64(width) / 2
	case scene.AnchorEnd:
		x -= float64(width)
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, width, height))
	d.Dst = glyphs
	d.Src = image.NewUniform(col)
	d.Dot = fixed.P(0, ascent)
	d.DrawString(p.Text)

	bounds := dst.Bounds()
	for gy := 0; gy < height; gy++ {
		for gx := 0; gx < width; gx++ {
			c := glyphs.RGBAAt(gx, gy)
			if c.A == 0 {
				continue
			}
			px, py := place(p.Transform, x+float64(gx)+0.5, y-float64(ascent)+float64(gy)+0.5)
			pt := image.Pt(int(math.Floor(px)), int(math.Floor(py)))
			if !pt.In(bounds) {
				continue
			}
			draw.Draw(dst, image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))},
				image.NewUniform(c), image.Point{}, draw.Over)
		}
	}
}

// place applies rotate(angle, pivot) followed by translate.
func place(t *scene.Transform, x, y float64) (float64, float64) {
	if t == nil {
		return x, y
	}
	sin, cos := math.Sincos(t.Rotate * math.Pi / 180)
	dx, dy := x-t.Pivot.X, y-t.Pivot.Y
	rx := cos*dx - sin*dy + t.Pivot.X
	ry := sin*dx + cos*dy + t.Pivot.Y
	return rx + t.Translate.X, ry + t.Translate.Y
}
