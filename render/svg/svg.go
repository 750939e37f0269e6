package svg

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/spectrum-display/display/scene"
)

// Surface accumulates SVG elements for one frame.
type Surface struct {
	width, height int
	body          bytes.Buffer
}

// New returns an empty surface. Configure sets its size.
func New() *Surface {
	return &Surface{}
}

// Render returns the SVG document for sc.
func Render(sc scene.Scene) []byte {
	s := New()
	s.Configure(sc.Width, sc.Height)
	for _, p := range sc.Primitives {
		s.Draw(p)
	}
	return s.Bytes()
}

// Configure sets the document size.
func (s *Surface) Configure(width, height int) {
	s.width, s.height = width, height
}

// Clear drops all drawn elements.
func (s *Surface) Clear() {
	s.body.Reset()
}

// Draw appends p to the document.
func (s *Surface) Draw(p scene.Primitive) {
	b := &s.body
	switch p.Kind {
	case scene.KindLine:
		if len(p.Points) < 2 {
			return
		}
		b.WriteString("<line")
		attr(b, "x1", num(p.Points[0].X))
		attr(b, "y1", num(p.Points[0].Y))
		attr(b, "x2", num(p.Points[1].X))
		attr(b, "y2", num(p.Points[1].Y))
		style(b, p)
		b.WriteString("/>\n")

	case scene.KindPolyline, scene.KindPolygon:
		tag := "polyline"
		if p.Kind == scene.KindPolygon {
			tag = "polygon"
		}
		b.WriteString("<" + tag)
		attr(b, "points", points(p.Points))
		style(b, p)
		b.WriteString("/>\n")

	case scene.KindText:
		if len(p.Points) < 1 {
			return
		}
		if t := p.Transform; t != nil {
			b.WriteString("<g")
			attr(b, "transform", "translate("+num(t.Translate.X)+", "+num(t.Translate.Y)+") rotate("+
				num(t.Rotate)+", "+num(t.Pivot.X)+", "+num(t.Pivot.Y)+")")
			b.WriteString(">")
		}
		b.WriteString("<text")
		attr(b, "x", num(p.Points[0].X))
		attr(b, "y", num(p.Points[0].Y))
		if p.DY != 0 {
			attr(b, "dy", num(p.DY)+"em")
		}
		style(b, p)
		b.WriteString(">")
		_ = xml.EscapeText(b, []byte(p.Text))
		b.WriteString("</text>")
		if p.Transform != nil {
			b.WriteString("</g>")
		}
		b.WriteString("\n")

	case scene.KindClip:
		b.WriteString("<clipPath")
		attr(b, "id", p.ID)
		b.WriteString("><rect")
		attr(b, "x", num(p.Rect.X))
		attr(b, "y", num(p.Rect.Y))
		attr(b, "width", num(p.Rect.W))
		attr(b, "height", num(p.Rect.H))
		b.WriteString("/></clipPath>\n")
	}
}

// Bytes returns the complete SVG document.
func (s *Surface) Bytes() []byte {
	var out bytes.Buffer
	out.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	attr(&out, "width", strconv.Itoa(s.width)+"px")
	attr(&out, "height", strconv.Itoa(s.height)+"px")
	attr(&out, "viewBox", "0 0 "+strconv.Itoa(s.width)+" "+strconv.Itoa(s.height))
	out.WriteString(">\n")
	out.Write(s.body.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes()
}

// WriteTo writes the document to w.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

func style(b *bytes.Buffer, p scene.Primitive) {
	st := p.Style
	if st.Stroke != "" {
		attr(b, "stroke", st.Stroke)
	}
	if st.StrokeWidth > 0 {
		attr(b, "stroke-width", num(st.StrokeWidth))
	}
	if len(st.Dash) > 0 {
		parts := make([]string, len(st.Dash))
		for i, d := range st.Dash {
			parts[i] = num(d)
		}
		attr(b, "stroke-dasharray", strings.Join(parts, ", "))
	}
	if st.Fill != "" {
		attr(b, "fill", st.Fill)
	}
	if st.FillOpacity > 0 && st.FillOpacity < 1 {
		attr(b, "fill-opacity", num(st.FillOpacity))
	}
	if st.FontSize > 0 {
		attr(b, "font-size", num(st.FontSize)+"px")
	}
	if st.FontFamily != "" {
		attr(b, "font-family", st.FontFamily)
	}
	switch st.Anchor {
	case scene.AnchorMiddle:
		attr(b, "text-anchor", "middle")
	case scene.AnchorEnd:
		attr(b, "text-anchor", "end")
	}
	if p.Clip != "" {
		attr(b, "clip-path", "url(#"+p.Clip+")")
	}
}

func attr(b *bytes.Buffer, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	_ = xml.EscapeText(b, []byte(value))
	b.WriteByte('"')
}

func points(pts []scene.Point) string {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(num(p.X))
		sb.WriteByte(',')
		sb.WriteString(num(p.Y))
	}
	return sb.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
