package scene

// Kind identifies a drawing primitive.
type Kind int

const (
	KindLine Kind = iota
	KindPolyline
	KindPolygon
	KindText
	KindClip
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindPolyline:
		return "polyline"
	case KindPolygon:
		return "polygon"
	case KindText:
		return "text"
	case KindClip:
		return "clip"
	default:
		return "unknown"
	}
}

// Anchor is the horizontal alignment of a text label.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// Transform places a text label: the label is rotated by Rotate degrees
// around Pivot and then translated by Translate.
type Transform struct {
	Translate Point
	Rotate    float64
	Pivot     Point
}

// Style carries stroke, fill and font attributes. Colors are CSS color
// strings; "none" disables stroke or fill.
type Style struct {
	Stroke      string
	StrokeWidth float64
	Dash        []float64
	Fill        string
	FillOpacity float64

	FontSize   float64
	FontFamily string
	Anchor     Anchor
}

// Primitive is one drawing operation.
//
// Lines use Points[0] and Points[1]. Polylines and polygons use all of
// Points. Text draws Text at Points[0] offset by DY em, inside Transform.
// A clip primitive defines Rect under ID; later primitives reference it
// through Clip.
type Primitive struct {
	Kind      Kind
	Points    []Point
	Rect      Rect
	Text      string
	DY        float64
	Transform *Transform
	ID        string
	Clip      string
	Style     Style
}

// Scene is the ordered primitive list of one frame.
type Scene struct {
	Width, Height int
	Primitives    []Primitive
}

// ByKind returns the primitives of kind k in drawing order.
func (s Scene) ByKind(k Kind) []Primitive {
	var out []Primitive
	for _, p := range s.Primitives {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}
