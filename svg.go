package selection

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// ErrNoShape is returned when no shape descriptor is available to
// serialize.
var ErrNoShape = errors.New("selection: no shape descriptor")

// shapeStyle renders descriptors as outlines so re-imported documents
// show the gesture, not a filled region.
const shapeStyle = "fill:none;stroke:black"

// WriteShapeSVG serializes a retained shape descriptor as an SVG
// document sized to the frame. This is the re-edit round-trip surface:
// the descriptor travels as plain SVG and can be handed back through
// CreateFromPath after editing.
func WriteShapeSVG(w io.Writer, shape Shape, frameWidth, frameHeight int) error {
	if shape == nil {
		return ErrNoShape
	}

	canvas := svg.New(w)
	switch s := shape.(type) {
	case RectangleShape:
		canvas.Start(frameWidth, frameHeight)
		canvas.Rect(round(s.X), round(s.Y), round(s.Width), round(s.Height), shapeStyle)
	case EllipseShape:
		canvas.Start(frameWidth, frameHeight)
		canvas.Ellipse(round(s.CX), round(s.CY), round(s.RX), round(s.RY), shapeStyle)
	case PathShape:
		if s.Path.IsEmpty() {
			return ErrNoShape
		}
		canvas.Start(frameWidth, frameHeight)
		canvas.Path(PathData(s.Path), shapeStyle)
	default:
		return ErrNoShape
	}
	canvas.End()
	return nil
}

// WriteShapeSVG serializes the manager's retained shape descriptor.
func (m *Manager) WriteShapeSVG(w io.Writer) error {
	return WriteShapeSVG(w, m.shape, m.width, m.height)
}

// PathData returns the SVG path data ("d" attribute) for p.
func PathData(p *Path) string {
	var b strings.Builder
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			fmt.Fprintf(&b, "M%g %g", e.Point.X, e.Point.Y)
		case LineTo:
			fmt.Fprintf(&b, "L%g %g", e.Point.X, e.Point.Y)
		case QuadTo:
			fmt.Fprintf(&b, "Q%g %g %g %g",
				e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case CubicTo:
			fmt.Fprintf(&b, "C%g %g %g %g %g %g",
				e.Control1.X, e.Control1.Y,
				e.Control2.X, e.Control2.Y,
				e.Point.X, e.Point.Y)
		case Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func round(v float64) int {
	return int(math.Round(v))
}
