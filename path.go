package selection

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a closed vector path, the geometry of a freehand
// selection gesture.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path contains no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Ellipse adds an ellipse to the path using cubic Bezier curves.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	// Magic constant for ellipse approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Circle adds a circle to the path.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
