package selection

// Mode selects how an incoming mask is combined with the active selection.
type Mode int

const (
	// Replace discards the current selection in favor of the incoming one.
	Replace Mode = iota
	// Add keeps pixels selected by either operand (per-pixel max).
	Add
	// Subtract removes the incoming selection from the current one.
	Subtract
	// Intersect keeps pixels selected by both operands (per-pixel min).
	Intersect
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Replace:
		return "replace"
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Intersect:
		return "intersect"
	default:
		return "unknown"
	}
}

// Shape is the retained vector descriptor of a selection gesture.
// It is kept alongside the mask for potential re-edit and round-trip;
// mask semantics never depend on it.
type Shape interface {
	isShape()
}

// RectangleShape describes a rectangular marquee gesture.
type RectangleShape struct {
	X, Y          float64
	Width, Height float64
}

func (RectangleShape) isShape() {}

// EllipseShape describes an elliptical marquee gesture.
type EllipseShape struct {
	CX, CY float64
	RX, RY float64
}

func (EllipseShape) isShape() {}

// PathShape describes a freehand (lasso or pen) gesture.
type PathShape struct {
	Path *Path
}

func (PathShape) isShape() {}
