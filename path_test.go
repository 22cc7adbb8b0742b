package selection

import "testing"

func TestPathBuilder(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 10)
	p.LineTo(60, 10)
	p.LineTo(60, 60)
	p.Close()

	if len(p.Elements()) != 4 {
		t.Errorf("expected 4 elements, got %d", len(p.Elements()))
	}

	// Close returns the current point to the subpath start
	if p.CurrentPoint() != Pt(10, 10) {
		t.Errorf("expected current point (10,10), got %+v", p.CurrentPoint())
	}
}

func TestPathIsEmpty(t *testing.T) {
	var nilPath *Path
	if !nilPath.IsEmpty() {
		t.Error("nil path should be empty")
	}

	p := NewPath()
	if !p.IsEmpty() {
		t.Error("new path should be empty")
	}

	p.MoveTo(0, 0)
	if p.IsEmpty() {
		t.Error("path with elements should not be empty")
	}

	p.Clear()
	if !p.IsEmpty() {
		t.Error("cleared path should be empty")
	}
}

func TestPathRectangle(t *testing.T) {
	p := NewPath()
	p.Rectangle(10, 20, 30, 40)

	elems := p.Elements()
	if len(elems) != 5 {
		t.Fatalf("expected 5 elements, got %d", len(elems))
	}
	if mv, ok := elems[0].(MoveTo); !ok || mv.Point != Pt(10, 20) {
		t.Errorf("expected MoveTo(10,20), got %+v", elems[0])
	}
	if _, ok := elems[4].(Close); !ok {
		t.Errorf("expected Close, got %+v", elems[4])
	}
}

func TestPathEllipse(t *testing.T) {
	p := NewPath()
	p.Ellipse(50, 50, 20, 10)

	elems := p.Elements()
	// MoveTo + 4 cubics + Close
	if len(elems) != 6 {
		t.Fatalf("expected 6 elements, got %d", len(elems))
	}
	if mv, ok := elems[0].(MoveTo); !ok || mv.Point != Pt(70, 50) {
		t.Errorf("expected MoveTo(70,50), got %+v", elems[0])
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 10)
	p.LineTo(20, 10)
	p.Close()

	moved := p.Transform(Translate(5, -5))
	elems := moved.Elements()
	if mv := elems[0].(MoveTo); mv.Point != Pt(15, 5) {
		t.Errorf("expected MoveTo(15,5), got %+v", mv.Point)
	}
	if ln := elems[1].(LineTo); ln.Point != Pt(25, 5) {
		t.Errorf("expected LineTo(25,5), got %+v", ln.Point)
	}

	// Original is untouched
	if mv := p.Elements()[0].(MoveTo); mv.Point != Pt(10, 10) {
		t.Errorf("transform should not modify the original path")
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)

	clone := p.Clone()
	p.Clear()

	if len(clone.Elements()) != 2 {
		t.Errorf("clone should keep 2 elements, got %d", len(clone.Elements()))
	}
}
