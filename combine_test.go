package selection

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCombineModes(t *testing.T) {
	current := NewMask(4, 1)
	incoming := NewMask(4, 1)
	// current:  [  0, 100, 200, 255]
	// incoming: [255, 150,  50,   0]
	for i, v := range []uint8{0, 100, 200, 255} {
		current.Set(i, 0, v)
	}
	for i, v := range []uint8{255, 150, 50, 0} {
		incoming.Set(i, 0, v)
	}

	tests := []struct {
		mode Mode
		want []uint8
	}{
		{Replace, []uint8{255, 150, 50, 0}},
		{Add, []uint8{255, 150, 200, 255}},
		{Subtract, []uint8{0, 0, 150, 255}},
		{Intersect, []uint8{0, 100, 50, 0}},
	}
	for _, tc := range tests {
		out, _ := Combine(current, Bounds{}, incoming, Bounds{}, tc.mode, image.Point{})
		if diff := cmp.Diff(tc.want, out.Data()); diff != "" {
			t.Errorf("%s pixels mismatch (-want +got):\n%s", tc.mode, diff)
		}
	}
}

func TestCombineAddEmptyIsIdentity(t *testing.T) {
	r := NewRasterizer(50, 50)
	current, curBounds := r.Rectangle(10, 10, 20, 20)
	empty := NewMask(50, 50)

	out, bounds := Combine(current, curBounds, empty, Bounds{}, Add, image.Point{})
	if diff := cmp.Diff(current.Data(), out.Data()); diff != "" {
		t.Errorf("add with empty changed pixels (-want +got):\n%s", diff)
	}
	if bounds != curBounds {
		t.Errorf("add with empty changed bounds: got %+v, want %+v", bounds, curBounds)
	}
}

func TestCombineIntersectFullIsIdentity(t *testing.T) {
	r := NewRasterizer(50, 50)
	current, curBounds := r.Rectangle(10, 10, 20, 20)
	full := NewMask(50, 50)
	full.Fill(255)
	fullBounds := Bounds{Width: 50, Height: 50}

	out, bounds := Combine(current, curBounds, full, fullBounds, Intersect, image.Point{})
	if diff := cmp.Diff(current.Data(), out.Data()); diff != "" {
		t.Errorf("intersect with full changed pixels (-want +got):\n%s", diff)
	}
	if bounds != curBounds {
		t.Errorf("intersect with full changed bounds: got %+v, want %+v", bounds, curBounds)
	}
}

func TestCombineSubtractKeepsMinuendBounds(t *testing.T) {
	r := NewRasterizer(100, 100)
	current, curBounds := r.Rectangle(10, 10, 50, 50)
	incoming, incBounds := r.Rectangle(10, 10, 50, 50)

	out, bounds := Combine(current, curBounds, incoming, incBounds, Subtract, image.Point{})

	// Everything subtracted away, but the minuend's bounds remain
	if out.SelectedCount() != 0 {
		t.Errorf("expected fully subtracted mask, got %d selected", out.SelectedCount())
	}
	if bounds != curBounds {
		t.Errorf("subtract bounds: got %+v, want %+v", bounds, curBounds)
	}
}

func TestCombineIntersectBounds(t *testing.T) {
	// Scenario: two overlapping vertical bands on a 100x100 frame
	r := NewRasterizer(100, 100)
	current, curBounds := r.Rectangle(0, 0, 50, 100)
	incoming, incBounds := r.Rectangle(25, 0, 50, 100)

	out, bounds := Combine(current, curBounds, incoming, incBounds, Intersect, image.Point{})

	want := Bounds{X: 25, Y: 0, Width: 25, Height: 100}
	if bounds != want {
		t.Errorf("intersect bounds: got %+v, want %+v", bounds, want)
	}
	if out.At(30, 50) != 255 {
		t.Error("overlap should remain selected")
	}
	if out.At(10, 50) != 0 || out.At(80, 50) != 0 {
		t.Error("non-overlap should not be selected")
	}

	// Disjoint operands clamp to the zero bounds
	far, farBounds := r.Rectangle(60, 0, 30, 100)
	out, bounds = Combine(current, curBounds, far, farBounds, Intersect, image.Point{})
	if !bounds.Empty() {
		t.Errorf("disjoint intersect bounds should be empty, got %+v", bounds)
	}
	if out.SelectedCount() != 0 {
		t.Error("disjoint intersect should select nothing")
	}
}

func TestCombineAddUnionBounds(t *testing.T) {
	r := NewRasterizer(100, 100)
	current, curBounds := r.Rectangle(0, 0, 20, 20)
	incoming, incBounds := r.Rectangle(50, 50, 20, 20)

	out, bounds := Combine(current, curBounds, incoming, incBounds, Add, image.Point{})

	want := Bounds{X: 0, Y: 0, Width: 70, Height: 70}
	if bounds != want {
		t.Errorf("add bounds: got %+v, want %+v", bounds, want)
	}
	if out.At(10, 10) != 255 || out.At(60, 60) != 255 {
		t.Error("both operands should remain selected")
	}
	if out.At(35, 35) != 0 {
		t.Error("gap between operands should not be selected")
	}
}

func TestCombineOffset(t *testing.T) {
	current := NewMask(20, 20)
	incoming := NewMask(20, 20)
	incoming.Set(0, 0, 255)
	incBounds := Bounds{X: 0, Y: 0, Width: 1, Height: 1}

	out, bounds := Combine(current, Bounds{}, incoming, incBounds, Add, image.Pt(5, 7))

	if out.At(5, 7) != 255 {
		t.Errorf("expected translated pixel at (5,7), got %d", out.At(5, 7))
	}
	if out.At(0, 0) != 0 {
		t.Error("source position should not be selected after translation")
	}
	want := Bounds{X: 5, Y: 7, Width: 1, Height: 1}
	if bounds != want {
		t.Errorf("translated bounds: got %+v, want %+v", bounds, want)
	}
}
