package selection

import (
	"errors"
	"strings"
	"testing"
)

func TestOutlineSVGRequiresSelection(t *testing.T) {
	sel := NewManager(50, 50)
	if _, err := sel.OutlineSVG(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("empty state: got %v, want ErrNoSelection", err)
	}
}

func TestOutlineSVG(t *testing.T) {
	sel := NewManager(100, 100)
	sel.CreateFromRectangle(20, 20, 50, 50, Replace)

	out, err := sel.OutlineSVG()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "path") {
		t.Errorf("traced output should be an SVG document with path data:\n%s", out)
	}
}
