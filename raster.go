package selection

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Rasterizer converts vector shape geometry into selection masks for a
// fixed reference frame, commonly the full canvas. The returned mask is
// always frame-sized; the returned Bounds is the tight clipped extent of
// the selected content. Degenerate geometry yields an empty mask and the
// zero Bounds, never an error.
type Rasterizer struct {
	width  int
	height int
}

// NewRasterizer creates a rasterizer for the given frame dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Rasterizer{width: width, height: height}
}

// Width returns the frame width.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the frame height.
func (r *Rasterizer) Height() int { return r.height }

func (r *Rasterizer) empty() (*Mask, Bounds) {
	return NewMask(r.width, r.height), Bounds{}
}

// Rectangle rasterizes an axis-aligned rectangle. The rectangle is
// clipped to the frame first; every covered integer pixel is set to 255.
func (r *Rasterizer) Rectangle(x, y, w, h float64) (*Mask, Bounds) {
	if w <= 0 || h <= 0 {
		return r.empty()
	}

	x0 := max(0, int(math.Floor(x)))
	y0 := max(0, int(math.Floor(y)))
	x1 := min(r.width, int(math.Ceil(x+w)))
	y1 := min(r.height, int(math.Ceil(y+h)))
	if x0 >= x1 || y0 >= y1 {
		return r.empty()
	}

	mask := NewMask(r.width, r.height)
	data := mask.Data()
	for py := y0; py < y1; py++ {
		row := data[py*r.width : py*r.width+r.width]
		for px := x0; px < x1; px++ {
			row[px] = 255
		}
	}

	bounds := Bounds{
		X:      float64(x0),
		Y:      float64(y0),
		Width:  float64(x1 - x0),
		Height: float64(y1 - y0),
	}
	return mask, bounds
}

// Ellipse rasterizes an axis-aligned ellipse using the per-pixel
// membership test ((x-cx)/rx)^2 + ((y-cy)/ry)^2 <= 1.
func (r *Rasterizer) Ellipse(cx, cy, rx, ry float64) (*Mask, Bounds) {
	if rx <= 0 || ry <= 0 {
		return r.empty()
	}

	y0 := max(0, int(math.Floor(cy-ry)))
	y1 := min(r.height-1, int(math.Ceil(cy+ry)))
	x0 := max(0, int(math.Floor(cx-rx)))
	x1 := min(r.width-1, int(math.Ceil(cx+rx)))

	mask := NewMask(r.width, r.height)
	data := mask.Data()
	minX, minY := r.width, r.height
	maxX, maxY := -1, -1
	for py := y0; py <= y1; py++ {
		dy := (float64(py) - cy) / ry
		for px := x0; px <= x1; px++ {
			dx := (float64(px) - cx) / rx
			if dx*dx+dy*dy > 1 {
				continue
			}
			data[py*r.width+px] = 255
			if px < minX {
				minX = px
			}
			if px > maxX {
				maxX = px
			}
			if py < minY {
				minY = py
			}
			maxY = py
		}
	}
	if maxX < 0 {
		return mask, Bounds{}
	}

	bounds := Bounds{
		X:      float64(minX),
		Y:      float64(minY),
		Width:  float64(maxX - minX + 1),
		Height: float64(maxY - minY + 1),
	}
	return mask, bounds
}

// Path rasterizes an arbitrary closed vector path at full frame
// resolution and reads back the anti-aliased coverage as the mask.
// Fill rule is nonzero winding, so self-intersecting gestures produce
// deterministic results. Open subpaths are closed implicitly, and an
// empty or degenerate command list yields an empty mask.
func (r *Rasterizer) Path(p *Path) (*Mask, Bounds) {
	if p.IsEmpty() || r.width == 0 || r.height == 0 {
		return r.empty()
	}

	vr := vector.NewRasterizer(r.width, r.height)
	open := false
	drew := false
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				vr.ClosePath()
			}
			vr.MoveTo(float32(e.Point.X), float32(e.Point.Y))
			open = true
		case LineTo:
			if !open {
				vr.MoveTo(float32(e.Point.X), float32(e.Point.Y))
				open = true
				continue
			}
			vr.LineTo(float32(e.Point.X), float32(e.Point.Y))
			drew = true
		case QuadTo:
			if !open {
				vr.MoveTo(float32(e.Point.X), float32(e.Point.Y))
				open = true
				continue
			}
			vr.QuadTo(
				float32(e.Control.X), float32(e.Control.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
			drew = true
		case CubicTo:
			if !open {
				vr.MoveTo(float32(e.Point.X), float32(e.Point.Y))
				open = true
				continue
			}
			vr.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
			drew = true
		case Close:
			if open {
				vr.ClosePath()
				open = false
			}
		}
	}
	if !drew {
		return r.empty()
	}
	if open {
		vr.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, r.width, r.height))
	vr.DrawOp = draw.Src
	vr.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	mask := NewMask(r.width, r.height)
	copy(mask.Data(), dst.Pix)
	return mask, mask.ContentBounds()
}

// Shape rasterizes a retained shape descriptor. A nil or malformed
// descriptor degrades to an empty mask.
func (r *Rasterizer) Shape(s Shape) (*Mask, Bounds) {
	switch sh := s.(type) {
	case RectangleShape:
		return r.Rectangle(sh.X, sh.Y, sh.Width, sh.Height)
	case EllipseShape:
		return r.Ellipse(sh.CX, sh.CY, sh.RX, sh.RY)
	case PathShape:
		if sh.Path == nil {
			return r.empty()
		}
		return r.Path(sh.Path)
	default:
		return r.empty()
	}
}
