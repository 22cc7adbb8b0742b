package selection

import "image"

// Combine merges an incoming mask into the current one with boolean set
// semantics and returns a freshly allocated result sized like current.
// Incoming pixels are translated into current's frame by offset; both
// masks are anchored at the canvas origin, so a zero offset aligns two
// frame-sized masks directly.
//
// Per overlapping pixel:
//
//	replace:   incoming value
//	add:       max(current, incoming)
//	subtract:  max(0, current - incoming)
//	intersect: min(current, incoming)
//
// Bounds reconciliation per mode:
//
//	replace:   the incoming bounds
//	add:       union bounding box of both operands
//	subtract:  the minuend's bounds, unchanged
//	intersect: intersection bounding box (zero Bounds if disjoint)
func Combine(current *Mask, currentBounds Bounds, incoming *Mask, incomingBounds Bounds, mode Mode, offset image.Point) (*Mask, Bounds) {
	out := NewMask(current.width, current.height)
	data := out.Data()
	for y := 0; y < current.height; y++ {
		for x := 0; x < current.width; x++ {
			cur := current.data[y*current.width+x]
			inc := incoming.At(x-offset.X, y-offset.Y)

			var v uint8
			switch mode {
			case Replace:
				v = inc
			case Add:
				v = cur
				if inc > v {
					v = inc
				}
			case Subtract:
				if cur > inc {
					v = cur - inc
				}
			case Intersect:
				v = cur
				if inc < v {
					v = inc
				}
			default:
				v = cur
			}
			data[y*current.width+x] = v
		}
	}

	shifted := incomingBounds.Translate(float64(offset.X), float64(offset.Y))
	var bounds Bounds
	switch mode {
	case Replace:
		bounds = shifted
	case Add:
		bounds = currentBounds.Union(shifted)
	case Subtract:
		// The minuend is assumed to dominate the visible region.
		bounds = currentBounds
	case Intersect:
		bounds = currentBounds.Intersect(shifted)
	default:
		bounds = currentBounds
	}
	return out, bounds
}
