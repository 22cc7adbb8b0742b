package selection

import "github.com/gauntletai-p4-pointer/foto-fun-sub000/internal/morph"

// Morphological transforms. Each method reads a snapshot of the mask and
// returns a freshly allocated result mask; the receiver is never written.

// Feather softens the selection edge with a Gaussian-weighted circular
// convolution of the given radius. radius <= 0 returns an unmodified copy.
func (m *Mask) Feather(radius float64) *Mask {
	return &Mask{
		width:  m.width,
		height: m.height,
		data:   morph.Feather(m.data, m.width, m.height, radius),
	}
}

// AntiAlias smooths jagged selection edges with one pass of a fixed 3x3
// binomial kernel over interior pixels.
func (m *Mask) AntiAlias() *Mask {
	return &Mask{
		width:  m.width,
		height: m.height,
		data:   morph.AntiAlias(m.data, m.width, m.height),
	}
}

// Grow expands the selection by the given radius using a circular
// structuring element. The selected pixel count never decreases.
func (m *Mask) Grow(radius float64) *Mask {
	return &Mask{
		width:  m.width,
		height: m.height,
		data:   morph.Dilate(m.data, m.width, m.height, radius),
	}
}

// Shrink contracts the selection by the given radius using a circular
// structuring element. Positions outside the frame count as unselected,
// so the selection erodes at the frame edge. The selected pixel count
// never increases.
//
// Grow followed by Shrink (or vice versa) is not guaranteed to reproduce
// the original mask exactly.
func (m *Mask) Shrink(radius float64) *Mask {
	return &Mask{
		width:  m.width,
		height: m.height,
		data:   morph.Erode(m.data, m.width, m.height, radius),
	}
}

// Border keeps a ring of approximately the given width along the
// selection boundary, computed as the mask minus its own erosion.
func (m *Mask) Border(width float64) *Mask {
	return &Mask{
		width:  m.width,
		height: m.height,
		data:   morph.Border(m.data, m.width, m.height, width),
	}
}
