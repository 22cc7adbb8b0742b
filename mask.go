package selection

import "image"

// Mask is a bounded 2-D per-pixel selection strength buffer.
// Values range from 0 (not selected) to 255 (fully selected).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (not selected).
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewMaskFromAlpha creates a mask from an image's alpha channel.
// This is the import point for externally produced selections, such as
// masks suggested by a network-backed assist.
func NewMaskFromAlpha(img image.Image) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := NewMask(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// a is 0-65535, shift by 8 to get 0-255
			mask.data[y*w+x] = uint8(a >> 8)
		}
	}

	return mask
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// Rect returns the mask dimensions as an image.Rectangle.
func (m *Mask) Rect() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At returns the selection strength at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the selection strength at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clear clears the mask (sets all values to 0).
func (m *Mask) Clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Invert inverts all mask values (255 - value).
// Inverting twice restores the original mask.
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = 255 - m.data[i]
	}
}

// Clone creates a deep copy of the mask. Higher-level operations read
// from a clone of prior state before writing results, which removes
// read/write aliasing between input and output buffers.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data slice.
// This is useful for advanced operations.
func (m *Mask) Data() []uint8 {
	return m.data
}

// SelectedCount returns the number of pixels with nonzero strength.
func (m *Mask) SelectedCount() int {
	n := 0
	for _, v := range m.data {
		if v > 0 {
			n++
		}
	}
	return n
}

// ContentBounds returns the tight bounding box of all nonzero pixels.
// Returns the zero Bounds when the mask is entirely empty.
func (m *Mask) ContentBounds() Bounds {
	minX, minY := m.width, m.height
	maxX, maxY := -1, -1
	for y := 0; y < m.height; y++ {
		row := m.data[y*m.width : (y+1)*m.width]
		for x, v := range row {
			if v == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < 0 {
		return Bounds{}
	}
	return Bounds{
		X:      float64(minX),
		Y:      float64(minY),
		Width:  float64(maxX - minX + 1),
		Height: float64(maxY - minY + 1),
	}
}

// IsBoundary reports whether the pixel at (x, y) lies on the selection
// boundary: it is selected above the half threshold while at least one of
// its 4-neighbors is not. Marching-ants renderers use this to pick the
// outline pixels; the test has no effect on mask semantics.
func (m *Mask) IsBoundary(x, y int) bool {
	const threshold = 127
	if m.At(x, y) <= threshold {
		return false
	}
	return m.At(x-1, y) <= threshold || m.At(x+1, y) <= threshold ||
		m.At(x, y-1) <= threshold || m.At(x, y+1) <= threshold
}

// ToGray converts the mask to an image.Gray sharing the same dimensions.
func (m *Mask) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.width, m.height))
	copy(img.Pix, m.data)
	return img
}
