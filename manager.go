package selection

import "image"

// Op is a tagged morphology operation with typed parameters. The history
// collaborator can record Op values verbatim and replay them through
// Apply; there is no name-based dispatch.
type Op interface {
	isOp()
}

// FeatherOp softens the selection edge with a Gaussian kernel.
type FeatherOp struct {
	Radius float64
}

func (FeatherOp) isOp() {}

// GrowOp expands the selection by a radius in pixels.
type GrowOp struct {
	Radius float64
}

func (GrowOp) isOp() {}

// ShrinkOp contracts the selection by a radius in pixels.
type ShrinkOp struct {
	Radius float64
}

func (ShrinkOp) isOp() {}

// BorderOp keeps only a ring along the selection boundary.
type BorderOp struct {
	Width float64
}

func (BorderOp) isOp() {}

// SmoothOp anti-aliases jagged selection edges.
type SmoothOp struct{}

func (SmoothOp) isOp() {}

// InvertOp inverts the selection strength of every pixel.
type InvertOp struct{}

func (InvertOp) isOp() {}

// Manager owns the single active selection of one editing context and
// orchestrates rasterization, combination and morphology. Tools and
// filters query it per pixel; the history collaborator snapshots and
// restores its state.
//
// Every mutating call is synchronous and atomic: the new mask and bounds
// are computed in full before the active triple is swapped, so no
// partial state is ever observable.
type Manager struct {
	width  int
	height int
	raster *Rasterizer

	// Active selection triple. A nil mask means no selection exists
	// (the Empty state).
	mask   *Mask
	bounds Bounds
	shape  Shape

	// Marching ants loop (cosmetic, independent of selection state).
	antsSched  FrameScheduler
	antsHandle Handle
	antsOn     bool
	antsPhase  int
}

// NewManager creates a selection manager for a frame of the given
// dimensions, typically the document canvas size.
func NewManager(width, height int) *Manager {
	return &Manager{
		width:  width,
		height: height,
		raster: NewRasterizer(width, height),
	}
}

// Width returns the frame width.
func (m *Manager) Width() int { return m.width }

// Height returns the frame height.
func (m *Manager) Height() int { return m.height }

// CreateFromRectangle rasterizes a rectangular marquee and combines it
// with the active selection per mode.
func (m *Manager) CreateFromRectangle(x, y, w, h float64, mode Mode) {
	mask, bounds := m.raster.Rectangle(x, y, w, h)
	m.create(mask, bounds, RectangleShape{X: x, Y: y, Width: w, Height: h}, mode)
}

// CreateFromEllipse rasterizes an elliptical marquee and combines it
// with the active selection per mode.
func (m *Manager) CreateFromEllipse(cx, cy, rx, ry float64, mode Mode) {
	mask, bounds := m.raster.Ellipse(cx, cy, rx, ry)
	m.create(mask, bounds, EllipseShape{CX: cx, CY: cy, RX: rx, RY: ry}, mode)
}

// CreateFromPath rasterizes a freehand path and combines it with the
// active selection per mode. A nil or empty path degrades to an empty
// incoming selection.
func (m *Manager) CreateFromPath(p *Path, mode Mode) {
	mask, bounds := m.raster.Path(p)
	m.create(mask, bounds, PathShape{Path: p}, mode)
}

// create merges a freshly rasterized mask into the active selection.
func (m *Manager) create(incoming *Mask, incomingBounds Bounds, shape Shape, mode Mode) {
	if incomingBounds.Empty() {
		Logger().Warn("degenerate selection shape", "mode", mode.String())
	}

	if m.mask == nil {
		switch mode {
		case Replace, Add:
			// The first gesture always starts a fresh selection.
			if incomingBounds.Empty() {
				return
			}
			m.mask = incoming
			m.bounds = incomingBounds
			m.shape = shape
		case Subtract, Intersect:
			// Nothing to subtract from or intersect with.
		}
		Logger().Debug("selection created", "mode", mode.String(), "bounds", m.bounds)
		return
	}

	mask, bounds := Combine(m.mask, m.bounds, incoming, incomingBounds, mode, image.Point{})
	if mode == Replace && incomingBounds.Empty() {
		// Replacing with nothing destroys the selection.
		m.clearSelection()
		return
	}
	m.mask = mask
	m.bounds = bounds
	if mode == Replace {
		m.shape = shape
	} else {
		m.shape = nil
	}
	Logger().Debug("selection combined", "mode", mode.String(), "bounds", m.bounds)
}

// Apply runs a morphology operation on the active selection. Bounds are
// recomputed from the resulting content. Without an active selection
// Apply is a no-op.
func (m *Manager) Apply(op Op) {
	if m.mask == nil {
		return
	}

	var mask *Mask
	keepShape := true
	switch o := op.(type) {
	case FeatherOp:
		mask = m.mask.Feather(o.Radius)
	case GrowOp:
		mask = m.mask.Grow(o.Radius)
	case ShrinkOp:
		mask = m.mask.Shrink(o.Radius)
	case BorderOp:
		mask = m.mask.Border(o.Width)
		keepShape = false
	case SmoothOp:
		mask = m.mask.AntiAlias()
	case InvertOp:
		mask = m.mask.Clone()
		mask.Invert()
		keepShape = false
	default:
		return
	}

	m.mask = mask
	m.bounds = mask.ContentBounds()
	if !keepShape {
		m.shape = nil
	}
	Logger().Debug("selection transformed", "bounds", m.bounds)
}

// Feather softens the selection edge by the given radius.
func (m *Manager) Feather(radius float64) { m.Apply(FeatherOp{Radius: radius}) }

// Expand grows the selection outward by px pixels.
func (m *Manager) Expand(px float64) { m.Apply(GrowOp{Radius: px}) }

// Contract shrinks the selection inward by px pixels.
func (m *Manager) Contract(px float64) { m.Apply(ShrinkOp{Radius: px}) }

// Smooth anti-aliases the selection edge.
func (m *Manager) Smooth() { m.Apply(SmoothOp{}) }

// BorderSelect keeps only a ring of the given width along the selection
// boundary.
func (m *Manager) BorderSelect(width float64) { m.Apply(BorderOp{Width: width}) }

// Invert inverts the selection strength of every pixel. Without an
// active selection Invert is a no-op.
func (m *Manager) Invert() { m.Apply(InvertOp{}) }

// SelectAll selects the whole frame at full strength.
func (m *Manager) SelectAll() {
	mask := NewMask(m.width, m.height)
	mask.Fill(255)
	m.mask = mask
	m.bounds = Bounds{Width: float64(m.width), Height: float64(m.height)}
	m.shape = RectangleShape{Width: float64(m.width), Height: float64(m.height)}
}

// Clear destroys the active selection.
func (m *Manager) Clear() {
	m.clearSelection()
}

func (m *Manager) clearSelection() {
	m.mask = nil
	m.bounds = Bounds{}
	m.shape = nil
	Logger().Debug("selection cleared")
}

// Restore replaces the active selection with a snapshot, the entry point
// for undo/redo replay and for externally computed masks. The mask is
// cloned so later snapshots stay independent. A nil mask clears the
// selection; a mask whose dimensions do not match the frame degrades to
// an empty selection.
func (m *Manager) Restore(mask *Mask, bounds Bounds, shape Shape) {
	if mask == nil {
		m.clearSelection()
		return
	}
	if mask.Width() != m.width || mask.Height() != m.height {
		Logger().Warn("restored mask does not match frame",
			"mask_width", mask.Width(), "mask_height", mask.Height(),
			"frame_width", m.width, "frame_height", m.height)
		m.clearSelection()
		return
	}
	m.mask = mask.Clone()
	m.bounds = bounds
	m.shape = shape
}

// RestoreFromImage replaces the active selection with the alpha channel
// of an image, such as a mask produced by a network-backed assist. The
// image is sampled into a frame-sized mask anchored at the canvas
// origin; a fully transparent image clears the selection.
func (m *Manager) RestoreFromImage(img image.Image) {
	alpha := NewMaskFromAlpha(img)

	mask := NewMask(m.width, m.height)
	w := min(m.width, alpha.Width())
	h := min(m.height, alpha.Height())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mask.Set(x, y, alpha.At(x, y))
		}
	}

	bounds := mask.ContentBounds()
	if bounds.Empty() {
		m.clearSelection()
		return
	}
	m.mask = mask
	m.bounds = bounds
	m.shape = nil
}

// HasSelection reports whether an active selection with nonzero area
// exists.
func (m *Manager) HasSelection() bool {
	return m.mask != nil && !m.bounds.Empty()
}

// IsPixelSelected reports whether the pixel at (x, y) is selected above
// the half-strength threshold. Out-of-frame coordinates return false.
func (m *Manager) IsPixelSelected(x, y int) bool {
	return m.mask != nil && m.mask.At(x, y) > 127
}

// ValueAt returns the selection strength at (x, y) in [0, 1], the
// multiplier applied to pixel writes during painting and filtering.
// Returns 0 outside the frame or without an active selection.
func (m *Manager) ValueAt(x, y int) float64 {
	if m.mask == nil {
		return 0
	}
	return float64(m.mask.At(x, y)) / 255
}

// SelectedPixelCount returns the number of pixels with nonzero strength.
func (m *Manager) SelectedPixelCount() int {
	if m.mask == nil {
		return 0
	}
	return m.mask.SelectedCount()
}

// Selection returns the active mask, or nil without a selection. The
// mask is live state; callers that need to keep it (such as history
// snapshots) should Clone it.
func (m *Manager) Selection() *Mask {
	return m.mask
}

// SelectionBounds returns the bounds of the active selection content.
func (m *Manager) SelectionBounds() Bounds {
	return m.bounds
}

// ShapeDescriptor returns the retained vector descriptor of the gesture
// that produced the selection, or nil when the selection no longer
// corresponds to a single gesture.
func (m *Manager) ShapeDescriptor() Shape {
	return m.shape
}

// SelectedPixels extracts the selected region of src as an
// alpha-premultiplied RGBA crop over the current bounds. Each source
// pixel is scaled by its selection strength. Returns nil without an
// active selection.
func (m *Manager) SelectedPixels(src image.Image) *image.RGBA {
	if !m.HasSelection() {
		return nil
	}

	rect := m.bounds.Rect().Intersect(image.Rect(0, 0, m.width, m.height))
	if rect.Empty() {
		return nil
	}

	out := image.NewRGBA(rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			v := uint32(m.mask.At(x, y))
			if v == 0 {
				continue
			}
			// RGBA() returns alpha-premultiplied 16-bit channels;
			// scaling all four by strength keeps premultiplication.
			r, g, b, a := src.At(x, y).RGBA()
			i := out.PixOffset(x, y)
			out.Pix[i+0] = uint8(r * v / 255 >> 8)
			out.Pix[i+1] = uint8(g * v / 255 >> 8)
			out.Pix[i+2] = uint8(b * v / 255 >> 8)
			out.Pix[i+3] = uint8(a * v / 255 >> 8)
		}
	}
	return out
}
