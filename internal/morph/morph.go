// Package morph implements morphological transforms over raw selection
// strength planes: feather, anti-alias, grow (dilate), shrink (erode)
// and border. Every operation reads only its input slice and returns a
// freshly allocated result, so callers never see partially written state.
package morph

// A pixel is "selected" for the structural operators when its strength
// is nonzero. Feather and AntiAlias operate on the full strength range.

// Feather applies a Gaussian-weighted convolution with a circular kernel
// of the given radius. Each output pixel is the weighted sum of its
// in-bounds taps divided by the accumulated in-bounds weight, so pixels
// near the frame edge are not darkened by the missing taps. A pixel with
// no in-bounds weight keeps its input value. radius <= 0 is an identity
// copy.
func Feather(src []uint8, width, height int, radius float64) []uint8 {
	out := make([]uint8, len(src))
	if radius <= 0 {
		copy(out, src)
		return out
	}

	kernel := CachedGaussianDisc(radius)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum, weight float64
			for i, o := range kernel.Offsets {
				nx := x + o.DX
				ny := y + o.DY
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				w := kernel.Weights[i]
				sum += w * float64(src[ny*width+nx])
				weight += w
			}
			idx := y*width + x
			if weight <= 0 {
				out[idx] = src[idx]
				continue
			}
			v := sum/weight + 0.5
			if v > 255 {
				v = 255
			}
			out[idx] = uint8(v)
		}
	}
	return out
}

// antiAliasKernel is the fixed 3x3 binomial smoothing kernel, applied
// with a divisor of 16.
var antiAliasKernel = [3][3]int{
	{1, 2, 1},
	{2, 4, 2},
	{1, 2, 1},
}

// AntiAlias applies one pass of the 3x3 binomial kernel to interior
// pixels. The 1-pixel frame border is left untouched, which keeps the
// hot loop free of bounds checks.
func AntiAlias(src []uint8, width, height int) []uint8 {
	out := make([]uint8, len(src))
	copy(out, src)
	if width < 3 || height < 3 {
		return out
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			sum := 0
			for ky := -1; ky <= 1; ky++ {
				row := (y + ky) * width
				for kx := -1; kx <= 1; kx++ {
					sum += antiAliasKernel[ky+1][kx+1] * int(src[row+x+kx])
				}
			}
			out[y*width+x] = uint8(sum / 16)
		}
	}
	return out
}

// Dilate grows the selection: an unselected pixel becomes fully selected
// (255) when any pixel within Euclidean distance radius of it is
// selected. Selected pixels keep their strength, so the nonzero pixel
// count never decreases. radius <= 0 is an identity copy.
func Dilate(src []uint8, width, height int, radius float64) []uint8 {
	out := make([]uint8, len(src))
	if radius <= 0 {
		copy(out, src)
		return out
	}

	offsets := CachedDiscOffsets(radius)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if src[idx] > 0 {
				out[idx] = src[idx]
				continue
			}
			for _, o := range offsets {
				nx := x + o.DX
				ny := y + o.DY
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				if src[ny*width+nx] > 0 {
					out[idx] = 255
					break
				}
			}
		}
	}
	return out
}

// Erode shrinks the selection: a selected pixel becomes unselected (0)
// when any position within Euclidean distance radius of it is
// unselected. Positions outside the frame count as unselected, so the
// selection always erodes at the frame edge. The nonzero pixel count
// never increases. radius <= 0 is an identity copy.
func Erode(src []uint8, width, height int, radius float64) []uint8 {
	out := make([]uint8, len(src))
	if radius <= 0 {
		copy(out, src)
		return out
	}

	offsets := CachedDiscOffsets(radius)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if src[idx] == 0 {
				continue
			}
			keep := src[idx]
			for _, o := range offsets {
				nx := x + o.DX
				ny := y + o.DY
				if nx < 0 || nx >= width || ny < 0 || ny >= height || src[ny*width+nx] == 0 {
					keep = 0
					break
				}
			}
			out[idx] = keep
		}
	}
	return out
}

// Border derives a ring of approximately the given width along the
// selection boundary: the pixelwise difference between the original and
// its erosion, clamped at 0. The result never selects more pixels than
// the original.
func Border(src []uint8, width, height int, borderWidth float64) []uint8 {
	out := make([]uint8, len(src))
	if borderWidth <= 0 {
		copy(out, src)
		return out
	}
	eroded := Erode(src, width, height, borderWidth)
	for i := range src {
		if src[i] > eroded[i] {
			out[i] = src[i] - eroded[i]
		}
	}
	return out
}
