package morph

import (
	"math"
	"sync"
)

// Offset is a single tap of a circular structuring element.
type Offset struct {
	DX, DY int
}

// DiscOffsets returns every integer offset (dx, dy) with
// dx*dx+dy*dy <= radius*radius. The kernel extent is ceil(radius), so the
// structuring element is circular rather than square.
//
// For radius <= 0, returns only the center tap (identity).
func DiscOffsets(radius float64) []Offset {
	if radius <= 0 {
		return []Offset{{0, 0}}
	}

	k := int(math.Ceil(radius))
	r2 := radius * radius
	offsets := make([]Offset, 0, (2*k+1)*(2*k+1))
	for dy := -k; dy <= k; dy++ {
		for dx := -k; dx <= k; dx++ {
			if float64(dx*dx+dy*dy) <= r2 {
				offsets = append(offsets, Offset{DX: dx, DY: dy})
			}
		}
	}
	return offsets
}

// GaussianDisc is a circular convolution kernel with Gaussian weights,
// used by Feather. Offsets and Weights are parallel slices.
type GaussianDisc struct {
	Offsets []Offset
	Weights []float64
}

// NewGaussianDisc builds the feather kernel for the given radius:
// taps at all (dx, dy) with dx*dx+dy*dy <= radius*radius, each weighted
// exp(-(dx*dx+dy*dy) / (2*radius*radius)). Weights are left
// unnormalized; callers normalize per pixel by the accumulated in-bounds
// weight so that frame edges do not darken.
func NewGaussianDisc(radius float64) *GaussianDisc {
	offsets := DiscOffsets(radius)
	weights := make([]float64, len(offsets))
	if radius <= 0 {
		weights[0] = 1
		return &GaussianDisc{Offsets: offsets, Weights: weights}
	}

	twoSigmaSq := 2 * radius * radius
	for i, o := range offsets {
		d2 := float64(o.DX*o.DX + o.DY*o.DY)
		weights[i] = math.Exp(-d2 / twoSigmaSq)
	}
	return &GaussianDisc{Offsets: offsets, Weights: weights}
}

// kernelCache caches computed kernels to avoid recomputation.
// Key is radius * 100 (to handle float precision).
type kernelCache[T any] struct {
	mu     sync.RWMutex
	cache  map[int]T
	build  func(radius float64) T
	maxLen int
}

func newKernelCache[T any](maxLen int, build func(radius float64) T) *kernelCache[T] {
	return &kernelCache[T]{
		cache:  make(map[int]T),
		build:  build,
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache[T]) get(radius float64) T {
	// Quantize radius to 0.01 precision
	key := int(radius * 100)

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := c.build(radius)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: clear half the cache
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

var (
	discCache     = newKernelCache(64, DiscOffsets)
	gaussianCache = newKernelCache(64, NewGaussianDisc)
)

// CachedDiscOffsets returns a cached circular structuring element.
func CachedDiscOffsets(radius float64) []Offset {
	return discCache.get(radius)
}

// CachedGaussianDisc returns a cached feather kernel for the radius.
func CachedGaussianDisc(radius float64) *GaussianDisc {
	return gaussianCache.get(radius)
}
