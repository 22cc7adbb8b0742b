// Package selection implements the pixel selection engine of an
// interactive image editor.
//
// # Overview
//
// The package turns vector gestures (rectangles, ellipses, freehand paths)
// into per-pixel selection masks, combines masks with boolean set semantics
// (replace, add, subtract, intersect), and reshapes them with morphological
// operators (feather, anti-alias, grow, shrink, border). It is a pure CPU,
// in-process library: rendering, undo history, tool state and network-backed
// selection assists are external collaborators that talk to this package
// through the Manager contract.
//
// # Quick Start
//
//	import "github.com/gauntletai-p4-pointer/foto-fun-sub000"
//
//	// One Manager per editing context (sel = selection manager convention)
//	sel := selection.NewManager(1024, 768)
//
//	sel.CreateFromRectangle(100, 100, 400, 300, selection.Replace)
//	sel.Feather(4)
//
//	// Per-pixel multiplier used to mask paint/filter writes
//	v := sel.ValueAt(250, 200)
//	_ = v
//
// # Architecture
//
// The library is organized into:
//   - Public API: Manager, Mask, Bounds, Shape, Path, Mode
//   - Rasterizer: vector shape to coverage mask conversion
//   - internal/morph: morphological kernels over raw byte planes
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// The core is single-threaded and synchronous. Every transformation reads
// from a snapshot of the prior mask and writes a freshly allocated buffer,
// so no partial state is ever observable mid-call. One Manager owns the
// active selection for one editing context; Managers are not shared across
// goroutines.
package selection

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
