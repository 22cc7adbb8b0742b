package selection

import (
	"bytes"
	"errors"

	"github.com/gotranspile/gotrace"
)

// ErrNoSelection is returned by operations that need an active
// selection when none exists.
var ErrNoSelection = errors.New("selection: no active selection")

// OutlineSVG vectorizes the active selection mask into an SVG document
// by tracing its bitmap outline. This is the "selection to path"
// feature: the resulting path data approximates the selection boundary
// and can be re-edited as vector geometry.
func (m *Manager) OutlineSVG() (string, error) {
	if !m.HasSelection() {
		return "", ErrNoSelection
	}

	bm := gotrace.BitmapFromGray(m.mask.ToGray(), nil)
	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := gotrace.Render("svg", nil, &buf, paths, m.width, m.height); err != nil {
		return "", err
	}
	return buf.String(), nil
}
