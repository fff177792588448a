// seehuhn.de/go/glyphkit - batch transformations for font glyph sets
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package glyphset

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/glyphkit/transform"
)

// maxComponentDepth limits the nesting of components when computing
// bounding boxes.  Deeper nesting is treated as a reference cycle.
const maxComponentDepth = 16

// ErrEmptyLayer is returned when sidebearings are requested for a layer
// without outlines.
var ErrEmptyLayer = errors.New("layer has no outlines")

// NodeType describes the role of a node in a path.
type NodeType string

// These are the node types used in paths.
const (
	Move     NodeType = "move"
	Line     NodeType = "line"
	Curve    NodeType = "curve"
	QCurve   NodeType = "qcurve"
	OffCurve NodeType = "offcurve"
)

// Node is a point of a path.
type Node struct {
	X, Y float64
	Type NodeType
}

// Path is an outline contour.
type Path struct {
	Closed    bool
	Nodes     []Node
	FillColor *Color
}

// SetFillColor sets the fill colour attribute of the path.
func (p *Path) SetFillColor(c Color) error {
	if err := c.Validate(); err != nil {
		return err
	}
	p.FillColor = &c
	return nil
}

// Component is a reference to the layer of another glyph in the same
// master.
type Component struct {
	Base      string
	Transform matrix.Matrix
	FillColor *Color
}

// NewComponent returns a component which references the named glyph without
// any transformation.
func NewComponent(base string) *Component {
	return &Component{
		Base:      base,
		Transform: matrix.Identity,
	}
}

// SetFillColor sets the fill colour attribute of the component.
func (c *Component) SetFillColor(col Color) error {
	if err := col.Validate(); err != nil {
		return err
	}
	c.FillColor = &col
	return nil
}

// Layer holds the outlines and metrics of a glyph for one master.
type Layer struct {
	Paths      []*Path
	Components []*Component

	width    float64
	glyph    *Glyph
	masterID string
}

// NewLayer allocates a new, empty layer with the given advance width.
func NewLayer(width float64) (*Layer, error) {
	l := &Layer{}
	if err := l.SetWidth(width); err != nil {
		return nil, err
	}
	return l, nil
}

// Glyph returns the glyph the layer belongs to, or nil.
func (l *Layer) Glyph() *Glyph {
	return l.glyph
}

// MasterID returns the ID of the master the layer belongs to.
func (l *Layer) MasterID() string {
	return l.masterID
}

// Width returns the advance width of the layer.
func (l *Layer) Width() float64 {
	return l.width
}

// SetWidth sets the advance width of the layer.
func (l *Layer) SetWidth(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("invalid advance width %g", w)
	}
	l.width = w
	return nil
}

// IsEmpty reports whether the layer has neither paths nor components.
func (l *Layer) IsEmpty() bool {
	return len(l.Paths) == 0 && len(l.Components) == 0
}

// Bounds returns the bounding box of the layer's outlines, including the
// outlines of components.  The box encloses all nodes of the paths,
// including off-curve points.  The second return value is false if the
// layer has no outlines.
func (l *Layer) Bounds() (rect.Rect, bool) {
	return l.bounds(0)
}

func (l *Layer) bounds(depth int) (rect.Rect, bool) {
	var res rect.Rect
	found := false
	add := func(x, y float64) {
		if !found {
			res = rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
			found = true
			return
		}
		res.Add(x, y)
	}

	for _, p := range l.Paths {
		for _, n := range p.Nodes {
			add(n.X, n.Y)
		}
	}

	if depth >= maxComponentDepth || l.glyph == nil || l.glyph.font == nil {
		return res, found
	}
	for _, c := range l.Components {
		base := l.glyph.font.Glyph(c.Base)
		if base == nil {
			continue
		}
		baseLayer := base.Layer(l.masterID)
		if baseLayer == nil {
			continue
		}
		bbox, ok := baseLayer.bounds(depth + 1)
		if !ok {
			continue
		}
		bbox = transform.Rect(c.Transform, bbox)
		add(bbox.LLx, bbox.LLy)
		add(bbox.URx, bbox.URy)
	}
	return res, found
}

// LSB returns the left sidebearing of the layer.
func (l *Layer) LSB() (float64, bool) {
	bbox, ok := l.Bounds()
	if !ok {
		return 0, false
	}
	return bbox.LLx, true
}

// RSB returns the right sidebearing of the layer.
func (l *Layer) RSB() (float64, bool) {
	bbox, ok := l.Bounds()
	if !ok {
		return 0, false
	}
	return l.width - bbox.URx, true
}

// SetLSB moves the outlines horizontally so that the left sidebearing
// becomes lsb.  The right sidebearing is kept by adjusting the advance
// width.
func (l *Layer) SetLSB(lsb float64) error {
	bbox, ok := l.Bounds()
	if !ok {
		return ErrEmptyLayer
	}
	dx := lsb - bbox.LLx
	if err := l.SetWidth(l.width + dx); err != nil {
		return err
	}
	l.Transform(matrix.Translate(dx, 0))
	return nil
}

// SetRSB changes the advance width so that the right sidebearing becomes
// rsb.
func (l *Layer) SetRSB(rsb float64) error {
	bbox, ok := l.Bounds()
	if !ok {
		return ErrEmptyLayer
	}
	return l.SetWidth(bbox.URx + rsb)
}

// Transform applies M to all paths and components of the layer.
// The advance width is not changed.
func (l *Layer) Transform(M matrix.Matrix) {
	for _, p := range l.Paths {
		for i := range p.Nodes {
			n := &p.Nodes[i]
			n.X, n.Y = M.Apply(n.X, n.Y)
		}
	}
	for _, c := range l.Components {
		c.Transform = c.Transform.Mul(M)
	}
}
