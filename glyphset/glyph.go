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
	"fmt"
	"strconv"
)

// Label is one of the twelve predefined glyph label colours.
type Label int

// The predefined label colours.
const (
	Red Label = iota
	Orange
	Brown
	Yellow
	LightGreen
	DarkGreen
	LightBlue
	DarkBlue
	Purple
	Magenta
	LightGray
	Charcoal

	numLabels = iota
)

var labelNames = [numLabels]string{
	"red", "orange", "brown", "yellow", "light green", "dark green",
	"light blue", "dark blue", "purple", "magenta", "light gray", "charcoal",
}

func (l Label) String() string {
	if l.IsValid() {
		return labelNames[l]
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// IsValid reports whether l is one of the predefined labels.
func (l Label) IsValid() bool {
	return l >= 0 && l < numLabels
}

// ParseLabel converts a label name (as returned by String) or a label index
// into a Label.
func ParseLabel(s string) (Label, error) {
	for i, name := range labelNames {
		if s == name {
			return Label(i), nil
		}
	}
	if idx, err := strconv.Atoi(s); err == nil {
		if l := Label(idx); l.IsValid() {
			return l, nil
		}
	}
	return 0, fmt.Errorf("invalid glyph label %q", s)
}

// Glyph is a named entry of a font.
type Glyph struct {
	Unicodes    []rune
	Category    string
	SubCategory string
	Script      string

	name   string
	label  *Label
	layers map[string]*Layer
	font   *Font
}

// NewGlyph allocates a new glyph which does not yet belong to a font.
func NewGlyph(name string) *Glyph {
	return &Glyph{
		name:   name,
		layers: make(map[string]*Layer),
	}
}

// Name returns the name of the glyph.  Use [Font.RenameGlyph] to change it.
func (g *Glyph) Name() string {
	return g.name
}

// Font returns the font the glyph belongs to, or nil.
func (g *Glyph) Font() *Font {
	return g.font
}

// Unicode returns the first code point of the glyph.
func (g *Glyph) Unicode() (rune, bool) {
	if len(g.Unicodes) == 0 {
		return 0, false
	}
	return g.Unicodes[0], true
}

// Label returns the label colour of the glyph.
func (g *Glyph) Label() (Label, bool) {
	if g.label == nil {
		return 0, false
	}
	return *g.label, true
}

// SetLabel sets the label colour of the glyph.
func (g *Glyph) SetLabel(l Label) error {
	if !l.IsValid() {
		return fmt.Errorf("glyph %q: invalid label %d", g.name, int(l))
	}
	g.label = &l
	return nil
}

// ClearLabel removes the label colour of the glyph.
func (g *Glyph) ClearLabel() {
	g.label = nil
}

// Layer returns the layer for the given master, or nil.
func (g *Glyph) Layer(masterID string) *Layer {
	return g.layers[masterID]
}

// SetLayer replaces the layer for the given master.  If the glyph belongs
// to a font, the master must exist in this font.
func (g *Glyph) SetLayer(masterID string, l *Layer) error {
	if l == nil {
		return fmt.Errorf("glyph %q: nil layer", g.name)
	}
	if g.font != nil && g.font.Master(masterID) == nil {
		return fmt.Errorf("glyph %q: unknown master %q", g.name, masterID)
	}
	if l.glyph != nil && l.glyph != g {
		return fmt.Errorf("glyph %q: layer belongs to glyph %q", g.name, l.glyph.name)
	}
	g.setLayer(masterID, l)
	return nil
}

func (g *Glyph) setLayer(masterID string, l *Layer) {
	l.glyph = g
	l.masterID = masterID
	g.layers[masterID] = l
}

// Layers returns the layers of the glyph.  If the glyph belongs to a font,
// the layers are returned in master order; otherwise the order is
// unspecified.
func (g *Glyph) Layers() []*Layer {
	var res []*Layer
	if g.font != nil {
		for _, m := range g.font.masters {
			if l := g.layers[m.ID]; l != nil {
				res = append(res, l)
			}
		}
		return res
	}
	for _, l := range g.layers {
		res = append(res, l)
	}
	return res
}
