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

// Package glyphset implements an in-memory model of a font's glyph set.
//
// A [Font] has a list of masters and a list of glyphs.  Glyph names are
// unique within a font; the glyph list is the namespace which all
// operations in glyphkit create, rename and delete entries in.  Each
// [Glyph] has one [Layer] per master, holding the advance width, outlines
// and component references for this master.
//
// Fonts can be stored as YAML documents using [Read] and [Write].
package glyphset

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/naming"
)

// Master is a design variant of a font.
type Master struct {
	ID   string
	Name string
}

// Font is a collection of glyphs with unique names.
type Font struct {
	FamilyName string

	masters []*Master
	glyphs  []*Glyph
	index   map[string]*Glyph
	folded  map[string]*Glyph
	fold    cases.Caser
}

// New allocates a new, empty font.
func New(familyName string, masters ...*Master) (*Font, error) {
	f := &Font{
		FamilyName: familyName,
		index:      make(map[string]*Glyph),
		folded:     make(map[string]*Glyph),
		fold:       cases.Fold(),
	}
	for _, m := range masters {
		if err := f.AddMaster(m); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// AddMaster appends a master to the font.  Existing glyphs get an empty
// layer for the new master.
func (f *Font) AddMaster(m *Master) error {
	if m == nil || m.ID == "" {
		return errors.New("master without ID")
	}
	if f.Master(m.ID) != nil {
		return fmt.Errorf("duplicate master ID %q", m.ID)
	}
	f.masters = append(f.masters, m)
	for _, g := range f.glyphs {
		if g.layers[m.ID] == nil {
			g.setLayer(m.ID, &Layer{})
		}
	}
	return nil
}

// Masters returns the masters of the font, in order.
func (f *Font) Masters() []*Master {
	return append([]*Master(nil), f.masters...)
}

// Master returns the master with the given ID, or nil if there is no such
// master.
func (f *Font) Master(id string) *Master {
	for _, m := range f.masters {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// MasterByName returns the first master with the given name.
func (f *Font) MasterByName(name string) *Master {
	for _, m := range f.masters {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return len(f.glyphs)
}

// Glyphs returns the glyphs of the font, in order.
func (f *Font) Glyphs() []*Glyph {
	return append([]*Glyph(nil), f.glyphs...)
}

// Names returns the glyph names of the font, in order.
func (f *Font) Names() []string {
	res := make([]string, len(f.glyphs))
	for i, g := range f.glyphs {
		res[i] = g.name
	}
	return res
}

// Glyph returns the glyph with the given name, or nil if there is no such
// glyph.
func (f *Font) Glyph(name string) *Glyph {
	return f.index[name]
}

// LookupFold returns a glyph whose name equals name under Unicode case
// folding.  If several glyphs match, the one added first is returned.
func (f *Font) LookupFold(name string) *Glyph {
	return f.folded[f.fold.String(name)]
}

// Has reports whether a glyph with the given name exists.
func (f *Font) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// AddGlyph appends a glyph to the font.  The glyph gets an empty layer for
// every master it has no layer for.  If the name is already in use, a
// [*glyphkit.ConflictError] is returned and the font is unchanged.
func (f *Font) AddGlyph(g *Glyph) error {
	if g.font != nil {
		return fmt.Errorf("glyph %q already belongs to a font", g.name)
	}
	if !naming.IsValid(g.name) {
		return fmt.Errorf("invalid glyph name %q", g.name)
	}
	if f.Has(g.name) {
		return &glyphkit.ConflictError{Name: g.name}
	}

	g.font = f
	for _, m := range f.masters {
		if g.layers[m.ID] == nil {
			g.setLayer(m.ID, &Layer{})
		}
	}
	f.glyphs = append(f.glyphs, g)
	f.index[g.name] = g
	key := f.fold.String(g.name)
	if _, seen := f.folded[key]; !seen {
		f.folded[key] = g
	}
	return nil
}

// RemoveGlyph deletes a glyph from the font.
func (f *Font) RemoveGlyph(name string) error {
	g := f.index[name]
	if g == nil {
		return fmt.Errorf("glyph %q not found", name)
	}
	for i, other := range f.glyphs {
		if other == g {
			f.glyphs = append(f.glyphs[:i], f.glyphs[i+1:]...)
			break
		}
	}
	delete(f.index, name)
	f.rebuildFolded()
	g.font = nil
	return nil
}

// ReplaceGlyph puts g in the place of the glyph with the same name.  The
// new glyph keeps the position of the old one in the glyph order.  If there
// is no glyph with this name, or if g cannot be added, the font is
// unchanged.
func (f *Font) ReplaceGlyph(g *Glyph) error {
	if g.font != nil {
		return fmt.Errorf("glyph %q already belongs to a font", g.name)
	}
	old := f.index[g.name]
	if old == nil {
		return fmt.Errorf("glyph %q not found", g.name)
	}
	for id := range g.layers {
		if f.Master(id) == nil {
			return fmt.Errorf("glyph %q: unknown master %q", g.name, id)
		}
	}

	g.font = f
	for _, m := range f.masters {
		if g.layers[m.ID] == nil {
			g.setLayer(m.ID, &Layer{})
		}
	}
	for i, other := range f.glyphs {
		if other == old {
			f.glyphs[i] = g
			break
		}
	}
	f.index[g.name] = g
	f.rebuildFolded()
	old.font = nil
	return nil
}

// RenameGlyph changes the name of a glyph.  The glyph keeps its position.
// If newName is in use, a [*glyphkit.ConflictError] is returned and the font
// is unchanged.
func (f *Font) RenameGlyph(oldName, newName string) error {
	g := f.index[oldName]
	if g == nil {
		return fmt.Errorf("glyph %q not found", oldName)
	}
	if oldName == newName {
		return nil
	}
	if !naming.IsValid(newName) {
		return fmt.Errorf("invalid glyph name %q", newName)
	}
	if f.Has(newName) {
		return &glyphkit.ConflictError{Name: newName}
	}

	delete(f.index, oldName)
	g.name = newName
	f.index[newName] = g
	f.rebuildFolded()
	return nil
}

func (f *Font) rebuildFolded() {
	clear(f.folded)
	for _, g := range f.glyphs {
		key := f.fold.String(g.name)
		if _, seen := f.folded[key]; !seen {
			f.folded[key] = g
		}
	}
}

// Select returns the glyphs with the given names.  Duplicate names are
// ignored.  An empty list of names gives [glyphkit.ErrNoSelection].
func (f *Font) Select(names []string) ([]*Glyph, error) {
	if len(names) == 0 {
		return nil, glyphkit.ErrNoSelection
	}
	seen := make(map[string]bool, len(names))
	var res []*Glyph
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		g := f.index[name]
		if g == nil {
			return nil, fmt.Errorf("glyph %q not found", name)
		}
		res = append(res, g)
	}
	return res, nil
}

// GlyphByUnicode returns the first glyph which is mapped to r.
func (f *Font) GlyphByUnicode(r rune) *Glyph {
	for _, g := range f.glyphs {
		for _, u := range g.Unicodes {
			if u == r {
				return g
			}
		}
	}
	return nil
}
