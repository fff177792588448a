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

// Package colorize sets glyph label colours according to the content of
// the glyph layers.
package colorize

import (
	"strconv"

	"go.uber.org/zap"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
)

// Content classifies the shapes of a glyph over all of its layers.
type Content int

// These are the possible content types.
const (
	Empty Content = iota
	PathsOnly
	ComponentsOnly
	Both
)

func (c Content) String() string {
	switch c {
	case Empty:
		return "empty"
	case PathsOnly:
		return "paths only"
	case ComponentsOnly:
		return "components only"
	case Both:
		return "paths and components"
	default:
		return "Content(" + strconv.Itoa(int(c)) + ")"
	}
}

// ContentOf determines the content type of a glyph.
func ContentOf(g *glyphset.Glyph) Content {
	hasPaths := false
	hasComponents := false
	for _, l := range g.Layers() {
		hasPaths = hasPaths || len(l.Paths) > 0
		hasComponents = hasComponents || len(l.Components) > 0
	}
	switch {
	case hasPaths && hasComponents:
		return Both
	case hasPaths:
		return PathsOnly
	case hasComponents:
		return ComponentsOnly
	default:
		return Empty
	}
}

// Palette maps content types to labels.  Content types which are missing
// from the palette get their label removed.
type Palette map[Content]glyphset.Label

// DefaultPalette marks glyphs with paths only dark green and glyphs with
// both paths and components yellow.
func DefaultPalette() Palette {
	return Palette{
		PathsOnly: glyphset.DarkGreen,
		Both:      glyphset.Yellow,
	}
}

// Report summarises the result of [Apply].
type Report struct {
	Counts map[Content]int
	Failed []*glyphkit.ItemError
}

// Apply sets the label of every glyph according to its content.  If pal is
// nil, [DefaultPalette] is used.
func Apply(glyphs []*glyphset.Glyph, pal Palette) (*Report, error) {
	if len(glyphs) == 0 {
		return nil, glyphkit.ErrNoSelection
	}
	if pal == nil {
		pal = DefaultPalette()
	}
	log := glyphkit.Logger()

	rep := &Report{Counts: make(map[Content]int)}
	for _, g := range glyphs {
		c := ContentOf(g)
		lbl, ok := pal[c]
		if !ok {
			g.ClearLabel()
		} else if err := g.SetLabel(lbl); err != nil {
			log.Warn("cannot set label", zap.String("glyph", g.Name()), zap.Error(err))
			rep.Failed = append(rep.Failed, &glyphkit.ItemError{Item: g.Name(), Err: err})
			continue
		}
		log.Debug("glyph classified",
			zap.String("glyph", g.Name()), zap.Stringer("content", c))
		rep.Counts[c]++
	}
	return rep, nil
}
