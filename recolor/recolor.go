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

// Package recolor replaces the fill colour of glyph shapes.
package recolor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
)

// DefaultTolerance is the maximal difference per colour channel for two
// colours to be considered equal.  A difference of exactly the tolerance
// still matches (see [glyphset.Color.Matches]); a tolerance of 0 selects
// only identical colours.
const DefaultTolerance = 0.002

// ErrNoColor is returned by [PickTarget] if no shape of the layer has a
// fill colour.
var ErrNoColor = errors.New("no coloured shapes in layer")

// PickTarget returns the fill colour of the first coloured path of a layer.
// If no path is coloured, the first coloured component is used.
func PickTarget(l *glyphset.Layer) (glyphset.Color, error) {
	for _, p := range l.Paths {
		if p.FillColor != nil {
			return *p.FillColor, nil
		}
	}
	for _, c := range l.Components {
		if c.FillColor != nil {
			return *c.FillColor, nil
		}
	}
	return glyphset.Color{}, ErrNoColor
}

// ParseRGB parses a colour given as three comma-separated channel values in
// the range 0 to 255, for example "0,0,255".
func ParseRGB(s string) (glyphset.Color, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return glyphset.Color{}, fmt.Errorf("invalid colour %q: need three values", s)
	}
	var v [3]uint8
	for i, field := range fields {
		x, err := strconv.ParseUint(strings.TrimSpace(field), 10, 8)
		if err != nil {
			return glyphset.Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
		}
		v[i] = uint8(x)
	}
	return glyphset.RGB255(v[0], v[1], v[2]), nil
}

// Options control [Apply].
type Options struct {
	Target      glyphset.Color
	Replacement glyphset.Color

	// Tolerance is the maximal difference per channel for a fill colour to
	// match Target.
	Tolerance float64

	// Masters lists the IDs of the masters to change.  If empty, all
	// layers are changed.
	Masters []string
}

// Report summarises the result of [Apply].
type Report struct {
	Shapes int // number of recoloured paths and components
	Glyphs int // number of glyphs with at least one recoloured shape
}

// Apply sets the fill colour of all paths and components which match
// opts.Target to opts.Replacement.
func Apply(glyphs []*glyphset.Glyph, opts *Options) (*Report, error) {
	if len(glyphs) == 0 {
		return nil, glyphkit.ErrNoSelection
	}
	if opts.Tolerance < 0 || math.IsNaN(opts.Tolerance) {
		return nil, fmt.Errorf("invalid tolerance %g", opts.Tolerance)
	}
	if err := opts.Replacement.Validate(); err != nil {
		return nil, err
	}
	var masters map[string]bool
	if len(opts.Masters) > 0 {
		masters = make(map[string]bool, len(opts.Masters))
		for _, id := range opts.Masters {
			masters[id] = true
		}
	}

	match := func(c *glyphset.Color) bool {
		return c != nil && c.Matches(opts.Target, opts.Tolerance)
	}

	rep := &Report{}
	for _, g := range glyphs {
		n := 0
		for _, l := range g.Layers() {
			if masters != nil && !masters[l.MasterID()] {
				continue
			}
			for _, p := range l.Paths {
				if match(p.FillColor) {
					// Replacement was validated above.
					_ = p.SetFillColor(opts.Replacement)
					n++
				}
			}
			for _, c := range l.Components {
				if match(c.FillColor) {
					_ = c.SetFillColor(opts.Replacement)
					n++
				}
			}
		}
		if n > 0 {
			glyphkit.Logger().Debug("recoloured",
				zap.String("glyph", g.Name()), zap.Int("shapes", n))
			rep.Shapes += n
			rep.Glyphs++
		}
	}
	return rep, nil
}
