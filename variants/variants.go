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

// Package variants creates number style variants, like "one.tf" or
// "seven.osf", as component copies of the default figures.
package variants

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
	"seehuhn.de/go/glyphkit/naming"
)

// Figures lists the names of the default figures, in order.
var Figures = []string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

// Standard figure style suffixes.
const (
	Lining          = "lf"
	Tabular         = "tf"
	OldStyle        = "osf"
	TabularOldStyle = "tosf"
	Denominator     = "dnom"
	Numerator       = "numr"
)

// StandardSuffixes lists the figure style suffixes known by name.
var StandardSuffixes = []string{Lining, Tabular, OldStyle, TabularOldStyle, Denominator, Numerator}

// ErrNoSuffixes is returned if no variant was requested.
var ErrNoSuffixes = errors.New("no variants selected")

// Options control [Create].
type Options struct {
	// Suffixes lists the suffixes of the glyphs to create, with or without
	// a leading dot, for example "tf" or ".ss01".
	Suffixes []string

	// If Overwrite is set, existing glyphs are replaced.  Otherwise they
	// are skipped.
	Overwrite bool
}

// Report summarises the result of [Create].
type Report struct {
	Created      []string
	Skipped      []string // already existing glyphs
	MissingBases []string
	Failed       []*glyphkit.ItemError
}

// Create adds a glyph for every combination of a default figure and a
// suffix.  Each new glyph has, in every master, a single component
// referencing the figure and the advance width of the figure.
func Create(f *glyphset.Font, opts *Options) (*Report, error) {
	if f == nil {
		return nil, glyphkit.ErrNoFont
	}
	suffixes, err := normalize(opts.Suffixes)
	if err != nil {
		return nil, err
	}

	log := glyphkit.Logger()
	rep := &Report{}
	for _, baseName := range Figures {
		base := f.Glyph(baseName)
		if base == nil {
			log.Debug("figure not found", zap.String("glyph", baseName))
			rep.MissingBases = append(rep.MissingBases, baseName)
			continue
		}
		for _, suffix := range suffixes {
			name := baseName + "." + suffix
			exists := f.Has(name)
			if exists && !opts.Overwrite {
				rep.Skipped = append(rep.Skipped, name)
				continue
			}
			g, err := newVariant(f, base, name)
			if err == nil {
				if exists {
					err = f.ReplaceGlyph(g)
				} else {
					err = f.AddGlyph(g)
				}
			}
			if err != nil {
				log.Warn("cannot create variant", zap.String("glyph", name), zap.Error(err))
				rep.Failed = append(rep.Failed, &glyphkit.ItemError{Item: name, Err: err})
				continue
			}
			log.Debug("variant created", zap.String("glyph", name))
			rep.Created = append(rep.Created, name)
		}
	}
	return rep, nil
}

// newVariant builds a glyph which consists of a single component
// referencing base in every master.  The font is not modified.
func newVariant(f *glyphset.Font, base *glyphset.Glyph, name string) (*glyphset.Glyph, error) {
	g := glyphset.NewGlyph(name)
	g.Category = base.Category
	g.SubCategory = base.SubCategory
	for _, m := range f.Masters() {
		width := 0.0
		if bl := base.Layer(m.ID); bl != nil {
			width = bl.Width()
		}
		l, err := glyphset.NewLayer(width)
		if err != nil {
			return nil, err
		}
		l.Components = []*glyphset.Component{glyphset.NewComponent(base.Name())}
		if err := g.SetLayer(m.ID, l); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// normalize strips leading dots, removes duplicates and checks that every
// suffix gives a valid glyph name.
func normalize(suffixes []string) ([]string, error) {
	var res []string
	seen := make(map[string]bool)
	for _, s := range suffixes {
		s = strings.TrimLeft(strings.TrimSpace(s), ".")
		if s == "" || seen[s] {
			continue
		}
		if !naming.IsValid("zero." + s) {
			return nil, fmt.Errorf("invalid suffix %q", s)
		}
		seen[s] = true
		res = append(res, s)
	}
	if len(res) == 0 {
		return nil, ErrNoSuffixes
	}
	return res, nil
}
