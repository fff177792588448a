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

// Package missing adds glyphs which exist in a source font but not in the
// target font.
package missing

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
)

var errNotInSource = errors.New("glyph not found in source font")

// CaseConflict is a source glyph whose name exists in the target font with
// different capitalisation.
type CaseConflict struct {
	Name     string
	Existing string
}

func (c CaseConflict) String() string {
	return c.Name + " (exists as " + c.Existing + ")"
}

// Plan lists the glyphs to be added.
type Plan struct {
	Missing       []string // sorted
	CaseConflicts []CaseConflict
}

// Diff compares the glyph names of two fonts.  Names which exist in the
// target are ignored.  Names which exist in the target only under Unicode
// case folding are reported as case conflicts and are not added.
func Diff(target, source *glyphset.Font) (*Plan, error) {
	if target == nil || source == nil {
		return nil, glyphkit.ErrNoFont
	}

	p := &Plan{}
	for _, name := range source.Names() {
		if target.Has(name) {
			continue
		}
		if other := target.LookupFold(name); other != nil {
			p.CaseConflicts = append(p.CaseConflicts,
				CaseConflict{Name: name, Existing: other.Name()})
			continue
		}
		p.Missing = append(p.Missing, name)
	}
	slices.Sort(p.Missing)
	return p, nil
}

// Report summarises the result of [Add].
type Report struct {
	Added   []string
	Skipped []string // glyphs which exist in the target by now
	Failed  []*glyphkit.ItemError
}

// Add creates the missing glyphs of a plan in the target font.  The new
// glyphs get the code points, category, subcategory and script of the
// source glyph, and an empty layer for every master of the target.
func Add(target, source *glyphset.Font, p *Plan) (*Report, error) {
	if target == nil || source == nil {
		return nil, glyphkit.ErrNoFont
	}
	log := glyphkit.Logger()

	rep := &Report{}
	for _, name := range p.Missing {
		if target.Has(name) {
			rep.Skipped = append(rep.Skipped, name)
			continue
		}
		src := source.Glyph(name)
		if src == nil {
			rep.Failed = append(rep.Failed, &glyphkit.ItemError{
				Item: name,
				Err:  errNotInSource,
			})
			continue
		}

		g := glyphset.NewGlyph(name)
		g.Unicodes = slices.Clone(src.Unicodes)
		g.Category = src.Category
		g.SubCategory = src.SubCategory
		g.Script = src.Script
		if err := target.AddGlyph(g); err != nil {
			log.Warn("cannot add glyph", zap.String("glyph", name), zap.Error(err))
			rep.Failed = append(rep.Failed, &glyphkit.ItemError{Item: name, Err: err})
			continue
		}
		log.Debug("glyph added", zap.String("glyph", name))
		rep.Added = append(rep.Added, name)
	}
	return rep, nil
}
