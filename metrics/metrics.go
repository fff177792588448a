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

// Package metrics copies advance widths and sidebearings, either from
// another font or between the masters of one font.
package metrics

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
)

var (
	// ErrNoMatches is returned by [CopyWidths] if none of the selected glyphs
	// has a counterpart in the source font.
	ErrNoMatches = errors.New("no matching glyphs in source font")

	// ErrNothingToCopy is returned by [CopySidebearings] if none of the
	// Left, Right and Width options is set.
	ErrNothingToCopy = errors.New("nothing to copy")
)

// WidthReport summarises the result of [CopyWidths].
type WidthReport struct {
	Copied    []string
	Unmatched []string
	Failed    []*glyphkit.ItemError
}

// CopyWidths sets the advance widths of the given glyphs to the widths in
// the first master of the source font.  Glyphs are matched by name first,
// and by their first code point otherwise.  The width is set on all masters
// of the target glyph.
func CopyWidths(glyphs []*glyphset.Glyph, source *glyphset.Font) (*WidthReport, error) {
	if source == nil {
		return nil, glyphkit.ErrNoFont
	}
	if len(glyphs) == 0 {
		return nil, glyphkit.ErrNoSelection
	}
	masters := source.Masters()
	if len(masters) == 0 {
		return nil, errors.New("source font has no masters")
	}
	srcMaster := masters[0].ID
	log := glyphkit.Logger()

	type match struct {
		glyph *glyphset.Glyph
		width float64
	}
	var matches []match
	rep := &WidthReport{}
	for _, g := range glyphs {
		src := source.Glyph(g.Name())
		if src == nil {
			if r, ok := g.Unicode(); ok {
				src = source.GlyphByUnicode(r)
			}
		}
		var l *glyphset.Layer
		if src != nil {
			l = src.Layer(srcMaster)
		}
		if l == nil {
			rep.Unmatched = append(rep.Unmatched, g.Name())
			continue
		}
		matches = append(matches, match{glyph: g, width: l.Width()})
	}
	if len(matches) == 0 {
		return rep, ErrNoMatches
	}

	for _, m := range matches {
		var err error
		for _, l := range m.glyph.Layers() {
			err = errors.Join(err, l.SetWidth(m.width))
		}
		if err != nil {
			log.Warn("cannot set width", zap.String("glyph", m.glyph.Name()), zap.Error(err))
			rep.Failed = append(rep.Failed, &glyphkit.ItemError{Item: m.glyph.Name(), Err: err})
			continue
		}
		log.Debug("width copied",
			zap.String("glyph", m.glyph.Name()), zap.Float64("width", m.width))
		rep.Copied = append(rep.Copied, m.glyph.Name())
	}
	return rep, nil
}

// SidebearingOptions control [CopySidebearings].
type SidebearingOptions struct {
	// Source is the ID of the master to copy from.
	Source string

	// Targets lists the IDs of the masters to copy to.  If empty, all
	// masters except Source are used.
	Targets []string

	// Left and Right select which sidebearings to copy.
	Left, Right bool

	// If Width is set, the advance width is copied instead of the
	// sidebearings.
	Width bool
}

// SidebearingReport summarises the result of [CopySidebearings].
type SidebearingReport struct {
	Layers  int // number of updated layers
	Skipped int // layers without outlines
	Failed  []*glyphkit.ItemError
}

// CopySidebearings copies sidebearings or advance widths from one master to
// other masters of the same font.
func CopySidebearings(f *glyphset.Font, glyphs []*glyphset.Glyph, opts *SidebearingOptions) (*SidebearingReport, error) {
	if f == nil {
		return nil, glyphkit.ErrNoFont
	}
	if len(f.Masters()) < 2 {
		return nil, glyphkit.ErrSingleMaster
	}
	if len(glyphs) == 0 {
		return nil, glyphkit.ErrNoSelection
	}
	if !opts.Left && !opts.Right && !opts.Width {
		return nil, ErrNothingToCopy
	}
	if f.Master(opts.Source) == nil {
		return nil, fmt.Errorf("unknown source master %q", opts.Source)
	}

	targets := opts.Targets
	if len(targets) == 0 {
		for _, m := range f.Masters() {
			if m.ID != opts.Source {
				targets = append(targets, m.ID)
			}
		}
	}
	for _, id := range targets {
		if id == opts.Source {
			return nil, fmt.Errorf("master %q is both source and target", id)
		}
		if f.Master(id) == nil {
			return nil, fmt.Errorf("unknown target master %q", id)
		}
	}

	log := glyphkit.Logger()
	rep := &SidebearingReport{}
	for _, g := range glyphs {
		src := g.Layer(opts.Source)
		if src == nil {
			continue
		}
		for _, id := range targets {
			dst := g.Layer(id)
			if dst == nil {
				continue
			}
			err := copyLayerMetrics(src, dst, opts)
			if errors.Is(err, glyphset.ErrEmptyLayer) {
				rep.Skipped++
				continue
			} else if err != nil {
				item := g.Name() + "/" + id
				log.Warn("cannot copy sidebearings", zap.String("layer", item), zap.Error(err))
				rep.Failed = append(rep.Failed, &glyphkit.ItemError{Item: item, Err: err})
				continue
			}
			rep.Layers++
		}
	}
	return rep, nil
}

func copyLayerMetrics(src, dst *glyphset.Layer, opts *SidebearingOptions) error {
	if opts.Width {
		return dst.SetWidth(src.Width())
	}

	lsb, ok1 := src.LSB()
	rsb, ok2 := src.RSB()
	if !ok1 || !ok2 || dst.IsEmpty() {
		return glyphset.ErrEmptyLayer
	}
	if opts.Left {
		if err := dst.SetLSB(lsb); err != nil {
			return err
		}
	}
	if opts.Right {
		if err := dst.SetRSB(rsb); err != nil {
			return err
		}
	}
	return nil
}
