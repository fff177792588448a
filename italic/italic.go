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

// Package italic condenses and slants glyph layers.
//
// The outlines are first scaled horizontally and then sheared.  Afterwards
// the original sidebearings, optionally scaled, are restored.
package italic

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
	"seehuhn.de/go/glyphkit/transform"
)

// Settings describe the transformation of one master.
type Settings struct {
	Condense    float64 `yaml:"condense"`    // horizontal scale in percent, > 0
	Slant       float64 `yaml:"slant"`       // slant angle in degrees
	Sidebearing float64 `yaml:"sidebearing"` // sidebearing scale in percent, >= 0
}

// DefaultSettings returns the settings used when nothing else is
// specified.
func DefaultSettings() Settings {
	return Settings{Condense: 75, Slant: 0, Sidebearing: 100}
}

// Validate checks that the settings can be applied.
func (s Settings) Validate() error {
	if !(s.Condense > 0) || math.IsInf(s.Condense, 0) {
		return fmt.Errorf("condense percentage must be greater than 0, got %g", s.Condense)
	}
	if math.IsNaN(s.Slant) || math.Abs(s.Slant) >= 90 {
		return fmt.Errorf("invalid slant angle %g", s.Slant)
	}
	if !(s.Sidebearing >= 0) || math.IsInf(s.Sidebearing, 0) {
		return fmt.Errorf("sidebearing percentage cannot be negative, got %g", s.Sidebearing)
	}
	return nil
}

// Options control [Apply].
type Options struct {
	// Settings is used for the masters listed in Masters, or for all
	// masters if Masters is empty.
	Settings Settings
	Masters  []string

	// PerMaster, if non-nil, maps master IDs to individual settings.  In
	// this case Settings and Masters are ignored, and layers of masters
	// which are not in the map are left unchanged.
	PerMaster map[string]Settings
}

func (opts *Options) settingsFor(masterID string) (Settings, bool) {
	if opts.PerMaster != nil {
		s, ok := opts.PerMaster[masterID]
		return s, ok
	}
	if len(opts.Masters) == 0 {
		return opts.Settings, true
	}
	for _, id := range opts.Masters {
		if id == masterID {
			return opts.Settings, true
		}
	}
	return Settings{}, false
}

// Report summarises the result of [Apply].
type Report struct {
	Layers int // number of transformed layers

	// Failed lists the layers which could not be transformed.  These
	// layers are left unchanged.
	Failed []*glyphkit.ItemError
}

// Apply condenses and slants the layers of the given glyphs.  A layer which
// cannot be transformed is reported, and the remaining layers are still
// processed.
func Apply(glyphs []*glyphset.Glyph, opts *Options) (*Report, error) {
	if len(glyphs) == 0 {
		return nil, glyphkit.ErrNoSelection
	}
	if opts.PerMaster != nil {
		for id, s := range opts.PerMaster {
			if err := s.Validate(); err != nil {
				return nil, fmt.Errorf("master %q: %w", id, err)
			}
		}
	} else if err := opts.Settings.Validate(); err != nil {
		return nil, err
	}

	log := glyphkit.Logger()
	rep := &Report{}
	for _, g := range glyphs {
		for _, l := range g.Layers() {
			s, ok := opts.settingsFor(l.MasterID())
			if !ok {
				continue
			}
			if err := transformLayer(l, s); err != nil {
				item := g.Name() + "/" + l.MasterID()
				log.Warn("cannot transform layer", zap.String("layer", item), zap.Error(err))
				rep.Failed = append(rep.Failed, &glyphkit.ItemError{Item: item, Err: err})
				continue
			}
			rep.Layers++
		}
	}
	return rep, nil
}

func transformLayer(l *glyphset.Layer, s Settings) error {
	lsb, ok1 := l.LSB()
	rsb, ok2 := l.RSB()

	M := transform.CondenseSlant(s.Condense, s.Slant)
	l.Transform(M)
	if !ok1 || !ok2 {
		return nil
	}

	// M is invertible, since Validate requires Condense > 0.
	k := s.Sidebearing / 100
	bbox, _ := l.Bounds()
	dx := lsb*k - bbox.LLx
	if err := l.SetWidth(bbox.URx + dx + rsb*k); err != nil {
		l.Transform(M.Inv())
		return err
	}
	l.Transform(matrix.Translate(dx, 0))
	return nil
}
