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

// Package rename replaces legacy AFII glyph names in batches.
//
// Renaming happens in two steps.  [Compute] resolves every candidate name
// and checks the proposed names against the existing glyph names, without
// changing anything.  [Apply] then performs the accepted renames on a font.
package rename

import (
	"fmt"

	"go.uber.org/zap"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/afii"
	"seehuhn.de/go/glyphkit/glyphset"
)

// Namespace is the set of glyph names a batch is checked against.
// [*glyphset.Font] implements this interface.
type Namespace interface {
	Has(name string) bool
}

// NameSet is a Namespace given by an explicit list of names.
type NameSet map[string]bool

// NewNameSet returns a NameSet containing the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, name := range names {
		s[name] = true
	}
	return s
}

// Has implements the [Namespace] interface.
func (s NameSet) Has(name string) bool {
	return s[name]
}

// Rename is an accepted name change.
type Rename struct {
	Old  string
	New  string
	Code rune
	Kind afii.Kind
}

// Conflict is a name change which was rejected because the proposed name is
// already taken.
type Conflict struct {
	Old string
	New string

	// ClaimedBy is the candidate which claimed New earlier in the same
	// batch.  It is empty if New exists in the namespace.
	ClaimedBy string
}

func (c Conflict) String() string {
	if c.ClaimedBy != "" {
		return fmt.Sprintf("%s -> %s (already claimed by %s)", c.Old, c.New, c.ClaimedBy)
	}
	return fmt.Sprintf("%s -> %s (name exists)", c.Old, c.New)
}

// Skip is a candidate which could not be resolved.
type Skip struct {
	Name string
	Kind afii.Kind // either afii.NotLegacy or afii.Unknown
}

// Plan lists the outcome for every candidate of a batch.
type Plan struct {
	Renames   []Rename
	Conflicts []Conflict
	Skipped   []Skip
}

// Compute resolves the candidate names and detects naming conflicts.
//
// The namespace is used as it was before the batch: a name which
// becomes free because another glyph of the same batch is renamed is
// still considered taken.  Repeated candidates are only considered once.
func Compute(candidates []string, ns Namespace, res *afii.Resolver) *Plan {
	p := &Plan{}
	seen := make(map[string]bool, len(candidates))
	claimed := make(map[string]string)
	for _, old := range candidates {
		if seen[old] {
			continue
		}
		seen[old] = true

		r := res.Resolve(old)
		if !r.OK() {
			p.Skipped = append(p.Skipped, Skip{Name: old, Kind: r.Kind})
			continue
		}

		if ns != nil && ns.Has(r.Name) {
			p.Conflicts = append(p.Conflicts, Conflict{Old: old, New: r.Name})
			continue
		}
		if by, taken := claimed[r.Name]; taken {
			p.Conflicts = append(p.Conflicts, Conflict{Old: old, New: r.Name, ClaimedBy: by})
			continue
		}
		claimed[r.Name] = old
		p.Renames = append(p.Renames, Rename{
			Old:  old,
			New:  r.Name,
			Code: r.Code,
			Kind: r.Kind,
		})
	}
	return p
}

// Resolvable returns the number of candidates for which a replacement name
// was found.  This equals the number of renames plus the number of
// conflicts.
func (p *Plan) Resolvable() int {
	return len(p.Renames) + len(p.Conflicts)
}

// Preview returns up to n lines describing the accepted renames.
// Canonical names are marked with a star.  If renames were left out, a
// final line says how many.
func (p *Plan) Preview(n int) []string {
	var lines []string
	for i, r := range p.Renames {
		if i >= n {
			lines = append(lines, fmt.Sprintf("... and %d more", len(p.Renames)-n))
			break
		}
		line := r.Old + " -> " + r.New
		if r.Kind == afii.Canonical {
			line += " *"
		}
		lines = append(lines, line)
	}
	return lines
}

// Report summarises the result of [Apply].
type Report struct {
	Renamed []Rename
	Failed  []*glyphkit.ItemError
}

// Apply performs the renames of a plan.  A rename which fails is logged and
// recorded in the report, and the remaining renames are still attempted.
func Apply(f *glyphset.Font, p *Plan) (*Report, error) {
	if f == nil {
		return nil, glyphkit.ErrNoFont
	}
	log := glyphkit.Logger()

	rep := &Report{}
	for _, r := range p.Renames {
		err := f.RenameGlyph(r.Old, r.New)
		if err != nil {
			log.Warn("rename failed",
				zap.String("glyph", r.Old), zap.String("new", r.New), zap.Error(err))
			rep.Failed = append(rep.Failed, &glyphkit.ItemError{Item: r.Old, Err: err})
			continue
		}
		log.Debug("renamed",
			zap.String("glyph", r.Old), zap.String("new", r.New),
			zap.Stringer("kind", r.Kind))
		rep.Renamed = append(rep.Renamed, r)
	}
	return rep, nil
}
