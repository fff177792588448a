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

package source

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
)

func init() {
	Register(TrueType, readSFNT)
	Register(OpenType, readSFNT)
}

// readSFNT reads glyph names, code points and advance widths from a
// TrueType or OpenType font.  Outlines are not read.
func readSFNT(path string) (*glyphset.Font, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	info, err := sfnt.Read(fd)
	if err != nil {
		return nil, err
	}
	return fromSFNT(info)
}

func fromSFNT(info *sfnt.Font) (*glyphset.Font, error) {
	f, masterID, err := newFont(info.FamilyName, "")
	if err != nil {
		return nil, err
	}

	// The first code point mapped to a glyph is used for this glyph.
	toUnicode := make(map[glyph.ID]rune)
	if cmap, err := info.CMapTable.GetBest(); err == nil && cmap != nil {
		low, high := cmap.CodeRange()
		for r := low; r <= high; r++ {
			gid := cmap.Lookup(r)
			if gid == 0 {
				continue
			}
			if _, seen := toUnicode[gid]; !seen {
				toUnicode[gid] = r
			}
		}
	} else {
		glyphkit.Logger().Debug("no usable cmap", zap.Error(err))
	}

	n := info.NumGlyphs()
	for i := 0; i < n; i++ {
		gid := glyph.ID(i)
		name := info.GlyphName(gid)
		if name == "" {
			if r, ok := toUnicode[gid]; ok {
				name = fmt.Sprintf("uni%04X", r)
			} else {
				name = fmt.Sprintf("glyph%05d", i)
			}
		}
		g := glyphset.NewGlyph(name)
		if r, ok := toUnicode[gid]; ok {
			g.Unicodes = []rune{r}
			classify(g)
		}
		l, err := glyphset.NewLayer(float64(info.GlyphWidth(gid)))
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", name, err)
		}
		if err := g.SetLayer(masterID, l); err != nil {
			return nil, err
		}
		if err := f.AddGlyph(g); err != nil {
			glyphkit.Logger().Warn("glyph skipped",
				zap.Int("gid", i), zap.Error(err))
		}
	}
	return f, nil
}
