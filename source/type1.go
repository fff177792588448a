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
	"bytes"
	"fmt"
	"os"

	"go.uber.org/zap"

	"seehuhn.de/go/postscript/afm"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/postscript/type1/names"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
)

func init() {
	Register(Type1, readType1)
	Register(AFM, readAFM)
}

// readType1 reads glyph names and advance widths from a Type 1 font
// program.  Widths are converted to 1000 units per em.  Code points are
// inferred from the glyph names.
func readType1(path string) (*glyphset.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	psFont, err := type1.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	info := psFont.FontInfo
	f, masterID, err := newFont(info.FamilyName, info.Weight)
	if err != nil {
		return nil, err
	}
	for _, name := range psFont.GlyphList() {
		width := psFont.GlyphWidthPDF(name)
		addNamedGlyph(f, masterID, name, info.FontName, width)
	}
	return f, nil
}

// readAFM reads glyph names and advance widths from an Adobe Font Metrics
// file.
func readAFM(path string) (*glyphset.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	metrics, err := afm.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	// AFM files carry no separate family name.
	family := metrics.FullName
	if family == "" {
		family = metrics.FontName
	}
	f, masterID, err := newFont(family, "")
	if err != nil {
		return nil, err
	}
	for _, name := range metrics.GlyphList() {
		width := metrics.Glyphs[name].WidthX
		addNamedGlyph(f, masterID, name, metrics.FontName, width)
	}
	return f, nil
}

// addNamedGlyph adds a glyph whose code point is derived from its name
// using the Adobe Glyph List conventions.  Failures are logged.
func addNamedGlyph(f *glyphset.Font, masterID, name, fontName string, width float64) {
	g := glyphset.NewGlyph(name)
	if name != ".notdef" {
		rr := []rune(names.ToUnicode(name, fontName))
		if len(rr) == 1 {
			g.Unicodes = rr
			classify(g)
		}
	}

	err := addWithLayer(f, g, masterID, width)
	if err != nil {
		glyphkit.Logger().Warn("glyph skipped",
			zap.String("glyph", name), zap.Error(err))
	}
}

func addWithLayer(f *glyphset.Font, g *glyphset.Glyph, masterID string, width float64) error {
	l, err := glyphset.NewLayer(width)
	if err != nil {
		return fmt.Errorf("glyph %q: %w", g.Name(), err)
	}
	if err := g.SetLayer(masterID, l); err != nil {
		return err
	}
	return f.AddGlyph(g)
}
