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
	"unicode"

	"github.com/google/uuid"

	"seehuhn.de/go/glyphkit/glyphset"
)

// newFont allocates a font with one master, for formats which have no
// notion of masters.
func newFont(familyName, masterName string) (*glyphset.Font, string, error) {
	if masterName == "" {
		masterName = "Regular"
	}
	id := uuid.NewString()
	f, err := glyphset.New(familyName, &glyphset.Master{ID: id, Name: masterName})
	if err != nil {
		return nil, "", err
	}
	return f, id, nil
}

// classify fills in the category, subcategory and script of a glyph from
// its first code point.
func classify(g *glyphset.Glyph) {
	r, ok := g.Unicode()
	if !ok {
		return
	}

	switch {
	case unicode.IsLetter(r):
		g.Category = "Letter"
		switch {
		case unicode.IsUpper(r):
			g.SubCategory = "Uppercase"
		case unicode.IsLower(r):
			g.SubCategory = "Lowercase"
		}
	case unicode.IsNumber(r):
		g.Category = "Number"
		if unicode.Is(unicode.Nd, r) {
			g.SubCategory = "Decimal Digit"
		}
	case unicode.IsMark(r):
		g.Category = "Mark"
		if unicode.Is(unicode.Mn, r) {
			g.SubCategory = "Nonspacing"
		}
	case unicode.IsPunct(r):
		g.Category = "Punctuation"
	case unicode.Is(unicode.Sc, r):
		g.Category = "Symbol"
		g.SubCategory = "Currency"
	case unicode.IsSymbol(r):
		g.Category = "Symbol"
	case unicode.IsSpace(r):
		g.Category = "Separator"
		g.SubCategory = "Space"
	}

	for name, table := range scripts {
		if unicode.Is(table, r) {
			g.Script = name
			break
		}
	}
}

var scripts = map[string]*unicode.RangeTable{
	"arabic":   unicode.Arabic,
	"armenian": unicode.Armenian,
	"cyrillic": unicode.Cyrillic,
	"georgian": unicode.Georgian,
	"greek":    unicode.Greek,
	"hebrew":   unicode.Hebrew,
	"latin":    unicode.Latin,
	"thai":     unicode.Thai,
}
