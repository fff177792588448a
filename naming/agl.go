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

package naming

import (
	"seehuhn.de/go/postscript/type1/names"
)

// AGL is the naming authority defined by the Adobe Glyph List.
//
// For code points without an entry in the list, the AGL prescribes generic
// names like "uni0410".  Such names are returned unchanged; callers which
// only want human-readable names should check them with [IsGeneric].
type AGL struct{}

// GlyphName implements the [Authority] interface.
func (AGL) GlyphName(r rune) (string, error) {
	if r < 0 || r > 0x10FFFF || r >= 0xD800 && r < 0xE000 {
		return "", ErrNoName
	}
	name := names.FromUnicode(string(r))
	if name == "" {
		return "", ErrNoName
	}
	return name, nil
}
