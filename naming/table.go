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
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table is a naming authority with a fixed list of names.
type Table map[rune]string

// GlyphName implements the [Authority] interface.
func (t Table) GlyphName(r rune) (string, error) {
	name, ok := t[r]
	if !ok {
		return "", ErrNoName
	}
	return name, nil
}

// ReadTable reads a name table in YAML format.  The keys are code points in
// hexadecimal notation, optionally prefixed by "U+", and the values are
// glyph names:
//
//	"0410": A-cy
//	U+05D0: alef-hb
func ReadTable(r io.Reader) (Table, error) {
	var raw map[string]string
	dec := yaml.NewDecoder(r)
	err := dec.Decode(&raw)
	if err == io.EOF {
		return Table{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("name table: %w", err)
	}

	t := make(Table, len(raw))
	for key, name := range raw {
		hex := strings.TrimPrefix(strings.ToUpper(key), "U+")
		code, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || code > 0x10FFFF {
			return nil, fmt.Errorf("name table: invalid code point %q", key)
		}
		if !IsValid(name) {
			return nil, fmt.Errorf("name table: invalid glyph name %q for U+%04X", name, code)
		}
		t[rune(code)] = name
	}
	return t, nil
}
