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

// Package naming provides naming authorities, which map Unicode code points
// to human-readable glyph names.
//
// Different authorities follow different conventions.  [AGL] uses the Adobe
// Glyph List, [UnicodeNames] derives names from the Unicode character
// names, and [Table] holds explicit overrides.  [Chain] combines several
// authorities.
package naming

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoName is returned by an authority which knows no name for a code
// point.
var ErrNoName = errors.New("no glyph name known")

// An Authority maps code points to glyph names.
//
// Implementations may fail, and callers must treat a failure as "no name
// available".  Use [Lookup] to also guard against panics.
type Authority interface {
	GlyphName(r rune) (string, error)
}

// Func adapts an ordinary function to the [Authority] interface.
type Func func(r rune) (string, error)

// GlyphName implements the [Authority] interface.
func (f Func) GlyphName(r rune) (string, error) {
	return f(r)
}

// Lookup asks the authority a for the name of r.  A panic inside the
// authority is converted into an error.  A nil authority knows no names.
func Lookup(a Authority, r rune) (name string, err error) {
	if a == nil {
		return "", ErrNoName
	}
	defer func() {
		if p := recover(); p != nil {
			name = ""
			err = fmt.Errorf("naming authority failed for U+%04X: %v", r, p)
		}
	}()
	return a.GlyphName(r)
}

// IsGeneric reports whether name follows the generic hexadecimal naming
// convention ("uniXXXX" or "uXXXX" to "uXXXXXX") instead of being a
// human-readable name.
func IsGeneric(name string) bool {
	base, _, _ := strings.Cut(name, ".")
	switch {
	case strings.HasPrefix(base, "uni"):
		hex := base[3:]
		return len(hex) >= 4 && isUpperHex(hex[:4])
	case strings.HasPrefix(base, "u"):
		hex := base[1:]
		return len(hex) >= 4 && len(hex) <= 6 && isUpperHex(hex)
	default:
		return false
	}
}

func isUpperHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// IsValid reports whether name can be used as a glyph name.
// Glyph names consist of ASCII letters, digits, periods, hyphens and
// underscores, and must not start with a digit or a hyphen.
func IsValid(name string) bool {
	if name == "" {
		return false
	}
	if c := name[0]; c >= '0' && c <= '9' || c == '-' {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

// Chain is an authority which asks each of its members in turn.
// The first valid, non-generic name wins.
type Chain []Authority

// GlyphName implements the [Authority] interface.
func (c Chain) GlyphName(r rune) (string, error) {
	var firstErr error
	for _, a := range c {
		name, err := Lookup(a, r)
		if err != nil {
			if firstErr == nil && !errors.Is(err, ErrNoName) {
				firstErr = err
			}
			continue
		}
		if IsValid(name) && !IsGeneric(name) {
			return name, nil
		}
	}
	if firstErr != nil {
		return "", firstErr
	}
	return "", ErrNoName
}
