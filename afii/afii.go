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

// Package afii resolves legacy AFII glyph names.
//
// The AFII scheme assigns names like "afii10017" to glyphs.  Modern fonts
// use human-readable names instead, or generic names derived from the
// Unicode code point.  The mapping from AFII names to code points is a
// fixed table; AFII names which are not in the table are never guessed.
package afii

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/naming"
)

// Prefix is the common prefix of all AFII glyph names.
const Prefix = "afii"

// FallbackPrefix is prepended to the hexadecimal code point to form a
// fallback name.
const FallbackPrefix = "uni"

// Lookup returns the code point for an AFII glyph name.
func Lookup(name string) (rune, bool) {
	r, ok := table[name]
	return r, ok
}

// Names returns all AFII names known to this package, in sorted order.
func Names() []string {
	res := make([]string, 0, len(table))
	for name := range table {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// FallbackName returns the generic name for a code point, consisting of
// [FallbackPrefix] and at least four uppercase hexadecimal digits.
func FallbackName(r rune) string {
	return fmt.Sprintf("%s%04X", FallbackPrefix, r)
}

// ParseFallback is the inverse of [FallbackName].
func ParseFallback(name string) (rune, bool) {
	hex, ok := strings.CutPrefix(name, FallbackPrefix)
	if !ok || len(hex) < 4 || len(hex) > 6 {
		return 0, false
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'F') {
			return 0, false
		}
	}
	if len(hex) > 4 && hex[0] == '0' {
		// not the canonical rendering
		return 0, false
	}
	x, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || x > 0x10FFFF {
		return 0, false
	}
	return rune(x), true
}

// Kind describes the outcome of resolving a glyph name.
type Kind int

// These are the possible outcomes of [Resolver.Resolve].
const (
	NotLegacy Kind = iota // the name does not start with [Prefix]
	Unknown               // the name is not in the AFII table
	Canonical             // the naming authority supplied a name
	Fallback              // a generic "uniXXXX" name was generated
)

func (k Kind) String() string {
	switch k {
	case NotLegacy:
		return "not legacy"
	case Unknown:
		return "unknown"
	case Canonical:
		return "canonical"
	case Fallback:
		return "fallback"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Resolution is the result of resolving an AFII glyph name.
// Name and Code are only set if OK() returns true.
type Resolution struct {
	Name string
	Code rune
	Kind Kind
}

// OK reports whether a replacement name was found.
func (r Resolution) OK() bool {
	return r.Kind == Canonical || r.Kind == Fallback
}

// Resolver maps AFII glyph names to replacement names.
// The zero value is ready to use and always produces fallback names.
type Resolver struct {
	// Authority, if set, is asked for human-readable names.
	Authority naming.Authority
}

// Resolve determines the replacement name for an AFII glyph name.
//
// Failures of the naming authority are logged and treated as if no
// human-readable name were available.
func (res *Resolver) Resolve(name string) Resolution {
	if !strings.HasPrefix(name, Prefix) {
		return Resolution{Kind: NotLegacy}
	}
	r, ok := table[name]
	if !ok {
		return Resolution{Kind: Unknown}
	}

	if res != nil && res.Authority != nil {
		nice, err := naming.Lookup(res.Authority, r)
		switch {
		case err != nil:
			glyphkit.Logger().Debug("no canonical name",
				zap.String("glyph", name), zap.Error(err))
		case isCanonical(nice):
			return Resolution{Name: nice, Code: r, Kind: Canonical}
		}
	}

	return Resolution{Name: FallbackName(r), Code: r, Kind: Fallback}
}

func isCanonical(name string) bool {
	return naming.IsValid(name) &&
		!naming.IsGeneric(name) &&
		!strings.HasPrefix(name, Prefix)
}
