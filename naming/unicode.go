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
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// UnicodeNames derives glyph names from the Unicode character names, using
// the conventions of common font editors: "CYRILLIC CAPITAL LETTER A"
// becomes "A-cy", "GREEK SMALL LETTER ALPHA" becomes "alpha", and "HEBREW
// LETTER ALEF" becomes "alef-hb".
type UnicodeNames struct{}

// scriptSuffix lists the scripts whose letters get a script suffix.
// Scripts not in this list are stripped from the name without a suffix.
var scriptSuffix = []struct {
	prefix string
	suffix string
}{
	{"ARABIC ", "-ar"},
	{"ARMENIAN ", "-armn"},
	{"CYRILLIC ", "-cy"},
	{"GEORGIAN ", "-geor"},
	{"GREEK ", ""},
	{"HEBREW ", "-hb"},
	{"LATIN ", ""},
	{"THAI ", "-thai"},
}

// GlyphName implements the [Authority] interface.
func (UnicodeNames) GlyphName(r rune) (string, error) {
	uName := runenames.Name(r)
	if uName == "" || strings.HasPrefix(uName, "<") {
		return "", ErrNoName
	}

	suffix := ""
	for _, s := range scriptSuffix {
		if strings.HasPrefix(uName, s.prefix) {
			uName = uName[len(s.prefix):]
			suffix = s.suffix
			break
		}
	}

	capital := false
	switch {
	case strings.HasPrefix(uName, "CAPITAL LETTER "):
		capital = true
		uName = uName[len("CAPITAL LETTER "):]
	case strings.HasPrefix(uName, "SMALL LETTER "):
		uName = uName[len("SMALL LETTER "):]
	case strings.HasPrefix(uName, "LETTER "):
		uName = uName[len("LETTER "):]
	}

	words := strings.Fields(strings.ReplaceAll(uName, "-", " "))
	if len(words) > 1 {
		switch words[len(words)-1] {
		case "SIGN", "MARK":
			words = words[:len(words)-1]
		}
	}
	if n := len(words); n > 1 && len(words[n-1]) == 1 {
		// "SHORT I" -> "Ishort"
		words = append(words[n-1:], words[:n-1]...)
	}

	var b strings.Builder
	for _, w := range words {
		b.WriteString(strings.ToLower(w))
	}
	name := b.String()
	if capital && name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	name += suffix

	if !IsValid(name) {
		return "", ErrNoName
	}
	return name, nil
}
