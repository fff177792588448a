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

// Package source reads glyph sets from font files.
//
// Fonts are read, but never written.  The file format is determined by the
// file name extension; directories are read as UFO fonts.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
)

// ReaderFunc reads a font from the file or directory at path.
type ReaderFunc func(path string) (*glyphset.Font, error)

// Format names.
const (
	Glyphs   = "Glyphs"
	UFO      = "UFO"
	TrueType = "TrueType"
	OpenType = "OpenType"
	Type1    = "Type 1"
	AFM      = "AFM"
	FontLab  = "FontLab"
	WOFF     = "WOFF"
)

var extensions = map[string]string{
	".glyphs": Glyphs,
	".glyphx": Glyphs,
	".ufo":    UFO,
	".ttf":    TrueType,
	".otf":    OpenType,
	".pfa":    Type1,
	".pfb":    Type1,
	".t1":     Type1,
	".afm":    AFM,
	".vfb":    FontLab,
	".woff":   WOFF,
	".woff2":  WOFF,
}

// remedies tells the user what to do about formats without a reader.
var remedies = map[string]string{
	FontLab: "export the font from FontLab as UFO and open the .ufo directory",
	WOFF:    "decompress the file to .ttf or .otf first",
}

var readers = map[string]ReaderFunc{}

// Register makes a reader available for the given format.  Register must
// not be called concurrently with [Open].
func Register(format string, r ReaderFunc) {
	readers[format] = r
}

// Format returns the name of the file format used for path.
func Format(path string) (string, error) {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return UFO, nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extensions[ext]
	if !ok {
		return "", &glyphkit.UnsupportedFormatError{Ext: ext}
	}
	return format, nil
}

// Open reads the font at path.
//
// If the extension is not known, a [*glyphkit.UnsupportedFormatError] is
// returned.  If the format is known but cannot be read, the error is a
// [*glyphkit.MissingReaderError].
func Open(path string) (*glyphset.Font, error) {
	format, err := Format(path)
	if err != nil {
		return nil, err
	}
	read := readers[format]
	if read == nil {
		return nil, &glyphkit.MissingReaderError{
			Format: format,
			Remedy: remedies[format],
		}
	}

	f, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	glyphkit.Logger().Debug("font loaded",
		zap.String("file", path),
		zap.String("format", format),
		zap.Int("glyphs", f.NumGlyphs()),
		zap.Int("masters", len(f.Masters())))
	return f, nil
}
