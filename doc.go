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

// Package glyphkit provides batch transformations for font glyph sets.
//
// The operations in the sub-packages of this module work on the in-memory
// glyph set model of package [seehuhn.de/go/glyphkit/glyphset].  Each
// operation is a synchronous function which takes a fully specified options
// struct and returns a report.  Operations never overwrite an existing glyph
// unless the caller explicitly asked for this.
//
// This package contains the errors shared between the operations and the
// package-wide logger.
package glyphkit
