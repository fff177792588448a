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

package glyphset

import (
	"fmt"
	"math"
)

// Color is an RGBA colour with components in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB255 returns the opaque colour with the given 8-bit channel values.
func RGB255(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// Validate checks that all components are in the range [0, 1].
func (c Color) Validate() error {
	for _, x := range []float64{c.R, c.G, c.B, c.A} {
		if !(x >= 0 && x <= 1) {
			return fmt.Errorf("invalid colour %s", c)
		}
	}
	return nil
}

// Matches reports whether the red, green and blue components of c and o
// differ by at most tol.  Alpha is ignored.  The comparison includes the
// boundary, so that tol = 0 tests for equality.
func (c Color) Matches(o Color, tol float64) bool {
	return math.Abs(c.R-o.R) <= tol &&
		math.Abs(c.G-o.G) <= tol &&
		math.Abs(c.B-o.B) <= tol
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%.3g, %.3g, %.3g, %.3g)", c.R, c.G, c.B, c.A)
}
