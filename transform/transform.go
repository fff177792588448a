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

// Package transform provides the affine transformations used to condense
// and slant glyph outlines.
//
// Matrices use the conventions of [matrix.Matrix]: if M = [a b c d e f],
// a point (x, y) is mapped to (a*x+c*y+e, b*x+d*y+f), and M.Mul(B)
// corresponds to first applying M and then B.
package transform

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Condense returns a horizontal scaling to the given percentage of the
// original width.  Vertical coordinates are unchanged.
func Condense(percent float64) matrix.Matrix {
	return matrix.Scale(percent/100, 1)
}

// Slant returns a horizontal shear by the given angle in degrees.
// Positive angles lean the glyph to the right, like an italic.
func Slant(degrees float64) matrix.Matrix {
	skew := math.Tan(degrees * math.Pi / 180)
	return matrix.Matrix{1, 0, skew, 1, 0, 0}
}

// CondenseSlant returns the transformation which first condenses to the
// given percentage and then slants by the given angle.
func CondenseSlant(condensePercent, slantDegrees float64) matrix.Matrix {
	M := Condense(condensePercent)
	if slantDegrees != 0 {
		M = M.Mul(Slant(slantDegrees))
	}
	return M
}

// Rect returns the smallest rectangle which contains the image of r
// under M.
func Rect(M matrix.Matrix, r rect.Rect) rect.Rect {
	x, y := M.Apply(r.LLx, r.LLy)
	res := rect.Rect{LLx: x, LLy: y, URx: x, URy: y}
	res.Add(M.Apply(r.URx, r.LLy))
	res.Add(M.Apply(r.LLx, r.URy))
	res.Add(M.Apply(r.URx, r.URy))
	return res
}
