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
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
	"seehuhn.de/go/glyphkit/internal/openstep"
)

func init() {
	Register(Glyphs, readGlyphs)
}

// glyphsReader holds the state while reading a .glyphs file.
type glyphsReader struct {
	version int // 2 or 3
	font    *glyphset.Font
}

// readGlyphs reads a font in the format of the Glyphs editor.  Versions 2
// and 3 of the file format are supported.  Only master layers are read.
func readGlyphs(path string) (*glyphset.Font, error) {
	obj, err := openstep.ReadFile(path)
	if err != nil {
		return nil, err
	}
	root, ok := obj.(openstep.Dict)
	if !ok {
		return nil, errors.New("top-level object is not a dictionary")
	}
	return fromGlyphs(root)
}

func fromGlyphs(root openstep.Dict) (*glyphset.Font, error) {
	r := &glyphsReader{version: 2}
	if v, ok := root.GetInt(".formatVersion"); ok && v >= 3 {
		r.version = 3
	}

	f, err := glyphset.New(root.GetString("familyName"))
	if err != nil {
		return nil, err
	}
	r.font = f

	for _, obj := range root.GetArray("fontMaster") {
		md, ok := obj.(openstep.Dict)
		if !ok {
			continue
		}
		m := &glyphset.Master{ID: md.GetString("id"), Name: r.masterName(md)}
		if err := f.AddMaster(m); err != nil {
			return nil, err
		}
	}
	if len(f.Masters()) == 0 {
		return nil, errors.New("no font masters")
	}

	for _, obj := range root.GetArray("glyphs") {
		gd, ok := obj.(openstep.Dict)
		if !ok {
			continue
		}
		name := gd.GetString("glyphname")
		g, err := r.readGlyph(name, gd)
		if err == nil {
			err = f.AddGlyph(g)
		}
		if err != nil {
			glyphkit.Logger().Warn("glyph skipped",
				zap.String("glyph", name), zap.Error(err))
		}
	}
	return f, nil
}

func (r *glyphsReader) masterName(md openstep.Dict) string {
	if name := md.GetString("name"); name != "" {
		return name
	}
	var parts []string
	for _, key := range []string{"weight", "width", "custom"} {
		if s := md.GetString(key); s != "" && s != "Regular" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "Regular"
	}
	return strings.Join(parts, " ")
}

func (r *glyphsReader) readGlyph(name string, gd openstep.Dict) (*glyphset.Glyph, error) {
	g := glyphset.NewGlyph(name)
	g.Category = gd.GetString("category")
	g.SubCategory = gd.GetString("subCategory")
	g.Script = gd.GetString("script")

	uu, err := r.unicodes(gd["unicode"])
	if err != nil {
		return nil, err
	}
	g.Unicodes = uu

	if idx, ok := gd.GetInt("color"); ok {
		if err := g.SetLabel(glyphset.Label(idx)); err != nil {
			glyphkit.Logger().Debug("ignoring glyph colour",
				zap.String("glyph", name), zap.Int("color", idx))
		}
	}

	for _, obj := range gd.GetArray("layers") {
		ld, ok := obj.(openstep.Dict)
		if !ok {
			continue
		}
		id := ld.GetString("layerId")
		if assoc := ld.GetString("associatedMasterId"); assoc != "" && assoc != id {
			continue
		}
		if r.font.Master(id) == nil {
			continue
		}
		l, err := r.readLayer(ld)
		if err != nil {
			return nil, fmt.Errorf("layer %s: %w", id, err)
		}
		if err := g.SetLayer(id, l); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// unicodes decodes the code points of a glyph.  Version 2 files use
// hexadecimal strings, possibly comma separated.  Version 3 files use
// decimal numbers, either single or as a list.
func (r *glyphsReader) unicodes(obj openstep.Object) ([]rune, error) {
	var fields []string
	switch obj := obj.(type) {
	case nil:
		return nil, nil
	case openstep.String:
		fields = strings.Split(string(obj), ",")
	case openstep.Array:
		for _, elem := range obj {
			s, ok := elem.(openstep.String)
			if !ok {
				return nil, errors.New("malformed unicode list")
			}
			fields = append(fields, string(s))
		}
	default:
		return nil, errors.New("malformed unicode value")
	}

	base := 16
	if r.version >= 3 {
		base = 10
	}
	var res []rune
	for _, field := range fields {
		x, err := strconv.ParseUint(strings.TrimSpace(field), base, 32)
		if err != nil || x > 0x10FFFF {
			return nil, fmt.Errorf("invalid unicode value %q", field)
		}
		res = append(res, rune(x))
	}
	return res, nil
}

func (r *glyphsReader) readLayer(ld openstep.Dict) (*glyphset.Layer, error) {
	width, _ := ld.GetFloat("width")
	l, err := glyphset.NewLayer(width)
	if err != nil {
		return nil, err
	}

	if r.version < 3 {
		for _, obj := range ld.GetArray("paths") {
			pd, ok := obj.(openstep.Dict)
			if !ok {
				continue
			}
			p, err := readGlyphs2Path(pd)
			if err != nil {
				return nil, err
			}
			l.Paths = append(l.Paths, p)
		}
		for _, obj := range ld.GetArray("components") {
			cd, ok := obj.(openstep.Dict)
			if !ok {
				continue
			}
			c := glyphset.NewComponent(cd.GetString("name"))
			if s := cd.GetString("transform"); s != "" {
				M, err := parseTransform(s)
				if err != nil {
					return nil, err
				}
				c.Transform = M
			}
			l.Components = append(l.Components, c)
		}
		return l, nil
	}

	for _, obj := range ld.GetArray("shapes") {
		sd, ok := obj.(openstep.Dict)
		if !ok {
			continue
		}
		fill, err := fillColor(sd.GetDict("attr"))
		if err != nil {
			return nil, err
		}
		if ref := sd.GetString("ref"); ref != "" {
			c := glyphset.NewComponent(ref)
			c.Transform = glyphs3Transform(sd)
			c.FillColor = fill
			l.Components = append(l.Components, c)
			continue
		}
		p, err := readGlyphs3Path(sd)
		if err != nil {
			return nil, err
		}
		p.FillColor = fill
		l.Paths = append(l.Paths, p)
	}
	return l, nil
}

var glyphs2NodeTypes = map[string]glyphset.NodeType{
	"LINE":     glyphset.Line,
	"CURVE":    glyphset.Curve,
	"QCURVE":   glyphset.QCurve,
	"OFFCURVE": glyphset.OffCurve,
}

// readGlyphs2Path reads a path with nodes of the form "x y TYPE [SMOOTH]".
func readGlyphs2Path(pd openstep.Dict) (*glyphset.Path, error) {
	closed, _ := pd.GetInt("closed")
	p := &glyphset.Path{Closed: closed != 0}
	for _, obj := range pd.GetArray("nodes") {
		s, _ := obj.(openstep.String)
		fields := strings.Fields(string(s))
		if len(fields) < 3 {
			return nil, fmt.Errorf("malformed node %q", s)
		}
		x, err1 := strconv.ParseFloat(fields[0], 64)
		y, err2 := strconv.ParseFloat(fields[1], 64)
		tp, ok := glyphs2NodeTypes[fields[2]]
		if err1 != nil || err2 != nil || !ok {
			return nil, fmt.Errorf("malformed node %q", s)
		}
		p.Nodes = append(p.Nodes, glyphset.Node{X: x, Y: y, Type: tp})
	}
	return p, nil
}

var glyphs3NodeTypes = map[string]glyphset.NodeType{
	"l": glyphset.Line,
	"c": glyphset.Curve,
	"q": glyphset.QCurve,
	"o": glyphset.OffCurve,
}

// readGlyphs3Path reads a path with nodes of the form (x, y, type).
func readGlyphs3Path(pd openstep.Dict) (*glyphset.Path, error) {
	closed, _ := pd.GetInt("closed")
	p := &glyphset.Path{Closed: closed != 0}
	for _, obj := range pd.GetArray("nodes") {
		node, _ := obj.(openstep.Array)
		if len(node) < 3 {
			return nil, errors.New("malformed node")
		}
		x, ok1 := openstep.Float(node[0])
		y, ok2 := openstep.Float(node[1])
		s, _ := node[2].(openstep.String)
		tp, ok3 := glyphs3NodeTypes[strings.TrimSuffix(string(s), "s")]
		if !ok1 || !ok2 || !ok3 {
			return nil, fmt.Errorf("malformed node of type %q", s)
		}
		p.Nodes = append(p.Nodes, glyphset.Node{X: x, Y: y, Type: tp})
	}
	return p, nil
}

// parseTransform parses a transformation of the form "{a, b, c, d, e, f}".
func parseTransform(s string) (matrix.Matrix, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	fields := strings.Split(s, ",")
	if len(fields) != 6 {
		return matrix.Matrix{}, fmt.Errorf("malformed transform %q", s)
	}
	var M matrix.Matrix
	for i, field := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return matrix.Matrix{}, fmt.Errorf("malformed transform %q", s)
		}
		M[i] = x
	}
	return M, nil
}

// glyphs3Transform combines the scale, angle and pos entries of a
// component into one matrix.
func glyphs3Transform(cd openstep.Dict) matrix.Matrix {
	pair := func(key string, def float64) (float64, float64) {
		a := cd.GetArray(key)
		if len(a) != 2 {
			return def, def
		}
		x, ok1 := openstep.Float(a[0])
		y, ok2 := openstep.Float(a[1])
		if !ok1 || !ok2 {
			return def, def
		}
		return x, y
	}

	sx, sy := pair("scale", 1)
	M := matrix.Scale(sx, sy)
	if angle, ok := cd.GetFloat("angle"); ok && angle != 0 {
		sin, cos := math.Sincos(angle * math.Pi / 180)
		M = M.Mul(matrix.Matrix{cos, sin, -sin, cos, 0, 0})
	}
	dx, dy := pair("pos", 0)
	return M.Mul(matrix.Translate(dx, dy))
}

// fillColor reads the fillColor shape attribute, given as 0-255 channel
// values (gray, gray+alpha, RGB or RGBA).
func fillColor(attr openstep.Dict) (*glyphset.Color, error) {
	a := attr.GetArray("fillColor")
	if a == nil {
		return nil, nil
	}
	v := make([]float64, len(a))
	for i, obj := range a {
		x, ok := openstep.Float(obj)
		if !ok {
			return nil, errors.New("malformed fill colour")
		}
		v[i] = x / 255
	}

	var c glyphset.Color
	switch len(v) {
	case 1:
		c = glyphset.Color{R: v[0], G: v[0], B: v[0], A: 1}
	case 2:
		c = glyphset.Color{R: v[0], G: v[0], B: v[0], A: v[1]}
	case 3:
		c = glyphset.Color{R: v[0], G: v[1], B: v[2], A: 1}
	case 4:
		c = glyphset.Color{R: v[0], G: v[1], B: v[2], A: v[3]}
	default:
		return nil, errors.New("malformed fill colour")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
