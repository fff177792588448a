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
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
	"seehuhn.de/go/glyphkit/internal/openstep"
)

func init() {
	Register(UFO, readUFO)
}

// readUFO reads the default layer of a UFO font directory.
func readUFO(path string) (*glyphset.Font, error) {
	info, err := readOptionalPlist(filepath.Join(path, "fontinfo.plist"))
	if err != nil {
		return nil, err
	}
	lib, err := readOptionalPlist(filepath.Join(path, "lib.plist"))
	if err != nil {
		return nil, err
	}

	glyphDir := filepath.Join(path, "glyphs")
	obj, err := readXMLPlistFile(filepath.Join(glyphDir, "contents.plist"))
	if err != nil {
		return nil, err
	}
	contents, ok := obj.(openstep.Dict)
	if !ok {
		return nil, errors.New("contents.plist: not a dictionary")
	}

	f, masterID, err := newFont(info.GetString("familyName"), info.GetString("styleName"))
	if err != nil {
		return nil, err
	}

	for _, name := range glyphOrder(contents, lib) {
		fname := contents.GetString(name)
		g, err := readGlif(filepath.Join(glyphDir, fname), name, masterID)
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

// glyphOrder lists the glyph names in the order given by public.glyphOrder,
// followed by the remaining glyphs in alphabetical order.
func glyphOrder(contents, lib openstep.Dict) []string {
	var res []string
	seen := make(map[string]bool)
	for _, obj := range lib.GetArray("public.glyphOrder") {
		name, ok := obj.(openstep.String)
		if !ok || seen[string(name)] {
			continue
		}
		if _, exists := contents[string(name)]; !exists {
			continue
		}
		seen[string(name)] = true
		res = append(res, string(name))
	}

	var rest []string
	for name := range contents {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	return append(res, rest...)
}

func readOptionalPlist(fname string) (openstep.Dict, error) {
	obj, err := readXMLPlistFile(fname)
	if errors.Is(err, fs.ErrNotExist) {
		return openstep.Dict{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(fname), err)
	}
	dict, ok := obj.(openstep.Dict)
	if !ok {
		return nil, fmt.Errorf("%s: not a dictionary", filepath.Base(fname))
	}
	return dict, nil
}

type glif struct {
	Name    string `xml:"name,attr"`
	Advance struct {
		Width string `xml:"width,attr"`
	} `xml:"advance"`
	Unicodes []struct {
		Hex string `xml:"hex,attr"`
	} `xml:"unicode"`
	Outline struct {
		Contours   []glifContour   `xml:"contour"`
		Components []glifComponent `xml:"component"`
	} `xml:"outline"`
}

type glifContour struct {
	Points []struct {
		X    float64 `xml:"x,attr"`
		Y    float64 `xml:"y,attr"`
		Type string  `xml:"type,attr"`
	} `xml:"point"`
}

type glifComponent struct {
	Base    string `xml:"base,attr"`
	XScale  string `xml:"xScale,attr"`
	XYScale string `xml:"xyScale,attr"`
	YXScale string `xml:"yxScale,attr"`
	YScale  string `xml:"yScale,attr"`
	XOffset string `xml:"xOffset,attr"`
	YOffset string `xml:"yOffset,attr"`
}

func readGlif(fname, name, masterID string) (*glyphset.Glyph, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	gl := &glif{}
	if err := xml.Unmarshal(data, gl); err != nil {
		return nil, err
	}
	if gl.Name != "" && gl.Name != name {
		glyphkit.Logger().Debug("glif name differs from contents.plist",
			zap.String("glyph", name), zap.String("glif", gl.Name))
	}

	g := glyphset.NewGlyph(name)
	for _, u := range gl.Unicodes {
		x, err := strconv.ParseUint(u.Hex, 16, 32)
		if err != nil || x > 0x10FFFF {
			return nil, fmt.Errorf("invalid unicode value %q", u.Hex)
		}
		g.Unicodes = append(g.Unicodes, rune(x))
	}
	classify(g)

	width, err := attrFloat(gl.Advance.Width, 0)
	if err != nil {
		return nil, err
	}
	l, err := glyphset.NewLayer(width)
	if err != nil {
		return nil, err
	}

	for _, c := range gl.Outline.Contours {
		p := &glyphset.Path{Closed: true}
		for i, pt := range c.Points {
			tp := glyphset.NodeType(pt.Type)
			switch tp {
			case "":
				tp = glyphset.OffCurve
			case glyphset.Move:
				if i == 0 {
					p.Closed = false
				}
			case glyphset.Line, glyphset.Curve, glyphset.QCurve, glyphset.OffCurve:
				// pass
			default:
				return nil, fmt.Errorf("unknown point type %q", pt.Type)
			}
			p.Nodes = append(p.Nodes, glyphset.Node{X: pt.X, Y: pt.Y, Type: tp})
		}
		l.Paths = append(l.Paths, p)
	}

	for _, c := range gl.Outline.Components {
		comp := glyphset.NewComponent(c.Base)
		var M matrix.Matrix
		for i, a := range []struct {
			val string
			def float64
		}{
			{c.XScale, 1}, {c.XYScale, 0}, {c.YXScale, 0},
			{c.YScale, 1}, {c.XOffset, 0}, {c.YOffset, 0},
		} {
			M[i], err = attrFloat(a.val, a.def)
			if err != nil {
				return nil, fmt.Errorf("component %q: %w", c.Base, err)
			}
		}
		comp.Transform = M
		l.Components = append(l.Components, comp)
	}

	if err := g.SetLayer(masterID, l); err != nil {
		return nil, err
	}
	return g, nil
}

func attrFloat(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}
