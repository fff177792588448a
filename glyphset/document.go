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
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/matrix"
)

// The document types describe the YAML representation of a font.

type document struct {
	FamilyName string      `yaml:"familyName"`
	Masters    []docMaster `yaml:"masters"`
	Glyphs     []docGlyph  `yaml:"glyphs,omitempty"`
}

type docMaster struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name,omitempty"`
}

type docGlyph struct {
	Name        string     `yaml:"name"`
	Unicodes    []string   `yaml:"unicodes,omitempty,flow"`
	Category    string     `yaml:"category,omitempty"`
	SubCategory string     `yaml:"subCategory,omitempty"`
	Script      string     `yaml:"script,omitempty"`
	Label       *int       `yaml:"label,omitempty"`
	Layers      []docLayer `yaml:"layers,omitempty"`
}

type docLayer struct {
	Master     string         `yaml:"master"`
	Width      float64        `yaml:"width"`
	Paths      []docPath      `yaml:"paths,omitempty"`
	Components []docComponent `yaml:"components,omitempty"`
}

type docPath struct {
	Closed    bool      `yaml:"closed"`
	Nodes     []string  `yaml:"nodes"`
	FillColor []float64 `yaml:"fillColor,omitempty,flow"`
}

type docComponent struct {
	Base      string    `yaml:"base"`
	Transform []float64 `yaml:"transform,omitempty,flow"`
	FillColor []float64 `yaml:"fillColor,omitempty,flow"`
}

// Load reads a font from a YAML document on disk.
func Load(fname string) (*Font, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return f, nil
}

// Save writes a font as a YAML document to disk.
func Save(fname string, f *Font) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = Write(fd, f)
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	return err
}

// Read decodes a font from a YAML document.  Unknown fields are rejected.
func Read(r io.Reader) (*Font, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	doc := &document{}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding glyph set: %w", err)
	}

	f, err := New(doc.FamilyName)
	if err != nil {
		return nil, err
	}
	for _, m := range doc.Masters {
		err := f.AddMaster(&Master{ID: m.ID, Name: m.Name})
		if err != nil {
			return nil, err
		}
	}

	for _, dg := range doc.Glyphs {
		g, err := decodeGlyph(f, &dg)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", dg.Name, err)
		}
		if err := f.AddGlyph(g); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func decodeGlyph(f *Font, dg *docGlyph) (*Glyph, error) {
	g := NewGlyph(dg.Name)
	g.Category = dg.Category
	g.SubCategory = dg.SubCategory
	g.Script = dg.Script
	for _, s := range dg.Unicodes {
		x, err := strconv.ParseUint(strings.TrimPrefix(s, "U+"), 16, 32)
		if err != nil || x > 0x10FFFF {
			return nil, fmt.Errorf("invalid code point %q", s)
		}
		g.Unicodes = append(g.Unicodes, rune(x))
	}
	if dg.Label != nil {
		if err := g.SetLabel(Label(*dg.Label)); err != nil {
			return nil, err
		}
	}

	for _, dl := range dg.Layers {
		if f.Master(dl.Master) == nil {
			return nil, fmt.Errorf("unknown master %q", dl.Master)
		}
		if g.layers[dl.Master] != nil {
			return nil, fmt.Errorf("duplicate layer for master %q", dl.Master)
		}
		l, err := decodeLayer(&dl)
		if err != nil {
			return nil, fmt.Errorf("master %q: %w", dl.Master, err)
		}
		g.setLayer(dl.Master, l)
	}
	return g, nil
}

func decodeLayer(dl *docLayer) (*Layer, error) {
	l, err := NewLayer(dl.Width)
	if err != nil {
		return nil, err
	}
	for _, dp := range dl.Paths {
		p := &Path{Closed: dp.Closed}
		for _, s := range dp.Nodes {
			n, err := parseNode(s)
			if err != nil {
				return nil, err
			}
			p.Nodes = append(p.Nodes, n)
		}
		if dp.FillColor != nil {
			c, err := decodeColor(dp.FillColor)
			if err != nil {
				return nil, err
			}
			p.FillColor = &c
		}
		l.Paths = append(l.Paths, p)
	}
	for _, dc := range dl.Components {
		c := NewComponent(dc.Base)
		if dc.Transform != nil {
			if len(dc.Transform) != 6 {
				return nil, fmt.Errorf("component %q: transform needs 6 values, got %d",
					dc.Base, len(dc.Transform))
			}
			copy(c.Transform[:], dc.Transform)
		}
		if dc.FillColor != nil {
			col, err := decodeColor(dc.FillColor)
			if err != nil {
				return nil, err
			}
			c.FillColor = &col
		}
		l.Components = append(l.Components, c)
	}
	return l, nil
}

func parseNode(s string) (Node, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Node{}, fmt.Errorf("malformed node %q", s)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Node{}, fmt.Errorf("malformed node %q", s)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Node{}, fmt.Errorf("malformed node %q", s)
	}
	tp := NodeType(strings.ToLower(fields[2]))
	switch tp {
	case Move, Line, Curve, QCurve, OffCurve:
		// pass
	default:
		return Node{}, fmt.Errorf("unknown node type %q", fields[2])
	}
	return Node{X: x, Y: y, Type: tp}, nil
}

func formatNode(n Node) string {
	return strconv.FormatFloat(n.X, 'f', -1, 64) + " " +
		strconv.FormatFloat(n.Y, 'f', -1, 64) + " " + string(n.Type)
}

func decodeColor(v []float64) (Color, error) {
	var c Color
	switch len(v) {
	case 3:
		c = Color{R: v[0], G: v[1], B: v[2], A: 1}
	case 4:
		c = Color{R: v[0], G: v[1], B: v[2], A: v[3]}
	default:
		return Color{}, fmt.Errorf("colour needs 3 or 4 values, got %d", len(v))
	}
	if err := c.Validate(); err != nil {
		return Color{}, err
	}
	return c, nil
}

func encodeColor(c *Color) []float64 {
	if c == nil {
		return nil
	}
	return []float64{c.R, c.G, c.B, c.A}
}

// Write encodes a font as a YAML document.
func Write(w io.Writer, f *Font) error {
	doc := &document{
		FamilyName: f.FamilyName,
	}
	for _, m := range f.masters {
		doc.Masters = append(doc.Masters, docMaster{ID: m.ID, Name: m.Name})
	}
	for _, g := range f.glyphs {
		dg := docGlyph{
			Name:        g.name,
			Category:    g.Category,
			SubCategory: g.SubCategory,
			Script:      g.Script,
		}
		for _, r := range g.Unicodes {
			dg.Unicodes = append(dg.Unicodes, fmt.Sprintf("%04X", r))
		}
		if g.label != nil {
			idx := int(*g.label)
			dg.Label = &idx
		}
		for _, l := range g.Layers() {
			dg.Layers = append(dg.Layers, encodeLayer(l))
		}
		doc.Glyphs = append(doc.Glyphs, dg)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func encodeLayer(l *Layer) docLayer {
	dl := docLayer{
		Master: l.masterID,
		Width:  l.width,
	}
	for _, p := range l.Paths {
		dp := docPath{
			Closed:    p.Closed,
			Nodes:     make([]string, len(p.Nodes)),
			FillColor: encodeColor(p.FillColor),
		}
		for i, n := range p.Nodes {
			dp.Nodes[i] = formatNode(n)
		}
		dl.Paths = append(dl.Paths, dp)
	}
	for _, c := range l.Components {
		dc := docComponent{
			Base:      c.Base,
			FillColor: encodeColor(c.FillColor),
		}
		if c.Transform != matrix.Identity {
			dc.Transform = c.Transform[:]
		}
		dl.Components = append(dl.Components, dc)
	}
	return dl
}
