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

package metrics

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
)

func newFont(t *testing.T, masters []string, names ...string) *glyphset.Font {
	t.Helper()
	var mm []*glyphset.Master
	for _, id := range masters {
		mm = append(mm, &glyphset.Master{ID: id})
	}
	f, err := glyphset.New("Test", mm...)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if err := f.AddGlyph(glyphset.NewGlyph(name)); err != nil {
			t.Fatal(err)
		}
	}
	return f
}

func setWidth(t *testing.T, f *glyphset.Font, name, master string, w float64) {
	t.Helper()
	if err := f.Glyph(name).Layer(master).SetWidth(w); err != nil {
		t.Fatal(err)
	}
}

func box(x0, x1 float64) *glyphset.Path {
	return &glyphset.Path{
		Closed: true,
		Nodes: []glyphset.Node{
			{X: x0, Y: 0, Type: glyphset.Line},
			{X: x1, Y: 0, Type: glyphset.Line},
			{X: x1, Y: 500, Type: glyphset.Line},
		},
	}
}

func TestCopyWidths(t *testing.T) {
	source := newFont(t, []string{"s1", "s2"}, "A", "uni0411", "C")
	setWidth(t, source, "A", "s1", 600)
	setWidth(t, source, "A", "s2", 999)
	setWidth(t, source, "uni0411", "s1", 580)
	source.Glyph("uni0411").Unicodes = []rune{0x0411}

	target := newFont(t, []string{"t1", "t2"}, "A", "Be-cy", "D")
	target.Glyph("Be-cy").Unicodes = []rune{0x0411}

	rep, err := CopyWidths(target.Glyphs(), source)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"A", "Be-cy"}, rep.Copied); d != "" {
		t.Errorf("copied (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"D"}, rep.Unmatched); d != "" {
		t.Errorf("unmatched (-want +got):\n%s", d)
	}

	for _, id := range []string{"t1", "t2"} {
		if w := target.Glyph("A").Layer(id).Width(); w != 600 {
			t.Errorf("A/%s: width %g", id, w)
		}
		if w := target.Glyph("Be-cy").Layer(id).Width(); w != 580 {
			t.Errorf("Be-cy/%s: width %g", id, w)
		}
	}
}

func TestCopyWidthsNoMatches(t *testing.T) {
	source := newFont(t, []string{"s"}, "A")
	target := newFont(t, []string{"t"}, "B")
	setWidth(t, target, "B", "t", 300)

	rep, err := CopyWidths(target.Glyphs(), source)
	if !errors.Is(err, ErrNoMatches) {
		t.Errorf("got %v", err)
	}
	if rep == nil || len(rep.Unmatched) != 1 {
		t.Error("unmatched glyphs not reported")
	}
	if w := target.Glyph("B").Layer("t").Width(); w != 300 {
		t.Error("width changed")
	}

	if _, err := CopyWidths(nil, source); !errors.Is(err, glyphkit.ErrNoSelection) {
		t.Errorf("empty selection: got %v", err)
	}
	if _, err := CopyWidths(target.Glyphs(), nil); !errors.Is(err, glyphkit.ErrNoFont) {
		t.Errorf("no source: got %v", err)
	}
}

func TestCopySidebearings(t *testing.T) {
	cases := []struct {
		opts            SidebearingOptions
		lsb, rsb, width float64
		layers, skipped int
	}{
		{SidebearingOptions{Source: "m1", Left: true}, 50, 70, 520, 1, 1},
		{SidebearingOptions{Source: "m1", Right: true}, 40, 100, 540, 1, 1},
		{SidebearingOptions{Source: "m1", Left: true, Right: true}, 50, 100, 550, 1, 1},
		{SidebearingOptions{Source: "m1", Width: true, Left: true}, 40, 160, 600, 2, 0},
		{SidebearingOptions{Source: "m1", Targets: []string{"m3"}, Left: true}, 40, 70, 510, 0, 1},
	}
	for i, test := range cases {
		f := newFont(t, []string{"m1", "m2", "m3"}, "H")
		H := f.Glyph("H")
		src := H.Layer("m1")
		src.Paths = []*glyphset.Path{box(50, 500)}
		setWidth(t, f, "H", "m1", 600)
		dst := H.Layer("m2")
		dst.Paths = []*glyphset.Path{box(40, 440)}
		setWidth(t, f, "H", "m2", 510)

		rep, err := CopySidebearings(f, f.Glyphs(), &test.opts)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		lsb, _ := dst.LSB()
		rsb, _ := dst.RSB()
		if lsb != test.lsb || rsb != test.rsb || dst.Width() != test.width {
			t.Errorf("%d: lsb=%g rsb=%g width=%g", i, lsb, rsb, dst.Width())
		}
		// m3 has no outlines
		if rep.Layers != test.layers || rep.Skipped != test.skipped {
			t.Errorf("%d: layers=%d skipped=%d", i, rep.Layers, rep.Skipped)
		}
	}
}

func TestCopySidebearingsErrors(t *testing.T) {
	single := newFont(t, []string{"m1"}, "A")
	_, err := CopySidebearings(single, single.Glyphs(), &SidebearingOptions{Source: "m1", Left: true})
	if !errors.Is(err, glyphkit.ErrSingleMaster) {
		t.Errorf("single master: got %v", err)
	}

	f := newFont(t, []string{"m1", "m2"}, "A")
	cases := []SidebearingOptions{
		{Source: "m1"},
		{Source: "zz", Left: true},
		{Source: "m1", Targets: []string{"m1"}, Left: true},
		{Source: "m1", Targets: []string{"zz"}, Left: true},
	}
	for i, opts := range cases {
		if _, err := CopySidebearings(f, f.Glyphs(), &opts); err == nil {
			t.Errorf("%d: invalid options accepted", i)
		}
	}
	if _, err := CopySidebearings(f, nil, &SidebearingOptions{Source: "m1", Left: true}); !errors.Is(err, glyphkit.ErrNoSelection) {
		t.Errorf("empty selection: got %v", err)
	}
}
