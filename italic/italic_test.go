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

package italic

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
)

func testGlyph(t *testing.T) (*glyphset.Font, *glyphset.Glyph) {
	t.Helper()
	f, err := glyphset.New("Test", &glyphset.Master{ID: "m1"}, &glyphset.Master{ID: "m2"})
	if err != nil {
		t.Fatal(err)
	}
	g := glyphset.NewGlyph("H")
	if err := f.AddGlyph(g); err != nil {
		t.Fatal(err)
	}
	for _, l := range g.Layers() {
		l.Paths = []*glyphset.Path{{
			Closed: true,
			Nodes: []glyphset.Node{
				{X: 100, Y: 0, Type: glyphset.Line},
				{X: 500, Y: 0, Type: glyphset.Line},
				{X: 500, Y: 700, Type: glyphset.Line},
				{X: 100, Y: 700, Type: glyphset.Line},
			},
		}}
		if err := l.SetWidth(600); err != nil {
			t.Fatal(err)
		}
	}
	return f, g
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestApply(t *testing.T) {
	cases := []struct {
		settings        Settings
		lsb, rsb, width float64
	}{
		{Settings{Condense: 100, Slant: 0, Sidebearing: 100}, 100, 100, 600},
		{Settings{Condense: 50, Slant: 0, Sidebearing: 100}, 100, 100, 400},
		{Settings{Condense: 50, Slant: 45, Sidebearing: 100}, 100, 100, 1100},
		{Settings{Condense: 50, Slant: 45, Sidebearing: 50}, 50, 50, 1000},
		{Settings{Condense: 200, Slant: 0, Sidebearing: 0}, 0, 0, 800},
	}
	for i, test := range cases {
		_, g := testGlyph(t)
		rep, err := Apply([]*glyphset.Glyph{g}, &Options{Settings: test.settings})
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		if rep.Layers != 2 || len(rep.Failed) != 0 {
			t.Errorf("%d: %d layers, %d failures", i, rep.Layers, len(rep.Failed))
		}
		for _, l := range g.Layers() {
			lsb, _ := l.LSB()
			rsb, _ := l.RSB()
			if !near(lsb, test.lsb) || !near(rsb, test.rsb) || !near(l.Width(), test.width) {
				t.Errorf("%d/%s: lsb=%g rsb=%g width=%g", i, l.MasterID(), lsb, rsb, l.Width())
			}
		}
	}
}

func TestNegativeWidthRestored(t *testing.T) {
	_, g := testGlyph(t)
	for _, l := range g.Layers() {
		// lsb = 100, rsb = -200
		if err := l.SetWidth(300); err != nil {
			t.Fatal(err)
		}
	}

	// The scaled sidebearings would give an advance width of -100.
	settings := Settings{Condense: 50, Slant: 0, Sidebearing: 300}
	rep, err := Apply([]*glyphset.Glyph{g}, &Options{Settings: settings})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Layers != 0 || len(rep.Failed) != 2 {
		t.Fatalf("%d layers, %d failures", rep.Layers, len(rep.Failed))
	}
	if rep.Failed[0].Item != "H/m1" {
		t.Errorf("failed item %q", rep.Failed[0].Item)
	}

	want := []glyphset.Node{
		{X: 100, Y: 0, Type: glyphset.Line},
		{X: 500, Y: 0, Type: glyphset.Line},
		{X: 500, Y: 700, Type: glyphset.Line},
		{X: 100, Y: 700, Type: glyphset.Line},
	}
	for _, l := range g.Layers() {
		if l.Width() != 300 {
			t.Errorf("%s: width %g", l.MasterID(), l.Width())
		}
		for i, n := range l.Paths[0].Nodes {
			if !near(n.X, want[i].X) || !near(n.Y, want[i].Y) {
				t.Errorf("%s: node %d moved to (%g, %g)", l.MasterID(), i, n.X, n.Y)
			}
		}
	}
}

func TestSelectedMasters(t *testing.T) {
	_, g := testGlyph(t)
	opts := &Options{
		Settings: Settings{Condense: 50, Sidebearing: 100},
		Masters:  []string{"m2"},
	}
	if _, err := Apply([]*glyphset.Glyph{g}, opts); err != nil {
		t.Fatal(err)
	}
	if w := g.Layer("m1").Width(); w != 600 {
		t.Errorf("m1 changed: width %g", w)
	}
	if w := g.Layer("m2").Width(); !near(w, 400) {
		t.Errorf("m2: width %g", w)
	}
}

func TestPerMaster(t *testing.T) {
	_, g := testGlyph(t)
	opts := &Options{
		Settings: Settings{Condense: -1}, // ignored
		PerMaster: map[string]Settings{
			"m1": {Condense: 50, Slant: 0, Sidebearing: 50},
		},
	}
	rep, err := Apply([]*glyphset.Glyph{g}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Layers != 1 {
		t.Errorf("%d layers transformed", rep.Layers)
	}
	if w := g.Layer("m1").Width(); !near(w, 300) {
		t.Errorf("m1: width %g", w)
	}
	if w := g.Layer("m2").Width(); w != 600 {
		t.Errorf("m2 changed: width %g", w)
	}
}

func TestComponents(t *testing.T) {
	f, g := testGlyph(t)
	comp := glyphset.NewGlyph("Hcomp")
	if err := f.AddGlyph(comp); err != nil {
		t.Fatal(err)
	}
	l := comp.Layer("m1")
	l.Components = []*glyphset.Component{glyphset.NewComponent(g.Name())}
	if err := l.SetWidth(600); err != nil {
		t.Fatal(err)
	}

	opts := &Options{Settings: Settings{Condense: 50, Sidebearing: 100}, Masters: []string{"m1"}}
	if _, err := Apply([]*glyphset.Glyph{comp}, opts); err != nil {
		t.Fatal(err)
	}
	want := matrix.Matrix{0.5, 0, 0, 1, 50, 0}
	if got := l.Components[0].Transform; got != want {
		t.Errorf("component transform %v, want %v", got, want)
	}
	if !near(l.Width(), 400) {
		t.Errorf("width %g", l.Width())
	}
}

func TestEmptyLayer(t *testing.T) {
	g := glyphset.NewGlyph("space")
	f, _ := testGlyph(t)
	if err := f.AddGlyph(g); err != nil {
		t.Fatal(err)
	}
	rep, err := Apply([]*glyphset.Glyph{g}, &Options{Settings: DefaultSettings()})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Layers != 2 || g.Layer("m1").Width() != 0 {
		t.Errorf("unexpected result for empty glyph")
	}
}

func TestValidate(t *testing.T) {
	bad := []Settings{
		{Condense: 0, Sidebearing: 100},
		{Condense: -5, Sidebearing: 100},
		{Condense: math.NaN(), Sidebearing: 100},
		{Condense: 100, Slant: 90, Sidebearing: 100},
		{Condense: 100, Sidebearing: -1},
	}
	for i, s := range bad {
		if s.Validate() == nil {
			t.Errorf("%d: invalid settings accepted", i)
		}
	}
	if err := DefaultSettings().Validate(); err != nil {
		t.Error(err)
	}

	_, g := testGlyph(t)
	_, err := Apply([]*glyphset.Glyph{g}, &Options{PerMaster: map[string]Settings{"m1": bad[0]}})
	if err == nil {
		t.Error("invalid per-master settings accepted")
	}
	if _, err := Apply(nil, &Options{Settings: DefaultSettings()}); !errors.Is(err, glyphkit.ErrNoSelection) {
		t.Errorf("empty selection: got %v", err)
	}
}
