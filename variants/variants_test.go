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

package variants

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
)

func figureFont(t *testing.T, names ...string) *glyphset.Font {
	t.Helper()
	f, err := glyphset.New("Test", &glyphset.Master{ID: "m1"}, &glyphset.Master{ID: "m2"})
	if err != nil {
		t.Fatal(err)
	}
	for i, name := range names {
		g := glyphset.NewGlyph(name)
		g.Category = "Number"
		g.SubCategory = "Decimal Digit"
		if err := f.AddGlyph(g); err != nil {
			t.Fatal(err)
		}
		for _, l := range g.Layers() {
			if err := l.SetWidth(float64(500 + i)); err != nil {
				t.Fatal(err)
			}
		}
	}
	return f
}

func TestCreate(t *testing.T) {
	f := figureFont(t, "zero", "one", "one.tf")

	rep, err := Create(f, &Options{Suffixes: []string{"tf", ".ss01", "tf", " "}})
	if err != nil {
		t.Fatal(err)
	}
	want := &Report{
		Created: []string{"zero.tf", "zero.ss01", "one.ss01"},
		Skipped: []string{"one.tf"},
		MissingBases: []string{
			"two", "three", "four", "five", "six", "seven", "eight", "nine",
		},
	}
	if d := cmp.Diff(want, rep); d != "" {
		t.Errorf("report (-want +got):\n%s", d)
	}

	g := f.Glyph("one.ss01")
	if g.Category != "Number" || g.SubCategory != "Decimal Digit" {
		t.Error("category not copied")
	}
	for _, id := range []string{"m1", "m2"} {
		l := g.Layer(id)
		if l.Width() != 501 {
			t.Errorf("%s: width %g", id, l.Width())
		}
		if len(l.Components) != 1 || l.Components[0].Base != "one" || len(l.Paths) != 0 {
			t.Errorf("%s: unexpected layer contents", id)
		}
	}
	if !f.Glyph("one.tf").Layer("m1").IsEmpty() {
		t.Error("existing glyph was changed")
	}
}

func TestOverwrite(t *testing.T) {
	f := figureFont(t, "zero", "zero.osf", "one")
	old := f.Glyph("zero.osf")
	rep, err := Create(f, &Options{Suffixes: []string{"osf"}, Overwrite: true})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"zero.osf", "one.osf"}, rep.Created); d != "" {
		t.Errorf("created (-want +got):\n%s", d)
	}
	if len(rep.Failed) != 0 {
		t.Errorf("failed: %v", rep.Failed)
	}
	if comps := f.Glyph("zero.osf").Layer("m1").Components; len(comps) != 1 {
		t.Error("glyph not replaced")
	}
	if old.Font() != nil {
		t.Error("old glyph still attached")
	}
	// the replacement keeps the position of the old glyph
	want := []string{"zero", "zero.osf", "one", "one.osf"}
	if d := cmp.Diff(want, f.Names()); d != "" {
		t.Errorf("names (-want +got):\n%s", d)
	}
}

func TestCreateErrors(t *testing.T) {
	f := figureFont(t, "zero")
	if _, err := Create(f, &Options{Suffixes: []string{".", ""}}); !errors.Is(err, ErrNoSuffixes) {
		t.Errorf("no suffixes: got %v", err)
	}
	if _, err := Create(f, &Options{Suffixes: []string{"bad suffix"}}); err == nil {
		t.Error("invalid suffix accepted")
	}
	if _, err := Create(nil, &Options{Suffixes: StandardSuffixes}); !errors.Is(err, glyphkit.ErrNoFont) {
		t.Errorf("no font: got %v", err)
	}
}
