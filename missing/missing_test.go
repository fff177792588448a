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

package missing

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
)

func makeFont(t *testing.T, masters []string, names ...string) *glyphset.Font {
	t.Helper()
	var mm []*glyphset.Master
	for _, id := range masters {
		mm = append(mm, &glyphset.Master{ID: id, Name: id})
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

func TestDiff(t *testing.T) {
	target := makeFont(t, []string{"a", "b"}, "A", "b", "Zeta")
	source := makeFont(t, []string{"s"}, "zeta", "c", "A", "B", "a.sc")

	p, err := Diff(target, source)
	if err != nil {
		t.Fatal(err)
	}
	want := &Plan{
		Missing: []string{"a.sc", "c"},
		CaseConflicts: []CaseConflict{
			{Name: "zeta", Existing: "Zeta"},
			{Name: "B", Existing: "b"},
		},
	}
	if d := cmp.Diff(want, p); d != "" {
		t.Errorf("plan (-want +got):\n%s", d)
	}
	if s := p.CaseConflicts[0].String(); s != "zeta (exists as Zeta)" {
		t.Errorf("got %q", s)
	}

	if _, err := Diff(nil, source); !errors.Is(err, glyphkit.ErrNoFont) {
		t.Errorf("nil target: got %v", err)
	}
}

func TestAdd(t *testing.T) {
	target := makeFont(t, []string{"m1", "m2"}, "A")
	source := makeFont(t, []string{"s"}, "A", "Be-cy", "gamma")
	be := source.Glyph("Be-cy")
	be.Unicodes = []rune{0x0411}
	be.Category = "Letter"
	be.SubCategory = "Uppercase"
	be.Script = "cyrillic"

	p, err := Diff(target, source)
	if err != nil {
		t.Fatal(err)
	}
	// pretend that someone else added "gamma" in the meantime
	if err := target.AddGlyph(glyphset.NewGlyph("gamma")); err != nil {
		t.Fatal(err)
	}
	p.Missing = append(p.Missing, "notInSource")

	rep, err := Add(target, source, p)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"Be-cy"}, rep.Added); d != "" {
		t.Errorf("added (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"gamma"}, rep.Skipped); d != "" {
		t.Errorf("skipped (-want +got):\n%s", d)
	}
	if len(rep.Failed) != 1 || rep.Failed[0].Item != "notInSource" {
		t.Errorf("unexpected failures %v", rep.Failed)
	}

	g := target.Glyph("Be-cy")
	if g == nil {
		t.Fatal("glyph not added")
	}
	if d := cmp.Diff([]rune{0x0411}, g.Unicodes); d != "" {
		t.Errorf("unicodes (-want +got):\n%s", d)
	}
	if g.Category != "Letter" || g.SubCategory != "Uppercase" || g.Script != "cyrillic" {
		t.Errorf("attributes not copied")
	}
	for _, id := range []string{"m1", "m2"} {
		if l := g.Layer(id); l == nil || !l.IsEmpty() {
			t.Errorf("master %s: no empty layer", id)
		}
	}

	be.Unicodes[0] = 'X'
	if g.Unicodes[0] != 0x0411 {
		t.Error("code points are shared with the source glyph")
	}
}
