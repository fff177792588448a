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

package rename

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/afii"
	"seehuhn.de/go/glyphkit/glyphset"
	"seehuhn.de/go/glyphkit/naming"
)

func TestEndToEnd(t *testing.T) {
	candidates := []string{"afii10017", "afii99999", "unrelated"}

	cases := []struct {
		res  *afii.Resolver
		want Rename
	}{
		{nil, Rename{Old: "afii10017", New: "uni0410", Code: 0x0410, Kind: afii.Fallback}},
		{&afii.Resolver{Authority: naming.UnicodeNames{}},
			Rename{Old: "afii10017", New: "A-cy", Code: 0x0410, Kind: afii.Canonical}},
	}
	for i, test := range cases {
		p := Compute(candidates, NewNameSet(candidates...), test.res)
		if d := cmp.Diff([]Rename{test.want}, p.Renames); d != "" {
			t.Errorf("%d: renames (-want +got):\n%s", i, d)
		}
		wantSkipped := []Skip{
			{Name: "afii99999", Kind: afii.Unknown},
			{Name: "unrelated", Kind: afii.NotLegacy},
		}
		if d := cmp.Diff(wantSkipped, p.Skipped); d != "" {
			t.Errorf("%d: skipped (-want +got):\n%s", i, d)
		}
		if len(p.Conflicts) != 0 {
			t.Errorf("%d: unexpected conflicts %v", i, p.Conflicts)
		}
	}
}

func TestBatchConflict(t *testing.T) {
	// an authority which gives the same name to every code point
	same := &afii.Resolver{Authority: naming.Func(func(r rune) (string, error) {
		return "dup", nil
	})}
	candidates := []string{"afii10017", "afii10018", "afii10019"}
	p := Compute(candidates, NewNameSet(candidates...), same)

	if len(p.Renames) != 1 || p.Renames[0].Old != "afii10017" {
		t.Errorf("unexpected renames %v", p.Renames)
	}
	want := []Conflict{
		{Old: "afii10018", New: "dup", ClaimedBy: "afii10017"},
		{Old: "afii10019", New: "dup", ClaimedBy: "afii10017"},
	}
	if d := cmp.Diff(want, p.Conflicts); d != "" {
		t.Errorf("conflicts (-want +got):\n%s", d)
	}
	if p.Resolvable() != 3 {
		t.Errorf("resolvable = %d, want 3", p.Resolvable())
	}
}

func TestNamespaceConflict(t *testing.T) {
	ns := NewNameSet("afii10017", "uni0410", "afii10018")
	p := Compute([]string{"afii10017", "afii10018", "afii10017"}, ns, nil)

	want := &Plan{
		Renames: []Rename{
			{Old: "afii10018", New: "uni0411", Code: 0x0411, Kind: afii.Fallback},
		},
		Conflicts: []Conflict{
			{Old: "afii10017", New: "uni0410"},
		},
	}
	if d := cmp.Diff(want, p); d != "" {
		t.Errorf("plan (-want +got):\n%s", d)
	}
}

func TestFreedNamesAreNotReused(t *testing.T) {
	// renaming afii10018 would free that name, but the authority is asked
	// to propose it for afii10017
	res := &afii.Resolver{Authority: naming.Func(func(r rune) (string, error) {
		if r == 0x0410 {
			return "Be-cy", nil
		}
		return "", naming.ErrNoName
	})}
	ns := NewNameSet("afii10017", "Be-cy")
	p := Compute([]string{"afii10017"}, ns, res)
	if len(p.Renames) != 0 || len(p.Conflicts) != 1 {
		t.Errorf("got %d renames and %d conflicts", len(p.Renames), len(p.Conflicts))
	}
}

func TestAcceptedPlusConflicts(t *testing.T) {
	res := &afii.Resolver{Authority: naming.AGL{}}
	names := afii.Names()
	candidates := append(names, "A", "afii00000", "uni0410")
	ns := NewNameSet(candidates...)
	p := Compute(candidates, ns, res)

	resolvable := 0
	for _, name := range names {
		if res.Resolve(name).OK() {
			resolvable++
		}
	}
	if got := len(p.Renames) + len(p.Conflicts); got != resolvable {
		t.Errorf("accepted + conflicts = %d, want %d", got, resolvable)
	}
	if len(p.Skipped) != 3 {
		t.Errorf("%d candidates skipped, want 3", len(p.Skipped))
	}

	claimed := make(map[string]bool)
	for _, r := range p.Renames {
		if claimed[r.New] || ns.Has(r.New) {
			t.Errorf("name %q assigned twice", r.New)
		}
		claimed[r.New] = true
	}
}

func TestPreview(t *testing.T) {
	p := &Plan{Renames: []Rename{
		{Old: "afii10017", New: "A-cy", Kind: afii.Canonical},
		{Old: "afii10018", New: "uni0411", Kind: afii.Fallback},
		{Old: "afii10019", New: "uni0412", Kind: afii.Fallback},
	}}
	want := []string{
		"afii10017 -> A-cy *",
		"afii10018 -> uni0411",
		"... and 1 more",
	}
	if d := cmp.Diff(want, p.Preview(2)); d != "" {
		t.Errorf("preview (-want +got):\n%s", d)
	}
	if got := p.Preview(10); len(got) != 3 {
		t.Errorf("full preview has %d lines", len(got))
	}
}

func TestApply(t *testing.T) {
	f, err := glyphset.New("Test", &glyphset.Master{ID: "m"})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"afii10017", "afii10018", "A"} {
		if err := f.AddGlyph(glyphset.NewGlyph(name)); err != nil {
			t.Fatal(err)
		}
	}

	p := Compute(f.Names(), f, nil)

	// simulate a glyph which disappeared between planning and applying
	if err := f.RemoveGlyph("afii10018"); err != nil {
		t.Fatal(err)
	}

	rep, err := Apply(f, p)
	if err != nil {
		t.Fatal(err)
	}
	if len(rep.Renamed) != 1 || rep.Renamed[0].New != "uni0410" {
		t.Errorf("unexpected renames %v", rep.Renamed)
	}
	if len(rep.Failed) != 1 || rep.Failed[0].Item != "afii10018" {
		t.Errorf("unexpected failures %v", rep.Failed)
	}
	if d := cmp.Diff([]string{"uni0410", "A"}, f.Names()); d != "" {
		t.Errorf("names (-want +got):\n%s", d)
	}

	_, err = Apply(nil, p)
	if !errors.Is(err, glyphkit.ErrNoFont) {
		t.Errorf("nil font: got %v", err)
	}
}
