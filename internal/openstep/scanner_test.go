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

package openstep

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

func TestRead(t *testing.T) {
	cases := []struct {
		in  string
		val Object
	}{
		{"abc", String("abc")},
		{"-12.5", String("-12.5")},
		{`"a b"`, String("a b")},
		{`'single'`, String("single")},
		{`"tab\there"`, String("tab\there")},
		{`"quote \" inside"`, String(`quote " inside`)},
		{`"back\\slash"`, String(`back\slash`)},
		{`"\012"`, String("\n")},
		{`"\U0410x"`, String("Аx")},
		{`"caf\U00e9"`, String("café")},
		{`"é"`, String("é")},
		{"<0fa1 b2>", Data{0x0f, 0xa1, 0xb2}},
		{"()", Array{}},
		{"(a, b,c)", Array{String("a"), String("b"), String("c")}},
		{"(a,)", Array{String("a")}},
		{"(1,2,l)", Array{String("1"), String("2"), String("l")}},
		{"{}", Dict{}},
		{"{a = 1; b = (x); }", Dict{"a": String("1"), "b": Array{String("x")}}},
		{`{"key with space" = {c = d;};}`, Dict{"key with space": Dict{"c": String("d")}}},
		{"{a = 1}", Dict{"a": String("1")}},
		{"// comment\n{ /* x */ a /* y */ = b; } // tail", Dict{"a": String("b")}},
		{"  \n\t{a=b;}\n\n", Dict{"a": String("b")}},
	}
	for _, test := range cases {
		val, err := Read(strings.NewReader(test.in))
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if d := cmp.Diff(test.val, val); d != "" {
			t.Errorf("%q: (-want +got):\n%s", test.in, d)
		}
	}
}

func TestReadErrors(t *testing.T) {
	cases := []string{
		"",
		"{a = b",
		"{a = b; c}",
		"{(a) = b;}",
		"(a b)",
		`"unterminated`,
		"<0g>",
		"<abc>",
		"{a = b;} extra",
		"/* open",
		"{a = ;}",
		"=",
	}
	for _, in := range cases {
		_, err := Read(strings.NewReader(in))
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("%q: got %v, want a syntax error", in, err)
		}
	}
}

func TestReadEOF(t *testing.T) {
	_, err := Read(strings.NewReader("(a,"))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("got %v", err)
	}
}

// TestLongInput checks reading input which does not fit into the scanner
// buffer, delivered one byte at a time.
func TestLongInput(t *testing.T) {
	b := &strings.Builder{}
	b.WriteString("{\nglyphs = (\n")
	want := Array{}
	for i := 0; i < 500; i++ {
		b.WriteString("/* a comment spanning the buffer boundary */\n")
		b.WriteString("{glyphname = \"glyph.with.a.long.name\"; unicode = 0041;},\n")
		want = append(want, Dict{
			"glyphname": String("glyph.with.a.long.name"),
			"unicode":   String("0041"),
		})
	}
	b.WriteString(");\n}\n")

	val, err := Read(iotest.OneByteReader(strings.NewReader(b.String())))
	if err != nil {
		t.Fatal(err)
	}
	got := val.(Dict).GetArray("glyphs")
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestDictAccessors(t *testing.T) {
	d := Dict{
		"s": String("text"),
		"n": String("12"),
		"f": String("-1.5"),
		"d": Dict{},
		"a": Array{String("x")},
	}
	if d.GetString("s") != "text" || d.GetString("a") != "" || d.GetString("missing") != "" {
		t.Error("GetString failed")
	}
	if x, ok := d.GetInt("n"); !ok || x != 12 {
		t.Error("GetInt failed")
	}
	if _, ok := d.GetInt("f"); ok {
		t.Error("GetInt accepted a fraction")
	}
	if x, ok := d.GetFloat("f"); !ok || x != -1.5 {
		t.Error("GetFloat failed")
	}
	if d.GetDict("d") == nil || d.GetDict("s") != nil {
		t.Error("GetDict failed")
	}
	if len(d.GetArray("a")) != 1 || d.GetArray("d") != nil {
		t.Error("GetArray failed")
	}
}
