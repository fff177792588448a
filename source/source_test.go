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
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/psenc"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFormatErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "font.xyz"))
	var unsupported *glyphkit.UnsupportedFormatError
	if !errors.As(err, &unsupported) || unsupported.Ext != ".xyz" {
		t.Errorf("unknown extension: got %v", err)
	}

	_, err = Open(filepath.Join(dir, "font.vfb"))
	var missing *glyphkit.MissingReaderError
	if !errors.As(err, &missing) || missing.Format != FontLab || missing.Remedy == "" {
		t.Errorf("FontLab file: got %v", err)
	}

	format, err := Format(dir)
	if err != nil || format != UFO {
		t.Errorf("directory: got %q, %v", format, err)
	}
	format, err = Format("Font.OTF")
	if err != nil || format != OpenType {
		t.Errorf("upper case extension: got %q, %v", format, err)
	}
}

func TestTrueType(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(fname, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	if f.FamilyName != "Go" {
		t.Errorf("family name %q", f.FamilyName)
	}
	if len(f.Masters()) != 1 {
		t.Fatalf("%d masters", len(f.Masters()))
	}
	if f.NumGlyphs() < 100 {
		t.Errorf("only %d glyphs", f.NumGlyphs())
	}

	A := f.GlyphByUnicode('A')
	if A == nil {
		t.Fatal("no glyph for 'A'")
	}
	if A.Category != "Letter" || A.SubCategory != "Uppercase" || A.Script != "latin" {
		t.Errorf("A: category %q/%q, script %q", A.Category, A.SubCategory, A.Script)
	}
	l := A.Layer(f.Masters()[0].ID)
	if l == nil || l.Width() <= 0 {
		t.Error("A has no advance width")
	}
}

const glyphs2File = `{
.appVersion = "1342";
familyName = "Test Sans";
fontMaster = (
{
id = "M1";
weight = Light;
},
{
id = "M2";
}
);
glyphs = (
{
glyphname = A;
unicode = 0041;
category = Letter;
color = 5;
layers = (
{
layerId = "M1";
width = 600;
paths = (
{
closed = 1;
nodes = (
"0 0 LINE",
"300 700 LINE SMOOTH",
"600 0 LINE"
);
}
);
},
{
layerId = "M2";
width = 640;
},
{
associatedMasterId = "M1";
layerId = "BRACE";
name = "{100}";
width = 900;
}
);
},
{
glyphname = Aacute;
unicode = "00C1,0102";
layers = (
{
layerId = "M1";
width = 600;
components = (
{
name = A;
},
{
name = acutecomb;
transform = "{1, 0, 0, 1, 250, 0}";
}
);
}
);
},
{
glyphname = "bad name";
}
);
}
`

func TestGlyphs2(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.glyphs")
	writeFile(t, fname, glyphs2File)

	f, err := Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	if f.FamilyName != "Test Sans" {
		t.Errorf("family %q", f.FamilyName)
	}
	wantMasters := []*glyphset.Master{{ID: "M1", Name: "Light"}, {ID: "M2", Name: "Regular"}}
	if d := cmp.Diff(wantMasters, f.Masters()); d != "" {
		t.Errorf("masters (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"A", "Aacute"}, f.Names()); d != "" {
		t.Errorf("glyphs (-want +got):\n%s", d)
	}

	A := f.Glyph("A")
	if d := cmp.Diff([]rune{'A'}, A.Unicodes); d != "" {
		t.Errorf("unicodes (-want +got):\n%s", d)
	}
	if lbl, ok := A.Label(); !ok || lbl != glyphset.DarkGreen {
		t.Errorf("label %v", lbl)
	}
	l1 := A.Layer("M1")
	if l1.Width() != 600 || len(l1.Paths) != 1 || !l1.Paths[0].Closed {
		t.Fatalf("unexpected layer M1")
	}
	wantNodes := []glyphset.Node{
		{X: 0, Y: 0, Type: glyphset.Line},
		{X: 300, Y: 700, Type: glyphset.Line},
		{X: 600, Y: 0, Type: glyphset.Line},
	}
	if d := cmp.Diff(wantNodes, l1.Paths[0].Nodes); d != "" {
		t.Errorf("nodes (-want +got):\n%s", d)
	}
	if A.Layer("M2").Width() != 640 {
		t.Errorf("brace layer replaced master layer")
	}

	Aacute := f.Glyph("Aacute")
	if d := cmp.Diff([]rune{0x00C1, 0x0102}, Aacute.Unicodes); d != "" {
		t.Errorf("unicodes (-want +got):\n%s", d)
	}
	comps := Aacute.Layer("M1").Components
	if len(comps) != 2 || comps[1].Base != "acutecomb" ||
		comps[1].Transform != matrix.Translate(250, 0) ||
		comps[0].Transform != matrix.Identity {
		t.Errorf("unexpected components %v", comps)
	}
	if !Aacute.Layer("M2").IsEmpty() {
		t.Error("missing layer is not empty")
	}
}

const glyphs3File = `{
.formatVersion = 3;
familyName = "Test Serif";
fontMaster = (
{
id = m01;
name = Bold;
}
);
glyphs = (
{
glyphname = "A-cy";
unicode = 1040;
layers = (
{
layerId = m01;
width = 620;
shapes = (
{
attr = {
fillColor = (0,0,255,255);
};
closed = 1;
nodes = (
(10,0,l),
(310,700,ls),
(600,0,o),
(610,10,cs)
);
},
{
pos = (100,0);
ref = A;
scale = (2,1);
}
);
}
);
},
{
glyphname = ring;
unicode = (730,778);
}
);
}
`

func TestGlyphs3(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.glyphs")
	writeFile(t, fname, glyphs3File)

	f, err := Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	if f.FamilyName != "Test Serif" || f.Masters()[0].Name != "Bold" {
		t.Errorf("unexpected font info")
	}

	g := f.Glyph("A-cy")
	if d := cmp.Diff([]rune{0x0410}, g.Unicodes); d != "" {
		t.Errorf("unicodes (-want +got):\n%s", d)
	}
	l := g.Layer("m01")
	if l.Width() != 620 || len(l.Paths) != 1 || len(l.Components) != 1 {
		t.Fatal("unexpected layer contents")
	}
	p := l.Paths[0]
	wantTypes := []glyphset.NodeType{glyphset.Line, glyphset.Line, glyphset.OffCurve, glyphset.Curve}
	for i, n := range p.Nodes {
		if n.Type != wantTypes[i] {
			t.Errorf("node %d: type %q, want %q", i, n.Type, wantTypes[i])
		}
	}
	if p.FillColor == nil || *p.FillColor != glyphset.RGB255(0, 0, 255) {
		t.Errorf("fill colour %v", p.FillColor)
	}
	want := matrix.Matrix{2, 0, 0, 1, 100, 0}
	if got := l.Components[0].Transform; got != want {
		t.Errorf("component transform %v, want %v", got, want)
	}

	if d := cmp.Diff([]rune{730, 778}, f.Glyph("ring").Unicodes); d != "" {
		t.Errorf("unicode list (-want +got):\n%s", d)
	}
}

func TestUFO(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Test.ufo")
	writeFile(t, filepath.Join(dir, "fontinfo.plist"), `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>familyName</key>
	<string>Test UFO</string>
	<key>styleName</key>
	<string>Italic</string>
	<key>unitsPerEm</key>
	<integer>1000</integer>
</dict>
</plist>
`)
	writeFile(t, filepath.Join(dir, "lib.plist"), `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>public.glyphOrder</key>
	<array>
		<string>space</string>
		<string>notInFont</string>
		<string>A</string>
	</array>
	<key>com.example.flag</key>
	<true/>
</dict>
</plist>
`)
	writeFile(t, filepath.Join(dir, "glyphs", "contents.plist"), `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>A</key>
	<string>A_.glif</string>
	<key>Aring</key>
	<string>A_ring.glif</string>
	<key>space</key>
	<string>space.glif</string>
</dict>
</plist>
`)
	writeFile(t, filepath.Join(dir, "glyphs", "A_.glif"), `<?xml version="1.0" encoding="UTF-8"?>
<glyph name="A" format="2">
  <advance width="600"/>
  <unicode hex="0041"/>
  <outline>
    <contour>
      <point x="0" y="0" type="line"/>
      <point x="100" y="300"/>
      <point x="200" y="700" type="curve" smooth="yes"/>
      <point x="600" y="0" type="line"/>
    </contour>
    <contour>
      <point x="10" y="10" type="move"/>
      <point x="20" y="20" type="line"/>
    </contour>
  </outline>
</glyph>
`)
	writeFile(t, filepath.Join(dir, "glyphs", "A_ring.glif"), `<?xml version="1.0" encoding="UTF-8"?>
<glyph name="Aring" format="2">
  <advance width="600"/>
  <unicode hex="00C5"/>
  <outline>
    <component base="A"/>
    <component base="ring" xOffset="150" yOffset="720"/>
  </outline>
</glyph>
`)
	writeFile(t, filepath.Join(dir, "glyphs", "space.glif"), `<?xml version="1.0" encoding="UTF-8"?>
<glyph name="space" format="2">
  <advance width="250"/>
  <unicode hex="0020"/>
</glyph>
`)

	f, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if f.FamilyName != "Test UFO" || f.Masters()[0].Name != "Italic" {
		t.Errorf("unexpected font info")
	}
	if d := cmp.Diff([]string{"space", "A", "Aring"}, f.Names()); d != "" {
		t.Errorf("glyph order (-want +got):\n%s", d)
	}

	id := f.Masters()[0].ID
	A := f.Glyph("A").Layer(id)
	if len(A.Paths) != 2 || !A.Paths[0].Closed || A.Paths[1].Closed {
		t.Fatal("unexpected contours")
	}
	if A.Paths[0].Nodes[1].Type != glyphset.OffCurve {
		t.Errorf("untyped point has type %q", A.Paths[0].Nodes[1].Type)
	}

	comps := f.Glyph("Aring").Layer(id).Components
	if len(comps) != 2 || comps[1].Transform != matrix.Translate(150, 720) {
		t.Errorf("unexpected components %v", comps)
	}
	if w := f.Glyph("space").Layer(id).Width(); w != 250 {
		t.Errorf("space width %g", w)
	}
}

func TestAFM(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.afm")
	writeFile(t, fname, `StartFontMetrics 4.1
FontName Test-Regular
FullName Test Regular
FamilyName Test
Weight Regular
ItalicAngle 0
IsFixedPitch false
FontBBox 0 -200 1000 800
UnderlinePosition -100
UnderlineThickness 50
Version 001.000
EncodingScheme AdobeStandardEncoding
CapHeight 700
XHeight 500
Ascender 750
Descender -200
StartCharMetrics 3
C 32 ; WX 250 ; N space ; B 0 0 0 0 ;
C 65 ; WX 600 ; N A ; B 0 0 600 700 ;
C -1 ; WX 640 ; N afii10017 ; B 0 0 640 700 ;
EndCharMetrics
EndFontMetrics
`)

	f, err := Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	if f.FamilyName != "Test Regular" {
		t.Errorf("family name %q", f.FamilyName)
	}
	if name := f.Masters()[0].Name; name != "Regular" {
		t.Errorf("master name %q", name)
	}
	id := f.Masters()[0].ID
	A := f.Glyph("A")
	if A == nil || A.Layer(id).Width() != 600 {
		t.Fatal("glyph A missing or wrong width")
	}
	if r, ok := A.Unicode(); !ok || r != 'A' {
		t.Errorf("A: unicode %q", r)
	}
	if r, ok := f.Glyph("afii10017").Unicode(); !ok || r != 0x0410 {
		t.Errorf("afii10017: unicode %04X", r)
	}
}

func TestType1(t *testing.T) {
	psFont := &type1.Font{
		FontInfo: &type1.FontInfo{
			FontName:   "Test-Bold",
			FullName:   "Test Bold",
			FamilyName: "Test",
			Weight:     "Bold",
			FontMatrix: matrix.Matrix{0.0005, 0, 0, 0.0005, 0, 0},
		},
		Outlines: &type1.Outlines{
			Private:  &type1.PrivateDict{},
			Glyphs:   map[string]*type1.Glyph{},
			Encoding: psenc.StandardEncoding[:],
		},
	}
	glyphs := []struct {
		name  string
		width float64 // in font units, 2000 per em
	}{
		{".notdef", 1000},
		{"A", 1300},
		{"afii10017", 1400},
		{"uni0394", 1500},
		{"zero.tf", 1200},
	}
	for _, gl := range glyphs {
		g := psFont.NewGlyph(gl.name, gl.width)
		g.MoveTo(0, 0)
		g.LineTo(gl.width, 0)
		g.LineTo(gl.width/2, 1400)
		g.ClosePath()
	}

	fname := filepath.Join(t.TempDir(), "test.pfa")
	fd, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	err = psFont.Write(fd, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := fd.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	if f.FamilyName != "Test" {
		t.Errorf("family name %q", f.FamilyName)
	}
	if len(f.Masters()) != 1 || f.Masters()[0].Name != "Bold" {
		t.Fatalf("unexpected masters %v", f.Masters())
	}
	id := f.Masters()[0].ID

	cases := []struct {
		name    string
		width   float64
		unicode rune // 0 for none
	}{
		{".notdef", 500, 0},
		{"A", 650, 'A'},
		{"afii10017", 700, 0x0410},
		{"uni0394", 750, 0x0394},
		{"zero.tf", 600, '0'},
	}
	for _, c := range cases {
		g := f.Glyph(c.name)
		if g == nil {
			t.Errorf("glyph %q missing", c.name)
			continue
		}
		if w := g.Layer(id).Width(); math.Abs(w-c.width) > 1e-6 {
			t.Errorf("%s: width %g, want %g", c.name, w, c.width)
		}
		r, ok := g.Unicode()
		if c.unicode == 0 {
			if ok {
				t.Errorf("%s: unexpected code point U+%04X", c.name, r)
			}
		} else if !ok || r != c.unicode {
			t.Errorf("%s: code point U+%04X, want U+%04X", c.name, r, c.unicode)
		}
	}
	if n := f.NumGlyphs(); n != len(cases) {
		t.Errorf("%d glyphs, want %d", n, len(cases))
	}
}
