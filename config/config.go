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

// Package config reads job files.
//
// A job file is a YAML document which holds the options of every glyphkit
// operation.  Values which are not given in the file keep the defaults
// from [Default].  Command line flags override values from the job file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/glyphkit/colorize"
	"seehuhn.de/go/glyphkit/glyphset"
	"seehuhn.de/go/glyphkit/italic"
	"seehuhn.de/go/glyphkit/metrics"
	"seehuhn.de/go/glyphkit/naming"
	"seehuhn.de/go/glyphkit/recolor"
	"seehuhn.de/go/glyphkit/variants"
)

// Job holds the options for all operations.
type Job struct {
	// Font is the glyph set document to operate on.
	Font string `yaml:"font"`

	// Output is where the modified document is written.  If empty, Font
	// is overwritten.
	Output string `yaml:"output"`

	// Glyphs lists the selected glyphs.  If All is set, all glyphs of the
	// font are selected instead.
	Glyphs []string `yaml:"glyphs"`
	All    bool     `yaml:"all"`

	Rename           Rename           `yaml:"renameAfii"`
	AddMissing       SourceFont       `yaml:"addMissing"`
	Colorize         Colorize         `yaml:"colorize"`
	Recolor          Recolor          `yaml:"recolor"`
	CopyWidths       SourceFont       `yaml:"copyWidths"`
	CopySidebearings CopySidebearings `yaml:"copySidebearings"`
	Italicize        Italicize        `yaml:"italicize"`
	NumberVariants   NumberVariants   `yaml:"numberVariants"`
}

// Rename holds the options for renaming AFII glyphs.
type Rename struct {
	// Authorities lists the naming authorities to ask, in order.
	// Possible values are "agl" and "unicode".
	Authorities []string `yaml:"authorities"`

	// Overrides is an optional name table file which is consulted
	// before all other authorities.
	Overrides string `yaml:"overrides"`
}

// SourceFont names a font file to read glyph information from.
type SourceFont struct {
	Source string `yaml:"source"`
}

// Colorize maps content types to label names.  An empty label removes the
// glyph label.
type Colorize struct {
	PathsOnly      string `yaml:"pathsOnly"`
	Both           string `yaml:"both"`
	ComponentsOnly string `yaml:"componentsOnly"`
	Empty          string `yaml:"empty"`
}

// Recolor holds the options for recolouring shapes.  Colours are given as
// "r,g,b" with channel values from 0 to 255.  If Target is empty, the
// first fill colour of the first selected glyph is used.
type Recolor struct {
	Target      string   `yaml:"target"`
	Replacement string   `yaml:"replacement"`
	Tolerance   float64  `yaml:"tolerance"`
	Masters     []string `yaml:"masters"`
}

// CopySidebearings holds the options for copying sidebearings between
// masters.  Masters are given by name or ID.
type CopySidebearings struct {
	Source  string   `yaml:"source"`
	Targets []string `yaml:"targets"`
	Left    bool     `yaml:"left"`
	Right   bool     `yaml:"right"`
	Width   bool     `yaml:"width"`
}

// Italicize holds the options for condensing and slanting.  Masters are
// given by name or ID.
type Italicize struct {
	italic.Settings `yaml:",inline"`

	Masters   []string                   `yaml:"masters"`
	PerMaster map[string]italic.Settings `yaml:"perMaster"`
}

// NumberVariants holds the options for creating figure variants.
type NumberVariants struct {
	Suffixes  []string `yaml:"suffixes"`
	Overwrite bool     `yaml:"overwrite"`
}

// Default returns a job with default values for all options.
func Default() *Job {
	return &Job{
		Rename: Rename{
			Authorities: []string{"unicode", "agl"},
		},
		Colorize: Colorize{
			PathsOnly: glyphset.DarkGreen.String(),
			Both:      glyphset.Yellow.String(),
		},
		Recolor: Recolor{
			Tolerance: recolor.DefaultTolerance,
		},
		CopySidebearings: CopySidebearings{
			Left:  true,
			Right: true,
		},
		Italicize: Italicize{
			Settings: italic.DefaultSettings(),
		},
	}
}

// Load reads a job file.  Missing values are taken from [Default].
func Load(fname string) (*Job, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	job, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return job, nil
}

// Read decodes a job file.  Unknown keys are rejected.
func Read(r io.Reader) (*Job, error) {
	job := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(job)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return job, nil
}

// Selection returns the glyphs selected by the job.
func (job *Job) Selection(f *glyphset.Font) ([]*glyphset.Glyph, error) {
	if job.All {
		return f.Glyphs(), nil
	}
	return f.Select(job.Glyphs)
}

// Authority builds the naming authority for renaming AFII glyphs.
// It returns nil if no authority is configured.
func (r *Rename) Authority() (naming.Authority, error) {
	var chain naming.Chain
	if r.Overrides != "" {
		fd, err := os.Open(r.Overrides)
		if err != nil {
			return nil, err
		}
		table, err := naming.ReadTable(fd)
		fd.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Overrides, err)
		}
		chain = append(chain, table)
	}
	for _, name := range r.Authorities {
		switch name {
		case "agl":
			chain = append(chain, naming.AGL{})
		case "unicode":
			chain = append(chain, naming.UnicodeNames{})
		default:
			return nil, fmt.Errorf("unknown naming authority %q", name)
		}
	}
	if len(chain) == 0 {
		return nil, nil
	}
	return chain, nil
}

// Palette converts the label names to a palette.
func (c *Colorize) Palette() (colorize.Palette, error) {
	pal := colorize.Palette{}
	for content, name := range map[colorize.Content]string{
		colorize.PathsOnly:      c.PathsOnly,
		colorize.Both:           c.Both,
		colorize.ComponentsOnly: c.ComponentsOnly,
		colorize.Empty:          c.Empty,
	} {
		if name == "" {
			continue
		}
		lbl, err := glyphset.ParseLabel(name)
		if err != nil {
			return nil, fmt.Errorf("colorize %s: %w", content, err)
		}
		pal[content] = lbl
	}
	return pal, nil
}

// ResolveMaster finds a master by ID or, failing that, by name.
func ResolveMaster(f *glyphset.Font, key string) (*glyphset.Master, error) {
	if m := f.Master(key); m != nil {
		return m, nil
	}
	if m := f.MasterByName(key); m != nil {
		return m, nil
	}
	return nil, fmt.Errorf("unknown master %q", key)
}

// ResolveMasters maps a list of master names or IDs to master IDs.
func ResolveMasters(f *glyphset.Font, keys []string) ([]string, error) {
	var ids []string
	for _, key := range keys {
		m, err := ResolveMaster(f, key)
		if err != nil {
			return nil, err
		}
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// Options converts the recolour settings.  If no target colour is
// configured, it is picked from the first layer of the first glyph.
func (r *Recolor) Options(f *glyphset.Font, glyphs []*glyphset.Glyph) (*recolor.Options, error) {
	opts := &recolor.Options{Tolerance: r.Tolerance}

	if r.Replacement == "" {
		return nil, errors.New("recolor: no replacement colour")
	}
	col, err := recolor.ParseRGB(r.Replacement)
	if err != nil {
		return nil, err
	}
	opts.Replacement = col

	if r.Target != "" {
		col, err = recolor.ParseRGB(r.Target)
		if err != nil {
			return nil, err
		}
		opts.Target = col
	} else {
		if len(glyphs) == 0 || len(glyphs[0].Layers()) == 0 {
			return nil, recolor.ErrNoColor
		}
		col, err = recolor.PickTarget(glyphs[0].Layers()[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", glyphs[0].Name(), err)
		}
		opts.Target = col
	}

	opts.Masters, err = ResolveMasters(f, r.Masters)
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// Options converts the sidebearing settings.
func (c *CopySidebearings) Options(f *glyphset.Font) (*metrics.SidebearingOptions, error) {
	if c.Source == "" {
		return nil, errors.New("copySidebearings: no source master")
	}
	src, err := ResolveMaster(f, c.Source)
	if err != nil {
		return nil, err
	}
	targets, err := ResolveMasters(f, c.Targets)
	if err != nil {
		return nil, err
	}
	return &metrics.SidebearingOptions{
		Source:  src.ID,
		Targets: targets,
		Left:    c.Left,
		Right:   c.Right,
		Width:   c.Width,
	}, nil
}

// Options converts the italic settings.
func (it *Italicize) Options(f *glyphset.Font) (*italic.Options, error) {
	masters, err := ResolveMasters(f, it.Masters)
	if err != nil {
		return nil, err
	}
	opts := &italic.Options{
		Settings: it.Settings,
		Masters:  masters,
	}
	if len(it.PerMaster) > 0 {
		opts.PerMaster = make(map[string]italic.Settings, len(it.PerMaster))
		for key, s := range it.PerMaster {
			m, err := ResolveMaster(f, key)
			if err != nil {
				return nil, err
			}
			opts.PerMaster[m.ID] = s
		}
	}
	return opts, nil
}

// Options converts the figure variant settings.
func (n *NumberVariants) Options() *variants.Options {
	return &variants.Options{
		Suffixes:  n.Suffixes,
		Overwrite: n.Overwrite,
	}
}
