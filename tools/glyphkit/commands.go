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

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/glyphkit/afii"
	"seehuhn.de/go/glyphkit/colorize"
	"seehuhn.de/go/glyphkit/italic"
	"seehuhn.de/go/glyphkit/metrics"
	"seehuhn.de/go/glyphkit/missing"
	"seehuhn.de/go/glyphkit/recolor"
	"seehuhn.de/go/glyphkit/rename"
	"seehuhn.de/go/glyphkit/variants"
)

var errNoSource = errors.New("no source font given")

func (a *app) renameCmd() *cobra.Command {
	var authorities []string
	var overrides string
	cmd := &cobra.Command{
		Use:   "rename-afii",
		Short: "replace AFII glyph names by human-readable names",
		Long: `Replace legacy AFII glyph names (for example "afii10017") by the names
given by the naming authorities, or by "uniXXXX" names if no authority
knows the character.  Names which would collide with existing glyphs are
reported and left unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := a.job
			override(cmd.Flags(), "authority", &job.Rename.Authorities, authorities)
			override(cmd.Flags(), "overrides", &job.Rename.Overrides, overrides)

			f, err := a.openFont()
			if err != nil {
				return err
			}
			glyphs, err := a.selection(f)
			if err != nil {
				return err
			}
			auth, err := job.Rename.Authority()
			if err != nil {
				return err
			}

			names := make([]string, len(glyphs))
			for i, g := range glyphs {
				names[i] = g.Name()
			}
			plan := rename.Compute(names, f, &afii.Resolver{Authority: auth})

			w := cmd.OutOrStdout()
			conflicts := make([]string, len(plan.Conflicts))
			for i, c := range plan.Conflicts {
				conflicts[i] = c.String()
			}
			printList(w, "conflicts", conflicts)
			if len(plan.Renames) == 0 {
				fmt.Fprintln(w, "no AFII glyphs to rename")
				return nil
			}
			fmt.Fprintf(w, "%d of %d resolvable glyphs can be renamed (* = readable name):\n",
				len(plan.Renames), plan.Resolvable())
			for _, line := range plan.Preview(previewLines) {
				fmt.Fprintf(w, "  %s\n", line)
			}

			err = a.proceed(cmd, "rename %d glyphs?", len(plan.Renames))
			if err != nil {
				return err
			}
			rep, err := rename.Apply(f, plan)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "renamed %d glyphs\n", len(rep.Renamed))
			printFailures(w, rep.Failed)
			return a.commit(cmd, f)
		},
	}
	cmd.Flags().StringSliceVar(&authorities, "authority", nil, "naming authorities to ask, in order (agl, unicode)")
	cmd.Flags().StringVar(&overrides, "overrides", "", "YAML `file` with explicit names for code points")
	return cmd
}

func (a *app) addMissingCmd() *cobra.Command {
	var src string
	cmd := &cobra.Command{
		Use:   "add-missing",
		Short: "add empty glyphs for names which exist only in a source font",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := a.job
			override(cmd.Flags(), "source", &job.AddMissing.Source, src)
			if job.AddMissing.Source == "" {
				return errNoSource
			}

			f, err := a.openFont()
			if err != nil {
				return err
			}
			source, err := readFont(job.AddMissing.Source)
			if err != nil {
				return err
			}
			plan, err := missing.Diff(f, source)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			conflicts := make([]string, len(plan.CaseConflicts))
			for i, c := range plan.CaseConflicts {
				conflicts[i] = c.String()
			}
			printList(w, "case conflicts", conflicts)
			if len(plan.Missing) == 0 {
				fmt.Fprintln(w, "no missing glyphs")
				return nil
			}
			printList(w, "missing glyphs", plan.Missing)

			err = a.proceed(cmd, "add %d glyphs?", len(plan.Missing))
			if err != nil {
				return err
			}
			rep, err := missing.Add(f, source, plan)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "added %d glyphs\n", len(rep.Added))
			printList(w, "skipped", rep.Skipped)
			printFailures(w, rep.Failed)
			return a.commit(cmd, f)
		},
	}
	cmd.Flags().StringVar(&src, "source", "", "font `file` to take glyph names from")
	return cmd
}

func (a *app) colorizeCmd() *cobra.Command {
	var c struct {
		paths, both, components, empty string
	}
	cmd := &cobra.Command{
		Use:   "colorize",
		Short: "set glyph labels according to the glyph content",
		Long: `Set the label of each selected glyph according to whether its layers
contain paths, components, both or nothing.  An empty label name clears
the label.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := a.job
			flags := cmd.Flags()
			override(flags, "paths-only", &job.Colorize.PathsOnly, c.paths)
			override(flags, "both", &job.Colorize.Both, c.both)
			override(flags, "components-only", &job.Colorize.ComponentsOnly, c.components)
			override(flags, "empty", &job.Colorize.Empty, c.empty)
			pal, err := job.Colorize.Palette()
			if err != nil {
				return err
			}

			f, err := a.openFont()
			if err != nil {
				return err
			}
			glyphs, err := a.selection(f)
			if err != nil {
				return err
			}
			err = a.proceed(cmd, "set labels of %d glyphs?", len(glyphs))
			if err != nil {
				return err
			}
			rep, err := colorize.Apply(glyphs, pal)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, content := range []colorize.Content{colorize.PathsOnly, colorize.Both, colorize.ComponentsOnly, colorize.Empty} {
				label := "(cleared)"
				if l, ok := pal[content]; ok {
					label = l.String()
				}
				fmt.Fprintf(w, "%-22s %5d  %s\n", content.String()+":", rep.Counts[content], label)
			}
			printFailures(w, rep.Failed)
			return a.commit(cmd, f)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&c.paths, "paths-only", "", "label for glyphs with paths only")
	flags.StringVar(&c.both, "both", "", "label for glyphs with paths and components")
	flags.StringVar(&c.components, "components-only", "", "label for glyphs with components only")
	flags.StringVar(&c.empty, "empty", "", "label for empty glyphs")
	return cmd
}

func (a *app) recolorCmd() *cobra.Command {
	var r struct {
		target, replacement string
		tolerance           float64
		masters             []string
	}
	cmd := &cobra.Command{
		Use:   "recolor",
		Short: "change the fill colour of shapes",
		Long: `Change the fill colour of all paths and components which have the
target colour.  Colours are given as "r,g,b" with values from 0 to 255.
If no target is given, the first fill colour found in the first selected
glyph is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := a.job
			flags := cmd.Flags()
			override(flags, "target", &job.Recolor.Target, r.target)
			override(flags, "replacement", &job.Recolor.Replacement, r.replacement)
			override(flags, "tolerance", &job.Recolor.Tolerance, r.tolerance)
			override(flags, "masters", &job.Recolor.Masters, r.masters)

			f, err := a.openFont()
			if err != nil {
				return err
			}
			glyphs, err := a.selection(f)
			if err != nil {
				return err
			}
			opts, err := job.Recolor.Options(f, glyphs)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "replacing %s by %s\n", opts.Target, opts.Replacement)
			err = a.proceed(cmd, "recolour shapes in %d glyphs?", len(glyphs))
			if err != nil {
				return err
			}
			rep, err := recolor.Apply(glyphs, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "recoloured %d shapes in %d glyphs\n", rep.Shapes, rep.Glyphs)
			return a.commit(cmd, f)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&r.target, "target", "", "colour to replace")
	flags.StringVar(&r.replacement, "replacement", "", "new colour")
	flags.Float64Var(&r.tolerance, "tolerance", recolor.DefaultTolerance, "maximal difference per colour channel, from 0 to 1")
	flags.StringSliceVar(&r.masters, "masters", nil, "masters to change (default: all)")
	return cmd
}

func (a *app) copyWidthsCmd() *cobra.Command {
	var src string
	cmd := &cobra.Command{
		Use:   "copy-widths",
		Short: "copy advance widths from another font",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := a.job
			override(cmd.Flags(), "source", &job.CopyWidths.Source, src)
			if job.CopyWidths.Source == "" {
				return errNoSource
			}

			f, err := a.openFont()
			if err != nil {
				return err
			}
			glyphs, err := a.selection(f)
			if err != nil {
				return err
			}
			source, err := readFont(job.CopyWidths.Source)
			if err != nil {
				return err
			}
			err = a.proceed(cmd, "copy widths of %d glyphs?", len(glyphs))
			if err != nil {
				return err
			}
			rep, err := metrics.CopyWidths(glyphs, source)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "copied %d widths\n", len(rep.Copied))
			printList(w, "not in source font", rep.Unmatched)
			printFailures(w, rep.Failed)
			return a.commit(cmd, f)
		},
	}
	cmd.Flags().StringVar(&src, "source", "", "font `file` to take widths from")
	return cmd
}

func (a *app) copySidebearingsCmd() *cobra.Command {
	var s struct {
		from        string
		to          []string
		left, right bool
		width       bool
	}
	cmd := &cobra.Command{
		Use:   "copy-sidebearings",
		Short: "copy sidebearings from one master to others",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := a.job
			flags := cmd.Flags()
			override(flags, "from", &job.CopySidebearings.Source, s.from)
			override(flags, "to", &job.CopySidebearings.Targets, s.to)
			override(flags, "left", &job.CopySidebearings.Left, s.left)
			override(flags, "right", &job.CopySidebearings.Right, s.right)
			override(flags, "width", &job.CopySidebearings.Width, s.width)

			f, err := a.openFont()
			if err != nil {
				return err
			}
			glyphs, err := a.selection(f)
			if err != nil {
				return err
			}
			opts, err := job.CopySidebearings.Options(f)
			if err != nil {
				return err
			}
			err = a.proceed(cmd, "copy metrics of %d glyphs?", len(glyphs))
			if err != nil {
				return err
			}
			rep, err := metrics.CopySidebearings(f, glyphs, opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "updated %d layers, skipped %d empty layers\n", rep.Layers, rep.Skipped)
			printFailures(w, rep.Failed)
			return a.commit(cmd, f)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&s.from, "from", "", "source master, by name or ID")
	flags.StringSliceVar(&s.to, "to", nil, "target masters (default: all others)")
	flags.BoolVar(&s.left, "left", true, "copy the left sidebearing")
	flags.BoolVar(&s.right, "right", true, "copy the right sidebearing")
	flags.BoolVar(&s.width, "width", false, "copy the advance width instead of the sidebearings")
	return cmd
}

func (a *app) italicizeCmd() *cobra.Command {
	var s italic.Settings
	var masters []string
	cmd := &cobra.Command{
		Use:   "italicize",
		Short: "condense and slant glyph outlines",
		Long: `Condense and slant the outlines of the selected glyphs.  The
sidebearings are restored afterwards, scaled by the sidebearing
percentage.  Individual settings for each master can be given in the
job file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := a.job
			flags := cmd.Flags()
			override(flags, "condense", &job.Italicize.Condense, s.Condense)
			override(flags, "slant", &job.Italicize.Slant, s.Slant)
			override(flags, "sidebearing", &job.Italicize.Sidebearing, s.Sidebearing)
			override(flags, "masters", &job.Italicize.Masters, masters)

			f, err := a.openFont()
			if err != nil {
				return err
			}
			glyphs, err := a.selection(f)
			if err != nil {
				return err
			}
			opts, err := job.Italicize.Options(f)
			if err != nil {
				return err
			}
			err = a.proceed(cmd, "transform %d glyphs?", len(glyphs))
			if err != nil {
				return err
			}
			rep, err := italic.Apply(glyphs, opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "transformed %d layers\n", rep.Layers)
			printFailures(w, rep.Failed)
			return a.commit(cmd, f)
		},
	}
	def := italic.DefaultSettings()
	flags := cmd.Flags()
	flags.Float64Var(&s.Condense, "condense", def.Condense, "horizontal scale in percent")
	flags.Float64Var(&s.Slant, "slant", def.Slant, "slant angle in degrees")
	flags.Float64Var(&s.Sidebearing, "sidebearing", def.Sidebearing, "sidebearing scale in percent")
	flags.StringSliceVar(&masters, "masters", nil, "masters to transform (default: all)")
	return cmd
}

func (a *app) numberVariantsCmd() *cobra.Command {
	var suffixes []string
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "number-variants",
		Short: "create figure variants built from components",
		Long: `Create glyphs like "zero.tf" or "seven.osf" for the figures zero to
nine.  Each new glyph consists of a single component referencing the
figure.  The standard suffixes are ` + strings.Join(variants.StandardSuffixes, ", ") + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job := a.job
			override(cmd.Flags(), "suffixes", &job.NumberVariants.Suffixes, suffixes)
			override(cmd.Flags(), "overwrite", &job.NumberVariants.Overwrite, overwrite)

			f, err := a.openFont()
			if err != nil {
				return err
			}
			opts := job.NumberVariants.Options()
			err = a.proceed(cmd, "create figure variants for suffixes %s?", strings.Join(opts.Suffixes, ", "))
			if err != nil {
				return err
			}
			rep, err := variants.Create(f, opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printList(w, "created", rep.Created)
			printList(w, "already present", rep.Skipped)
			printList(w, "missing figures", rep.MissingBases)
			printFailures(w, rep.Failed)
			return a.commit(cmd, f)
		},
	}
	cmd.Flags().StringSliceVar(&suffixes, "suffixes", nil, "suffixes of the new glyphs, for example tf,osf,ss01")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace existing glyphs")
	return cmd
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <font file>",
		Short: "convert a font file into a glyph-set document",
		Long: `Read a .glyphs, .ufo, .ttf, .otf, Type 1 or AFM file and write its glyphs
as a glyph-set document.  The default output file name is the input file
name with the extension replaced by .yaml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			f, err := readFont(in)
			if err != nil {
				return err
			}
			if a.job.Output == "" {
				base := strings.TrimSuffix(filepath.Clean(in), filepath.Ext(in))
				a.job.Output = base + ".yaml"
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d glyphs, %d masters\n", f.FamilyName, f.NumGlyphs(), len(f.Masters()))
			return a.commit(cmd, f)
		},
	}
}

func (a *app) resolveCmd() *cobra.Command {
	var authorities []string
	cmd := &cobra.Command{
		Use:   "resolve <glyph name>...",
		Short: "show the replacement names for AFII glyph names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job := a.job
			override(cmd.Flags(), "authority", &job.Rename.Authorities, authorities)
			auth, err := job.Rename.Authority()
			if err != nil {
				return err
			}
			res := &afii.Resolver{Authority: auth}

			w := cmd.OutOrStdout()
			for _, name := range args {
				r := res.Resolve(name)
				if !r.OK() {
					fmt.Fprintf(w, "%s: %s\n", name, r.Kind)
					continue
				}
				fmt.Fprintf(w, "%s -> %s (U+%04X, %s)\n", name, r.Name, r.Code, r.Kind)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&authorities, "authority", nil, "naming authorities to ask, in order (agl, unicode)")
	return cmd
}
