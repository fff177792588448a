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
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/glyphset"
	"seehuhn.de/go/glyphkit/source"
)

var (
	errNotConfirmed = errors.New("aborted")
	errNeedYes      = errors.New("standard input is not a terminal, use --yes to confirm")
	errNoOutput     = errors.New("no output file given")
)

// previewLines is the number of planned changes shown before asking for
// confirmation.
const previewLines = 20

// override sets *dst to v if the named flag was given on the command line.
func override[T any](flags *pflag.FlagSet, name string, dst *T, v T) {
	if flags.Changed(name) {
		*dst = v
	}
}

// readFont reads a glyph-set document or, for other file types, imports a
// font file.
func readFont(path string) (*glyphset.Font, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return glyphset.Load(path)
	default:
		return source.Open(path)
	}
}

// openFont reads the font the command operates on.
func (a *app) openFont() (*glyphset.Font, error) {
	if a.job.Font == "" {
		return nil, glyphkit.ErrNoFont
	}
	return readFont(a.job.Font)
}

// selection returns the glyphs selected by --glyphs or --all.
func (a *app) selection(f *glyphset.Font) ([]*glyphset.Glyph, error) {
	glyphs, err := a.job.Selection(f)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("glyphs selected", zap.Int("count", len(glyphs)))
	return glyphs, nil
}

// confirm shows the question and waits for a yes/no answer.  With --yes no
// question is asked.
func (a *app) confirm(cmd *cobra.Command, question string) error {
	if a.opts.yes {
		return nil
	}
	if !a.isTerminal() {
		return errNeedYes
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	default:
		return errNotConfirmed
	}
}

// proceed asks for confirmation before a change is made.  In a dry run
// the change is made to the in-memory copy only, so no question is asked.
func (a *app) proceed(cmd *cobra.Command, format string, args ...any) error {
	if a.opts.dryRun {
		return nil
	}
	return a.confirm(cmd, fmt.Sprintf(format, args...))
}

// commit writes the modified font, unless --dry-run is given.
func (a *app) commit(cmd *cobra.Command, f *glyphset.Font) error {
	out := a.job.Output
	if out == "" {
		out = a.job.Font
	}
	if out == "" {
		return errNoOutput
	}
	switch strings.ToLower(filepath.Ext(out)) {
	case ".yaml", ".yml":
	default:
		return fmt.Errorf("%s: output must be a .yaml glyph-set document", out)
	}
	if a.opts.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "dry run, nothing written")
		return nil
	}
	if err := glyphset.Save(out, f); err != nil {
		return err
	}
	a.logger.Info("font written", zap.String("file", out), zap.Int("glyphs", f.NumGlyphs()))
	return nil
}

// printFailures lists per-item failures.
func printFailures(w io.Writer, failed []*glyphkit.ItemError) {
	if len(failed) == 0 {
		return
	}
	fmt.Fprintf(w, "%d failed:\n", len(failed))
	for _, err := range failed {
		fmt.Fprintf(w, "  %s\n", err)
	}
}

// printList prints a heading and up to previewLines items.
func printList(w io.Writer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", heading, len(items))
	for i, item := range items {
		if i == previewLines {
			fmt.Fprintf(w, "  ... and %d more\n", len(items)-previewLines)
			break
		}
		fmt.Fprintf(w, "  %s\n", item)
	}
}
