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

// Glyphkit applies batch transformations to glyph-set documents.
//
// Each command loads a document, changes the selected glyphs and writes
// the result back.  Options can be given on the command line or in a job
// file (--config); command line flags take precedence.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"seehuhn.de/go/glyphkit"
	"seehuhn.de/go/glyphkit/config"
	"seehuhn.de/go/glyphkit/tools/internal/buildinfo"
	"seehuhn.de/go/glyphkit/tools/internal/profile"
)

// options holds the flags shared by all commands.
type options struct {
	font   string
	output string
	glyphs []string
	all    bool
	config string

	yes     bool
	dryRun  bool
	verbose bool

	cpuprofile string
	memprofile string
}

type app struct {
	opts   options
	job    *config.Job
	logger *zap.Logger
	stop   func()

	// isTerminal reports whether confirmation prompts can be shown.
	isTerminal func() bool
}

func newApp() *app {
	return &app{
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "glyphkit",
		Short:         "batch transformations for font glyph sets",
		Version:       buildinfo.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `glyphkit applies batch transformations to glyph-set documents.

A glyph-set document is a YAML file holding the glyphs of a font.  Use
"glyphkit import" to create one from a .glyphs, .ufo, .ttf, .otf, Type 1
or AFM file.  All other commands read the document given by --font and
write the result to --output (default: overwrite --font).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.opts.font, "font", "f", "", "glyph-set document to operate on")
	pf.StringVarP(&a.opts.output, "output", "o", "", "where to write the result (default: overwrite --font)")
	pf.StringSliceVar(&a.opts.glyphs, "glyphs", nil, "comma-separated list of glyphs to operate on")
	pf.BoolVar(&a.opts.all, "all", false, "operate on all glyphs")
	pf.StringVar(&a.opts.config, "config", "", "read options from a job `file`")
	pf.BoolVarP(&a.opts.yes, "yes", "y", false, "do not ask for confirmation")
	pf.BoolVarP(&a.opts.dryRun, "dry-run", "n", false, "report what would be done, without writing anything")
	pf.BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.opts.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	pf.StringVar(&a.opts.memprofile, "memprofile", "", "write memory profile to `file`")

	root.AddCommand(
		a.renameCmd(),
		a.addMissingCmd(),
		a.colorizeCmd(),
		a.recolorCmd(),
		a.copyWidthsCmd(),
		a.copySidebearingsCmd(),
		a.italicizeCmd(),
		a.numberVariantsCmd(),
		a.importCmd(),
		a.resolveCmd(),
	)
	return root
}

// setup initialises logging and profiling, and reads the job file.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := zap.NewProductionConfig()
	if a.opts.verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	glyphkit.SetLogger(logger)

	a.stop, err = profile.Start(a.opts.cpuprofile, a.opts.memprofile, logger)
	if err != nil {
		return err
	}

	job := config.Default()
	if a.opts.config != "" {
		job, err = config.Load(a.opts.config)
		if err != nil {
			return err
		}
		logger.Debug("job file loaded", zap.String("file", a.opts.config))
	}
	flags := cmd.Flags()
	override(flags, "font", &job.Font, a.opts.font)
	override(flags, "output", &job.Output, a.opts.output)
	override(flags, "glyphs", &job.Glyphs, a.opts.glyphs)
	override(flags, "all", &job.All, a.opts.all)
	a.job = job
	return nil
}

// close stops profiling and flushes the log.
func (a *app) close() {
	if a.stop != nil {
		a.stop()
		a.stop = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
		glyphkit.SetLogger(nil)
	}
}

func main() {
	a := newApp()
	err := a.rootCmd().Execute()
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "glyphkit:", err)
		os.Exit(1)
	}
}
