// seehuhn.de/go/chart - gridlines and coordinate transforms for 2D charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Command chartrender draws a chart described by a TOML or YAML scene
// file and writes it as PNG or PDF.
package main

import (
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/paint"
	"seehuhn.de/go/chart/scene"
)

type options struct {
	output   string
	format   string
	width    int
	height   int
	noLabels bool
	verbose  bool
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "chartrender [scene.toml|scene.yaml]",
		Short: "Render a chart described by a scene file",
		Long: `chartrender reads a chart description in TOML or YAML format,
computes gridlines, labels and clipped data series, and writes the chart
as a PNG image or a PDF file.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0], logOut)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default: scene name with the format's extension)")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: png or pdf (default: from the output file name, else png)")
	flags.IntVar(&opts.width, "width", 0, "override the canvas width in pixels")
	flags.IntVar(&opts.height, "height", 0, "override the canvas height in pixels")
	flags.BoolVar(&opts.noLabels, "no-labels", false, "omit the tick labels")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log chart computations")
	return cmd
}

func run(opts *options, input string, logOut io.Writer) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	s, err := scene.Load(input)
	if err != nil {
		return err
	}
	if opts.width > 0 {
		s.Width = opts.width
	}
	if opts.height > 0 {
		s.Height = opts.height
	}

	format, output, err := outputFile(opts, input)
	if err != nil {
		return err
	}

	f, err := s.Frame(logger)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	if err := f.Recompute(); err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	style := paint.DefaultStyle()
	style.NoLabels = opts.noLabels

	logger.Info("rendering chart", "input", input, "output", output, "format", format)
	switch format {
	case "pdf":
		return writePDF(output, f, style)
	default:
		return writePNG(output, f, style)
	}
}

// outputFile works out the output format and file name.
func outputFile(opts *options, input string) (format, output string, err error) {
	format = strings.ToLower(opts.format)
	output = opts.output
	if format == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".pdf":
			format = "pdf"
		default:
			format = "png"
		}
	}
	if format != "png" && format != "pdf" {
		return "", "", fmt.Errorf("unknown output format %q", opts.format)
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}
	return format, output, nil
}

func writePNG(name string, f *chart.Frame, style *paint.Style) error {
	img, err := paint.NewRenderer(style).Image(f)
	if err != nil {
		return err
	}
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writePDF(name string, f *chart.Frame, style *paint.Style) error {
	w, h := f.Viewport()
	paper := &pdf.Rectangle{URx: float64(w), URy: float64(h)}
	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	err = paint.DrawPDF(page, f, style)
	if cerr := page.Close(); err == nil {
		err = cerr
	}
	return err
}
