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

// Command genpdf generates reference images for the chart scenarios.
// For every scenario it writes a PDF, renders the PDF to PNG using
// Ghostscript, and writes the output of the built-in rasteriser next to
// it for visual comparison.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/chart/paint"
	"seehuhn.de/go/chart/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	rd := paint.NewRenderer(nil)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			name := category + "_" + s.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			gsPath := filepath.Join(refDir, name+"_gs.png")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(&s, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, gsPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePNG(rd, &s, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(s *testcases.Scenario, pdfPath string) error {
	f, err := s.Frame(nil)
	if err != nil {
		return err
	}

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(s.Width),
		URy: float64(s.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	err = paint.DrawPDF(page, f, nil)
	if cerr := page.Close(); err == nil {
		err = cerr
	}
	return err
}

func generatePNG(rd *paint.Renderer, s *testcases.Scenario, pngPath string) error {
	f, err := s.Frame(nil)
	if err != nil {
		return err
	}
	img, err := rd.Image(f)
	if err != nil {
		return err
	}

	out, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=png16m: 24-bit colour
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
