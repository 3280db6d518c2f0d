// seehuhn.de/go/subdiv - Bézier subdivision for 2D rendering
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

// Command genpdf draws the test curves together with their subdivision.
// It creates one PDF per test case and, if Ghostscript is installed,
// renders it to a PNG.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/subdiv"
	"seehuhn.de/go/subdiv/testcases"
)

const outDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	_, err := exec.LookPath("gs")
	havePNG := err == nil
	if !havePNG {
		slog.Warn("ghostscript not found, skipping PNG output")
	}

	sp := subdiv.NewSplitter()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			if err := generatePDF(sp, tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if havePNG {
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
	slog.Info("previews written", "dir", outDir)
}

func generatePDF(sp *subdiv.Splitter, tc testcases.TestCase, pdfPath string) error {
	w := float64(tc.Width)
	h := float64(tc.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// draw appends a path to the current path, converting quadratic
	// segments to cubic ones (PDF doesn't support quadratic curves).
	draw := func(p path.Path) {
		var cur vec.Vec2
		for cmd, pts := range p {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdQuadTo:
				c1 := cur.Add(pts[0].Sub(cur).Mul(2.0 / 3.0))
				c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3.0))
				page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, pts[1].X, pts[1].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			}
			if len(pts) > 0 {
				cur = pts[len(pts)-1]
			}
		}
	}

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	clip := tc.ClipRect()
	page.SetFillColor(color.DeviceGray(0.9))
	page.Rectangle(clip.LLx, clip.LLy, clip.URx-clip.LLx, clip.URy-clip.LLy)
	page.Fill()

	kind := kindOf(tc)
	coords := tc.Coords()

	// the stroke, as wide as the test case specifies
	if tc.HalfWidth > 0 {
		page.SetStrokeColor(color.DeviceGray(0.75))
		page.SetLineWidth(2 * tc.HalfWidth)
		page.SetLineCap(graphics.LineCapButt)
		draw(tc.Path())
		page.Stroke()
	}

	// the pieces after subdivision, in alternating shades
	b := subdiv.NewPathBuilder()
	b.MoveTo(coords[0], coords[1])
	sp.SplitForStroke(b, kind, coords, tc.HalfWidth)
	pieces := splitPieces(b.Data)
	page.SetLineWidth(0.5)
	for i, piece := range pieces {
		page.SetStrokeColor(color.DeviceGray(0.4 * float64(i%2)))
		draw(piece.Path())
		page.Stroke()
	}

	// split points
	page.SetLineCap(graphics.LineCapRound)
	if len(pieces) > 1 {
		page.SetLineWidth(2)
		page.SetStrokeColor(color.DeviceGray(0))
		for _, piece := range pieces[1:] {
			p := piece.Pts[0]
			page.MoveTo(p.X, p.Y)
			page.LineTo(p.X, p.Y)
		}
		page.Stroke()
	}

	// clip crossings
	c := subdiv.Curve{Kind: kind}
	copy(c.Coords[:], coords)
	r := subdiv.NewClipRect(clip)
	ts := sp.Planner.ClipPoints(kind, coords, c.Outcode(r), r)
	if len(ts) > 0 {
		page.SetLineWidth(3)
		page.SetStrokeColor(color.DeviceGray(0.5))
		for _, t := range ts {
			p := c.Eval(t)
			page.MoveTo(p.X, p.Y)
			page.LineTo(p.X, p.Y)
		}
		page.Stroke()
	}

	return page.Close()
}

// splitPieces breaks a path consisting of one subpath into its segments.
func splitPieces(d *path.Data) []testcases.TestCase {
	var res []testcases.TestCase
	var cur vec.Vec2
	idx := 0
	for _, cmd := range d.Cmds {
		var n int
		switch cmd {
		case path.CmdMoveTo:
			cur = d.Coords[idx]
			idx++
			continue
		case path.CmdLineTo:
			n = 1
		case path.CmdQuadTo:
			n = 2
		case path.CmdCubeTo:
			n = 3
		default:
			continue
		}
		pts := append([]vec.Vec2{cur}, d.Coords[idx:idx+n]...)
		res = append(res, testcases.TestCase{Pts: pts})
		cur = pts[n]
		idx += n
	}
	return res
}

func kindOf(tc testcases.TestCase) subdiv.Kind {
	switch tc.Degree() {
	case 1:
		return subdiv.KindLine
	case 2:
		return subdiv.KindQuad
	default:
		return subdiv.KindCubic
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -r288: four pixels per point, the test curves are small
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r288",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
