// Command export writes the test curves, together with the computed
// subdivision and clip parameters, to JSON.  The output can be used to
// cross-check other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/subdiv"
	"seehuhn.de/go/subdiv/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	p := subdiv.NewPlanner()
	pa := subdiv.NewPlanner()
	pa.SubdivideAngle = true
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(p, pa, category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name         string        `json:"name"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	Path         []jsonSegment `json:"path"`
	HalfWidth    float64       `json:"half_width"`
	Clip         [4]float64    `json:"clip"`
	SubdivPoints []float64     `json:"subdiv_points,omitempty"`
	AnglePoints  []float64     `json:"angle_points,omitempty"`
	ClipPoints   []float64     `json:"clip_points,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(p, pa *subdiv.Planner, category string, tc testcases.TestCase) jsonTestCase {
	clip := tc.ClipRect()
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Width:     tc.Width,
		Height:    tc.Height,
		Path:      pathToJSON(tc.Path()),
		HalfWidth: tc.HalfWidth,
		Clip:      [4]float64{clip.LLx, clip.LLy, clip.URx, clip.URy},
	}

	coords := tc.Coords()
	var kind subdiv.Kind
	switch tc.Degree() {
	case 1:
		kind = subdiv.KindLine
	case 2:
		kind = subdiv.KindQuad
	default:
		kind = subdiv.KindCubic
	}

	if kind != subdiv.KindLine {
		jtc.SubdivPoints = slices.Clone(p.SubdivPoints(kind, coords, tc.HalfWidth))
		jtc.AnglePoints = slices.Clone(pa.SubdivPoints(kind, coords, tc.HalfWidth))
	}

	r := subdiv.NewClipRect(clip)
	jtc.ClipPoints = slices.Clone(p.ClipPoints(kind, coords, r.OutcodeOR(coords), r))
	return jtc
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
