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

package subdiv

import "slices"

// Default values for the [Splitter] configuration.
const (
	DefaultMinSplitLength = 100
	DefaultClipPadding    = 1
)

// Splitter cuts curves into pieces and sends the pieces to a
// [PathConsumer].
//
// A Splitter is not safe for concurrent use.
type Splitter struct {
	// Planner computes the cut positions.
	Planner *Planner

	// MinLength is the minimal length of the control polygon (measured in
	// the taxicab metric) for a curve to be split at clip crossings.
	// Shorter curves are left to the caller.
	MinLength float64

	// ClipPadding is added on all sides of the clip rectangle before
	// crossings are computed.
	ClipPadding float64

	pieces []Curve
}

// NewSplitter returns a Splitter with default settings.
func NewSplitter() *Splitter {
	return &Splitter{
		Planner:     NewPlanner(),
		MinLength:   DefaultMinSplitLength,
		ClipPadding: DefaultClipPadding,
	}
}

// SplitAt cuts the curve given by kind and pts at the parameters ts, which
// must be increasing and lie in (0, 1).  The result holds len(ts)+1 curves,
// where each curve starts at the end point of the previous one.
// The returned slice is only valid until the next call to a Splitter
// method.
func (s *Splitter) SplitAt(kind Kind, pts []float64, ts []float64) []Curve {
	n := kind.NumCoords()
	s.pieces = slices.Grow(s.pieces[:0], len(ts)+1)

	var buf [16]float64
	copy(buf[:n], pts[:n])
	prev := 0.0
	for _, t := range ts {
		// The parameter is relative to the remaining right part.
		SubdivideAt((t-prev)/(1-prev), buf[:n], buf[:2*n], kind)
		s.pieces = s.appendPiece(kind, buf[:n])
		copy(buf[:n], buf[n:2*n])
		prev = t
	}
	s.pieces = s.appendPiece(kind, buf[:n])
	return s.pieces
}

func (s *Splitter) appendPiece(kind Kind, pts []float64) []Curve {
	c := Curve{Kind: kind}
	copy(c.Coords[:], pts)
	return append(s.pieces, c)
}

// SplitForStroke cuts a quadratic or cubic Bézier into pieces which can be
// offset by w on either side, see [Planner.SubdivPoints], and sends the
// pieces to out.  Lines and curves which collapse to a point are sent
// unchanged.  The start point of the curve is not sent.  The return value
// is the number of pieces.
func (s *Splitter) SplitForStroke(out PathConsumer, kind Kind, pts []float64, w float64) int {
	if kind == KindLine || isPointCurve(pts[:kind.NumCoords()]) {
		emit(out, kind, pts)
		return 1
	}
	ts := s.Planner.SubdivPoints(kind, pts, w)
	pieces := s.SplitAt(kind, pts, ts)
	for i := range pieces {
		emit(out, kind, pieces[i].Pts())
	}
	return len(pieces)
}

// SplitAtClip cuts the curve where it crosses the edges of clip, grown by
// s.ClipPadding, and sends the pieces to out.  The start point of the
// curve is not sent.
//
// If the curve lies inside the clip rectangle, is shorter than
// s.MinLength, or does not cross any edge, nothing is sent and false is
// returned.  In this case the caller must handle the curve itself.
func (s *Splitter) SplitAtClip(out PathConsumer, kind Kind, pts []float64, clip ClipRect) bool {
	pts = pts[:kind.NumCoords()]
	r := clip.Pad(s.ClipPadding)
	outcodeOR := r.OutcodeOR(pts)
	if outcodeOR == 0 {
		return false
	}
	if fastLen(kind, pts) <= s.MinLength {
		return false
	}

	ts := s.Planner.ClipPoints(kind, pts, outcodeOR, r)
	ts = ts[:filterOutNotInAB(ts, tMin, tMax)]
	ts = ts[:filterDuplicates(ts, eps)]
	if len(ts) == 0 {
		return false
	}

	pieces := s.SplitAt(kind, pts, ts)
	for i := range pieces {
		emit(out, kind, pieces[i].Pts())
	}
	return true
}

// emit sends the curve to out, omitting its start point.
func emit(out PathConsumer, kind Kind, pts []float64) {
	switch kind {
	case KindLine:
		out.LineTo(pts[2], pts[3])
	case KindQuad:
		out.QuadTo(pts[2], pts[3], pts[4], pts[5])
	case KindCubic:
		out.CurveTo(pts[2], pts[3], pts[4], pts[5], pts[6], pts[7])
	}
}
