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

import (
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PathConsumer receives path segments.  Each segment starts at the end
// point of the previous one.
type PathConsumer interface {
	LineTo(x, y float64)
	QuadTo(x1, y1, x2, y2 float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
}

// PathBuilder is a PathConsumer which appends all segments to a
// [path.Data].
type PathBuilder struct {
	Data *path.Data
}

var _ PathConsumer = (*PathBuilder)(nil)

// NewPathBuilder returns a PathBuilder writing into a new, empty path.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{Data: &path.Data{}}
}

// MoveTo starts a new subpath at (x, y).
func (b *PathBuilder) MoveTo(x, y float64) {
	b.Data = b.Data.MoveTo(vec.Vec2{X: x, Y: y})
}

// LineTo implements the [PathConsumer] interface.
func (b *PathBuilder) LineTo(x, y float64) {
	b.Data = b.Data.LineTo(vec.Vec2{X: x, Y: y})
}

// QuadTo implements the [PathConsumer] interface.
func (b *PathBuilder) QuadTo(x1, y1, x2, y2 float64) {
	b.Data = b.Data.QuadTo(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2})
}

// CurveTo implements the [PathConsumer] interface.
func (b *PathBuilder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	b.Data = b.Data.CubeTo(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, vec.Vec2{X: x3, Y: y3})
}

// Close closes the current subpath.
func (b *PathBuilder) Close() {
	b.Data = b.Data.Close()
}

// VectorConsumer is a PathConsumer which feeds all segments into a
// scanline rasterizer from golang.org/x/image/vector.
type VectorConsumer struct {
	R *vector.Rasterizer
}

var _ PathConsumer = VectorConsumer{}

// MoveTo starts a new subpath at (x, y).
func (v VectorConsumer) MoveTo(x, y float64) {
	v.R.MoveTo(float32(x), float32(y))
}

// LineTo implements the [PathConsumer] interface.
func (v VectorConsumer) LineTo(x, y float64) {
	v.R.LineTo(float32(x), float32(y))
}

// QuadTo implements the [PathConsumer] interface.
func (v VectorConsumer) QuadTo(x1, y1, x2, y2 float64) {
	v.R.QuadTo(float32(x1), float32(y1), float32(x2), float32(y2))
}

// CurveTo implements the [PathConsumer] interface.
func (v VectorConsumer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	v.R.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
}

// Close closes the current subpath.
func (v VectorConsumer) Close() {
	v.R.ClosePath()
}
