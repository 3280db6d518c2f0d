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
	"math"
	"testing"
)

// dirtyPool hands out arrays filled with garbage, and counts how arrays
// move in and out of the pool.
type dirtyPool[T any] struct {
	fill       T
	gets, puts int
}

func (p *dirtyPool[T]) Get(n int) []T {
	p.gets++
	a := make([]T, n)
	for i := range a {
		a[i] = p.fill
	}
	return a
}

func (p *dirtyPool[T]) Widen(a []T, used, n int) []T {
	res := p.Get(n)
	copy(res, a[:used])
	return res
}

func (p *dirtyPool[T]) Put(a []T) {
	p.puts++
}

func TestBucketFor(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 0},
		{1, 0},
		{16, 0},
		{17, 1},
		{32, 1},
		{33, 2},
		{8192, 9},
	}
	for _, tc := range cases {
		if got := bucketFor(tc.n); got != tc.want {
			t.Errorf("bucketFor(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestArrayCache(t *testing.T) {
	var c ArrayCache[float64]

	a := c.Get(10)
	if len(a) != 16 {
		t.Errorf("len(Get(10)) = %d, want 16", len(a))
	}
	a = c.Get(100)
	if len(a) != 128 {
		t.Errorf("len(Get(100)) = %d, want 128", len(a))
	}
	for i := range a {
		a[i] = float64(i)
	}

	b := c.Widen(a, 50, 200)
	if len(b) < 200 {
		t.Fatalf("len(Widen(...)) = %d, want at least 200", len(b))
	}
	for i := range 50 {
		if b[i] != float64(i) {
			t.Fatalf("b[%d] = %g, want %d", i, b[i], i)
		}
	}
	c.Put(a)
	c.Put(b)
	c.Put(make([]float64, 100)) // not a size class, dropped
}

func TestArrayCacheAllocs(t *testing.T) {
	var c ArrayCache[float64]
	c.Put(c.Get(100))

	allocs := testing.AllocsPerRun(100, func() {
		a := c.Get(100)
		a[0] = 1
		c.Put(a)
	})
	if allocs != 0 {
		t.Errorf("Get/Put cycle: %g allocations, want 0", allocs)
	}
}

func TestArrayRef(t *testing.T) {
	pool := &dirtyPool[float64]{fill: math.NaN()}
	r := newArrayRef[float64](pool, 4, "test")

	a := r.initial
	copy(a, []float64{1, 2, 3, 4})

	a = r.widen(a, 4, 3) // fits already
	if len(a) != 4 || pool.gets != 0 {
		t.Fatalf("unexpected widen")
	}

	a = r.widen(a, 4, 5)
	if len(a) != 8 {
		t.Errorf("len = %d, want 8", len(a))
	}
	diff(t, []float64{1, 2, 3, 4}, a[:4])
	if pool.puts != 0 {
		t.Error("initial array returned to pool")
	}

	a = r.widen(a, 8, 9)
	if pool.gets != 2 || pool.puts != 1 {
		t.Errorf("gets = %d, puts = %d, want 2, 1", pool.gets, pool.puts)
	}

	a = r.put(a)
	if pool.puts != 2 || !r.isInitial(a) {
		t.Error("put did not restore the initial array")
	}
	r.put(a)
	if pool.puts != 2 {
		t.Error("initial array returned to pool")
	}
}
