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
	"math/bits"
	"sync"
)

// ArrayPool hands out scratch arrays.
type ArrayPool[T any] interface {
	// Get returns an array of length at least n.  The contents of the
	// array are unspecified.
	Get(n int) []T

	// Widen returns an array of length at least n, which starts with the
	// first used elements of a.  The array a is not returned to the pool.
	Widen(a []T, used, n int) []T

	// Put returns an array to the pool.  The caller must not use the
	// array afterwards.
	Put(a []T)
}

const (
	minCacheBits = 4 // smallest size class holds 16 elements
	numBuckets   = 20
)

// ArrayCache is an [ArrayPool] which keeps arrays in power-of-two size
// classes.  Arrays larger than the largest size class are allocated on
// demand and never cached.
//
// ArrayCache is safe for concurrent use.  The zero value is ready to use.
type ArrayCache[T any] struct {
	buckets [numBuckets]sync.Pool

	// headers holds spare *[]T values, so that Put does not need to
	// allocate a new slice header for every array.
	headers sync.Pool
}

// bucketFor returns the index of the smallest size class which can hold n
// elements.
func bucketFor(n int) int {
	if n <= 1<<minCacheBits {
		return 0
	}
	return bits.Len(uint(n-1)) - minCacheBits
}

// Get implements the [ArrayPool] interface.
func (c *ArrayCache[T]) Get(n int) []T {
	b := bucketFor(n)
	if b >= numBuckets {
		return make([]T, n)
	}
	if p, ok := c.buckets[b].Get().(*[]T); ok {
		a := *p
		*p = nil
		c.headers.Put(p)
		return a
	}
	return make([]T, 1<<(b+minCacheBits))
}

// Widen implements the [ArrayPool] interface.
func (c *ArrayCache[T]) Widen(a []T, used, n int) []T {
	res := c.Get(n)
	copy(res, a[:used])
	return res
}

// Put implements the [ArrayPool] interface.
// Arrays which were not obtained from an ArrayCache are silently dropped.
func (c *ArrayCache[T]) Put(a []T) {
	size := cap(a)
	if size < 1<<minCacheBits || size&(size-1) != 0 {
		return
	}
	b := bucketFor(size)
	if b >= numBuckets {
		return
	}
	p, _ := c.headers.Get().(*[]T)
	if p == nil {
		p = new([]T)
	}
	*p = a[:size]
	c.buckets[b].Put(p)
}

var (
	defaultCoordCache ArrayCache[float64]
	defaultKindCache  ArrayCache[Kind]
	defaultIndexCache ArrayCache[int]
)

// arrayRef manages a growable array, which starts out as a dedicated
// initial array and is widened using a pool when needed.
type arrayRef[T any] struct {
	pool    ArrayPool[T]
	initial []T
	name    string
}

func newArrayRef[T any](pool ArrayPool[T], size int, name string) arrayRef[T] {
	return arrayRef[T]{
		pool:    pool,
		initial: make([]T, size),
		name:    name,
	}
}

// widen returns an array with room for at least n elements, which starts
// with the first used elements of a.  The array size at least doubles.
// If a came from the pool, it is returned there.
func (r *arrayRef[T]) widen(a []T, used, n int) []T {
	if n <= len(a) {
		return a
	}
	n = max(n, 2*len(a))
	Logger().Debug("widen array",
		"array", r.name,
		"used", used,
		"from", len(a),
		"to", n)
	res := r.pool.Widen(a, used, n)
	r.put(a)
	return res
}

// put returns a to the pool, unless it is the initial array.
func (r *arrayRef[T]) put(a []T) []T {
	if !r.isInitial(a) {
		r.pool.Put(a)
	}
	return r.initial
}

func (r *arrayRef[T]) isInitial(a []T) bool {
	return len(a) > 0 && len(r.initial) > 0 && &a[0] == &r.initial[0]
}
