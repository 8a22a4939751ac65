// Package bitmap provides a set-of-integers view over value arrays. It is
// used to compress arrays of ascending integers into range fragments when
// building command-line arguments.
package bitmap

import (
	"strconv"

	"github.com/cockroachdb/errors"
	kbitmap "github.com/kelindar/bitmap"

	"github.com/marieof9/libvirt/value"
)

var errNotBitmap = errors.New("array is not representable as a bitmap")

// Bitmap is a read-only set of non-negative integers derived from a value
// array.
type Bitmap struct {
	bits     kbitmap.Bitmap
	min, max uint32
}

// FromArray derives a bitmap from a. It reports false when a is empty or
// when any element is not a non-negative integer token strictly greater
// than the previous one; the caller is expected to fall back to plain
// per-element iteration in that case.
func FromArray(a value.Array) (*Bitmap, bool) {
	var b Bitmap
	var n int

	err := a.Iterate(func(i int, v value.Value) error {
		if v.Type() != value.TypeNumber {
			return errNotBitmap
		}

		x, err := strconv.ParseUint(value.AsNumber(v), 10, 32)
		if err != nil {
			return errNotBitmap
		}

		u := uint32(x)
		if n > 0 && u <= b.max {
			return errNotBitmap
		}

		b.bits.Set(u)
		if n == 0 {
			b.min = u
		}
		b.max = u
		n++
		return nil
	})
	if err != nil || n == 0 {
		return nil, false
	}

	return &b, true
}

// Contains reports whether x is part of the set.
func (b *Bitmap) Contains(x uint32) bool {
	return b.bits.Contains(x)
}

// Runs calls fn once for every maximal run of consecutive integers in the
// set, in ascending order. first and last are inclusive bounds; a
// singleton run has first == last.
func (b *Bitmap) Runs(fn func(first, last uint32)) {
	first := b.min
	prev := b.min

	for x := uint64(b.min) + 1; x <= uint64(b.max); x++ {
		if !b.bits.Contains(uint32(x)) {
			continue
		}

		if uint64(prev)+1 != x {
			fn(first, prev)
			first = uint32(x)
		}
		prev = uint32(x)
	}

	fn(first, prev)
}
