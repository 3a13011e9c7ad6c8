// Package hashcode provides cheap value hashing for games: anywhere a
// random-looking but constant value derived from another value is needed.
// The classic use is variegated tilesets — hash a tile's cell coordinate
// and use the result to pick among visual variants, so the same tile
// always renders the same variant without storing anything.
//
// Hashes are computed with xxhash, so a given input produces the same
// value across runs and platforms. They are not cryptographic.
package hashcode

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/gamekit/grids"
)

// Bytes hashes a byte slice.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// String hashes a string.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Ints hashes a sequence of ints. Order matters: Ints(1, 2) and Ints(2, 1)
// hash differently, as do Ints(1) and Ints(1, 0).
func Ints(vs ...int) uint64 {
	var d xxhash.Digest
	d.Reset()
	var buf [8]byte
	for _, v := range vs {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		d.Write(buf[:])
	}
	return d.Sum64()
}

// Point hashes a grid coordinate. Handy as a per-cell variant selector.
func Point(p grids.Point) uint64 {
	return Ints(p.X, p.Y)
}
