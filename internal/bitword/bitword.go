// Package bitword provides single-word bit manipulation for the allocator
// cascade. Every allocator node keeps its state in one unsigned word, bit i
// set meaning unit i is free. The helpers are generic over the word type so
// the same primitives serve the 16-bit nodes and any wider word a caller
// brings. Positions are bit indices from the least significant end; ranges
// are half-open. Out-of-range positions panic: the allocators treat a bad
// position as a caller bug and fail fast.
package bitword

import (
	"fmt"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Width returns the number of bits in T.
func Width[T constraints.Unsigned]() int {
	return int(unsafe.Sizeof(T(0))) * 8
}

// Get reports whether bit pos of w is set.
func Get[T constraints.Unsigned](w T, pos int) bool {
	checkBit[T](pos)
	return w>>pos&1 != 0
}

// Set returns w with bit pos set when v is true and cleared when v is false.
func Set[T constraints.Unsigned](w T, pos int, v bool) T {
	checkBit[T](pos)
	if v {
		return w | T(1)<<pos
	}
	return w &^ (T(1) << pos)
}

// Range returns bits [start, end) of w, shifted down to bit zero.
//
// Example:
//
//	Range(uint16(0b1011_0000), 4, 8) = 0b1011
func Range[T constraints.Unsigned](w T, start, end int) T {
	checkRange[T](start, end)
	return w >> start & mask[T](end-start)
}

// SetRange returns w with bits [start, end) replaced by the low end-start
// bits of v.
//
// Example:
//
//	SetRange(uint16(0), 4, 8, 0b1011) = 0b1011_0000
func SetRange[T constraints.Unsigned](w T, start, end int, v T) T {
	checkRange[T](start, end)
	m := mask[T](end-start) << start
	return w&^m | v<<start&m
}

// MSB returns the position of the highest set bit of w. It panics when w is
// zero: the allocators only ask for the highest bit of words already known
// to be nonzero.
//
// Implementation: math/bits, which the compiler lowers to the native
// bit-scan instruction on every platform that has one. msbShift is the
// portable shift-and-count reference; the package tests prove the two
// equivalent over the entire nonzero 16-bit input space.
func MSB[T constraints.Unsigned](w T) int {
	if w == 0 {
		panic("bitword: MSB of zero word")
	}
	return bits.Len64(uint64(w)) - 1
}

// msbShift is the portable reference implementation of MSB.
func msbShift[T constraints.Unsigned](w T) int {
	if w == 0 {
		panic("bitword: MSB of zero word")
	}
	pos := 0
	for w > 1 {
		w >>= 1
		pos++
	}
	return pos
}

// mask returns a word with the low n bits set. n may equal the word width,
// in which case the shift wraps to zero and the subtraction yields all ones.
func mask[T constraints.Unsigned](n int) T {
	return T(1)<<n - 1
}

func checkBit[T constraints.Unsigned](pos int) {
	if pos < 0 || pos >= Width[T]() {
		panic(fmt.Sprintf("bitword: bit index %d out of range for %d-bit word", pos, Width[T]()))
	}
}

func checkRange[T constraints.Unsigned](start, end int) {
	if start < 0 || start > end || end > Width[T]() {
		panic(fmt.Sprintf("bitword: invalid bit range [%d,%d) for %d-bit word", start, end, Width[T]()))
	}
}
