// Package morton encodes and decodes Morton (Z-order) codes.
//
// A Morton code interleaves the bits of two or three unsigned coordinates into
// a single unsigned integer: bit k of the coordinate on axis a lands at bit
// k*dims+a of the code. Nearby coordinates produce nearby codes, which makes
// the codes useful as keys for spatial indexes and cache-friendly layouts.
//
// Every (dimensionality, code width) pair is implemented by several competing
// strategies (see Strategy). All strategies are pure functions over read-only
// tables built at package initialisation, so they are safe for concurrent use.
// The unsuffixed functions (Encode2D32, Decode3D64, ...) forward to the
// strategy that benchmarks fastest on common hardware.
//
// Coordinates are uint16 for 32-bit codes and uint32 for 64-bit codes. Only
// floor(width/dims) bits per axis fit in a code:
//
//	2D-32: 16 bits   2D-64: 32 bits
//	3D-32: 10 bits   3D-64: 21 bits
//
// Higher coordinate bits are silently dropped on encode, and code bits above
// dims*axisBits are ignored on decode.
package morton

import "math/bits"

// Code is the set of supported Morton code types.
type Code interface {
	~uint32 | ~uint64
}

// Coord is the set of supported coordinate types.
type Coord interface {
	~uint16 | ~uint32
}

// codeBits returns the bit width of M.
func codeBits[M Code]() uint {
	return uint(bits.Len64(uint64(^M(0))))
}

// AxisBits returns how many bits of each coordinate fit in a code of type M
// with the given number of dimensions.
func AxisBits[M Code](dims uint) uint {
	return codeBits[M]() / dims
}

// AxisMask returns the largest coordinate value that round-trips through a
// code of type M with the given number of dimensions.
func AxisMask[M Code](dims uint) uint64 {
	return lowMask(AxisBits[M](dims))
}

// CodeMask returns the code bits that carry coordinate data.
func CodeMask[M Code](dims uint) M {
	return M(lowMask(AxisBits[M](dims) * dims))
}

// lowMask returns a mask of the n lowest bits; n == 64 yields all ones since
// a uint64 shifted by 64 is 0.
func lowMask(n uint) uint64 {
	return uint64(1)<<n - 1
}

// Encode2D32 interleaves x and y into a 32-bit code.
func Encode2D32(x, y uint16) uint32 { return Encode2D32LUTShifted(x, y) }

// Encode2D64 interleaves x and y into a 64-bit code.
func Encode2D64(x, y uint32) uint64 { return Encode2D64LUTShifted(x, y) }

// Encode3D32 interleaves the low 10 bits of x, y and z into a 32-bit code.
func Encode3D32(x, y, z uint16) uint32 { return Encode3D32LUTShifted(x, y, z) }

// Encode3D64 interleaves the low 21 bits of x, y and z into a 64-bit code.
func Encode3D64(x, y, z uint32) uint64 { return Encode3D64LUTShifted(x, y, z) }

// Decode2D32 splits a 32-bit code into its x and y coordinates.
func Decode2D32(m uint32) (x, y uint16) { return Decode2D32MagicBits(m) }

// Decode2D64 splits a 64-bit code into its x and y coordinates.
func Decode2D64(m uint64) (x, y uint32) { return Decode2D64MagicBits(m) }

// Decode3D32 splits a 32-bit code into its x, y and z coordinates.
func Decode3D32(m uint32) (x, y, z uint16) { return Decode3D32LUTShifted(m) }

// Decode3D64 splits a 64-bit code into its x, y and z coordinates.
func Decode3D64(m uint64) (x, y, z uint32) { return Decode3D64LUTShifted(m) }
