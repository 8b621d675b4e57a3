package morton

import "math/bits"

// The loop kernels walk one bit at a time and define the reference semantics
// every other strategy is tested against. The ET variants stop at the highest
// set bit of their input instead of the full axis width.

func encode2DFor[M Code, C Coord](x, y C) M {
	var m M
	for i := range AxisBits[M](2) {
		m |= M(x>>i&1)<<(2*i) | M(y>>i&1)<<(2*i+1)
	}
	return m
}

func encode2DForET[M Code, C Coord](x, y C) M {
	n := min(AxisBits[M](2), uint(bits.Len64(uint64(x|y))))
	var m M
	for i := range n {
		m |= M(x>>i&1)<<(2*i) | M(y>>i&1)<<(2*i+1)
	}
	return m
}

func encode3DFor[M Code, C Coord](x, y, z C) M {
	var m M
	for i := range AxisBits[M](3) {
		m |= M(x>>i&1)<<(3*i) | M(y>>i&1)<<(3*i+1) | M(z>>i&1)<<(3*i+2)
	}
	return m
}

func encode3DForET[M Code, C Coord](x, y, z C) M {
	n := min(AxisBits[M](3), uint(bits.Len64(uint64(x|y|z))))
	var m M
	for i := range n {
		m |= M(x>>i&1)<<(3*i) | M(y>>i&1)<<(3*i+1) | M(z>>i&1)<<(3*i+2)
	}
	return m
}

func decode2DFor[M Code, C Coord](m M) (x, y C) {
	for i := range AxisBits[M](2) {
		x |= C(m>>(2*i)&1) << i
		y |= C(m>>(2*i+1)&1) << i
	}
	return x, y
}

func decode2DForET[M Code, C Coord](m M) (x, y C) {
	n := min(AxisBits[M](2), (uint(bits.Len64(uint64(m)))+1)/2)
	for i := range n {
		x |= C(m>>(2*i)&1) << i
		y |= C(m>>(2*i+1)&1) << i
	}
	return x, y
}

func decode3DFor[M Code, C Coord](m M) (x, y, z C) {
	for i := range AxisBits[M](3) {
		x |= C(m>>(3*i)&1) << i
		y |= C(m>>(3*i+1)&1) << i
		z |= C(m>>(3*i+2)&1) << i
	}
	return x, y, z
}

func decode3DForET[M Code, C Coord](m M) (x, y, z C) {
	n := min(AxisBits[M](3), (uint(bits.Len64(uint64(m)))+2)/3)
	for i := range n {
		x |= C(m>>(3*i)&1) << i
		y |= C(m>>(3*i+1)&1) << i
		z |= C(m>>(3*i+2)&1) << i
	}
	return x, y, z
}

// Encode2D32For interleaves x and y bit by bit.
func Encode2D32For(x, y uint16) uint32 { return encode2DFor[uint32](x, y) }

// Encode2D32ForET interleaves x and y bit by bit, up to their highest set bit.
func Encode2D32ForET(x, y uint16) uint32 { return encode2DForET[uint32](x, y) }

// Encode2D64For interleaves x and y into a 64-bit code bit by bit.
func Encode2D64For(x, y uint32) uint64 { return encode2DFor[uint64](x, y) }

// Encode2D64ForET interleaves x and y into a 64-bit code bit by bit, up to the highest set bit.
func Encode2D64ForET(x, y uint32) uint64 { return encode2DForET[uint64](x, y) }

// Encode3D32For interleaves the low 10 bits of x, y and z into a 32-bit code bit by bit.
func Encode3D32For(x, y, z uint16) uint32 { return encode3DFor[uint32](x, y, z) }

// Encode3D32ForET interleaves the low 10 bits of x, y and z into a 32-bit code bit by bit, up to the highest set bit.
func Encode3D32ForET(x, y, z uint16) uint32 { return encode3DForET[uint32](x, y, z) }

// Encode3D64For interleaves the low 21 bits of x, y and z into a 64-bit code bit by bit.
func Encode3D64For(x, y, z uint32) uint64 { return encode3DFor[uint64](x, y, z) }

// Encode3D64ForET interleaves the low 21 bits of x, y and z into a 64-bit code bit by bit, up to the highest set bit.
func Encode3D64ForET(x, y, z uint32) uint64 { return encode3DForET[uint64](x, y, z) }

// Decode2D32For de-interleaves m bit by bit.
func Decode2D32For(m uint32) (x, y uint16) { return decode2DFor[uint32, uint16](m) }

// Decode2D32ForET de-interleaves m bit by bit, up to its highest set bit.
func Decode2D32ForET(m uint32) (x, y uint16) { return decode2DForET[uint32, uint16](m) }

// Decode2D64For de-interleaves m bit by bit.
func Decode2D64For(m uint64) (x, y uint32) { return decode2DFor[uint64, uint32](m) }

// Decode2D64ForET de-interleaves m bit by bit, up to its highest set bit.
func Decode2D64ForET(m uint64) (x, y uint32) { return decode2DForET[uint64, uint32](m) }

// Decode3D32For de-interleaves m bit by bit.
func Decode3D32For(m uint32) (x, y, z uint16) { return decode3DFor[uint32, uint16](m) }

// Decode3D32ForET de-interleaves m bit by bit, up to its highest set bit.
func Decode3D32ForET(m uint32) (x, y, z uint16) { return decode3DForET[uint32, uint16](m) }

// Decode3D64For de-interleaves m bit by bit.
func Decode3D64For(m uint64) (x, y, z uint32) { return decode3DFor[uint64, uint32](m) }

// Decode3D64ForET de-interleaves m bit by bit, up to its highest set bit.
func Decode3D64ForET(m uint64) (x, y, z uint32) { return decode3DForET[uint64, uint32](m) }
