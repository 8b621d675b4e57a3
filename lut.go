package morton

import "math/bits"

// Encode LUTs map a byte to its bits spread over every 2nd (2D) or 3rd (3D)
// position. The Y and Z tables carry the axis phase already (pre-shifted by 1
// and 2); the unshifted strategies use only the X tables and shift instead.
var (
	lutEncode2DX [256]uint16
	lutEncode2DY [256]uint16
	lutEncode3DX [256]uint32
	lutEncode3DY [256]uint32
	lutEncode3DZ [256]uint32
)

// Decode LUTs map a window of code bits back to the bits of one axis: 8-bit
// windows hold 4 bits per axis in 2D, 9-bit windows hold 3 bits per axis in 3D.
var (
	lutDecode2DX [256]uint8
	lutDecode2DY [256]uint8
	lutDecode3DX [512]uint8
	lutDecode3DY [512]uint8
	lutDecode3DZ [512]uint8
)

const (
	lutWindow2D = 8
	lutWindow3D = 9
)

func init() {
	for b := range 256 {
		s2 := spreadByte(uint8(b), 2)
		lutEncode2DX[b] = uint16(s2)
		lutEncode2DY[b] = uint16(s2 << 1)

		s3 := spreadByte(uint8(b), 3)
		lutEncode3DX[b] = s3
		lutEncode3DY[b] = s3 << 1
		lutEncode3DZ[b] = s3 << 2

		lutDecode2DX[b] = gatherWindow(uint32(b), 2, 0)
		lutDecode2DY[b] = gatherWindow(uint32(b), 2, 1)
	}
	for w := range 512 {
		lutDecode3DX[w] = gatherWindow(uint32(w), 3, 0)
		lutDecode3DY[w] = gatherWindow(uint32(w), 3, 1)
		lutDecode3DZ[w] = gatherWindow(uint32(w), 3, 2)
	}
}

// spreadByte moves bit i of b to bit i*dims.
func spreadByte(b uint8, dims uint) uint32 {
	var s uint32
	for i := range uint(8) {
		s |= uint32(b>>i&1) << (i * dims)
	}
	return s
}

// gatherWindow collects bits phase, phase+dims, ... of a window that spans
// dims*4 (2D) or dims*3 (3D) bits.
func gatherWindow(w uint32, dims, phase uint) uint8 {
	n := uint(lutWindow2D / 2)
	if dims == 3 {
		n = lutWindow3D / 3
	}
	var g uint8
	for i := range n {
		g |= uint8(w>>(i*dims+phase)&1) << i
	}
	return g
}

// bytesPerAxis is the number of coordinate bytes that reach the code.
func bytesPerAxis[M Code](dims uint) uint {
	return (AxisBits[M](dims) + 7) / 8
}

// windows3D is the number of 9-bit windows needed to cover the code.
func windows3D[M Code]() uint {
	return (AxisBits[M](3) + 2) / 3
}

func encode2DLUTShifted[M Code, C Coord](x, y C, n uint) M {
	var m M
	for i := n; i > 0; i-- {
		s := (i - 1) * 8
		m = m<<16 | M(lutEncode2DY[uint8(y>>s)]) | M(lutEncode2DX[uint8(x>>s)])
	}
	return m
}

func encode2DLUT[M Code, C Coord](x, y C, n uint) M {
	var m M
	for i := n; i > 0; i-- {
		s := (i - 1) * 8
		m = m<<16 | M(lutEncode2DX[uint8(y>>s)])<<1 | M(lutEncode2DX[uint8(x>>s)])
	}
	return m
}

func encode3DLUTShifted[M Code, C Coord](x, y, z C, n uint) M {
	var m M
	for i := n; i > 0; i-- {
		s := (i - 1) * 8
		m = m<<24 |
			M(lutEncode3DZ[uint8(z>>s)]) |
			M(lutEncode3DY[uint8(y>>s)]) |
			M(lutEncode3DX[uint8(x>>s)])
	}
	return m
}

func encode3DLUT[M Code, C Coord](x, y, z C, n uint) M {
	var m M
	for i := n; i > 0; i-- {
		s := (i - 1) * 8
		m = m<<24 |
			M(lutEncode3DX[uint8(z>>s)])<<2 |
			M(lutEncode3DX[uint8(y>>s)])<<1 |
			M(lutEncode3DX[uint8(x>>s)])
	}
	return m
}

// byteGroups returns how many byte groups of the coordinates are non-zero.
func byteGroups(v uint64, limit uint) uint {
	return min(limit, (uint(bits.Len64(v))+7)/8)
}

func decode2DLUTShifted[M Code, C Coord](m M, n uint) (x, y C) {
	for i := range n {
		w := uint8(m >> (lutWindow2D * i))
		x |= C(lutDecode2DX[w]) << (4 * i)
		y |= C(lutDecode2DY[w]) << (4 * i)
	}
	return x, y
}

func decode2DLUT[M Code, C Coord](m M, n uint) (x, y C) {
	for i := range n {
		s := lutWindow2D * i
		x |= C(lutDecode2DX[uint8(m>>s)]) << (4 * i)
		y |= C(lutDecode2DX[uint8(m>>(s+1))]) << (4 * i)
	}
	return x, y
}

func decode3DLUTShifted[M Code, C Coord](m M, n uint) (x, y, z C) {
	for i := range n {
		w := uint(m>>(lutWindow3D*i)) & 0x1FF
		x |= C(lutDecode3DX[w]) << (3 * i)
		y |= C(lutDecode3DY[w]) << (3 * i)
		z |= C(lutDecode3DZ[w]) << (3 * i)
	}
	return x, y, z
}

func decode3DLUT[M Code, C Coord](m M, n uint) (x, y, z C) {
	for i := range n {
		s := lutWindow3D * i
		x |= C(lutDecode3DX[uint(m>>s)&0x1FF]) << (3 * i)
		y |= C(lutDecode3DX[uint(m>>(s+1))&0x1FF]) << (3 * i)
		z |= C(lutDecode3DX[uint(m>>(s+2))&0x1FF]) << (3 * i)
	}
	return x, y, z
}

// windowGroups returns how many windows of width w hold set bits of m.
func windowGroups(m uint64, w, limit uint) uint {
	return min(limit, (uint(bits.Len64(m))+w-1)/w)
}

// Encode2D32LUTShifted interleaves x and y a byte at a time through the pre-shifted tables.
func Encode2D32LUTShifted(x, y uint16) uint32 {
	return encode2DLUTShifted[uint32](x, y, 2)
}

// Encode2D32LUT interleaves x and y a byte at a time through the X table.
func Encode2D32LUT(x, y uint16) uint32 {
	return encode2DLUT[uint32](x, y, 2)
}

// Encode2D32LUTShiftedET interleaves x and y into a 32-bit code through the pre-shifted tables, skipping leading zero bytes.
func Encode2D32LUTShiftedET(x, y uint16) uint32 {
	return encode2DLUTShifted[uint32](x, y, byteGroups(uint64(x|y), 2))
}

// Encode2D32LUTET interleaves x and y into a 32-bit code through the X table, skipping leading zero bytes.
func Encode2D32LUTET(x, y uint16) uint32 {
	return encode2DLUT[uint32](x, y, byteGroups(uint64(x|y), 2))
}

// Encode2D64LUTShifted interleaves x and y into a 64-bit code a byte at a time through the pre-shifted tables.
func Encode2D64LUTShifted(x, y uint32) uint64 {
	return encode2DLUTShifted[uint64](x, y, 4)
}

// Encode2D64LUT interleaves x and y into a 64-bit code a byte at a time through the X table.
func Encode2D64LUT(x, y uint32) uint64 {
	return encode2DLUT[uint64](x, y, 4)
}

// Encode2D64LUTShiftedET interleaves x and y into a 64-bit code through the pre-shifted tables, skipping leading zero bytes.
func Encode2D64LUTShiftedET(x, y uint32) uint64 {
	return encode2DLUTShifted[uint64](x, y, byteGroups(uint64(x|y), 4))
}

// Encode2D64LUTET interleaves x and y into a 64-bit code through the X table, skipping leading zero bytes.
func Encode2D64LUTET(x, y uint32) uint64 {
	return encode2DLUT[uint64](x, y, byteGroups(uint64(x|y), 4))
}

// Encode3D32LUTShifted interleaves the low 10 bits of x, y and z a byte at a
// time through the pre-shifted tables.
func Encode3D32LUTShifted(x, y, z uint16) uint32 {
	x, y, z = x&0x3FF, y&0x3FF, z&0x3FF
	return encode3DLUTShifted[uint32](x, y, z, bytesPerAxis[uint32](3))
}

// Encode3D32LUT interleaves the low 10 bits of x, y and z into a 32-bit code a byte at a time through the X table.
func Encode3D32LUT(x, y, z uint16) uint32 {
	x, y, z = x&0x3FF, y&0x3FF, z&0x3FF
	return encode3DLUT[uint32](x, y, z, bytesPerAxis[uint32](3))
}

// Encode3D32LUTShiftedET interleaves the low 10 bits of x, y and z into a 32-bit code through the pre-shifted tables, skipping leading zero bytes.
func Encode3D32LUTShiftedET(x, y, z uint16) uint32 {
	x, y, z = x&0x3FF, y&0x3FF, z&0x3FF
	return encode3DLUTShifted[uint32](x, y, z, byteGroups(uint64(x|y|z), bytesPerAxis[uint32](3)))
}

// Encode3D32LUTET interleaves the low 10 bits of x, y and z into a 32-bit code through the X table, skipping leading zero bytes.
func Encode3D32LUTET(x, y, z uint16) uint32 {
	x, y, z = x&0x3FF, y&0x3FF, z&0x3FF
	return encode3DLUT[uint32](x, y, z, byteGroups(uint64(x|y|z), bytesPerAxis[uint32](3)))
}

// Encode3D64LUTShifted interleaves the low 21 bits of x, y and z a byte at a
// time through the pre-shifted tables.
func Encode3D64LUTShifted(x, y, z uint32) uint64 {
	x, y, z = x&0x1FFFFF, y&0x1FFFFF, z&0x1FFFFF
	return encode3DLUTShifted[uint64](x, y, z, bytesPerAxis[uint64](3))
}

// Encode3D64LUT interleaves the low 21 bits of x, y and z into a 64-bit code a byte at a time through the X table.
func Encode3D64LUT(x, y, z uint32) uint64 {
	x, y, z = x&0x1FFFFF, y&0x1FFFFF, z&0x1FFFFF
	return encode3DLUT[uint64](x, y, z, bytesPerAxis[uint64](3))
}

// Encode3D64LUTShiftedET interleaves the low 21 bits of x, y and z into a 64-bit code through the pre-shifted tables, skipping leading zero bytes.
func Encode3D64LUTShiftedET(x, y, z uint32) uint64 {
	x, y, z = x&0x1FFFFF, y&0x1FFFFF, z&0x1FFFFF
	return encode3DLUTShifted[uint64](x, y, z, byteGroups(uint64(x|y|z), bytesPerAxis[uint64](3)))
}

// Encode3D64LUTET interleaves the low 21 bits of x, y and z into a 64-bit code through the X table, skipping leading zero bytes.
func Encode3D64LUTET(x, y, z uint32) uint64 {
	x, y, z = x&0x1FFFFF, y&0x1FFFFF, z&0x1FFFFF
	return encode3DLUT[uint64](x, y, z, byteGroups(uint64(x|y|z), bytesPerAxis[uint64](3)))
}

// Decode2D32LUTShifted de-interleaves m a byte window at a time through the per-axis tables.
func Decode2D32LUTShifted(m uint32) (x, y uint16) {
	return decode2DLUTShifted[uint32, uint16](m, 4)
}

// Decode2D32LUT de-interleaves m a byte window at a time through the X table.
func Decode2D32LUT(m uint32) (x, y uint16) {
	return decode2DLUT[uint32, uint16](m, 4)
}

// Decode2D32LUTShiftedET de-interleaves m through the per-axis tables, stopping after the highest non-zero window.
func Decode2D32LUTShiftedET(m uint32) (x, y uint16) {
	return decode2DLUTShifted[uint32, uint16](m, windowGroups(uint64(m), lutWindow2D, 4))
}

// Decode2D32LUTET de-interleaves m through the X table, stopping after the highest non-zero window.
func Decode2D32LUTET(m uint32) (x, y uint16) {
	return decode2DLUT[uint32, uint16](m, windowGroups(uint64(m), lutWindow2D, 4))
}

// Decode2D64LUTShifted de-interleaves m a window at a time through the per-axis tables.
func Decode2D64LUTShifted(m uint64) (x, y uint32) {
	return decode2DLUTShifted[uint64, uint32](m, 8)
}

// Decode2D64LUT de-interleaves m a window at a time through the X table.
func Decode2D64LUT(m uint64) (x, y uint32) {
	return decode2DLUT[uint64, uint32](m, 8)
}

// Decode2D64LUTShiftedET de-interleaves m through the per-axis tables, stopping after the highest non-zero window.
func Decode2D64LUTShiftedET(m uint64) (x, y uint32) {
	return decode2DLUTShifted[uint64, uint32](m, windowGroups(m, lutWindow2D, 8))
}

// Decode2D64LUTET de-interleaves m through the X table, stopping after the highest non-zero window.
func Decode2D64LUTET(m uint64) (x, y uint32) {
	return decode2DLUT[uint64, uint32](m, windowGroups(m, lutWindow2D, 8))
}

// Decode3D32LUTShifted de-interleaves the low 30 bits of m a 9-bit window at a
// time through the per-axis tables.
func Decode3D32LUTShifted(m uint32) (x, y, z uint16) {
	return decode3DLUTShifted[uint32, uint16](m&0x3FFFFFFF, windows3D[uint32]())
}

// Decode3D32LUT de-interleaves m a window at a time through the X table.
func Decode3D32LUT(m uint32) (x, y, z uint16) {
	return decode3DLUT[uint32, uint16](m&0x3FFFFFFF, windows3D[uint32]())
}

// Decode3D32LUTShiftedET de-interleaves m through the per-axis tables, stopping after the highest non-zero window.
func Decode3D32LUTShiftedET(m uint32) (x, y, z uint16) {
	m &= 0x3FFFFFFF
	return decode3DLUTShifted[uint32, uint16](m, windowGroups(uint64(m), lutWindow3D, windows3D[uint32]()))
}

// Decode3D32LUTET de-interleaves m through the X table, stopping after the highest non-zero window.
func Decode3D32LUTET(m uint32) (x, y, z uint16) {
	m &= 0x3FFFFFFF
	return decode3DLUT[uint32, uint16](m, windowGroups(uint64(m), lutWindow3D, windows3D[uint32]()))
}

// Decode3D64LUTShifted de-interleaves the low 63 bits of m a 9-bit window at a
// time through the per-axis tables.
func Decode3D64LUTShifted(m uint64) (x, y, z uint32) {
	return decode3DLUTShifted[uint64, uint32](m&0x7FFFFFFFFFFFFFFF, windows3D[uint64]())
}

// Decode3D64LUT de-interleaves m a window at a time through the X table.
func Decode3D64LUT(m uint64) (x, y, z uint32) {
	return decode3DLUT[uint64, uint32](m&0x7FFFFFFFFFFFFFFF, windows3D[uint64]())
}

// Decode3D64LUTShiftedET de-interleaves m through the per-axis tables, stopping after the highest non-zero window.
func Decode3D64LUTShiftedET(m uint64) (x, y, z uint32) {
	m &= 0x7FFFFFFFFFFFFFFF
	return decode3DLUTShifted[uint64, uint32](m, windowGroups(m, lutWindow3D, windows3D[uint64]()))
}

// Decode3D64LUTET de-interleaves m through the X table, stopping after the highest non-zero window.
func Decode3D64LUTET(m uint64) (x, y, z uint32) {
	m &= 0x7FFFFFFFFFFFFFFF
	return decode3DLUT[uint64, uint32](m, windowGroups(m, lutWindow3D, windows3D[uint64]()))
}
