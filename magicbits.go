package morton

// Spread masks, one table per (code width, dims). Entry 0 belongs to the
// 32-bit pre-shift step, which the 32-bit cascades skip. For 3D, entry 0 is
// the pre-mask limiting a coordinate to the bits that fit.
var (
	magicbits2DMasks32 = [6]uint32{0, 0x0000FFFF, 0x00FF00FF, 0x0F0F0F0F, 0x33333333, 0x55555555}
	magicbits2DMasks64 = [6]uint64{
		0x00000000FFFFFFFF,
		0x0000FFFF0000FFFF,
		0x00FF00FF00FF00FF,
		0x0F0F0F0F0F0F0F0F,
		0x3333333333333333,
		0x5555555555555555,
	}
	magicbits3DMasks32 = [6]uint32{0x000003FF, 0, 0x030000FF, 0x0300F00F, 0x030C30C3, 0x09249249}
	magicbits3DMasks64 = [6]uint64{
		0x00000000001FFFFF,
		0x001F00000000FFFF,
		0x001F0000FF0000FF,
		0x100F00F00F00F00F,
		0x10C30C30C30C30C3,
		0x1249249249249249,
	}
)

func splitBy2_32(a uint16) uint32 {
	x := uint32(a)
	x = (x | x<<16) & magicbits2DMasks32[1]
	x = (x | x<<8) & magicbits2DMasks32[2]
	x = (x | x<<4) & magicbits2DMasks32[3]
	x = (x | x<<2) & magicbits2DMasks32[4]
	x = (x | x<<1) & magicbits2DMasks32[5]
	return x
}

func splitBy2_64(a uint32) uint64 {
	x := uint64(a)
	x = (x | x<<32) & magicbits2DMasks64[0]
	x = (x | x<<16) & magicbits2DMasks64[1]
	x = (x | x<<8) & magicbits2DMasks64[2]
	x = (x | x<<4) & magicbits2DMasks64[3]
	x = (x | x<<2) & magicbits2DMasks64[4]
	x = (x | x<<1) & magicbits2DMasks64[5]
	return x
}

func splitBy3_32(a uint16) uint32 {
	x := uint32(a) & magicbits3DMasks32[0]
	x = (x | x<<16) & magicbits3DMasks32[2]
	x = (x | x<<8) & magicbits3DMasks32[3]
	x = (x | x<<4) & magicbits3DMasks32[4]
	x = (x | x<<2) & magicbits3DMasks32[5]
	return x
}

func splitBy3_64(a uint32) uint64 {
	x := uint64(a) & magicbits3DMasks64[0]
	x = (x | x<<32) & magicbits3DMasks64[1]
	x = (x | x<<16) & magicbits3DMasks64[2]
	x = (x | x<<8) & magicbits3DMasks64[3]
	x = (x | x<<4) & magicbits3DMasks64[4]
	x = (x | x<<2) & magicbits3DMasks64[5]
	return x
}

// The compact cascades run the spread tables backwards.

func compactBy2_32(m uint32) uint16 {
	x := m & magicbits2DMasks32[5]
	x = (x | x>>1) & magicbits2DMasks32[4]
	x = (x | x>>2) & magicbits2DMasks32[3]
	x = (x | x>>4) & magicbits2DMasks32[2]
	x = (x | x>>8) & magicbits2DMasks32[1]
	return uint16(x)
}

func compactBy2_64(m uint64) uint32 {
	x := m & magicbits2DMasks64[5]
	x = (x | x>>1) & magicbits2DMasks64[4]
	x = (x | x>>2) & magicbits2DMasks64[3]
	x = (x | x>>4) & magicbits2DMasks64[2]
	x = (x | x>>8) & magicbits2DMasks64[1]
	x = (x | x>>16) & magicbits2DMasks64[0]
	return uint32(x)
}

func compactBy3_32(m uint32) uint16 {
	x := m & magicbits3DMasks32[5]
	x = (x | x>>2) & magicbits3DMasks32[4]
	x = (x | x>>4) & magicbits3DMasks32[3]
	x = (x | x>>8) & magicbits3DMasks32[2]
	x = (x | x>>16) & magicbits3DMasks32[0]
	return uint16(x)
}

func compactBy3_64(m uint64) uint32 {
	x := m & magicbits3DMasks64[5]
	x = (x | x>>2) & magicbits3DMasks64[4]
	x = (x | x>>4) & magicbits3DMasks64[3]
	x = (x | x>>8) & magicbits3DMasks64[2]
	x = (x | x>>16) & magicbits3DMasks64[1]
	x = (x | x>>32) & magicbits3DMasks64[0]
	return uint32(x)
}

// Encode2D32MagicBits interleaves x and y with a shift/mask cascade.
func Encode2D32MagicBits(x, y uint16) uint32 {
	return splitBy2_32(x) | splitBy2_32(y)<<1
}

// Encode2D64MagicBits interleaves x and y with a shift/mask cascade.
func Encode2D64MagicBits(x, y uint32) uint64 {
	return splitBy2_64(x) | splitBy2_64(y)<<1
}

// Encode3D32MagicBits interleaves the low 10 bits of x, y and z with a shift/mask cascade.
func Encode3D32MagicBits(x, y, z uint16) uint32 {
	return splitBy3_32(x) | splitBy3_32(y)<<1 | splitBy3_32(z)<<2
}

// Encode3D64MagicBits interleaves the low 21 bits of x, y and z with a shift/mask cascade.
func Encode3D64MagicBits(x, y, z uint32) uint64 {
	return splitBy3_64(x) | splitBy3_64(y)<<1 | splitBy3_64(z)<<2
}

// Decode2D32MagicBits de-interleaves m with a shift/mask cascade.
func Decode2D32MagicBits(m uint32) (x, y uint16) {
	return compactBy2_32(m), compactBy2_32(m >> 1)
}

// Decode2D64MagicBits de-interleaves m with a shift/mask cascade.
func Decode2D64MagicBits(m uint64) (x, y uint32) {
	return compactBy2_64(m), compactBy2_64(m >> 1)
}

// Decode3D32MagicBits de-interleaves m with a shift/mask cascade.
func Decode3D32MagicBits(m uint32) (x, y, z uint16) {
	return compactBy3_32(m), compactBy3_32(m >> 1), compactBy3_32(m >> 2)
}

// Decode3D64MagicBits de-interleaves m with a shift/mask cascade.
func Decode3D64MagicBits(m uint64) (x, y, z uint32) {
	return compactBy3_64(m), compactBy3_64(m >> 1), compactBy3_64(m >> 2)
}
