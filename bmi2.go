package morton

// Per-axis interleave masks for bit deposit/extract. The 3D masks stop at the
// last full triple, so bit 30-31 (32-bit) and bit 63 (64-bit) are never used.
const (
	bmi2Mask2DX32 = 0x55555555
	bmi2Mask2DY32 = 0xAAAAAAAA
	bmi2Mask3DX32 = 0x09249249
	bmi2Mask3DY32 = 0x12492492
	bmi2Mask3DZ32 = 0x24924924

	bmi2Mask2DX64 = 0x5555555555555555
	bmi2Mask2DY64 = 0xAAAAAAAAAAAAAAAA
	bmi2Mask3DX64 = 0x1249249249249249
	bmi2Mask3DY64 = 0x2492492492492492
	bmi2Mask3DZ64 = 0x4924924924924924
)

// pdep scatters the low bits of src to the set bit positions of mask.
var pdep func(src, mask uint64) uint64 = pdepScalar

// pext gathers the bits of src at the set bit positions of mask into the low bits.
var pext func(src, mask uint64) uint64 = pextScalar

var bmi2Available bool

// IsBMI2Available reports whether the BMI2 strategy runs on the PDEP/PEXT
// instructions. When false it falls back to a portable bit loop with the same
// results.
func IsBMI2Available() bool {
	return bmi2Available
}

func pdepScalar(src, mask uint64) uint64 {
	var dst uint64
	for bit := uint64(1); mask != 0; bit <<= 1 {
		if src&bit != 0 {
			dst |= mask & -mask
		}
		mask &= mask - 1
	}
	return dst
}

func pextScalar(src, mask uint64) uint64 {
	var dst uint64
	for bit := uint64(1); mask != 0; bit <<= 1 {
		if src&mask&-mask != 0 {
			dst |= bit
		}
		mask &= mask - 1
	}
	return dst
}

// Encode2D32BMI2 interleaves x and y by depositing them into the axis masks.
func Encode2D32BMI2(x, y uint16) uint32 {
	return uint32(pdep(uint64(x), bmi2Mask2DX32) | pdep(uint64(y), bmi2Mask2DY32))
}

// Encode2D64BMI2 interleaves x and y into a 64-bit code by depositing into the axis masks.
func Encode2D64BMI2(x, y uint32) uint64 {
	return pdep(uint64(x), bmi2Mask2DX64) | pdep(uint64(y), bmi2Mask2DY64)
}

// Encode3D32BMI2 interleaves the low 10 bits of x, y and z into a 32-bit code by depositing into the axis masks.
func Encode3D32BMI2(x, y, z uint16) uint32 {
	return uint32(pdep(uint64(x), bmi2Mask3DX32) | pdep(uint64(y), bmi2Mask3DY32) | pdep(uint64(z), bmi2Mask3DZ32))
}

// Encode3D64BMI2 interleaves the low 21 bits of x, y and z into a 64-bit code by depositing into the axis masks.
func Encode3D64BMI2(x, y, z uint32) uint64 {
	return pdep(uint64(x), bmi2Mask3DX64) | pdep(uint64(y), bmi2Mask3DY64) | pdep(uint64(z), bmi2Mask3DZ64)
}

// Decode2D32BMI2 de-interleaves m by extracting each axis mask.
func Decode2D32BMI2(m uint32) (x, y uint16) {
	c := uint64(m)
	return uint16(pext(c, bmi2Mask2DX32)), uint16(pext(c, bmi2Mask2DY32))
}

// Decode2D64BMI2 de-interleaves m by extracting each axis mask.
func Decode2D64BMI2(m uint64) (x, y uint32) {
	return uint32(pext(m, bmi2Mask2DX64)), uint32(pext(m, bmi2Mask2DY64))
}

// Decode3D32BMI2 de-interleaves m by extracting each axis mask.
func Decode3D32BMI2(m uint32) (x, y, z uint16) {
	c := uint64(m)
	return uint16(pext(c, bmi2Mask3DX32)), uint16(pext(c, bmi2Mask3DY32)), uint16(pext(c, bmi2Mask3DZ32))
}

// Decode3D64BMI2 de-interleaves m by extracting each axis mask.
func Decode3D64BMI2(m uint64) (x, y, z uint32) {
	return uint32(pext(m, bmi2Mask3DX64)), uint32(pext(m, bmi2Mask3DY64)), uint32(pext(m, bmi2Mask3DZ64))
}
