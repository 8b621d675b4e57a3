package morton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLUTEncodeTablesMatchSpread(t *testing.T) {
	for b := range 256 {
		assert.Equal(t, uint32(lutEncode2DX[b]), splitBy2_32(uint16(b)), "2D x %#x", b)
		assert.Equal(t, uint32(lutEncode2DY[b]), splitBy2_32(uint16(b))<<1, "2D y %#x", b)
		assert.Equal(t, lutEncode3DX[b], splitBy3_32(uint16(b)), "3D x %#x", b)
		assert.Equal(t, lutEncode3DY[b], splitBy3_32(uint16(b))<<1, "3D y %#x", b)
		assert.Equal(t, lutEncode3DZ[b], splitBy3_32(uint16(b))<<2, "3D z %#x", b)
	}
}

func TestLUTDecodeTablesInvertEncode(t *testing.T) {
	for v := range 16 {
		w := lutEncode2DX[v] | lutEncode2DY[15-v]
		assert.Equal(t, uint8(v), lutDecode2DX[w], "2D window %08b", w)
		assert.Equal(t, uint8(15-v), lutDecode2DY[w], "2D window %08b", w)
	}
	for v := range 8 {
		w := lutEncode3DX[v] | lutEncode3DY[7-v] | lutEncode3DZ[v^5]
		assert.Equal(t, uint8(v), lutDecode3DX[w], "3D window %09b", w)
		assert.Equal(t, uint8(7-v), lutDecode3DY[w], "3D window %09b", w)
		assert.Equal(t, uint8(v^5), lutDecode3DZ[w], "3D window %09b", w)
	}
}

func TestLUTGeometry(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint(2), bytesPerAxis[uint32](2))
	assert.Equal(uint(4), bytesPerAxis[uint64](2))
	assert.Equal(uint(2), bytesPerAxis[uint32](3))
	assert.Equal(uint(3), bytesPerAxis[uint64](3))
	assert.Equal(uint(4), windows3D[uint32]())
	assert.Equal(uint(7), windows3D[uint64]())
}

func TestSpreadByte(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint32(0b0101010101010101), spreadByte(0xFF, 2))
	assert.Equal(uint32(0b001001001001001001001001), spreadByte(0xFF, 3))
	assert.Equal(uint32(0b1000000000000000000001), spreadByte(0x81, 3))
}
