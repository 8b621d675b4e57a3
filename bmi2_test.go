package morton

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepositExtractScalar(t *testing.T) {
	tests := []struct {
		name string
		src  uint64
		mask uint64
		dep  uint64
		ext  uint64
	}{
		{
			name: "empty mask",
			src:  0xFFFFFFFFFFFFFFFF,
			mask: 0,
			dep:  0,
			ext:  0,
		},
		{
			name: "identity mask",
			src:  0xDEADBEEFCAFEBABE,
			mask: 0xFFFFFFFFFFFFFFFF,
			dep:  0xDEADBEEFCAFEBABE,
			ext:  0xDEADBEEFCAFEBABE,
		},
		{
			name: "every second bit",
			src:  0b1011,
			mask: bmi2Mask2DX64,
			dep:  0b1000101,
			ext:  0b1,
		},
		{
			name: "every third bit",
			src:  0b111,
			mask: bmi2Mask3DY64,
			dep:  0b10010010,
			ext:  0b1,
		},
		{
			name: "sparse mask",
			src:  0b110,
			mask: 0xF0F0,
			dep:  0b1100000,
			ext:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.dep, pdepScalar(tt.src, tt.mask))
			assert.Equal(t, tt.ext, pextScalar(tt.src, tt.mask))
		})
	}
}

func TestDepositExtractInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	masks := []uint64{
		bmi2Mask2DX32, bmi2Mask2DY32, bmi2Mask3DX32, bmi2Mask3DY32, bmi2Mask3DZ32,
		bmi2Mask2DX64, bmi2Mask2DY64, bmi2Mask3DX64, bmi2Mask3DY64, bmi2Mask3DZ64,
	}
	for _, mask := range masks {
		for range 1000 {
			v := rng.Uint64()
			assert.Equal(t, v&mask, pdep(pext(v, mask), mask), "mask %#x", mask)
			assert.Equal(t, pdepScalar(v, mask), pdep(v, mask), "pdep mask %#x", mask)
			assert.Equal(t, pextScalar(v, mask), pext(v, mask), "pext mask %#x", mask)
		}
	}
}

func TestBMI2MasksPartitionCode(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint64(CodeMask[uint32](2)), uint64(bmi2Mask2DX32|bmi2Mask2DY32))
	assert.Equal(uint64(CodeMask[uint32](3)), uint64(bmi2Mask3DX32|bmi2Mask3DY32|bmi2Mask3DZ32))
	assert.Equal(CodeMask[uint64](2), uint64(bmi2Mask2DX64|bmi2Mask2DY64))
	assert.Equal(CodeMask[uint64](3), uint64(bmi2Mask3DX64|bmi2Mask3DY64|bmi2Mask3DZ64))
	assert.Zero(bmi2Mask3DX64 & bmi2Mask3DY64)
	assert.Zero(bmi2Mask3DY64 & bmi2Mask3DZ64)
}
