package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	morton "github.com/Akron/morton-go"
)

func TestCheckAllPasses(t *testing.T) {
	sweeps := NewChecker(testLogger(t)).CheckAll()
	require.Len(t, sweeps, 8)

	strategies := len(morton.Strategies())
	for _, s := range sweeps {
		assert.Truef(t, s.Passed, "%s: %v", s.Name, s.Mismatches)
		assert.Empty(t, s.Mismatches, s.Name)
	}
	assert.Equal(t, "2D-32 encode", sweeps[0].Name)
	assert.Equal(t, strategies*256, sweeps[0].Checked)
	// 2D codes have no spare bits, so there is a single boundary probe
	assert.Equal(t, strategies*(4096+1), sweeps[1].Checked)
	assert.Equal(t, strategies*4096, sweeps[4].Checked)
	assert.Equal(t, strategies*(4096+2), sweeps[7].Checked)
	assert.NoError(t, Verify(sweeps))
}

func TestCheckReportsAndContinues(t *testing.T) {
	c := NewChecker(testLogger(t))
	broken := []morton.Codec3D[uint64, uint32]{
		{
			Strategy: morton.For,
			Encode: func(x, y, z uint32) uint64 {
				m := morton.Encode3D64For(x, y, z)
				if x == 3 {
					m ^= 1 << 40
				}
				return m
			},
			Decode: func(m uint64) (x, y, z uint32) {
				x, y, z = morton.Decode3D64For(m)
				return y, x, z
			},
		},
		morton.Codecs3D64()[morton.MagicBits],
	}

	enc := CheckEncode3D(c, "broken encode", broken)
	assert.False(t, enc.Passed)
	assert.Equal(t, 2*4096, enc.Checked)
	require.Len(t, enc.Mismatches, 256)
	mm := enc.Mismatches[0]
	assert.Equal(t, "For", mm.Method)
	assert.Equal(t, []uint64{3, 0, 0}, mm.Input)
	assert.Equal(t, []uint64{0x10000000009}, mm.Got)
	assert.Equal(t, []uint64{9}, mm.Want)

	dec := CheckDecode3D(c, "broken decode", broken)
	assert.False(t, dec.Passed)
	assert.Equal(t, 2*(4096+2), dec.Checked)
	// only the codes with x == y decode correctly when x and y are swapped
	assert.Len(t, dec.Mismatches, 4096-256)
	for _, mm := range dec.Mismatches {
		assert.Equal(t, "For", mm.Method)
	}

	err := Verify([]Sweep{enc, dec, {Name: "fine", Passed: true}})
	assert.ErrorIs(t, err, ErrSweepFailed)
	assert.EqualError(t, err, "harness: correctness sweep failed: broken encode, broken decode")
}

func TestCheckDecode2DBroken(t *testing.T) {
	c := NewChecker(testLogger(t))
	broken := []morton.Codec2D[uint32, uint16]{{
		Strategy: morton.LUT,
		Encode:   morton.Encode2D32LUT,
		Decode: func(m uint32) (x, y uint16) {
			x, y = morton.Decode2D32LUT(m)
			return x & 0xFF, y
		},
	}}
	s := CheckDecode2D(c, "2D-32 decode", broken)
	// every code decodes within 8 bits except the all-ones probe
	require.Len(t, s.Mismatches, 1)
	assert.Equal(t, []uint64{0xFFFFFFFF}, s.Mismatches[0].Input)
	assert.Equal(t, []uint64{0xFF, 0xFFFF}, s.Mismatches[0].Got)
	assert.Equal(t, []uint64{0xFFFF, 0xFFFF}, s.Mismatches[0].Want)
	assert.Equal(t, "LUT256: input (0xffffffff) got (0xff, 0xffff) want (0xffff, 0xffff)", s.Mismatches[0].String())
}
