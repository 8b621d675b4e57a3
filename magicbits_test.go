package morton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCompact(t *testing.T) {
	tests := []struct {
		in    uint32
		by2   uint64
		by3   uint64
		by3_3 uint32
	}{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0b11, 0b101, 0b1001, 0b1001},
		{0b1111111111, 0b01010101010101010101, 0b001001001001001001001001001001, 0b001001001001001001001001001001},
		{0x1FFFFF, 0x15555555555, 0x1249249249249249, 0x09249249},
		{0xFFFFFFFF, 0x5555555555555555, 0x1249249249249249, 0x09249249},
	}
	for _, tt := range tests {
		require.Equalf(t, tt.by2, splitBy2_64(tt.in), "splitBy2_64(%032b)", tt.in)
		require.Equalf(t, tt.by3, splitBy3_64(tt.in), "splitBy3_64(%032b)", tt.in)
		require.Equalf(t, tt.by3_3, splitBy3_32(uint16(tt.in)), "splitBy3_32(%016b)", uint16(tt.in))
		require.Equalf(t, uint32(tt.by2), splitBy2_32(uint16(tt.in)), "splitBy2_32(%016b)", uint16(tt.in))

		require.Equalf(t, tt.in, compactBy2_64(tt.by2), "compactBy2_64(%064b)", tt.by2)
		require.Equalf(t, tt.in&0x1FFFFF, compactBy3_64(tt.by3), "compactBy3_64(%064b)", tt.by3)
		require.Equalf(t, uint16(tt.in&0x3FF), compactBy3_32(tt.by3_3), "compactBy3_32(%032b)", tt.by3_3)
	}
}
