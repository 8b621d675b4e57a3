//go:build !amd64 || noasm

package morton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMI2Fallback(t *testing.T) {
	assert.False(t, IsBMI2Available())
	x, y, z := Decode3D64BMI2(Encode3D64BMI2(0x1ABCDE, 0x012345, 0x1FFFFF))
	assert.Equal(t, [3]uint32{0x1ABCDE, 0x012345, 0x1FFFFF}, [3]uint32{x, y, z})
}
