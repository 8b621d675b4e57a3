//go:build amd64 && !noasm

package morton

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/cpu"
)

func TestBMI2Selection(t *testing.T) {
	assert.Equal(t, cpu.X86.HasBMI2, IsBMI2Available())
}

func TestBMI2AsmMatchesScalar(t *testing.T) {
	if !cpu.X86.HasBMI2 {
		t.Skip("BMI2 not supported")
	}
	rng := rand.New(rand.NewSource(42))
	for range 10000 {
		src, mask := rng.Uint64(), rng.Uint64()
		if rng.Intn(4) == 0 {
			mask = bmi2Mask3DZ64
		}
		assert.Equal(t, pdepScalar(src, mask), pdepBMI2(src, mask), "pdep(%#x, %#x)", src, mask)
		assert.Equal(t, pextScalar(src, mask), pextBMI2(src, mask), "pext(%#x, %#x)", src, mask)
	}
}
