//go:build amd64 && !noasm

package morton

import "golang.org/x/sys/cpu"

//go:generate go run -tags avogen ./internal/avo -out bmi2_amd64.s

func init() {
	if cpu.X86.HasBMI2 {
		pdep = pdepBMI2
		pext = pextBMI2
		bmi2Available = true
	}
}

// Assembly entry points provided by bmi2_amd64.s.
//
//go:noescape
func pdepBMI2(src, mask uint64) uint64

//go:noescape
func pextBMI2(src, mask uint64) uint64
