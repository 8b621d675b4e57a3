//go:build avogen
// +build avogen

package main

import (
	. "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/reg"
)

// main emits the deposit and extract kernels behind the BMI2 strategy.
func main() {
	Package("github.com/Akron/morton-go")
	ConstraintExpr("amd64")
	ConstraintExpr("!noasm")

	genDepositKernel()
	genExtractKernel()

	Generate()
}

// genDepositKernel scatters the low bits of src to the set bits of mask.
func genDepositKernel() {
	TEXT("pdepBMI2", NOSPLIT, "func(src, mask uint64) uint64")
	Doc("pdepBMI2 deposits the low bits of src at the set bit positions of mask.")

	src := Load(Param("src"), GP64()).(reg.GPVirtual)
	mask := Load(Param("mask"), GP64())
	PDEPQ(mask, src, src)
	Store(src, ReturnIndex(0))
	RET()
}

// genExtractKernel gathers the bits of src at the set bits of mask.
func genExtractKernel() {
	TEXT("pextBMI2", NOSPLIT, "func(src, mask uint64) uint64")
	Doc("pextBMI2 extracts the bits of src at the set bit positions of mask into the low bits.")

	src := Load(Param("src"), GP64()).(reg.GPVirtual)
	mask := Load(Param("mask"), GP64())
	PEXTQ(mask, src, src)
	Store(src, ReturnIndex(0))
	RET()
}
