package morton

import "fmt"

// Strategy identifies one encode/decode implementation.
type Strategy int

const (
	// For walks the coordinates one bit at a time. It defines the reference
	// results for every other strategy.
	For Strategy = iota
	// ForET is For stopping at the highest set input bit.
	ForET
	// MagicBits spreads and compacts bits with a fixed shift/mask cascade.
	MagicBits
	// LUT composes codes a byte at a time from the X-phase tables, shifting
	// the other axes into place.
	LUT
	// LUTShifted composes codes a byte at a time from per-axis tables that
	// already carry the axis phase.
	LUTShifted
	// LUTET is LUT skipping leading zero byte groups.
	LUTET
	// LUTShiftedET is LUTShifted skipping leading zero byte groups.
	LUTShiftedET
	// BMI2 deposits and extracts bits through the axis masks (PDEP/PEXT).
	BMI2
)

var strategyNames = [...]string{
	For:          "For",
	ForET:        "For ET",
	MagicBits:    "Magicbits",
	LUT:          "LUT256",
	LUTShifted:   "LUT256 preshifted",
	LUTET:        "LUT256 ET",
	LUTShiftedET: "LUT256 preshifted ET",
	BMI2:         "BMI2",
}

// String returns the strategy name used in reports.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Strategies returns every strategy in registration order.
func Strategies() []Strategy {
	return []Strategy{For, ForET, MagicBits, LUT, LUTShifted, LUTET, LUTShiftedET, BMI2}
}

// Codec2D pairs the 2D encode and decode functions of one strategy.
type Codec2D[M Code, C Coord] struct {
	Strategy Strategy
	Encode   func(x, y C) M
	Decode   func(m M) (x, y C)
}

// Codec3D pairs the 3D encode and decode functions of one strategy.
type Codec3D[M Code, C Coord] struct {
	Strategy Strategy
	Encode   func(x, y, z C) M
	Decode   func(m M) (x, y, z C)
}

// Codecs2D32 returns every 2D strategy producing 32-bit codes.
func Codecs2D32() []Codec2D[uint32, uint16] {
	return []Codec2D[uint32, uint16]{
		{For, Encode2D32For, Decode2D32For},
		{ForET, Encode2D32ForET, Decode2D32ForET},
		{MagicBits, Encode2D32MagicBits, Decode2D32MagicBits},
		{LUT, Encode2D32LUT, Decode2D32LUT},
		{LUTShifted, Encode2D32LUTShifted, Decode2D32LUTShifted},
		{LUTET, Encode2D32LUTET, Decode2D32LUTET},
		{LUTShiftedET, Encode2D32LUTShiftedET, Decode2D32LUTShiftedET},
		{BMI2, Encode2D32BMI2, Decode2D32BMI2},
	}
}

// Codecs2D64 returns every 2D strategy producing 64-bit codes.
func Codecs2D64() []Codec2D[uint64, uint32] {
	return []Codec2D[uint64, uint32]{
		{For, Encode2D64For, Decode2D64For},
		{ForET, Encode2D64ForET, Decode2D64ForET},
		{MagicBits, Encode2D64MagicBits, Decode2D64MagicBits},
		{LUT, Encode2D64LUT, Decode2D64LUT},
		{LUTShifted, Encode2D64LUTShifted, Decode2D64LUTShifted},
		{LUTET, Encode2D64LUTET, Decode2D64LUTET},
		{LUTShiftedET, Encode2D64LUTShiftedET, Decode2D64LUTShiftedET},
		{BMI2, Encode2D64BMI2, Decode2D64BMI2},
	}
}

// Codecs3D32 returns every 3D strategy producing 32-bit codes.
func Codecs3D32() []Codec3D[uint32, uint16] {
	return []Codec3D[uint32, uint16]{
		{For, Encode3D32For, Decode3D32For},
		{ForET, Encode3D32ForET, Decode3D32ForET},
		{MagicBits, Encode3D32MagicBits, Decode3D32MagicBits},
		{LUT, Encode3D32LUT, Decode3D32LUT},
		{LUTShifted, Encode3D32LUTShifted, Decode3D32LUTShifted},
		{LUTET, Encode3D32LUTET, Decode3D32LUTET},
		{LUTShiftedET, Encode3D32LUTShiftedET, Decode3D32LUTShiftedET},
		{BMI2, Encode3D32BMI2, Decode3D32BMI2},
	}
}

// Codecs3D64 returns every 3D strategy producing 64-bit codes.
func Codecs3D64() []Codec3D[uint64, uint32] {
	return []Codec3D[uint64, uint32]{
		{For, Encode3D64For, Decode3D64For},
		{ForET, Encode3D64ForET, Decode3D64ForET},
		{MagicBits, Encode3D64MagicBits, Decode3D64MagicBits},
		{LUT, Encode3D64LUT, Decode3D64LUT},
		{LUTShifted, Encode3D64LUTShifted, Decode3D64LUTShifted},
		{LUTET, Encode3D64LUTET, Decode3D64LUTET},
		{LUTShiftedET, Encode3D64LUTShiftedET, Decode3D64LUTShiftedET},
		{BMI2, Encode3D64BMI2, Decode3D64BMI2},
	}
}
