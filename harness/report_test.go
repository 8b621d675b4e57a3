package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	morton "github.com/Akron/morton-go"
)

func TestRanking(t *testing.T) {
	timings := []Timing{
		{Strategy: morton.For, Linear: 9, Random: 11},
		{Strategy: morton.MagicBits, Linear: 2, Random: 2},
		{Strategy: morton.LUTShifted, Linear: 1, Random: 2},
		{Strategy: morton.BMI2, Linear: 4, Random: 4},
	}
	var got []morton.Strategy
	for _, tm := range Ranking(timings) {
		got = append(got, tm.Strategy)
	}
	assert.Equal(t, []morton.Strategy{morton.LUTShifted, morton.MagicBits, morton.BMI2, morton.For}, got)
}

func TestReportGroups(t *testing.T) {
	r := Report{Timings: []Timing{
		{Strategy: morton.For, Op: Encode, Dims: 3, Width: 64, Size: 8},
		{Strategy: morton.For, Op: Decode, Dims: 3, Width: 64, Size: 8},
		{Strategy: morton.LUT, Op: Encode, Dims: 3, Width: 64, Size: 8},
		{Strategy: morton.For, Op: Encode, Dims: 2, Width: 32, Size: 4},
	}}
	groups := r.Groups()
	require.Equal(t, 3, groups.Len())

	var keys []string
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []string{"3D-64 encode 8", "3D-64 decode 8", "2D-32 encode 4"}, keys)

	enc, ok := groups.Get("3D-64 encode 8")
	require.True(t, ok)
	assert.Len(t, enc, 2)
}

func TestReportWrite(t *testing.T) {
	var mismatches []Mismatch
	for i := range 12 {
		mismatches = append(mismatches, Mismatch{Method: "LUT256", Input: []uint64{uint64(i)}, Got: []uint64{1}, Want: []uint64{0}})
	}
	r := Report{
		Sweeps: []Sweep{
			{Name: "3D-64 encode", Passed: true, Checked: 32768},
			{Name: "3D-64 decode", Checked: 32784, Mismatches: mismatches},
		},
		Timings: []Timing{
			{Strategy: morton.For, Op: Encode, Dims: 3, Width: 64, Size: 8, Linear: 5, Random: 6},
			{Strategy: morton.LUTShiftedET, Op: Encode, Dims: 3, Width: 64, Size: 8, Linear: 1, Random: 1.5},
		},
		Checksum: 0xBEEF,
	}

	var b strings.Builder
	require.NoError(t, r.Write(&b))
	out := b.String()

	assert.Contains(t, out, "3D-64 encode            PASS   32768 checks     0 mismatches")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "LUT256: input (0x9) got (0x1) want (0x0)")
	assert.NotContains(t, out, "input (0xa)")
	assert.Contains(t, out, "... 2 more")
	assert.Contains(t, out, "3D-64 encode 8\n")
	assert.Contains(t, out, "checksum")

	fast := strings.Index(out, " 1. LUT256 preshifted ET")
	slow := strings.Index(out, " 2. For")
	assert.True(t, fast >= 0 && slow > fast, out)
	assert.Contains(t, out, fmt.Sprintf("%8.3f / %8.3f", 1.0, 1.5))
}

func TestReportWriteWithoutTimings(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Report{Sweeps: []Sweep{{Name: "2D-32 encode", Passed: true}}}.Write(&b))
	assert.NotContains(t, b.String(), "Performance")
	assert.NotContains(t, b.String(), "checksum")
}
