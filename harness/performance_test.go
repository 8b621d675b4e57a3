package harness

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	morton "github.com/Akron/morton-go"
)

func smallConfig(workers int) Config {
	return Config{MinSize: 4, MaxSize: 8, Times: 2, PoolSize: 16, Seed: 42, Workers: workers}
}

func TestRunnerRun(t *testing.T) {
	r := NewRunner(smallConfig(1), testLogger(t))
	timings, err := r.Run(context.Background())
	require.NoError(t, err)

	strategies := len(morton.Strategies())
	// 2 sizes * 4 (dims, width) combinations * 2 ops
	require.Len(t, timings, 2*4*2*strategies)

	first := timings[0]
	assert.Equal(t, morton.For, first.Strategy)
	assert.Equal(t, Encode, first.Op)
	assert.Equal(t, "2D-32 encode 4", first.Group())
	assert.Equal(t, "2D-32 decode 4", timings[1].Group())
	assert.Equal(t, "3D-64 decode 8", timings[len(timings)-1].Group())

	for _, tm := range timings {
		assert.GreaterOrEqual(t, tm.Linear, 0.0)
		assert.GreaterOrEqual(t, tm.Random, 0.0)
	}
	assert.NotZero(t, r.Checksum())
}

func TestRunnerChecksumIndependentOfWorkers(t *testing.T) {
	log := testLogger(t)
	serial := NewRunner(smallConfig(1), log)
	_, err := serial.Run(context.Background())
	require.NoError(t, err)

	parallel := NewRunner(smallConfig(4), log)
	_, err = parallel.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, serial.Checksum(), parallel.Checksum())
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(smallConfig(2), testLogger(t)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerRejectsInvalidConfig(t *testing.T) {
	log := testLogger(t)
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "zero value", cfg: Config{}},
		{name: "negative min size", cfg: Config{MinSize: -8, MaxSize: 8, Times: 1, PoolSize: 16, Workers: 1}},
		{name: "no workers", cfg: Config{MinSize: 4, MaxSize: 8, Times: 1, PoolSize: 16}},
		{name: "empty pool", cfg: Config{MinSize: 4, MaxSize: 8, Times: 1, Workers: 1}},
		{name: "no repetitions", cfg: Config{MinSize: 4, MaxSize: 8, PoolSize: 16, Workers: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(tt.cfg, log)
			timings, err := r.Run(context.Background())
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
			assert.Nil(t, timings)
			assert.Zero(t, r.Checksum())
		})
	}
}

func TestRandomPool(t *testing.T) {
	a := randomPool[uint16](42, 100, 0x3FF)
	b := randomPool[uint16](42, 100, 0x3FF)
	assert.Equal(t, a, b)
	for _, v := range a {
		assert.LessOrEqual(t, v, uint16(0x3FF))
	}
	c := randomPool[uint64](42, 100, morton.AxisMask[uint64](3))
	for _, v := range c {
		assert.LessOrEqual(t, v, uint64(0x1FFFFF))
	}
}
