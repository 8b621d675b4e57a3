package harness

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	morton "github.com/Akron/morton-go"
)

// Op is the measured operation.
type Op int

const (
	// Encode measures coordinates to code.
	Encode Op = iota
	// Decode measures code to coordinates.
	Decode
)

// String returns the lower-case operation name used in group keys.
func (o Op) String() string {
	if o == Decode {
		return "decode"
	}
	return "encode"
}

// Timing holds the mean nanoseconds per call of one strategy for one
// operation and cube edge.
type Timing struct {
	Strategy morton.Strategy
	Op       Op
	Dims     int
	Width    int
	Size     int
	Linear   float64
	Random   float64
}

// Group names the (dims, width, op, size) bucket the timing is ranked in.
func (t Timing) Group() string {
	return fmt.Sprintf("%dD-%d %s %d", t.Dims, t.Width, t.Op, t.Size)
}

// Mean is the combined mean of the linear and random sweeps.
func (t Timing) Mean() float64 {
	return (t.Linear + t.Random) / 2
}

type task struct {
	timing  Timing
	measure func() (linear, random float64)
}

// Runner measures every strategy over linear and random sweeps.
type Runner struct {
	cfg      Config
	log      logger.Logger
	checksum atomic.Uint64
}

// NewRunner returns a Runner for cfg. The config is validated when Run starts.
func NewRunner(cfg Config, log logger.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// Checksum is the running sum of every result produced so far. It keeps the
// measured calls observable and is reported next to the timings.
func (r *Runner) Checksum() uint64 {
	return r.checksum.Load()
}

// Run measures all tasks, at most cfg.Workers at a time. Results come back in
// registration order regardless of completion order.
func (r *Runner) Run(ctx context.Context) ([]Timing, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("performance: %w", err)
	}

	var tasks []task
	for _, size := range r.cfg.Sizes() {
		tasks = append(tasks, tasks2D(r, morton.Codecs2D32(), size)...)
		tasks = append(tasks, tasks2D(r, morton.Codecs2D64(), size)...)
		tasks = append(tasks, tasks3D(r, morton.Codecs3D32(), size)...)
		tasks = append(tasks, tasks3D(r, morton.Codecs3D64(), size)...)
	}
	r.log.Infof("performance: %d tasks, %d workers", len(tasks), r.cfg.Workers)

	results := make([]Timing, len(tasks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, t := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tm := t.timing
			tm.Linear, tm.Random = t.measure()
			r.log.Debugf("%s %s: linear %.3fns random %.3fns", tm.Group(), tm.Strategy, tm.Linear, tm.Random)
			results[i] = tm
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("performance: %w", err)
	}
	return results, nil
}

// randomPool returns n seeded values limited to the bits of mask.
func randomPool[T constraints.Unsigned](seed int64, n int, mask uint64) []T {
	rng := rand.New(rand.NewSource(seed))
	pool := make([]T, n)
	for i := range pool {
		pool[i] = T(rng.Uint64() & mask)
	}
	return pool
}

func perCall(total time.Duration, calls int) float64 {
	return float64(total.Nanoseconds()) / float64(calls)
}

func tasks2D[M morton.Code, C morton.Coord](r *Runner, codecs []morton.Codec2D[M, C], size int) []task {
	width := int(morton.AxisBits[M](1))
	calls := size * size
	var tasks []task
	for _, codec := range codecs {
		tasks = append(tasks,
			task{
				timing: Timing{Strategy: codec.Strategy, Op: Encode, Dims: 2, Width: width, Size: size},
				measure: func() (float64, float64) {
					return measureEncode2D(r, codec, size, randomPool[C](r.cfg.Seed, r.cfg.PoolSize, morton.AxisMask[M](2)))
				},
			},
			task{
				timing: Timing{Strategy: codec.Strategy, Op: Decode, Dims: 2, Width: width, Size: size},
				measure: func() (float64, float64) {
					return measureDecode2D(r, codec, calls, randomPool[M](r.cfg.Seed, r.cfg.PoolSize, uint64(morton.CodeMask[M](2))))
				},
			},
		)
	}
	return tasks
}

func tasks3D[M morton.Code, C morton.Coord](r *Runner, codecs []morton.Codec3D[M, C], size int) []task {
	width := int(morton.AxisBits[M](1))
	calls := size * size * size
	var tasks []task
	for _, codec := range codecs {
		tasks = append(tasks,
			task{
				timing: Timing{Strategy: codec.Strategy, Op: Encode, Dims: 3, Width: width, Size: size},
				measure: func() (float64, float64) {
					return measureEncode3D(r, codec, size, randomPool[C](r.cfg.Seed, r.cfg.PoolSize, morton.AxisMask[M](3)))
				},
			},
			task{
				timing: Timing{Strategy: codec.Strategy, Op: Decode, Dims: 3, Width: width, Size: size},
				measure: func() (float64, float64) {
					return measureDecode3D(r, codec, calls, randomPool[M](r.cfg.Seed, r.cfg.PoolSize, uint64(morton.CodeMask[M](3))))
				},
			},
		)
	}
	return tasks
}

func measureEncode2D[M morton.Code, C morton.Coord](r *Runner, codec morton.Codec2D[M, C], size int, pool []C) (float64, float64) {
	var sum uint64
	var linear, random time.Duration
	calls, p := size*size, len(pool)
	for range r.cfg.Times {
		start := time.Now()
		for x := range size {
			for y := range size {
				sum += uint64(codec.Encode(C(x), C(y)))
			}
		}
		linear += time.Since(start)

		start = time.Now()
		for i := range calls {
			sum += uint64(codec.Encode(pool[i%p], pool[(i+1)%p]))
		}
		random += time.Since(start)
	}
	r.checksum.Add(sum)
	return perCall(linear, calls*r.cfg.Times), perCall(random, calls*r.cfg.Times)
}

func measureDecode2D[M morton.Code, C morton.Coord](r *Runner, codec morton.Codec2D[M, C], calls int, pool []M) (float64, float64) {
	var sum uint64
	var linear, random time.Duration
	p := len(pool)
	for range r.cfg.Times {
		start := time.Now()
		for m := range calls {
			x, y := codec.Decode(M(m))
			sum += uint64(x) + uint64(y)
		}
		linear += time.Since(start)

		start = time.Now()
		for i := range calls {
			x, y := codec.Decode(pool[i%p])
			sum += uint64(x) + uint64(y)
		}
		random += time.Since(start)
	}
	r.checksum.Add(sum)
	return perCall(linear, calls*r.cfg.Times), perCall(random, calls*r.cfg.Times)
}

func measureEncode3D[M morton.Code, C morton.Coord](r *Runner, codec morton.Codec3D[M, C], size int, pool []C) (float64, float64) {
	var sum uint64
	var linear, random time.Duration
	calls, p := size*size*size, len(pool)
	for range r.cfg.Times {
		start := time.Now()
		for x := range size {
			for y := range size {
				for z := range size {
					sum += uint64(codec.Encode(C(x), C(y), C(z)))
				}
			}
		}
		linear += time.Since(start)

		start = time.Now()
		for i := range calls {
			sum += uint64(codec.Encode(pool[i%p], pool[(i+1)%p], pool[(i+2)%p]))
		}
		random += time.Since(start)
	}
	r.checksum.Add(sum)
	return perCall(linear, calls*r.cfg.Times), perCall(random, calls*r.cfg.Times)
}

func measureDecode3D[M morton.Code, C morton.Coord](r *Runner, codec morton.Codec3D[M, C], calls int, pool []M) (float64, float64) {
	var sum uint64
	var linear, random time.Duration
	p := len(pool)
	for range r.cfg.Times {
		start := time.Now()
		for m := range calls {
			x, y, z := codec.Decode(M(m))
			sum += uint64(x) + uint64(y) + uint64(z)
		}
		linear += time.Since(start)

		start = time.Now()
		for i := range calls {
			x, y, z := codec.Decode(pool[i%p])
			sum += uint64(x) + uint64(y) + uint64(z)
		}
		random += time.Since(start)
	}
	r.checksum.Add(sum)
	return perCall(linear, calls*r.cfg.Times), perCall(random, calls*r.cfg.Times)
}
