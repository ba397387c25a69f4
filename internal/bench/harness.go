// Package bench measures binary search against linear search.
//
// A Harness builds the ascending sequence 0..N-1 for every configured size,
// draws uniformly random targets, times one call of each primitive per
// repetition, and aggregates mean time, mean steps and the speedup ratio into
// models.Record values. It never writes output; rendering is left to the
// report package.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/searchbench/internal/models"
	"github.com/harrison/searchbench/internal/search"
)

// DefaultRepetitions is the number of searches per size when none is configured.
const DefaultRepetitions = 100

// ErrInvalidOptions is returned by Run and Options.Validate for unusable settings.
var ErrInvalidOptions = errors.New("invalid benchmark options")

// DefaultSizes returns the input sizes measured when none are configured.
func DefaultSizes() []int {
	return []int{10_000, 100_000, 1_000_000, 10_000_000}
}

// Options configures a benchmark run.
type Options struct {
	Sizes       []int  // Sequence lengths, measured in order
	Repetitions int    // Searches per size and algorithm
	Seed        uint64 // Target generator seed, 0 = derive from the clock
}

// DefaultOptions returns the default sizes and repetition count.
func DefaultOptions() Options {
	return Options{
		Sizes:       DefaultSizes(),
		Repetitions: DefaultRepetitions,
	}
}

// Validate checks that every size can yield a target and at least one
// repetition is requested.
func (o Options) Validate() error {
	if len(o.Sizes) == 0 {
		return fmt.Errorf("%w: at least one size is required", ErrInvalidOptions)
	}
	for _, n := range o.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: size must be >= 1, got %d", ErrInvalidOptions, n)
		}
	}
	if o.Repetitions < 1 {
		return fmt.Errorf("%w: repetitions must be >= 1, got %d", ErrInvalidOptions, o.Repetitions)
	}
	return nil
}

// Clock supplies timestamps. Elapsed time is measured as Now().Sub(start),
// which keeps the monotonic reading of time.Time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Rand draws targets in [0, n).
type Rand interface {
	IntN(n int) int
}

// Harness runs the linear-vs-binary comparison.
type Harness struct {
	opts     Options
	clock    Clock
	rng      Rand
	observer Observer

	// sink consumes search results so the timed calls are not optimized away
	sink int
}

// Option customizes a Harness.
type Option func(*Harness)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(h *Harness) { h.clock = c }
}

// WithRand replaces the seeded PCG target generator.
func WithRand(r Rand) Option {
	return func(h *Harness) { h.rng = r }
}

// WithObserver attaches a progress observer.
func WithObserver(o Observer) Option {
	return func(h *Harness) { h.observer = o }
}

// NewHarness creates a Harness for opts. A zero Seed is replaced by one derived
// from the clock so the effective seed can be reported.
func NewHarness(opts Options, options ...Option) *Harness {
	h := &Harness{
		opts:     opts,
		clock:    systemClock{},
		observer: NopObserver{},
	}
	for _, o := range options {
		o(h)
	}
	if h.opts.Seed == 0 {
		h.opts.Seed = uint64(h.clock.Now().UnixNano())
	}
	if h.rng == nil {
		h.rng = rand.New(rand.NewPCG(h.opts.Seed, h.opts.Seed>>1|1))
	}
	return h
}

// Options returns the effective options, including the resolved seed.
func (h *Harness) Options() Options {
	return h.opts
}

// Run measures every configured size and returns the aggregated report.
// Cancellation is checked between repetitions.
func (h *Harness) Run(ctx context.Context) (*models.Report, error) {
	if err := h.opts.Validate(); err != nil {
		return nil, err
	}

	started := h.clock.Now()
	report := &models.Report{
		RunID:       uuid.NewString(),
		StartedAt:   started,
		Repetitions: h.opts.Repetitions,
		Seed:        h.opts.Seed,
		Records:     make([]models.Record, 0, len(h.opts.Sizes)),
	}

	for i, size := range h.opts.Sizes {
		h.observer.LogSizeStart(size, i+1, len(h.opts.Sizes))

		record, err := h.measure(ctx, size)
		if err != nil {
			return nil, err
		}

		report.Records = append(report.Records, record)
		h.observer.LogSizeComplete(record)
	}

	report.Duration = h.clock.Now().Sub(started)
	return report, nil
}

// measure times R linear and R binary searches over 0..size-1.
func (h *Harness) measure(ctx context.Context, size int) (models.Record, error) {
	seq := search.Range(0, size-1)
	reps := h.opts.Repetitions

	var linearTotal, binaryTotal time.Duration
	var linearSteps, binarySteps int

	for rep := 0; rep < reps; rep++ {
		if err := ctx.Err(); err != nil {
			return models.Record{}, fmt.Errorf("benchmark interrupted at size %d: %w", size, err)
		}

		target := h.rng.IntN(size)

		start := h.clock.Now()
		res := search.Linear(seq, target)
		linearTotal += h.clock.Now().Sub(start)
		linearSteps += res.Steps
		h.sink += res.Index

		start = h.clock.Now()
		res = search.Binary(seq, target)
		binaryTotal += h.clock.Now().Sub(start)
		binarySteps += res.Steps
		h.sink += res.Index

		h.observer.LogRepetition(size, rep+1, reps)
	}

	// Means are truncated to whole nanoseconds; the speedup uses the exact totals.
	linearMean := linearTotal / time.Duration(reps)
	binaryMean := binaryTotal / time.Duration(reps)

	return models.Record{
		Size:        size,
		LinearTime:  linearMean,
		LinearSteps: float64(linearSteps) / float64(reps),
		BinaryTime:  binaryMean,
		BinarySteps: float64(binarySteps) / float64(reps),
		Speedup:     Speedup(linearTotal, binaryTotal),
	}, nil
}

// Speedup returns linear/binary, or +Inf when binary is exactly zero.
func Speedup(linear, binary time.Duration) float64 {
	if binary == 0 {
		return math.Inf(1)
	}
	return float64(linear) / float64(binary)
}
