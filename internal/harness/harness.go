// Package harness drives the statistical measurement of named benchmark
// groups. The timed loop itself is delegated to testing.Benchmark, which
// handles iteration scaling and allocation accounting; this package adds
// repetitions, warm-up discard, mean/variance/throughput aggregation,
// report writing and named baselines.
package harness

import (
	"fmt"
	"math"
	"testing"
	"time"
)

// Variant is one named operation under measurement.
type Variant struct {
	Name  string
	Bytes int64 // logical bytes processed per op, used for throughput
	Func  func()
}

// Group is a set of variants measured against logically equivalent input.
type Group struct {
	Name     string
	Variants []Variant
}

// Options controls how a group is measured.
type Options struct {
	Repetitions int // measured repetitions per variant
	Warmup      int // leading repetitions discarded before measuring
}

// DefaultOptions returns the runner defaults.
func DefaultOptions() Options {
	return Options{Repetitions: 5, Warmup: 1}
}

func (o Options) validate() error {
	if o.Repetitions <= 0 {
		return fmt.Errorf("harness: repetitions must be positive, got %d", o.Repetitions)
	}
	if o.Warmup < 0 {
		return fmt.Errorf("harness: warmup must not be negative, got %d", o.Warmup)
	}
	return nil
}

// Result holds the aggregated statistics for one variant.
type Result struct {
	Group             string        `json:"group"`
	Variant           string        `json:"variant"`
	Reps              int           `json:"reps"`
	Iterations        int64         `json:"iterations"`
	Mean              time.Duration `json:"mean_ns"`
	StdDev            time.Duration `json:"stddev_ns"`
	VarianceNs2       float64       `json:"variance_ns2"`
	ThroughputBps     float64       `json:"throughput_bps"`
	AllocsPerOp       int64         `json:"allocs_per_op"`
	AllocedBytesPerOp int64         `json:"alloced_bytes_per_op"`
}

// Run measures every variant in g. Each variant is measured Warmup
// repetitions that are discarded plus Repetitions that are kept; every
// repetition is one testing.Benchmark pass. Configuration is validated
// before any timing begins.
func Run(g Group, opts Options) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(g.Variants) == 0 {
		return nil, fmt.Errorf("harness: group %q has no variants", g.Name)
	}

	results := make([]Result, 0, len(g.Variants))
	for _, v := range g.Variants {
		if v.Func == nil {
			return nil, fmt.Errorf("harness: variant %s/%s has no function", g.Name, v.Name)
		}

		perOpNs := make([]float64, 0, opts.Repetitions)
		var iters, allocs, allocBytes int64
		for rep := 0; rep < opts.Warmup+opts.Repetitions; rep++ {
			br := testing.Benchmark(func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					v.Func()
				}
			})
			if rep < opts.Warmup {
				continue
			}
			perOpNs = append(perOpNs, float64(br.NsPerOp()))
			iters += int64(br.N)
			allocs = br.AllocsPerOp()
			allocBytes = br.AllocedBytesPerOp()
		}

		mean, variance := meanVariance(perOpNs)
		r := Result{
			Group:             g.Name,
			Variant:           v.Name,
			Reps:              opts.Repetitions,
			Iterations:        iters,
			Mean:              time.Duration(math.Round(mean)),
			StdDev:            time.Duration(math.Round(math.Sqrt(variance))),
			VarianceNs2:       variance,
			AllocsPerOp:       allocs,
			AllocedBytesPerOp: allocBytes,
		}
		if v.Bytes > 0 && mean > 0 {
			r.ThroughputBps = float64(v.Bytes) / (mean / float64(time.Second))
		}
		results = append(results, r)
	}
	return results, nil
}

// meanVariance returns the mean and the sample variance of xs.
func meanVariance(xs []float64) (mean, variance float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	if len(xs) < 2 {
		return mean, 0
	}
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(xs) - 1)
	return mean, variance
}
