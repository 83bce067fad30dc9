// Package bench times the closest pair solvers against each other on random
// points, and checks along the way that they all agree.
package bench

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/osuushi/closestpair/advanced"
	"github.com/osuushi/closestpair/dbg"
	"github.com/pkg/errors"
)

const (
	minLatency = time.Nanosecond
	maxLatency = time.Minute
)

type Config struct {
	// Point set sizes to time, in order
	Sizes []int
	// Number of point sets generated per size. Every variant runs on the same
	// sets.
	Trials int
	Seed   int64
	// Variants to time. Empty means all of them.
	Variants []advanced.Variant
}

func DefaultConfig() Config {
	return Config{
		Sizes:  []int{100, 200, 300, 400},
		Trials: 1,
		Seed:   1,
	}
}

func (cfg Config) Validate() error {
	if len(cfg.Sizes) == 0 {
		return errors.New("no sizes to run")
	}
	for _, n := range cfg.Sizes {
		if n < 0 {
			return errors.Errorf("negative size %d", n)
		}
	}
	if cfg.Trials < 1 {
		return errors.Errorf("trials must be at least 1, got %d", cfg.Trials)
	}
	return nil
}

// Timings for one variant. There is one histogram per size, holding a duration
// in nanoseconds per trial.
type Series struct {
	Variant    advanced.Variant
	Histograms []*hdrhistogram.Histogram
}

type Report struct {
	Label  string
	Sizes  []int
	Series []Series
}

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minLatency.Nanoseconds(), maxLatency.Nanoseconds(), 3)
}

// Uniform random points in the unit square.
func RandomPoints(rng *rand.Rand, n int) []advanced.Point {
	points := make([]advanced.Point, n)
	for i := range points {
		points[i] = advanced.Point{X: rng.Float64(), Y: rng.Float64()}
	}
	return points
}

// Time every variant on the same random point sets. A line of mean timings per
// size goes to progress, if it isn't nil.
//
// It is an error for the variants to disagree about any point set.
func Run(cfg Config, progress io.Writer) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	variants := cfg.Variants
	if len(variants) == 0 {
		variants = advanced.Variants()
	}

	report := &Report{
		Label:  dbg.Name(cfg.Seed),
		Sizes:  append([]int(nil), cfg.Sizes...),
		Series: make([]Series, len(variants)),
	}
	for i, variant := range variants {
		report.Series[i] = Series{
			Variant:    variant,
			Histograms: make([]*hdrhistogram.Histogram, len(cfg.Sizes)),
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	results := make([]advanced.Distance, len(variants))
	for sizeIndex, n := range cfg.Sizes {
		for i := range report.Series {
			report.Series[i].Histograms[sizeIndex] = newHistogram()
		}

		for trial := 0; trial < cfg.Trials; trial++ {
			points := RandomPoints(rng, n)
			for i, variant := range variants {
				start := time.Now()
				results[i] = variant.Solve(points)
				record(report.Series[i].Histograms[sizeIndex], time.Since(start))
			}
			if err := checkAgreement(variants, results); err != nil {
				return nil, errors.Wrapf(err, "n=%d trial=%d", n, trial)
			}
		}

		if progress != nil {
			parts := make([]string, len(variants))
			for i, variant := range variants {
				parts[i] = fmt.Sprintf("%s: %.4fs", variant, report.Mean(i, sizeIndex).Seconds())
			}
			fmt.Fprintf(progress, "[n=%04d] %s\n", n, strings.Join(parts, ", "))
		}
	}
	return report, nil
}

func record(hist *hdrhistogram.Histogram, elapsed time.Duration) {
	if elapsed < minLatency {
		elapsed = minLatency
	} else if elapsed > maxLatency {
		elapsed = maxLatency
	}
	// Can't fail, the value is clamped to the histogram's range
	_ = hist.RecordValue(elapsed.Nanoseconds())
}

func checkAgreement(variants []advanced.Variant, results []advanced.Distance) error {
	want, wantOK := results[0].Value()
	for i := 1; i < len(results); i++ {
		got, gotOK := results[i].Value()
		if gotOK != wantOK || (wantOK && !advanced.Equal(want, got)) {
			return errors.Errorf("%s gave %s but %s gave %s",
				variants[0], results[0], variants[i], results[i])
		}
	}
	return nil
}

// Mean duration of a variant at a size, by index into Series and Sizes.
func (r *Report) Mean(series, size int) time.Duration {
	return time.Duration(r.Series[series].Histograms[size].Mean())
}

func (r *Report) Quantile(series, size int, q float64) time.Duration {
	return time.Duration(r.Series[series].Histograms[size].ValueAtQuantile(q))
}
