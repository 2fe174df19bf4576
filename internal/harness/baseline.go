package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Baseline is a named snapshot of benchmark statistics persisted on disk
// for regression comparison across runs.
type Baseline struct {
	Name    string                   `yaml:"name"`
	SavedAt time.Time                `yaml:"saved_at"`
	Entries map[string]BaselineEntry `yaml:"entries"`
}

// BaselineEntry holds the per-variant figures a later run is compared
// against, keyed "group/variant".
type BaselineEntry struct {
	MeanNs        float64 `yaml:"mean_ns"`
	ThroughputBps float64 `yaml:"throughput_bps"`
}

// Regression reports a variant whose mean time degraded beyond the
// allowed tolerance relative to a baseline.
type Regression struct {
	Key          string
	BaselineMean time.Duration
	CurrentMean  time.Duration
	Ratio        float64 // current mean / baseline mean
}

func resultKey(r Result) string {
	return r.Group + "/" + r.Variant
}

func baselinePath(dir, name string) string {
	return filepath.Join(dir, name+".yaml")
}

// SaveBaseline writes results as the named baseline under dir, creating
// dir if needed, and returns the file path.
func SaveBaseline(dir, name string, results []Result) (string, error) {
	if name == "" {
		return "", fmt.Errorf("harness: baseline name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("harness: baseline name %q must not contain path separators", name)
	}

	b := Baseline{
		Name:    name,
		SavedAt: time.Now().UTC(),
		Entries: make(map[string]BaselineEntry, len(results)),
	}
	for _, r := range results {
		b.Entries[resultKey(r)] = BaselineEntry{
			MeanNs:        float64(r.Mean),
			ThroughputBps: r.ThroughputBps,
		}
	}

	out, err := yaml.Marshal(&b)
	if err != nil {
		return "", fmt.Errorf("harness: marshaling baseline %q: %w", name, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("harness: creating baseline dir: %w", err)
	}
	path := baselinePath(dir, name)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", fmt.Errorf("harness: writing baseline %q: %w", name, err)
	}
	return path, nil
}

// LoadBaseline reads the named baseline from dir.
func LoadBaseline(dir, name string) (*Baseline, error) {
	raw, err := os.ReadFile(baselinePath(dir, name))
	if err != nil {
		return nil, fmt.Errorf("harness: loading baseline %q: %w", name, err)
	}
	var b Baseline
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("harness: parsing baseline %q: %w", name, err)
	}
	return &b, nil
}

// Compare returns the variants in results whose mean time exceeds the
// baseline's by more than tolerance (a fraction, e.g. 0.10 for 10%).
// Variants absent from the baseline are skipped.
func Compare(results []Result, base *Baseline, tolerance float64) []Regression {
	var regressions []Regression
	for _, r := range results {
		entry, ok := base.Entries[resultKey(r)]
		if !ok || entry.MeanNs <= 0 {
			continue
		}
		ratio := float64(r.Mean) / entry.MeanNs
		if ratio > 1+tolerance {
			regressions = append(regressions, Regression{
				Key:          resultKey(r),
				BaselineMean: time.Duration(entry.MeanNs),
				CurrentMean:  r.Mean,
				Ratio:        ratio,
			})
		}
	}
	return regressions
}
