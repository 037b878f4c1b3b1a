// Package config defines process configuration and loading hooks.
//
// Conventions:
// - Defaults come from New(); Load layers an optional YAML file and env vars
//   on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

import (
	"runtime"

	"github.com/parkfit/parkfit/internal/domain/scoring"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// WorkerCount sets the number of scoring workers.
	WorkerCount int `koanf:"worker_count"`

	// QueueSize bounds the in-memory pair queue.
	QueueSize int `koanf:"queue_size"`

	// DedupeSize sets the size of the pair deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// BatchBudgetMS caps the wall-clock time of a batch run; 0 means no cap.
	BatchBudgetMS int `koanf:"batch_budget_ms"`

	// ProfilesFile points at a JSON hitter-profile file. When empty, the
	// synthetic sample source is used.
	ProfilesFile string `koanf:"profiles_file"`

	// OutputFile, when set, receives the batch results as CSV.
	OutputFile string `koanf:"output_file"`

	// SampleHitters and SampleSeed configure the synthetic source.
	SampleHitters int   `koanf:"sample_hitters"`
	SampleSeed    int64 `koanf:"sample_seed"`

	// Batch query shape.
	Year       int    `koanf:"year"`
	MinPA      int    `koanf:"min_pa"`
	NameFilter string `koanf:"name_filter"`
	TopN       int    `koanf:"top_n"`

	// Component score weights.
	WeightExitVelocity float64 `koanf:"weight_exit_velocity"`
	WeightHardHit      float64 `koanf:"weight_hard_hit"`
	WeightDistance     float64 `koanf:"weight_distance"`

	// Component scale anchors.
	AnchorExitVelocityLow  float64 `koanf:"anchor_exit_velocity_low"`
	AnchorExitVelocityHigh float64 `koanf:"anchor_exit_velocity_high"`
	AnchorHardHitHigh      float64 `koanf:"anchor_hard_hit_high"`
}

// New creates a Config with defaults.
func New() *Config {
	defaults := scoring.DefaultWeights()
	anchors := scoring.DefaultAnchors()
	return &Config{
		LogLevel:    "info",
		Addr:        ":9080",
		WorkerCount: runtime.NumCPU(),
		QueueSize:   100_000,
		DedupeSize:  500_000,

		SampleHitters: 50,
		SampleSeed:    1,
		Year:          2024,

		WeightExitVelocity: defaults.ExitVelocity,
		WeightHardHit:      defaults.HardHit,
		WeightDistance:     defaults.Distance,

		AnchorExitVelocityLow:  anchors.ExitVelocityLow,
		AnchorExitVelocityHigh: anchors.ExitVelocityHigh,
		AnchorHardHitHigh:      anchors.HardHitHigh,
	}
}

// Weights assembles the scoring weights from the config fields.
func (c *Config) Weights() scoring.Weights {
	return scoring.Weights{
		ExitVelocity: c.WeightExitVelocity,
		HardHit:      c.WeightHardHit,
		Distance:     c.WeightDistance,
	}
}

// Anchors assembles the scoring anchors from the config fields.
func (c *Config) Anchors() scoring.Anchors {
	return scoring.Anchors{
		ExitVelocityLow:  c.AnchorExitVelocityLow,
		ExitVelocityHigh: c.AnchorExitVelocityHigh,
		HardHitHigh:      c.AnchorHardHitHigh,
	}
}
