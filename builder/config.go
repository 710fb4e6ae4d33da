// Package builder provides internal configuration types and functional options
// for graph constructors. It centralizes common settings such as random number
// generator, vertex ID scheme, and edge weight distribution to keep builder
// implementations DRY and consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// builderConfig holds the fields consumed across topology and sequence
// constructors:
//   - rng:         *rand.Rand source for randomness (nil → deterministic).
//   - idFn:         IDFn to produce vertex identifiers from integer indices.
//   - weightFn:     WeightFn to produce edge weights given an RNG.
//   - leftPrefix/rightPrefix: bipartite partition label prefixes.
//   - amplitude/frequency/trendK/noiseSigma: shared sequence-dataset knobs.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a graph constructor.
// It mutates the builderConfig before graph construction begins.
//
// As a rule, option constructors validate and panic on meaningless inputs
// (nil functions, nil RNGs); constructors themselves must never panic.
type BuilderOption func(cfg *builderConfig)

// defaultLeftPrefix and defaultRightPrefix label bipartite partitions when
// WithPartitionPrefix is not supplied or supplied with empty strings.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// builderConfig holds the configurable parameters for graph and sequence
// builders.
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	rng      *rand.Rand // optional RNG; nil means deterministic behavior
	idFn     IDFn       // function to generate vertex IDs from indices
	weightFn WeightFn   // function to generate edge weights

	leftPrefix  string // bipartite left-partition label prefix
	rightPrefix string // bipartite right-partition label prefix

	amplitude  float64 // sequence amplitude A (Pulse/Chirp/OHLC)
	frequency  float64 // sequence base frequency f0 (Chirp/Pulse)
	trendK     float64 // sequence linear trend coefficient
	noiseSigma float64 // sequence Gaussian noise sigma
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultIDFn, DefaultWeightFn, "L"/"R" partition prefixes,
// and the shared sequence defaults (amplitude=defAmp, noise=defSigma,
// trend=defTrendSlope).
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	// Initialize defaults
	cfg := builderConfig{
		rng:         nil,             // no RNG → deterministic ID and weight functions
		idFn:        DefaultIDFn,     // decimal IDs "0","1",…
		weightFn:    DefaultWeightFn, // constant DefaultEdgeWeight
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		amplitude:   defAmp,
		noiseSigma:  defSigma,
		trendK:      defTrendSlope,
	}

	// Apply each option in order; later options override earlier ones
	var opt BuilderOption
	for _, opt = range opts {
		opt(&cfg)
	}

	// Empty prefixes (explicit WithPartitionPrefix("", "")) fall back to defaults.
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
