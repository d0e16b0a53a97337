package gen

import (
	"math/rand"
	"strconv"
)

// IDFn maps a vertex index to its string token.
type IDFn func(i int) string

// DefaultIDFn renders indices as decimal strings "0","1",…
func DefaultIDFn(i int) string { return strconv.Itoa(i) }

// Option customizes generator behavior. Option constructors never panic
// and ignore nil inputs.
type Option func(cfg *config)

// config holds the resolved generator parameters:
//   - rng:  source of randomness (nil means deterministic constructors only)
//   - idFn: function mapping index → vertex token
//
// config is not safe for concurrent mutation; each Build call resolves
// its own.
type config struct {
	rng  *rand.Rand
	idFn IDFn
}

// newConfig returns a config with defaults (nil RNG, DefaultIDFn), then
// applies each Option in order; later options override earlier ones.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) *config {
	cfg := &config{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithIDScheme injects a custom IDFn. Nil is a no-op.
func WithIDScheme(idFn IDFn) Option {
	return func(cfg *config) {
		if idFn != nil {
			cfg.idFn = idFn
		}
	}
}

// WithRand sets an explicit *rand.Rand source. Nil is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value.
// Use this for reproducible stochastic constructors.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
