package breedtree

import "github.com/rs/zerolog"

// Option customizes Build by mutating a buildConfig before construction.
// Complexity: applying N options costs O(N).
type Option func(*buildConfig)

// buildConfig holds every Build knob. Passed by value once resolved.
type buildConfig struct {
	// logger receives a debug trace of leaf materialisation and merges.
	logger zerolog.Logger
}

// WithLogger routes Build's debug trace to l. The default discards it.
func WithLogger(l zerolog.Logger) Option {
	return func(c *buildConfig) {
		c.logger = l
	}
}

// newBuildConfig applies opts in order over the defaults; last wins.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
