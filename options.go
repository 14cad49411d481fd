package rubik

import (
	"math/rand"
	"time"
)

// Option configures cube behavior.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	moveHistory bool
}

func defaultConfig() *config {
	return &config{
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		moveHistory: true,
	}
}

// WithRand sets the random source used by Scramble.
// Use a fixed seed for reproducible scrambles.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds the scramble random source deterministically.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all moves are stored and accessible via History().
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}
