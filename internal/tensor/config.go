package tensor

import (
	"sync/atomic"

	"github.com/born-ml/ndarray/internal/parallel"
)

// Config controls engine-wide behaviour.
type Config struct {
	Parallel       parallel.Config // Chunking for element kernels.
	PrintPrecision int             // Maximum fractional digits when rendering floats.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	return Config{
		Parallel:       parallel.DefaultConfig(),
		PrintPrecision: 8,
	}
}

var current atomic.Pointer[Config]

func init() {
	cfg := DefaultConfig()
	current.Store(&cfg)
}

// SetConfig replaces the engine configuration.
func SetConfig(cfg Config) {
	if cfg.PrintPrecision <= 0 {
		cfg.PrintPrecision = DefaultConfig().PrintPrecision
	}
	current.Store(&cfg)
}

// CurrentConfig returns the active engine configuration.
func CurrentConfig() Config {
	return *current.Load()
}
