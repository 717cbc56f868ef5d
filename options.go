package goenum

import "log/slog"

// Option configures a Family at construction.
type Option func(*familyConfig)

type familyConfig struct {
	tag      string
	logger   *slog.Logger
	capacity int
	detached bool
}

func newFamilyConfig(displayName string, opts []Option) *familyConfig {
	cfg := &familyConfig{
		tag:      displayName,
		logger:   slog.New(slog.DiscardHandler),
		capacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

const defaultCapacity = 10

// WithTag sets the wire tag written into Ref values. It defaults to the
// display name and must be unique across the catalog.
func WithTag(tag string) Option {
	return func(c *familyConfig) {
		if tag != "" {
			c.tag = tag
		}
	}
}

// WithLogger routes the family's diagnostics (declare and canonicalize
// records at Debug level) to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *familyConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCapacity sizes the member table up front.
func WithCapacity(n int) Option {
	return func(c *familyConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Detached keeps the family out of the process-wide catalog. Lookup[F],
// Resolve and the decode hooks of Member[F] cannot find a detached family;
// use its methods directly.
func Detached() Option {
	return func(c *familyConfig) {
		c.detached = true
	}
}
