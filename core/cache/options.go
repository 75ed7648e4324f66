package cache

import (
	"io"
	"log/slog"
)

// settings holds construction-time configuration shared by Cache and
// KeyedCache.
type settings struct {
	capacity int
	logger   *slog.Logger
}

// Option configures a cache during construction.
type Option func(*settings)

// WithCapacity sets the maximum number of entries the cache may hold.
// Zero (the default) means unbounded: no eviction ever occurs.
// Negative values are rejected by New and NewKeyed.
func WithCapacity(n int) Option {
	return func(s *settings) {
		s.capacity = n
	}
}

// WithLogger sets the logger for internal operations such as evictions.
// Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
