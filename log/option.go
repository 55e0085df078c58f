package log

import "io"

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithWriter returns an option that sets the output writer.
func WithWriter(w io.Writer) Option {
	return func(cfg config) config {
		cfg.writer = w

		return cfg
	}
}

// WithLevel returns an option that sets the minimum level.
func WithLevel(level Level) Option {
	return func(cfg config) config {
		cfg.level = level

		return cfg
	}
}

// WithFormat returns an option that sets the output format.
func WithFormat(format Format) Option {
	return func(cfg config) config {
		cfg.format = format

		return cfg
	}
}
