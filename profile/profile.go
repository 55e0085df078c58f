// Package profile wraps github.com/pkg/profile behind the pprof build tag.
// Without the tag every entry point is a safely callable no-op, so the CLI
// can always declare its profiling flags.
package profile

// Tag is the build tag (and default output subdirectory) for profiling.
const Tag = "pprof"

// Config functions return all supported profiling configuration parameters.
type Config func() (mode, path string)

// Make constructs a Config from functional options.
func Make(opts ...func(Config) Config) Config {
	c := Config(func() (string, string) { return "", "" })

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// WithMode returns a functional option for setting the profiler's mode.
func WithMode(mode string) func(Config) Config {
	return func(c Config) Config {
		_, path := c()

		return func() (string, string) {
			return mode, path
		}
	}
}

// WithPath returns a functional option for setting the output directory.
func WithPath(path string) func(Config) Config {
	return func(c Config) Config {
		mode, _ := c()

		return func() (string, string) {
			return mode, path
		}
	}
}

// Start initializes the profiler and returns an interface for stopping it.
// If the pprof build tag or the mode is unset, Start returns a no-op
// implementation. Both Start and Stop are always safely callable.
func (c Config) Start() interface{ Stop() } {
	mode, path := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path)
}

type ignore struct{}

func (ignore) Stop() {}
