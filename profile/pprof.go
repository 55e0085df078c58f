//go:build pprof

package profile

import (
	"maps"
	"slices"

	"github.com/pkg/profile"
)

// Modes returns the list of supported profiling modes when built with the
// pprof build tag.
func Modes() []string {
	return slices.Sorted(maps.Keys(mode))
}

//nolint:gochecknoglobals
var mode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"trace":     profile.TraceProfile,
}

func start(name, path string) interface{ Stop() } {
	selected, ok := mode[name]
	if !ok {
		return ignore{}
	}

	opts := []func(*profile.Profile){selected, profile.Quiet}
	if path != "" {
		opts = append(opts, profile.ProfilePath(path))
	}

	return profile.Start(opts...)
}
