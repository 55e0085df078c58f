//go:build pprof

package cli

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Injng/elements/profile"
)

type pprofConfig struct {
	Mode string `default:"" enum:",${pprofModeEnum}" help:"Enable profiling" placeholder:"${enum}"`
	Dir  string `default:""                          help:"Profile output directory" type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
	}
}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

// start starts profiling if configured.
func (f pprofConfig) start() interface{ Stop() } {
	return profile.Make(
		profile.WithMode(f.Mode),
		profile.WithPath(f.Dir),
	).Start()
}
