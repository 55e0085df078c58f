//go:build !pprof

package cli

import (
	"github.com/alecthomas/kong"

	"github.com/Injng/elements/profile"
)

// pprofConfig carries no flags when built without the pprof tag.
type pprofConfig struct{}

func (pprofConfig) vars() kong.Vars { return kong.Vars{} }

func (pprofConfig) group() kong.Group { return kong.Group{} }

// start is a no-op when built without the pprof tag.
func (pprofConfig) start() interface{ Stop() } {
	return profile.Make().Start()
}
