// Package cli implements the elements command-line interface.
package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/Injng/elements/cli/cmd"
	"github.com/Injng/elements/cli/cmd/repl"
	"github.com/Injng/elements/pkg"
)

// CLI is the top-level command-line interface for elements.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Eval   cmd.Eval   `cmd:"" default:"withargs" help:"Evaluate a script and print its values"`
	Render cmd.Render `cmd:""                    help:"Evaluate a script and write an SVG document"`
	Fmt    cmd.Fmt    `cmd:""                    help:"Rewrite a script in canonical form"`
	Init   cmd.Init   `cmd:""                    help:"Write the default configuration file"`
	Repl   repl.Repl  `cmd:""                    help:"Start an interactive session"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`
}

// Run executes the elements CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(ctx context.Context, exit func(code int), args ...string) error {
	var cli CLI

	configFilePath := configPath()

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		"version":            pkg.Name + " " + pkg.Version,
	}.CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		kong.Configuration(resolveYAML, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)

	// Finalize logger configuration with all parsed values.
	cli.Log.start(ctx)

	defer cli.Pprof.start().Stop()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}

// configPath returns the path of the user configuration file.
func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", pkg.Name+".yaml")
	}

	return filepath.Join(dir, pkg.Name, "config.yaml")
}
