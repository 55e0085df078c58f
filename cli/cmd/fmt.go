package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Injng/elements/lang"
	"github.com/Injng/elements/pkg"
)

// Fmt rewrites a script in canonical form: one top-level form per line with
// single spaces between tokens, comments removed.
type Fmt struct {
	Script string `arg:"" default:"-" help:"Script file or '-' for stdin" name:"script"`
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	source, err := readScript(f.Script)
	if err != nil {
		return err
	}

	formatted, err := lang.FormatString(source)
	if err != nil {
		return pkg.WrapError(err).
			With(
				slog.String("command", "fmt"),
				slog.String("script", f.Script),
			)
	}

	fmt.Print(formatted)

	return nil
}
