package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/Injng/elements/lang"
	"github.com/Injng/elements/pkg"
)

// Eval evaluates a script and prints the value of each top-level form.
type Eval struct {
	Script string  `arg:"" default:"-" help:"Script file or '-' for stdin" name:"script"`
	Seed   *uint64 `       help:"Seed the random sampler for reproducible output"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	source, err := readScript(e.Script)
	if err != nil {
		return err
	}

	values, err := lang.EvaluateString(source, e.options()...)
	if err != nil {
		return pkg.WrapError(err).
			With(
				slog.String("command", "eval"),
				slog.String("script", e.Script),
			)
	}

	for _, val := range values {
		if val.Kind == lang.KindUndefined {
			continue
		}

		fmt.Println(val.String())
	}

	return nil
}

// options converts the command flags into evaluator options.
func (e *Eval) options() []lang.Option {
	if e.Seed == nil {
		return nil
	}

	return []lang.Option{
		lang.WithRand(rand.New(rand.NewPCG(*e.Seed, 0))),
	}
}
