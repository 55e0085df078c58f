package cmd

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/Injng/elements/lang"
	"github.com/Injng/elements/pkg"
	"github.com/Injng/elements/svg"
)

// Render evaluates a script and writes the constructed figures as an SVG
// document.
type Render struct {
	Script string  `arg:"" default:"-"      help:"Script file or '-' for stdin"  name:"script"`
	Output string  `       default:"-"      help:"Output file or '-' for stdout" short:"o" type:"path"`
	Width  int     `       default:"800"    help:"Canvas width in pixels"`
	Height int     `       default:"800"    help:"Canvas height in pixels"`
	Scale  float64 `       default:"20"     help:"Pixels per geometric unit"`
	Seed   *uint64 `                        help:"Seed the random sampler for reproducible output"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	source, err := readScript(r.Script)
	if err != nil {
		return err
	}

	values, err := lang.EvaluateString(source, r.options()...)
	if err != nil {
		return pkg.WrapError(err).
			With(
				slog.String("command", "render"),
				slog.String("script", r.Script),
			)
	}

	opts := svg.Options{
		Width:  r.Width,
		Height: r.Height,
		Scale:  r.Scale,
	}

	out := os.Stdout
	if r.Output != stdinSource {
		out, err = os.Create(r.Output)
		if err != nil {
			return ErrWriteOutput.
				With(slog.String("file", r.Output)).
				Wrap(err)
		}
		defer out.Close()
	}

	if err := svg.Write(out, values, opts); err != nil {
		return ErrWriteOutput.
			With(slog.String("file", r.Output)).
			Wrap(err)
	}

	return nil
}

// options converts the command flags into evaluator options.
func (r *Render) options() []lang.Option {
	if r.Seed == nil {
		return nil
	}

	return []lang.Option{
		lang.WithRand(rand.New(rand.NewPCG(*r.Seed, 0))),
	}
}
