// Package cmd implements the subcommands of the elements CLI.
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// ConfigIdentifier is the kong variable identifier containing the path of
// the user configuration file.
const ConfigIdentifier = "config"

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// readScript reads the entire script at path, which names either a regular
// file or stdin ("-").
func readScript(path string) (string, error) {
	if path == stdinSource {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", ErrReadScript.
				Wrap(err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", ErrReadScript.
			Wrap(err)
	}

	return string(data), nil
}
