package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Injng/elements/cli"
	"github.com/Injng/elements/log"
	"github.com/Injng/elements/pkg"
)

func main() {
	ctx := context.Background()

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)
	if err != nil {
		// The error's LogValue carries its structured attributes.
		log.ErrorContext(ctx, pkg.Name+" failed",
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
