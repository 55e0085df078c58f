package cmd

import "github.com/Injng/elements/pkg"

var (
	ErrReadScript  = pkg.NewError("read script")
	ErrYAMLMarshal = pkg.NewError("marshal YAML")
	ErrWriteConfig = pkg.NewError("write configuration file")
	ErrWriteOutput = pkg.NewError("write output file")
	ErrFileExists  = pkg.NewError("file exists (use --force to overwrite)")
)
