//nolint:gochecknoglobals
package pkg

const (
	// Name is the canonical command and module identifier used across the
	// project. For example, it appears in help text and default config paths.
	Name = "elements"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Geometric construction script evaluator and renderer"
	// Version is the semantic version of the elements module.
	Version = "0.3.0"
)
