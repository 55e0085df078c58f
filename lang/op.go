package lang

import (
	"math/rand/v2"

	"github.com/Injng/elements/geom"
)

// Operation is a named language function: it accepts a variable-length,
// variably-typed argument list and returns a value or a descriptive failure.
// Operations are stateless; a function token's argument list lives on the
// token, so one Operation value may serve any number of calls.
type Operation interface {
	Call(args []Value) (Value, error)
}

// SetName is the name of the assignment pseudo-operation, which the
// evaluator treats specially.
const SetName = "setq"

// Registry resolves function names to operations. Operations that sample
// random points share the registry's sampler so the random source can be
// pinned in tests.
type Registry struct {
	sampler geom.Sampler
}

// NewRegistry creates a registry whose sampling operations draw from rng and
// give up after maxAttempts rejected draws.
func NewRegistry(rng *rand.Rand, maxAttempts int) *Registry {
	return &Registry{
		sampler: geom.Sampler{Rand: rng, MaxAttempts: maxAttempts},
	}
}

// Lookup returns the operation bound to name. Unknown names resolve to the
// no-op operation, not an error.
func (r *Registry) Lookup(name string) Operation {
	switch name {
	// basic arithmetic functions
	case "+":
		return opArith{name: "addition", apply: func(a, b int64) int64 { return a + b },
			applyFloat: func(a, b float64) float64 { return a + b }}
	case "-":
		return opArith{name: "subtraction", apply: func(a, b int64) int64 { return a - b },
			applyFloat: func(a, b float64) float64 { return a - b }}
	case "*":
		return opArith{name: "multiplication", apply: func(a, b int64) int64 { return a * b },
			applyFloat: func(a, b float64) float64 { return a * b }}
	case "/":
		return opArith{name: "division", apply: func(a, b int64) int64 { return a / b },
			applyFloat: func(a, b float64) float64 { return a / b }}

	// setq function
	case SetName:
		return opSet{}

	// basic geometric components
	case "point":
		return opPoint{}
	case "lineseg":
		return opLineseg{}
	case "angle":
		return opAngle{}
	case "iangle":
		return opInscribedAngle{sampler: r.sampler}
	case "midpoint":
		return opMidpoint{}

	// basic geometric shapes
	case "circle":
		return opCircle{}
	case "triangle":
		return opTriangle{sampler: r.sampler}

	// triangle centers
	case "circumcenter":
		return opCenter{name: "circumcenter", center: geom.Triangle.Circumcenter}
	case "incenter":
		return opCenter{name: "incenter", center: geom.Triangle.Incenter}
	case "orthocenter":
		return opCenter{name: "orthocenter", center: geom.Triangle.Orthocenter}
	case "centroid":
		return opCenter{name: "centroid", center: geom.Triangle.Centroid}

	// functions that return properties
	case "intersect":
		return opIntersect{}
	case "inradius":
		return opInradius{}

	default:
		return opNop{}
	}
}

// OperationNames returns the names of all recognized operations, in the
// order the registry declares them. Used for REPL completion.
func OperationNames() []string {
	return []string{
		"+", "-", "*", "/",
		SetName,
		"point", "lineseg", "angle", "iangle", "midpoint",
		"circle", "triangle",
		"circumcenter", "incenter", "orthocenter", "centroid",
		"intersect", "inradius",
	}
}
