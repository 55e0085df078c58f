// Package lang implements the elements construction language: a tokenizer,
// an operation registry with committed-choice overload dispatch, and a
// recursive evaluator that reduces parenthesized sections to geometric
// values against a mutable variable environment.
package lang

import (
	crand "crypto/rand"
	"log/slog"
	"math/rand/v2"

	"github.com/Injng/elements/geom"
)

// config collects evaluator settings applied through functional options.
type config struct {
	rng         *rand.Rand
	maxAttempts int
}

// Option applies a configuration option to an evaluator config.
type Option func(*config)

// WithRand sets the random source used by sampling constructors. The
// default source is seeded from crypto/rand and is not reproducible; tests
// pin it with a fixed-seed source.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) { cfg.rng = rng }
}

// WithMaxAttempts bounds each rejection-sampling loop. Exhausting the bound
// fails with a descriptive error instead of looping forever on an
// unsatisfiable constraint.
func WithMaxAttempts(n int) Option {
	return func(cfg *config) { cfg.maxAttempts = n }
}

// defaultRand returns a non-reproducible random source.
func defaultRand() *rand.Rand {
	var seed [32]byte

	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(seed[:])

	return rand.New(rand.NewChaCha8(seed))
}

func makeConfig(opts ...Option) config {
	cfg := config{maxAttempts: geom.DefaultMaxAttempts}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rng == nil {
		cfg.rng = defaultRand()
	}

	return cfg
}

// EvaluateString tokenizes and evaluates a whole script, returning its
// ordered output values: one per top-level expression, followed by a label
// for every variable bound to a point at run end.
func EvaluateString(source string, opts ...Option) ([]Value, error) {
	cfg := makeConfig(opts...)
	reg := NewRegistry(cfg.rng, cfg.maxAttempts)

	return Evaluate(Tokenize(source, reg))
}

// Evaluate reduces a token sequence to its ordered output values, threading
// a fresh environment through the whole run. The first error anywhere
// aborts the evaluation with no partial output.
func Evaluate(tokens []Token) ([]Value, error) {
	env := NewEnvironment()

	values, err := evaluate(tokens, env)
	if err != nil {
		return nil, err
	}

	return append(values, Labels(env)...), nil
}

// evaluate walks the full token sequence left to right without the label
// post-pass, mutating env in place. Used directly by sessions that keep an
// environment alive across inputs.
func evaluate(tokens []Token, env *Environment) ([]Value, error) {
	values := make([]Value, 0, len(tokens))

	i := 0
	for i < len(tokens) {
		switch tokens[i].Kind {
		case TokenLeftParen:
			sec, err := section(tokens[i:])
			if err != nil {
				return nil, err
			}

			value, err := reduce(sec, env)
			if err != nil {
				return nil, err
			}

			values = append(values, value)
			i += len(sec)

		case TokenLiteral:
			values = append(values, tokens[i].Value)
			i++

		case TokenVariable:
			// Bare variables at top level must already be bound.
			value, ok := env.Get(tokens[i].Name)
			if !ok {
				return nil, ErrUnboundVariable.
					With(slog.String("name", tokens[i].Name))
			}

			values = append(values, value)
			i++

		default:
			return nil, ErrUnexpectedToken.
				With(slog.String("token", tokens[i].Kind.String()))
		}
	}

	return values, nil
}

// Labels returns a display label for every point-valued binding, in
// environment insertion order. This is the one place environment state
// leaks into the output contract.
func Labels(env *Environment) []Value {
	labels := make([]Value, 0, env.Len())

	for name, value := range env.All() {
		if value.Kind == KindPoint {
			labels = append(labels, LabelValue(name, value.Point))
		}
	}

	return labels
}

// section returns the minimal prefix of tokens whose parenthesis depth
// returns to zero. The slice must start with a left parenthesis.
func section(tokens []Token) ([]Token, error) {
	if len(tokens) == 0 || tokens[0].Kind != TokenLeftParen {
		return nil, ErrExpectedLeftParen
	}

	depth := 0
	for i, token := range tokens {
		switch token.Kind {
		case TokenLeftParen:
			depth++
		case TokenRightParen:
			depth--
		}

		if depth == 0 {
			return tokens[:i+1], nil
		}
	}

	return nil, ErrMismatchedParens
}

// reduce turns one balanced section into a single value. A single-token
// section must be a literal; a longer section must be a parenthesized call
// whose arguments are reduced recursively.
func reduce(tokens []Token, env *Environment) (Value, error) {
	if len(tokens) == 0 {
		return Value{}, ErrEmptySection
	}

	if len(tokens) == 1 {
		if tokens[0].Kind != TokenLiteral {
			return Value{}, ErrSingleToken.
				With(slog.String("token", tokens[0].Kind.String()))
		}

		return tokens[0].Value, nil
	}

	if tokens[0].Kind != TokenLeftParen {
		return Value{}, ErrExpectedLeftParen
	}

	if tokens[1].Kind != TokenFunction {
		return Value{}, ErrExpectedFunction.
			With(slog.String("token", tokens[1].Kind.String()))
	}

	// Each call reduces on its own copy of the function token so its
	// argument list accumulates independently of any other call site.
	fn := tokens[1]
	fn.Args = make([]Token, 0, len(tokens)-3)

	i := 2
	for i < len(tokens)-1 {
		switch tokens[i].Kind {
		case TokenLeftParen:
			sec, err := section(tokens[i:])
			if err != nil {
				return Value{}, err
			}

			value, err := reduce(sec, env)
			if err != nil {
				return Value{}, err
			}

			fn.Args = append(fn.Args, literalToken(value))
			i += len(sec)

		case TokenLiteral:
			fn.Args = append(fn.Args, tokens[i])
			i++

		case TokenVariable:
			// A bound variable substitutes its current value; an unbound one
			// is retained by name so assignment can receive a name rather
			// than a value.
			if value, ok := env.Get(tokens[i].Name); ok {
				fn.Args = append(fn.Args, literalToken(value))
			} else {
				fn.Args = append(fn.Args, tokens[i])
			}

			i++

		default:
			return Value{}, ErrUnexpectedToken.
				With(slog.String("token", tokens[i].Kind.String()))
		}
	}

	// Flatten to plain values: still-unresolved variables become strings
	// holding their names.
	args := make([]Value, 0, len(fn.Args))

	for _, arg := range fn.Args {
		switch arg.Kind {
		case TokenLiteral:
			args = append(args, arg.Value)

		case TokenVariable:
			args = append(args, StringValue(arg.Name))

		default:
			return Value{}, ErrExpectedLiteral.
				With(slog.String("token", arg.Kind.String()))
		}
	}

	result, err := fn.Op.Call(args)
	if err != nil {
		return Value{}, err
	}

	// A successful assignment writes the environment and yields no
	// displayable value.
	if fn.Name == SetName {
		env.Set(args[0].Str, result)

		return Undefined(), nil
	}

	return result, nil
}

// Session evaluates inputs against a persistent environment, as used by the
// REPL. Each Eval call appends to the same variable scope.
type Session struct {
	reg *Registry
	env *Environment
}

// NewSession creates a session with a fresh environment.
func NewSession(opts ...Option) *Session {
	cfg := makeConfig(opts...)

	return &Session{
		reg: NewRegistry(cfg.rng, cfg.maxAttempts),
		env: NewEnvironment(),
	}
}

// Eval tokenizes and evaluates one input against the session environment.
// Labels are not appended; use Labels with Env for a final snapshot.
func (s *Session) Eval(source string) ([]Value, error) {
	return evaluate(Tokenize(source, s.reg), s.env)
}

// Env returns the session's environment.
func (s *Session) Env() *Environment { return s.env }
