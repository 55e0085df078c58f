package lang

import "github.com/Injng/elements/pkg"

// Predefined errors (sentinel values).
var (
	ErrExpectedLeftParen = pkg.NewError("expected left parenthesis")
	ErrMismatchedParens  = pkg.NewError("mismatched parentheses")
	ErrEmptySection      = pkg.NewError("empty token section")
	ErrSingleToken       = pkg.NewError("single token must be a literal")
	ErrExpectedFunction  = pkg.NewError("expected function")
	ErrUnexpectedToken   = pkg.NewError("unexpected token")
	ErrExpectedLiteral   = pkg.NewError("expected literal argument")
	ErrUnboundVariable   = pkg.NewError("unbound variable")
	ErrInvalidVariable   = pkg.NewError("invalid variable name")
	ErrArgumentCount     = pkg.NewError("wrong number of arguments")
	ErrArgumentType      = pkg.NewError("invalid argument type")
)
