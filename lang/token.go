package lang

// TokenKind discriminates the token variants produced by the tokenizer.
type TokenKind int

const (
	// TokenLeftParen marks the opening of a call section.
	TokenLeftParen TokenKind = iota

	// TokenRightParen marks the close of a call section.
	TokenRightParen

	// TokenLiteral holds one Value.
	TokenLiteral

	// TokenVariable is a named variable reference; its value is
	// Indeterminate until resolved against the environment.
	TokenVariable

	// TokenFunction is a function-call head: a name, an operation handle,
	// and an argument list that accumulates during reduction.
	TokenFunction
)

// String returns a string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"
	case TokenLiteral:
		return "Literal"
	case TokenVariable:
		return "Variable"
	case TokenFunction:
		return "Function"
	default:
		return "Unknown"
	}
}

// Token is one element of the tokenizer's output. Tokens are immutable once
// produced except for a function token's argument list, which each reduction
// accumulates on its own copy.
type Token struct {
	Kind  TokenKind
	Name  string    // variable or function name; source word for lexed literals
	Value Value     // literal payload; Indeterminate for variables
	Op    Operation // operation handle for function tokens
	Args  []Token   // accumulating arguments for function tokens
}

// literalToken wraps a value as a literal token.
func literalToken(v Value) Token {
	return Token{Kind: TokenLiteral, Value: v}
}
