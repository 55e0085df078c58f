package lang

import (
	"math"
	"strconv"
	"strings"
)

// newline is the sentinel word substituted for newline characters so that
// line-comment termination survives whitespace splitting.
const newline = `\n`

// padding separates the structural characters from adjacent words so a plain
// whitespace split yields one word per token.
var padding = strings.NewReplacer(
	"(", " ( ",
	")", " ) ",
	";", " ; ",
	"\n", " "+newline+" ",
)

// Tokenize converts source text into a flat, finite sequence of tokens.
//
// A semicolon begins a line comment: subsequent words are discarded until a
// newline (discarded with them) or a parenthesis, which ends the comment and
// is processed as a token. The word immediately following a left parenthesis
// is always classified as a function name, resolved against the registry;
// unknown names resolve to the no-op operation rather than an error.
func Tokenize(source string, reg *Registry) []Token {
	words := strings.Fields(padding.Replace(source))
	tokens := make([]Token, 0, len(words))

	prevParen := false
	inComment := false

	for _, word := range words {
		if word == ";" {
			inComment = true

			continue
		}

		if inComment {
			if word != "(" && word != ")" && word != newline {
				continue
			}

			inComment = false
		}

		if word == newline {
			continue
		}

		token := matchToken(word, prevParen, reg)
		prevParen = token.Kind == TokenLeftParen
		tokens = append(tokens, token)
	}

	return tokens
}

// matchToken classifies one word. Classification never fails: resolution of
// unknown identifiers is deferred to evaluation.
func matchToken(word string, prevParen bool, reg *Registry) Token {
	// The word after a left paren is always the function name.
	if prevParen {
		return Token{
			Kind: TokenFunction,
			Name: word,
			Op:   reg.Lookup(word),
		}
	}

	switch word {
	case "(":
		return Token{Kind: TokenLeftParen}

	case ")":
		return Token{Kind: TokenRightParen}

	default:
		// Only words within the 32-bit range count as integer literals.
		if i, err := strconv.ParseInt(word, 10, 32); err == nil {
			return Token{Kind: TokenLiteral, Name: word, Value: IntValue(i)}
		}

		// ParseFloat also accepts words like "inf" and "nan", which are
		// valid variable names. Only numeric-looking words that parse to a
		// finite value become float literals.
		if numericWord(word) {
			f, err := strconv.ParseFloat(word, 64)
			if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
				return Token{Kind: TokenLiteral, Name: word, Value: FloatValue(f)}
			}
		}

		return Token{
			Kind:  TokenVariable,
			Name:  word,
			Value: Indeterminate(),
		}
	}
}

// numericWord reports whether a word can begin a numeric literal. Words with
// a leading letter never do, keeping names like "inf" available as variable
// references.
func numericWord(word string) bool {
	switch word[0] {
	case '+', '-', '.':
		return true
	}

	return word[0] >= '0' && word[0] <= '9'
}
