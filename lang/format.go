package lang

import "strings"

// FormatString re-emits a script in canonical form: one top-level section
// per line, single spaces between words, and no comments (the tokenizer
// discards them). Unbalanced parentheses are reported as an error.
func FormatString(source string) (string, error) {
	tokens := Tokenize(source, NewRegistry(nil, 0))

	var b strings.Builder

	depth := 0
	afterOpen := false

	for _, token := range tokens {
		switch token.Kind {
		case TokenLeftParen:
			if depth == 0 {
				if b.Len() > 0 {
					b.WriteByte('\n')
				}
			} else if !afterOpen {
				b.WriteByte(' ')
			}

			b.WriteByte('(')

			depth++
			afterOpen = true

		case TokenRightParen:
			depth--
			if depth < 0 {
				return "", ErrMismatchedParens
			}

			b.WriteByte(')')

			afterOpen = false

		default:
			if depth == 0 && b.Len() > 0 {
				b.WriteByte('\n')
			} else if depth > 0 && !afterOpen {
				b.WriteByte(' ')
			}

			b.WriteString(tokenWord(token))

			afterOpen = false
		}
	}

	if depth != 0 {
		return "", ErrMismatchedParens
	}

	if b.Len() > 0 {
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// tokenWord returns the source word for a non-parenthesis token. Lexed
// literals re-emit their original word, so a formatted literal re-lexes to
// the same value (notably "2.0" stays a float rather than collapsing to an
// int). Synthesized literals have no source word and fall back to their
// display form.
func tokenWord(token Token) string {
	switch token.Kind {
	case TokenLiteral:
		if token.Name != "" {
			return token.Name
		}

		return token.Value.String()
	default:
		return token.Name
	}
}
