package lang

import "testing"

func tokenize(t *testing.T, source string) []Token {
	t.Helper()

	return Tokenize(source, NewRegistry(nil, 0))
}

func TestTokenizeCall(t *testing.T) {
	tokens := tokenize(t, "(+ 1 2)")

	want := []TokenKind{
		TokenLeftParen, TokenFunction, TokenLiteral, TokenLiteral,
		TokenRightParen,
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}

	for i, kind := range want {
		if tokens[i].Kind != kind {
			t.Errorf("token %d = %v, want %v", i, tokens[i].Kind, kind)
		}
	}

	if tokens[1].Name != "+" {
		t.Errorf("function name = %q, want %q", tokens[1].Name, "+")
	}

	if tokens[2].Value.Kind != KindInt || tokens[2].Value.Int != 1 {
		t.Errorf("first literal = %v, want Int 1", tokens[2].Value)
	}
}

func TestTokenizeNoWhitespacePadding(t *testing.T) {
	// Parentheses need no surrounding whitespace.
	tokens := tokenize(t, "(point 0 0)(point 1 1)")

	if len(tokens) != 10 {
		t.Fatalf("got %d tokens, want 10", len(tokens))
	}

	if tokens[5].Kind != TokenLeftParen {
		t.Errorf("token 5 = %v, want LeftParen", tokens[5].Kind)
	}
}

func TestTokenizeLiteralKinds(t *testing.T) {
	tests := []struct {
		word string
		kind TokenKind
		want Kind
	}{
		{"42", TokenLiteral, KindInt},
		{"-7", TokenLiteral, KindInt},
		{"2.5", TokenLiteral, KindFloat},
		{"-0.5", TokenLiteral, KindFloat},
		{"x", TokenVariable, 0},
		{"p-1", TokenVariable, 0},
	}

	for _, tt := range tests {
		tokens := tokenize(t, tt.word)
		if len(tokens) != 1 {
			t.Fatalf("%q: got %d tokens, want 1", tt.word, len(tokens))
		}

		if tokens[0].Kind != tt.kind {
			t.Errorf("%q: kind = %v, want %v", tt.word, tokens[0].Kind, tt.kind)

			continue
		}

		if tt.kind == TokenLiteral && tokens[0].Value.Kind != tt.want {
			t.Errorf("%q: value kind = %v, want %v",
				tt.word, tokens[0].Value.Kind, tt.want)
		}
	}
}

func TestTokenizeNonFiniteWordsAreVariables(t *testing.T) {
	// strconv.ParseFloat accepts these words, but they are all valid
	// variable names and must lex as references.
	for _, word := range []string{"inf", "Inf", "infinity", "nan", "NaN"} {
		tokens := tokenize(t, word)
		if len(tokens) != 1 {
			t.Fatalf("%q: got %d tokens, want 1", word, len(tokens))
		}

		if tokens[0].Kind != TokenVariable {
			t.Errorf("%q: kind = %v, want Variable", word, tokens[0].Kind)
		}
	}

	// Signed and exotic spellings are not valid variable names either way,
	// but they must not become non-finite literals.
	for _, word := range []string{"+inf", "-Inf", "+infinity", "-nan"} {
		tokens := tokenize(t, word)
		if tokens[0].Kind == TokenLiteral {
			t.Errorf("%q: lexed as literal %v", word, tokens[0].Value)
		}
	}
}

func TestTokenizeCommentEndsAtNewline(t *testing.T) {
	tokens := tokenize(t, "; opening remark\n(+ 1 2)")

	if len(tokens) != 5 {
		t.Fatalf("got %d tokens, want 5", len(tokens))
	}

	if tokens[0].Kind != TokenLeftParen {
		t.Errorf("first token = %v, want LeftParen", tokens[0].Kind)
	}
}

func TestTokenizeCommentEndsAtParen(t *testing.T) {
	// A parenthesis terminates a comment and is itself processed.
	tokens := tokenize(t, "; remark (+ 1 2)")

	want := []TokenKind{
		TokenLeftParen, TokenFunction, TokenLiteral, TokenLiteral,
		TokenRightParen,
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}

	for i, kind := range want {
		if tokens[i].Kind != kind {
			t.Errorf("token %d = %v, want %v", i, tokens[i].Kind, kind)
		}
	}
}

func TestTokenizeCommentDiscardsWords(t *testing.T) {
	tokens := tokenize(t, "1 ; 2 3\n4")

	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}

	if tokens[0].Value.Int != 1 || tokens[1].Value.Int != 4 {
		t.Errorf("literals = %v %v, want 1 4", tokens[0].Value, tokens[1].Value)
	}
}

func TestTokenizeUnknownFunction(t *testing.T) {
	tokens := tokenize(t, "(frobnicate 1)")

	if tokens[1].Kind != TokenFunction {
		t.Fatalf("token 1 = %v, want Function", tokens[1].Kind)
	}

	// Unknown names resolve to the no-op operation, not an error.
	if tokens[1].Op == nil {
		t.Fatal("unknown function resolved to nil operation")
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"p", "abc", "p1", "my-point", "my_point", "A2-b"}
	invalid := []string{"", "1p", "-p", "_x", "a!b", "p q"}

	for _, name := range valid {
		if !ValidName(name) {
			t.Errorf("ValidName(%q) = false, want true", name)
		}
	}

	for _, name := range invalid {
		if ValidName(name) {
			t.Errorf("ValidName(%q) = true, want false", name)
		}
	}
}
