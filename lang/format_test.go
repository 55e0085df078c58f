package lang

import (
	"errors"
	"testing"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "collapses whitespace",
			source: "(  +   1    2 )",
			want:   "(+ 1 2)\n",
		},
		{
			name:   "one form per line",
			source: "(setq p (point 0 0)) (point 1 1)",
			want:   "(setq p (point 0 0))\n(point 1 1)\n",
		},
		{
			name:   "joins split forms",
			source: "(lineseg\n  (point 0 0)\n  (point 1 1))",
			want:   "(lineseg (point 0 0) (point 1 1))\n",
		},
		{
			name:   "strips comments",
			source: "; remark\n(+ 1 2) ; trailing\n",
			want:   "(+ 1 2)\n",
		},
		{
			name:   "top-level literals",
			source: "1 2.5 x",
			want:   "1\n2.5\nx\n",
		},
		{
			name:   "empty source",
			source: "  \n ; only a comment\n",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatString(tt.source)
			if err != nil {
				t.Fatalf("FormatString: %v", err)
			}

			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatStringPreservesLiteralWords(t *testing.T) {
	// "2.0" must stay a float word; collapsing it to "2" would change the
	// program under the no-promotion arithmetic rule.
	got, err := FormatString("(+  2.0   2.5)")
	if err != nil {
		t.Fatalf("FormatString: %v", err)
	}

	if got != "(+ 2.0 2.5)\n" {
		t.Fatalf("got %q, want %q", got, "(+ 2.0 2.5)\n")
	}

	values, err := EvaluateString(got)
	if err != nil {
		t.Fatalf("formatted output no longer evaluates: %v", err)
	}

	if values[0].Kind != KindFloat || values[0].Float != 4.5 {
		t.Errorf("value = %v, want Float 4.5", values[0])
	}
}

func TestFormatStringIdempotent(t *testing.T) {
	source := "(setq   c (circle))\n( triangle c )"

	once, err := FormatString(source)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}

	twice, err := FormatString(once)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}

	if once != twice {
		t.Errorf("not idempotent: %q vs %q", once, twice)
	}
}

func TestFormatStringMismatched(t *testing.T) {
	for _, source := range []string{"(+ 1 2", "(+ 1 2))"} {
		if _, err := FormatString(source); !errors.Is(err, ErrMismatchedParens) {
			t.Errorf("%q: expected ErrMismatchedParens, got %v", source, err)
		}
	}
}
