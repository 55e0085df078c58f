package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/Injng/elements/lang"
)

// ctrlCommands are the available colon-prefixed commands.
var ctrlCommands = []string{":help", ":env", ":clear", ":quit"}

// isWordBoundary returns true if the rune is a word delimiter for completion
// purposes. Hyphens are intentionally excluded because variable names may
// contain them.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '(', ')', ';':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input. Words are delimited by whitespace, parentheses,
// and the comment character.
// Returns an empty word when the cursor sits on a boundary (after a space,
// after a paren, start of line, etc.).
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	word = input[start:end]

	return word, start, end
}

// afterOpenParen reports whether the word starting at wordStart immediately
// follows an opening parenthesis, meaning it names an operation.
func afterOpenParen(input string, wordStart int) bool {
	prefix := strings.TrimRight(input[:wordStart], " \t")

	return strings.HasSuffix(prefix, "(")
}

// candidatesFor returns the names that are valid completions for the word at
// wordStart. A word in operator position completes to operation names; any
// other word completes to the session's bound variables. Colon-prefixed words
// complete to REPL commands.
func (m model) candidatesFor(input string, wordStart int) []string {
	if wordStart > 0 && input[wordStart-1] == ':' {
		return ctrlCommands
	}

	if afterOpenParen(input, wordStart) {
		return lang.OperationNames()
	}

	var names []string

	for name := range m.session.Env().All() {
		names = append(names, name)
	}

	return names
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor. It returns the matches (ranked best-first) and the word boundaries.
// When the current word is empty, it returns nil matches so the hint text
// stays visible.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	wordStart, wordEnd int,
) {
	input := m.input.Value()
	cursor := m.input.Position()

	word, ws, we := wordBounds(input, cursor)
	wordStart, wordEnd = ws, we

	if word == "" {
		return nil, wordStart, wordEnd
	}

	// Colon commands match with their prefix included.
	if wordStart > 0 && input[wordStart-1] == ':' {
		word = ":" + word
		wordStart--
	}

	candidates := m.candidatesFor(input, wordStart)
	if len(candidates) == 0 {
		return nil, wordStart, wordEnd
	}

	matches = fuzzy.Find(word, candidates)

	return matches, wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. Each candidate is rendered with its matched
// characters highlighted. The selected candidate (when tabbing) uses the
// selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		selected := tabActive && i == suggIdx
		rendered := renderCandidate(match, selected)
		candidateWidth := lipgloss.Width(rendered)

		entryWidth := candidateWidth
		if i > 0 {
			entryWidth += sepWidth
		}

		// Check if adding this candidate would exceed width.
		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth

		// If this is the last candidate, no need to reserve ellipsis space.
		if i == len(matches)-1 {
			break
		}
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(ch))
		} else {
			b.WriteString(baseStyle.Render(ch))
		}
	}

	return b.String()
}
