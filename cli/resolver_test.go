package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolveFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	flag := &kong.Flag{Value: &kong.Value{Name: name}}

	value, err := r.Resolve(nil, nil, flag)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", name, err)
	}

	return value
}

func TestResolveYAML(t *testing.T) {
	r, err := resolveYAML(strings.NewReader("log_level: debug\nlog_format: json\n"))
	if err != nil {
		t.Fatalf("resolveYAML: %v", err)
	}

	// Underscore keys resolve hyphenated flag names.
	if got := resolveFlag(t, r, "log-level"); got != "debug" {
		t.Errorf("log-level = %v, want debug", got)
	}

	if got := resolveFlag(t, r, "log-format"); got != "json" {
		t.Errorf("log-format = %v, want json", got)
	}

	if got := resolveFlag(t, r, "unknown"); got != nil {
		t.Errorf("unknown = %v, want nil", got)
	}
}

func TestResolveYAMLHyphenKeys(t *testing.T) {
	r, err := resolveYAML(strings.NewReader("log-level: warn\n"))
	if err != nil {
		t.Fatalf("resolveYAML: %v", err)
	}

	if got := resolveFlag(t, r, "log-level"); got != "warn" {
		t.Errorf("log-level = %v, want warn", got)
	}
}

func TestResolveYAMLInvalid(t *testing.T) {
	// A malformed config degrades to an empty resolver, not an error, so
	// command-line parsing can proceed on defaults.
	r, err := resolveYAML(strings.NewReader("::: not yaml {{{"))
	if err != nil {
		t.Fatalf("resolveYAML: %v", err)
	}

	if got := resolveFlag(t, r, "log-level"); got != nil {
		t.Errorf("log-level = %v, want nil", got)
	}
}
