package lang

import "iter"

// Environment maps variable names to their most recently assigned values.
// It is created fresh per evaluation run and owned exclusively by it.
// Iteration order is pinned to insertion order so the trailing label segment
// of the output is deterministic across runs.
type Environment struct {
	names []string
	vars  map[string]Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

// Get returns the value bound to name, if any.
func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.vars[name]

	return v, ok
}

// Set binds name to value, replacing any previous binding. A name keeps its
// original position in iteration order across rebinding.
func (e *Environment) Set(name string, value Value) {
	if _, ok := e.vars[name]; !ok {
		e.names = append(e.names, name)
	}

	e.vars[name] = value
}

// Len returns the number of bound names.
func (e *Environment) Len() int { return len(e.names) }

// All returns an iterator over bindings in insertion order.
func (e *Environment) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, name := range e.names {
			if !yield(name, e.vars[name]) {
				return
			}
		}
	}
}

// ValidName reports whether name is a valid variable name: a letter followed
// by letters, digits, underscores, or hyphens.
func ValidName(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		letter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if i == 0 {
			if !letter {
				return false
			}

			continue
		}

		if !letter && (r < '0' || r > '9') && r != '_' && r != '-' {
			return false
		}
	}

	return true
}
