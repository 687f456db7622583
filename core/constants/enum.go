// Package constants defines the enumerated values understood by the CARTA
// frontend. Use these in place of literal strings and numbers, for example
// Viridis rather than "viridis".
package constants

import (
	"strings"

	"github.com/cartavis/carta-go/core/invariant"
)

// Member is one named value of an Enum.
type Member[T comparable] struct {
	Name  string
	Value T
}

// Enum is an ordered set of named constants. It satisfies the enum
// interface expected by validation.NewConstant.
type Enum[T comparable] struct {
	name    string
	members []Member[T]
}

func define[T comparable](name string, members ...Member[T]) *Enum[T] {
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		invariant.Precondition(!seen[m.Name], "%s: duplicate member %s", name, m.Name)
		seen[m.Name] = true
	}
	return &Enum[T]{name: name, members: members}
}

// Name returns the qualified type name.
func (e *Enum[T]) Name() string {
	return e.name
}

// Members returns every value in declaration order.
func (e *Enum[T]) Members() []any {
	out := make([]any, len(e.members))
	for i, m := range e.members {
		out[i] = m.Value
	}
	return out
}

// Values returns every value in declaration order.
func (e *Enum[T]) Values() []T {
	out := make([]T, len(e.members))
	for i, m := range e.members {
		out[i] = m.Value
	}
	return out
}

// Lookup returns the value of the member with the given name, ignoring case.
func (e *Enum[T]) Lookup(name string) (T, bool) {
	for _, m := range e.members {
		if strings.EqualFold(m.Name, name) {
			return m.Value, true
		}
	}
	var zero T
	return zero, false
}

// NameOf returns the member name of v.
func (e *Enum[T]) NameOf(v T) (string, bool) {
	for _, m := range e.members {
		if m.Value == v {
			return m.Name, true
		}
	}
	return "", false
}

// Len returns the number of members.
func (e *Enum[T]) Len() int {
	return len(e.members)
}
