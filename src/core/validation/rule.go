// Package validation holds the stateless rule sets applied to facade input.
//
// Each Rule inspects one field with one predicate. A Validator evaluates its
// rules in declaration order and stops at the first violation, so a null check
// declared before an empty check on the same field always wins.
package validation

import "jokecatalog/src/core/domain"

// Rule checks a single field of T.
type Rule[T any] struct {
	// Field names the checked field.
	Field string

	// Violated reports whether the input breaks the rule.
	Violated func(T) bool

	// Err builds the error returned on violation.
	Err func() *domain.DomainError
}

// Validator is an ordered, immutable list of rules.
type Validator[T any] struct {
	rules []Rule[T]
}

// New builds a Validator from rules, evaluated in the given order.
func New[T any](rules ...Rule[T]) *Validator[T] {
	return &Validator[T]{rules: rules}
}

// Validate returns the error of the first violated rule, or nil.
func (v *Validator[T]) Validate(in T) error {
	for _, r := range v.rules {
		if r.Violated(in) {
			return r.Err()
		}
	}
	return nil
}
