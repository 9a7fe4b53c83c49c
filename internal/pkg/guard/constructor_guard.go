// Package guard provides the constructor guard pattern used by command
// and query value objects. Embedding a ConstructorGuard lets an object
// detect whether it was built through its constructor or left as a zero
// value, so handlers can refuse unvalidated input.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a zero-value
// guard is validated with a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero
// value is invalid; constructors obtain a valid guard from
// NewConstructorGuard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard
// it returns notConstructed, or ErrDefaultConstructorGuard when
// notConstructed is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructed == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructed
}
