// Package guard provides a construction check for value objects,
// commands and queries. Embedding a ConstructorGuard in a struct makes it
// possible to detect zero-value instances that bypassed the designated
// constructor, so invariants established at construction time cannot be
// skipped.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error, so validation always fails with a meaningful
// message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation; only NewConstructorGuard produces a
// passing guard. The guard is immutable and safe for concurrent use.
//
// Example:
//
//	type AddOrderNowCommand struct {
//	    buyerID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewAddOrderNowCommand(...) (AddOrderNowCommand, error) {
//	    return AddOrderNowCommand{..., guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AddOrderNowCommand) Validate() error {
//	    return c.guard.Validate(ErrAddOrderNowCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
