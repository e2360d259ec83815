// Package guard provides a defensive construction marker for commands, queries,
// and value objects. Embedding a ConstructorGuard lets a type detect whether it
// was built through its constructor or left as a zero value, so handlers can
// refuse to operate on unvalidated input.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. The zero value fails validation.
//
// Example:
//
//	type RejectCommand struct {
//	    requestID kernel.UUID
//	    reason    string
//	    guard     guard.ConstructorGuard
//	}
//
//	func NewRejectCommand(...) (RejectCommand, error) {
//	    // validate inputs...
//	    return RejectCommand{..., guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RejectCommand) Validate() error {
//	    return c.guard.Validate(ErrRejectCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
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
