package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created through
// their designated constructor functions. Embedding a guard in a struct makes
// zero-value instances detectable: only the constructor sets the internal flag,
// so Validate fails for anything built by direct struct initialization.
//
// Example:
//
//	type Money struct {
//	    amount int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int) (Money, error) {
//	    if amount < 0 {
//	        return Money{}, errors.New("amount cannot be negative")
//	    }
//	    return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
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
