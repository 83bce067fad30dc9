package advanced

import "github.com/pkg/errors"

// Threading errors up and down the recursion would add noise to every frame for
// conditions that only arise from bugs. Instead, we use panics, and the public
// API recovers to convert to an error.
//
// This is a struct rather than a bare error so that runtime errors (index out
// of range and friends) are not mistaken for ours and swallowed.
type ClosestPairError struct {
	error
}

func (e ClosestPairError) Cause() error {
	return e.error
}

// Panic with a ClosestPairError.
func fatalf(format string, args ...interface{}) {
	panic(ClosestPairError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if closestPairError, ok := r.(ClosestPairError); ok {
			return closestPairError
		}
		panic(r)
	}
	return nil
}
