package errors

import "fmt"

// Violation aborts the current generation step. It is reserved for broken
// internal invariants (malformed output trees, unexpanded references reaching
// a markup backend); user input problems are reported as returned errors.
func Violation(format string, args ...interface{}) {
	panic(Newf(ErrContractViolation, format, args...))
}

// Assert calls Violation when cond is false.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		Violation(format, args...)
	}
}

// Recover converts a contract violation panic into an error stored in errp.
// It must be deferred directly:
//
//	defer errors.Recover(&err)
//
// Panics that are not GenErrors are wrapped as ErrInternal so that a driver
// can still abort the current document cleanly.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	switch v := r.(type) {
	case *GenError:
		*errp = v
	case error:
		*errp = Wrap(v, ErrInternal, "internal error")
	default:
		*errp = Newf(ErrInternal, "internal error: %v", fmt.Sprint(v))
	}
}
