package coroutines

import "errors"

// Lifecycle violations are programming errors, not recoverable conditions,
// so the package panics with these sentinels instead of returning them. Body
// panics travel separately, wrapped in *PanicError.
var (
	// ErrCompleted is the panic value of a resume or pull directed at a
	// computation that has already completed.
	ErrCompleted = errors.New("coroutines: resume of a completed computation")

	// ErrReleased is the panic value of any use of computation state after
	// it was released, including releasing it twice.
	ErrReleased = errors.New("coroutines: computation state already released")

	// ErrExhausted is the panic value of taking a value from a computation
	// that completed without producing another one.
	ErrExhausted = errors.New("coroutines: no value: computation has completed")
)
