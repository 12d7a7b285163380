package coroutines

import (
	"fmt"
	"runtime/debug"
)

// PanicError wraps a panic that escaped a computation body. It records the
// panic value together with the body goroutine's stack at the point of the
// panic, since by the time the error surfaces at the pull site that stack is
// gone.
type PanicError struct {
	value any
	stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{value: v, stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("coroutines: computation panicked: %v", e.value)
}

// Value returns the original panic value.
func (e *PanicError) Value() any { return e.value }

// Stack returns the body goroutine's stack captured when the panic was
// recovered.
func (e *PanicError) Stack() []byte { return e.stack }

// Unwrap returns the panic value if it was an error, so that errors.Is and
// errors.As see through the wrapper.
func (e *PanicError) Unwrap() error {
	err, ok := e.value.(error)
	if !ok {
		return nil
	}
	return err
}
