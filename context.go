package coroutines

import (
	"runtime"
)

// Context is the body-facing side of a computation. The body uses it to hand
// values to its consumer; the type parameter R fixes the completion contract
// of the computation the context belongs to.
type Context[T, R any] struct {
	state *state[T, R]
}

// Yield hands v to the consumer and suspends the body until the next pull.
// The value is visible to the consumer before the body parks, so a pull
// always observes the most recent Yield. Nothing is passed back into the
// body on resume.
func (c *Context[T, R]) Yield(v T) {
	s := c.state
	if s.stop {
		panic(ErrReleased)
	}
	s.value = v
	s.status = Suspended
	s.next <- struct{}{}
	<-s.next
	if s.stop {
		// The owner released the computation while it was parked here;
		// unwind through the body's defers without running any more of it.
		runtime.Goexit()
	}
}

// run hosts the computation body on its own goroutine. The goroutine parks
// until the first resume, executes the body between hand-offs, and on the way
// out publishes completion: status, captured panic per policy, and the Eager
// finish teardown, all before the final channel close wakes the resumer.
func run[T, R any](c *Context[T, R], body func(*Context[T, R])) {
	s := c.state

	go func() {
		defer func() {
			if p := recover(); p != nil && s.onPanic == Capture {
				s.panicked = newPanicError(p)
			}
			s.status = Completed
			if s.finish == Eager {
				s.free()
			}
			close(s.next)
		}()

		<-s.next
		if !s.stop {
			body(c)
		}
	}()
}
