// Package coroutines implements suspendable value-producing computations:
// functions that can pause themselves mid-execution, keep all local state
// across the pause, and be resumed by a caller that pulls produced values on
// demand.
//
// A computation body receives a *Context and hands values to its consumer by
// calling Yield, which suspends the body until the consumer asks for the next
// value. The consumer side is a *Generator with a pull interface: Next reports
// whether another value is available, Value takes it, Result reads the
// completion value of a returning computation, and Close releases the saved
// execution state.
//
// Control transfers synchronously in both directions: resuming runs the body
// on its own goroutine until it reaches the next yield point or completes, and
// nothing executes concurrently with the caller in between. Suspension
// policies (Eager/Lazy) configure whether the body starts running before the
// first pull and whether its state survives completion; panic policies
// configure whether an uncaught panic in the body is captured and re-raised at
// the consumer's next pull or silently discarded.
package coroutines

// Void is the completion type of computations that do not return a value.
type Void struct{}

// New creates a generator backed by body. The body produces values of type T
// by calling Yield on its context and completes without a value when it
// returns.
//
// By default the computation starts lazily (no body code runs before the
// first pull), retains its state after completion until Close, and captures
// uncaught body panics for re-raise at the next pull. All three choices can
// be changed with options.
func New[T any](body func(*Context[T, Void]), opts ...Option) *Generator[T, Void] {
	return newGenerator(body, opts)
}

// NewReturning creates a generator backed by body, which produces values of
// type T and completes with a value of type R. The completion value becomes
// readable through Result once the computation has finished.
func NewReturning[T, R any](body func(*Context[T, R]) R, opts ...Option) *Generator[T, R] {
	return newGenerator(func(c *Context[T, R]) {
		c.state.complete(body(c))
	}, opts)
}

// Drain runs g to completion, calling f for each produced value, and returns
// the completion value if the computation declared one. The generator is
// closed before Drain returns, also when f panics, so a partially consumed
// computation is not left holding its state.
func Drain[T, R any](g *Generator[T, R], f func(T)) (R, bool) {
	defer g.Close()

	for g.Next() {
		f(g.Value())
	}
	return g.Result()
}
