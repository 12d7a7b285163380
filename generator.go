package coroutines

// Generator is the consumer-facing owner of one computation. It wraps the
// computation's handle behind a pull interface, buffers at most one produced
// value so that repeated Next calls never skip one, re-raises captured body
// panics at the pull site, and guarantees the computation state is released
// exactly once.
type Generator[T, R any] struct {
	handle Handle[T, R]

	// full means a produced value (or the completion) is buffered and not yet
	// consumed. Without it, checking Next twice in a row would advance the
	// body twice and silently drop a value.
	full   bool
	closed bool
}

func newGenerator[T, R any](body func(*Context[T, R]), opts []Option) *Generator[T, R] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Context[T, R]{state: newState[T, R](cfg)}
	run(c, body)

	g := &Generator[T, R]{handle: Handle[T, R]{state: c.state}}
	if cfg.start == Eager {
		g.fill()
	}
	return g
}

// fill advances the computation by one step unless a value is already
// buffered. A body panic captured during that step is re-raised here, once,
// before the buffer is marked full.
func (g *Generator[T, R]) fill() {
	if g.full {
		return
	}
	g.handle.Resume()
	if err := g.handle.state.takePanic(); err != nil {
		panic(err)
	}
	g.full = true
}

// Next reports whether another value is available, advancing the body to its
// next yield point if none is buffered yet. Calling Next repeatedly without
// taking the value is safe and does not advance the body further. If the body
// panicked during the step and the computation captures panics, Next panics
// with the captured *PanicError.
func (g *Generator[T, R]) Next() bool {
	g.fill()
	return !g.handle.Done()
}

// Value takes the buffered value, advancing the body first if none is
// buffered. Taking a value from a completed computation panics with
// ErrExhausted.
func (g *Generator[T, R]) Value() T {
	g.fill()
	if g.handle.Done() {
		panic(ErrExhausted)
	}
	g.full = false
	return g.handle.state.value
}

// Result returns the completion value of a returning computation. It is
// present only once the computation has completed, only under a Lazy finish
// policy, and at most once: the first read consumes it.
func (g *Generator[T, R]) Result() (R, bool) {
	s := g.handle.state
	if s.status != Completed || !s.returned {
		var zero R
		return zero, false
	}
	r := s.result
	var zero R
	s.result = zero
	s.returned = false
	return r, true
}

// Done reports whether the computation has completed.
func (g *Generator[T, R]) Done() bool {
	return g.handle.Done()
}

// Status returns the computation's lifecycle status.
func (g *Generator[T, R]) Status() Status {
	return g.handle.Status()
}

// Close releases the computation state, unwinding the body if it has not
// completed. Close is idempotent and safe to defer; it is the single point
// responsible for releasing the handle, so callers must not reach around it.
func (g *Generator[T, R]) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.handle.Valid() {
		g.handle.Release()
	}
}
