package coroutines

// Handle is an opaque reference to the control block of one computation. It
// can advance the computation by one step, report whether it has completed,
// and release its storage. Handles do not guard against misuse: resuming a
// completed computation or releasing twice panics with a lifecycle error, and
// guaranteeing that neither happens is the owning Generator's job.
//
// Valid and Done answer different questions. Valid reports whether the handle
// still refers to live computation state, Done whether the computation has run
// past its end; a completed-but-not-yet-released computation is both Valid and
// Done. Conflating the two is a classic mistake with handle types.
type Handle[T, R any] struct {
	state *state[T, R]
}

// Valid reports whether the handle refers to computation state that has not
// been released.
func (h Handle[T, R]) Valid() bool {
	return h.state != nil && !h.state.freed
}

// Done reports whether the computation has completed. It never advances the
// computation.
func (h Handle[T, R]) Done() bool {
	return h.state.status == Completed
}

// Status returns the computation's lifecycle status.
func (h Handle[T, R]) Status() Status {
	return h.state.status
}

// Resume transfers control into the body from its saved resumption point and
// returns once the body reaches the next yield point or completes. It reports
// whether a yield point was reached. Resuming a completed computation panics
// with ErrCompleted; resuming through a released handle panics with
// ErrReleased.
func (h Handle[T, R]) Resume() bool {
	s := h.state
	if s.status == Completed {
		panic(ErrCompleted)
	}
	if s.freed {
		panic(ErrReleased)
	}
	s.status = Running
	s.next <- struct{}{}
	_, ok := <-s.next
	return ok
}

// Release deallocates the control block. If the computation is still
// suspended, its body is unwound through its defers first; no further body
// statements run. Releasing twice panics with ErrReleased: single release is
// the owner's contract, not something the handle tracks.
func (h Handle[T, R]) Release() {
	s := h.state
	if s.freed {
		panic(ErrReleased)
	}
	if s.status != Completed {
		s.stop = true
		s.status = Running
		s.next <- struct{}{}
		<-s.next
	}
	s.free()
}
