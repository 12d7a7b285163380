package coroutines

// state is the control block of one computation: the last produced value, the
// optional completion value, a captured body panic, the lifecycle status, and
// the saved resumption point. The resumption point is the body's parked
// goroutine together with the next channel it ping-pongs on; it never leaves
// this struct.
//
// Each state belongs to exactly one Handle, which belongs to exactly one
// Generator, so no synchronization beyond the channel hand-off is needed: the
// side currently holding control is the only one touching the fields, and the
// channel operations order the writes for the other side.
type state[T, R any] struct {
	value    T
	result   R
	returned bool
	panicked error

	status Status
	next   chan struct{}
	stop   bool
	freed  bool

	finish  Policy
	onPanic PanicPolicy
}

func newState[T, R any](cfg config) *state[T, R] {
	return &state[T, R]{
		next:    make(chan struct{}),
		finish:  cfg.finish,
		onPanic: cfg.onPanic,
	}
}

// complete records the completion value. Called at most once, from the body
// goroutine, right before the body returns.
func (s *state[T, R]) complete(r R) {
	s.result = r
	s.returned = true
}

// takePanic returns the captured body panic and clears the slot, so that the
// panic is re-raised at most once.
func (s *state[T, R]) takePanic() error {
	err := s.panicked
	s.panicked = nil
	return err
}

// free tears down the value-carrying slots of the control block. The status
// is kept so that completion stays observable on a released handle. The
// captured panic is also kept: the pull that drove the body to completion
// must still observe it, even under an Eager finish policy.
func (s *state[T, R]) free() {
	if s.freed {
		return
	}
	var zeroT T
	var zeroR R
	s.value = zeroT
	s.result = zeroR
	s.returned = false
	s.freed = true
}
