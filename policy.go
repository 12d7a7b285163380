package coroutines

// Policy selects the behavior of one of the two fixed suspension points every
// computation has: its start and its completion.
type Policy int

const (
	// Lazy pauses at the suspension point. At the start point, no body code
	// runs before the first pull; at the completion point, the computation
	// state is retained after the body finishes so the completion value (or a
	// captured panic) can still be read, until the generator is closed.
	Lazy Policy = iota

	// Eager continues through the suspension point. At the start point, the
	// constructor itself resumes the body up to its first yield (or
	// completion); at the completion point, the computation state is torn
	// down as soon as the body finishes, forfeiting post-completion reads.
	Eager
)

func (p Policy) String() string {
	switch p {
	case Lazy:
		return "lazy"
	case Eager:
		return "eager"
	default:
		return "invalid"
	}
}

// PanicPolicy selects what happens to a panic that escapes the computation
// body.
type PanicPolicy int

const (
	// Capture stores the panic value, wrapped in a *PanicError, and re-raises
	// it exactly once at the consumer's next pull. This is the default.
	Capture PanicPolicy = iota

	// Silence discards the panic; the computation is simply marked completed
	// with no value. Opting in must be explicit since it drops failures on
	// the floor.
	Silence
)

func (p PanicPolicy) String() string {
	switch p {
	case Capture:
		return "capture"
	case Silence:
		return "silence"
	default:
		return "invalid"
	}
}

// Status describes where a computation is in its lifecycle. A computation
// starts Created, alternates between Running and Suspended while it is driven
// by pulls, and ends Completed. Completed is terminal.
type Status int

const (
	// Created means no body code has run yet.
	Created Status = iota

	// Running means control is currently inside the body.
	Running

	// Suspended means the body is parked at a yield point.
	Suspended

	// Completed means the body returned, panicked, or was unwound by a
	// release. No further resume is valid.
	Completed
)

func (s Status) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Suspended:
		return "suspended"
	case Completed:
		return "completed"
	default:
		return "invalid"
	}
}
