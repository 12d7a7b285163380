package coroutines

type config struct {
	start   Policy
	finish  Policy
	onPanic PanicPolicy
}

func defaultConfig() config {
	return config{
		start:   Lazy,
		finish:  Lazy,
		onPanic: Capture,
	}
}

// Option configures a computation at construction time.
type Option func(*config)

// WithStart sets the suspension policy of the start point. The default is
// Lazy: the body does not run until the first pull.
func WithStart(p Policy) Option {
	return func(c *config) { c.start = p }
}

// WithFinish sets the suspension policy of the completion point. The default
// is Lazy: the computation state outlives the body so its completion value
// remains readable until the generator is closed.
func WithFinish(p Policy) Option {
	return func(c *config) { c.finish = p }
}

// WithPanicPolicy sets what happens to a panic escaping the body. The default
// is Capture.
func WithPanicPolicy(p PanicPolicy) Option {
	return func(c *config) { c.onPanic = p }
}
