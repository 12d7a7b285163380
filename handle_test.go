package coroutines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleResumeStepsThroughYields(t *testing.T) {
	g := counter(2)
	defer g.Close()
	h := g.handle

	assert.True(t, h.Resume())
	assert.Equal(t, 0, h.state.value)
	assert.True(t, h.Resume())
	assert.Equal(t, 1, h.state.value)
	assert.False(t, h.Resume(), "the final resume runs the body to completion")
	assert.True(t, h.Done())
}

func TestHandleResumeAfterCompletionPanics(t *testing.T) {
	g := counter(1)
	defer g.Close()
	h := g.handle

	h.Resume()
	h.Resume()
	require.True(t, h.Done())
	assert.PanicsWithValue(t, ErrCompleted, func() { h.Resume() })
}

func TestHandleDoubleReleasePanics(t *testing.T) {
	g := counter(3)
	h := g.handle

	h.Release()
	assert.PanicsWithValue(t, ErrReleased, h.Release)
}

func TestHandleValidVersusDone(t *testing.T) {
	g := counter(1)
	h := g.handle

	// A fresh handle is populated but the computation has not run past its
	// end; the two queries must not be conflated.
	assert.True(t, h.Valid())
	assert.False(t, h.Done())

	h.Resume()
	h.Resume()
	assert.True(t, h.Valid(), "completed state is retained under a lazy finish")
	assert.True(t, h.Done())

	g.Close()
	assert.False(t, h.Valid())
	assert.True(t, h.Done(), "completion stays observable after release")
}

func TestHandleStatusTransitions(t *testing.T) {
	g := counter(1)
	defer g.Close()
	h := g.handle

	assert.Equal(t, Created, h.Status())
	h.Resume()
	assert.Equal(t, Suspended, h.Status())
	h.Resume()
	assert.Equal(t, Completed, h.Status())
}

func TestHandleReleaseBeforeFirstResume(t *testing.T) {
	started := false
	g := New(func(c *Context[int, Void]) {
		started = true
		c.Yield(0)
	})

	g.Close()
	assert.False(t, started, "a lazy computation released before its first resume runs no body code")
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "suspended", Suspended.String())
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "lazy", Lazy.String())
	assert.Equal(t, "eager", Eager.String())
	assert.Equal(t, "capture", Capture.String())
	assert.Equal(t, "silence", Silence.String())
}
