package shutdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShutdownReverseOrderOnce(t *testing.T) {
	m := NewManager(nil)
	var order []string
	m.Register("first", Func(func() { order = append(order, "first") }))
	m.Register("second", Func(func() { order = append(order, "second") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, order)
	assert.Error(t, m.Context().Err())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownTimeout(t *testing.T) {
	m := NewManager(nil)
	m.SetTimeout(10 * time.Millisecond)

	release := make(chan struct{})
	defer close(release)
	stopped := false
	m.Register("stuck", Func(func() { <-release }))
	m.Register("quick", Func(func() { stopped = true }))

	start := time.Now()
	m.Shutdown()
	assert.True(t, stopped)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLoopSkipsQuitAfterStop(t *testing.T) {
	quits := 0
	loop := NewLoop(func() { quits++ })

	loop.Shutdown()
	assert.Equal(t, 1, quits)

	loop.Stopped()
	loop.Shutdown()
	assert.Equal(t, 1, quits)
}

func TestShutdownAfterLoopEnded(t *testing.T) {
	m := NewManager(nil)
	quits := 0
	loop := NewLoop(func() { quits++ })
	cancelled := false
	m.Register("context", Func(func() { cancelled = true }))
	m.Register("loop", loop)

	loop.Stopped()
	m.Shutdown()

	assert.Zero(t, quits)
	assert.True(t, cancelled)
}
