package showcase

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResizeCoordinatorCoalescesBurst(t *testing.T) {
	var fires atomic.Int32
	rc := NewResizeCoordinatorWithQuiet(40*time.Millisecond, func() {
		fires.Add(1)
	})
	defer rc.Stop()

	for i := 0; i < 10; i++ {
		rc.Signal()
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, int32(0), fires.Load(), "must not fire during the burst")

	assert.Eventually(t, func() bool { return fires.Load() == 1 },
		time.Second, 5*time.Millisecond)

	// Quiet period long over: still exactly one fire.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fires.Load())
}

func TestResizeCoordinatorFiresAgainAfterNewSignal(t *testing.T) {
	var fires atomic.Int32
	rc := NewResizeCoordinatorWithQuiet(10*time.Millisecond, func() {
		fires.Add(1)
	})
	defer rc.Stop()

	rc.Signal()
	assert.Eventually(t, func() bool { return fires.Load() == 1 },
		time.Second, time.Millisecond)

	rc.Signal()
	assert.Eventually(t, func() bool { return fires.Load() == 2 },
		time.Second, time.Millisecond)
}

func TestResizeCoordinatorStopCancelsPending(t *testing.T) {
	var fires atomic.Int32
	rc := NewResizeCoordinatorWithQuiet(20*time.Millisecond, func() {
		fires.Add(1)
	})

	rc.Signal()
	rc.Stop()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fires.Load())

	// Signals after Stop are ignored.
	rc.Signal()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fires.Load())
}
