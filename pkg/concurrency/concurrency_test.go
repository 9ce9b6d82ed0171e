package concurrency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemaphore_WaitBlocksAtZero(t *testing.T) {
	s := NewSemaphore("s", 1, 1)

	assert.True(t, s.Wait(1))
	assert.False(t, s.Wait(2))
	assert.Equal(t, []int{2}, s.WaitingQueue)
}

func TestSemaphore_WaitDeduplicatesQueue(t *testing.T) {
	s := NewSemaphore("s", 0, 1)
	s.Wait(1)
	s.Wait(1)
	assert.Equal(t, []int{1}, s.WaitingQueue)
}

func TestSemaphore_SignalWakesOldestWaiter(t *testing.T) {
	s := NewSemaphore("s", 0, 1)
	s.Wait(1)
	s.Wait(2)

	woken, ok := s.Signal()
	require.True(t, ok)
	assert.Equal(t, 1, woken)
	assert.Equal(t, []int{2}, s.WaitingQueue)
}

func TestSemaphore_SignalCapsAtMaxValue(t *testing.T) {
	s := NewSemaphore("s", 1, 1)
	_, ok := s.Signal()
	assert.False(t, ok)
	assert.Equal(t, 1, s.Value)
}

func TestMutex_LockAndUnlock(t *testing.T) {
	m := NewMutex("m")
	require.True(t, m.Lock(1))
	require.False(t, m.Lock(2))

	_, woke, err := m.Unlock(2)
	require.Error(t, err)
	assert.False(t, woke)

	woken, woke, err := m.Unlock(1)
	require.NoError(t, err)
	require.True(t, woke)
	assert.Equal(t, 2, woken)
	assert.False(t, m.Locked)
}

func TestDeadlockDetector_DetectsTwoCycle(t *testing.T) {
	d := NewDeadlockDetector()
	d.AddAllocation(1, "R1")
	d.AddRequest(1, "R2")
	d.AddAllocation(2, "R2")
	d.AddRequest(2, "R1")

	deadlocked := d.Detect()
	require.NotEmpty(t, deadlocked)
	assert.Contains(t, deadlocked, 1)
	assert.Contains(t, deadlocked, 2)
}

func TestDeadlockDetector_NoCycleWhenResourcesAreFree(t *testing.T) {
	d := NewDeadlockDetector()
	d.AddAllocation(1, "R1")
	d.AddRequest(2, "R2") // R2 held by nobody

	assert.Empty(t, d.Detect())
}

func TestDeadlockDetector_RemoveBreaksCycle(t *testing.T) {
	d := NewDeadlockDetector()
	d.AddAllocation(1, "R1")
	d.AddRequest(1, "R2")
	d.AddAllocation(2, "R2")
	d.AddRequest(2, "R1")

	d.RemoveRequest(2, "R1")
	assert.Empty(t, d.Detect())
}

func TestBankers_GrantsSafeRequest(t *testing.T) {
	b := NewBankers([]int{10, 5, 7})
	b.AddProcess(1, []int{7, 5, 3})
	b.AddProcess(2, []int{3, 2, 2})

	err := b.RequestResources(1, []int{2, 0, 0})
	require.NoError(t, err)
}

func TestBankers_RejectsRequestExceedingClaim(t *testing.T) {
	b := NewBankers([]int{10, 5, 7})
	b.AddProcess(1, []int{7, 5, 3})

	err := b.RequestResources(1, []int{8, 0, 0})
	assert.ErrorIs(t, err, ErrExceedsClaim)
}

func TestBankers_RejectsUnsafeRequest(t *testing.T) {
	b := NewBankers([]int{2, 0, 0})
	b.AddProcess(1, []int{3, 0, 0})
	b.AddProcess(2, []int{3, 0, 0})

	// Granting all of the scarce resource to p1 leaves neither process
	// able to reach its max need: p1 still needs 1 more and none is
	// available, same for p2.
	err := b.RequestResources(1, []int{2, 0, 0})
	assert.ErrorIs(t, err, ErrUnsafeState)
}

func TestBankers_ReleaseRestoresAvailability(t *testing.T) {
	b := NewBankers([]int{10, 5, 7})
	b.AddProcess(1, []int{7, 5, 3})

	require.NoError(t, b.RequestResources(1, []int{3, 2, 2}))
	b.Release(1, []int{3, 2, 2})

	require.NoError(t, b.RequestResources(1, []int{3, 2, 2}))
}
