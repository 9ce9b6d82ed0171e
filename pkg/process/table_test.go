package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProcess_StartsReady(t *testing.T) {
	tbl := NewTable()

	pid := tbl.CreateProcess("P1", 5, 3, 100, 0)
	require.Equal(t, 1, pid)

	pcb := tbl.Get(pid)
	require.NotNil(t, pcb)
	assert.Equal(t, Ready, pcb.State)
	assert.Equal(t, 3, pcb.RemainingTime)
	assert.Equal(t, []int{pid}, tbl.ReadyQueue())
}

func TestToReady_Idempotent(t *testing.T) {
	tbl := NewTable()
	pid := tbl.CreateProcess("P1", 5, 3, 100, 0)

	tbl.ToReady(pid)
	tbl.ToReady(pid)

	assert.Equal(t, []int{pid}, tbl.ReadyQueue())
}

func TestToRunning_RejectsWhileCPUBusy(t *testing.T) {
	tbl := NewTable()
	p1 := tbl.CreateProcess("P1", 5, 3, 100, 0)
	p2 := tbl.CreateProcess("P2", 5, 3, 100, 0)

	ok, err := tbl.ToRunning(p1, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = tbl.ToRunning(p2, 0)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCPUBusy)

	running, hasRunning := tbl.Running()
	assert.True(t, hasRunning)
	assert.Equal(t, p1, running)
}

func TestToRunning_SetsResponseTimeOnce(t *testing.T) {
	tbl := NewTable()
	pid := tbl.CreateProcess("P1", 5, 5, 100, 2)

	ok, err := tbl.ToRunning(pid, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, tbl.Get(pid).ResponseTime)

	tbl.ToReady(pid)
	ok, err = tbl.ToRunning(pid, 9)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, tbl.Get(pid).ResponseTime, "response time is set exactly once")
}

func TestExecute_TerminatesOnZeroRemaining(t *testing.T) {
	tbl := NewTable()
	pid := tbl.CreateProcess("P1", 5, 2, 100, 0)
	ok, err := tbl.ToRunning(pid, 0)
	require.NoError(t, err)
	require.True(t, ok)

	completed, err := tbl.Execute(pid, 1, 1)
	require.NoError(t, err)
	assert.False(t, completed)
	assert.Equal(t, Running, tbl.Get(pid).State)

	completed, err = tbl.Execute(pid, 1, 2)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, Terminated, tbl.Get(pid).State)
	assert.Equal(t, 2, tbl.Get(pid).TurnaroundTime)
}

func TestExecute_ZeroBurstTerminatesImmediately(t *testing.T) {
	tbl := NewTable()
	pid := tbl.CreateProcess("P1", 5, 0, 100, 0)
	ok, err := tbl.ToRunning(pid, 0)
	require.NoError(t, err)
	require.True(t, ok)

	completed, err := tbl.Execute(pid, 1, 0)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, Terminated, tbl.Get(pid).State)
}

func TestExecute_RejectsNonRunningPid(t *testing.T) {
	tbl := NewTable()
	pid := tbl.CreateProcess("P1", 5, 3, 100, 0)

	completed, err := tbl.Execute(pid, 1, 0)
	assert.False(t, completed)
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestToWaiting_IncrementsIOOperations(t *testing.T) {
	tbl := NewTable()
	pid := tbl.CreateProcess("P1", 5, 3, 100, 0)
	ok, err := tbl.ToRunning(pid, 0)
	require.NoError(t, err)
	require.True(t, ok)

	tbl.ToWaiting(pid, "disk0")

	pcb := tbl.Get(pid)
	assert.Equal(t, Waiting, pcb.State)
	assert.Equal(t, 1, pcb.IOOperations)
	_, running := tbl.Running()
	assert.False(t, running)
}

func TestTickWaitingTimes_OnlyReadyQueue(t *testing.T) {
	tbl := NewTable()
	p1 := tbl.CreateProcess("P1", 5, 3, 100, 0)
	p2 := tbl.CreateProcess("P2", 5, 3, 100, 0)
	ok, err := tbl.ToRunning(p1, 0)
	require.NoError(t, err)
	require.True(t, ok)

	tbl.TickWaitingTimes()
	tbl.TickWaitingTimes()

	assert.Equal(t, 0, tbl.Get(p1).WaitingTime)
	assert.Equal(t, 2, tbl.Get(p2).WaitingTime)
}

func TestUnknownPid_IsNoop(t *testing.T) {
	tbl := NewTable()
	tbl.ToReady(99)
	tbl.ToWaiting(99, "x")
	tbl.Terminate(99, 0)

	ok, err := tbl.ToRunning(99, 0)
	assert.False(t, ok)
	assert.NoError(t, err, "unknown pid is a no-op, not a CPU-busy conflict")

	completed, err := tbl.Execute(99, 1, 0)
	assert.False(t, completed)
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestInvariant_PidInAtMostOneQueue(t *testing.T) {
	tbl := NewTable()
	pid := tbl.CreateProcess("P1", 5, 3, 100, 0)
	ok, err := tbl.ToRunning(pid, 0)
	require.NoError(t, err)
	require.True(t, ok)

	assert.NotContains(t, tbl.ReadyQueue(), pid)
	assert.NotContains(t, tbl.WaitingQueue(), pid)
	running, hasRunning := tbl.Running()
	assert.True(t, hasRunning)
	assert.Equal(t, pid, running)
}
