package process

import "github.com/Gutierrez101/so-lite/pkg/types"

// Table is the process table: a pid -> PCB map (insertion order
// preserved for deterministic iteration) plus the derived ready queue
// (FIFO), waiting queue (order-irrelevant set) and running slot.
//
// Every public method here restores the five invariants listed in
// spec.md section 3 before returning. Unknown pids leave the table
// unchanged for every method. ToRunning can also fail with
// (false, ErrCPUBusy) when the CPU is already held by a different pid,
// and Execute fails with ErrNotRunning for any pid that is not running.
type Table struct {
	processes map[int]*PCB
	order     []int
	nextPid   int

	readyQueue   []int
	waitingQueue []int
	running      *int
}

// NewTable returns an empty process table.
func NewTable() *Table {
	return &Table{
		processes: make(map[int]*PCB),
		nextPid:   1,
	}
}

// CreateProcess allocates the next pid, builds a PCB with
// remaining_time = burst_time and state = NEW, then immediately
// transitions it to READY. Returns the new pid.
func (t *Table) CreateProcess(name string, priority, burstTime, memoryRequired int, clock types.Tick) int {
	pid := t.nextPid
	t.nextPid++

	pcb := newPCB(pid, name, priority, burstTime, memoryRequired, clock)
	t.processes[pid] = pcb
	t.order = append(t.order, pid)

	t.ToReady(pid)
	return pid
}

// Get returns the PCB for pid, or nil if unknown.
func (t *Table) Get(pid int) *PCB {
	return t.processes[pid]
}

// Pids returns all known pids in insertion (creation) order.
func (t *Table) Pids() []int {
	out := make([]int, len(t.order))
	copy(out, t.order)
	return out
}

// All returns all PCBs in insertion order.
func (t *Table) All() []*PCB {
	out := make([]*PCB, 0, len(t.order))
	for _, pid := range t.order {
		out = append(out, t.processes[pid])
	}
	return out
}

// ReadyQueue returns a copy of the FIFO ready queue.
func (t *Table) ReadyQueue() []int {
	out := make([]int, len(t.readyQueue))
	copy(out, t.readyQueue)
	return out
}

// WaitingQueue returns a copy of the waiting set, in insertion order.
func (t *Table) WaitingQueue() []int {
	out := make([]int, len(t.waitingQueue))
	copy(out, t.waitingQueue)
	return out
}

// Running returns the currently running pid and true, or (0, false)
// when the CPU is idle.
func (t *Table) Running() (int, bool) {
	if t.running == nil {
		return 0, false
	}
	return *t.running, true
}

func removeInt(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// ToReady appends pid to the ready queue (if absent), removes it from
// the waiting queue, clears it from the running slot if it held it,
// and sets state=READY.
func (t *Table) ToReady(pid int) {
	pcb, ok := t.processes[pid]
	if !ok {
		return
	}

	if !containsInt(t.readyQueue, pid) {
		t.readyQueue = append(t.readyQueue, pid)
	}
	t.waitingQueue = removeInt(t.waitingQueue, pid)

	if t.running != nil && *t.running == pid {
		t.running = nil
	}

	pcb.State = Ready
}

// ToRunning fails (returns false, ErrCPUBusy) if the CPU is already
// held by a different pid. An unknown pid is a no-op: (false, nil).
// Otherwise it removes pid from the ready queue, binds it to the
// running slot, sets state=RUNNING, and — the first time this happens
// for pid — records response_time = clock - arrival_time.
func (t *Table) ToRunning(pid int, clock types.Tick) (bool, error) {
	pcb, ok := t.processes[pid]
	if !ok {
		return false, nil
	}

	if t.running != nil && *t.running != pid {
		return false, ErrCPUBusy
	}

	t.readyQueue = removeInt(t.readyQueue, pid)
	t.waitingQueue = removeInt(t.waitingQueue, pid)
	running := pid
	t.running = &running
	pcb.State = Running

	if pcb.ResponseTime == -1 {
		pcb.ResponseTime = int(clock - pcb.ArrivalTime)
	}
	return true, nil
}

// ToWaiting appends pid to the waiting queue, clears the running slot
// if pid held it, increments io_operations, and sets state=WAITING.
// reason is accepted for symmetry with the original source but is not
// otherwise stored on the PCB.
func (t *Table) ToWaiting(pid int, reason string) {
	pcb, ok := t.processes[pid]
	if !ok {
		return
	}

	if !containsInt(t.waitingQueue, pid) {
		t.waitingQueue = append(t.waitingQueue, pid)
	}
	t.readyQueue = removeInt(t.readyQueue, pid)

	if t.running != nil && *t.running == pid {
		t.running = nil
	}

	pcb.IOOperations++
	pcb.State = Waiting
}

// Terminate removes pid from every queue, clears the running slot if
// it held it, sets state=TERMINATED and records
// turnaround_time = clock - arrival_time.
func (t *Table) Terminate(pid int, clock types.Tick) {
	pcb, ok := t.processes[pid]
	if !ok {
		return
	}

	t.readyQueue = removeInt(t.readyQueue, pid)
	t.waitingQueue = removeInt(t.waitingQueue, pid)
	if t.running != nil && *t.running == pid {
		t.running = nil
	}

	pcb.State = Terminated
	pcb.TurnaroundTime = int(clock - pcb.ArrivalTime)
}

// Execute requires state=RUNNING, returning (false, ErrNotRunning)
// otherwise. It subtracts min(slice, remaining_time) from
// remaining_time, adds it to program_counter, and — if remaining_time
// reaches zero — terminates pid in the same step and returns
// completed=true.
func (t *Table) Execute(pid int, slice int, clock types.Tick) (bool, error) {
	pcb, ok := t.processes[pid]
	if !ok || pcb.State != Running {
		return false, ErrNotRunning
	}

	run := slice
	if run > pcb.RemainingTime {
		run = pcb.RemainingTime
	}
	pcb.RemainingTime -= run
	pcb.ProgramCounter += run

	if pcb.RemainingTime == 0 {
		t.Terminate(pid, clock)
		return true, nil
	}
	return false, nil
}

// TickWaitingTimes increments waiting_time by 1 for every pid currently
// in the ready queue.
func (t *Table) TickWaitingTimes() {
	for _, pid := range t.readyQueue {
		if pcb, ok := t.processes[pid]; ok {
			pcb.WaitingTime++
		}
	}
}
