package kernel

import (
	"log/slog"

	"github.com/Gutierrez101/so-lite/pkg/concurrency"
	"github.com/Gutierrez101/so-lite/pkg/iodevice"
	"github.com/Gutierrez101/so-lite/pkg/memory"
	"github.com/Gutierrez101/so-lite/pkg/process"
	"github.com/Gutierrez101/so-lite/pkg/scheduler"
	"github.com/Gutierrez101/so-lite/pkg/types"
)

// Kernel is the engine loop: it owns the logical clock and wires the
// process table to the scheduler, memory manager, I/O manager and
// concurrency layer. Every exported method restores every subsystem's
// invariants before returning.
type Kernel struct {
	table     *process.Table
	scheduler *scheduler.Scheduler
	memory    *memory.Manager
	io        *iodevice.Manager

	semaphores map[string]*concurrency.Semaphore
	mutexes    map[string]*concurrency.Mutex
	deadlock   *concurrency.DeadlockDetector
	bankers    *concurrency.Bankers

	clock       types.Tick
	initialized bool
}

// New returns an uninitialized Kernel.
func New() *Kernel {
	return &Kernel{
		semaphores: make(map[string]*concurrency.Semaphore),
		mutexes:    make(map[string]*concurrency.Mutex),
		deadlock:   concurrency.NewDeadlockDetector(),
	}
}

// Initialize seeds the process table, memory manager, scheduler and
// I/O device registry. Calling it again resets the engine to a fresh
// state.
func (k *Kernel) Initialize(memoryMode memory.Mode, totalMemory int) {
	k.table = process.NewTable()
	k.scheduler = scheduler.New(k.table)
	k.memory = memory.New(memoryMode, totalMemory)
	k.io = iodevice.New()
	k.io.Initialize()
	k.clock = 0
	k.initialized = true
	slog.Info("kernel initialized", "memory_mode", memoryMode, "total_memory", totalMemory)
}

func (k *Kernel) requireInit() error {
	if !k.initialized {
		return ErrNotInitialized
	}
	return nil
}

// CreateProcess creates a PCB and attempts to allocate memoryRequired
// units for it. If allocation fails the process is created then
// immediately terminated, mirroring the original's "create, then roll
// back on OOM" behavior, and ErrNoSpace is returned.
func (k *Kernel) CreateProcess(name string, priority, burstTime, memoryRequired int) (int, error) {
	if err := k.requireInit(); err != nil {
		return 0, err
	}

	pid := k.table.CreateProcess(name, priority, burstTime, memoryRequired, k.clock)

	result, err := k.memory.Allocate(pid, memoryRequired, "")
	if err != nil {
		k.table.Terminate(pid, k.clock)
		slog.Warn("process creation failed: out of memory", "pid", pid, "name", name)
		return 0, err
	}

	pcb := k.table.Get(pid)
	pcb.Memory = process.MemoryBinding{Bound: true, Base: result.Base, PageTable: result.PageTable}
	slog.Info("process created", "pid", pid, "name", name)
	return pid, nil
}

// Transition drives pid through an explicit state transition. target
// is one of "READY", "RUNNING", "WAITING", "TERMINATED" (case
// sensitive, matching the PCB State constants); an unrecognized value
// is a no-op.
func (k *Kernel) Transition(pid int, target process.State, reason string) error {
	if err := k.requireInit(); err != nil {
		return err
	}

	switch target {
	case process.Ready:
		k.table.ToReady(pid)
	case process.Running:
		if _, err := k.table.ToRunning(pid, k.clock); err != nil {
			return err
		}
	case process.Waiting:
		k.table.ToWaiting(pid, reason)
	case process.Terminated:
		k.table.Terminate(pid, k.clock)
	}
	return nil
}

// ScheduleStep advances the clock by one tick and runs the scheduler
// and one I/O step (reordering each device's queue under
// diskScheduler), waking any pid whose request completed this tick.
func (k *Kernel) ScheduleStep(algorithm string, quantum int, diskScheduler string) (scheduler.StepResult, error) {
	if err := k.requireInit(); err != nil {
		return scheduler.StepResult{}, err
	}
	k.clock++
	result := k.scheduler.ScheduleStep(algorithm, quantum, k.clock)
	k.drainIO(diskScheduler)
	return result, nil
}

// drainIO runs one I/O step under diskScheduler and wakes every pid
// whose request completed, per the Open Question (a) decision recorded
// in DESIGN.md: interrupt drain eagerly transitions WAITING -> READY.
func (k *Kernel) drainIO(diskScheduler string) {
	if diskScheduler == "" {
		diskScheduler = iodevice.FCFS
	}
	completions := k.io.Step(k.clock, diskScheduler)
	for _, c := range completions {
		if pcb := k.table.Get(c.ProcessID); pcb != nil && pcb.State == process.Waiting {
			k.table.ToReady(c.ProcessID)
		}
	}
}

// Table exposes the process table for read-only inspection (state(),
// reporting, tests).
func (k *Kernel) Table() *process.Table { return k.table }

// Memory exposes the memory manager.
func (k *Kernel) Memory() *memory.Manager { return k.memory }

// IO exposes the I/O manager.
func (k *Kernel) IO() *iodevice.Manager { return k.io }

// Clock returns the current logical clock value.
func (k *Kernel) Clock() types.Tick { return k.clock }

// RequestIO enqueues an I/O request on behalf of pid.
func (k *Kernel) RequestIO(pid int, device, operation string, dataSize, priority int) (int, error) {
	if err := k.requireInit(); err != nil {
		return 0, err
	}
	return k.io.RequestIO(pid, device, operation, dataSize, priority, k.clock)
}

// CreateSemaphore registers a new named semaphore. maxValue <= 0
// defaults it to initialValue.
func (k *Kernel) CreateSemaphore(name string, initialValue, maxValue int) {
	k.semaphores[name] = concurrency.NewSemaphore(name, initialValue, maxValue)
}

// Semaphore returns the named semaphore, or nil if unregistered.
func (k *Kernel) Semaphore(name string) *concurrency.Semaphore { return k.semaphores[name] }

// CreateMutex registers a new named mutex.
func (k *Kernel) CreateMutex(name string) {
	k.mutexes[name] = concurrency.NewMutex(name)
}

// Mutex returns the named mutex, or nil if unregistered.
func (k *Kernel) Mutex(name string) *concurrency.Mutex { return k.mutexes[name] }

// Deadlock exposes the deadlock detector shared by the whole run.
func (k *Kernel) Deadlock() *concurrency.DeadlockDetector { return k.deadlock }

// CheckDeadlock runs cycle detection over the current allocation/
// request graph.
func (k *Kernel) CheckDeadlock() []int { return k.deadlock.Detect() }

// InitBankers initializes the banker's-algorithm tracker with the
// given total resource counts.
func (k *Kernel) InitBankers(resources []int) {
	k.bankers = concurrency.NewBankers(resources)
}

// Bankers exposes the banker's-algorithm tracker, or nil if
// InitBankers was never called.
func (k *Kernel) Bankers() *concurrency.Bankers { return k.bankers }
