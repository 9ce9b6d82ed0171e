package scheduler

import (
	"strings"

	"github.com/Gutierrez101/so-lite/pkg/process"
	"github.com/Gutierrez101/so-lite/pkg/types"
)

// Policy names recognized by ScheduleStep. Unknown values fall back to
// FCFS.
const (
	FCFS     = "FCFS"
	SJF      = "SJF"
	RR       = "RR"
	Priority = "PRIORITY"
)

// Scheduler selects and advances the running PCB per policy, and
// accumulates the metrics spec.md section 4.2 requires.
type Scheduler struct {
	table          *process.Table
	quantumCounter int
}

// New returns a scheduler driving table.
func New(table *process.Table) *Scheduler {
	return &Scheduler{table: table}
}

// StepResult reports which pid, if any, actually executed during a
// ScheduleStep call, and whether that tick terminated it. A rotation
// or preemption that merely context-switches the CPU to a new pid
// without running it yet (e.g. a round-robin quantum expiry) is not
// reflected here — Pid is always the pid whose Execute was called this
// tick, never a pid that was only just promoted to RUNNING.
type StepResult struct {
	Pid       int
	Ran       bool
	Completed bool
}

// ScheduleStep advances the simulation by one logical tick under the
// given policy. It first ticks waiting times for every ready pid, then
// dispatches to the policy's step function. An unrecognized policy
// name falls back to FCFS.
func (s *Scheduler) ScheduleStep(policy string, quantum int, clock types.Tick) StepResult {
	s.table.TickWaitingTimes()

	switch strings.ToUpper(policy) {
	case SJF:
		return s.stepSJF(clock)
	case RR:
		return s.stepRoundRobin(quantum, clock)
	case Priority:
		return s.stepPriority(clock)
	default:
		return s.stepFCFS(clock)
	}
}

func (s *Scheduler) stepFCFS(clock types.Tick) StepResult {
	if running, ok := s.table.Running(); ok {
		completed, _ := s.table.Execute(running, 1, clock)
		return StepResult{Pid: running, Ran: true, Completed: completed}
	}

	ready := s.table.ReadyQueue()
	if len(ready) == 0 {
		return StepResult{}
	}
	head := ready[0]
	if ok, _ := s.table.ToRunning(head, clock); ok {
		completed, _ := s.table.Execute(head, 1, clock)
		return StepResult{Pid: head, Ran: true, Completed: completed}
	}
	return StepResult{}
}

// stepSJF is non-preemptive: a running process always continues.
func (s *Scheduler) stepSJF(clock types.Tick) StepResult {
	if running, ok := s.table.Running(); ok {
		completed, _ := s.table.Execute(running, 1, clock)
		return StepResult{Pid: running, Ran: true, Completed: completed}
	}

	ready := s.table.ReadyQueue()
	if len(ready) == 0 {
		return StepResult{}
	}

	shortest := argmin(ready, func(pid int) int {
		return s.table.Get(pid).RemainingTime
	})
	if ok, _ := s.table.ToRunning(shortest, clock); ok {
		completed, _ := s.table.Execute(shortest, 1, clock)
		return StepResult{Pid: shortest, Ran: true, Completed: completed}
	}
	return StepResult{}
}

func (s *Scheduler) stepRoundRobin(quantum int, clock types.Tick) StepResult {
	current, running := s.table.Running()

	if !running {
		ready := s.table.ReadyQueue()
		if len(ready) == 0 {
			return StepResult{}
		}
		head := ready[0]
		if ok, _ := s.table.ToRunning(head, clock); ok {
			s.quantumCounter = 1
			completed, _ := s.table.Execute(head, 1, clock)
			if !completed && s.quantumCounter >= quantum {
				s.table.Get(head).ContextSwitches++
				s.table.ToReady(head)
				s.quantumCounter = 0
				if ready := s.table.ReadyQueue(); len(ready) > 0 {
					s.table.ToRunning(ready[0], clock)
				}
			}
			return StepResult{Pid: head, Ran: true, Completed: completed}
		}
		return StepResult{}
	}

	completed, _ := s.table.Execute(current, 1, clock)
	s.quantumCounter++

	if completed {
		s.quantumCounter = 0
		if ready := s.table.ReadyQueue(); len(ready) > 0 {
			s.table.ToRunning(ready[0], clock)
		}
		return StepResult{Pid: current, Ran: true, Completed: true}
	}

	if s.quantumCounter >= quantum {
		pcb := s.table.Get(current)
		pcb.ContextSwitches++
		s.table.ToReady(current)
		s.quantumCounter = 0

		if ready := s.table.ReadyQueue(); len(ready) > 0 {
			s.table.ToRunning(ready[0], clock)
		}
	}

	// Whether or not this tick rotated the CPU to a new pid, current is
	// the one that actually ran this tick; any newly promoted pid only
	// starts executing on the next ScheduleStep call.
	return StepResult{Pid: current, Ran: true, Completed: false}
}

func (s *Scheduler) stepPriority(clock types.Tick) StepResult {
	current, running := s.table.Running()

	if !running {
		ready := s.table.ReadyQueue()
		if len(ready) == 0 {
			return StepResult{}
		}
		best := argmin(ready, func(pid int) int { return s.table.Get(pid).Priority })
		if ok, _ := s.table.ToRunning(best, clock); ok {
			completed, _ := s.table.Execute(best, 1, clock)
			return StepResult{Pid: best, Ran: true, Completed: completed}
		}
		return StepResult{}
	}

	ready := s.table.ReadyQueue()
	if len(ready) > 0 {
		best := argmin(ready, func(pid int) int { return s.table.Get(pid).Priority })
		if s.table.Get(best).Priority < s.table.Get(current).Priority {
			s.table.Get(current).ContextSwitches++
			s.table.ToReady(current)
			if ok, _ := s.table.ToRunning(best, clock); ok {
				completed, _ := s.table.Execute(best, 1, clock)
				return StepResult{Pid: best, Ran: true, Completed: completed}
			}
			return StepResult{}
		}
	}

	completed, _ := s.table.Execute(current, 1, clock)
	return StepResult{Pid: current, Ran: true, Completed: completed}
}

// argmin returns the element of pids minimizing key, breaking ties by
// queue order (first element achieving the minimum wins).
func argmin(pids []int, key func(int) int) int {
	best := pids[0]
	bestVal := key(best)
	for _, pid := range pids[1:] {
		if v := key(pid); v < bestVal {
			best, bestVal = pid, v
		}
	}
	return best
}
