package kernel

import (
	"github.com/Gutierrez101/so-lite/pkg/iodevice"
	"github.com/Gutierrez101/so-lite/pkg/memory"
	"github.com/Gutierrez101/so-lite/pkg/process"
)

// MemoryMetrics reports paging statistics; it is the empty value
// outside paging mode.
type MemoryMetrics struct {
	PageFaults   int
	PageAccesses int
	HitRate      float64
}

// Result is the complete output of one Simulate run: the Gantt-style
// CPU timeline plus every subsystem's accumulated metrics.
type Result struct {
	Timeline []TimelineSegment
	CPU      CPUMetrics
	Memory   MemoryMetrics
	IO       iodevice.Statistics
}

// CPUMetrics mirrors scheduler.Metrics; duplicated here (rather than
// re-exported) so kernel's public API doesn't leak the scheduler
// package's type identity into callers that only import kernel.
type CPUMetrics struct {
	AvgWaitingTime       float64
	AvgTurnaroundTime    float64
	AvgResponseTime      float64
	Throughput           int
	TotalContextSwitches int
}

// Simulate runs up to steps ticks of algorithm/quantum scheduling,
// draining one diskScheduler-ordered I/O step per tick, and stopping
// early once every process has terminated. It returns the merged CPU
// timeline and every subsystem's metrics snapshot.
func (k *Kernel) Simulate(algorithm string, quantum, steps int, diskScheduler string) (Result, error) {
	if err := k.requireInit(); err != nil {
		return Result{}, err
	}

	tb := newTimelineBuilder()

	for i := 0; i < steps; i++ {
		if !k.hasActiveProcesses() {
			break
		}

		k.clock++
		result := k.scheduler.ScheduleStep(algorithm, quantum, k.clock)
		k.drainIO(diskScheduler)

		if result.Ran {
			pcb := k.table.Get(result.Pid)
			tb.record(k.clock, result.Pid, pcb.Name, pcb.Priority)
		}
	}

	sm := k.scheduler.Metrics()
	result := Result{
		Timeline: tb.build(),
		CPU: CPUMetrics{
			AvgWaitingTime:       sm.AvgWaitingTime,
			AvgTurnaroundTime:    sm.AvgTurnaroundTime,
			AvgResponseTime:      sm.AvgResponseTime,
			Throughput:           sm.Throughput,
			TotalContextSwitches: sm.TotalContextSwitches,
		},
		IO: k.io.GetStatistics(),
	}

	if k.memory.Mode() == memory.Paging {
		faults, accesses := k.memory.PageStats()
		hitRate := 0.0
		if accesses > 0 {
			hitRate = float64(accesses-faults) / float64(accesses) * 100
		}
		result.Memory = MemoryMetrics{PageFaults: faults, PageAccesses: accesses, HitRate: hitRate}
	}

	return result, nil
}

func (k *Kernel) hasActiveProcesses() bool {
	for _, pcb := range k.table.All() {
		if pcb.State != process.Terminated {
			return true
		}
	}
	return false
}
