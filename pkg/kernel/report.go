package kernel

import (
	"github.com/Gutierrez101/so-lite/pkg/process"
	"github.com/Gutierrez101/so-lite/pkg/types"
)

// ProcessSnapshot is one process's externally visible state, the shape
// get_all_processes_info / get_system_state expose per process.
type ProcessSnapshot struct {
	Pid             int
	Name            string
	State           string
	Priority        int
	BurstTime       int
	RemainingTime   int
	WaitingTime     int
	TurnaroundTime  int
	ResponseTime    int
	ContextSwitches int
}

// Report is the aggregate system snapshot: clock, every process, and
// the memory, I/O and CPU subsystems' live state. Semaphores, mutexes,
// the deadlock detector and the banker's tracker are not included. It
// supplements the distilled engine
// API with the full system.state() picture the original's Kernel
// exposed.
type Report struct {
	Clock      types.Tick
	Processes  []ProcessSnapshot
	ReadyCount int
	RunningPid int
	WaitCount  int
	TermCount  int

	Memory MemoryState
	IO     []IODeviceState
	CPU    CPUMetrics
}

// MemoryState is a mode-tagged snapshot of the memory manager, mirror
// of get_memory_state.
type MemoryState struct {
	Mode         string
	Partitions   []PartitionState
	Frames       int
	PageFaults   int
	PageAccesses int
	InternalFrag int
	ExternalFrag int
}

// PartitionState is one partition's state() row.
type PartitionState struct {
	ID        int
	Base      int
	Size      int
	Allocated bool
	OwnerPid  int
}

// IODeviceState mirrors iodevice.DeviceState with string-typed fields
// kept independent of that package's enum identity.
type IODeviceState struct {
	Name           string
	Status         string
	QueueLength    int
	CurrentRequest int
	TotalOps       int
	AvgWaitingTime float64
}

// Report assembles a full-system snapshot without mutating any
// subsystem, the supplemented equivalent of the original's
// get_system_state / _print_final_statistics combined into data.
func (k *Kernel) Report() (Report, error) {
	if err := k.requireInit(); err != nil {
		return Report{}, err
	}

	r := Report{Clock: k.clock, CPU: k.cpuMetrics()}

	for _, pcb := range k.table.All() {
		r.Processes = append(r.Processes, ProcessSnapshot{
			Pid:             pcb.Pid,
			Name:            pcb.Name,
			State:           string(pcb.State),
			Priority:        pcb.Priority,
			BurstTime:       pcb.BurstTime,
			RemainingTime:   pcb.RemainingTime,
			WaitingTime:     pcb.WaitingTime,
			TurnaroundTime:  pcb.TurnaroundTime,
			ResponseTime:    pcb.ResponseTime,
			ContextSwitches: pcb.ContextSwitches,
		})
	}
	r.ReadyCount = len(k.table.ReadyQueue())
	r.WaitCount = len(k.table.WaitingQueue())
	if pid, ok := k.table.Running(); ok {
		r.RunningPid = pid
	}
	for _, pcb := range k.table.All() {
		if pcb.State == process.Terminated {
			r.TermCount++
		}
	}

	r.Memory = k.memoryState()

	for _, d := range k.io.DevicesState() {
		r.IO = append(r.IO, IODeviceState{
			Name:           d.Name,
			Status:         string(d.Status),
			QueueLength:    d.QueueLength,
			CurrentRequest: d.CurrentRequest,
			TotalOps:       d.TotalOps,
			AvgWaitingTime: d.AvgWaitingTime,
		})
	}

	return r, nil
}

func (k *Kernel) cpuMetrics() CPUMetrics {
	m := k.scheduler.Metrics()
	return CPUMetrics{
		AvgWaitingTime:       m.AvgWaitingTime,
		AvgTurnaroundTime:    m.AvgTurnaroundTime,
		AvgResponseTime:      m.AvgResponseTime,
		Throughput:           m.Throughput,
		TotalContextSwitches: m.TotalContextSwitches,
	}
}

func (k *Kernel) memoryState() MemoryState {
	ms := MemoryState{Mode: string(k.memory.Mode())}

	switch k.memory.Mode() {
	case "partitions":
		for _, p := range k.memory.Partitions() {
			ms.Partitions = append(ms.Partitions, PartitionState{
				ID: p.ID, Base: p.Base, Size: p.Size, Allocated: p.Allocated, OwnerPid: p.OwnerPid,
			})
		}
		_, ext := k.memory.Fragmentation()
		ms.ExternalFrag = ext
	case "paging":
		faults, accesses := k.memory.PageStats()
		ms.Frames = k.memory.NumFrames()
		ms.PageFaults = faults
		ms.PageAccesses = accesses
	case "segmentation":
		_, ext := k.memory.Fragmentation()
		ms.ExternalFrag = ext
	}
	return ms
}
