package process

import "github.com/Gutierrez101/so-lite/pkg/types"

// State is one of the five PCB lifecycle states.
type State string

const (
	New        State = "NEW"
	Ready      State = "READY"
	Running    State = "RUNNING"
	Waiting    State = "WAITING"
	Terminated State = "TERMINATED"
)

// MemoryBinding captures the mode-specific memory allocation a PCB
// holds, if any. Base is used by partitions and segmentation; PageTable
// is used by paging. A PCB has an active binding iff Bound is true.
type MemoryBinding struct {
	Bound     bool
	Base      int
	PageTable []int // page_no -> frame_no, -1 if not yet loaded
}

// PCB is the Process Control Block: the authoritative per-process
// record mutated by the scheduler, memory manager and I/O manager.
type PCB struct {
	Pid            int
	Name           string
	State          State
	Priority       int // smaller = higher priority
	BurstTime      int
	RemainingTime  int
	ProgramCounter int

	ArrivalTime    types.Tick
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int // -1 until first scheduled

	ContextSwitches int
	IOOperations    int

	MemoryRequired int
	Memory         MemoryBinding
}

func newPCB(pid int, name string, priority, burstTime, memoryRequired int, arrival types.Tick) *PCB {
	return &PCB{
		Pid:            pid,
		Name:           name,
		State:          New,
		Priority:       priority,
		BurstTime:      burstTime,
		RemainingTime:  burstTime,
		ArrivalTime:    arrival,
		ResponseTime:   -1,
		MemoryRequired: memoryRequired,
	}
}
