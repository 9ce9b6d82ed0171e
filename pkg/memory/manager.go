package memory

import "github.com/Gutierrez101/so-lite/pkg/types"

// Mode selects one of the three interchangeable allocation strategies.
type Mode string

const (
	Partitions    Mode = "partitions"
	Paging        Mode = "paging"
	Segmentation  Mode = "segmentation"
	defaultPageSz      = 4096
)

// DefaultPartitionSizes are the fixed partition sizes used when none
// are supplied, matching the original's PartitionManager defaults.
var DefaultPartitionSizes = []int{64, 128, 256, 512}

// Manager is the memory manager for exactly one Mode, constructed with
// a total memory budget.
type Manager struct {
	mode        Mode
	totalMemory int
	pageSize    int

	partitions []*Partition

	frames       []*Frame
	pageTables   map[int][]*Page // pid -> page_no indexed page table
	pageFaults   int
	pageAccesses int
	clock        types.Tick

	segments   map[int][]*Segment // pid -> segments
	freeBlocks []freeBlock
}

type freeBlock struct {
	Base int
	Size int
}

// New constructs a Manager in mode over totalMemory units. Paging uses
// the default 4096 page size; use NewPaging to override it.
func New(mode Mode, totalMemory int) *Manager {
	return NewPaging(mode, totalMemory, defaultPageSz)
}

// NewPaging constructs a Manager, explicitly choosing the page size
// used when mode == Paging (ignored otherwise).
func NewPaging(mode Mode, totalMemory, pageSize int) *Manager {
	m := &Manager{
		mode:        mode,
		totalMemory: totalMemory,
		pageSize:    pageSize,
	}

	switch mode {
	case Partitions:
		m.initPartitions(DefaultPartitionSizes)
	case Paging:
		if pageSize <= 0 {
			pageSize = defaultPageSz
			m.pageSize = pageSize
		}
		numFrames := totalMemory / pageSize
		if numFrames <= 0 {
			numFrames = totalMemory / 4
		}
		m.initFrames(numFrames)
		m.pageTables = make(map[int][]*Page)
	case Segmentation:
		m.segments = make(map[int][]*Segment)
		m.freeBlocks = []freeBlock{{Base: 0, Size: totalMemory}}
	}
	return m
}

// Mode returns the manager's allocation mode.
func (m *Manager) Mode() Mode { return m.mode }

// Tick advances the manager's notion of "now", used for paging's
// load_time/last_access bookkeeping.
func (m *Manager) Tick(clock types.Tick) { m.clock = clock }

// AllocateResult is what Allocate returns: enough for the caller to
// bind onto a PCB's MemoryBinding.
type AllocateResult struct {
	Base      int   // partitions / segmentation
	PageTable []int // paging: page_no -> frame_no (-1 if unloaded)
}

// Allocate requests size units of memory for pid. algorithm selects
// the partition-fit strategy ("first_fit", "best_fit", "worst_fit";
// defaults to first_fit) and is ignored outside Partitions mode.
func (m *Manager) Allocate(pid, size int, algorithm string) (AllocateResult, error) {
	switch m.mode {
	case Partitions:
		return m.allocatePartition(pid, size, algorithm)
	case Paging:
		return m.allocatePaging(pid, size)
	case Segmentation:
		return m.allocateSegment(pid, 0, size, "")
	default:
		return AllocateResult{}, ErrNoSpace
	}
}

// Deallocate frees pid's active allocation, restoring the manager's
// free state. ErrUnknownPid is returned if pid holds no allocation in
// the manager's current mode.
func (m *Manager) Deallocate(pid int) error {
	switch m.mode {
	case Partitions:
		return m.deallocatePartition(pid)
	case Paging:
		return m.deallocatePaging(pid)
	case Segmentation:
		return m.deallocateAllSegments(pid)
	}
	return nil
}

// Fragmentation reports (internal, external) wasted memory for the
// manager's current mode. Partitions: external = sum of unallocated
// partition sizes, internal = 0 (the source never tracked per-process
// internal waste). Paging: both are reported as 0; the unused tail
// space of each process's last page is not measured. Segmentation:
// "external" = total free-block space (fragmentation by construction);
// internal = 0.
func (m *Manager) Fragmentation() (internal, external int) {
	switch m.mode {
	case Partitions:
		for _, p := range m.partitions {
			if !p.Allocated {
				external += p.Size
			}
		}
		return 0, external
	case Paging:
		for _, table := range m.pageTables {
			// internal fragmentation only meaningful with a tracked
			// byte size per process; without it we report the waste
			// as zero per-table and let callers read NumFrames/used.
			_ = table
		}
		return 0, 0
	case Segmentation:
		for _, b := range m.freeBlocks {
			external += b.Size
		}
		return 0, external
	}
	return 0, 0
}
