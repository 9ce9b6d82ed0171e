package concurrency

// Bankers implements the banker's algorithm over N resource classes.
type Bankers struct {
	available    []int
	allocation   map[int][]int
	maxNeed      map[int][]int
	numResources int
}

// NewBankers constructs a Bankers tracker with the given total
// resource counts as the initial availability.
func NewBankers(resources []int) *Bankers {
	available := make([]int, len(resources))
	copy(available, resources)
	return &Bankers{
		available:    available,
		allocation:   make(map[int][]int),
		maxNeed:      make(map[int][]int),
		numResources: len(resources),
	}
}

// AddProcess registers pid with a declared maximum need and zero
// current allocation.
func (b *Bankers) AddProcess(pid int, maxNeed []int) {
	need := make([]int, b.numResources)
	copy(need, maxNeed)
	b.allocation[pid] = make([]int, b.numResources)
	b.maxNeed[pid] = need
}

// RequestResources attempts to grant request to pid: rejects a claim
// violation or an availability shortfall outright, otherwise
// tentatively grants and runs the safety check, reverting on an unsafe
// result.
func (b *Bankers) RequestResources(pid int, request []int) error {
	alloc, ok := b.allocation[pid]
	if !ok {
		return ErrUnknownProcess
	}
	need := b.maxNeed[pid]

	for i, r := range request {
		if r > need[i]-alloc[i] {
			return ErrExceedsClaim
		}
	}
	for i, r := range request {
		if r > b.available[i] {
			return ErrInsufficientResources
		}
	}

	for i, r := range request {
		b.available[i] -= r
		alloc[i] += r
	}

	if b.isSafeState() {
		return nil
	}

	for i, r := range request {
		b.available[i] += r
		alloc[i] -= r
	}
	return ErrUnsafeState
}

// Release returns resources pid no longer needs.
func (b *Bankers) Release(pid int, release []int) {
	alloc, ok := b.allocation[pid]
	if !ok {
		return
	}
	for i, r := range release {
		alloc[i] -= r
		b.available[i] += r
	}
}

// isSafeState runs the safety algorithm: repeatedly find an unfinished
// pid whose remaining need fits in work, fold its allocation into work,
// mark it finished, until no further progress is possible.
func (b *Bankers) isSafeState() bool {
	work := make([]int, b.numResources)
	copy(work, b.available)

	pids := make([]int, 0, len(b.allocation))
	for pid := range b.allocation {
		pids = append(pids, pid)
	}

	finished := make(map[int]bool, len(pids))
	remaining := len(pids)

	for remaining > 0 {
		progressed := false
		for _, pid := range pids {
			if finished[pid] {
				continue
			}
			alloc := b.allocation[pid]
			need := b.maxNeed[pid]
			fits := true
			for i := range work {
				if need[i]-alloc[i] > work[i] {
					fits = false
					break
				}
			}
			if !fits {
				continue
			}
			for i := range work {
				work[i] += alloc[i]
			}
			finished[pid] = true
			remaining--
			progressed = true
			break
		}
		if !progressed {
			break
		}
	}

	return remaining == 0
}
