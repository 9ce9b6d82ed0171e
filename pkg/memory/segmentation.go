package memory

import "sort"

// Segment is one named region within a process's segmented address
// space.
type Segment struct {
	SegNo int
	Base  int
	Limit int
	Name  string
}

func (m *Manager) allocateSegment(pid, segNo, size int, name string) (AllocateResult, error) {
	idx := -1
	for i, b := range m.freeBlocks {
		if b.Size >= size {
			idx = i
			break
		}
	}
	if idx == -1 {
		return AllocateResult{}, ErrNoSpace
	}

	block := m.freeBlocks[idx]
	base := block.Base

	if block.Size == size {
		m.freeBlocks = append(m.freeBlocks[:idx], m.freeBlocks[idx+1:]...)
	} else {
		m.freeBlocks[idx] = freeBlock{Base: block.Base + size, Size: block.Size - size}
	}

	m.segments[pid] = append(m.segments[pid], &Segment{
		SegNo: segNo,
		Base:  base,
		Limit: size,
		Name:  name,
	})

	return AllocateResult{Base: base}, nil
}

// CreateSegment allocates a named segment segNo of size for pid,
// first-fit over the free-block list.
func (m *Manager) CreateSegment(pid, segNo, size int, name string) (AllocateResult, error) {
	return m.allocateSegment(pid, segNo, size, name)
}

// Segments returns pid's segment list.
func (m *Manager) Segments(pid int) []Segment {
	segs := m.segments[pid]
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = *s
	}
	return out
}

// FreeBlocks returns a snapshot of the sorted, coalesced free-block
// list as (base, size) pairs.
func (m *Manager) FreeBlocks() [][2]int {
	out := make([][2]int, len(m.freeBlocks))
	for i, b := range m.freeBlocks {
		out[i] = [2]int{b.Base, b.Size}
	}
	return out
}

func (m *Manager) deallocateAllSegments(pid int) error {
	segs, ok := m.segments[pid]
	if !ok || len(segs) == 0 {
		return ErrUnknownPid
	}
	for _, seg := range segs {
		m.freeSegmentSpace(seg.Base, seg.Limit)
	}
	delete(m.segments, pid)
	return nil
}

// DeallocateSegment frees a single named segment and coalesces it back
// into the free-block list.
func (m *Manager) DeallocateSegment(pid, segNo int) error {
	segs := m.segments[pid]
	for i, seg := range segs {
		if seg.SegNo == segNo {
			m.freeSegmentSpace(seg.Base, seg.Limit)
			m.segments[pid] = append(segs[:i], segs[i+1:]...)
			return nil
		}
	}
	return ErrUnknownSegment
}

func (m *Manager) freeSegmentSpace(base, size int) {
	m.freeBlocks = append(m.freeBlocks, freeBlock{Base: base, Size: size})

	sort.Slice(m.freeBlocks, func(i, j int) bool {
		return m.freeBlocks[i].Base < m.freeBlocks[j].Base
	})

	coalesced := m.freeBlocks[:1]
	for _, b := range m.freeBlocks[1:] {
		last := &coalesced[len(coalesced)-1]
		if last.Base+last.Size == b.Base {
			last.Size += b.Size
		} else {
			coalesced = append(coalesced, b)
		}
	}
	m.freeBlocks = coalesced
}
