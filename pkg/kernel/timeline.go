package kernel

import "github.com/Gutierrez101/so-lite/pkg/types"

// TimelineSegment is one contiguous run of ticks during which the same
// named process occupied the CPU.
type TimelineSegment struct {
	Pid      int
	Name     string
	Start    types.Tick
	Duration int
	Priority int
	Color    types.Color
}

// timelineBuilder accumulates per-tick CPU occupancy and merges
// consecutive ticks for the same pid into a single segment, assigning
// colors by first-appearance order.
type timelineBuilder struct {
	palette  *types.PaletteAssigner
	segments []TimelineSegment
}

func newTimelineBuilder() *timelineBuilder {
	return &timelineBuilder{palette: types.NewPaletteAssigner()}
}

// record appends one tick of occupancy by pid (name, priority), or
// extends the last segment's duration if pid matches it.
func (b *timelineBuilder) record(clock types.Tick, pid int, name string, priority int) {
	if n := len(b.segments); n > 0 {
		last := &b.segments[n-1]
		contiguous := last.Start+types.Tick(last.Duration) == clock
		if last.Pid == pid && contiguous {
			last.Duration++
			return
		}
	}
	b.segments = append(b.segments, TimelineSegment{
		Pid:      pid,
		Name:     name,
		Start:    clock,
		Duration: 1,
		Priority: priority,
		Color:    b.palette.ColorFor(name),
	})
}

func (b *timelineBuilder) build() []TimelineSegment { return b.segments }
