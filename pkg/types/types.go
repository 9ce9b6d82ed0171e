// Package types holds small value types shared across the simulator's
// subsystems, the way pkg/types held Bytes for the teacher project.
package types

import "fmt"

// Tick is one unit of the engine's logical clock.
type Tick int64

func (t Tick) String() string { return fmt.Sprintf("%d", int64(t)) }

// Color is a hex color string assigned to a process for Gantt rendering.
type Color string

// Palette is the fixed, ordered set of colors handed out to processes in
// first-appearance order. Re-used once it runs out.
var Palette = []Color{
	"#4E79A7", "#F28E2B", "#E15759", "#76B7B2", "#59A14F",
	"#EDC948", "#B07AA1", "#FF9DA7", "#9C755F", "#BAB0AC",
}

// PaletteAssigner hands out colors to names deterministically, in the
// order each name is first seen.
type PaletteAssigner struct {
	assigned map[string]Color
	order    []string
}

// NewPaletteAssigner returns an empty assigner.
func NewPaletteAssigner() *PaletteAssigner {
	return &PaletteAssigner{assigned: make(map[string]Color)}
}

// ColorFor returns the color bound to name, assigning the next palette
// entry the first time name is seen.
func (p *PaletteAssigner) ColorFor(name string) Color {
	if c, ok := p.assigned[name]; ok {
		return c
	}
	c := Palette[len(p.order)%len(Palette)]
	p.assigned[name] = c
	p.order = append(p.order, name)
	return c
}
