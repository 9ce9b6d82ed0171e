package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Gutierrez101/so-lite/pkg/iodevice"
	"github.com/Gutierrez101/so-lite/pkg/memory"
	"github.com/Gutierrez101/so-lite/pkg/scheduler"
)

// Process is one declared process to create before the run starts.
type Process struct {
	Name     string `yaml:"name"`
	Priority int    `yaml:"priority"`
	Burst    int    `yaml:"burst_time"`
	Memory   int    `yaml:"memory"`
}

// Scenario is a complete, declarative simulation run: what processes to
// create, which memory mode and scheduling policy to run them under,
// and how many ticks to simulate.
type Scenario struct {
	Name       string    `yaml:"name"`
	MemoryMode string    `yaml:"memory_mode"`
	TotalMem   int       `yaml:"total_memory"`
	Scheduler  string    `yaml:"scheduler"`
	Quantum    int       `yaml:"quantum"`
	DiskPolicy string    `yaml:"disk_policy"`
	Steps      int       `yaml:"steps"`
	Processes  []Process `yaml:"processes"`
}

// Load reads and decodes a scenario from path, then validates it.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("scenario: decode %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Validate checks the process list (non-empty; every entry named, with
// positive burst_time and memory), memory_mode, scheduler, and a
// positive quantum under RR. total_memory, steps and disk_policy are not
// checked.
func (s Scenario) Validate() error {
	if len(s.Processes) == 0 {
		return ErrNoProcesses
	}
	for _, p := range s.Processes {
		if p.Name == "" || p.Burst <= 0 || p.Memory <= 0 {
			return fmt.Errorf("%w: %+v", ErrInvalidProcess, p)
		}
	}

	switch memory.Mode(s.MemoryMode) {
	case memory.Partitions, memory.Paging, memory.Segmentation:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMemoryMode, s.MemoryMode)
	}

	switch strings.ToUpper(s.Scheduler) {
	case scheduler.FCFS, scheduler.SJF, scheduler.RR, scheduler.Priority:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidScheduler, s.Scheduler)
	}

	if strings.ToUpper(s.Scheduler) == scheduler.RR && s.Quantum <= 0 {
		return ErrInvalidQuantum
	}

	return nil
}

// DiskScheduler returns the configured I/O scheduling policy, defaulting
// to FCFS when unset.
func (s Scenario) DiskScheduler() string {
	if s.DiskPolicy == "" {
		return iodevice.FCFS
	}
	return strings.ToUpper(s.DiskPolicy)
}
