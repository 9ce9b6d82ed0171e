package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
name: two-process-fcfs
memory_mode: paging
total_memory: 40960
scheduler: FCFS
quantum: 4
disk_policy: SSTF
steps: 20
processes:
  - name: P1
    priority: 5
    burst_time: 6
    memory: 4096
  - name: P2
    priority: 3
    burst_time: 4
    memory: 8192
`

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_ParsesValidScenario(t *testing.T) {
	path := writeTemp(t, validYAML)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "two-process-fcfs", s.Name)
	assert.Len(t, s.Processes, 2)
	assert.Equal(t, "P2", s.Processes[1].Name)
	assert.Equal(t, "SSTF", s.DiskScheduler())
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_RejectsEmptyProcessList(t *testing.T) {
	s := Scenario{MemoryMode: "paging", Scheduler: "FCFS"}
	assert.ErrorIs(t, s.Validate(), ErrNoProcesses)
}

func TestValidate_RejectsUnknownMemoryMode(t *testing.T) {
	s := Scenario{
		MemoryMode: "swap",
		Scheduler:  "FCFS",
		Processes:  []Process{{Name: "P1", Burst: 1, Memory: 100}},
	}
	assert.ErrorIs(t, s.Validate(), ErrInvalidMemoryMode)
}

func TestValidate_RejectsUnknownScheduler(t *testing.T) {
	s := Scenario{
		MemoryMode: "paging",
		Scheduler:  "LOTTERY",
		Processes:  []Process{{Name: "P1", Burst: 1, Memory: 100}},
	}
	assert.ErrorIs(t, s.Validate(), ErrInvalidScheduler)
}

func TestValidate_RejectsZeroQuantumForRR(t *testing.T) {
	s := Scenario{
		MemoryMode: "paging",
		Scheduler:  "RR",
		Processes:  []Process{{Name: "P1", Burst: 1, Memory: 100}},
	}
	assert.ErrorIs(t, s.Validate(), ErrInvalidQuantum)
}

func TestValidate_RejectsInvalidProcessEntry(t *testing.T) {
	s := Scenario{
		MemoryMode: "paging",
		Scheduler:  "FCFS",
		Processes:  []Process{{Name: "", Burst: 1, Memory: 100}},
	}
	assert.ErrorIs(t, s.Validate(), ErrInvalidProcess)
}

func TestDiskScheduler_DefaultsToFCFS(t *testing.T) {
	s := Scenario{}
	assert.Equal(t, "FCFS", s.DiskScheduler())
}
