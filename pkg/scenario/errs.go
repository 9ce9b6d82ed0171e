package scenario

import "errors"

var (
	// ErrNoProcesses is returned by Validate when a scenario declares
	// an empty process list.
	ErrNoProcesses = errors.New("scenario: no processes declared")
	// ErrInvalidMemoryMode is returned when memory_mode isn't one of
	// partitions, paging, segmentation.
	ErrInvalidMemoryMode = errors.New("scenario: invalid memory_mode")
	// ErrInvalidScheduler is returned when scheduler isn't one of
	// FCFS, SJF, RR, PRIORITY.
	ErrInvalidScheduler = errors.New("scenario: invalid scheduler")
	// ErrInvalidQuantum is returned when scheduler is RR and quantum <= 0.
	ErrInvalidQuantum = errors.New("scenario: quantum must be > 0 for RR")
	// ErrInvalidProcess is returned when a process entry is missing a
	// name or declares non-positive burst_time/memory.
	ErrInvalidProcess = errors.New("scenario: invalid process entry")
)
