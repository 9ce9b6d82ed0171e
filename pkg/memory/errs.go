package memory

import "errors"

var (
	// ErrNoSpace is returned by Allocate when no partition, frame set
	// or free block can satisfy the request.
	ErrNoSpace = errors.New("memory: no eligible allocation for requested size")

	// ErrUnknownPid is returned by Deallocate when pid has no active
	// allocation in the manager's current mode.
	ErrUnknownPid = errors.New("memory: pid has no active allocation")

	// ErrUnknownSegment is returned when a (pid, seg_no) pair is not
	// found.
	ErrUnknownSegment = errors.New("memory: unknown segment")

	// ErrUnknownPage is returned by AccessPage for a page_no outside
	// the process's page table.
	ErrUnknownPage = errors.New("memory: unknown page number")
)
