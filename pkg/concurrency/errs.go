package concurrency

import "errors"

var (
	// ErrUnknownSemaphore is returned for an unregistered semaphore name.
	ErrUnknownSemaphore = errors.New("concurrency: unknown semaphore")
	// ErrUnknownMutex is returned for an unregistered mutex name.
	ErrUnknownMutex = errors.New("concurrency: unknown mutex")
	// ErrNotOwner is returned when a pid tries to unlock a mutex it does
	// not own.
	ErrNotOwner = errors.New("concurrency: process does not own mutex")
	// ErrUnknownProcess is returned for a pid never registered with the
	// banker's algorithm.
	ErrUnknownProcess = errors.New("concurrency: process not registered with bankers algorithm")
	// ErrExceedsClaim is returned when a resource request exceeds the
	// process's declared max need.
	ErrExceedsClaim = errors.New("concurrency: request exceeds declared max need")
	// ErrInsufficientResources is returned when a request exceeds what's
	// currently available.
	ErrInsufficientResources = errors.New("concurrency: insufficient available resources")
	// ErrUnsafeState is returned when granting a request would leave the
	// system in an unsafe state.
	ErrUnsafeState = errors.New("concurrency: request would leave system in an unsafe state")
)
