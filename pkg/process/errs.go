package process

import "errors"

var (
	// ErrCPUBusy is returned by ToRunning when another pid already owns
	// the CPU.
	ErrCPUBusy = errors.New("process: cpu already running another pid")

	// ErrNotRunning is returned by Execute when pid is not the running
	// process.
	ErrNotRunning = errors.New("process: pid is not running")
)
