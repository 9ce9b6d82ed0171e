// Package process implements the Process Control Block (PCB) and the
// process table: the authoritative store of processes, their
// state-transition primitives, and the ready/waiting queue membership
// that the scheduler and I/O manager mutate each tick.
//
// A PCB moves through NEW -> READY -> RUNNING -> {READY, WAITING,
// TERMINATED} -> ... -> TERMINATED. Exactly one of ready_queue,
// waiting_queue or running_process holds a given pid at any time; a
// TERMINATED pid holds none. See Table for the invariants enforced
// after every public method.
//
// All state mutation in this package is synchronous and
// single-threaded: callers (pkg/scheduler, pkg/iodevice, pkg/kernel)
// are expected to serialize access through one engine tick.
package process
