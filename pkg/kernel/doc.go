// Package kernel assembles the process table, CPU scheduler, memory
// manager, I/O manager and concurrency layer behind a single engine
// loop: Initialize once, then drive it tick by tick (or via Simulate)
// the way the rest of the pack's compute engines expose a step
// function over owned state.
package kernel
