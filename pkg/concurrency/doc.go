// Package concurrency models the synchronization primitives the
// engine exposes without ever exercising real concurrency: semaphores,
// mutexes, a wait-for-graph deadlock detector, and the banker's
// algorithm for safe resource allocation. Every operation here is a
// single-threaded state mutation driven by the kernel loop.
package concurrency
