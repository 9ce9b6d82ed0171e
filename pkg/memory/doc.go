// Package memory implements the three interchangeable memory-manager
// modes spec.md section 4.3 describes: fixed partitions (first/best/
// worst fit), paging (FIFO/LRU/CLOCK replacement) and segmentation
// (first-fit allocation over a coalesced free-block list).
//
// A Manager is constructed for exactly one mode; Allocate/Deallocate
// and the mode-specific accessors dispatch on it. Manager is not
// thread-safe: callers serialize access the way pkg/kernel does for
// every other subsystem.
package memory
