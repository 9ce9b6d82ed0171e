// Package scenario decodes a declarative simulation run from YAML: the
// process list, memory mode, scheduling policy and quantum, and the I/O
// disk-scheduling policy. It is the natural ecosystem substitute for
// threading a dozen CLI flags through cmd/so-lite-sim, the way
// original_source/backend/main.py hardcoded an equivalent run in
// run_simulation's call site.
package scenario
