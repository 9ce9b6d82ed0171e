package concurrency

import "sort"

// DeadlockDetector tracks which pid holds and which pid is waiting on
// which named resource, and can test the resulting graph for cycles.
type DeadlockDetector struct {
	allocation map[int]map[string]bool
	request    map[int]map[string]bool
}

// NewDeadlockDetector constructs an empty detector.
func NewDeadlockDetector() *DeadlockDetector {
	return &DeadlockDetector{
		allocation: make(map[int]map[string]bool),
		request:    make(map[int]map[string]bool),
	}
}

// AddAllocation records that pid currently holds resource.
func (d *DeadlockDetector) AddAllocation(pid int, resource string) {
	if d.allocation[pid] == nil {
		d.allocation[pid] = make(map[string]bool)
	}
	d.allocation[pid][resource] = true
}

// AddRequest records that pid is waiting on resource.
func (d *DeadlockDetector) AddRequest(pid int, resource string) {
	if d.request[pid] == nil {
		d.request[pid] = make(map[string]bool)
	}
	d.request[pid][resource] = true
}

// RemoveAllocation undoes a prior AddAllocation.
func (d *DeadlockDetector) RemoveAllocation(pid int, resource string) {
	if set, ok := d.allocation[pid]; ok {
		delete(set, resource)
	}
}

// RemoveRequest undoes a prior AddRequest.
func (d *DeadlockDetector) RemoveRequest(pid int, resource string) {
	if set, ok := d.request[pid]; ok {
		delete(set, resource)
	}
}

// Detect builds the wait-for graph (edge p -> q iff p requests a
// resource q holds) and runs depth-first cycle detection over it,
// returning every pid participating in a cycle, sorted for
// determinism. Returns nil if no cycle exists.
func (d *DeadlockDetector) Detect() []int {
	waitFor := make(map[int]map[int]bool)
	for requestingPid, resources := range d.request {
		waitFor[requestingPid] = make(map[int]bool)
		for resource := range resources {
			for holdingPid, allocated := range d.allocation {
				if holdingPid != requestingPid && allocated[resource] {
					waitFor[requestingPid][holdingPid] = true
				}
			}
		}
	}

	pids := make([]int, 0, len(waitFor))
	for pid := range waitFor {
		pids = append(pids, pid)
	}
	sort.Ints(pids)

	visited := make(map[int]bool)
	for _, pid := range pids {
		if !visited[pid] {
			recStack := make(map[int]bool)
			if hasCycle(pid, waitFor, visited, recStack) {
				deadlocked := make([]int, len(pids))
				copy(deadlocked, pids)
				return deadlocked
			}
		}
	}
	return nil
}

func hasCycle(node int, waitFor map[int]map[int]bool, visited, recStack map[int]bool) bool {
	visited[node] = true
	recStack[node] = true

	neighbors := make([]int, 0, len(waitFor[node]))
	for n := range waitFor[node] {
		neighbors = append(neighbors, n)
	}
	sort.Ints(neighbors)

	for _, neighbor := range neighbors {
		if !visited[neighbor] {
			if hasCycle(neighbor, waitFor, visited, recStack) {
				return true
			}
		} else if recStack[neighbor] {
			return true
		}
	}

	recStack[node] = false
	return false
}
