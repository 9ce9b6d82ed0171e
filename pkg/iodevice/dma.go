package iodevice

import "sort"

// dmaTransfer tracks one in-flight direct-memory-access transfer.
type dmaTransfer struct {
	ID          int
	Source      int
	Dest        int
	Size        int
	Transferred int
}

// dmaController advances active transfers by a fixed rate per step,
// removing them once complete.
type dmaController struct {
	active  map[string]*dmaTransfer
	counter int
}

func newDMAController() *dmaController {
	return &dmaController{active: make(map[string]*dmaTransfer)}
}

// startTransfer registers a new transfer for deviceName, returning its
// id. A device may have at most one active transfer; starting a new one
// replaces any prior in-flight transfer.
func (c *dmaController) startTransfer(deviceName string, source, dest, size int) int {
	c.counter++
	c.active[deviceName] = &dmaTransfer{ID: c.counter, Source: source, Dest: dest, Size: size}
	return c.counter
}

const defaultDMARate = 1024

// update advances every active transfer by rate, returning the device
// names whose transfer completed this step.
func (c *dmaController) update(rate int) []string {
	if rate <= 0 {
		rate = defaultDMARate
	}
	var completed []string
	for name, t := range c.active {
		t.Transferred += rate
		if t.Transferred >= t.Size {
			completed = append(completed, name)
			delete(c.active, name)
		}
	}
	sort.Strings(completed)
	return completed
}
