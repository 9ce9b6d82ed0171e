package iodevice

import (
	"github.com/Gutierrez101/so-lite/pkg/types"
)

// Completion records one request finishing service during a Step,
// which the caller (the kernel engine) uses to wake the owning pid.
type Completion struct {
	ProcessID  int
	DeviceName string
	RequestID  int
}

// Manager owns the device registry, the interrupt and DMA controllers,
// and the completed-request log.
type Manager struct {
	devices   map[string]*Device
	order     []string // device registration order, for deterministic iteration
	interrupt interruptController
	dma       *dmaController

	requestCounter int
	completed      []*Request
}

// New constructs an empty Manager. Call Initialize to seed the default
// device set, or AddDevice to build a custom one.
func New() *Manager {
	return &Manager{
		devices: make(map[string]*Device),
		dma:     newDMAController(),
	}
}

// Initialize seeds the conventional device set: two disks, one
// printer, one network interface.
func (m *Manager) Initialize() {
	m.AddDevice("disk0", Disk, 50)
	m.AddDevice("disk1", Disk, 50)
	m.AddDevice("printer0", Printer, 10)
	m.AddDevice("network0", Network, 100)
}

// AddDevice registers a new device. Re-adding an existing name resets
// it.
func (m *Manager) AddDevice(name string, kind DeviceType, speed int) {
	if _, exists := m.devices[name]; !exists {
		m.order = append(m.order, name)
	}
	m.devices[name] = newDevice(name, kind, speed)
}

// RequestIO enqueues a new request against device, returning its
// request id, or ErrUnknownDevice if device was never registered.
func (m *Manager) RequestIO(pid int, device, operation string, dataSize, priority int, clock types.Tick) (int, error) {
	d, ok := m.devices[device]
	if !ok {
		return 0, ErrUnknownDevice
	}

	m.requestCounter++
	req := &Request{
		RequestID:   m.requestCounter,
		ProcessID:   pid,
		DeviceName:  device,
		Operation:   operation,
		DataSize:    dataSize,
		Priority:    priority,
		ArrivalTime: clock,
	}
	d.addRequest(req)
	return req.RequestID, nil
}

// StartDMATransfer registers a DMA transfer for device.
func (m *Manager) StartDMATransfer(device string, source, dest, size int) int {
	return m.dma.startTransfer(device, source, dest, size)
}

// Step advances every device by one tick: completes finished requests,
// starts the next queued request on idle devices (reordering the queue
// per scheduler first), drains staged interrupts, and advances DMA
// transfers. It returns the completions produced this step, for the
// caller to wake the owning pids.
func (m *Manager) Step(clock types.Tick, scheduler string) []Completion {
	var completions []Completion

	for _, name := range m.order {
		d := m.devices[name]

		if d.Status == Busy && d.Current != nil {
			elapsed := clock - d.Current.StartTime
			estimated := estimatedDuration(d.Current.DataSize, d.Speed)
			if elapsed >= estimated {
				req := d.completeCurrent(clock)
				if req != nil {
					m.interrupt.raise("IO_COMPLETE", name, req.ProcessID)
					m.completed = append(m.completed, req)
					completions = append(completions, Completion{
						ProcessID:  req.ProcessID,
						DeviceName: name,
						RequestID:  req.RequestID,
					})
				}
			}
		}

		if d.Available() && len(d.Queue) > 0 {
			d.Queue = reorder(d.Queue, scheduler, 0)
			d.startNext(clock)
		}
	}

	m.interrupt.drain()
	m.dma.update(defaultDMARate)

	return completions
}

// DeviceState is a read-only snapshot of one device's servicing state,
// mirroring get_devices_state.
type DeviceState struct {
	Name           string
	Type           DeviceType
	Status         Status
	QueueLength    int
	CurrentRequest int // 0 if idle
	TotalOps       int
	AvgWaitingTime float64
}

// DevicesState reports a snapshot of every registered device, in
// registration order.
func (m *Manager) DevicesState() []DeviceState {
	out := make([]DeviceState, 0, len(m.order))
	for _, name := range m.order {
		d := m.devices[name]
		current := 0
		if d.Current != nil {
			current = d.Current.RequestID
		}
		avgWait := 0.0
		if d.TotalOps > 0 {
			avgWait = float64(d.TotalWait) / float64(d.TotalOps)
		}
		out = append(out, DeviceState{
			Name:           d.Name,
			Type:           d.Type,
			Status:         d.Status,
			QueueLength:    len(d.Queue),
			CurrentRequest: current,
			TotalOps:       d.TotalOps,
			AvgWaitingTime: avgWait,
		})
	}
	return out
}

// Statistics mirrors get_statistics.
type Statistics struct {
	TotalRequests     int
	CompletedRequests int
	PendingRequests   int
	AvgTurnaroundTime float64
	TotalInterrupts   int
}

// GetStatistics reports aggregate I/O throughput for the run so far.
func (m *Manager) GetStatistics() Statistics {
	completed := len(m.completed)
	var avgTurnaround float64
	if completed > 0 {
		var sum types.Tick
		for _, r := range m.completed {
			sum += r.CompletionTime - r.ArrivalTime
		}
		avgTurnaround = float64(sum) / float64(completed)
	}

	return Statistics{
		TotalRequests:     m.requestCounter,
		CompletedRequests: completed,
		PendingRequests:   m.requestCounter - completed,
		AvgTurnaroundTime: avgTurnaround,
		TotalInterrupts:   m.interrupt.counter,
	}
}
