package iodevice

import "github.com/Gutierrez101/so-lite/pkg/types"

// DeviceType names the class of peripheral a Device models.
type DeviceType string

const (
	Disk     DeviceType = "DISK"
	Printer  DeviceType = "PRINTER"
	Keyboard DeviceType = "KEYBOARD"
	Network  DeviceType = "NETWORK"
	USB      DeviceType = "USB"
)

// Status is a Device's current servicing state.
type Status string

const (
	Idle  Status = "IDLE"
	Busy  Status = "BUSY"
	Error Status = "ERROR"
)

// Request is one pending or in-flight I/O operation.
type Request struct {
	RequestID      int
	ProcessID      int
	DeviceName     string
	Operation      string // "read", "write"
	DataSize       int
	Priority       int
	ArrivalTime    types.Tick
	StartTime      types.Tick
	CompletionTime types.Tick
}

// Device is one named peripheral with a FIFO-ordered (pre-scheduling)
// request queue and at most one in-flight request.
type Device struct {
	Name      string
	Type      DeviceType
	Status    Status
	Speed     int // operations processed per unit time
	Queue     []*Request
	Current   *Request
	TotalOps  int
	TotalWait types.Tick
}

func newDevice(name string, kind DeviceType, speed int) *Device {
	return &Device{Name: name, Type: kind, Status: Idle, Speed: speed}
}

// Available reports whether the device can start a new request.
func (d *Device) Available() bool { return d.Status == Idle }

func (d *Device) addRequest(r *Request) {
	d.Queue = append(d.Queue, r)
}

// startNext pops the head of the (already-scheduled) queue and makes it
// the current request, returning it. Requires the device to be idle
// with a non-empty queue.
func (d *Device) startNext(clock types.Tick) *Request {
	if d.Status != Idle || len(d.Queue) == 0 {
		return nil
	}
	req := d.Queue[0]
	d.Queue = d.Queue[1:]
	d.Current = req
	d.Status = Busy
	req.StartTime = clock
	d.TotalWait += req.StartTime - req.ArrivalTime
	return req
}

// completeCurrent finishes the in-flight request, if any, marking the
// device idle again.
func (d *Device) completeCurrent(clock types.Tick) *Request {
	if d.Current == nil {
		return nil
	}
	req := d.Current
	req.CompletionTime = clock
	d.Status = Idle
	d.Current = nil
	d.TotalOps++
	return req
}

// estimatedDuration is how many ticks the in-flight request takes,
// rounded up so a device with Speed > DataSize still takes one tick.
func estimatedDuration(dataSize, speed int) types.Tick {
	if speed <= 0 {
		speed = 1
	}
	d := (dataSize + speed - 1) / speed
	if d <= 0 {
		d = 1
	}
	return types.Tick(d)
}
