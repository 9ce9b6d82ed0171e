package iodevice

import "errors"

// ErrUnknownDevice is returned by RequestIO for a device name that was
// never registered with AddDevice.
var ErrUnknownDevice = errors.New("iodevice: unknown device")
