//go:build !windows

package uac

import (
	"fmt"
	"sync/atomic"

	usb "github.com/kevmo314/go-usb"
	"github.com/rs/zerolog"
)

// UACDevice wraps an already-open USB audio device. The caller opens and
// authorizes the file descriptor (e.g. from usbdevfs or an Android
// UsbDeviceConnection) and hands it over; claiming interfaces for
// streaming remains the caller's responsibility.
type UACDevice struct {
	handle *usb.DeviceHandle
	closed *atomic.Bool

	// Logger receives scan diagnostics. Defaults to a no-op logger.
	Logger zerolog.Logger
}

func (d *UACDevice) Close() error {
	d.closed.Store(true)
	return d.handle.Close()
}

// Handle exposes the underlying USB device handle for callers that need
// to claim interfaces or run their own transfers.
func (d *UACDevice) Handle() *usb.DeviceHandle {
	return d.handle
}

// Capabilities fetches the active configuration descriptor and resolves
// the audio capability profile from it. UAC2 devices get their sample
// rate read live from the clock source entity over the same handle.
func (d *UACDevice) Capabilities() (*Capabilities, error) {
	raw, err := d.handle.RawConfigDescriptor(0)
	if err != nil {
		return nil, fmt.Errorf("failed to get config descriptor: %w", err)
	}
	return Resolve(raw, d.handle, d.Logger), nil
}
