//go:build !windows

package uac

import (
	"sync/atomic"

	usb "github.com/kevmo314/go-usb"
	"github.com/rs/zerolog"
)

func NewUACDevice(fd uintptr) (*UACDevice, error) {
	dev := &UACDevice{closed: &atomic.Bool{}, Logger: zerolog.Nop()}

	handle, err := usb.WrapSysDevice(int(fd))
	if err != nil {
		return nil, err
	}
	dev.handle = handle

	return dev, nil
}
