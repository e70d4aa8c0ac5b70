package transfers

import (
	"errors"
	"fmt"
	"time"
)

// ControlTransferer issues one synchronous USB control transfer against an
// already-open, already-permissioned device. *usb.DeviceHandle from
// github.com/kevmo314/go-usb satisfies it. The caller keeps ownership of
// the connection; nothing in this package opens, claims, or closes it.
type ControlTransferer interface {
	ControlTransfer(requestType, request uint8, value, index uint16, data []byte, timeout time.Duration) (int, error)
}

// Each exchange gets one bounded wait, no retries.
const transferTimeout = time.Second

var ErrUnexpectedLength = errors.New("unexpected response length")

// TransferError describes a failed control transfer exchange.
type TransferError struct {
	Op  string
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
