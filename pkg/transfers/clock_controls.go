package transfers

import (
	"encoding/binary"
	"fmt"

	"github.com/kevmo314/go-uac/pkg/requests"
)

// UAC2 Clock Source Control Selectors
const (
	CS_CONTROL_UNDEFINED   = 0x00
	CS_SAM_FREQ_CONTROL    = 0x01
	CS_CLOCK_VALID_CONTROL = 0x02
)

// ClockSource queries and programs a UAC2 clock source entity. The wValue
// carries the control selector in the high byte; the wIndex carries the
// clock entity ID in the high byte.
type ClockSource struct {
	dev     ControlTransferer
	clockID uint8
}

func NewClockSource(dev ControlTransferer, clockID uint8) *ClockSource {
	return &ClockSource{dev: dev, clockID: clockID}
}

func (c *ClockSource) ClockID() uint8 {
	return c.clockID
}

// Frequency reads the current sampling frequency in Hz via GET CUR. The
// device must answer with exactly 4 bytes; anything else is a hard failure.
func (c *ClockSource) Frequency() (uint32, error) {
	data := make([]byte, 4)
	n, err := c.dev.ControlTransfer(
		uint8(requests.RequestTypeAudioInterfaceGetRequest),
		uint8(requests.RequestCodeCur),
		CS_SAM_FREQ_CONTROL<<8,
		uint16(c.clockID)<<8,
		data,
		transferTimeout,
	)
	if err != nil {
		return 0, &TransferError{Op: "clock frequency get", Err: err}
	}
	if n != len(data) {
		return 0, &TransferError{
			Op:  "clock frequency get",
			Err: fmt.Errorf("%w: got %d bytes, want %d", ErrUnexpectedLength, n, len(data)),
		}
	}
	return binary.LittleEndian.Uint32(data), nil
}

// SetFrequency programs the sampling frequency in Hz via SET CUR.
func (c *ClockSource) SetFrequency(freq uint32) error {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, freq)
	_, err := c.dev.ControlTransfer(
		uint8(requests.RequestTypeAudioInterfaceSetRequest),
		uint8(requests.RequestCodeCur),
		CS_SAM_FREQ_CONTROL<<8,
		uint16(c.clockID)<<8,
		data,
		transferTimeout,
	)
	if err != nil {
		return &TransferError{Op: "clock frequency set", Err: err}
	}
	return nil
}

// Valid reports whether the clock source is locked and producing a valid
// clock.
func (c *ClockSource) Valid() (bool, error) {
	data := make([]byte, 1)
	n, err := c.dev.ControlTransfer(
		uint8(requests.RequestTypeAudioInterfaceGetRequest),
		uint8(requests.RequestCodeCur),
		CS_CLOCK_VALID_CONTROL<<8,
		uint16(c.clockID)<<8,
		data,
		transferTimeout,
	)
	if err != nil {
		return false, &TransferError{Op: "clock valid get", Err: err}
	}
	if n != len(data) {
		return false, &TransferError{
			Op:  "clock valid get",
			Err: fmt.Errorf("%w: got %d bytes, want %d", ErrUnexpectedLength, n, len(data)),
		}
	}
	return data[0] != 0, nil
}
