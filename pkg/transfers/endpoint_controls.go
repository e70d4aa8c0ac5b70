package transfers

import (
	"fmt"

	"github.com/kevmo314/go-uac/pkg/requests"
)

// UAC1 Endpoint Control Selectors
const (
	EP_CONTROL_UNDEFINED     = 0x00
	EP_SAMPLING_FREQ_CONTROL = 0x01
	EP_PITCH_CONTROL         = 0x02
)

// EndpointControl drives the UAC1 per-endpoint sampling frequency control.
// This is the set/get pair a caller uses when the capability profile marks
// an endpoint's sample rate as settable.
type EndpointControl struct {
	dev      ControlTransferer
	endpoint uint8
}

func NewEndpointControl(dev ControlTransferer, endpoint uint8) *EndpointControl {
	return &EndpointControl{dev: dev, endpoint: endpoint}
}

// SamplingFrequency reads the endpoint's current sampling frequency. UAC1
// encodes it as 3 bytes little endian.
func (c *EndpointControl) SamplingFrequency() (uint32, error) {
	data := make([]byte, 3)
	n, err := c.dev.ControlTransfer(
		uint8(requests.RequestTypeAudioEndpointGetRequest),
		uint8(requests.RequestCodeGetCur),
		EP_SAMPLING_FREQ_CONTROL<<8,
		uint16(c.endpoint),
		data,
		transferTimeout,
	)
	if err != nil {
		return 0, &TransferError{Op: "sampling frequency get", Err: err}
	}
	if n != len(data) {
		return 0, &TransferError{
			Op:  "sampling frequency get",
			Err: fmt.Errorf("%w: got %d bytes, want %d", ErrUnexpectedLength, n, len(data)),
		}
	}
	return uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16, nil
}

// SetSamplingFrequency programs the endpoint's sampling frequency.
func (c *EndpointControl) SetSamplingFrequency(freq uint32) error {
	data := []byte{
		byte(freq),
		byte(freq >> 8),
		byte(freq >> 16),
	}
	_, err := c.dev.ControlTransfer(
		uint8(requests.RequestTypeAudioEndpointSetRequest),
		uint8(requests.RequestCodeSetCur),
		EP_SAMPLING_FREQ_CONTROL<<8,
		uint16(c.endpoint),
		data,
		transferTimeout,
	)
	if err != nil {
		return &TransferError{Op: "sampling frequency set", Err: err}
	}
	return nil
}
