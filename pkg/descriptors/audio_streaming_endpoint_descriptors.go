// This file implements the class-specific audio data endpoint descriptor as
// defined in UAC spec 1.0, section 4.6.1.2.
package descriptors

import (
	"encoding/binary"
	"io"
)

type ASIsochronousAudioDataEndpointDescriptor struct {
	AttributesBitmask uint8
	LockDelayUnits    uint8
	LockDelay         uint16
}

func (ased *ASIsochronousAudioDataEndpointDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 4 {
		return io.ErrShortBuffer
	}
	ased.AttributesBitmask = buf[3]
	// bLockDelayUnits/wLockDelay are present on full-length records only
	if len(buf) >= 7 {
		ased.LockDelayUnits = buf[4]
		ased.LockDelay = binary.LittleEndian.Uint16(buf[5:7])
	}
	return nil
}

// SamplingFrequencyControl reports whether the endpoint accepts SET_CUR of
// the sampling frequency control (attribute bit 0).
func (ased *ASIsochronousAudioDataEndpointDescriptor) SamplingFrequencyControl() bool {
	return ased.AttributesBitmask&0x01 != 0
}
