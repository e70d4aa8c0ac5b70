// This file implements the standard (non class-specific) descriptors the
// audio capability scan cares about, as defined in USB 2.0 spec, section 9.6.
package descriptors

import (
	"encoding/binary"
	"io"
)

// StandardInterfaceDescriptor as defined in USB 2.0 spec, section 9.6.5.
type StandardInterfaceDescriptor struct {
	InterfaceNumber   uint8
	AlternateSetting  uint8
	NumEndpoints      uint8
	InterfaceClass    uint8
	InterfaceSubClass uint8
	InterfaceProtocol uint8
	DescriptionIndex  uint8
}

func (sid *StandardInterfaceDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 9 {
		return io.ErrShortBuffer
	}
	sid.InterfaceNumber = buf[2]
	sid.AlternateSetting = buf[3]
	sid.NumEndpoints = buf[4]
	sid.InterfaceClass = buf[5]
	sid.InterfaceSubClass = buf[6]
	sid.InterfaceProtocol = buf[7]
	sid.DescriptionIndex = buf[8]
	return nil
}

// IsAudioStreaming reports whether this alternate setting belongs to an
// audio streaming interface that actually carries data.
func (sid *StandardInterfaceDescriptor) IsAudioStreaming() bool {
	return ClassCode(sid.InterfaceClass) == ClassCodeAudio &&
		SubclassCode(sid.InterfaceSubClass) == SubclassCodeAudioStreaming &&
		sid.NumEndpoints > 0
}

// StandardEndpointDescriptor as defined in USB 2.0 spec, section 9.6.6.
type StandardEndpointDescriptor struct {
	EndpointAddress   uint8
	AttributesBitmask uint8
	MaxPacketSize     uint16
	Interval          uint8
}

func (sed *StandardEndpointDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 7 {
		return io.ErrShortBuffer
	}
	sed.EndpointAddress = buf[2]
	sed.AttributesBitmask = buf[3]
	// bits 11-12 are additional transactions per microframe, not size
	sed.MaxPacketSize = binary.LittleEndian.Uint16(buf[4:6]) & 0x07FF
	sed.Interval = buf[6]
	return nil
}

func (sed *StandardEndpointDescriptor) IsInput() bool {
	return sed.EndpointAddress&0x80 != 0
}

func (sed *StandardEndpointDescriptor) IsIsochronous() bool {
	return sed.AttributesBitmask&0x03 == 0x01
}
