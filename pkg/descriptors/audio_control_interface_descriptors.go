package descriptors

import "io"

// AudioControlHeaderDescriptor represents the class-specific header on the
// audio control interface. Only the release number matters here; the
// interface collection that follows it is not needed for capability
// scanning.
type AudioControlHeaderDescriptor struct {
	BcdADC uint16 // Audio Device Class Specification Release Number
}

func (achd *AudioControlHeaderDescriptor) Subtype() AudioControlInterfaceDescriptorSubtype {
	return AudioControlInterfaceDescriptorSubtypeHeader
}

func (achd *AudioControlHeaderDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 6 {
		return io.ErrShortBuffer
	}
	// bcdADC is read high byte first, matching what the target devices
	// put on the wire; 0x0200 and newer is UAC2.
	achd.BcdADC = uint16(buf[3])<<8 | uint16(buf[4])
	return nil
}

func (achd *AudioControlHeaderDescriptor) IsUAC2() bool {
	return achd.BcdADC >= 0x0200
}

// ClockSourceDescriptor as defined in UAC spec 2.0, section 4.7.2.1.
type ClockSourceDescriptor struct {
	ClockID           uint8
	AttributesBitmask uint8
	ControlsBitmask   uint8
	AssocTerminal     uint8
	DescriptionIndex  uint8
}

func (csd *ClockSourceDescriptor) Subtype() AudioControlInterfaceDescriptorSubtype {
	return AudioControlInterfaceDescriptorSubtypeClockSource
}

func (csd *ClockSourceDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 8 {
		return io.ErrShortBuffer
	}
	csd.ClockID = buf[3]
	csd.AttributesBitmask = buf[4]
	csd.ControlsBitmask = buf[5]
	csd.AssocTerminal = buf[6]
	csd.DescriptionIndex = buf[7]
	return nil
}

// HasClock reports whether the entity is an internal or external clock
// (attribute bits 0-1), as opposed to a free-running SOF-derived one.
func (csd *ClockSourceDescriptor) HasClock() bool {
	return csd.AttributesBitmask&0x03 != 0
}

// FrequencyReadable reports whether the host may issue GET_CUR on the
// sampling frequency control (controls bit 0).
func (csd *ClockSourceDescriptor) FrequencyReadable() bool {
	return csd.ControlsBitmask&0x01 != 0
}
