package descriptors

import (
	"encoding/binary"
	"io"
)

// ASGeneralDescriptor as defined in UAC spec 1.0, section 4.5.2.
type ASGeneralDescriptor struct {
	TerminalLink uint8
	Delay        uint8
	FormatTag    uint16
}

func (agd *ASGeneralDescriptor) Subtype() AudioStreamingInterfaceDescriptorSubtype {
	return AudioStreamingInterfaceDescriptorSubtypeGeneral
}

func (agd *ASGeneralDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 7 {
		return io.ErrShortBuffer
	}
	agd.TerminalLink = buf[3]
	agd.Delay = buf[4]
	agd.FormatTag = binary.LittleEndian.Uint16(buf[5:7])
	return nil
}

func (agd *ASGeneralDescriptor) IsPCM() bool {
	return agd.FormatTag == FormatTagPCM
}

// FormatTypeIDescriptor is the UAC1 Type I format descriptor as defined in
// the UAC1 data formats spec, section 2.2.5. Sample frequencies come either
// as a discrete table or as a continuous lower/upper range.
type FormatTypeIDescriptor struct {
	NrChannels    uint8
	SubframeSize  uint8
	BitResolution uint8
	Continuous    bool
	LowerSamFreq  uint32 // valid when Continuous
	UpperSamFreq  uint32 // valid when Continuous
	SamFreqs      []uint32
}

func (ftd *FormatTypeIDescriptor) Subtype() AudioStreamingInterfaceDescriptorSubtype {
	return AudioStreamingInterfaceDescriptorSubtypeFormatType
}

func (ftd *FormatTypeIDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 8 {
		return io.ErrShortBuffer
	}
	if buf[3] != FormatTypeI {
		return ErrInvalidDescriptor
	}
	ftd.NrChannels = buf[4]
	ftd.SubframeSize = buf[5]
	ftd.BitResolution = buf[6]
	n := buf[7]
	if n == 0 {
		if len(buf) < 14 {
			return io.ErrShortBuffer
		}
		ftd.Continuous = true
		ftd.LowerSamFreq = uint24(buf[8:11])
		ftd.UpperSamFreq = uint24(buf[11:14])
		return nil
	}
	// Devices sometimes declare more entries than the record holds; read
	// only what fits.
	for i := 0; i < int(n) && 8+3*i+3 <= len(buf); i++ {
		ftd.SamFreqs = append(ftd.SamFreqs, uint24(buf[8+3*i:]))
	}
	return nil
}

// UAC2FormatTypeIDescriptor is the UAC2 Type I format descriptor as defined
// in the UAC2 data formats spec, section 2.3.1.6. It carries no sample
// frequencies; those live on the clock source entity.
type UAC2FormatTypeIDescriptor struct {
	SubslotSize   uint8
	BitResolution uint8
}

func (ftd *UAC2FormatTypeIDescriptor) Subtype() AudioStreamingInterfaceDescriptorSubtype {
	return AudioStreamingInterfaceDescriptorSubtypeFormatType
}

func (ftd *UAC2FormatTypeIDescriptor) UnmarshalBinary(buf []byte) error {
	if len(buf) < 6 {
		return io.ErrShortBuffer
	}
	if buf[3] != FormatTypeI {
		return ErrInvalidDescriptor
	}
	ftd.SubslotSize = buf[4]
	ftd.BitResolution = buf[5]
	return nil
}
