package descriptors

import (
	"errors"
	"io"
	"testing"
)

func TestStandardInterfaceDescriptor_UnmarshalBinary(t *testing.T) {
	buf := []byte{
		0x09, // bLength
		0x04, // bDescriptorType (INTERFACE)
		0x01, // bInterfaceNumber
		0x02, // bAlternateSetting
		0x01, // bNumEndpoints
		0x01, // bInterfaceClass (Audio)
		0x02, // bInterfaceSubClass (AudioStreaming)
		0x00, // bInterfaceProtocol
		0x00, // iInterface
	}

	sid := &StandardInterfaceDescriptor{}
	if err := sid.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if sid.InterfaceNumber != 1 {
		t.Errorf("InterfaceNumber = %d, want 1", sid.InterfaceNumber)
	}
	if sid.AlternateSetting != 2 {
		t.Errorf("AlternateSetting = %d, want 2", sid.AlternateSetting)
	}
	if !sid.IsAudioStreaming() {
		t.Error("IsAudioStreaming() = false, want true")
	}
}

func TestStandardInterfaceDescriptor_ZeroBandwidth(t *testing.T) {
	// alt setting 0 with no endpoints must not count as streaming
	buf := []byte{0x09, 0x04, 0x01, 0x00, 0x00, 0x01, 0x02, 0x00, 0x00}

	sid := &StandardInterfaceDescriptor{}
	if err := sid.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if sid.IsAudioStreaming() {
		t.Error("IsAudioStreaming() = true for zero-bandwidth alt setting")
	}
}

func TestStandardInterfaceDescriptor_ShortBuffer(t *testing.T) {
	sid := &StandardInterfaceDescriptor{}
	if err := sid.UnmarshalBinary([]byte{0x09, 0x04, 0x01}); !errors.Is(err, io.ErrShortBuffer) {
		t.Errorf("UnmarshalBinary = %v, want io.ErrShortBuffer", err)
	}
}

func TestStandardEndpointDescriptor_UnmarshalBinary(t *testing.T) {
	buf := []byte{
		0x09,       // bLength
		0x05,       // bDescriptorType (ENDPOINT)
		0x81,       // bEndpointAddress (IN, endpoint 1)
		0x05,       // bmAttributes (isochronous, async)
		0xC4, 0x04, // wMaxPacketSize (little endian, 1220: 0x04C4 keeps bits 11-12 clear)
		0x01, // bInterval
		0x00, // bRefresh
		0x00, // bSynchAddress
	}

	sed := &StandardEndpointDescriptor{}
	if err := sed.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if !sed.IsInput() {
		t.Error("IsInput() = false, want true")
	}
	if !sed.IsIsochronous() {
		t.Error("IsIsochronous() = false, want true")
	}
	if sed.MaxPacketSize != 0x04C4 {
		t.Errorf("MaxPacketSize = %d, want %d", sed.MaxPacketSize, 0x04C4)
	}
}

func TestStandardEndpointDescriptor_HighBandwidthBitsMasked(t *testing.T) {
	// wMaxPacketSize 0x1400: bit 12 set (two transactions), size 1024
	buf := []byte{0x07, 0x05, 0x81, 0x01, 0x00, 0x14, 0x01}

	sed := &StandardEndpointDescriptor{}
	if err := sed.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if sed.MaxPacketSize != 0x0400 {
		t.Errorf("MaxPacketSize = %d, want %d", sed.MaxPacketSize, 0x0400)
	}
}

func TestAudioControlHeaderDescriptor_UnmarshalBinary(t *testing.T) {
	cases := []struct {
		name   string
		buf    []byte
		bcdADC uint16
		uac2   bool
	}{
		{
			name: "uac1",
			buf: []byte{
				0x09,       // bLength
				0x24,       // bDescriptorType (CS_INTERFACE)
				0x01,       // bDescriptorSubtype (HEADER)
				0x01, 0x00, // bcdADC
				0x1E, 0x00, // wTotalLength
				0x01, // bInCollection
				0x01, // baInterfaceNr(1)
			},
			bcdADC: 0x0100,
			uac2:   false,
		},
		{
			name: "uac2",
			buf: []byte{
				0x09,       // bLength
				0x24,       // bDescriptorType (CS_INTERFACE)
				0x01,       // bDescriptorSubtype (HEADER)
				0x02, 0x00, // bcdADC
				0x08, // bCategory
				0x40, 0x00, // wTotalLength
				0x00, // bmControls
			},
			bcdADC: 0x0200,
			uac2:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			achd := &AudioControlHeaderDescriptor{}
			if err := achd.UnmarshalBinary(tc.buf); err != nil {
				t.Fatalf("UnmarshalBinary failed: %v", err)
			}
			if achd.BcdADC != tc.bcdADC {
				t.Errorf("BcdADC = 0x%04x, want 0x%04x", achd.BcdADC, tc.bcdADC)
			}
			if achd.IsUAC2() != tc.uac2 {
				t.Errorf("IsUAC2() = %v, want %v", achd.IsUAC2(), tc.uac2)
			}
		})
	}
}

func TestClockSourceDescriptor_UnmarshalBinary(t *testing.T) {
	buf := []byte{
		0x08, // bLength
		0x24, // bDescriptorType (CS_INTERFACE)
		0x0A, // bDescriptorSubtype (CLOCK_SOURCE)
		0x29, // bClockID
		0x01, // bmAttributes (internal fixed clock)
		0x01, // bmControls (frequency readable)
		0x00, // bAssocTerminal
		0x00, // iClockSource
	}

	csd := &ClockSourceDescriptor{}
	if err := csd.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if csd.ClockID != 0x29 {
		t.Errorf("ClockID = %d, want %d", csd.ClockID, 0x29)
	}
	if !csd.HasClock() {
		t.Error("HasClock() = false, want true")
	}
	if !csd.FrequencyReadable() {
		t.Error("FrequencyReadable() = false, want true")
	}
}

func TestClockSourceDescriptor_SOFDerived(t *testing.T) {
	// attributes 0 means the clock is derived from SOF, nothing to query
	buf := []byte{0x08, 0x24, 0x0A, 0x29, 0x00, 0x01, 0x00, 0x00}

	csd := &ClockSourceDescriptor{}
	if err := csd.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if csd.HasClock() {
		t.Error("HasClock() = true for SOF-derived clock")
	}
}

func TestASGeneralDescriptor_UnmarshalBinary(t *testing.T) {
	buf := []byte{
		0x07,       // bLength
		0x24,       // bDescriptorType (CS_INTERFACE)
		0x01,       // bDescriptorSubtype (AS_GENERAL)
		0x02,       // bTerminalLink
		0x01,       // bDelay
		0x01, 0x00, // wFormatTag (PCM)
	}

	agd := &ASGeneralDescriptor{}
	if err := agd.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if agd.TerminalLink != 2 {
		t.Errorf("TerminalLink = %d, want 2", agd.TerminalLink)
	}
	if !agd.IsPCM() {
		t.Error("IsPCM() = false, want true")
	}
}

func TestFormatTypeIDescriptor_Discrete(t *testing.T) {
	buf := []byte{
		0x11, // bLength
		0x24, // bDescriptorType (CS_INTERFACE)
		0x02, // bDescriptorSubtype (FORMAT_TYPE)
		0x01, // bFormatType (TYPE_I)
		0x02, // bNrChannels
		0x02, // bSubframeSize
		0x10, // bBitResolution
		0x03, // bSamFreqType (3 discrete rates)
		0x44, 0xAC, 0x00, // 44100
		0x80, 0xBB, 0x00, // 48000
		0x00, 0x77, 0x01, // 96000
	}

	ftd := &FormatTypeIDescriptor{}
	if err := ftd.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if ftd.NrChannels != 2 {
		t.Errorf("NrChannels = %d, want 2", ftd.NrChannels)
	}
	if ftd.BitResolution != 16 {
		t.Errorf("BitResolution = %d, want 16", ftd.BitResolution)
	}
	if ftd.Continuous {
		t.Error("Continuous = true for discrete table")
	}
	want := []uint32{44100, 48000, 96000}
	if len(ftd.SamFreqs) != len(want) {
		t.Fatalf("len(SamFreqs) = %d, want %d", len(ftd.SamFreqs), len(want))
	}
	for i, freq := range want {
		if ftd.SamFreqs[i] != freq {
			t.Errorf("SamFreqs[%d] = %d, want %d", i, ftd.SamFreqs[i], freq)
		}
	}
}

func TestFormatTypeIDescriptor_Continuous(t *testing.T) {
	buf := []byte{
		0x0E, // bLength
		0x24, // bDescriptorType (CS_INTERFACE)
		0x02, // bDescriptorSubtype (FORMAT_TYPE)
		0x01, // bFormatType (TYPE_I)
		0x01, // bNrChannels
		0x02, // bSubframeSize
		0x10, // bBitResolution
		0x00, // bSamFreqType (continuous)
		0x40, 0x1F, 0x00, // tLowerSamFreq = 8000
		0x80, 0xBB, 0x00, // tUpperSamFreq = 48000
	}

	ftd := &FormatTypeIDescriptor{}
	if err := ftd.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if !ftd.Continuous {
		t.Error("Continuous = false, want true")
	}
	if ftd.LowerSamFreq != 8000 {
		t.Errorf("LowerSamFreq = %d, want 8000", ftd.LowerSamFreq)
	}
	if ftd.UpperSamFreq != 48000 {
		t.Errorf("UpperSamFreq = %d, want 48000", ftd.UpperSamFreq)
	}
}

func TestFormatTypeIDescriptor_OverdeclaredTable(t *testing.T) {
	// declares 4 rates but only carries 2; the extra entries are dropped
	buf := []byte{
		0x0E, 0x24, 0x02, 0x01, 0x01, 0x02, 0x10,
		0x04,             // bSamFreqType
		0x44, 0xAC, 0x00, // 44100
		0x80, 0xBB, 0x00, // 48000
	}

	ftd := &FormatTypeIDescriptor{}
	if err := ftd.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if len(ftd.SamFreqs) != 2 {
		t.Errorf("len(SamFreqs) = %d, want 2", len(ftd.SamFreqs))
	}
}

func TestFormatTypeIDescriptor_WrongFormatType(t *testing.T) {
	buf := []byte{0x09, 0x24, 0x02, 0x02, 0x01, 0x02, 0x10, 0x00, 0x00}

	ftd := &FormatTypeIDescriptor{}
	if err := ftd.UnmarshalBinary(buf); !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("UnmarshalBinary = %v, want ErrInvalidDescriptor", err)
	}
}

func TestUAC2FormatTypeIDescriptor_UnmarshalBinary(t *testing.T) {
	buf := []byte{
		0x06, // bLength
		0x24, // bDescriptorType (CS_INTERFACE)
		0x02, // bDescriptorSubtype (FORMAT_TYPE)
		0x01, // bFormatType (TYPE_I)
		0x02, // bSubslotSize
		0x10, // bBitResolution
	}

	ftd := &UAC2FormatTypeIDescriptor{}
	if err := ftd.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if ftd.SubslotSize != 2 {
		t.Errorf("SubslotSize = %d, want 2", ftd.SubslotSize)
	}
	if ftd.BitResolution != 16 {
		t.Errorf("BitResolution = %d, want 16", ftd.BitResolution)
	}
}

func TestASIsochronousAudioDataEndpointDescriptor_UnmarshalBinary(t *testing.T) {
	buf := []byte{
		0x07,       // bLength
		0x25,       // bDescriptorType (CS_ENDPOINT)
		0x01,       // bDescriptorSubtype (EP_GENERAL)
		0x01,       // bmAttributes (sampling frequency control)
		0x01,       // bLockDelayUnits
		0x02, 0x00, // wLockDelay
	}

	ased := &ASIsochronousAudioDataEndpointDescriptor{}
	if err := ased.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if !ased.SamplingFrequencyControl() {
		t.Error("SamplingFrequencyControl() = false, want true")
	}
	if ased.LockDelay != 2 {
		t.Errorf("LockDelay = %d, want 2", ased.LockDelay)
	}
}

func TestASIsochronousAudioDataEndpointDescriptor_ShortForm(t *testing.T) {
	// some devices emit the 4-byte form without the lock delay fields
	buf := []byte{0x04, 0x25, 0x01, 0x00}

	ased := &ASIsochronousAudioDataEndpointDescriptor{}
	if err := ased.UnmarshalBinary(buf); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if ased.SamplingFrequencyControl() {
		t.Error("SamplingFrequencyControl() = true, want false")
	}
}
