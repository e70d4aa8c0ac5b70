package uac

import (
	"github.com/rs/zerolog"

	"github.com/kevmo314/go-uac/pkg/descriptors"
)

// Candidate rates probed into a continuous sample-frequency range. The
// bounds themselves are always inserted; these fill in the common rates
// between them.
var continuousRateCandidates = []uint32{44100, 48000, 96000, 192000, 256000, 384000, 500000}

// Action tells the scan driver what to do after a record has been applied.
// Keeping the blocking clock query out of Advance keeps the transition
// function deterministic against literal byte buffers.
type Action int

const (
	ActionNone Action = iota
	// ActionQueryClock asks the driver to read the current frequency from
	// the clock source identified by ClockID and feed the result back
	// through ApplyClockRate before the next record.
	ActionQueryClock
)

// NextRecord returns the descriptor record starting at off and the offset
// of the record after it. ok is false once the buffer is exhausted or the
// record's declared length would run past the end; trailing garbage is
// common on real devices, so the malformed tail is dropped rather than
// reported.
func NextRecord(buf []byte, off int) (rec []byte, next int, ok bool) {
	if off >= len(buf) {
		return nil, off, false
	}
	n := int(buf[off])
	if n < 2 || off+n > len(buf) {
		return nil, off, false
	}
	return buf[off : off+n], off + n, true
}

// ScanState carries the cross-record state of one descriptor pass. Each
// pass owns a fresh instance; it is not safe for concurrent mutation.
type ScanState struct {
	InterfaceNumber  uint8
	AlternateSetting uint8

	// AudioStreaming is set while inside an audio streaming alternate
	// setting that carries data endpoints.
	AudioStreaming bool
	ExpectFormat   bool
	ExpectEndpoint bool
	// UAC2Format selects the UAC2 layout for the next Format Type I
	// record, which reuses the UAC1 subtype value.
	UAC2Format bool

	// Version is 0 until a header has been seen. Once raised to 2 it is
	// never downgraded.
	Version int
	// ClockID is -1 until a readable clock source entity has been seen.
	ClockID int

	Channels      uint8
	BitResolution uint8
	SampleRate    uint32

	endpointAddress uint8
	maxPacketSize   uint16

	rates     map[uint32]struct{}
	endpoints []Endpoint

	log zerolog.Logger
}

func NewScanState(log zerolog.Logger) *ScanState {
	return &ScanState{
		ClockID: -1,
		rates:   make(map[uint32]struct{}),
		log:     log,
	}
}

// ApplyClockRate feeds a frequency read from the clock source back into
// the state, so endpoint records that follow see a concrete rate.
func (s *ScanState) ApplyClockRate(rate uint32) {
	s.SampleRate = rate
	s.rates[rate] = struct{}{}
}

// RateKnown reports whether any sample rate has been discovered on any
// path so far.
func (s *ScanState) RateKnown() bool {
	return len(s.rates) > 0
}

// Advance applies a single descriptor record to the state. It performs no
// I/O; when a record calls for a live clock query the need is returned as
// an action for the driver to execute.
func (s *ScanState) Advance(rec []byte) Action {
	switch descriptors.DescriptorType(rec[1]) {
	case descriptors.DescriptorTypeInterface:
		s.advanceInterface(rec)
	case descriptors.DescriptorTypeClassSpecificInterface:
		return s.advanceClassInterface(rec)
	case descriptors.DescriptorTypeEndpoint:
		s.advanceEndpoint(rec)
	case descriptors.DescriptorTypeClassSpecificEndpoint:
		s.advanceClassEndpoint(rec)
	}
	return ActionNone
}

func (s *ScanState) advanceInterface(rec []byte) {
	var desc descriptors.StandardInterfaceDescriptor
	if err := desc.UnmarshalBinary(rec); err != nil {
		return
	}
	s.InterfaceNumber = desc.InterfaceNumber
	s.AlternateSetting = desc.AlternateSetting
	// an interface boundary invalidates any pending endpoint expectation
	s.ExpectEndpoint = false
	if desc.IsAudioStreaming() {
		s.AudioStreaming = true
		s.ExpectFormat = true
		s.UAC2Format = false
		s.log.Debug().
			Uint8("interface", desc.InterfaceNumber).
			Uint8("alternate", desc.AlternateSetting).
			Msg("entering audio streaming alternate setting")
	} else {
		s.AudioStreaming = false
	}
}

// advanceClassInterface dispatches the class-specific interface subtypes.
// The subtype checks are sequential and independent: 0x01 is both the
// audio control header and the streaming general descriptor depending on
// which interface the record sits under, so each check carries its own
// qualifying conditions rather than being mutually exclusive.
func (s *ScanState) advanceClassInterface(rec []byte) Action {
	if len(rec) < 3 {
		return ActionNone
	}
	action := ActionNone
	subtype := rec[2]

	if subtype == byte(descriptors.AudioControlInterfaceDescriptorSubtypeHeader) {
		var hdr descriptors.AudioControlHeaderDescriptor
		if err := hdr.UnmarshalBinary(rec); err == nil {
			if hdr.IsUAC2() {
				s.Version = 2
			} else if s.Version == 0 {
				s.Version = 1
			}
		}
	}

	if subtype == byte(descriptors.AudioStreamingInterfaceDescriptorSubtypeGeneral) &&
		s.AudioStreaming && s.ExpectFormat {
		if s.Version == 2 {
			// The record only marks the layout; the actual rate comes
			// from the clock source entity.
			s.UAC2Format = true
		} else {
			var gen descriptors.ASGeneralDescriptor
			if err := gen.UnmarshalBinary(rec); err == nil && !gen.IsPCM() {
				// Non-PCM streams are noted and otherwise treated the
				// same as PCM-shaped ones.
				s.log.Debug().
					Uint16("format_tag", gen.FormatTag).
					Msg("non-PCM format tag")
			}
		}
	}

	if subtype == byte(descriptors.AudioStreamingInterfaceDescriptorSubtypeFormatType) &&
		s.AudioStreaming && s.ExpectFormat {
		action = s.advanceFormatType(rec)
	}

	if subtype == byte(descriptors.AudioControlInterfaceDescriptorSubtypeClockSource) {
		s.advanceClockSource(rec)
	}
	return action
}

func (s *ScanState) advanceFormatType(rec []byte) Action {
	if s.UAC2Format {
		var desc descriptors.UAC2FormatTypeIDescriptor
		if err := desc.UnmarshalBinary(rec); err != nil {
			return ActionNone
		}
		// target devices are single-channel in UAC2 mode
		s.Channels = 1
		s.BitResolution = desc.BitResolution
		s.ExpectFormat = false
		s.UAC2Format = false
		s.ExpectEndpoint = true
		if s.ClockID >= 0 {
			return ActionQueryClock
		}
		return ActionNone
	}

	var desc descriptors.FormatTypeIDescriptor
	if err := desc.UnmarshalBinary(rec); err != nil {
		return ActionNone
	}
	s.Channels = desc.NrChannels
	s.BitResolution = desc.BitResolution
	if desc.Continuous {
		s.rates[desc.LowerSamFreq] = struct{}{}
		s.rates[desc.UpperSamFreq] = struct{}{}
		for _, rate := range continuousRateCandidates {
			if rate >= desc.LowerSamFreq && rate <= desc.UpperSamFreq {
				s.rates[rate] = struct{}{}
			}
		}
		s.SampleRate = desc.UpperSamFreq
	} else {
		var max uint32
		for _, rate := range desc.SamFreqs {
			s.rates[rate] = struct{}{}
			if rate > max {
				max = rate
			}
		}
		s.SampleRate = max
	}
	s.ExpectFormat = false
	s.ExpectEndpoint = true
	return ActionNone
}

func (s *ScanState) advanceClockSource(rec []byte) {
	var desc descriptors.ClockSourceDescriptor
	if err := desc.UnmarshalBinary(rec); err != nil {
		return
	}
	// only the first readable clock source is kept
	if s.ClockID < 0 && desc.HasClock() && desc.FrequencyReadable() {
		s.ClockID = int(desc.ClockID)
		s.log.Debug().
			Uint8("clock_id", desc.ClockID).
			Msg("readable clock source")
	}
}

func (s *ScanState) advanceEndpoint(rec []byte) {
	if !s.ExpectEndpoint {
		return
	}
	var desc descriptors.StandardEndpointDescriptor
	if err := desc.UnmarshalBinary(rec); err != nil {
		return
	}
	if !desc.IsInput() || !desc.IsIsochronous() {
		return
	}
	// one endpoint consumed per format block
	s.ExpectEndpoint = false
	s.endpointAddress = desc.EndpointAddress
	s.maxPacketSize = desc.MaxPacketSize
}

func (s *ScanState) advanceClassEndpoint(rec []byte) {
	var desc descriptors.ASIsochronousAudioDataEndpointDescriptor
	if err := desc.UnmarshalBinary(rec); err != nil {
		return
	}
	if s.SampleRate == 0 {
		return
	}
	s.endpoints = append(s.endpoints, Endpoint{
		Channels:           int(s.Channels),
		BitResolution:      int(s.BitResolution),
		SampleRate:         s.SampleRate,
		SampleRateSettable: desc.SamplingFrequencyControl(),
		InterfaceNumber:    s.InterfaceNumber,
		AlternateSetting:   s.AlternateSetting,
		EndpointAddress:    s.endpointAddress,
		MaxPacketSize:      s.maxPacketSize,
	})
}
