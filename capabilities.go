package uac

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/kevmo314/go-uac/pkg/transfers"
)

// Endpoint describes one isochronous audio input the device exposes and
// the interface alternate setting that has to be selected to stream from
// it.
type Endpoint struct {
	Channels           int
	BitResolution      int
	SampleRate         uint32
	SampleRateSettable bool
	InterfaceNumber    uint8
	AlternateSetting   uint8
	EndpointAddress    uint8
	MaxPacketSize      uint16
}

// Capabilities is the audio profile recovered from one pass over a
// configuration descriptor. It is immutable once returned.
type Capabilities struct {
	// UACVersion is 1 or 2. A device that never declares any UAC2
	// entities is treated as UAC1.
	UACVersion int
	// SampleRates holds the supported rates in Hz, ascending and
	// deduplicated.
	SampleRates []uint32
	// Endpoints are listed in the order they were encountered in the
	// descriptor stream.
	Endpoints []Endpoint
	// ClockID identifies the UAC2 clock source entity the rates were read
	// from, or -1 when the device declares none.
	ClockID int
}

func (c *Capabilities) VersionString() string {
	return fmt.Sprintf("UAC%d", c.UACVersion)
}

// MaxSampleRate returns the highest supported rate, or 0 when none was
// discovered.
func (c *Capabilities) MaxSampleRate() uint32 {
	if len(c.SampleRates) == 0 {
		return 0
	}
	return c.SampleRates[len(c.SampleRates)-1]
}

// Resolve scans a raw configuration descriptor buffer and builds the
// capability profile. dev is used only for the UAC2 clock frequency query
// and may be nil, in which case the query is skipped and the profile may
// come back without a rate. Malformed descriptor data never fails the
// resolve; the profile reflects whatever well-formed records preceded the
// damage.
func Resolve(raw []byte, dev transfers.ControlTransferer, log zerolog.Logger) *Capabilities {
	state := NewScanState(log)
	for off := 0; ; {
		rec, next, ok := NextRecord(raw, off)
		if !ok {
			if off < len(raw) {
				log.Debug().Int("offset", off).Msg("dropping truncated descriptor tail")
			}
			break
		}
		if state.Advance(rec) == ActionQueryClock {
			queryClock(state, dev, log)
		}
		off = next
	}

	// Last chance: a readable clock source was declared but no format
	// record led to a rate on any path.
	if state.ClockID >= 0 && !state.RateKnown() {
		queryClock(state, dev, log)
	}

	caps := &Capabilities{
		UACVersion: state.Version,
		Endpoints:  state.endpoints,
		ClockID:    state.ClockID,
	}
	if caps.UACVersion == 0 {
		caps.UACVersion = 1
	}
	caps.SampleRates = make([]uint32, 0, len(state.rates))
	for rate := range state.rates {
		caps.SampleRates = append(caps.SampleRates, rate)
	}
	sort.Slice(caps.SampleRates, func(i, j int) bool {
		return caps.SampleRates[i] < caps.SampleRates[j]
	})
	return caps
}

func queryClock(state *ScanState, dev transfers.ControlTransferer, log zerolog.Logger) {
	if dev == nil {
		log.Debug().Int("clock_id", state.ClockID).Msg("no connection for clock query")
		return
	}
	clock := transfers.NewClockSource(dev, uint8(state.ClockID))
	rate, err := clock.Frequency()
	if err != nil {
		log.Warn().Err(err).Int("clock_id", state.ClockID).Msg("clock frequency query failed")
		return
	}
	state.ApplyClockRate(rate)
}
