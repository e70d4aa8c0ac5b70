package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	uac "github.com/kevmo314/go-uac"
)

func main() {
	path := flag.String("path", "/dev/bus/usb/001/007", "path to the usb device")
	verbose := flag.Bool("verbose", false, "print scan diagnostics")
	flag.Parse()

	fd, err := os.OpenFile(*path, os.O_RDWR, 0)
	if err != nil {
		panic(err)
	}
	defer fd.Close()

	dev, err := uac.NewUACDevice(fd.Fd())
	if err != nil {
		panic(err)
	}
	defer dev.Close()

	if *verbose {
		dev.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	// claim the control interface around the parse; a kernel audio driver
	// may be holding it
	if err := dev.Handle().ClaimInterface(0); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not claim control interface: %v\n", err)
	} else {
		defer dev.Handle().ReleaseInterface(0)
	}

	caps, err := dev.Capabilities()
	if err != nil {
		panic(err)
	}

	fmt.Printf("Audio class: %s\n", caps.VersionString())
	if caps.ClockID >= 0 {
		fmt.Printf("Clock source entity: %d\n", caps.ClockID)
	}

	fmt.Printf("Sample rates (%d):", len(caps.SampleRates))
	for _, rate := range caps.SampleRates {
		fmt.Printf(" %d", rate)
	}
	fmt.Println()

	if len(caps.Endpoints) == 0 {
		fmt.Println("No isochronous audio input endpoints found")
		os.Exit(1)
	}

	for _, ep := range caps.Endpoints {
		fmt.Printf("Interface %d alt %d: %dch %d-bit @ %d Hz, EP 0x%02x, %d bytes/packet",
			ep.InterfaceNumber, ep.AlternateSetting,
			ep.Channels, ep.BitResolution, ep.SampleRate,
			ep.EndpointAddress, ep.MaxPacketSize)
		if ep.SampleRateSettable {
			fmt.Print(" (rate settable)")
		}
		fmt.Println()
	}
}
