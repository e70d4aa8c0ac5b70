package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	uac "github.com/kevmo314/go-uac"
	"github.com/kevmo314/go-uac/pkg/transfers"
)

func main() {
	path := flag.String("path", "", "path to the usb device")
	flag.Parse()

	if *path == "" {
		fmt.Println("Error: Please specify a USB device path with -path flag")
		fmt.Println("Example: uac_inspect -path /dev/bus/usb/001/007")
		fmt.Println("\nAvailable USB devices:")
		fmt.Println("Run: lsusb")
		os.Exit(1)
	}

	fd, err := os.OpenFile(*path, os.O_RDWR, 0)
	if err != nil {
		fmt.Printf("Error opening device %s: %v\n", *path, err)
		fmt.Println("Make sure to run with sudo if permission denied")
		os.Exit(1)
	}
	defer fd.Close()

	dev, err := uac.NewUACDevice(fd.Fd())
	if err != nil {
		fmt.Printf("Error creating UAC device: %v\n", err)
		os.Exit(1)
	}
	defer dev.Close()

	app := tview.NewApplication()

	endpoints := tview.NewList()
	endpoints.SetBorder(true).SetTitle("Audio Endpoints")

	rates := tview.NewList().ShowSecondaryText(false)
	rates.SetBorder(true).SetTitle("Sample Rates")

	controlRequests := tview.NewList().ShowSecondaryText(false)
	controlRequests.SetBorder(true).SetTitle("Rate Controls")
	controlRequests.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			controlRequests.Clear()
			app.SetFocus(endpoints)
			return nil
		}
		return event
	})

	logText := tview.NewTextView()
	logText.SetMaxLines(10).SetBorder(true).SetTitle("Log")
	log.SetOutput(logText)

	// scan diagnostics land in the log pane alongside control results
	dev.Logger = zerolog.New(zerolog.ConsoleWriter{Out: logText, NoColor: true})

	// claim the control interface around the parse; a kernel audio driver
	// may be holding it
	if err := dev.Handle().ClaimInterface(0); err != nil {
		log.Printf("Could not claim control interface: %v", err)
	} else {
		defer dev.Handle().ReleaseInterface(0)
	}

	caps, err := dev.Capabilities()
	if err != nil {
		fmt.Printf("Error resolving capabilities: %v\n", err)
		os.Exit(1)
	}

	if len(caps.Endpoints) == 0 {
		fmt.Println("No isochronous audio input endpoints found on this device.")
		fmt.Println("This might not be an audio device, or it might not be UAC-compliant.")
		os.Exit(1)
	}

	log.Printf("%s device, %d endpoints, %d rates",
		caps.VersionString(), len(caps.Endpoints), len(caps.SampleRates))

	for _, rate := range caps.SampleRates {
		rates.AddItem(formatRate(rate), "", 0, nil)
	}

	for i, ep := range caps.Endpoints {
		title := fmt.Sprintf("Interface %d (Alt %d)", ep.InterfaceNumber, ep.AlternateSetting)
		subtitle := fmt.Sprintf("%dch %d-bit @ %s, EP 0x%02x, %d bytes/packet",
			ep.Channels, ep.BitResolution, formatRate(ep.SampleRate),
			ep.EndpointAddress, ep.MaxPacketSize)

		endpoints.AddItem(title, subtitle, 0, func() {
			controlRequests.Clear()
			addControlOptions(controlRequests, dev, caps, caps.Endpoints[i])
			app.SetFocus(controlRequests)
		})
	}

	leftColumn := tview.NewFlex().SetDirection(tview.FlexRow)
	leftColumn.AddItem(endpoints, 0, 2, true)
	leftColumn.AddItem(rates, 0, 1, false)

	rightColumn := tview.NewFlex().SetDirection(tview.FlexRow)
	rightColumn.AddItem(controlRequests, 0, 1, false)

	flex := tview.NewFlex().
		AddItem(leftColumn, 0, 1, true).
		AddItem(rightColumn, 0, 1, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(flex, 0, 1, true).
		AddItem(logText, 8, 0, false)

	if err := app.SetRoot(root, true).Run(); err != nil {
		panic(err)
	}
}

func addControlOptions(controlRequests *tview.List, dev *uac.UACDevice, caps *uac.Capabilities, ep uac.Endpoint) {
	if caps.UACVersion == 2 && caps.ClockID >= 0 {
		clock := transfers.NewClockSource(dev.Handle(), uint8(caps.ClockID))

		controlRequests.AddItem("Get Clock Frequency", "", 0, func() {
			freq, err := clock.Frequency()
			if err != nil {
				log.Printf("Failed to get clock frequency: %v", err)
			} else {
				log.Printf("Clock %d frequency: %s", clock.ClockID(), formatRate(freq))
			}
		})

		controlRequests.AddItem("Check Clock Valid", "", 0, func() {
			valid, err := clock.Valid()
			if err != nil {
				log.Printf("Failed to check clock validity: %v", err)
			} else {
				log.Printf("Clock %d valid: %v", clock.ClockID(), valid)
			}
		})

		for _, rate := range caps.SampleRates {
			controlRequests.AddItem("Set Clock to "+formatRate(rate), "", 0, func() {
				if err := clock.SetFrequency(rate); err != nil {
					log.Printf("Failed to set clock frequency: %v", err)
				} else {
					log.Printf("Clock %d set to %s", clock.ClockID(), formatRate(rate))
				}
			})
		}
		return
	}

	control := transfers.NewEndpointControl(dev.Handle(), ep.EndpointAddress)

	controlRequests.AddItem("Get Sampling Frequency", "", 0, func() {
		freq, err := control.SamplingFrequency()
		if err != nil {
			log.Printf("Failed to get sampling frequency: %v", err)
		} else {
			log.Printf("Endpoint 0x%02x sampling at %s", ep.EndpointAddress, formatRate(freq))
		}
	})

	if !ep.SampleRateSettable {
		return
	}
	for _, rate := range caps.SampleRates {
		controlRequests.AddItem("Set Endpoint to "+formatRate(rate), "", 0, func() {
			if err := control.SetSamplingFrequency(rate); err != nil {
				log.Printf("Failed to set sampling frequency: %v", err)
			} else {
				log.Printf("Endpoint 0x%02x set to %s", ep.EndpointAddress, formatRate(rate))
			}
		})
	}
}

func formatRate(rate uint32) string {
	if rate >= 1000 {
		s := fmt.Sprintf("%.1f", float32(rate)/1000.0)
		return strings.TrimSuffix(s, ".0") + "kHz"
	}
	return fmt.Sprintf("%dHz", rate)
}
