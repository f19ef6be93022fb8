package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"midinote/midi"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "watch":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		watch(ctx)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list    - List all MIDI ports")
	fmt.Println("  watch   - Print the name of every note played")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	type result struct {
		ins  []drivers.In
		outs []drivers.Out
	}
	ch := make(chan result, 1)
	go func() {
		ins := gomidi.GetInPorts()
		outs := gomidi.GetOutPorts()
		ch <- result{ins: ins, outs: outs}
	}()

	select {
	case r := <-ch:
		for i, p := range r.ins {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
		fmt.Println("\n=== MIDI Output Ports ===")
		for i, p := range r.outs {
			fmt.Printf("  %d: %s\n", i, p.String())
		}
	case <-time.After(3 * time.Second):
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
	}
}

func watch(ctx context.Context) {
	fmt.Println("Watching all MIDI inputs. Ctrl+C to exit.")

	dm := midi.NewDeviceManager(nil)
	go dm.Run(ctx)

	for event := range dm.Events() {
		fmt.Printf("[%s] %s %s\n", time.Now().Format("15:04:05"), event.ID, event.Type)
		if event.Type != midi.DeviceConnected {
			continue
		}
		go func(c midi.Controller) {
			for ev := range c.NoteEvents() {
				fmt.Printf("  %-24s ch%-2d %s\n", c.ID(), ev.Channel+1, ev)
			}
		}(event.Controller)
	}
}
