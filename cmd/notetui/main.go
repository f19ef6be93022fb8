package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"midinote/config"
	"midinote/debug"
	"midinote/midi"
	"midinote/theme"
	"midinote/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cfg.ApplyEnv(os.Getenv)

	if on, err := debug.EnableFromEnv(os.Getenv); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	} else if on {
		defer debug.Disable()
	}

	// Load theme
	palette := theme.Plasma()
	if cfg.UI.PalettePath != "" {
		if palette, err = theme.LoadGPL(cfg.UI.PalettePath); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	th := theme.New(palette)

	// Create MIDI device manager (handles hot-plug)
	var deviceMgr *midi.DeviceManager
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Input.AutoConnect {
		deviceMgr = midi.NewDeviceManager(cfg.MatchPort)
		go deviceMgr.Run(ctx)
	}

	m := tui.NewModel(deviceMgr, th, cfg.UI.HistoryLimit, cfg.UI.LastInput)
	p := tea.NewProgram(m, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if fm, ok := final.(tui.Model); ok {
		cfg.UI.LastInput = fm.Input()
		if err := cfg.Save(); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}
