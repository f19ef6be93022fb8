package midi

import (
	"context"
	"sort"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"midinote/debug"
)

// DeviceEvent is emitted when controllers connect/disconnect
type DeviceEvent struct {
	Type       DeviceEventType
	Controller Controller
	ID         string
}

type DeviceEventType int

const (
	DeviceConnected DeviceEventType = iota
	DeviceDisconnected
)

func (t DeviceEventType) String() string {
	if t == DeviceConnected {
		return "connected"
	}
	return "disconnected"
}

// DeviceManager handles hot-plug detection of MIDI keyboards
type DeviceManager struct {
	controllers map[string]Controller
	mu          sync.RWMutex
	events      chan DeviceEvent
	pollRate    time.Duration
	match       func(portName string) bool
}

// NewDeviceManager creates a device manager listening to input ports
// accepted by match. A nil match accepts every port.
func NewDeviceManager(match func(portName string) bool) *DeviceManager {
	if match == nil {
		match = func(string) bool { return true }
	}
	return &DeviceManager{
		controllers: make(map[string]Controller),
		events:      make(chan DeviceEvent, 16),
		pollRate:    time.Second,
		match:       match,
	}
}

// Events returns a channel of device connect/disconnect events
func (dm *DeviceManager) Events() <-chan DeviceEvent {
	return dm.events
}

// Controllers returns a snapshot of connected controllers
func (dm *DeviceManager) Controllers() map[string]Controller {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	snapshot := make(map[string]Controller, len(dm.controllers))
	for k, v := range dm.controllers {
		snapshot[k] = v
	}
	return snapshot
}

// Run starts the polling loop (blocking - run in goroutine)
func (dm *DeviceManager) Run(ctx context.Context) {
	ticker := time.NewTicker(dm.pollRate)
	defer ticker.Stop()

	// Initial scan
	dm.scan()

	for {
		select {
		case <-ctx.Done():
			dm.closeAll()
			close(dm.events)
			return
		case <-ticker.C:
			dm.scan()
		}
	}
}

// ListInPorts returns the input ports, or false if the driver hangs
func ListInPorts(timeout time.Duration) ([]drivers.In, bool) {
	ch := make(chan []drivers.In, 1)
	go func() {
		ch <- gomidi.GetInPorts()
	}()

	select {
	case ports := <-ch:
		return ports, true
	case <-time.After(timeout):
		// CoreMIDI is hung
		// User needs to run: sudo killall coreaudiod midiserver
		return nil, false
	}
}

func (dm *DeviceManager) scan() {
	inPorts, ok := ListInPorts(3 * time.Second)
	if !ok {
		debug.Log("midi", "port scan timed out")
		return
	}

	byName := make(map[string]drivers.In)
	var seen []string
	for _, p := range inPorts {
		name := p.String()
		if !dm.match(name) {
			continue
		}
		byName[name] = p
		seen = append(seen, name)
	}

	dm.mu.RLock()
	added, removed := diffPorts(dm.controllers, seen)
	dm.mu.RUnlock()

	for _, id := range added {
		kb, err := NewKeyboardController(id, byName[id])
		if err != nil {
			debug.Log("midi", "open %s: %v", id, err)
			continue
		}

		dm.mu.Lock()
		dm.controllers[id] = kb
		dm.mu.Unlock()

		debug.Log("midi", "connected %s", id)
		dm.events <- DeviceEvent{
			Type:       DeviceConnected,
			Controller: kb,
			ID:         id,
		}
	}

	for _, id := range removed {
		dm.mu.Lock()
		c := dm.controllers[id]
		delete(dm.controllers, id)
		dm.mu.Unlock()

		c.Close()
		debug.Log("midi", "disconnected %s", id)
		dm.events <- DeviceEvent{
			Type: DeviceDisconnected,
			ID:   id,
		}
	}
}

// diffPorts compares known controllers with the ports seen in a scan.
// Both results are sorted.
func diffPorts(known map[string]Controller, seen []string) (added, removed []string) {
	seenIDs := make(map[string]bool, len(seen))
	for _, id := range seen {
		if seenIDs[id] {
			continue
		}
		seenIDs[id] = true
		if _, exists := known[id]; !exists {
			added = append(added, id)
		}
	}
	for id := range known {
		if !seenIDs[id] {
			removed = append(removed, id)
		}
	}
	sort.Strings(added)
	sort.Strings(removed)
	return added, removed
}

func (dm *DeviceManager) closeAll() {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	for _, c := range dm.controllers {
		c.Close()
	}
	dm.controllers = make(map[string]Controller)
}
