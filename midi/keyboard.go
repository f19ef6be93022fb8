package midi

import (
	"fmt"
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"midinote/debug"
)

// KeyboardController handles a standard MIDI keyboard
type KeyboardController struct {
	id       string
	inPort   drivers.In
	stopFunc func()

	mu       sync.Mutex
	closed   bool
	noteChan chan NoteEvent
}

// NewKeyboardController creates a keyboard controller (input only)
func NewKeyboardController(id string, inPort drivers.In) (*KeyboardController, error) {
	kb := &KeyboardController{
		id:       id,
		inPort:   inPort,
		noteChan: make(chan NoteEvent, 32),
	}

	// Open input
	if inPort != nil {
		stop, err := gomidi.ListenTo(inPort, func(msg gomidi.Message, timestampms int32) {
			if ev, ok := decodeNoteOn(id, msg); ok {
				kb.deliver(ev)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		kb.stopFunc = stop
	}

	return kb, nil
}

// decodeNoteOn extracts a note-on with non-zero velocity. Note-on with
// velocity 0 is a note-off and is ignored.
func decodeNoteOn(port string, msg gomidi.Message) (NoteEvent, bool) {
	var channel, key, velocity uint8
	if msg.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
		return NoteEvent{Port: port, Note: key, Velocity: velocity, Channel: channel}, true
	}
	return NoteEvent{}, false
}

// deliver drops the event if the consumer is behind
func (kb *KeyboardController) deliver(ev NoteEvent) {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	if kb.closed {
		return
	}
	select {
	case kb.noteChan <- ev:
	default:
		debug.LogEvery(16, "midi", "dropped note from %s", kb.id)
	}
}

func (kb *KeyboardController) ID() string {
	return kb.id
}

func (kb *KeyboardController) Type() ControllerType {
	return ControllerKeyboard
}

func (kb *KeyboardController) NoteEvents() <-chan NoteEvent {
	return kb.noteChan
}

func (kb *KeyboardController) Close() error {
	if kb.stopFunc != nil {
		kb.stopFunc()
	}
	kb.mu.Lock()
	defer kb.mu.Unlock()
	if !kb.closed {
		kb.closed = true
		close(kb.noteChan)
	}
	return nil
}
