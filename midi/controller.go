package midi

// ControllerType identifies the kind of controller
type ControllerType int

const (
	ControllerKeyboard ControllerType = iota
)

// Controller is the interface for MIDI input devices
type Controller interface {
	ID() string
	Type() ControllerType

	// Note-on events from the device
	NoteEvents() <-chan NoteEvent

	// Lifecycle
	Close() error
}
