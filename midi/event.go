package midi

import (
	"fmt"

	"midinote/note"
)

// NoteEvent is sent when a note is played on a keyboard
type NoteEvent struct {
	Port     string
	Note     uint8
	Velocity uint8
	Channel  uint8
}

// Pitch converts the note number, which gomidi guarantees is 0-127
func (e NoteEvent) Pitch() note.Note {
	return note.FromMidi(e.Note)
}

func (e NoteEvent) String() string {
	return fmt.Sprintf("MIDI %d = %s", e.Note, e.Pitch())
}
