// Package prompt runs the interactive note/MIDI conversion dialogue.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"midinote/debug"
	"midinote/note"
)

const (
	NotePrompt = "Enter a note: "
	MidiPrompt = "Enter a MIDI value: "
)

// RangeError reports a MIDI value that parsed but is above note.MaxMidi
type RangeError struct {
	Value uint8
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("MIDI values must be between 0-%d, got %d", note.MaxMidi, e.Value)
}

// Run asks for a note name and prints its MIDI number, then asks for a MIDI
// number and prints its note name. Any failure is returned; a MIDI value
// above 127 is returned as *RangeError.
func Run(in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)

	fmt.Fprintln(out, NotePrompt)
	line, err := readLine(r)
	if err != nil {
		return fmt.Errorf("read note: %w", err)
	}

	n, err := note.Parse(line)
	if err != nil {
		debug.Log("prompt", "parse note %q: %v", line, err)
		return fmt.Errorf("parse note: %w", err)
	}
	debug.Log("prompt", "note %s = %d", n, n.Midi())
	fmt.Fprintf(out, "%s = %d\n", n, n.Midi())

	fmt.Fprintln(out, MidiPrompt)
	line, err = readLine(r)
	if err != nil {
		return fmt.Errorf("read MIDI value: %w", err)
	}

	m, err := ParseMidi(line)
	if err != nil {
		debug.Log("prompt", "parse midi %q: %v", line, err)
		return err
	}
	if m > note.MaxMidi {
		return &RangeError{Value: m}
	}

	debug.Log("prompt", "midi %d = %s", m, note.FromMidi(m))
	fmt.Fprintf(out, "MIDI %d = %s\n", m, note.FromMidi(m))
	return nil
}

// ParseMidi parses an unsigned 8-bit decimal such as "61" or "+61". Values
// 128-255 parse successfully; range checking is left to the caller.
func ParseMidi(s string) (uint8, error) {
	v, err := note.ParseUint8(s)
	if err != nil {
		return 0, fmt.Errorf("parse MIDI value %q: %w", s, err)
	}
	return v, nil
}

// readLine returns one trimmed line. EOF before any input yields an empty
// line so it fails later as empty input rather than as a read error.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
