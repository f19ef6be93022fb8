// Package note converts between note names like "C#4" and MIDI note numbers.
//
// Octaves follow the convention where middle C (MIDI 60) is C4, so the MIDI
// range 0-127 spans C-1 to G9.
package note

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxMidi is the highest valid MIDI note number
const MaxMidi = 127

// Note is a pitch class in a specific octave
type Note struct {
	PitchClass PitchClass
	Octave     int
}

// New creates a note
func New(pc PitchClass, octave int) Note {
	return Note{PitchClass: pc, Octave: octave}
}

// FromMidi converts a MIDI note number. Values above MaxMidi are not
// rejected here; callers that care must check first.
func FromMidi(m uint8) Note {
	return Note{
		PitchClass: PitchClass(m % NumPitchClasses),
		Octave:     int(m)/NumPitchClasses - 1,
	}
}

// Midi returns the MIDI note number. No range check is done.
func (n Note) Midi() int {
	return n.PitchClass.Index() + (n.Octave+1)*NumPitchClasses
}

// InRange reports whether the note has a valid MIDI number (0-127)
func (n Note) InRange() bool {
	m := n.Midi()
	return n.PitchClass.Valid() && m >= 0 && m <= MaxMidi
}

// String formats the note as name followed by octave, e.g. "C#4"
func (n Note) String() string {
	return n.PitchClass.String() + strconv.Itoa(n.Octave)
}

// ParseErrorKind identifies which step of Parse failed
type ParseErrorKind int

const (
	EmptyInput ParseErrorKind = iota
	MissingOctave
	InvalidOctave
	InvalidNoteName
)

var (
	ErrEmptyInput      = errors.New("empty input")
	ErrMissingOctave   = errors.New("no octave specified")
	ErrInvalidOctave   = errors.New("invalid octave")
	ErrInvalidNoteName = errors.New("invalid note name")
)

var kindErrors = map[ParseErrorKind]error{
	EmptyInput:      ErrEmptyInput,
	MissingOctave:   ErrMissingOctave,
	InvalidOctave:   ErrInvalidOctave,
	InvalidNoteName: ErrInvalidNoteName,
}

// ParseError is returned by Parse. Input holds the offending substring for
// InvalidOctave and InvalidNoteName.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidOctave, InvalidNoteName:
		return fmt.Sprintf("%v: %s", kindErrors[e.Kind], e.Input)
	}
	return kindErrors[e.Kind].Error()
}

// Unwrap allows errors.Is(err, ErrInvalidOctave) and friends
func (e *ParseError) Unwrap() error {
	return kindErrors[e.Kind]
}

// Parse reads a note like "C4" or "F#10".
//
// A '#' or 'b' in second position makes the name two bytes long, but only
// sharp names are accepted, so "Db4" fails with InvalidNoteName. The octave
// must be an unsigned decimal in 0-255.
func Parse(s string) (Note, error) {
	if len(s) == 0 {
		return Note{}, &ParseError{Kind: EmptyInput}
	}

	nameEnd := 1
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		nameEnd = 2
	}
	if nameEnd >= len(s) {
		return Note{}, &ParseError{Kind: MissingOctave}
	}

	name, octaveStr := s[:nameEnd], s[nameEnd:]

	octave, err := ParseUint8(octaveStr)
	if err != nil {
		return Note{}, &ParseError{Kind: InvalidOctave, Input: octaveStr}
	}

	pc, err := ParsePitchClass(name)
	if err != nil {
		return Note{}, &ParseError{Kind: InvalidNoteName, Input: name}
	}

	return Note{PitchClass: pc, Octave: int(octave)}, nil
}

// ParseUint8 parses an unsigned decimal in 0-255. One leading '+' is
// allowed when digits follow it.
func ParseUint8(s string) (uint8, error) {
	digits := s
	if len(s) > 1 && s[0] == '+' {
		digits = s[1:]
	}
	v, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return 0, &strconv.NumError{Func: "ParseUint8", Num: s, Err: errors.Unwrap(err)}
	}
	return uint8(v), nil
}

// MustParse is like Parse but panics on error
func MustParse(s string) Note {
	n, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse note %q: %v", s, err))
	}
	return n
}
