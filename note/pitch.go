package note

import (
	"errors"
	"fmt"
)

// PitchClass is one of the 12 chromatic semitones within an octave
type PitchClass uint8

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// NumPitchClasses is the number of semitones in an octave
const NumPitchClasses = 12

var (
	ErrInvalidIndex = errors.New("invalid chromatic index")
	ErrInvalidName  = errors.New("invalid pitch class name")
)

// Sharp spelling only, indexed by PitchClass
var pitchNames = [NumPitchClasses]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var pitchByName = func() map[string]PitchClass {
	m := make(map[string]PitchClass, NumPitchClasses)
	for i, name := range pitchNames {
		m[name] = PitchClass(i)
	}
	return m
}()

// PitchClasses returns all pitch classes in chromatic order starting at C
func PitchClasses() []PitchClass {
	pcs := make([]PitchClass, NumPitchClasses)
	for i := range pcs {
		pcs[i] = PitchClass(i)
	}
	return pcs
}

// PitchClassFromIndex maps 0-11 to a pitch class
func PitchClassFromIndex(i int) (PitchClass, error) {
	if i < 0 || i >= NumPitchClasses {
		return 0, fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	return PitchClass(i), nil
}

// ParsePitchClass looks up a canonical sharp-spelled name ("C", "F#", ...).
// Matching is exact and case-sensitive; flat spellings are rejected.
func ParsePitchClass(s string) (PitchClass, error) {
	pc, ok := pitchByName[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidName, s)
	}
	return pc, nil
}

// Index returns the chromatic index 0-11
func (p PitchClass) Index() int {
	return int(p)
}

func (p PitchClass) Valid() bool {
	return p < NumPitchClasses
}

// Sharp reports whether the pitch class is a black key
func (p PitchClass) Sharp() bool {
	switch p {
	case CSharp, DSharp, FSharp, GSharp, ASharp:
		return true
	}
	return false
}

func (p PitchClass) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PitchClass(%d)", uint8(p))
	}
	return pitchNames[p]
}
