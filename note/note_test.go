package note

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMidiRoundTrip(t *testing.T) {
	for m := 0; m <= MaxMidi; m++ {
		n := FromMidi(uint8(m))
		assert.Equal(t, m, n.Midi(), "note %s", n)
		assert.True(t, n.InRange())
	}
}

func TestNoteRoundTrip(t *testing.T) {
	for _, pc := range PitchClasses() {
		for octave := -1; octave <= 9; octave++ {
			n := New(pc, octave)
			m := n.Midi()
			if m < 0 || m > MaxMidi {
				assert.False(t, n.InRange(), "note %s", n)
				continue
			}
			assert.Equal(t, n, FromMidi(uint8(m)))
		}
	}
}

func TestFromMidiBoundaries(t *testing.T) {
	assert.Equal(t, Note{PitchClass: C, Octave: -1}, FromMidi(0))
	assert.Equal(t, Note{PitchClass: G, Octave: 9}, FromMidi(127))
	assert.Equal(t, Note{PitchClass: C, Octave: 4}, FromMidi(60))
	assert.Equal(t, Note{PitchClass: A, Octave: 4}, FromMidi(69))

	// not validated here
	assert.Equal(t, Note{PitchClass: GSharp, Octave: 9}, FromMidi(128))
	assert.Equal(t, Note{PitchClass: DSharp, Octave: 20}, FromMidi(255))
}

func TestNoteString(t *testing.T) {
	for _, tc := range []struct {
		note     Note
		expected string
	}{
		{note: New(CSharp, 4), expected: "C#4"},
		{note: New(C, -1), expected: "C-1"},
		{note: New(G, 9), expected: "G9"},
		{note: New(ASharp, 10), expected: "A#10"},
	} {
		assert.Equal(t, tc.expected, tc.note.String())
	}
}

func TestFormatParseInverse(t *testing.T) {
	for _, pc := range PitchClasses() {
		for octave := 0; octave <= 255; octave++ {
			n := New(pc, octave)
			parsed, err := Parse(n.String())
			require.NoError(t, err)
			assert.Equal(t, n, parsed)
		}
	}
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected Note
	}{
		{input: "C4", expected: New(C, 4)},
		{input: "C#4", expected: New(CSharp, 4)},
		{input: "B0", expected: New(B, 0)},
		{input: "G#9", expected: New(GSharp, 9)},
		{input: "A007", expected: New(A, 7)},
		{input: "F255", expected: New(F, 255)},
		{input: "C+4", expected: New(C, 4)},
		{input: "A#+10", expected: New(ASharp, 10)},
	} {
		n, err := Parse(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expected, n, tc.input)
	}
	assert.Equal(t, 61, MustParse("C#4").Midi())
}

func TestParseFailures(t *testing.T) {
	for _, tc := range []struct {
		input string
		kind  error
		sub   string
	}{
		{input: "", kind: ErrEmptyInput},
		{input: "C", kind: ErrMissingOctave},
		{input: "C#", kind: ErrMissingOctave},
		{input: "Db", kind: ErrMissingOctave},
		{input: "H4", kind: ErrInvalidNoteName, sub: "H"},
		{input: "c4", kind: ErrInvalidNoteName, sub: "c"},
		{input: "Db4", kind: ErrInvalidNoteName, sub: "Db"},
		{input: "Bb3", kind: ErrInvalidNoteName, sub: "Bb"},
		{input: "C4x", kind: ErrInvalidOctave, sub: "4x"},
		{input: "C-1", kind: ErrInvalidOctave, sub: "-1"},
		{input: "C256", kind: ErrInvalidOctave, sub: "256"},
		{input: "C 4", kind: ErrInvalidOctave, sub: " 4"},
		{input: "C+", kind: ErrInvalidOctave, sub: "+"},
		{input: "C++4", kind: ErrInvalidOctave, sub: "++4"},
		{input: "C+-4", kind: ErrInvalidOctave, sub: "+-4"},
		// octave is checked before the name
		{input: "Hx", kind: ErrInvalidOctave, sub: "x"},
	} {
		_, err := Parse(tc.input)
		require.Error(t, err, tc.input)
		assert.ErrorIs(t, err, tc.kind, tc.input)

		var perr *ParseError
		require.True(t, errors.As(err, &perr), tc.input)
		assert.Equal(t, tc.sub, perr.Input, tc.input)
	}
}

func TestParseUint8(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected uint8
	}{
		{input: "0", expected: 0},
		{input: "+0", expected: 0},
		{input: "61", expected: 61},
		{input: "+61", expected: 61},
		{input: "+255", expected: 255},
		{input: "007", expected: 7},
	} {
		v, err := ParseUint8(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expected, v, tc.input)
	}

	for _, s := range []string{"", "+", "++1", "-1", "+-1", " 1", "1x"} {
		_, err := ParseUint8(s)
		assert.ErrorIs(t, err, strconv.ErrSyntax, "input %q", s)
	}
	for _, s := range []string{"256", "+256"} {
		_, err := ParseUint8(s)
		assert.ErrorIs(t, err, strconv.ErrRange, "input %q", s)
	}
}

func TestParseErrorMessages(t *testing.T) {
	_, err := Parse("H4")
	assert.EqualError(t, err, "invalid note name: H")
	_, err = Parse("C4x")
	assert.EqualError(t, err, "invalid octave: 4x")
	_, err = Parse("")
	assert.EqualError(t, err, "empty input")
	_, err = Parse("C")
	assert.EqualError(t, err, "no octave specified")
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("H4") })
}

func TestInRange(t *testing.T) {
	assert.True(t, New(C, -1).InRange())
	assert.True(t, New(G, 9).InRange())
	assert.False(t, New(GSharp, 9).InRange())
	assert.False(t, New(B, -2).InRange())
}
