package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runMain(input string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(strings.NewReader(input), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunSuccess(t *testing.T) {
	code, out, errOut := runMain("C#4\n61\n")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "C#4 = 61\n")
	assert.Contains(t, out, "MIDI 61 = C#4\n")
	assert.Empty(t, errOut)
}

func TestRunMidiOutOfRange(t *testing.T) {
	code, out, errOut := runMain("C#4\n128\n")
	assert.NotEqual(t, exitOK, code)
	assert.Equal(t, exitRangeError, code)
	assert.Contains(t, out, "Error: MIDI values must be between 0-127, got 128")
	assert.Empty(t, errOut)
}

func TestRunParseFailureAborts(t *testing.T) {
	for _, input := range []string{"H4\n", "\n", "C4\nxyz\n", "C4\n300\n"} {
		code, out, errOut := runMain(input)
		assert.Equal(t, exitAbort, code, "input %q", input)
		assert.Contains(t, errOut, "fatal: ", "input %q", input)
		assert.NotContains(t, out, "Error:", "input %q", input)
	}
}
