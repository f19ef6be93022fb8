package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"midinote/note"
)

const gpl = `GIMP Palette
Name: Two Tone
Columns: 2
# comment
  0   0   0	black
255 255 255	white
not a color
`

func TestParseGPL(t *testing.T) {
	p, err := ParseGPL(strings.NewReader(gpl))
	require.NoError(t, err)
	assert.Equal(t, "Two Tone", p.Name)
	assert.Equal(t, []RGB{{0, 0, 0}, {255, 255, 255}}, p.Colors)
}

func TestParseGPLEmpty(t *testing.T) {
	_, err := ParseGPL(strings.NewReader("GIMP Palette\nName: empty\n"))
	assert.Error(t, err)
}

func TestLoadGPL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.gpl")
	require.NoError(t, os.WriteFile(path, []byte(gpl), 0644))

	p, err := LoadGPL(path)
	require.NoError(t, err)
	assert.Len(t, p.Colors, 2)

	_, err = LoadGPL(filepath.Join(t.TempDir(), "missing.gpl"))
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	p := &Palette{Colors: []RGB{{0, 0, 0}, {200, 100, 50}}}
	assert.Equal(t, RGB{0, 0, 0}, p.Lookup(-1))
	assert.Equal(t, RGB{200, 100, 50}, p.Lookup(2))
	assert.Equal(t, RGB{100, 50, 25}, p.Lookup(0.5))
}

func TestPitchColors(t *testing.T) {
	th := New(nil)
	assert.Equal(t, "plasma", th.Palette.Name)

	first := th.PitchRGB(note.C)
	last := th.PitchRGB(note.B)
	assert.Equal(t, th.Palette.Colors[0], first)
	assert.Equal(t, th.Palette.Colors[len(th.Palette.Colors)-1], last)
	assert.Equal(t, lipgloss.Color("#0d0887"), th.PitchColor(note.C))
	assert.Equal(t, lipgloss.Color("#f0f921"), th.Success())
}
