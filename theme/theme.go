package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"midinote/note"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	// Keyboard strip
	WhiteKey rune // □ unlit white key
	BlackKey rune // ■ unlit black key
	LitKey   rune // ● highlighted key
}

func New(palette *Palette) *Theme {
	if palette == nil {
		palette = Plasma()
	}
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			WhiteKey: '□',
			BlackKey: '■',
			LitKey:   '●',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleMuted   = 0.2 // purple-magenta
	RoleFG      = 0.4 // pink-purple (readable)
	RoleAccent  = 0.5 // vivid magenta
	RoleWarning = 0.8 // orange
	RoleSuccess = 1.0 // bright yellow
)

// Style helpers

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Warning() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWarning))
}

func (t *Theme) Success() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleSuccess))
}

// PitchRGB spreads the 12 pitch classes evenly across the palette
func (t *Theme) PitchRGB(pc note.PitchClass) RGB {
	return t.Palette.Lookup(float64(pc.Index()) / float64(note.NumPitchClasses-1))
}

func (t *Theme) PitchColor(pc note.PitchClass) lipgloss.Color {
	return rgbToLipgloss(t.PitchRGB(pc))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
