package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"midinote/note"
	"midinote/theme"
)

// RenderKey renders a single key glyph in the given color
func RenderKey(symbol rune, color [3]uint8) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(rgbToHex(color)))
	return style.Render(string(symbol))
}

// RenderKeyboard renders one octave, C to B, with the pitch class of lit
// highlighted. Pass nil to render no highlight.
//
//	C  C# D  D# E  F  F# G  G# A  A# B
//	□  ■  □  ●  □  □  ■  □  ■  □  ■  □
func RenderKeyboard(th *theme.Theme, lit *note.PitchClass) string {
	var names, keys strings.Builder
	for i, pc := range note.PitchClasses() {
		if i > 0 {
			names.WriteString(" ")
			keys.WriteString(" ")
		}
		names.WriteString(fmt.Sprintf("%-2s", pc))

		symbol := th.Symbols.WhiteKey
		color := theme.RGB{200, 200, 200}
		if pc.Sharp() {
			symbol = th.Symbols.BlackKey
			color = theme.RGB{90, 90, 90}
		}
		if lit != nil && *lit == pc {
			symbol = th.Symbols.LitKey
			color = th.PitchRGB(pc)
		}
		keys.WriteString(RenderKey(symbol, color))
		keys.WriteString(" ")
	}
	return names.String() + "\n" + keys.String()
}

// RenderConversion formats a note and its MIDI number side by side, colored
// by pitch class
func RenderConversion(th *theme.Theme, n note.Note) string {
	style := lipgloss.NewStyle().Foreground(th.PitchColor(n.PitchClass)).Bold(true)
	return fmt.Sprintf("%s = %d", style.Render(n.String()), n.Midi())
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}

func rgbToHex(c [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
