package tui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"midinote/debug"
	"midinote/midi"
	"midinote/note"
	"midinote/prompt"
	"midinote/theme"
	"midinote/widgets"
)

var keyHelp = []widgets.KeySection{
	{Keys: []widgets.KeyBinding{
		{Key: "C#4 / 61", Desc: "type a note name or MIDI number"},
		{Key: "enter", Desc: "add to history"},
		{Key: "esc", Desc: "clear"},
		{Key: "q, ctrl+c", Desc: "quit (q only when empty)"},
	}},
}

type Model struct {
	DeviceMgr    *midi.DeviceManager
	Theme        *theme.Theme
	HistoryLimit int

	input    string
	history  []string
	devices  map[string]bool
	quitting bool
}

type DeviceEventMsg midi.DeviceEvent

// NoteMsg carries a played note and the controller to keep listening on
type NoteMsg struct {
	Event midi.NoteEvent
	From  midi.Controller
}

// NewModel creates the converter. deviceMgr may be nil to run without MIDI.
func NewModel(deviceMgr *midi.DeviceManager, th *theme.Theme, historyLimit int, initial string) Model {
	return Model{
		DeviceMgr:    deviceMgr,
		Theme:        th,
		HistoryLimit: historyLimit,
		input:        initial,
		devices:      make(map[string]bool),
	}
}

func ListenForDevices(deviceMgr *midi.DeviceManager) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-deviceMgr.Events()
		if !ok {
			return nil
		}
		return DeviceEventMsg(event)
	}
}

func ListenForNotes(c midi.Controller) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-c.NoteEvents()
		if !ok {
			return nil
		}
		return NoteMsg{Event: ev, From: c}
	}
}

// Convert interprets s as a MIDI number if it starts with a digit or '+',
// otherwise as a note name
func Convert(s string) (note.Note, error) {
	s = strings.TrimSpace(s)
	if s != "" && (s[0] == '+' || s[0] >= '0' && s[0] <= '9') {
		m, err := prompt.ParseMidi(s)
		if err != nil {
			return note.Note{}, err
		}
		if m > note.MaxMidi {
			return note.Note{}, &prompt.RangeError{Value: m}
		}
		return note.FromMidi(m), nil
	}
	return note.Parse(s)
}

// Input returns the current edit buffer
func (m Model) Input() string {
	return m.input
}

// History returns committed conversions, newest first
func (m Model) History() []string {
	return m.history
}

func (m Model) Init() tea.Cmd {
	if m.DeviceMgr == nil {
		return nil
	}
	return ListenForDevices(m.DeviceMgr)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			if n, err := Convert(m.input); err == nil {
				m = m.remember(fmt.Sprintf("%s = %d", n, n.Midi()))
			}

		case tea.KeyBackspace:
			if len(m.input) > 0 {
				r := []rune(m.input)
				m.input = string(r[:len(r)-1])
			}

		case tea.KeyEsc:
			m.input = ""

		case tea.KeyRunes:
			if msg.String() == "q" && m.input == "" {
				m.quitting = true
				return m, tea.Quit
			}
			m.input += string(msg.Runes)
		}

	case NoteMsg:
		debug.Log("tui", "%s from %s", msg.Event, msg.Event.Port)
		m = m.remember(msg.Event.String())
		return m, ListenForNotes(msg.From)

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		debug.Log("tui", "device %s %s", event.ID, event.Type)
		devices := make(map[string]bool, len(m.devices)+1)
		for id := range m.devices {
			devices[id] = true
		}
		m.devices = devices

		if event.Type == midi.DeviceConnected {
			m.devices[event.ID] = true
			return m, tea.Batch(ListenForDevices(m.DeviceMgr), ListenForNotes(event.Controller))
		}
		delete(m.devices, event.ID)
		return m, ListenForDevices(m.DeviceMgr)
	}

	return m, nil
}

func (m Model) remember(entry string) Model {
	history := append([]string{entry}, m.history...)
	if m.HistoryLimit > 0 && len(history) > m.HistoryLimit {
		history = history[:m.HistoryLimit]
	}
	m.history = history
	return m
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Styles
	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	warnStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())
	inputStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())
	historyStyle := lipgloss.NewStyle().Foreground(m.Theme.Success())

	header := headerStyle.Render(fmt.Sprintf("midinote  %d device(s)", len(m.devices)))

	var result string
	var lit *note.PitchClass
	if m.input != "" {
		n, err := Convert(m.input)
		switch {
		case err == nil:
			result = widgets.RenderConversion(m.Theme, n)
			pc := n.PitchClass
			lit = &pc
		case errors.Is(err, note.ErrMissingOctave):
			result = dimStyle.Render("…octave?")
		default:
			result = warnStyle.Render(err.Error())
		}
	}

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(inputStyle.Render("> " + m.input + "_"))
	out.WriteString("  ")
	out.WriteString(result)
	out.WriteString("\n\n")
	out.WriteString(widgets.RenderKeyboard(m.Theme, lit))
	out.WriteString("\n\n")

	for _, h := range m.history {
		out.WriteString("  ")
		out.WriteString(historyStyle.Render(h))
		out.WriteString("\n")
	}

	if len(m.devices) > 0 {
		ids := make([]string, 0, len(m.devices))
		for id := range m.devices {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		out.WriteString("\n")
		out.WriteString(dimStyle.Render("listening: " + strings.Join(ids, ", ")))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(dimStyle.Render(widgets.RenderKeyHelp(keyHelp)))

	return out.String()
}
