package transport

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/osokin/lingvo/internal/dialog"
)

var (
	youStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	tutorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	optionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Terminal is a single-user chat transport rendered in the terminal.
// Inbound lines become dialog events; replies and reminders are shown
// in a scrolling transcript, with keyboard options as numbered buttons.
type Terminal struct {
	userID  string
	events  chan dialog.Event
	program *tea.Program

	closeOnce sync.Once
}

// replyMsg carries an outbound reply into the Bubble Tea loop.
type replyMsg struct {
	reply dialog.Reply
}

// NewTerminal creates a terminal transport bound to one local user id.
func NewTerminal(userID string) *Terminal {
	t := &Terminal{
		userID: userID,
		events: make(chan dialog.Event, 16),
	}
	t.program = tea.NewProgram(newChatModel(userID, t.events))
	return t
}

// Run drives the terminal UI until the user quits. It blocks; run the
// event loop consuming Events in another goroutine.
func (t *Terminal) Run() error {
	defer t.closeEvents()
	if _, err := t.program.Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return nil
}

// Events yields classified inbound events.
func (t *Terminal) Events() <-chan dialog.Event {
	return t.events
}

// Send displays a reply in the transcript. The user id is ignored:
// this transport carries exactly one user.
func (t *Terminal) Send(_ context.Context, _ string, reply dialog.Reply) error {
	t.program.Send(replyMsg{reply: reply})
	return nil
}

// Notify implements the reminder notifier on top of Send.
func (t *Terminal) Notify(ctx context.Context, userID, text string) error {
	return t.Send(ctx, userID, dialog.Reply{Text: text})
}

// Close stops the UI.
func (t *Terminal) Close() error {
	t.program.Quit()
	return nil
}

func (t *Terminal) closeEvents() {
	t.closeOnce.Do(func() { close(t.events) })
}

// classify turns one submitted input line into a dialog event. A bare
// number selecting one of the displayed options becomes a button press
// with that option's label; a leading slash marks a command; anything
// else is a plain message.
func classify(userID, input string, options []string) (dialog.Event, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return dialog.Event{}, false
	}

	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(options) {
		return dialog.Event{UserID: userID, Kind: dialog.KindButton, Text: options[n-1]}, true
	}
	if strings.HasPrefix(s, "/") {
		return dialog.Event{UserID: userID, Kind: dialog.KindCommand, Text: s}, true
	}
	return dialog.Event{UserID: userID, Kind: dialog.KindMessage, Text: s}, true
}

// chatModel is the Bubble Tea model behind the terminal transport.
type chatModel struct {
	userID  string
	events  chan<- dialog.Event
	input   textinput.Model
	lines   []string
	options []string
	width   int
	height  int
}

func newChatModel(userID string, events chan<- dialog.Event) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Type a message, or /help"
	ti.Focus()
	return chatModel{
		userID: userID,
		events: events,
		input:  ti,
		lines:  []string{hintStyle.Render("Connected. Send /start to begin.")},
	}
}

func (m chatModel) Init() tea.Cmd {
	return m.input.Focus()
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case replyMsg:
		for _, line := range strings.Split(msg.reply.Text, "\n") {
			m.lines = append(m.lines, tutorStyle.Render("tutor ")+line)
		}
		m.options = msg.reply.Options
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit
		case "enter":
			ev, ok := classify(m.userID, m.input.Value(), m.options)
			if !ok {
				return m, nil
			}
			m.lines = append(m.lines, youStyle.Render("you   ")+ev.Text)
			if ev.Kind == dialog.KindButton {
				m.options = nil
			}
			m.input.Reset()
			m.events <- ev
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	footer := m.input.View()
	optionBar := renderOptions(m.options)

	reserved := 1 // input line
	if optionBar != "" {
		reserved++
	}
	transcript := renderTranscript(m.lines, m.height-reserved)

	parts := []string{transcript}
	if optionBar != "" {
		parts = append(parts, optionBar)
	}
	parts = append(parts, footer)

	v.SetContent(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return v
}

// renderTranscript shows the newest lines that fit.
func renderTranscript(lines []string, height int) string {
	if height < 1 {
		height = 1
	}
	start := 0
	if len(lines) > height {
		start = len(lines) - height
	}
	visible := lines[start:]

	pad := make([]string, 0, height)
	for i := len(visible); i < height; i++ {
		pad = append(pad, "")
	}
	return strings.Join(append(pad, visible...), "\n")
}

// renderOptions draws keyboard options as numbered buttons.
func renderOptions(options []string) string {
	if len(options) == 0 {
		return ""
	}
	parts := make([]string, len(options))
	for i, opt := range options {
		parts[i] = optionStyle.Render(fmt.Sprintf("[%d] %s", i+1, opt))
	}
	return strings.Join(parts, "  ")
}
