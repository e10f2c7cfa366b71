package dialog

import "strings"

// Kind classifies an inbound event.
type Kind int

const (
	KindCommand Kind = iota
	KindMessage
	KindButton
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindMessage:
		return "message"
	case KindButton:
		return "button"
	default:
		return "unknown"
	}
}

// Event is one inbound user interaction, already classified by the
// transport.
type Event struct {
	UserID string
	Kind   Kind
	Text   string
}

// Command returns the lowercase command name without the leading slash,
// or "" when the event is not a command.
func (e Event) Command() string {
	if e.Kind != KindCommand {
		return ""
	}
	name, _, _ := strings.Cut(strings.TrimPrefix(e.Text, "/"), " ")
	return strings.ToLower(name)
}
