package dialog

// Step is the symbolic conversation step a user is currently in.
type Step int

const (
	StepIdle Step = iota
	StepAwaitingName
	StepAwaitingLanguage
	StepAwaitingLevel
	StepAwaitingReminderHour
	StepAwaitingTranslation
)

func (s Step) String() string {
	switch s {
	case StepIdle:
		return "idle"
	case StepAwaitingName:
		return "awaiting_name"
	case StepAwaitingLanguage:
		return "awaiting_language"
	case StepAwaitingLevel:
		return "awaiting_level"
	case StepAwaitingReminderHour:
		return "awaiting_reminder_hour"
	case StepAwaitingTranslation:
		return "awaiting_translation"
	default:
		return "unknown"
	}
}

// State is one user's conversation position. PendingTerm is set only
// while a translation quiz is in flight; it is transient and never
// persisted.
type State struct {
	Step        Step
	PendingTerm string
}

// Idle is the initial and resting state.
var Idle = State{Step: StepIdle}
