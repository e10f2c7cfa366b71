package store

import (
	"context"
	"time"
)

// UserProfile is the persisted record for one learner.
type UserProfile struct {
	ID             string
	Name           string
	Language       string // empty = not chosen
	Level          string // empty = not chosen
	ReminderHour   *int   // nil = reminders disabled
	LastRemindedOn string // ISO date of the last reminder, "" if never
	CreatedAt      time.Time
}

// HasLanguage reports whether the user has picked a target language.
func (p *UserProfile) HasLanguage() bool {
	return p.Language != ""
}

// VocabEntry is one introduced word with its remaining repeat counter.
type VocabEntry struct {
	ID          int
	UserID      string
	Language    string
	Term        string
	Translation string
	RepeatCount int
	CreatedAt   time.Time
}

// UserRepo manages user profiles.
type UserRepo interface {
	// Get returns the profile for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*UserProfile, error)

	// Create registers a new profile with the given display name.
	// Returns ErrExists if the id is already registered.
	Create(ctx context.Context, id, name string) error

	// SetLanguage sets the target language and clears the user's
	// vocabulary in the same transaction.
	SetLanguage(ctx context.Context, id, code string) error

	// SetLevel sets the proficiency tier.
	SetLevel(ctx context.Context, id, level string) error

	// SetReminder sets the daily reminder hour, or disables reminders
	// when hour is nil. Returns ErrInvalidHour for out-of-range values.
	SetReminder(ctx context.Context, id string, hour *int) error

	// DueReminders returns profiles whose reminder hour equals hour and
	// that have not yet been reminded on date (ISO date string).
	DueReminders(ctx context.Context, hour int, date string) ([]*UserProfile, error)

	// MarkReminded records that a reminder was sent to id on date.
	MarkReminded(ctx context.Context, id, date string) error
}

// VocabRepo manages per-user vocabulary with repeat counters.
type VocabRepo interface {
	// AddWord stores a newly introduced word.
	AddWord(ctx context.Context, userID, language, term, translation string, initialRepeat int) error

	// Find returns the entry for userID+term, or ErrNotFound. With
	// duplicates present, the oldest entry wins.
	Find(ctx context.Context, userID, term string) (*VocabEntry, error)

	// ResetRepeat sets the repeat counter of every entry for
	// userID+term back to n.
	ResetRepeat(ctx context.Context, userID, term string, n int) error

	// ListDue returns entries with repeat_count > 0, oldest first.
	ListDue(ctx context.Context, userID string) ([]*VocabEntry, error)

	// DecrementRepeat decreases the counter by 1, floored at 0.
	// A missing entry is a no-op.
	DecrementRepeat(ctx context.Context, userID, term string) error

	// ClearAll deletes every entry for the user.
	ClearAll(ctx context.Context, userID string) error

	// Count returns the total number of entries for the user.
	Count(ctx context.Context, userID string) (int, error)
}

// MessageEventData captures one inbound user event for the audit trail.
type MessageEventData struct {
	UserID    string
	Kind      string // command, message, or button
	Text      string
	State     string
	SessionID string // identifies the process run
}

// LLMRequestEventData captures the data for a single backend call event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted backend call event, as read back for inspection.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates backend usage per purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// MessageStats aggregates audit events per classification.
type MessageStats struct {
	Kind  string
	Count int
}

// AuditRepo is the write-only sink for inbound events plus backend call
// logging, with read access for the inspection commands.
type AuditRepo interface {
	// AppendMessage records an inbound user event.
	AppendMessage(ctx context.Context, data MessageEventData) error

	// AppendLLMRequest records a tutor backend call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMEvents returns the most recent backend call events,
	// newest first.
	RecentLLMEvents(ctx context.Context, limit int) ([]*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// MessageStatsByKind counts audit events per classification.
	MessageStatsByKind(ctx context.Context) ([]MessageStats, error)
}
