package dialog

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/osokin/lingvo/internal/llm"
	"github.com/osokin/lingvo/internal/store"
	"github.com/osokin/lingvo/internal/tutor"
)

// fakeVocab is an in-memory store.VocabRepo.
type fakeVocab struct {
	entries []*store.VocabEntry
	nextID  int
}

func (f *fakeVocab) AddWord(_ context.Context, userID, language, term, translation string, initialRepeat int) error {
	f.nextID++
	f.entries = append(f.entries, &store.VocabEntry{
		ID: f.nextID, UserID: userID, Language: language,
		Term: term, Translation: translation,
		RepeatCount: initialRepeat, CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeVocab) Find(_ context.Context, userID, term string) (*store.VocabEntry, error) {
	for _, e := range f.entries {
		if e.UserID == userID && e.Term == term {
			return e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeVocab) ResetRepeat(_ context.Context, userID, term string, n int) error {
	for _, e := range f.entries {
		if e.UserID == userID && e.Term == term {
			e.RepeatCount = n
		}
	}
	return nil
}

func (f *fakeVocab) ListDue(_ context.Context, userID string) ([]*store.VocabEntry, error) {
	var due []*store.VocabEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.RepeatCount > 0 {
			due = append(due, e)
		}
	}
	return due, nil
}

func (f *fakeVocab) DecrementRepeat(_ context.Context, userID, term string) error {
	for _, e := range f.entries {
		if e.UserID == userID && e.Term == term && e.RepeatCount > 0 {
			e.RepeatCount--
		}
	}
	return nil
}

func (f *fakeVocab) ClearAll(_ context.Context, userID string) error {
	var kept []*store.VocabEntry
	for _, e := range f.entries {
		if e.UserID != userID {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

func (f *fakeVocab) Count(_ context.Context, userID string) (int, error) {
	n := 0
	for _, e := range f.entries {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

// fakeUsers is an in-memory store.UserRepo mirroring the language
// cascade onto the vocab fake.
type fakeUsers struct {
	profiles map[string]*store.UserProfile
	vocab    *fakeVocab
	creates  int
}

func newFakeUsers(vocab *fakeVocab) *fakeUsers {
	return &fakeUsers{profiles: make(map[string]*store.UserProfile), vocab: vocab}
}

func (f *fakeUsers) Get(_ context.Context, id string) (*store.UserProfile, error) {
	if p, ok := f.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) Create(_ context.Context, id, name string) error {
	if _, ok := f.profiles[id]; ok {
		return store.ErrExists
	}
	f.creates++
	f.profiles[id] = &store.UserProfile{ID: id, Name: name, CreatedAt: time.Now()}
	return nil
}

func (f *fakeUsers) SetLanguage(ctx context.Context, id, code string) error {
	p, ok := f.profiles[id]
	if !ok {
		return store.ErrNotFound
	}
	p.Language = code
	return f.vocab.ClearAll(ctx, id)
}

func (f *fakeUsers) SetLevel(_ context.Context, id, level string) error {
	p, ok := f.profiles[id]
	if !ok {
		return store.ErrNotFound
	}
	p.Level = level
	return nil
}

func (f *fakeUsers) SetReminder(_ context.Context, id string, hour *int) error {
	p, ok := f.profiles[id]
	if !ok {
		return store.ErrNotFound
	}
	if hour != nil && (*hour < 0 || *hour > 23) {
		return store.ErrInvalidHour
	}
	p.ReminderHour = hour
	return nil
}

func (f *fakeUsers) DueReminders(_ context.Context, _ int, _ string) ([]*store.UserProfile, error) {
	return nil, nil
}

func (f *fakeUsers) MarkReminded(_ context.Context, _, _ string) error { return nil }

// fakeAudit collects appended events.
type fakeAudit struct {
	messages []store.MessageEventData
	llm      []store.LLMRequestEventData
}

func (f *fakeAudit) AppendMessage(_ context.Context, data store.MessageEventData) error {
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeAudit) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.llm = append(f.llm, data)
	return nil
}

func (f *fakeAudit) RecentLLMEvents(_ context.Context, _ int) ([]*store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeAudit) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func (f *fakeAudit) MessageStatsByKind(_ context.Context) ([]store.MessageStats, error) {
	return nil, nil
}

type fixture struct {
	engine *Engine
	users  *fakeUsers
	vocab  *fakeVocab
	audit  *fakeAudit
	states *StateStore
	mock   *llm.MockProvider
}

func newFixture(cfg tutor.Config, responses ...llm.MockResponse) *fixture {
	log := logrus.New()
	log.SetOutput(io.Discard)

	vocab := &fakeVocab{}
	users := newFakeUsers(vocab)
	audit := &fakeAudit{}
	states := NewStateStore()
	mock := llm.NewMockProvider(responses...)
	session := tutor.NewSession(mock, vocab, cfg, log)

	return &fixture{
		engine: NewEngine(users, vocab, states, session, audit, log),
		users:  users,
		vocab:  vocab,
		audit:  audit,
		states: states,
		mock:   mock,
	}
}

// registered seeds a profile with language and level set.
func (f *fixture) registered(t *testing.T, id string) {
	t.Helper()
	ctx := context.Background()
	if err := f.users.Create(ctx, id, "Petrov Ivan"); err != nil {
		t.Fatal(err)
	}
	if err := f.users.SetLanguage(ctx, id, "fr"); err != nil {
		t.Fatal(err)
	}
	if err := f.users.SetLevel(ctx, id, "beginner"); err != nil {
		t.Fatal(err)
	}
}

func command(id, text string) Event { return Event{UserID: id, Kind: KindCommand, Text: text} }
func message(id, text string) Event { return Event{UserID: id, Kind: KindMessage, Text: text} }
func button(id, text string) Event  { return Event{UserID: id, Kind: KindButton, Text: text} }

func wantStep(t *testing.T, f *fixture, id string, step Step) {
	t.Helper()
	if got := f.states.Get(id).Step; got != step {
		t.Fatalf("step = %v, want %v", got, step)
	}
}

func replyContains(replies []Reply, substr string) bool {
	for _, r := range replies {
		if strings.Contains(r.Text, substr) {
			return true
		}
	}
	return false
}

func TestStartNewUser(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())

	replies := f.engine.Handle(context.Background(), command("u1", "/start"))
	if !replyContains(replies, "surname and first name") {
		t.Errorf("replies = %+v", replies)
	}
	wantStep(t, f, "u1", StepAwaitingName)
}

func TestStartKnownUser(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())
	f.registered(t, "u1")

	replies := f.engine.Handle(context.Background(), command("u1", "/start"))
	if !replyContains(replies, "Welcome back") {
		t.Errorf("replies = %+v", replies)
	}
	wantStep(t, f, "u1", StepIdle)
}

func TestRegistrationValidName(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())
	f.states.Set("u1", State{Step: StepAwaitingName})

	f.engine.Handle(context.Background(), message("u1", "Smith John"))

	p, err := f.users.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("profile not created: %v", err)
	}
	if p.Name != "Smith John" {
		t.Errorf("name = %q, want Smith John", p.Name)
	}
	if f.users.creates != 1 {
		t.Errorf("creates = %d, want exactly 1", f.users.creates)
	}
	wantStep(t, f, "u1", StepAwaitingLanguage)
}

func TestRegistrationInvalidName(t *testing.T) {
	for _, input := range []string{"John", "a b c", "", "   "} {
		t.Run("input="+input, func(t *testing.T) {
			f := newFixture(tutor.DefaultConfig())
			f.states.Set("u1", State{Step: StepAwaitingName})

			replies := f.engine.Handle(context.Background(), message("u1", input))

			if _, err := f.users.Get(context.Background(), "u1"); err == nil {
				t.Error("profile created from invalid name")
			}
			if !replyContains(replies, "two words") {
				t.Errorf("replies = %+v, want format re-prompt", replies)
			}
			wantStep(t, f, "u1", StepAwaitingName)
		})
	}
}

func TestUnregisteredGuard(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())

	for _, ev := range []Event{
		command("u1", "/learn"),
		command("u1", "/language"),
		message("u1", "hello"),
		button("u1", "French"),
	} {
		replies := f.engine.Handle(context.Background(), ev)
		if !replyContains(replies, "/start") {
			t.Errorf("%+v: replies = %+v, want register prompt", ev, replies)
		}
	}
}

func TestLanguageUnrecognized(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())
	f.registered(t, "u1")
	f.states.Set("u1", State{Step: StepAwaitingLanguage})

	f.engine.Handle(context.Background(), message("u1", "Klingon"))

	wantStep(t, f, "u1", StepAwaitingLanguage)
	p, _ := f.users.Get(context.Background(), "u1")
	if p.Language != "fr" {
		t.Errorf("language = %q, want unchanged fr", p.Language)
	}
}

func TestLanguagePickClearsVocabulary(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())
	f.registered(t, "u1")
	ctx := context.Background()
	_ = f.vocab.AddWord(ctx, "u1", "fr", "chat", "cat", 2)
	_ = f.vocab.AddWord(ctx, "u1", "fr", "chien", "dog", 1)
	f.states.Set("u1", State{Step: StepAwaitingLanguage})

	f.engine.Handle(ctx, button("u1", "German"))

	p, _ := f.users.Get(ctx, "u1")
	if p.Language != "de" {
		t.Errorf("language = %q, want de", p.Language)
	}
	if n, _ := f.vocab.Count(ctx, "u1"); n != 0 {
		t.Errorf("vocabulary = %d entries, want 0 after language change", n)
	}
	wantStep(t, f, "u1", StepAwaitingLevel)
}

func TestLanguageCancel(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())
	f.registered(t, "u1")
	f.states.Set("u1", State{Step: StepAwaitingLanguage})

	replies := f.engine.Handle(context.Background(), button("u1", "Cancel"))

	if !replyContains(replies, "nothing changed") {
		t.Errorf("replies = %+v", replies)
	}
	wantStep(t, f, "u1", StepIdle)
	p, _ := f.users.Get(context.Background(), "u1")
	if p.Language != "fr" {
		t.Errorf("language = %q, want unchanged", p.Language)
	}
}

func TestLanguageCommandWarnsWhenSet(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())
	f.registered(t, "u1")

	replies := f.engine.Handle(context.Background(), command("u1", "/language"))
	if !replyContains(replies, "clears your current word list") {
		t.Errorf("replies = %+v, want progress warning", replies)
	}
	wantStep(t, f, "u1", StepAwaitingLanguage)
}

func TestLevelPick(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())
	f.registered(t, "u1")
	f.states.Set("u1", State{Step: StepAwaitingLevel})

	f.engine.Handle(context.Background(), button("u1", "Intermediate"))

	p, _ := f.users.Get(context.Background(), "u1")
	if p.Level != "intermediate" {
		t.Errorf("level = %q, want intermediate", p.Level)
	}
	wantStep(t, f, "u1", StepIdle)
}

func TestLevelUnrecognized(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())
	f.registered(t, "u1")
	f.states.Set("u1", State{Step: StepAwaitingLevel})

	f.engine.Handle(context.Background(), message("u1", "fluent"))
	wantStep(t, f, "u1", StepAwaitingLevel)
}

func TestReminderHourRejected(t *testing.T) {
	for _, input := range []string{"25", "-1", "noon", "7pm", ""} {
		t.Run("input="+input, func(t *testing.T) {
			f := newFixture(tutor.DefaultConfig())
			f.registered(t, "u1")
			f.states.Set("u1", State{Step: StepAwaitingReminderHour})

			replies := f.engine.Handle(context.Background(), message("u1", input))

			if !replyContains(replies, "0 to 23") {
				t.Errorf("replies = %+v, want hour re-prompt", replies)
			}
			wantStep(t, f, "u1", StepAwaitingReminderHour)
			p, _ := f.users.Get(context.Background(), "u1")
			if p.ReminderHour != nil {
				t.Errorf("reminder hour changed to %d", *p.ReminderHour)
			}
		})
	}
}

func TestReminderHourSet(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())
	f.registered(t, "u1")
	f.states.Set("u1", State{Step: StepAwaitingReminderHour})

	f.engine.Handle(context.Background(), message("u1", "8"))

	p, _ := f.users.Get(context.Background(), "u1")
	if p.ReminderHour == nil || *p.ReminderHour != 8 {
		t.Errorf("reminder hour = %v, want 8", p.ReminderHour)
	}
	wantStep(t, f, "u1", StepIdle)
}

func TestReminderOff(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())
	f.registered(t, "u1")
	hour := 8
	_ = f.users.SetReminder(context.Background(), "u1", &hour)
	f.states.Set("u1", State{Step: StepAwaitingReminderHour})

	f.engine.Handle(context.Background(), message("u1", "off"))

	p, _ := f.users.Get(context.Background(), "u1")
	if p.ReminderHour != nil {
		t.Errorf("reminder hour = %d, want disabled", *p.ReminderHour)
	}
	wantStep(t, f, "u1", StepIdle)
}

func TestReminderRequiresLanguage(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())
	_ = f.users.Create(context.Background(), "u1", "Petrov Ivan")

	replies := f.engine.Handle(context.Background(), command("u1", "/reminder"))
	if !replyContains(replies, "/language") {
		t.Errorf("replies = %+v, want language prompt", replies)
	}
	wantStep(t, f, "u1", StepIdle)
}

func TestLearnIntroducesWord(t *testing.T) {
	cfg := tutor.DefaultConfig()
	cfg.QuizProbability = 0 // never quiz
	f := newFixture(cfg, llm.MockResponse{Text: `{"term":"chat","translation":"cat"}`})
	f.registered(t, "u1")

	replies := f.engine.Handle(context.Background(), command("u1", "/learn"))

	if !replyContains(replies, "New word: chat") {
		t.Errorf("replies = %+v", replies)
	}
	due, _ := f.vocab.ListDue(context.Background(), "u1")
	if len(due) != 1 || due[0].RepeatCount != 2 {
		t.Errorf("due = %+v, want one entry with repeat 2", due)
	}
	wantStep(t, f, "u1", StepIdle)
}

func TestLearnQuizRoundTrip(t *testing.T) {
	cfg := tutor.DefaultConfig()
	cfg.QuizProbability = 1 // always quiz when possible
	f := newFixture(cfg, llm.MockResponse{Text: "yes"})
	f.registered(t, "u1")
	ctx := context.Background()
	_ = f.vocab.AddWord(ctx, "u1", "fr", "chat", "cat", 1)

	replies := f.engine.Handle(ctx, command("u1", "/learn"))
	if !replyContains(replies, "Translate into English: chat") {
		t.Fatalf("replies = %+v", replies)
	}
	wantStep(t, f, "u1", StepAwaitingTranslation)

	replies = f.engine.Handle(ctx, message("u1", "cat"))
	if !replyContains(replies, "Correct") {
		t.Errorf("replies = %+v", replies)
	}
	wantStep(t, f, "u1", StepIdle)

	// Repeat went 1 -> 0: the word is learned and off the due list.
	due, _ := f.vocab.ListDue(ctx, "u1")
	if len(due) != 0 {
		t.Errorf("due = %+v, want empty after final correct answer", due)
	}
}

func TestQuizIncorrectRevealsTranslation(t *testing.T) {
	f := newFixture(tutor.DefaultConfig(), llm.MockResponse{Text: "no"})
	f.registered(t, "u1")
	ctx := context.Background()
	_ = f.vocab.AddWord(ctx, "u1", "fr", "chat", "cat", 2)
	f.states.Set("u1", State{Step: StepAwaitingTranslation, PendingTerm: "chat"})

	replies := f.engine.Handle(ctx, message("u1", "dog"))

	if !replyContains(replies, `"cat"`) {
		t.Errorf("replies = %+v, want translation reveal", replies)
	}
	wantStep(t, f, "u1", StepIdle)
	entry, _ := f.vocab.Find(ctx, "u1", "chat")
	if entry.RepeatCount != 2 {
		t.Errorf("repeat = %d, want unchanged on incorrect", entry.RepeatCount)
	}
}

func TestQuizStateClearedOnBackendError(t *testing.T) {
	f := newFixture(tutor.DefaultConfig(), llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	f.registered(t, "u1")
	f.states.Set("u1", State{Step: StepAwaitingTranslation, PendingTerm: "chat"})

	replies := f.engine.Handle(context.Background(), message("u1", "cat"))

	if !replyContains(replies, "try again") {
		t.Errorf("replies = %+v, want graceful failure", replies)
	}
	wantStep(t, f, "u1", StepIdle)
}

func TestLearnBackendUnavailable(t *testing.T) {
	cfg := tutor.DefaultConfig()
	cfg.QuizProbability = 0
	f := newFixture(cfg, llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	f.registered(t, "u1")

	replies := f.engine.Handle(context.Background(), command("u1", "/learn"))
	if !replyContains(replies, "try again") {
		t.Errorf("replies = %+v, want graceful failure", replies)
	}
	wantStep(t, f, "u1", StepIdle)
}

func TestIdleFreeformAnswer(t *testing.T) {
	f := newFixture(tutor.DefaultConfig(), llm.MockResponse{Text: "Bonjour means hello."})
	f.registered(t, "u1")

	replies := f.engine.Handle(context.Background(), message("u1", "what does bonjour mean?"))
	if !replyContains(replies, "Bonjour means hello") {
		t.Errorf("replies = %+v", replies)
	}
}

func TestHelp(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())
	f.registered(t, "u1")

	replies := f.engine.Handle(context.Background(), command("u1", "/help"))
	if !replyContains(replies, "/learn") {
		t.Errorf("replies = %+v", replies)
	}
}

func TestAuditRecordsEveryEvent(t *testing.T) {
	f := newFixture(tutor.DefaultConfig())
	f.registered(t, "u1")
	ctx := context.Background()

	f.engine.Handle(ctx, command("u1", "/help"))
	f.engine.Handle(ctx, command("u1", "/language"))
	f.engine.Handle(ctx, button("u1", "Cancel"))

	if len(f.audit.messages) != 3 {
		t.Fatalf("audit entries = %d, want 3", len(f.audit.messages))
	}
	if f.audit.messages[0].Kind != "command" || f.audit.messages[2].Kind != "button" {
		t.Errorf("kinds = %q, %q", f.audit.messages[0].Kind, f.audit.messages[2].Kind)
	}
	if f.audit.messages[2].State != "awaiting_language" {
		t.Errorf("state = %q, want awaiting_language", f.audit.messages[2].State)
	}
	if f.audit.messages[0].SessionID == "" {
		t.Error("audit record missing session id")
	}
}

func TestStateStoreDefaultsIdle(t *testing.T) {
	s := NewStateStore()
	if st := s.Get("nobody"); st.Step != StepIdle {
		t.Errorf("step = %v, want idle", st.Step)
	}
	s.Set("u1", State{Step: StepAwaitingName})
	s.Clear("u1")
	if st := s.Get("u1"); st.Step != StepIdle {
		t.Errorf("step after clear = %v, want idle", st.Step)
	}
}

func TestEventCommandParsing(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{command("u", "/start"), "start"},
		{command("u", "/LEARN"), "learn"},
		{command("u", "/help extra args"), "help"},
		{message("u", "/start"), ""},
	}
	for _, tt := range tests {
		if got := tt.ev.Command(); got != tt.want {
			t.Errorf("Command(%q) = %q, want %q", tt.ev.Text, got, tt.want)
		}
	}
}
