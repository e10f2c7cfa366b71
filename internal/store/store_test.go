package store

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUserCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	users := s.UserRepo()
	ctx := context.Background()

	if _, err := users.Get(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get unknown user: got %v, want ErrNotFound", err)
	}

	if err := users.Create(ctx, "u1", "Smith John"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := users.Create(ctx, "u1", "Smith John"); !errors.Is(err, ErrExists) {
		t.Fatalf("duplicate create: got %v, want ErrExists", err)
	}

	p, err := users.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name != "Smith John" {
		t.Errorf("name = %q, want %q", p.Name, "Smith John")
	}
	if p.HasLanguage() {
		t.Error("fresh profile should have no language")
	}
	if p.ReminderHour != nil {
		t.Error("fresh profile should have no reminder hour")
	}
}

func TestSetLanguageClearsVocabulary(t *testing.T) {
	s := openTestStore(t)
	users := s.UserRepo()
	vocab := s.VocabRepo()
	ctx := context.Background()

	if err := users.Create(ctx, "u1", "Smith John"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := users.SetLanguage(ctx, "u1", "en"); err != nil {
		t.Fatalf("set language: %v", err)
	}

	for _, term := range []string{"cat", "dog", "house"} {
		if err := vocab.AddWord(ctx, "u1", "en", term, "x", 2); err != nil {
			t.Fatalf("add word: %v", err)
		}
	}

	if err := users.SetLanguage(ctx, "u1", "fr"); err != nil {
		t.Fatalf("switch language: %v", err)
	}

	n, err := vocab.Count(ctx, "u1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("vocabulary after language switch = %d entries, want 0", n)
	}

	p, _ := users.Get(ctx, "u1")
	if p.Language != "fr" {
		t.Errorf("language = %q, want fr", p.Language)
	}
}

func TestSetLanguageUnknownUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.UserRepo().SetLanguage(ctx, "nobody", "en"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestSetReminderValidation(t *testing.T) {
	s := openTestStore(t)
	users := s.UserRepo()
	ctx := context.Background()

	if err := users.Create(ctx, "u1", "Smith John"); err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, hour := range []int{-1, 24, 100} {
		h := hour
		if err := users.SetReminder(ctx, "u1", &h); !errors.Is(err, ErrInvalidHour) {
			t.Errorf("hour %d: got %v, want ErrInvalidHour", hour, err)
		}
	}

	h := 9
	if err := users.SetReminder(ctx, "u1", &h); err != nil {
		t.Fatalf("set reminder: %v", err)
	}
	p, _ := users.Get(ctx, "u1")
	if p.ReminderHour == nil || *p.ReminderHour != 9 {
		t.Fatalf("reminder hour = %v, want 9", p.ReminderHour)
	}

	if err := users.SetReminder(ctx, "u1", nil); err != nil {
		t.Fatalf("disable reminder: %v", err)
	}
	p, _ = users.Get(ctx, "u1")
	if p.ReminderHour != nil {
		t.Fatalf("reminder hour = %v, want nil", p.ReminderHour)
	}
}

func TestDueReminders(t *testing.T) {
	s := openTestStore(t)
	users := s.UserRepo()
	ctx := context.Background()

	mk := func(id string, hour int) {
		if err := users.Create(ctx, id, "User "+id); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
		h := hour
		if err := users.SetReminder(ctx, id, &h); err != nil {
			t.Fatalf("set reminder %s: %v", id, err)
		}
	}
	mk("a", 9)
	mk("b", 9)
	mk("c", 17)

	due, err := users.DueReminders(ctx, 9, "2026-08-30")
	if err != nil {
		t.Fatalf("due reminders: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("due at 9 = %d users, want 2", len(due))
	}

	if err := users.MarkReminded(ctx, "a", "2026-08-30"); err != nil {
		t.Fatalf("mark reminded: %v", err)
	}
	due, err = users.DueReminders(ctx, 9, "2026-08-30")
	if err != nil {
		t.Fatalf("due reminders: %v", err)
	}
	if len(due) != 1 || due[0].ID != "b" {
		t.Fatalf("after marking, due = %v, want just b", due)
	}

	// Next day everyone at hour 9 is due again.
	due, err = users.DueReminders(ctx, 9, "2026-08-31")
	if err != nil {
		t.Fatalf("due reminders: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("next day due = %d users, want 2", len(due))
	}
}

func TestVocabDueAndDecrement(t *testing.T) {
	s := openTestStore(t)
	vocab := s.VocabRepo()
	ctx := context.Background()

	if err := vocab.AddWord(ctx, "u1", "en", "cat", "chat", 2); err != nil {
		t.Fatalf("add word: %v", err)
	}

	due, err := vocab.ListDue(ctx, "u1")
	if err != nil {
		t.Fatalf("list due: %v", err)
	}
	if len(due) != 1 || due[0].RepeatCount != 2 {
		t.Fatalf("due = %+v, want one entry with repeat 2", due)
	}

	// Decrement past zero: the floor must hold.
	for range 5 {
		if err := vocab.DecrementRepeat(ctx, "u1", "cat"); err != nil {
			t.Fatalf("decrement: %v", err)
		}
	}

	due, err = vocab.ListDue(ctx, "u1")
	if err != nil {
		t.Fatalf("list due: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("retired word still due: %+v", due)
	}

	// The entry is retained, just excluded from quizzing.
	e, err := vocab.Find(ctx, "u1", "cat")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if e.RepeatCount != 0 {
		t.Errorf("repeat count = %d, want 0", e.RepeatCount)
	}
}

func TestVocabDecrementAbsentIsNoop(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.VocabRepo().DecrementRepeat(ctx, "u1", "ghost"); err != nil {
		t.Fatalf("decrement absent entry: %v", err)
	}
}

func TestVocabResetRepeat(t *testing.T) {
	s := openTestStore(t)
	vocab := s.VocabRepo()
	ctx := context.Background()

	if err := vocab.AddWord(ctx, "u1", "en", "cat", "chat", 2); err != nil {
		t.Fatalf("add word: %v", err)
	}
	for range 2 {
		if err := vocab.DecrementRepeat(ctx, "u1", "cat"); err != nil {
			t.Fatalf("decrement: %v", err)
		}
	}
	if err := vocab.ResetRepeat(ctx, "u1", "cat", 2); err != nil {
		t.Fatalf("reset: %v", err)
	}

	e, err := vocab.Find(ctx, "u1", "cat")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if e.RepeatCount != 2 {
		t.Errorf("repeat count = %d, want 2", e.RepeatCount)
	}
}

func TestAuditAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	audit := s.AuditRepo()
	ctx := context.Background()

	events := []MessageEventData{
		{UserID: "u1", Kind: "command", Text: "/start", State: "idle"},
		{UserID: "u1", Kind: "message", Text: "Smith John", State: "awaiting_name"},
		{UserID: "u2", Kind: "message", Text: "hello", State: "idle"},
	}
	for _, e := range events {
		if err := audit.AppendMessage(ctx, e); err != nil {
			t.Fatalf("append message: %v", err)
		}
	}

	stats, err := audit.MessageStatsByKind(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	got := map[string]int{}
	for _, st := range stats {
		got[st.Kind] = st.Count
	}
	if got["command"] != 1 || got["message"] != 2 {
		t.Errorf("stats = %v, want command:1 message:2", got)
	}
}

func TestAuditLLMEvents(t *testing.T) {
	s := openTestStore(t)
	audit := s.AuditRepo()
	ctx := context.Background()

	if err := audit.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "introduce-word",
		InputTokens: 10, OutputTokens: 5, LatencyMs: 120, Success: true,
	}); err != nil {
		t.Fatalf("append llm request: %v", err)
	}
	if err := audit.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "grade",
		Success: false, ErrorMessage: "boom",
	}); err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	events, err := audit.RecentLLMEvents(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Purpose != "grade" {
		t.Errorf("first event purpose = %q, want grade", events[0].Purpose)
	}

	usage, err := audit.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d usage rows, want 2", len(usage))
	}
}

func TestWipe(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.UserRepo().Create(ctx, "u1", "Smith John"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.VocabRepo().AddWord(ctx, "u1", "en", "cat", "chat", 2); err != nil {
		t.Fatalf("add word: %v", err)
	}

	if err := s.Wipe(ctx); err != nil {
		t.Fatalf("wipe: %v", err)
	}

	if _, err := s.UserRepo().Get(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("user survived wipe: %v", err)
	}
}
