package tutor

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/osokin/lingvo/internal/llm"
	"github.com/osokin/lingvo/internal/store"
)

// fakeVocab is an in-memory store.VocabRepo for session tests.
type fakeVocab struct {
	entries []*store.VocabEntry
	nextID  int
}

func (f *fakeVocab) AddWord(_ context.Context, userID, language, term, translation string, initialRepeat int) error {
	f.nextID++
	f.entries = append(f.entries, &store.VocabEntry{
		ID:          f.nextID,
		UserID:      userID,
		Language:    language,
		Term:        term,
		Translation: translation,
		RepeatCount: initialRepeat,
		CreatedAt:   time.Now(),
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

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testUser() *store.UserProfile {
	return &store.UserProfile{ID: "u1", Name: "Ivan Petrov", Language: "fr", Level: "beginner"}
}

func newTestSession(mock *llm.MockProvider, vocab *fakeVocab, cfg Config) *Session {
	s := NewSession(mock, vocab, cfg, quietLogger())
	s.rand = rand.New(rand.NewPCG(1, 2))
	return s
}

func TestIntroduceWordStoresPair(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: `{"term":"chat","translation":"cat"}`},
	)
	vocab := &fakeVocab{}
	s := newTestSession(mock, vocab, DefaultConfig())

	pair, err := s.IntroduceWord(context.Background(), testUser())
	if err != nil {
		t.Fatalf("IntroduceWord: %v", err)
	}
	if pair.Term != "chat" || pair.Translation != "cat" {
		t.Errorf("pair = %+v", pair)
	}

	entry, err := vocab.Find(context.Background(), "u1", "chat")
	if err != nil {
		t.Fatalf("stored word not found: %v", err)
	}
	if entry.RepeatCount != 2 {
		t.Errorf("repeat = %d, want 2", entry.RepeatCount)
	}
	if entry.Language != "fr" {
		t.Errorf("language = %q, want fr", entry.Language)
	}
}

func TestIntroduceWordRetriesUnparseable(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Here is a lovely word for you!"},
		llm.MockResponse{Text: "another prose reply"},
		llm.MockResponse{Text: "(chat, cat)"},
	)
	s := newTestSession(mock, &fakeVocab{}, DefaultConfig())

	pair, err := s.IntroduceWord(context.Background(), testUser())
	if err != nil {
		t.Fatalf("IntroduceWord: %v", err)
	}
	if pair.Term != "chat" {
		t.Errorf("term = %q, want chat", pair.Term)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestIntroduceWordGivesUpAfterMaxAttempts(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "prose"},
		llm.MockResponse{Text: "prose"},
		llm.MockResponse{Text: "prose"},
		llm.MockResponse{Text: "(chat, cat)"}, // never reached
	)
	cfg := DefaultConfig()
	cfg.MaxIntroduceAttempts = 3
	vocab := &fakeVocab{}
	s := newTestSession(mock, vocab, cfg)

	_, err := s.IntroduceWord(context.Background(), testUser())
	if !errors.Is(err, ErrUnusableReply) {
		t.Fatalf("got %v, want ErrUnusableReply", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
	if n, _ := vocab.Count(context.Background(), "u1"); n != 0 {
		t.Errorf("stored %d words after failure, want 0", n)
	}
}

func TestIntroduceWordBackendErrorNotRetriedHere(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	s := newTestSession(mock, &fakeVocab{}, DefaultConfig())

	_, err := s.IntroduceWord(context.Background(), testUser())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("got %v, want ErrProviderUnavailable", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestIntroduceWordDuplicateAllowed(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "(chat, cat)"},
		llm.MockResponse{Text: "(chat, cat)"},
	)
	vocab := &fakeVocab{}
	s := newTestSession(mock, vocab, DefaultConfig())

	ctx := context.Background()
	user := testUser()
	if _, err := s.IntroduceWord(ctx, user); err != nil {
		t.Fatal(err)
	}
	if _, err := s.IntroduceWord(ctx, user); err != nil {
		t.Fatal(err)
	}
	if n, _ := vocab.Count(ctx, "u1"); n != 2 {
		t.Errorf("entries = %d, want 2 (duplicates allowed)", n)
	}
}

func TestIntroduceWordDuplicateResetsWhenDisallowed(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "(chat, cat)"},
		llm.MockResponse{Text: "(chat, cat)"},
	)
	cfg := DefaultConfig()
	cfg.AllowDuplicates = false
	vocab := &fakeVocab{}
	s := newTestSession(mock, vocab, cfg)

	ctx := context.Background()
	user := testUser()
	if _, err := s.IntroduceWord(ctx, user); err != nil {
		t.Fatal(err)
	}
	// Learn the word down to 0, then re-introduce it.
	vocab.entries[0].RepeatCount = 0
	if _, err := s.IntroduceWord(ctx, user); err != nil {
		t.Fatal(err)
	}

	if n, _ := vocab.Count(ctx, "u1"); n != 1 {
		t.Fatalf("entries = %d, want 1", n)
	}
	if vocab.entries[0].RepeatCount != 2 {
		t.Errorf("repeat = %d, want 2 after reset", vocab.entries[0].RepeatCount)
	}
}

func TestGradeTranslation(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		wantCorrect bool
		wantRepeat  int
	}{
		{"plain yes", "yes", true, 1},
		{"capitalized", "Yes.", true, 1},
		{"plain no", "no", false, 2},
		{"hedged reply", "Yes, that is mostly correct.", false, 2},
		{"empty reply", "", false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Text: tt.reply})
			vocab := &fakeVocab{}
			ctx := context.Background()
			_ = vocab.AddWord(ctx, "u1", "fr", "chat", "cat", 2)
			s := newTestSession(mock, vocab, DefaultConfig())

			correct, err := s.GradeTranslation(ctx, testUser(), "chat", "cat")
			if err != nil {
				t.Fatalf("GradeTranslation: %v", err)
			}
			if correct != tt.wantCorrect {
				t.Errorf("correct = %v, want %v", correct, tt.wantCorrect)
			}
			entry, _ := vocab.Find(ctx, "u1", "chat")
			if entry.RepeatCount != tt.wantRepeat {
				t.Errorf("repeat = %d, want %d", entry.RepeatCount, tt.wantRepeat)
			}
		})
	}
}

func TestGradeTranslationBackendError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	vocab := &fakeVocab{}
	ctx := context.Background()
	_ = vocab.AddWord(ctx, "u1", "fr", "chat", "cat", 2)
	s := newTestSession(mock, vocab, DefaultConfig())

	_, err := s.GradeTranslation(ctx, testUser(), "chat", "cat")
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("got %v, want ErrRateLimit", err)
	}
	entry, _ := vocab.Find(ctx, "u1", "chat")
	if entry.RepeatCount != 2 {
		t.Errorf("repeat = %d, want 2 (unchanged on error)", entry.RepeatCount)
	}
}

func TestNextQuizWordNoDueWords(t *testing.T) {
	s := newTestSession(llm.NewMockProvider(), &fakeVocab{}, DefaultConfig())

	entry, err := s.NextQuizWord(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if entry != nil {
		t.Errorf("got %+v, want nil with empty vocabulary", entry)
	}
}

func TestNextQuizWordSkipsLearnedWords(t *testing.T) {
	vocab := &fakeVocab{}
	ctx := context.Background()
	_ = vocab.AddWord(ctx, "u1", "fr", "chat", "cat", 2)
	_ = vocab.AddWord(ctx, "u1", "fr", "chien", "dog", 0) // learned
	cfg := DefaultConfig()
	cfg.QuizProbability = 1.0 // always quiz when possible
	s := newTestSession(llm.NewMockProvider(), vocab, cfg)

	for i := 0; i < 20; i++ {
		entry, err := s.NextQuizWord(ctx, "u1")
		if err != nil {
			t.Fatal(err)
		}
		if entry == nil {
			t.Fatal("expected a quiz word")
		}
		if entry.Term == "chien" {
			t.Fatal("picked a word with repeat 0")
		}
	}
}

func TestNextQuizWordProbability(t *testing.T) {
	vocab := &fakeVocab{}
	ctx := context.Background()
	_ = vocab.AddWord(ctx, "u1", "fr", "chat", "cat", 2)

	cfg := DefaultConfig()
	cfg.QuizProbability = 0
	s := newTestSession(llm.NewMockProvider(), vocab, cfg)
	entry, err := s.NextQuizWord(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if entry != nil {
		t.Errorf("probability 0 should never quiz, got %+v", entry)
	}

	cfg.QuizProbability = 1.0
	s = newTestSession(llm.NewMockProvider(), vocab, cfg)
	entry, err = s.NextQuizWord(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if entry == nil {
		t.Error("probability 1 with due words should always quiz")
	}
}

func TestExplainAndAnswerPassThrough(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Le passé composé works like this."},
		llm.MockResponse{Text: "Bonjour means hello."},
	)
	s := newTestSession(mock, &fakeVocab{}, DefaultConfig())
	ctx := context.Background()
	user := testUser()

	explanation, err := s.ExplainTopic(ctx, user)
	if err != nil {
		t.Fatal(err)
	}
	if explanation == "" {
		t.Error("empty explanation")
	}

	answer, err := s.Answer(ctx, user, "what does bonjour mean?")
	if err != nil {
		t.Fatal(err)
	}
	if answer != "Bonjour means hello." {
		t.Errorf("answer = %q", answer)
	}

	// Both calls carry the tutor persona.
	for i, call := range mock.Calls {
		if call.System != personaPrompt {
			t.Errorf("call %d missing persona system prompt", i)
		}
	}
}
