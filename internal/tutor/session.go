package tutor

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/osokin/lingvo/internal/llm"
	"github.com/osokin/lingvo/internal/store"
)

// ErrUnusableReply means the backend kept producing replies that could
// not be parsed as a word pair, even after retrying.
var ErrUnusableReply = errors.New("backend never produced a usable word pair")

// wordPairSchema constrains word introduction responses for backends
// with structured output support.
var wordPairSchema = &llm.Schema{
	Name:        "word_pair",
	Description: "A vocabulary word with its English translation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"term":        map[string]any{"type": "string"},
			"translation": map[string]any{"type": "string"},
		},
		"required":             []any{"term", "translation"},
		"additionalProperties": false,
	},
}

// Session runs the tutoring interactions for registered users against a
// single backend provider. It is safe for use from the serial event
// loop; it keeps no per-call state of its own.
type Session struct {
	provider llm.Provider
	vocab    store.VocabRepo
	cfg      Config
	log      *logrus.Logger
	rand     *rand.Rand
}

// NewSession creates a Session backed by the given provider and
// vocabulary store.
func NewSession(provider llm.Provider, vocab store.VocabRepo, cfg Config, log *logrus.Logger) *Session {
	return &Session{
		provider: provider,
		vocab:    vocab,
		cfg:      cfg,
		log:      log,
		rand:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// IntroduceWord asks the backend for a new word and records it with the
// initial repeat counter. Replies that cannot be parsed as a word pair
// are retried up to MaxIntroduceAttempts times; a zero limit retries
// until the context is cancelled.
func (s *Session) IntroduceWord(ctx context.Context, user *store.UserProfile) (*WordPair, error) {
	ctx = llm.WithPurpose(ctx, "introduce-word")
	req := llm.Request{
		System:      personaPrompt,
		Prompt:      buildIntroducePrompt(user.Language, user.Level),
		Schema:      wordPairSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := s.provider.Complete(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("introducing word: %w", err)
		}

		pair, err := ParseWordPair(resp.Text)
		if err == nil {
			if err := s.recordWord(ctx, user, pair); err != nil {
				return nil, err
			}
			return pair, nil
		}

		s.log.WithFields(logrus.Fields{
			"user":    user.ID,
			"attempt": attempt,
		}).WithError(err).Warn("unparseable word pair, retrying")

		if s.cfg.MaxIntroduceAttempts > 0 && attempt >= s.cfg.MaxIntroduceAttempts {
			return nil, ErrUnusableReply
		}
	}
}

// recordWord persists a freshly introduced pair. When a term the user
// already has comes back and duplicates are disallowed, the existing
// entry's counter is reset instead of inserting a second row.
func (s *Session) recordWord(ctx context.Context, user *store.UserProfile, pair *WordPair) error {
	if !s.cfg.AllowDuplicates {
		_, err := s.vocab.Find(ctx, user.ID, pair.Term)
		switch {
		case err == nil:
			return s.vocab.ResetRepeat(ctx, user.ID, pair.Term, s.cfg.InitialRepeat)
		case !errors.Is(err, store.ErrNotFound):
			return fmt.Errorf("checking for existing word: %w", err)
		}
	}
	if err := s.vocab.AddWord(ctx, user.ID, user.Language, pair.Term, pair.Translation, s.cfg.InitialRepeat); err != nil {
		return fmt.Errorf("storing word: %w", err)
	}
	return nil
}

// GradeTranslation asks the backend whether the user's answer is an
// acceptable translation of term. Anything but a bare affirmative from
// the backend counts as incorrect. A correct answer decrements the
// word's repeat counter.
func (s *Session) GradeTranslation(ctx context.Context, user *store.UserProfile, term, answer string) (bool, error) {
	ctx = llm.WithPurpose(ctx, "grade")
	resp, err := s.provider.Complete(ctx, llm.Request{
		System:    personaPrompt,
		Prompt:    buildGradePrompt(user.Language, term, answer),
		MaxTokens: s.cfg.MaxTokens,
	})
	if err != nil {
		return false, fmt.Errorf("grading answer: %w", err)
	}

	if !isYes(resp.Text) {
		return false, nil
	}
	if err := s.vocab.DecrementRepeat(ctx, user.ID, term); err != nil {
		return false, fmt.Errorf("updating repeat counter: %w", err)
	}
	return true, nil
}

// isYes accepts only a bare affirmative token, case-insensitively.
// Hedged or verbose replies grade as incorrect on purpose: a grader
// that cannot commit to "yes" has not confirmed the answer.
func isYes(text string) bool {
	token := strings.TrimRight(strings.TrimSpace(text), ".!")
	return strings.EqualFold(token, "yes")
}

// ExplainTopic asks the backend for a grammar explanation matched to
// the user's language and level.
func (s *Session) ExplainTopic(ctx context.Context, user *store.UserProfile) (string, error) {
	ctx = llm.WithPurpose(ctx, "explain")
	resp, err := s.provider.Complete(ctx, llm.Request{
		System:      personaPrompt,
		Prompt:      buildExplainPrompt(user.Language, user.Level),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("explaining topic: %w", err)
	}
	return resp.Text, nil
}

// Answer forwards a freeform question to the backend under the tutor
// persona, which declines off-topic questions on its own.
func (s *Session) Answer(ctx context.Context, user *store.UserProfile, question string) (string, error) {
	ctx = llm.WithPurpose(ctx, "answer")
	resp, err := s.provider.Complete(ctx, llm.Request{
		System:      personaPrompt,
		Prompt:      buildAnswerPrompt(user.Language, user.Level, question),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("answering question: %w", err)
	}
	return resp.Text, nil
}

// NextQuizWord decides whether the next interaction should quiz an
// existing word. It returns a due word with probability QuizProbability
// when any exist, and nil when a new word should be introduced instead.
func (s *Session) NextQuizWord(ctx context.Context, userID string) (*store.VocabEntry, error) {
	due, err := s.vocab.ListDue(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing due words: %w", err)
	}
	if len(due) == 0 || s.rand.Float64() >= s.cfg.QuizProbability {
		return nil, nil
	}
	return due[s.rand.IntN(len(due))], nil
}
