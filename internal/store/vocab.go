package store

import (
	"context"
	"fmt"

	"github.com/osokin/lingvo/ent"
	"github.com/osokin/lingvo/ent/vocabentry"
)

// vocabRepo implements VocabRepo using the ent client.
type vocabRepo struct {
	client *ent.Client
}

func (r *vocabRepo) AddWord(ctx context.Context, userID, language, term, translation string, initialRepeat int) error {
	_, err := r.client.VocabEntry.Create().
		SetUserID(userID).
		SetLanguage(language).
		SetTerm(term).
		SetTranslation(translation).
		SetRepeatCount(initialRepeat).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("add word %q for %s: %w", term, userID, err)
	}
	return nil
}

func (r *vocabRepo) Find(ctx context.Context, userID, term string) (*VocabEntry, error) {
	e, err := r.client.VocabEntry.Query().
		Where(
			vocabentry.UserID(userID),
			vocabentry.Term(term),
		).
		Order(ent.Asc(vocabentry.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find word %q for %s: %w", term, userID, err)
	}
	return entVocabToEntry(e), nil
}

func (r *vocabRepo) ResetRepeat(ctx context.Context, userID, term string, n int) error {
	_, err := r.client.VocabEntry.Update().
		Where(
			vocabentry.UserID(userID),
			vocabentry.Term(term),
		).
		SetRepeatCount(n).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("reset repeat for %q: %w", term, err)
	}
	return nil
}

func (r *vocabRepo) ListDue(ctx context.Context, userID string) ([]*VocabEntry, error) {
	entries, err := r.client.VocabEntry.Query().
		Where(
			vocabentry.UserID(userID),
			vocabentry.RepeatCountGT(0),
		).
		Order(ent.Asc(vocabentry.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list due words for %s: %w", userID, err)
	}

	out := make([]*VocabEntry, len(entries))
	for i, e := range entries {
		out[i] = entVocabToEntry(e)
	}
	return out, nil
}

// DecrementRepeat floors at 0 by only touching rows still above 0.
// Absent entries update zero rows, which is the documented no-op.
func (r *vocabRepo) DecrementRepeat(ctx context.Context, userID, term string) error {
	_, err := r.client.VocabEntry.Update().
		Where(
			vocabentry.UserID(userID),
			vocabentry.Term(term),
			vocabentry.RepeatCountGT(0),
		).
		AddRepeatCount(-1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("decrement repeat for %q: %w", term, err)
	}
	return nil
}

func (r *vocabRepo) ClearAll(ctx context.Context, userID string) error {
	_, err := r.client.VocabEntry.Delete().
		Where(vocabentry.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear vocabulary for %s: %w", userID, err)
	}
	return nil
}

func (r *vocabRepo) Count(ctx context.Context, userID string) (int, error) {
	n, err := r.client.VocabEntry.Query().
		Where(vocabentry.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count vocabulary for %s: %w", userID, err)
	}
	return n, nil
}

func entVocabToEntry(e *ent.VocabEntry) *VocabEntry {
	return &VocabEntry{
		ID:          e.ID,
		UserID:      e.UserID,
		Language:    e.Language,
		Term:        e.Term,
		Translation: e.Translation,
		RepeatCount: e.RepeatCount,
		CreatedAt:   e.CreatedAt,
	}
}
