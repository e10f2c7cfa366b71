package store

import (
	"context"
	"fmt"

	"github.com/osokin/lingvo/ent"
	"github.com/osokin/lingvo/ent/user"
	"github.com/osokin/lingvo/ent/vocabentry"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Get(ctx context.Context, id string) (*UserProfile, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return entUserToProfile(u), nil
}

func (r *userRepo) Create(ctx context.Context, id, name string) error {
	_, err := r.client.User.Create().
		SetID(id).
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrExists
		}
		return fmt.Errorf("create user %s: %w", id, err)
	}
	return nil
}

// SetLanguage changes the target language and clears the old word list.
// Both apply or neither: a language switch must never leave stale words
// from the previous language behind.
func (r *userRepo) SetLanguage(ctx context.Context, id, code string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin set language: %w", err)
	}

	n, err := tx.User.Update().
		Where(user.ID(id)).
		SetLanguage(code).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("set language for %s: %w", id, err)
	}
	if n == 0 {
		tx.Rollback()
		return ErrNotFound
	}

	if _, err := tx.VocabEntry.Delete().
		Where(vocabentry.UserID(id)).
		Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear vocabulary for %s: %w", id, err)
	}

	return tx.Commit()
}

func (r *userRepo) SetLevel(ctx context.Context, id, level string) error {
	n, err := r.client.User.Update().
		Where(user.ID(id)).
		SetLevel(level).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set level for %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepo) SetReminder(ctx context.Context, id string, hour *int) error {
	if hour != nil && (*hour < 0 || *hour > 23) {
		return ErrInvalidHour
	}

	upd := r.client.User.Update().Where(user.ID(id))
	if hour == nil {
		upd.ClearReminderHour()
	} else {
		upd.SetReminderHour(*hour)
	}
	// A changed reminder may fire again today; start from a clean slate.
	upd.SetLastRemindedOn("")

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("set reminder for %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepo) DueReminders(ctx context.Context, hour int, date string) ([]*UserProfile, error) {
	users, err := r.client.User.Query().
		Where(
			user.ReminderHour(hour),
			user.LastRemindedOnNEQ(date),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due reminders: %w", err)
	}

	out := make([]*UserProfile, len(users))
	for i, u := range users {
		out[i] = entUserToProfile(u)
	}
	return out, nil
}

func (r *userRepo) MarkReminded(ctx context.Context, id, date string) error {
	n, err := r.client.User.Update().
		Where(user.ID(id)).
		SetLastRemindedOn(date).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark reminded %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func entUserToProfile(u *ent.User) *UserProfile {
	return &UserProfile{
		ID:             u.ID,
		Name:           u.Name,
		Language:       u.Language,
		Level:          u.Level,
		ReminderHour:   u.ReminderHour,
		LastRemindedOn: u.LastRemindedOn,
		CreatedAt:      u.CreatedAt,
	}
}
