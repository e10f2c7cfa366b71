package reminder

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/osokin/lingvo/internal/store"
)

// reminderText is the daily nudge sent to users with a reminder hour.
const reminderText = "Time to practice! Send /learn for a quick session."

// Notifier delivers a reminder message to a user. The chat transport
// implements it.
type Notifier interface {
	Notify(ctx context.Context, userID, text string) error
}

// Scheduler sweeps user profiles on a fixed interval and sends each
// user at most one reminder per calendar day, in the hour they picked.
// Firing is tracked by the date of the last reminder, so repeated
// sweeps within the same hour are harmless.
type Scheduler struct {
	users    store.UserRepo
	notifier Notifier
	interval time.Duration
	now      func() time.Time
	log      *logrus.Logger
}

// NewScheduler creates a scheduler polling at the given interval.
func NewScheduler(users store.UserRepo, notifier Notifier, interval time.Duration, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		users:    users,
		notifier: notifier,
		interval: interval,
		now:      time.Now,
		log:      log,
	}
}

// Run sweeps on every tick until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep sends reminders to every user whose hour matches the current
// hour and who has not been reminded today. A profile updated mid-hour
// to the current hour fires on the next sweep; that is intended.
func (s *Scheduler) Sweep(ctx context.Context) {
	now := s.now()
	hour := now.Hour()
	date := now.Format(time.DateOnly)

	due, err := s.users.DueReminders(ctx, hour, date)
	if err != nil {
		s.log.WithError(err).Error("listing due reminders")
		return
	}

	for _, profile := range due {
		if err := s.notifier.Notify(ctx, profile.ID, reminderText); err != nil {
			// Not marked as reminded: the next sweep this hour retries.
			s.log.WithError(err).WithField("user", profile.ID).Warn("sending reminder")
			continue
		}
		if err := s.users.MarkReminded(ctx, profile.ID, date); err != nil {
			s.log.WithError(err).WithField("user", profile.ID).Error("marking reminder sent")
			continue
		}
		s.log.WithFields(logrus.Fields{"user": profile.ID, "hour": hour}).Debug("reminder sent")
	}
}
