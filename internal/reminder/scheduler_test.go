package reminder

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/osokin/lingvo/internal/store"
)

// fakeUsers implements the reminder queries over an in-memory map with
// the same once-per-day semantics as the real store.
type fakeUsers struct {
	profiles map[string]*store.UserProfile
}

func (f *fakeUsers) Get(_ context.Context, id string) (*store.UserProfile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) Create(_ context.Context, id, name string) error {
	f.profiles[id] = &store.UserProfile{ID: id, Name: name}
	return nil
}

func (f *fakeUsers) SetLanguage(_ context.Context, id, code string) error {
	f.profiles[id].Language = code
	return nil
}

func (f *fakeUsers) SetLevel(_ context.Context, id, level string) error {
	f.profiles[id].Level = level
	return nil
}

func (f *fakeUsers) SetReminder(_ context.Context, id string, hour *int) error {
	f.profiles[id].ReminderHour = hour
	f.profiles[id].LastRemindedOn = ""
	return nil
}

func (f *fakeUsers) DueReminders(_ context.Context, hour int, date string) ([]*store.UserProfile, error) {
	var due []*store.UserProfile
	for _, p := range f.profiles {
		if p.ReminderHour != nil && *p.ReminderHour == hour && p.LastRemindedOn != date {
			due = append(due, p)
		}
	}
	return due, nil
}

func (f *fakeUsers) MarkReminded(_ context.Context, id, date string) error {
	f.profiles[id].LastRemindedOn = date
	return nil
}

// fakeNotifier records notifications, optionally failing first.
type fakeNotifier struct {
	sent     []string
	failNext int
}

func (f *fakeNotifier) Notify(_ context.Context, userID, _ string) error {
	if f.failNext > 0 {
		f.failNext--
		return errors.New("delivery failed")
	}
	f.sent = append(f.sent, userID)
	return nil
}

func newTestScheduler(users *fakeUsers, notifier *fakeNotifier) *Scheduler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewScheduler(users, notifier, time.Second, log)
}

func userWithHour(id string, hour int) *store.UserProfile {
	return &store.UserProfile{ID: id, Name: "Petrov Ivan", Language: "fr", ReminderHour: &hour}
}

func TestSweepFiresOncePerDay(t *testing.T) {
	users := &fakeUsers{profiles: map[string]*store.UserProfile{
		"u1": userWithHour("u1", 9),
	}}
	notifier := &fakeNotifier{}
	s := newTestScheduler(users, notifier)

	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	// Many ticks within the same hour.
	for i := 0; i < 50; i++ {
		s.Sweep(context.Background())
		now = now.Add(30 * time.Second)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("sent = %d reminders, want exactly 1", len(notifier.sent))
	}
	if notifier.sent[0] != "u1" {
		t.Errorf("sent to %q", notifier.sent[0])
	}
}

func TestSweepFiresAgainNextDay(t *testing.T) {
	users := &fakeUsers{profiles: map[string]*store.UserProfile{
		"u1": userWithHour("u1", 9),
	}}
	notifier := &fakeNotifier{}
	s := newTestScheduler(users, notifier)

	day1 := time.Date(2026, 8, 30, 9, 15, 0, 0, time.UTC)
	s.now = func() time.Time { return day1 }
	s.Sweep(context.Background())
	s.Sweep(context.Background())

	day2 := day1.Add(24 * time.Hour)
	s.now = func() time.Time { return day2 }
	s.Sweep(context.Background())
	s.Sweep(context.Background())

	if len(notifier.sent) != 2 {
		t.Fatalf("sent = %d reminders across two days, want 2", len(notifier.sent))
	}
}

func TestSweepSkipsNonMatchingHour(t *testing.T) {
	users := &fakeUsers{profiles: map[string]*store.UserProfile{
		"u1": userWithHour("u1", 9),
		"u2": userWithHour("u2", 14),
		"u3": {ID: "u3", Name: "No Reminder"},
	}}
	notifier := &fakeNotifier{}
	s := newTestScheduler(users, notifier)
	s.now = func() time.Time { return time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC) }

	s.Sweep(context.Background())

	if len(notifier.sent) != 1 || notifier.sent[0] != "u2" {
		t.Errorf("sent = %v, want just u2", notifier.sent)
	}
}

func TestSweepMidHourUpdateFiresSameHour(t *testing.T) {
	users := &fakeUsers{profiles: map[string]*store.UserProfile{
		"u1": {ID: "u1", Name: "Petrov Ivan", Language: "fr"},
	}}
	notifier := &fakeNotifier{}
	s := newTestScheduler(users, notifier)
	s.now = func() time.Time { return time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC) }

	s.Sweep(context.Background())
	if len(notifier.sent) != 0 {
		t.Fatal("fired with no reminder configured")
	}

	// User picks the current hour mid-hour: fires on the next sweep.
	hour := 9
	_ = users.SetReminder(context.Background(), "u1", &hour)
	s.Sweep(context.Background())

	if len(notifier.sent) != 1 {
		t.Fatalf("sent = %d, want 1 after mid-hour update", len(notifier.sent))
	}
}

func TestSweepRetriesAfterDeliveryFailure(t *testing.T) {
	users := &fakeUsers{profiles: map[string]*store.UserProfile{
		"u1": userWithHour("u1", 9),
	}}
	notifier := &fakeNotifier{failNext: 1}
	s := newTestScheduler(users, notifier)
	s.now = func() time.Time { return time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC) }

	s.Sweep(context.Background()) // delivery fails, not marked
	s.Sweep(context.Background()) // retried and delivered
	s.Sweep(context.Background()) // already marked, no refire

	if len(notifier.sent) != 1 {
		t.Fatalf("sent = %d, want 1", len(notifier.sent))
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	users := &fakeUsers{profiles: map[string]*store.UserProfile{}}
	s := newTestScheduler(users, &fakeNotifier{})
	s.interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
