package app

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/osokin/lingvo/internal/dialog"
	"github.com/osokin/lingvo/internal/reminder"
	"github.com/osokin/lingvo/internal/store"
)

// echoHandler replies with the event text.
type echoHandler struct{}

func (echoHandler) Handle(_ context.Context, ev dialog.Event) []dialog.Reply {
	return []dialog.Reply{{Text: "echo: " + ev.Text}}
}

// chanTransport is a channel-backed transport for loop tests.
type chanTransport struct {
	events chan dialog.Event

	mu   sync.Mutex
	sent []dialog.Reply
}

func newChanTransport() *chanTransport {
	return &chanTransport{events: make(chan dialog.Event, 8)}
}

func (c *chanTransport) Events() <-chan dialog.Event { return c.events }

func (c *chanTransport) Send(_ context.Context, _ string, reply dialog.Reply) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, reply)
	return nil
}

func (c *chanTransport) Notify(ctx context.Context, userID, text string) error {
	return c.Send(ctx, userID, dialog.Reply{Text: text})
}

func (c *chanTransport) Close() error {
	close(c.events)
	return nil
}

func (c *chanTransport) replies() []dialog.Reply {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]dialog.Reply(nil), c.sent...)
}

// reminderUsers serves one profile that is always due.
type reminderUsers struct{ due bool }

func (r *reminderUsers) Get(_ context.Context, _ string) (*store.UserProfile, error) {
	return nil, store.ErrNotFound
}
func (r *reminderUsers) Create(_ context.Context, _, _ string) error          { return nil }
func (r *reminderUsers) SetLanguage(_ context.Context, _, _ string) error     { return nil }
func (r *reminderUsers) SetLevel(_ context.Context, _, _ string) error        { return nil }
func (r *reminderUsers) SetReminder(_ context.Context, _ string, _ *int) error { return nil }

func (r *reminderUsers) DueReminders(_ context.Context, _ int, _ string) ([]*store.UserProfile, error) {
	if !r.due {
		return nil, nil
	}
	return []*store.UserProfile{{ID: "u1", Name: "Petrov Ivan"}}, nil
}

func (r *reminderUsers) MarkReminded(_ context.Context, _, _ string) error {
	r.due = false
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRunHandlesEventsAndStopsOnClose(t *testing.T) {
	tr := newChanTransport()
	sched := reminder.NewScheduler(&reminderUsers{}, tr, time.Hour, quietLogger())
	a := New(echoHandler{}, tr, sched, time.Hour, quietLogger())

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	tr.events <- dialog.Event{UserID: "u1", Kind: dialog.KindMessage, Text: "hello"}
	tr.events <- dialog.Event{UserID: "u1", Kind: dialog.KindMessage, Text: "again"}
	_ = tr.Close()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after transport close")
	}

	replies := tr.replies()
	if len(replies) != 2 || replies[0].Text != "echo: hello" {
		t.Errorf("replies = %+v", replies)
	}
}

func TestRunSweepsReminders(t *testing.T) {
	tr := newChanTransport()
	users := &reminderUsers{due: true}
	sched := reminder.NewScheduler(users, tr, time.Hour, quietLogger())
	a := New(echoHandler{}, tr, sched, 5*time.Millisecond, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	deadline := time.After(time.Second)
	for len(tr.replies()) == 0 {
		select {
		case <-deadline:
			t.Fatal("no reminder delivered")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	<-done

	if len(tr.replies()) != 1 {
		t.Errorf("reminders = %d, want exactly 1", len(tr.replies()))
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	tr := newChanTransport()
	sched := reminder.NewScheduler(&reminderUsers{}, tr, time.Hour, quietLogger())
	a := New(echoHandler{}, tr, sched, time.Hour, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}
