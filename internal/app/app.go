package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/osokin/lingvo/internal/dialog"
	"github.com/osokin/lingvo/internal/reminder"
	"github.com/osokin/lingvo/internal/transport"
)

// Handler processes one inbound event into replies. *dialog.Engine is
// the production implementation.
type Handler interface {
	Handle(ctx context.Context, ev dialog.Event) []dialog.Reply
}

// App runs the chat service: one loop processing inbound events
// serially, with the reminder sweep interleaved on the same loop so no
// two handlers ever run at once.
type App struct {
	engine    Handler
	transport transport.Transport
	scheduler *reminder.Scheduler
	interval  time.Duration
	log       *logrus.Logger
}

// New wires the event loop.
func New(engine Handler, tr transport.Transport, scheduler *reminder.Scheduler, sweepInterval time.Duration, log *logrus.Logger) *App {
	return &App{
		engine:    engine,
		transport: tr,
		scheduler: scheduler,
		interval:  sweepInterval,
		log:       log,
	}
}

// Run processes events until the context is cancelled or the transport
// closes its event channel.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.log.WithField("sweep_interval", a.interval).Info("event loop started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-a.transport.Events():
			if !ok {
				a.log.Info("transport closed, shutting down")
				return nil
			}
			a.handle(ctx, ev)

		case <-ticker.C:
			a.scheduler.Sweep(ctx)
		}
	}
}

func (a *App) handle(ctx context.Context, ev dialog.Event) {
	for _, reply := range a.engine.Handle(ctx, ev) {
		if err := a.transport.Send(ctx, ev.UserID, reply); err != nil {
			a.log.WithError(err).WithField("user", ev.UserID).Warn("sending reply")
		}
	}
}
