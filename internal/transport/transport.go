package transport

import (
	"context"

	"github.com/osokin/lingvo/internal/dialog"
)

// Transport delivers inbound chat events and accepts outbound replies.
// The core never sees protocol framing or delivery details.
type Transport interface {
	// Events yields inbound events, already classified. The channel is
	// closed when the transport shuts down.
	Events() <-chan dialog.Event

	// Send displays a reply, including any keyboard options, to the
	// given user.
	Send(ctx context.Context, userID string, reply dialog.Reply) error

	// Close shuts the transport down.
	Close() error
}
