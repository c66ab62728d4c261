// Package transport holds the delivery channels: an SMTP mail relay and
// a Matrix chat session. A transport performs exactly one outbound write
// attempt per Send call; retries belong to the dispatcher.
package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arkCyber/HunterMatrix/internal/config"
	"github.com/arkCyber/HunterMatrix/internal/render"
	pkgconfig "github.com/arkCyber/HunterMatrix/pkg/config"
)

// defaultTimeout bounds a single send attempt. A hung relay or
// homeserver must not stall unrelated dispatch calls.
const defaultTimeout = 30 * time.Second

// sendTimeout returns the per-attempt deadline, overridable through
// NOTIFY_SEND_TIMEOUT for slow relays.
func sendTimeout() time.Duration {
	return pkgconfig.GetEnvDuration("NOTIFY_SEND_TIMEOUT", defaultTimeout)
}

// Sentinel causes for permanently-bad destinations. They are still
// ordinary transport errors to the retry layer, which retries them
// uniformly (matching the reference behavior).
var (
	ErrUnknownRoom    = errors.New("unknown room")
	ErrInvalidAddress = errors.New("invalid address")
)

// Transport is the polymorphic send capability of one channel.
type Transport interface {
	// Name identifies the channel in outcomes and logs.
	Name() config.Channel

	// Send delivers one rendered message to one destination. Exactly
	// one network write attempt; the error is retryable by the caller.
	Send(ctx context.Context, destination string, msg render.Message) error
}

// Error wraps a failed send with its channel and destination.
type Error struct {
	Channel     config.Channel
	Destination string
	Err         error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s send to %s: %v", e.Channel, e.Destination, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
