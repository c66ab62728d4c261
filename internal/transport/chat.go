package transport

import (
	"context"
	"fmt"
	"sync"
	"time"

	"maunium.net/go/mautrix"
	"maunium.net/go/mautrix/event"
	mxfmt "maunium.net/go/mautrix/format"
	"maunium.net/go/mautrix/id"

	"github.com/arkCyber/HunterMatrix/internal/config"
	"github.com/arkCyber/HunterMatrix/internal/render"
	"github.com/arkCyber/HunterMatrix/pkg/logging"
)

// chatAPI is the slice of the Matrix client surface the transport uses.
type chatAPI interface {
	Login(ctx context.Context, req *mautrix.ReqLogin) (*mautrix.RespLogin, error)
	JoinedRooms(ctx context.Context) (*mautrix.RespJoinedRooms, error)
	SendMessageEvent(ctx context.Context, roomID id.RoomID, eventType event.Type, contentJSON interface{}, extra ...mautrix.ReqSendEvent) (*mautrix.RespSendEvent, error)
}

// Chat delivers messages to Matrix rooms. The session is established
// lazily on the first Send and reused afterwards; a failed login leaves
// the transport unauthenticated so a later attempt can try again.
type Chat struct {
	cfg    config.MatrixConfig
	logger logging.Logger

	dial    func() (chatAPI, error)
	timeout time.Duration

	mu     sync.Mutex
	client chatAPI
	joined map[id.RoomID]struct{}
}

// NewChat creates the Matrix transport. No network traffic happens
// until the first Send.
func NewChat(cfg config.MatrixConfig, logger logging.Logger) *Chat {
	return &Chat{
		cfg:    cfg,
		logger: logger,
		dial: func() (chatAPI, error) {
			return mautrix.NewClient(cfg.Homeserver, "", "")
		},
		timeout: sendTimeout(),
	}
}

// Name implements Transport.
func (c *Chat) Name() config.Channel { return config.ChannelChat }

// Send posts one message to one room. Rooms the account has not joined
// are rejected with ErrUnknownRoom; the joined set is refreshed once
// per call before giving up, so invitations accepted since login are
// picked up without restarting.
func (c *Chat) Send(ctx context.Context, destination string, msg render.Message) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := c.session(ctx)
	if err != nil {
		return &Error{Channel: config.ChannelChat, Destination: destination, Err: err}
	}

	roomID := id.RoomID(destination)
	if !c.isJoined(roomID) {
		if err := c.refreshJoined(ctx, client); err != nil {
			return &Error{Channel: config.ChannelChat, Destination: destination, Err: fmt.Errorf("joined rooms: %w", err)}
		}
		if !c.isJoined(roomID) {
			return &Error{Channel: config.ChannelChat, Destination: destination, Err: fmt.Errorf("%w: %s", ErrUnknownRoom, destination)}
		}
	}

	content := buildContent(msg)
	if _, err := client.SendMessageEvent(ctx, roomID, event.EventMessage, &content); err != nil {
		return &Error{Channel: config.ChannelChat, Destination: destination, Err: fmt.Errorf("send event: %w", err)}
	}

	c.logger.WithFields(logging.Fields{
		"room":    destination,
		"subject": msg.Subject,
	}).Info("Matrix message sent")

	return nil
}

// JoinedRooms lists the rooms the configured account is currently in,
// establishing the session first if needed.
func (c *Chat) JoinedRooms(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := c.session(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.refreshJoined(ctx, client); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	rooms := make([]string, 0, len(c.joined))
	for room := range c.joined {
		rooms = append(rooms, string(room))
	}
	return rooms, nil
}

// session returns the authenticated client, logging in on first use.
func (c *Chat) session(ctx context.Context) (chatAPI, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	client, err := c.dial()
	if err != nil {
		return nil, fmt.Errorf("matrix client: %w", err)
	}

	_, err = client.Login(ctx, &mautrix.ReqLogin{
		Type: mautrix.AuthTypePassword,
		Identifier: mautrix.UserIdentifier{
			Type: mautrix.IdentifierTypeUser,
			User: c.cfg.Username,
		},
		Password:                 c.cfg.Password,
		InitialDeviceDisplayName: c.cfg.DeviceName,
		StoreCredentials:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("matrix login: %w", err)
	}

	c.logger.WithFields(logging.Fields{
		"homeserver": c.cfg.Homeserver,
		"user":       c.cfg.Username,
	}).Info("Matrix session established")

	c.client = client
	return client, nil
}

func (c *Chat) isJoined(room id.RoomID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.joined[room]
	return ok
}

func (c *Chat) refreshJoined(ctx context.Context, client chatAPI) error {
	resp, err := client.JoinedRooms(ctx)
	if err != nil {
		return err
	}
	joined := make(map[id.RoomID]struct{}, len(resp.JoinedRooms))
	for _, room := range resp.JoinedRooms {
		joined[room] = struct{}{}
	}
	c.mu.Lock()
	c.joined = joined
	c.mu.Unlock()
	return nil
}

func buildContent(msg render.Message) event.MessageEventContent {
	switch msg.Format {
	case render.FormatHTML:
		return event.MessageEventContent{
			MsgType:       event.MsgText,
			Body:          msg.Subject + "\n" + msg.Body,
			Format:        event.FormatHTML,
			FormattedBody: msg.Body,
		}
	case render.FormatMarkdown:
		return mxfmt.RenderMarkdown(msg.Body, true, false)
	default:
		return event.MessageEventContent{
			MsgType: event.MsgText,
			Body:    msg.Body,
		}
	}
}
