package config

import (
	"fmt"
	"strings"
)

// ConfigError reports the first invariant a channel's configuration
// violates. Validation is fail-fast and side-effect free: the dispatcher
// aborts the whole call on the first violation, before any network I/O.
type ConfigError struct {
	Channel Channel
	Field   string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s config: %s: %s", e.Channel, e.Field, e.Reason)
}

// Validate checks the named channel's configuration for completeness and
// well-formed addressing. Disabled channels validate trivially. Mail
// recipients are not syntax-checked here; the relay rejects bad
// addresses at send time.
func (c NotificationConfig) Validate(channel Channel) error {
	switch channel {
	case ChannelMail:
		return c.validateEmail()
	case ChannelChat:
		return c.validateMatrix()
	default:
		return &ConfigError{Channel: channel, Field: "channel", Reason: "unknown channel"}
	}
}

func (c NotificationConfig) validateEmail() error {
	cfg := c.Email
	if !cfg.Enabled {
		return nil
	}
	if cfg.Auth.Username == "" {
		return &ConfigError{Channel: ChannelMail, Field: "auth.username", Reason: "must not be empty"}
	}
	if cfg.Auth.Password == "" {
		return &ConfigError{Channel: ChannelMail, Field: "auth.password", Reason: "must not be empty"}
	}
	if cfg.Sender.Email == "" {
		return &ConfigError{Channel: ChannelMail, Field: "sender.email", Reason: "must not be empty"}
	}
	if len(cfg.Recipients.Default) == 0 {
		return &ConfigError{Channel: ChannelMail, Field: "recipients.default", Reason: "at least one default recipient is required"}
	}
	if cfg.Retry.MaxAttempts < 1 {
		return &ConfigError{Channel: ChannelMail, Field: "retry.max_attempts", Reason: "must be at least 1"}
	}
	return nil
}

func (c NotificationConfig) validateMatrix() error {
	cfg := c.Matrix
	if !cfg.Enabled {
		return nil
	}
	if cfg.Homeserver == "" {
		return &ConfigError{Channel: ChannelChat, Field: "homeserver", Reason: "must not be empty"}
	}
	if cfg.Username == "" {
		return &ConfigError{Channel: ChannelChat, Field: "username", Reason: "must not be empty"}
	}
	if cfg.Password == "" {
		return &ConfigError{Channel: ChannelChat, Field: "password", Reason: "must not be empty"}
	}
	if len(cfg.Rooms.Default) == 0 {
		return &ConfigError{Channel: ChannelChat, Field: "rooms.default", Reason: "at least one default room is required"}
	}
	if cfg.Retry.MaxAttempts < 1 {
		return &ConfigError{Channel: ChannelChat, Field: "retry.max_attempts", Reason: "must be at least 1"}
	}

	buckets := []struct {
		field string
		rooms []string
	}{
		{"rooms.default", cfg.Rooms.Default},
		{"rooms.emergency", cfg.Rooms.Emergency},
		{"rooms.reports", cfg.Rooms.Reports},
		{"rooms.admin", cfg.Rooms.Admin},
	}
	for _, b := range buckets {
		field := b.field
		for _, room := range b.rooms {
			if room == "" {
				continue
			}
			if !strings.HasPrefix(room, "!") {
				return &ConfigError{
					Channel: ChannelChat,
					Field:   field,
					Reason:  fmt.Sprintf("invalid room identifier %q: must start with '!'", room),
				}
			}
		}
	}
	return nil
}
