package config

import (
	"errors"
	"testing"
)

func validMailConfig() NotificationConfig {
	cfg := Default()
	cfg.Email.Enabled = true
	cfg.Email.Auth = AuthConfig{Username: "bot@example.com", Password: "app-password"}
	cfg.Email.Sender.Email = "bot@example.com"
	cfg.Email.Recipients.Default = []string{"ops@example.com"}
	return cfg
}

func validChatConfig() NotificationConfig {
	cfg := Default()
	cfg.Matrix.Enabled = true
	cfg.Matrix.Homeserver = "https://matrix.example.org"
	cfg.Matrix.Username = "@bot:example.org"
	cfg.Matrix.Password = "secret"
	cfg.Matrix.Rooms.Default = []string{"!sec:example.org"}
	return cfg
}

func assertConfigError(t *testing.T, err error, field string) {
	t.Helper()
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected config error, got %v", err)
	}
	if cerr.Field != field {
		t.Fatalf("expected violation on %s, got %s", field, cerr.Field)
	}
}

func TestValidateDisabledChannelsPass(t *testing.T) {
	cfg := Default()
	for _, ch := range []Channel{ChannelMail, ChannelChat} {
		if err := cfg.Validate(ch); err != nil {
			t.Fatalf("disabled %s should validate, got %v", ch, err)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if err := validMailConfig().Validate(ChannelMail); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg := validMailConfig()
	cfg.Email.Auth.Password = ""
	assertConfigError(t, cfg.Validate(ChannelMail), "auth.password")

	cfg = validMailConfig()
	cfg.Email.Recipients.Default = nil
	assertConfigError(t, cfg.Validate(ChannelMail), "recipients.default")

	cfg = validMailConfig()
	cfg.Email.Retry.MaxAttempts = 0
	assertConfigError(t, cfg.Validate(ChannelMail), "retry.max_attempts")
}

func TestValidateMatrix(t *testing.T) {
	if err := validChatConfig().Validate(ChannelChat); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg := validChatConfig()
	cfg.Matrix.Homeserver = ""
	assertConfigError(t, cfg.Validate(ChannelChat), "homeserver")

	cfg = validChatConfig()
	cfg.Matrix.Rooms.Default = nil
	assertConfigError(t, cfg.Validate(ChannelChat), "rooms.default")
}

func TestValidateMatrixRoomSigil(t *testing.T) {
	cfg := validChatConfig()
	cfg.Matrix.Rooms.Emergency = []string{"#alias:example.org"}
	assertConfigError(t, cfg.Validate(ChannelChat), "rooms.emergency")

	// Mail addresses are not syntax-checked at this layer.
	mail := validMailConfig()
	mail.Email.Recipients.Default = []string{"not-an-address"}
	if err := mail.Validate(ChannelMail); err != nil {
		t.Fatalf("mail recipients must not be syntax-checked, got %v", err)
	}
}

func TestValidateFailsFastOnFirstViolation(t *testing.T) {
	cfg := validChatConfig()
	cfg.Matrix.Username = ""
	cfg.Matrix.Password = ""

	assertConfigError(t, cfg.Validate(ChannelChat), "username")
}

func TestValidateUnknownChannel(t *testing.T) {
	var cerr *ConfigError
	if !errors.As(Default().Validate("pager"), &cerr) {
		t.Fatal("expected config error for unknown channel")
	}
}
