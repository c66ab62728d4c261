// Package config holds the notification engine's configuration: one
// section per delivery channel plus the shared retry policy. Values are
// loaded from TOML files with environment overrides layered on top; a
// fresh config may be loaded per dispatch call, so nothing here caches.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/arkCyber/HunterMatrix/pkg/config"
)

// Channel names a delivery medium.
type Channel string

const (
	ChannelMail Channel = "email"
	ChannelChat Channel = "matrix"
)

// NotificationConfig is the root configuration consumed by the dispatcher.
type NotificationConfig struct {
	Email  EmailConfig  `toml:"email"`
	Matrix MatrixConfig `toml:"matrix"`
}

// EmailConfig configures the SMTP channel.
type EmailConfig struct {
	Enabled      bool         `toml:"enabled"`
	Provider     Provider     `toml:"provider"`
	SMTP         SMTPConfig   `toml:"smtp"`
	Auth         AuthConfig   `toml:"auth"`
	Sender       SenderConfig `toml:"sender"`
	Recipients   Destinations `toml:"recipients"`
	Format       Format       `toml:"format"`
	Retry        RetryPolicy  `toml:"retry"`
	DashboardURL string       `toml:"dashboard_url"`
}

// MatrixConfig configures the federated chat channel.
type MatrixConfig struct {
	Enabled    bool         `toml:"enabled"`
	Homeserver string       `toml:"homeserver"`
	Username   string       `toml:"username"`
	Password   string       `toml:"password"`
	DeviceName string       `toml:"device_name"`
	Rooms      Destinations `toml:"rooms"`
	Format     Format       `toml:"format"`
	Retry      RetryPolicy  `toml:"retry"`
}

// SMTPConfig is the relay endpoint used when Provider is "custom";
// known providers override it with their presets.
type SMTPConfig struct {
	Server string `toml:"server"`
	Port   int    `toml:"port"`
	UseTLS bool   `toml:"use_tls"` // opportunistic STARTTLS
	UseSSL bool   `toml:"use_ssl"` // implicit TLS
}

// AuthConfig carries channel credentials.
type AuthConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// SenderConfig is the mail sender identity.
type SenderConfig struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// Destinations are the four named buckets of a channel. Order within a
// bucket is irrelevant; the admin bucket is reserved for operator-driven
// messages and is not consulted by severity routing.
type Destinations struct {
	Default   []string `toml:"default"`
	Emergency []string `toml:"emergency"`
	Reports   []string `toml:"reports"`
	Admin     []string `toml:"admin"`
}

// Format carries the rendering preferences of a channel.
type Format struct {
	UseMarkdown          bool `toml:"use_markdown"`
	UseHTML              bool `toml:"use_html"`
	IncludeTimestamp     bool `toml:"include_timestamp"`
	IncludeSeverityEmoji bool `toml:"include_severity_emoji"`
}

// RetryPolicy bounds delivery attempts per destination. The wire shape
// keeps delay as whole seconds, matching the persisted settings format.
type RetryPolicy struct {
	MaxAttempts  uint `toml:"max_attempts"`
	DelaySeconds uint `toml:"delay_seconds"`
}

// Delay returns the inter-attempt pause as a duration.
func (p RetryPolicy) Delay() time.Duration {
	return time.Duration(p.DelaySeconds) * time.Second
}

// Default returns the configuration used before any operator setup:
// both channels disabled, gmail preset, markdown and emoji on.
func Default() NotificationConfig {
	return NotificationConfig{
		Email: EmailConfig{
			Enabled:  false,
			Provider: ProviderGmail,
			SMTP:     ProviderGmail.Preset(),
			Sender:   SenderConfig{Name: "HunterMatrix Security"},
			Format: Format{
				IncludeTimestamp:     true,
				IncludeSeverityEmoji: true,
			},
			Retry:        RetryPolicy{MaxAttempts: 3, DelaySeconds: 5},
			DashboardURL: "http://localhost:8080",
		},
		Matrix: MatrixConfig{
			Enabled:    false,
			Homeserver: "https://matrix.org",
			DeviceName: "AI-Security-Bot",
			Format: Format{
				UseMarkdown:          true,
				IncludeTimestamp:     true,
				IncludeSeverityEmoji: true,
			},
			Retry: RetryPolicy{MaxAttempts: 3, DelaySeconds: 5},
		},
	}
}

// LoadFile reads a TOML config file over the defaults.
func LoadFile(path string) (NotificationConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv applies environment overrides on top of cfg. Secrets are the
// usual case: operators keep credentials out of the config file.
func LoadEnv(cfg NotificationConfig) NotificationConfig {
	cfg.Email.Enabled = config.GetEnvBool("NOTIFY_EMAIL_ENABLED", cfg.Email.Enabled)
	cfg.Email.Provider = Provider(config.GetEnv("NOTIFY_EMAIL_PROVIDER", string(cfg.Email.Provider)))
	cfg.Email.SMTP.Server = config.GetEnv("SMTP_SERVER", cfg.Email.SMTP.Server)
	cfg.Email.SMTP.Port = config.GetEnvInt("SMTP_PORT", cfg.Email.SMTP.Port)
	cfg.Email.Auth.Username = config.GetEnv("SMTP_USERNAME", cfg.Email.Auth.Username)
	cfg.Email.Auth.Password = config.GetEnv("SMTP_PASSWORD", cfg.Email.Auth.Password)
	cfg.Email.Sender.Name = config.GetEnv("NOTIFY_SENDER_NAME", cfg.Email.Sender.Name)
	cfg.Email.Sender.Email = config.GetEnv("NOTIFY_SENDER_EMAIL", cfg.Email.Sender.Email)
	cfg.Email.Recipients.Default = config.GetEnvList("NOTIFY_RECIPIENTS_DEFAULT", cfg.Email.Recipients.Default)
	cfg.Email.Recipients.Emergency = config.GetEnvList("NOTIFY_RECIPIENTS_EMERGENCY", cfg.Email.Recipients.Emergency)
	cfg.Email.Recipients.Reports = config.GetEnvList("NOTIFY_RECIPIENTS_REPORTS", cfg.Email.Recipients.Reports)
	cfg.Email.Retry.MaxAttempts = uint(config.GetEnvInt("NOTIFY_RETRY_MAX_ATTEMPTS", int(cfg.Email.Retry.MaxAttempts)))
	cfg.Email.Retry.DelaySeconds = uint(config.GetEnvInt("NOTIFY_RETRY_DELAY_SECONDS", int(cfg.Email.Retry.DelaySeconds)))

	cfg.Matrix.Enabled = config.GetEnvBool("NOTIFY_MATRIX_ENABLED", cfg.Matrix.Enabled)
	cfg.Matrix.Homeserver = config.GetEnv("MATRIX_HOMESERVER", cfg.Matrix.Homeserver)
	cfg.Matrix.Username = config.GetEnv("MATRIX_USERNAME", cfg.Matrix.Username)
	cfg.Matrix.Password = config.GetEnv("MATRIX_PASSWORD", cfg.Matrix.Password)
	cfg.Matrix.DeviceName = config.GetEnv("MATRIX_DEVICE_NAME", cfg.Matrix.DeviceName)
	cfg.Matrix.Rooms.Default = config.GetEnvList("MATRIX_ROOMS_DEFAULT", cfg.Matrix.Rooms.Default)
	cfg.Matrix.Rooms.Emergency = config.GetEnvList("MATRIX_ROOMS_EMERGENCY", cfg.Matrix.Rooms.Emergency)
	cfg.Matrix.Rooms.Reports = config.GetEnvList("MATRIX_ROOMS_REPORTS", cfg.Matrix.Rooms.Reports)
	cfg.Matrix.Retry.MaxAttempts = uint(config.GetEnvInt("NOTIFY_RETRY_MAX_ATTEMPTS", int(cfg.Matrix.Retry.MaxAttempts)))
	cfg.Matrix.Retry.DelaySeconds = uint(config.GetEnvInt("NOTIFY_RETRY_DELAY_SECONDS", int(cfg.Matrix.Retry.DelaySeconds)))

	return cfg
}

// Load builds the effective config: defaults, then the optional file,
// then environment overrides.
func Load(path string) (NotificationConfig, error) {
	cfg := Default()
	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	return LoadEnv(cfg), nil
}
