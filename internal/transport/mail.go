package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/arkCyber/HunterMatrix/internal/config"
	"github.com/arkCyber/HunterMatrix/internal/render"
	"github.com/arkCyber/HunterMatrix/pkg/logging"
)

// Mail delivers messages over SMTP. Every Send opens a call-scoped
// connection to the relay, so the transport itself holds no shared
// mutable state; fan-out is one envelope per recipient.
type Mail struct {
	cfg     config.EmailConfig
	timeout time.Duration
	logger  logging.Logger
}

// NewMail creates the SMTP transport for the configured relay.
func NewMail(cfg config.EmailConfig, logger logging.Logger) *Mail {
	return &Mail{
		cfg:     cfg,
		timeout: sendTimeout(),
		logger:  logger,
	}
}

// Name implements Transport.
func (m *Mail) Name() config.Channel { return config.ChannelMail }

// Send delivers one message to one recipient. The relay endpoint and
// security mode come from the provider preset (or the custom SMTP block):
// implicit TLS wraps the connection before the handshake, opportunistic
// STARTTLS upgrades after EHLO, and plaintext is used otherwise.
func (m *Mail) Send(ctx context.Context, destination string, msg render.Message) error {
	relay := m.cfg.ResolveSMTP()
	addr := net.JoinHostPort(relay.Server, strconv.Itoa(relay.Port))

	dialer := &net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return &Error{Channel: config.ChannelMail, Destination: destination, Err: fmt.Errorf("dial smtp: %w", err)}
	}
	// One deadline covers the whole SMTP conversation for this attempt.
	_ = conn.SetDeadline(time.Now().Add(m.timeout))

	if relay.UseSSL {
		conn = tls.Client(conn, &tls.Config{ServerName: relay.Server})
	}

	client, err := smtp.NewClient(conn, relay.Server)
	if err != nil {
		_ = conn.Close()
		return &Error{Channel: config.ChannelMail, Destination: destination, Err: fmt.Errorf("smtp handshake: %w", err)}
	}
	defer func() { _ = client.Close() }()

	if err := m.deliver(client, relay, destination, msg); err != nil {
		return &Error{Channel: config.ChannelMail, Destination: destination, Err: err}
	}

	m.logger.WithFields(logging.Fields{
		"to":      destination,
		"subject": msg.Subject,
	}).Info("Email sent")

	return client.Quit()
}

func (m *Mail) deliver(client *smtp.Client, relay config.SMTPConfig, destination string, msg render.Message) error {
	if relay.UseTLS && !relay.UseSSL {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: relay.Server}); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		}
	}

	if m.cfg.Auth.Username != "" && m.cfg.Auth.Password != "" {
		auth := smtp.PlainAuth("", m.cfg.Auth.Username, m.cfg.Auth.Password, relay.Server)
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return fmt.Errorf("auth: %w", err)
			}
		}
	}

	if err := client.Mail(m.cfg.Sender.Email); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(destination); err != nil {
		return fmt.Errorf("rcpt to %s: %w: %v", destination, ErrInvalidAddress, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(buildEnvelope(m.cfg.Sender, destination, msg)); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}

// buildEnvelope assembles the RFC 5322 message for one recipient.
func buildEnvelope(sender config.SenderConfig, to string, msg render.Message) []byte {
	fromHeader := sender.Email
	if strings.TrimSpace(sender.Name) != "" {
		fromHeader = fmt.Sprintf("%s <%s>", sender.Name, sender.Email)
	}

	contentType := "text/plain; charset=UTF-8"
	if msg.Format == render.FormatHTML {
		contentType = "text/html; charset=UTF-8"
	}

	lines := []string{
		fmt.Sprintf("From: %s", sanitizeHeader(fromHeader)),
		fmt.Sprintf("To: %s", sanitizeHeader(to)),
		fmt.Sprintf("Subject: %s", mime.QEncoding.Encode("UTF-8", sanitizeHeader(msg.Subject))),
		"MIME-Version: 1.0",
		fmt.Sprintf("Content-Type: %s", contentType),
		"",
		msg.Body,
	}

	return []byte(strings.Join(lines, "\r\n"))
}

func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return s
}
