package transport

import (
	"bufio"
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/arkCyber/HunterMatrix/internal/config"
	"github.com/arkCyber/HunterMatrix/internal/render"
	"github.com/arkCyber/HunterMatrix/pkg/logging"
)

type smtpCapture struct {
	addr string
	from string
	rcpt string
	data string
	done chan struct{}
}

func startSMTPServer(t *testing.T) (*smtpCapture, func()) {
	t.Helper()

	listener, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen smtp: %v", err)
	}

	capture := &smtpCapture{
		addr: listener.Addr().String(),
		done: make(chan struct{}),
	}

	go func() {
		defer close(capture.done)
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		writer := bufio.NewWriter(conn)
		reader := bufio.NewReader(conn)

		writeLine := func(line string) {
			_, _ = writer.WriteString(line + "\r\n")
			_ = writer.Flush()
		}

		writeLine("220 localhost")

		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			line = strings.TrimRight(line, "\r\n")
			upper := strings.ToUpper(line)

			switch {
			case strings.HasPrefix(upper, "EHLO"), strings.HasPrefix(upper, "HELO"):
				writeLine("250-localhost")
				writeLine("250 OK")
			case strings.HasPrefix(upper, "MAIL FROM:"):
				capture.from = strings.TrimSpace(line[len("MAIL FROM:"):])
				writeLine("250 OK")
			case strings.HasPrefix(upper, "RCPT TO:"):
				capture.rcpt = strings.TrimSpace(line[len("RCPT TO:"):])
				if strings.Contains(capture.rcpt, "reject") {
					writeLine("550 No such user")
					continue
				}
				writeLine("250 OK")
			case strings.HasPrefix(upper, "DATA"):
				writeLine("354 End data with <CR><LF>.<CR><LF>")
				var dataLines []string
				for {
					dataLine, err := reader.ReadString('\n')
					if err != nil {
						return
					}
					dataLine = strings.TrimRight(dataLine, "\r\n")
					if dataLine == "." {
						break
					}
					dataLines = append(dataLines, dataLine)
				}
				capture.data = strings.Join(dataLines, "\n")
				writeLine("250 OK")
			case strings.HasPrefix(upper, "QUIT"):
				writeLine("221 Bye")
				return
			default:
				writeLine("250 OK")
			}
		}
	}()

	return capture, func() { _ = listener.Close() }
}

func mailConfigFor(t *testing.T, addr string) config.EmailConfig {
	t.Helper()

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("split host port: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("parse port: %v", err)
	}

	return config.EmailConfig{
		Enabled:  true,
		Provider: config.ProviderCustom,
		SMTP:     config.SMTPConfig{Server: host, Port: port},
		Sender:   config.SenderConfig{Name: "HunterMatrix Security", Email: "security@example.com"},
	}
}

func TestMailSendDeliversMessage(t *testing.T) {
	capture, stop := startSMTPServer(t)
	defer stop()

	mail := NewMail(mailConfigFor(t, capture.addr), logging.NewLoggerWithService("transport-test"))

	msg := render.Message{
		Subject: "Threat Alert",
		Body:    "<html><body>Trojan.Test found</body></html>",
		Format:  render.FormatHTML,
	}
	if err := mail.Send(context.Background(), "ops@example.com", msg); err != nil {
		t.Fatalf("send: %v", err)
	}

	select {
	case <-capture.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for smtp capture")
	}

	if !strings.Contains(capture.from, "security@example.com") {
		t.Fatalf("expected envelope sender security@example.com, got %q", capture.from)
	}
	if !strings.Contains(capture.rcpt, "ops@example.com") {
		t.Fatalf("expected rcpt ops@example.com, got %q", capture.rcpt)
	}
	if !strings.Contains(capture.data, "From: HunterMatrix Security <security@example.com>") {
		t.Fatalf("expected display-name From header, got:\n%s", capture.data)
	}
	if !strings.Contains(capture.data, "Content-Type: text/html; charset=UTF-8") {
		t.Fatalf("expected html content type, got:\n%s", capture.data)
	}
	if !strings.Contains(capture.data, "Trojan.Test found") {
		t.Fatalf("expected body in data, got:\n%s", capture.data)
	}
}

func TestMailSendRejectedRecipient(t *testing.T) {
	capture, stop := startSMTPServer(t)
	defer stop()

	mail := NewMail(mailConfigFor(t, capture.addr), logging.NewLoggerWithService("transport-test"))

	msg := render.Message{Subject: "Test", Body: "hello", Format: render.FormatPlain}
	err := mail.Send(context.Background(), "reject@example.com", msg)
	if err == nil {
		t.Fatal("expected error for rejected recipient")
	}

	var terr *Error
	if !errors.As(err, &terr) {
		t.Fatalf("expected transport error, got %T", err)
	}
	if terr.Destination != "reject@example.com" {
		t.Fatalf("expected destination in error, got %q", terr.Destination)
	}
	if !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected invalid address sentinel, got %v", err)
	}
}

func TestBuildEnvelopeStripsHeaderInjection(t *testing.T) {
	sender := config.SenderConfig{Name: "Sec", Email: "sec@example.com"}
	msg := render.Message{
		Subject: "Alert\r\nBcc: attacker@example.com",
		Body:    "body",
		Format:  render.FormatPlain,
	}

	data := string(buildEnvelope(sender, "ops@example.com", msg))
	if strings.Contains(data, "Bcc:") {
		t.Fatalf("expected injected header to be stripped:\n%s", data)
	}
}
