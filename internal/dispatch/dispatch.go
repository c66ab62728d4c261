package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/arkCyber/HunterMatrix/internal/config"
	"github.com/arkCyber/HunterMatrix/internal/events"
	"github.com/arkCyber/HunterMatrix/internal/render"
	"github.com/arkCyber/HunterMatrix/internal/route"
	"github.com/arkCyber/HunterMatrix/internal/transport"
	"github.com/arkCyber/HunterMatrix/pkg/logging"
)

// Status classifies the result of one destination delivery.
type Status string

const (
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// Outcome records what happened to one destination on one channel.
// A skipped channel produces a single Outcome with an empty destination.
type Outcome struct {
	Channel     config.Channel
	Destination string
	Status      Status
	Attempts    uint
	Err         error
}

// Report summarizes one dispatch call across all requested channels.
type Report struct {
	ID       string
	Event    events.Kind
	Outcomes []Outcome
}

// Succeeded reports whether every non-skipped outcome was delivered.
func (r Report) Succeeded() bool {
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			return false
		}
	}
	return true
}

// Service fans events out to the configured channels. Channels are
// processed sequentially in the order requested; within a channel,
// destinations are delivered sequentially so a slow relay cannot
// interleave partial retries across recipients.
type Service struct {
	cfg        config.NotificationConfig
	renderer   *render.Renderer
	transports map[config.Channel]transport.Transport
	logger     logging.Logger
}

// New builds a Service with the real SMTP and Matrix transports.
func New(cfg config.NotificationConfig, logger logging.Logger) (*Service, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	transports := map[config.Channel]transport.Transport{
		config.ChannelMail: transport.NewMail(cfg.Email, logger),
		config.ChannelChat: transport.NewChat(cfg.Matrix, logger),
	}
	return NewWithTransports(cfg, renderer, transports, logger), nil
}

// NewWithTransports wires explicit transports, mainly for tests.
func NewWithTransports(cfg config.NotificationConfig, renderer *render.Renderer, transports map[config.Channel]transport.Transport, logger logging.Logger) *Service {
	return &Service{
		cfg:        cfg,
		renderer:   renderer,
		transports: transports,
		logger:     logger,
	}
}

// Dispatch validates, renders, routes and delivers ev on each requested
// channel. Validation runs for every requested channel before any
// network I/O, so a misconfigured channel aborts the whole call with a
// *config.ConfigError. After validation, channel failures are isolated:
// each one is recorded in the Report and the remaining channels still
// run. Calling with no channels requests both.
func (s *Service) Dispatch(ctx context.Context, ev events.Event, channels ...config.Channel) (Report, error) {
	if len(channels) == 0 {
		channels = []config.Channel{config.ChannelMail, config.ChannelChat}
	}

	for _, ch := range channels {
		if err := s.cfg.Validate(ch); err != nil {
			return Report{}, err
		}
	}

	report := Report{
		ID:    uuid.NewString(),
		Event: ev.Kind(),
	}

	log := s.logger.WithFields(logging.Fields{
		"dispatch_id": report.ID,
		"event":       string(ev.Kind()),
		"severity":    string(ev.Severity()),
	})
	log.Info("Dispatching notification")

	for _, ch := range channels {
		report.Outcomes = append(report.Outcomes, s.dispatchChannel(ctx, ev, ch, log)...)
	}

	log.WithFields(logging.Fields{
		"outcomes":  len(report.Outcomes),
		"succeeded": report.Succeeded(),
	}).Info("Dispatch finished")

	return report, nil
}

func (s *Service) dispatchChannel(ctx context.Context, ev events.Event, ch config.Channel, log *logrus.Entry) []Outcome {
	enabled, buckets, retry := s.channelPlan(ch)
	if !enabled {
		log.WithFields(logging.Fields{"channel": string(ch)}).Debug("Channel disabled, skipping")
		sendTotal.WithLabelValues(string(ch), string(StatusSkipped)).Inc()
		return []Outcome{{Channel: ch, Status: StatusSkipped}}
	}

	tr, ok := s.transports[ch]
	if !ok {
		return []Outcome{{Channel: ch, Status: StatusFailed, Err: fmt.Errorf("no transport for channel %s", ch)}}
	}

	msg, err := s.renderFor(ev, ch)
	if err != nil {
		return []Outcome{{Channel: ch, Status: StatusFailed, Err: fmt.Errorf("render: %w", err)}}
	}

	destinations, err := route.Destinations(ev, buckets)
	if err != nil {
		return []Outcome{{Channel: ch, Status: StatusFailed, Err: err}}
	}

	outcomes := make([]Outcome, 0, len(destinations))
	for _, dest := range destinations {
		outcomes = append(outcomes, s.deliver(ctx, tr, retry, dest, msg, log))
	}
	return outcomes
}

func (s *Service) deliver(ctx context.Context, tr transport.Transport, retry config.RetryPolicy, dest string, msg render.Message, log *logrus.Entry) Outcome {
	ch := tr.Name()
	start := time.Now()

	attempts, err := sendWithRetry(ctx, retry, func(ctx context.Context) error {
		return tr.Send(ctx, dest, msg)
	})

	sendDuration.WithLabelValues(string(ch)).Observe(time.Since(start).Seconds())
	sendAttempts.WithLabelValues(string(ch)).Observe(float64(attempts))

	outcome := Outcome{Channel: ch, Destination: dest, Attempts: attempts}
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		sendTotal.WithLabelValues(string(ch), string(StatusFailed)).Inc()
		log.WithFields(logging.Fields{
			"channel":     string(ch),
			"destination": dest,
			"attempts":    attempts,
			"error":       err.Error(),
		}).Error("Delivery failed")
		return outcome
	}

	outcome.Status = StatusDelivered
	sendTotal.WithLabelValues(string(ch), string(StatusDelivered)).Inc()
	log.WithFields(logging.Fields{
		"channel":     string(ch),
		"destination": dest,
		"attempts":    attempts,
	}).Info("Delivered")
	return outcome
}

// channelPlan resolves the per-channel knobs the dispatcher needs.
func (s *Service) channelPlan(ch config.Channel) (enabled bool, buckets config.Destinations, retry config.RetryPolicy) {
	switch ch {
	case config.ChannelMail:
		return s.cfg.Email.Enabled, s.cfg.Email.Recipients, s.cfg.Email.Retry
	case config.ChannelChat:
		return s.cfg.Matrix.Enabled, s.cfg.Matrix.Rooms, s.cfg.Matrix.Retry
	default:
		return false, config.Destinations{}, config.RetryPolicy{}
	}
}

// renderFor picks the body format a channel wants. Mail is always HTML;
// chat honors the configured format preference and falls back to plain.
func (s *Service) renderFor(ev events.Event, ch config.Channel) (render.Message, error) {
	switch ch {
	case config.ChannelMail:
		opts := render.Options{
			IncludeTimestamp:     s.cfg.Email.Format.IncludeTimestamp,
			IncludeSeverityEmoji: s.cfg.Email.Format.IncludeSeverityEmoji,
			DashboardURL:         s.cfg.Email.DashboardURL,
			Origin: render.Origin{
				Server: s.cfg.Email.ResolveSMTP().Server,
				User:   s.cfg.Email.Auth.Username,
			},
		}
		return s.renderer.Render(ev, render.FormatHTML, opts)
	case config.ChannelChat:
		format := render.FormatPlain
		switch {
		case s.cfg.Matrix.Format.UseHTML:
			format = render.FormatHTML
		case s.cfg.Matrix.Format.UseMarkdown:
			format = render.FormatMarkdown
		}
		opts := render.Options{
			IncludeTimestamp:     s.cfg.Matrix.Format.IncludeTimestamp,
			IncludeSeverityEmoji: s.cfg.Matrix.Format.IncludeSeverityEmoji,
			DashboardURL:         s.cfg.Email.DashboardURL,
			Origin: render.Origin{
				Server: s.cfg.Matrix.Homeserver,
				User:   s.cfg.Matrix.Username,
				Device: s.cfg.Matrix.DeviceName,
			},
		}
		return s.renderer.Render(ev, format, opts)
	default:
		return render.Message{}, fmt.Errorf("unknown channel %s", ch)
	}
}
