// Package render converts typed security events into channel-ready
// text. Rendering is deterministic: report and threat content is built
// entirely from event fields, and the generation timestamps stamped on
// emergency and test messages come from an injectable clock.
package render

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/arkCyber/HunterMatrix/internal/events"
)

const defaultDashboardURL = "http://localhost:8080"

// emergencyListLimit caps the findings shown in an emergency alert.
const emergencyListLimit = 5

// Renderer resolves one template per (event kind, format) pair through
// text/template for plain and markdown output and html/template for the
// styled mail documents.
type Renderer struct {
	text *texttemplate.Template
	html *htmltemplate.Template
	now  func() time.Time
}

// New parses the built-in template set.
func New() (*Renderer, error) {
	return NewWithClock(time.Now)
}

// NewWithClock is New with an explicit clock, fixed in tests.
func NewWithClock(now func() time.Time) (*Renderer, error) {
	text := texttemplate.New("notify")
	for name, body := range map[string]string{
		"report.markdown":    reportMarkdown,
		"report.plain":       reportPlain,
		"threat.markdown":    threatMarkdown,
		"threat.plain":       threatPlain,
		"emergency.markdown": emergencyMarkdown,
		"emergency.plain":    emergencyPlain,
		"test.markdown":      testMarkdown,
		"test.plain":         testPlain,
	} {
		if _, err := text.New(name).Parse(body); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
	}

	html := htmltemplate.New("notify")
	for name, body := range map[string]string{
		"report.html":    reportHTML,
		"threat.html":    threatHTML,
		"emergency.html": emergencyHTML,
		"test.html":      testHTML,
	} {
		if _, err := html.New(name).Parse(body); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
	}

	return &Renderer{text: text, html: html, now: now}, nil
}

// Render produces the subject and body for an event in the requested
// format. Missing optional event fields render as empty segments, never
// as errors; an unknown (kind, format) pair is a template error.
func (r *Renderer) Render(ev events.Event, format Format, opts Options) (Message, error) {
	if opts.DashboardURL == "" {
		opts.DashboardURL = defaultDashboardURL
	}

	var (
		subject string
		data    any
	)
	switch e := ev.(type) {
	case events.ReportEvent:
		subject, data = r.reportData(e, opts)
	case events.ThreatEvent:
		subject, data = r.threatData(e, opts)
	case events.EmergencyEvent:
		subject, data = r.emergencyData(e, opts)
	case events.TestEvent:
		subject, data = r.testData(opts)
	default:
		return Message{}, fmt.Errorf("render: unsupported event kind %q", ev.Kind())
	}

	name := fmt.Sprintf("%s.%s", ev.Kind(), format)
	var buf bytes.Buffer
	var err error
	if format == FormatHTML {
		err = r.html.ExecuteTemplate(&buf, name, data)
	} else {
		err = r.text.ExecuteTemplate(&buf, name, data)
	}
	if err != nil {
		return Message{}, fmt.Errorf("render %s: %w", name, err)
	}

	return Message{
		Subject: subject,
		Body:    strings.TrimRight(buf.String(), "\n"),
		Format:  format,
	}, nil
}

type systemView struct {
	CPU    string
	Memory string
	Disk   string
	Uptime string
}

type reportView struct {
	Emoji           string
	Subtitle        string
	ScannedFiles    uint
	TotalThreats    uint
	HandledThreats  uint
	ScanTime        string
	SuccessRate     string
	ThreatLevel     events.Severity
	Insights        []string
	Recommendations []string
	System          *systemView
	DashboardURL    string
	Timestamp       string
}

func (r *Renderer) reportData(e events.ReportEvent, opts Options) (string, any) {
	subject := "📊 Daily Security Report"
	if e.Timestamp != "" {
		subject = fmt.Sprintf("%s - %s", subject, e.Timestamp)
	}

	view := reportView{
		Subtitle:        e.Subtitle,
		ScannedFiles:    e.ScannedFiles,
		TotalThreats:    e.TotalThreats,
		HandledThreats:  e.HandledThreats,
		ScanTime:        formatFloat(e.ScanTime),
		SuccessRate:     formatFloat(e.SuccessRate),
		ThreatLevel:     e.ThreatLevel,
		Insights:        e.AIInsights,
		Recommendations: e.Recommendations,
		DashboardURL:    opts.DashboardURL,
	}
	if opts.IncludeSeverityEmoji {
		view.Emoji = ReportLevelEmoji(e.ThreatLevel)
	}
	if opts.IncludeTimestamp && e.Timestamp != "" {
		view.Timestamp = "Generated: " + e.Timestamp
	}
	if e.SystemInfo != nil {
		view.System = &systemView{
			CPU:    formatFloat(e.SystemInfo.CPUUsage),
			Memory: formatFloat(e.SystemInfo.MemoryUsage),
			Disk:   formatFloat(e.SystemInfo.DiskUsage),
			Uptime: e.SystemInfo.Uptime,
		}
	}
	return subject, view
}

type threatView struct {
	Emoji        string
	Threat       events.ThreatInfo
	Confidence   string
	DashboardURL string
	Timestamp    string
}

func (r *Renderer) threatData(e events.ThreatEvent, opts Options) (string, any) {
	subject := fmt.Sprintf("🚨 Threat Alert - %s (%s)", e.Threat.ThreatType, e.Threat.Severity)

	view := threatView{
		Threat:       e.Threat,
		Confidence:   formatFloat(e.Threat.Confidence),
		DashboardURL: opts.DashboardURL,
	}
	if opts.IncludeSeverityEmoji {
		view.Emoji = ThreatLevelEmoji(e.Threat.Severity)
	}
	if opts.IncludeTimestamp && e.Threat.DetectionTime != "" {
		view.Timestamp = "Detected: " + e.Threat.DetectionTime
	}
	return subject, view
}

type emergencyThreatView struct {
	ThreatType string
	FilePath   string
	Confidence string
}

type emergencyView struct {
	UrgentCount  int
	TotalCount   int
	Threats      []emergencyThreatView
	DashboardURL string
	Timestamp    string
}

func (r *Renderer) emergencyData(e events.EmergencyEvent, opts Options) (string, any) {
	subject := fmt.Sprintf("🚨🚨 Emergency Security Alert - %d threats", len(e.Threats))

	listed := e.Threats
	if len(listed) > emergencyListLimit {
		listed = listed[:emergencyListLimit]
	}
	threats := make([]emergencyThreatView, 0, len(listed))
	for _, t := range listed {
		threats = append(threats, emergencyThreatView{
			ThreatType: t.ThreatType,
			FilePath:   t.FilePath,
			Confidence: formatFloat(t.Confidence),
		})
	}

	view := emergencyView{
		UrgentCount:  e.UrgentCount(),
		TotalCount:   len(e.Threats),
		Threats:      threats,
		DashboardURL: opts.DashboardURL,
	}
	if opts.IncludeTimestamp {
		view.Timestamp = "Alert time: " + r.now().UTC().Format(time.RFC3339)
	}
	return subject, view
}

type testView struct {
	Origin    Origin
	Timestamp string
}

func (r *Renderer) testData(opts Options) (string, any) {
	view := testView{Origin: opts.Origin}
	if opts.IncludeTimestamp {
		view.Timestamp = "Test time: " + r.now().UTC().Format(time.RFC3339)
	}
	return "🧪 Notification Channel Test", view
}

// formatFloat renders percentages and durations to one decimal place,
// the precision the scanner reports.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.1f", f)
}
