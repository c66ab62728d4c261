package render

import "github.com/arkCyber/HunterMatrix/internal/events"

// Severity emoji lookups shared by every output format. Reports and
// threat alerts use distinct tables: a high overall threat level on a
// report is shown red, while a single high-severity finding is orange
// to keep red reserved for critical. Both tables are total over the
// five severities; unknown falls through to white.

// ReportLevelEmoji returns the marker for a report's overall threat level.
func ReportLevelEmoji(s events.Severity) string {
	switch s {
	case events.SeverityCritical, events.SeverityHigh:
		return "🔴"
	case events.SeverityMedium:
		return "🟡"
	case events.SeverityLow:
		return "🟢"
	default:
		return "⚪"
	}
}

// ThreatLevelEmoji returns the marker for a single finding's severity.
func ThreatLevelEmoji(s events.Severity) string {
	switch s {
	case events.SeverityCritical:
		return "🔴"
	case events.SeverityHigh:
		return "🟠"
	case events.SeverityMedium:
		return "🟡"
	case events.SeverityLow:
		return "🟢"
	default:
		return "⚪"
	}
}
