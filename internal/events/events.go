// Package events defines the security events the notification engine
// delivers: scheduled scan reports, single threat detections, emergency
// alerts carrying multiple findings, and connectivity test messages.
package events

// Severity is the five-level urgency classification attached to
// threat-bearing events. It drives routing and emoji selection.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
	SeverityUnknown  Severity = "unknown"
)

// ParseSeverity maps a raw severity string to the fixed enumeration.
// Matching is case-sensitive; anything outside the enumeration is
// treated as unknown and routed to the default bucket downstream.
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return Severity(s)
	default:
		return SeverityUnknown
	}
}

// Urgent reports whether the severity routes to the emergency bucket.
func (s Severity) Urgent() bool {
	return s == SeverityHigh || s == SeverityCritical
}

// Kind identifies an event variant.
type Kind string

const (
	KindReport    Kind = "report"
	KindThreat    Kind = "threat"
	KindEmergency Kind = "emergency"
	KindTest      Kind = "test"
)

// Event is the tagged union consumed by the dispatcher. Implementations
// are value types; rendering and routing never mutate them.
type Event interface {
	Kind() Kind
	Severity() Severity
}

// ThreatInfo is a single scanner finding.
type ThreatInfo struct {
	ThreatType    string   `json:"threat_type"`
	FilePath      string   `json:"file_path"`
	Severity      Severity `json:"severity"`
	Status        string   `json:"status"`
	DetectionTime string   `json:"detection_time"`
	Confidence    float64  `json:"confidence"`
	Description   string   `json:"description,omitempty"`
}

// SystemInfo is an optional telemetry snapshot embedded in reports.
// Collection happens elsewhere; the engine only renders it.
type SystemInfo struct {
	CPUUsage    float64 `json:"cpu_usage"`
	MemoryUsage float64 `json:"memory_usage"`
	DiskUsage   float64 `json:"disk_usage"`
	Uptime      string  `json:"uptime"`
}

// ReportEvent is a periodic scan summary.
type ReportEvent struct {
	Title           string       `json:"title"`
	Subtitle        string       `json:"subtitle"`
	Timestamp       string       `json:"timestamp"`
	ScannedFiles    uint         `json:"scanned_files"`
	TotalThreats    uint         `json:"total_threats"`
	HandledThreats  uint         `json:"handled_threats"`
	ScanTime        float64      `json:"scan_time"`
	SuccessRate     float64      `json:"success_rate"`
	ThreatLevel     Severity     `json:"threat_level"`
	Threats         []ThreatInfo `json:"threats"`
	AIInsights      []string     `json:"ai_insights"`
	Recommendations []string     `json:"recommendations"`
	SystemInfo      *SystemInfo  `json:"system_info,omitempty"`
}

func (ReportEvent) Kind() Kind { return KindReport }
func (e ReportEvent) Severity() Severity { return e.ThreatLevel }

// ThreatEvent carries exactly one finding.
type ThreatEvent struct {
	Threat ThreatInfo `json:"threat"`
}

func (ThreatEvent) Kind() Kind { return KindThreat }
func (e ThreatEvent) Severity() Severity { return e.Threat.Severity }

// EmergencyEvent carries an ordered sequence of findings.
type EmergencyEvent struct {
	Threats []ThreatInfo `json:"threats"`
}

func (EmergencyEvent) Kind() Kind { return KindEmergency }

// Severity of an emergency is the worst severity among its findings,
// never below high: an emergency alert always routes to the emergency
// bucket.
func (e EmergencyEvent) Severity() Severity {
	worst := SeverityHigh
	for _, t := range e.Threats {
		if t.Severity == SeverityCritical {
			worst = SeverityCritical
		}
	}
	return worst
}

// UrgentCount returns the number of high or critical findings.
func (e EmergencyEvent) UrgentCount() int {
	n := 0
	for _, t := range e.Threats {
		if t.Severity.Urgent() {
			n++
		}
	}
	return n
}

// TestEvent is a connectivity check. It is always routed as low severity
// and goes to the single destination the caller supplies, never to a
// configured bucket.
type TestEvent struct {
	Destination string `json:"destination"`
}

func (TestEvent) Kind() Kind { return KindTest }
func (TestEvent) Severity() Severity { return SeverityLow }
