package route

import (
	"errors"
	"testing"

	"github.com/arkCyber/HunterMatrix/internal/config"
	"github.com/arkCyber/HunterMatrix/internal/events"
)

var testBuckets = config.Destinations{
	Default:   []string{"ops@example.com"},
	Emergency: []string{"oncall@example.com", "ciso@example.com"},
	Reports:   []string{"reports@example.com"},
}

func threatAt(sev events.Severity) events.ThreatEvent {
	return events.ThreatEvent{Threat: events.ThreatInfo{
		ThreatType: "Trojan.Generic",
		FilePath:   "/tmp/sample.bin",
		Severity:   sev,
	}}
}

func TestDestinationsThreatBySeverity(t *testing.T) {
	cases := []struct {
		severity events.Severity
		want     []string
	}{
		{events.SeverityLow, testBuckets.Default},
		{events.SeverityMedium, testBuckets.Default},
		{events.SeverityHigh, testBuckets.Emergency},
		{events.SeverityCritical, testBuckets.Emergency},
		{events.SeverityUnknown, testBuckets.Default},
	}

	for _, tc := range cases {
		t.Run(string(tc.severity), func(t *testing.T) {
			got, err := Destinations(threatAt(tc.severity), testBuckets)
			if err != nil {
				t.Fatalf("route: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestDestinationsCaseSensitiveSeverity(t *testing.T) {
	// "High" is not a member of the enumeration and parses as unknown,
	// which routes to default rather than emergency.
	ev := threatAt(events.ParseSeverity("High"))
	got, err := Destinations(ev, testBuckets)
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	if got[0] != "ops@example.com" {
		t.Fatalf("expected default bucket for unparsed severity, got %v", got)
	}
}

func TestDestinationsReportIgnoresSeverity(t *testing.T) {
	ev := events.ReportEvent{
		ThreatLevel: events.SeverityCritical,
		Threats:     []events.ThreatInfo{threatAt(events.SeverityCritical).Threat},
	}
	got, err := Destinations(ev, testBuckets)
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	if len(got) != 1 || got[0] != "reports@example.com" {
		t.Fatalf("expected reports bucket regardless of severity, got %v", got)
	}
}

func TestDestinationsEmergencyAlwaysUrgent(t *testing.T) {
	ev := events.EmergencyEvent{Threats: []events.ThreatInfo{
		threatAt(events.SeverityMedium).Threat,
	}}
	got, err := Destinations(ev, testBuckets)
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	if got[0] != "oncall@example.com" {
		t.Fatalf("expected emergency bucket, got %v", got)
	}
}

func TestDestinationsTestEventExplicit(t *testing.T) {
	got, err := Destinations(events.TestEvent{Destination: "!probe:example.org"}, testBuckets)
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	if len(got) != 1 || got[0] != "!probe:example.org" {
		t.Fatalf("expected explicit destination only, got %v", got)
	}
}

func TestDestinationsTestEventMissingDestination(t *testing.T) {
	_, err := Destinations(events.TestEvent{}, testBuckets)
	var rerr *RoutingError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected routing error, got %v", err)
	}
}

func TestDestinationsEmptyBucket(t *testing.T) {
	empty := config.Destinations{Emergency: []string{"oncall@example.com"}}
	_, err := Destinations(threatAt(events.SeverityLow), empty)
	var rerr *RoutingError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected routing error, got %v", err)
	}
	if rerr.Bucket != BucketDefault {
		t.Fatalf("expected default bucket in error, got %s", rerr.Bucket)
	}
}

func TestDestinationsCopyIsolation(t *testing.T) {
	got, err := Destinations(threatAt(events.SeverityHigh), testBuckets)
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	got[0] = "mutated@example.com"
	if testBuckets.Emergency[0] != "oncall@example.com" {
		t.Fatal("routing result must not alias the configured bucket")
	}
}
