// Package route maps an event's kind and severity to the destination
// bucket of a channel. Routing is pure: it inspects the event and the
// configured buckets and never performs I/O.
package route

import (
	"fmt"

	"github.com/arkCyber/HunterMatrix/internal/config"
	"github.com/arkCyber/HunterMatrix/internal/events"
)

// Bucket names one of the configured destination groups.
type Bucket string

const (
	BucketDefault   Bucket = "default"
	BucketEmergency Bucket = "emergency"
	BucketReports   Bucket = "reports"
)

// RoutingError indicates the resolved bucket held no destinations.
// It is fatal for the channel being routed but never retried.
type RoutingError struct {
	Bucket Bucket
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("no destinations configured in %s bucket", e.Bucket)
}

// Destinations resolves the delivery targets for an event within one
// channel's bucket set.
//
// Threat and emergency events at high or critical severity go to the
// emergency bucket; every other threat severity, including unknown,
// goes to default. Reports always go to the reports bucket regardless
// of the severities inside them. Test events carry their single
// destination explicitly and never consult the buckets.
func Destinations(ev events.Event, buckets config.Destinations) ([]string, error) {
	switch e := ev.(type) {
	case events.TestEvent:
		if e.Destination == "" {
			return nil, &RoutingError{Bucket: BucketDefault}
		}
		return []string{e.Destination}, nil
	case events.ReportEvent:
		return pick(BucketReports, buckets.Reports)
	default:
		if ev.Severity().Urgent() {
			return pick(BucketEmergency, buckets.Emergency)
		}
		return pick(BucketDefault, buckets.Default)
	}
}

func pick(name Bucket, destinations []string) ([]string, error) {
	if len(destinations) == 0 {
		return nil, &RoutingError{Bucket: name}
	}
	out := make([]string, len(destinations))
	copy(out, destinations)
	return out, nil
}
