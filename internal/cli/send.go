package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arkCyber/HunterMatrix/internal/events"
)

func newTestCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Send a test message to a single destination",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := newService()
			if err != nil {
				return err
			}
			channels, err := selectedChannels()
			if err != nil {
				return err
			}

			ev := events.TestEvent{Destination: to}
			report, err := svc.Dispatch(cmd.Context(), ev, channels...)
			if err != nil {
				return err
			}
			return printReport(cmd, report)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "destination address or room ID (required)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newThreatCmd() *cobra.Command {
	var (
		threatType  string
		filePath    string
		severity    string
		status      string
		confidence  float64
		description string
	)

	cmd := &cobra.Command{
		Use:   "threat",
		Short: "Send a single threat alert",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := newService()
			if err != nil {
				return err
			}
			channels, err := selectedChannels()
			if err != nil {
				return err
			}

			ev := events.ThreatEvent{Threat: events.ThreatInfo{
				ThreatType:    threatType,
				FilePath:      filePath,
				Severity:      events.ParseSeverity(severity),
				Status:        status,
				DetectionTime: time.Now().UTC().Format(time.RFC3339),
				Confidence:    confidence,
				Description:   description,
			}}
			report, err := svc.Dispatch(cmd.Context(), ev, channels...)
			if err != nil {
				return err
			}
			return printReport(cmd, report)
		},
	}

	cmd.Flags().StringVar(&threatType, "type", "", "threat type, e.g. Trojan.Generic (required)")
	cmd.Flags().StringVar(&filePath, "file", "", "path of the affected file (required)")
	cmd.Flags().StringVar(&severity, "severity", "medium", "severity: low|medium|high|critical")
	cmd.Flags().StringVar(&status, "status", "detected", "handling status, e.g. detected|quarantined|removed")
	cmd.Flags().Float64Var(&confidence, "confidence", 0, "detection confidence in percent")
	cmd.Flags().StringVar(&description, "description", "", "free-form detail")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newReportCmd() *cobra.Command {
	var jsonPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Send a scan report loaded from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := newService()
			if err != nil {
				return err
			}
			channels, err := selectedChannels()
			if err != nil {
				return err
			}

			var ev events.ReportEvent
			if err := readEventJSON(jsonPath, &ev); err != nil {
				return err
			}
			if ev.Timestamp == "" {
				ev.Timestamp = time.Now().UTC().Format(time.RFC3339)
			}

			report, err := svc.Dispatch(cmd.Context(), ev, channels...)
			if err != nil {
				return err
			}
			return printReport(cmd, report)
		},
	}

	cmd.Flags().StringVar(&jsonPath, "json", "", "path to the report JSON (required)")
	_ = cmd.MarkFlagRequired("json")

	return cmd
}

func newEmergencyCmd() *cobra.Command {
	var jsonPath string

	cmd := &cobra.Command{
		Use:   "emergency",
		Short: "Send an emergency alert for a batch of findings",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := newService()
			if err != nil {
				return err
			}
			channels, err := selectedChannels()
			if err != nil {
				return err
			}

			var threats []events.ThreatInfo
			if err := readEventJSON(jsonPath, &threats); err != nil {
				return err
			}
			if len(threats) == 0 {
				return fmt.Errorf("%s contains no findings", jsonPath)
			}

			report, err := svc.Dispatch(cmd.Context(), events.EmergencyEvent{Threats: threats}, channels...)
			if err != nil {
				return err
			}
			return printReport(cmd, report)
		},
	}

	cmd.Flags().StringVar(&jsonPath, "json", "", "path to a JSON array of findings (required)")
	_ = cmd.MarkFlagRequired("json")

	return cmd
}

func readEventJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
