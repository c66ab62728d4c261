package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/arkCyber/HunterMatrix/internal/config"
	"github.com/arkCyber/HunterMatrix/internal/dispatch"
)

func TestSelectedChannels(t *testing.T) {
	cases := []struct {
		flag string
		want []config.Channel
	}{
		{"email", []config.Channel{config.ChannelMail}},
		{"mail", []config.Channel{config.ChannelMail}},
		{"matrix", []config.Channel{config.ChannelChat}},
		{"all", nil},
	}
	for _, tc := range cases {
		channelName = tc.flag
		got, err := selectedChannels()
		if err != nil {
			t.Fatalf("%s: %v", tc.flag, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.flag, tc.want, got)
		}
	}

	channelName = "pager"
	if _, err := selectedChannels(); err == nil {
		t.Fatal("expected error for unknown channel flag")
	}
	channelName = "all"
}

func TestPrintReportFailure(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	report := dispatch.Report{
		ID: "test-id",
		Outcomes: []dispatch.Outcome{
			{Channel: config.ChannelMail, Destination: "ops@example.com", Status: dispatch.StatusDelivered, Attempts: 1},
			{Channel: config.ChannelChat, Status: dispatch.StatusFailed, Err: errors.New("login refused")},
		},
	}

	err := printReport(cmd, report)
	if err == nil {
		t.Fatal("expected non-nil error when a delivery failed")
	}

	text := out.String()
	if !strings.Contains(text, "delivered to ops@example.com") {
		t.Fatalf("expected delivered line, got:\n%s", text)
	}
	if !strings.Contains(text, "FAILED") {
		t.Fatalf("expected failure line, got:\n%s", text)
	}
}

func TestPrintReportAllSkipped(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	report := dispatch.Report{
		ID: "test-id",
		Outcomes: []dispatch.Outcome{
			{Channel: config.ChannelMail, Status: dispatch.StatusSkipped},
			{Channel: config.ChannelChat, Status: dispatch.StatusSkipped},
		},
	}

	if err := printReport(cmd, report); err != nil {
		t.Fatalf("skipped-only report must not fail the command: %v", err)
	}
}
