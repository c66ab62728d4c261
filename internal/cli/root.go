package cli

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arkCyber/HunterMatrix/internal/config"
	"github.com/arkCyber/HunterMatrix/internal/dispatch"
	pkgconfig "github.com/arkCyber/HunterMatrix/pkg/config"
	"github.com/arkCyber/HunterMatrix/pkg/logging"
)

var (
	cfgFile     string
	channelName string
	metricsAddr string
	verbose     bool
)

// NewRootCmd returns the root command for the notification CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hmnotify",
		Short:         "HunterMatrix notification dispatcher",
		Long:          "hmnotify renders security events and delivers them over the configured email and Matrix channels.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.huntermatrix/notify.toml)")
	rootCmd.PersistentFlags().StringVar(&channelName, "channel", "all", "channel to use: email|matrix|all")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while the command runs")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(newTestCmd())
	rootCmd.AddCommand(newThreatCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newEmergencyCmd())
	rootCmd.AddCommand(newRoomsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// configPath resolves the --config flag, falling back to the per-user
// config file when one exists.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".huntermatrix", "notify.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// newService loads the config and builds the dispatcher plus its logger.
func newService() (*dispatch.Service, config.NotificationConfig, logging.Logger, error) {
	logger := logging.NewLoggerWithService("hmnotify")
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	pkgconfig.LoadEnv(logger)

	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, config.NotificationConfig{}, nil, err
	}

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				logger.WithFields(logging.Fields{"addr": metricsAddr, "error": err.Error()}).Warn("Metrics listener stopped")
			}
		}()
	}

	svc, err := dispatch.New(cfg, logger)
	if err != nil {
		return nil, config.NotificationConfig{}, nil, err
	}
	return svc, cfg, logger, nil
}

// selectedChannels maps the --channel flag onto channel identifiers.
func selectedChannels() ([]config.Channel, error) {
	switch strings.ToLower(channelName) {
	case "email", "mail":
		return []config.Channel{config.ChannelMail}, nil
	case "matrix", "chat":
		return []config.Channel{config.ChannelChat}, nil
	case "all", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown channel %q (want email, matrix or all)", channelName)
	}
}

// printReport writes one line per outcome and returns an error when any
// delivery failed, so the process exits non-zero.
func printReport(cmd *cobra.Command, report dispatch.Report) error {
	out := cmd.OutOrStdout()
	for _, o := range report.Outcomes {
		switch o.Status {
		case dispatch.StatusSkipped:
			fmt.Fprintf(out, "%-8s skipped (channel disabled)\n", o.Channel)
		case dispatch.StatusDelivered:
			fmt.Fprintf(out, "%-8s delivered to %s (attempts: %d)\n", o.Channel, o.Destination, o.Attempts)
		case dispatch.StatusFailed:
			dest := o.Destination
			if dest == "" {
				dest = "-"
			}
			fmt.Fprintf(out, "%-8s FAILED for %s: %v\n", o.Channel, dest, o.Err)
		}
	}
	if !report.Succeeded() {
		return fmt.Errorf("dispatch %s finished with failures", report.ID)
	}
	return nil
}
