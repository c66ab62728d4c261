package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arkCyber/HunterMatrix/internal/config"
	"github.com/arkCyber/HunterMatrix/internal/transport"
	"github.com/arkCyber/HunterMatrix/pkg/logging"
	"github.com/arkCyber/HunterMatrix/pkg/version"
)

func newRoomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "List the Matrix rooms the configured account has joined",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath())
			if err != nil {
				return err
			}
			if !cfg.Matrix.Enabled {
				return fmt.Errorf("matrix channel is disabled")
			}
			if err := cfg.Validate(config.ChannelChat); err != nil {
				return err
			}

			chat := transport.NewChat(cfg.Matrix, logging.NewLoggerWithService("hmnotify"))
			rooms, err := chat.JoinedRooms(cmd.Context())
			if err != nil {
				return err
			}

			sort.Strings(rooms)
			for _, room := range rooms {
				fmt.Fprintln(cmd.OutOrStdout(), room)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
