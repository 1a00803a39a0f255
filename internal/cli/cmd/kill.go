package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wallcycle/wallcycle/internal/cli/cmd/utils"
	"github.com/wallcycle/wallcycle/internal/ipc"
)

func NewKillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kill",
		Short: "Stop the wallcycle daemon",
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := ipc.SendKill(utils.Address()); err != nil {
				log.Fatalf("Failed to send 'kill' command: %v", err)
			}
			log.Info("Kill command sent")
		},
	}
}
