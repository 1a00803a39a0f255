package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wallcycle/wallcycle/internal/cli/cmd/utils"
	"github.com/wallcycle/wallcycle/internal/ipc"
)

func NewPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check whether the daemon is running",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := ipc.SendPing(utils.Address())
			if err != nil {
				log.Fatalf("Daemon is not reachable: %v", err)
			}
			log.Info(resp.Message)
		},
	}
}
