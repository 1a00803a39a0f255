package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wallcycle/wallcycle/internal/cli/cmd/utils"
	"github.com/wallcycle/wallcycle/internal/ipc"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get wallcycle status",
		Long:  `Returns the current status of the wallcycle daemon.`,
		Run: func(cmd *cobra.Command, args []string) {
			status, err := ipc.SendStatus(utils.Address())
			if err != nil {
				log.Fatalf("Failed to get status: %v", err)
			}
			utils.PrintJSONColored(status)
		},
	}
}
