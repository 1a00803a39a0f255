package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wallcycle/wallcycle/internal/cli/cmd/utils"
	"github.com/wallcycle/wallcycle/internal/ipc"
)

func NewNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Switch to the next wallpaper",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := ipc.SendNext(utils.Address())
			if err != nil {
				log.Fatalf("Failed to send 'next' command: %v", err)
			}
			log.Infof("Now showing %s", resp.Data)
		},
	}
}
