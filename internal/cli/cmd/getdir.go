package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wallcycle/wallcycle/internal/cli/cmd/utils"
	"github.com/wallcycle/wallcycle/internal/ipc"
)

func NewGetDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-dir",
		Short: "Print the directory the daemon is cycling through",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := ipc.SendGetDir(utils.Address())
			if err != nil {
				log.Fatalf("Failed to send 'get-dir' command: %v", err)
			}
			fmt.Println(resp.Data)
		},
	}
}
