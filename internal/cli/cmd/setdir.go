package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wallcycle/wallcycle/internal/cli/cmd/utils"
	"github.com/wallcycle/wallcycle/internal/ipc"
)

func NewSetDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-dir <directory>",
		Short: "Point the daemon at a new wallpaper directory",
		Long: `Rescans the given directory for images and restarts the rotation from
its first entry, which is applied immediately.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := ipc.SendSetDir(utils.Address(), args[0])
			if err != nil {
				log.Fatalf("Failed to send 'set-dir' command: %v", err)
			}
			log.Infof("Now cycling through %s, starting with %s", args[0], resp.Data)
		},
	}
}
