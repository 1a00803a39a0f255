package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wallcycle/wallcycle/internal/cli/cmd/utils"
	"github.com/wallcycle/wallcycle/internal/ipc"
)

func NewUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update --wallpaper <path>",
		Short: "Immediately set a specific wallpaper",
		Long: `Applies the given image as the wallpaper right away. The rotation
order is not affected; the next rotation continues where it left off.`,
		Run: func(cmd *cobra.Command, args []string) {
			path, _ := cmd.Flags().GetString("wallpaper")

			resp, err := ipc.SendSetWallpaper(utils.Address(), path)
			if err != nil {
				log.Fatalf("Failed to send 'update' command: %v", err)
			}
			log.Infof("Wallpaper updated to %s", resp.Data)
		},
	}

	cmd.Flags().StringP("wallpaper", "w", "", "The wallpaper to immediately set")
	_ = cmd.MarkFlagRequired("wallpaper")

	return cmd
}
