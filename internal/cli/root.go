package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wallcycle/wallcycle"
	"github.com/wallcycle/wallcycle/internal/cli/cmd"
	"github.com/wallcycle/wallcycle/internal/cli/cmd/utils"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wallcycle",
	Short: "A wallpaper rotation daemon with a local control socket",
	Long: `Wallcycle cycles your desktop wallpaper through a directory of images
on a timer. A running daemon is controlled with the update, next, get-dir,
set-dir, ping and kill subcommands over a local TCP connection.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if v, err := cmd.Flags().GetBool("version"); err == nil && v {
			printVersion()
			return
		}

		if v, err := cmd.Flags().GetBool("install-config"); err == nil && v {
			utils.InstallDefaultConfig()
			return
		}

		_ = cmd.Help()
	},
}

func printVersion() {
	babyBlue := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
	log.Infof("%v version %v",
		babyBlue.Render("wallcycle"),
		green.Render(strings.Trim(wallcycle.Version, "\n\r ")))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var cfgFile string

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/wallcycle/wallcycle.toml)")
	rootCmd.PersistentFlags().String("addr", "127.0.0.1", "Address the daemon listens on")
	rootCmd.PersistentFlags().Int("port", 6969, "Port the daemon listens on")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show all logs")
	rootCmd.PersistentFlags().Bool("install-config", false, "Install a default config file")
	rootCmd.PersistentFlags().Bool("version", false, "Print version")

	_ = viper.BindPFlag("addr", rootCmd.PersistentFlags().Lookup("addr"))
	_ = viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(
		cmd.NewStartCmd(),
		cmd.NewUpdateCmd(),
		cmd.NewNextCmd(),
		cmd.NewGetDirCmd(),
		cmd.NewSetDirCmd(),
		cmd.NewPingCmd(),
		cmd.NewKillCmd(),
		cmd.NewStatusCmd(),
		cmd.NewGenManCmd(rootCmd),
	)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("wallcycle")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/wallcycle")
		viper.AddConfigPath("/etc/xdg/wallcycle")
	}

	viper.SetDefault("addr", "127.0.0.1")
	viper.SetDefault("port", 6969)
	viper.SetDefault("duration", 300)
	viper.SetDefault("set_command", "")
	viper.SetDefault("verbose", false)

	viper.AutomaticEnv() // read environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cobra.CheckErr(err)
		}
	}
}
