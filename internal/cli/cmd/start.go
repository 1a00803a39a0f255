package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	godaemon "github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wallcycle/wallcycle/internal/cli/cmd/utils"
	"github.com/wallcycle/wallcycle/internal/daemon"
	"github.com/wallcycle/wallcycle/internal/ipc"
	"github.com/wallcycle/wallcycle/internal/rotation"
	"github.com/wallcycle/wallcycle/internal/setter"
)

func NewStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start --start <directory>",
		Short: "Start the wallpaper rotation daemon",
		Long: `Starts the daemon cycling through the images in the given directory.
Without --run-here the process forks into the background and logs to
~/.local/share/wallcycle/.`,
		Run: func(cmd *cobra.Command, args []string) {
			dir, _ := cmd.Flags().GetString("start")
			runHere, _ := cmd.Flags().GetBool("run-here")
			StartDaemon(dir, runHere)
		},
	}

	cmd.Flags().String("start", "", "Directory of wallpapers to cycle through")
	_ = cmd.MarkFlagRequired("start")
	cmd.Flags().BoolP("run-here", "r", false, "Run in the current terminal instead of the background")
	cmd.Flags().IntP("duration", "d", 300, "Time (in seconds) between wallpaper switches")
	_ = viper.BindPFlag("duration", cmd.Flags().Lookup("duration"))

	return cmd
}

func StartDaemon(dir string, runHere bool) {
	if _, err := ipc.SendPing(utils.Address()); err == nil {
		log.Fatalf("wallcycle is already running at %s", utils.Address())
	}

	if runHere {
		runManager(dir)
		return
	}

	dctx := &godaemon.Context{
		PidFileName: filepath.Join(dataDir(), "wallcycle.pid"),
		PidFilePerm: 0644,
		Umask:       027,
	}

	child, err := dctx.Reborn()
	if err != nil {
		log.Fatalf("Failed to start daemon: %v", err)
	}
	if child != nil {
		log.Infof("wallcycle daemon started, PID %d", child.Pid)
		return
	}
	defer func() { _ = dctx.Release() }()

	setupRotatingLogger()
	runManager(dir)
}

func runManager(dir string) {
	log.Infof("Starting wallcycle in PID %d", os.Getpid())

	interval := time.Duration(viper.GetInt("duration")) * time.Second
	rot, err := rotation.New(dir, interval)
	if err != nil {
		log.Fatalf("Cannot start: %v", err)
	}

	set := setter.FromConfig(viper.GetString("set_command"))
	log.Debugf("Using %s wallpaper setter", set.Name())

	manager := daemon.NewManager(rot, set)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := manager.Run(ctx, utils.Address()); err != nil {
		log.Fatalf("Daemon exited with error: %v", err)
	}
	log.Info("wallcycle exited")
}

func dataDir() string {
	dir := filepath.Join(os.Getenv("HOME"), ".local", "share", "wallcycle")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Cannot create %s: %v", dir, err)
	}
	return dir
}

func setupRotatingLogger() {
	logPath := filepath.Join(dataDir(), "wallcycle.log")

	writer, err := rotatelogs.New(
		logPath+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationSize(10*1024*1024),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.Fatalf("failed to configure log rotation: %v", err)
	}

	log.SetOutput(writer)
}
