package setter

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// HyprpaperSetter drives hyprpaper through hyprctl: preload the image, make
// it the wallpaper on every monitor, then unload whatever is no longer shown.
// hyprctl prints "ok" on success.
type HyprpaperSetter struct{}

func NewHyprpaper() *HyprpaperSetter {
	return &HyprpaperSetter{}
}

func (s *HyprpaperSetter) Name() string { return "hyprpaper" }

func (s *HyprpaperSetter) Set(path string) error {
	steps := [][]string{
		{"hyprpaper", "preload", path},
		{"hyprpaper", "wallpaper", ", " + path},
		{"hyprpaper", "unload", "unused"},
	}

	for _, args := range steps {
		if err := hyprctl(args...); err != nil {
			return err
		}
	}
	return nil
}

func hyprctl(args ...string) error {
	log.Debugf("Running: hyprctl %s", strings.Join(args, " "))

	out, err := exec.Command("hyprctl", args...).Output()
	if err != nil {
		return fmt.Errorf("hyprctl %s: %w", strings.Join(args, " "), err)
	}
	if reply := strings.TrimSpace(string(out)); reply != "ok" {
		return fmt.Errorf("hyprctl %s: %s", strings.Join(args, " "), reply)
	}
	return nil
}
