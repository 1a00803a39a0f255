// Package setter applies a wallpaper through the host desktop environment.
// The daemon treats the setter as an opaque, possibly-failing call: a failure
// is reported to the client but never retried.
package setter

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Setter applies the image at path as the desktop wallpaper.
type Setter interface {
	Set(path string) error
	Name() string
}

// Func adapts a plain function to the Setter interface.
type Func func(path string) error

func (f Func) Set(path string) error { return f(path) }
func (f Func) Name() string          { return "func" }

// FromConfig picks the setter for the configured set_command. An empty
// command selects the hyprpaper pipeline.
func FromConfig(command string) Setter {
	if strings.TrimSpace(command) == "" {
		return NewHyprpaper()
	}
	return NewCommand(command)
}

// CommandSetter shells out to a user-configured command, substituting the
// image path for every "%s" in the template.
type CommandSetter struct {
	template string
}

func NewCommand(template string) *CommandSetter {
	return &CommandSetter{template: template}
}

func (s *CommandSetter) Name() string { return "command" }

func (s *CommandSetter) Set(path string) error {
	command := strings.ReplaceAll(s.template, "%s", path)

	log.Debugf("Running set command: %s", command)
	out, err := exec.Command("sh", "-c", command).CombinedOutput()
	if err != nil {
		return fmt.Errorf("set command failed: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
