package setter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandSetterSubstitutesPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "applied")
	s := NewCommand("echo %s > " + out)

	require.NoError(t, s.Set("/walls/a.png"))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "/walls/a.png", strings.TrimSpace(string(got)))
}

func TestCommandSetterReportsFailure(t *testing.T) {
	s := NewCommand("echo nope >&2; exit 3")

	err := s.Set("/walls/a.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set command failed")
	assert.Contains(t, err.Error(), "nope")
}

func TestFromConfig(t *testing.T) {
	assert.IsType(t, &HyprpaperSetter{}, FromConfig(""))
	assert.IsType(t, &HyprpaperSetter{}, FromConfig("   "))
	assert.IsType(t, &CommandSetter{}, FromConfig("feh --bg-fill %s"))
}

func TestFuncAdapter(t *testing.T) {
	var got string
	s := Func(func(path string) error {
		got = path
		return nil
	})

	require.NoError(t, s.Set("/walls/b.png"))
	assert.Equal(t, "/walls/b.png", got)
}
