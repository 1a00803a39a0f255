// Package daemon runs the wallpaper rotation loop and its control server.
// The interval ticker and the directive handlers are just contenders for the
// same rotation lock; whichever acquires it first applies first.
package daemon

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/wallcycle/wallcycle"
	"github.com/wallcycle/wallcycle/internal/ipc"
	"github.com/wallcycle/wallcycle/internal/rotation"
	"github.com/wallcycle/wallcycle/internal/setter"
)

type Manager struct {
	rotation *rotation.Rotation
	setter   setter.Setter
	server   *ipc.Server

	// applyMu spans each advance together with its setter call, so
	// wallpapers are applied in the same order the index advances.
	applyMu sync.Mutex

	mu      sync.Mutex
	watcher *fsnotify.Watcher

	kill     chan struct{}
	killOnce sync.Once
}

func NewManager(rot *rotation.Rotation, set setter.Setter) *Manager {
	m := &Manager{
		rotation: rot,
		setter:   set,
		kill:     make(chan struct{}),
	}
	m.server = ipc.NewServer(m)
	return m
}

// Run serves control requests on addr and advances the rotation every
// interval until a kill directive or ctx cancellation. A bind failure is
// returned before the loop starts.
func (m *Manager) Run(ctx context.Context, addr string) error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- m.server.Start(addr)
	}()

	m.startWatcher(ctx)

	ticker := time.NewTicker(m.rotation.Interval())
	defer ticker.Stop()

	log.Infof("Rotating wallpapers in %s every %s", m.rotation.Directory(), m.rotation.Interval())

	for {
		select {
		case err := <-serverErr:
			if err != nil {
				return fmt.Errorf("control server: %w", err)
			}
			return nil
		case <-ticker.C:
			m.tick()
		case <-m.kill:
			log.Info("Kill received, shutting down")
			return m.shutdown()
		case <-ctx.Done():
			log.Info("Interrupted, shutting down")
			return m.shutdown()
		}
	}
}

// tick is the timer's turn at the rotation: identical to a next directive,
// except failures only get logged because nobody is waiting on a reply.
func (m *Manager) tick() {
	m.applyMu.Lock()
	defer m.applyMu.Unlock()

	path, err := m.rotation.Advance()
	if err != nil {
		log.Warnf("Skipping rotation: %v", err)
		return
	}

	log.Debugf("Rotating to %s", path)
	if err := m.setter.Set(path); err != nil {
		log.Errorf("Failed to apply wallpaper %s: %v", path, err)
	}
}

func (m *Manager) shutdown() error {
	m.stopWatcher()

	// Lets in-flight replies finish before the listener goes away.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.server.Shutdown(ctx)
}

// SetWallpaper applies path without touching the rotation order.
func (m *Manager) SetWallpaper(path string) error {
	path = rotation.CanonicalPath(path)
	if err := rotation.CheckImage(path); err != nil {
		return err
	}

	m.applyMu.Lock()
	defer m.applyMu.Unlock()

	if err := m.setter.Set(path); err != nil {
		return fmt.Errorf("failed to apply wallpaper: %w", err)
	}

	log.Infof("Wallpaper set to %s", path)
	return nil
}

// Next advances the rotation and applies the new selection. A failed apply
// is reported but the advance stands; the next attempt happens on the next
// tick or directive.
func (m *Manager) Next() (string, error) {
	m.applyMu.Lock()
	defer m.applyMu.Unlock()

	path, err := m.rotation.Advance()
	if err != nil {
		return "", err
	}

	if err := m.setter.Set(path); err != nil {
		return path, fmt.Errorf("advanced to %s but failed to apply it: %w", path, err)
	}

	log.Infof("Rotated to %s", path)
	return path, nil
}

func (m *Manager) Directory() string {
	return m.rotation.Directory()
}

// SetDirectory swaps the rotation over to dir and immediately applies its
// first entry. On a scan failure the previous state is untouched.
func (m *Manager) SetDirectory(dir string) (string, error) {
	m.applyMu.Lock()
	defer m.applyMu.Unlock()

	previous := m.rotation.Directory()

	first, err := m.rotation.SetDirectory(dir)
	if err != nil {
		return "", err
	}

	m.rearmWatcher(previous, m.rotation.Directory())

	log.Infof("Now cycling through %s", m.rotation.Directory())
	if err := m.setter.Set(first); err != nil {
		return first, fmt.Errorf("directory set but failed to apply %s: %w", first, err)
	}

	return first, nil
}

func (m *Manager) Status() ipc.StatusResponse {
	return ipc.StatusResponse{
		Status:           ipc.StatusOK,
		Message:          "wallcycle is running",
		Version:          strings.Trim(wallcycle.Version, "\n\r "),
		PID:              os.Getpid(),
		Directory:        m.rotation.Directory(),
		CurrentWallpaper: m.rotation.Current(),
		Entries:          len(m.rotation.Entries()),
		IntervalSeconds:  int(m.rotation.Interval() / time.Second),
	}
}

// Kill signals the run loop to stop. Safe to call more than once; the reply
// to the kill directive is written before the listener shuts down.
func (m *Manager) Kill() {
	m.killOnce.Do(func() { close(m.kill) })
}
