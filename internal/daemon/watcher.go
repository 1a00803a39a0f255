package daemon

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// startWatcher arms an fsnotify watcher on the active directory so the entry
// list tracks files being added or removed without waiting for the next
// tick. Watching is best effort; a failure only costs us event-driven
// rescans.
func (m *Manager) startWatcher(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warnf("Directory watching disabled: %v", err)
		return
	}

	if err := watcher.Add(m.rotation.Directory()); err != nil {
		log.Warnf("Cannot watch %s: %v", m.rotation.Directory(), err)
		_ = watcher.Close()
		return
	}

	m.mu.Lock()
	m.watcher = watcher
	m.mu.Unlock()

	go m.watchLoop(ctx, watcher)
}

func (m *Manager) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			log.Debugf("Directory changed (%s), rescanning", event)
			if err := m.rotation.Rescan(); err != nil {
				log.Warnf("Rescan failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warnf("Directory watcher: %v", err)
		case <-ctx.Done():
			return
		}
	}
}

// rearmWatcher moves the watch from the old directory to the new one after a
// set-directory directive.
func (m *Manager) rearmWatcher(oldDir, newDir string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watcher == nil {
		return
	}

	_ = m.watcher.Remove(oldDir)
	if err := m.watcher.Add(newDir); err != nil {
		log.Warnf("Cannot watch %s: %v", newDir, err)
	}
}

func (m *Manager) stopWatcher() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
}
