// Package rotation holds the daemon's wallpaper rotation state: the active
// directory, the sorted list of image entries discovered in it, and the index
// of the current selection. All mutation goes through one mutex so that
// directive handlers and the interval ticker never race.
package rotation

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Rotation is the daemon's only shared mutable state. The zero index is -1,
// meaning no wallpaper has been selected yet; the first Advance yields the
// first entry.
type Rotation struct {
	mu        sync.Mutex
	directory string
	entries   []string
	index     int
	interval  time.Duration
}

// New scans dir and returns a Rotation over its image entries. The index
// starts unset so the first Advance lands on the lexicographically first
// image. The interval must be positive; it feeds a time.Ticker.
func New(dir string, interval time.Duration) (*Rotation, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", interval)
	}

	canonical, entries, err := ScanDirectory(dir)
	if err != nil {
		return nil, err
	}

	return &Rotation{
		directory: canonical,
		entries:   entries,
		index:     -1,
		interval:  interval,
	}, nil
}

// Advance moves the selection to the next entry, wrapping past the end, and
// returns its path. Returns ErrEmptyDirectory when there is nothing to rotate;
// the index is left untouched in that case.
func (r *Rotation) Advance() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == 0 {
		return "", ErrEmptyDirectory
	}

	r.index = (r.index + 1) % len(r.entries)
	return r.entries[r.index], nil
}

// SetDirectory rescans dir and replaces the entry list, resetting the
// selection to the first entry. On any error the previous state is left
// completely unchanged. Returns the new first entry.
func (r *Rotation) SetDirectory(dir string) (string, error) {
	canonical, entries, err := ScanDirectory(dir)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.directory = canonical
	r.entries = entries
	r.index = 0
	return r.entries[0], nil
}

// Rescan re-lists the active directory, keeping the current selection if its
// file still exists. Used by the directory watcher when files come and go
// underneath us.
func (r *Rotation) Rescan() error {
	r.mu.Lock()
	dir := r.directory
	current := ""
	if r.index >= 0 && r.index < len(r.entries) {
		current = r.entries[r.index]
	}
	r.mu.Unlock()

	_, entries, err := ScanDirectory(dir)
	if err != nil && !errors.Is(err, ErrEmptyDirectory) {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// A set-directory directive may have swapped the directory while the
	// scan ran unlocked; its own scan is authoritative, so this result is
	// stale and gets dropped.
	if r.directory != dir {
		return nil
	}

	r.entries = entries
	r.index = -1
	for i, e := range entries {
		if e == current {
			r.index = i
			break
		}
	}
	return nil
}

// Directory returns the active directory path.
func (r *Rotation) Directory() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.directory
}

// Current returns the currently selected entry, or "" when none has been
// selected yet.
func (r *Rotation) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.index < 0 || r.index >= len(r.entries) {
		return ""
	}
	return r.entries[r.index]
}

// Entries returns a copy of the entry list.
func (r *Rotation) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.entries...)
}

// Interval returns the tick interval. Fixed at daemon start.
func (r *Rotation) Interval() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.interval
}
