package daemon

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallcycle/wallcycle/internal/ipc"
	"github.com/wallcycle/wallcycle/internal/rotation"
	"github.com/wallcycle/wallcycle/internal/setter"
)

type recordSetter struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (r *recordSetter) Set(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.paths = append(r.paths, path)
	return nil
}

func (r *recordSetter) Name() string { return "record" }

func (r *recordSetter) applied() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func (r *recordSetter) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func newTestManager(t *testing.T, interval time.Duration, names ...string) (*Manager, *recordSetter, string) {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0644))
	}

	rot, err := rotation.New(dir, interval)
	require.NoError(t, err)

	rec := &recordSetter{}
	return NewManager(rot, rec), rec, dir
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNextAppliesInOrder(t *testing.T) {
	m, rec, dir := newTestManager(t, time.Hour, "a.png", "b.png", "c.png")

	for _, name := range []string{"a.png", "b.png", "c.png", "a.png"} {
		path, err := m.Next()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, name), path)
	}

	assert.Len(t, rec.applied(), 4)
}

func TestNextAdvancesEvenWhenSetterFails(t *testing.T) {
	m, rec, dir := newTestManager(t, time.Hour, "a.png", "b.png")

	rec.fail(errors.New("display went away"))
	path, err := m.Next()
	require.Error(t, err)
	assert.Equal(t, filepath.Join(dir, "a.png"), path)

	// The selection advanced despite the failed apply, so the next
	// directive moves on to b.
	rec.fail(nil)
	path, err = m.Next()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "b.png"), path)
}

func TestConcurrentNextAdvancesExactlyTwice(t *testing.T) {
	m, _, dir := newTestManager(t, time.Hour, "a.png", "b.png", "c.png")

	results := make([]string, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path, err := m.Next()
			assert.NoError(t, err)
			results[i] = path
		}(i)
	}
	wg.Wait()

	want := []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")}
	assert.ElementsMatch(t, want, results)
}

func TestConcurrentNextAppliesInAdvanceOrder(t *testing.T) {
	m, rec, dir := newTestManager(t, time.Hour, "a.png", "b.png", "c.png")

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Next()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// The setter sees the wallpapers in the same order the index advanced,
	// so the visible wallpaper never lags the reported state.
	want := []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")}
	assert.Equal(t, want, rec.applied())
}

func TestSetWallpaperDoesNotTouchRotation(t *testing.T) {
	m, rec, dir := newTestManager(t, time.Hour, "a.png", "b.png")

	picked := filepath.Join(dir, "b.png")
	require.NoError(t, m.SetWallpaper(picked))
	assert.Equal(t, []string{picked}, rec.applied())

	// Rotation still starts from the first entry.
	path, err := m.Next()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.png"), path)
}

func TestSetWallpaperRejectsNonImage(t *testing.T) {
	m, rec, dir := newTestManager(t, time.Hour, "a.png")

	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("hi"), 0644))

	err := m.SetWallpaper(text)
	assert.ErrorIs(t, err, rotation.ErrInvalidPath)
	assert.ErrorIs(t, m.SetWallpaper(filepath.Join(dir, "missing.png")), rotation.ErrInvalidPath)
	assert.Empty(t, rec.applied())
}

func TestSetDirectoryAppliesFirstEntry(t *testing.T) {
	m, rec, _ := newTestManager(t, time.Hour, "a.png")

	next := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(next, "z.png"), []byte("img"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(next, "m.png"), []byte("img"), 0644))

	first, err := m.SetDirectory(next)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(next, "m.png"), first)
	assert.Equal(t, []string{first}, rec.applied())
	assert.Equal(t, next, m.Directory())
}

func TestStatusReportsRotationState(t *testing.T) {
	m, _, dir := newTestManager(t, 300*time.Second, "a.png", "b.png")

	_, err := m.Next()
	require.NoError(t, err)

	status := m.Status()
	assert.Equal(t, ipc.StatusOK, status.Status)
	assert.Equal(t, dir, status.Directory)
	assert.Equal(t, filepath.Join(dir, "a.png"), status.CurrentWallpaper)
	assert.Equal(t, 2, status.Entries)
	assert.Equal(t, 300, status.IntervalSeconds)
	assert.Equal(t, os.Getpid(), status.PID)
}

func waitForDaemon(t *testing.T, addr string) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if _, err := ipc.SendPing(addr); err == nil {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("daemon at %s never became reachable", addr)
}

func TestKillStopsRunAndClosesListener(t *testing.T) {
	m, _, _ := newTestManager(t, time.Hour, "a.png")
	addr := freeAddr(t)

	done := make(chan error, 1)
	go func() {
		done <- m.Run(context.Background(), addr)
	}()

	waitForDaemon(t, addr)

	resp, err := ipc.SendKill(addr)
	require.NoError(t, err)
	assert.Equal(t, ipc.StatusOK, resp.Status)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after kill")
	}

	_, err = ipc.SendPing(addr)
	assert.Error(t, err)
}

func TestTickerRotatesLikeNext(t *testing.T) {
	m, rec, dir := newTestManager(t, 50*time.Millisecond, "a.png", "b.png", "c.png")
	addr := freeAddr(t)

	done := make(chan error, 1)
	go func() {
		done <- m.Run(context.Background(), addr)
	}()

	waitForDaemon(t, addr)

	require.Eventually(t, func() bool {
		return len(rec.applied()) >= 3
	}, 5*time.Second, 20*time.Millisecond)

	m.Kill()
	require.NoError(t, <-done)

	applied := rec.applied()
	want := []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.png"),
	}
	assert.Equal(t, want, applied[:3])
}

func TestRunReportsBindFailure(t *testing.T) {
	m, _, _ := newTestManager(t, time.Hour, "a.png")

	// Occupy the port so the daemon cannot bind it.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	err = m.Run(context.Background(), l.Addr().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "control server")
}

var _ setter.Setter = (*recordSetter)(nil)
