package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cascade/internal/adapters/watcher"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/cascade/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func startWatcher(t *testing.T, path string) (*watcher.Watcher, <-chan ports.WatchEvent, context.CancelFunc) {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcherWithWindow(log, 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx, path))
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})

	events := make(chan ports.WatchEvent, 8)
	go func() {
		defer close(events)
		for ev := range w.Events() {
			events <- ev
		}
	}()
	return w, events, cancel
}

func TestWatcher_ReportsContentChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cascade.yaml")
	require.NoError(t, os.WriteFile(path, []byte("options: []\n"), 0o600))

	_, events, _ := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("options:\n  - value: a\n"), 0o600))

	select {
	case ev := <-events:
		assert.Equal(t, ports.OpWrite, ev.Operation)
		assert.Equal(t, filepath.Base(path), filepath.Base(ev.Path))
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change event")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cascade.yaml")
	require.NoError(t, os.WriteFile(path, []byte("options: []\n"), 0o600))

	_, events, _ := startWatcher(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o600))

	select {
	case ev := <-events:
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_ReportsRemoval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cascade.yaml")
	require.NoError(t, os.WriteFile(path, []byte("options: []\n"), 0o600))

	_, events, _ := startWatcher(t, path)

	require.NoError(t, os.Remove(path))

	select {
	case ev := <-events:
		assert.Equal(t, ports.OpRemove, ev.Operation)
	case <-time.After(5 * time.Second):
		t.Fatal("expected a remove event")
	}
}

func TestWatcher_EventsEndOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cascade.yaml")
	require.NoError(t, os.WriteFile(path, []byte("options: []\n"), 0o600))

	_, events, cancel := startWatcher(t, path)
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("events did not end after cancel")
	}
}

func TestWatcher_StartMissingFile(t *testing.T) {
	w, err := watcher.NewWatcher(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	err = w.Start(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read watched file")
}
