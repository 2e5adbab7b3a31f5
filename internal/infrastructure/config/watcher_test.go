package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmfau/fmfau-desktop/internal/logging"
)

// lockedBuffer is written from the fsnotify goroutine and read by the test.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestManager_WatchLogsThroughContextLogger(t *testing.T) {
	configDir := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var out lockedBuffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&out))
	require.NoError(t, mgr.Watch(ctx))

	body := "[splash]\nmin_display_ms = 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(body), filePerm))

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "config reload rejected")
	}, 5*time.Second, 20*time.Millisecond)
	assert.Contains(t, out.String(), `"component":"config-watcher"`)
	assert.Contains(t, out.String(), "splash.min_display_ms")

	// The rejected file leaves the loaded values in place.
	assert.Equal(t, 2000, mgr.Get().Splash.MinDisplayMs)
}
