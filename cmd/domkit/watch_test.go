package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/domkit/internal/config"
	"github.com/alexisbeaulieu97/domkit/internal/logger"
)

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

func TestRunWatchReportsAfterEditsSettle(t *testing.T) {
	t.Parallel()

	page := writeFile(t, "index.html", samplePage)

	cfg := config.Default()
	cfg.Debounce.Delay = 50 * time.Millisecond
	app := &appContext{cfg: cfg, log: logger.Nop()}

	out := &lockedBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runWatch(ctx, out, app, page, ".item") }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "2 matches")
	}, 2*time.Second, 10*time.Millisecond)

	// Give the watcher time to register before editing.
	time.Sleep(50 * time.Millisecond)
	extra := strings.Replace(samplePage, "</ul>", `<li class="item">Contact</li></ul>`, 1)
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(page, []byte(extra), 0o644))
	}

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "3 matches")
	}, 3*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
