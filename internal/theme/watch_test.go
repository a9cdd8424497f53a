// SPDX-License-Identifier: MIT
package theme

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	ReloadDelay = 20 * time.Millisecond
	os.Exit(m.Run())
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := writeTheme(t, "sections:\n  - name: Hero\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Theme, 4)
	failed := make(chan error, 4)
	require.NoError(t, Watch(ctx, path, nil, func(th *Theme, err error) {
		if err != nil {
			failed <- err
			return
		}
		reloaded <- th
	}))

	require.NoError(t, os.WriteFile(path, []byte("sections:\n  - name: Hero\n  - name: Footer\n"), 0644))

	select {
	case th := <-reloaded:
		require.Len(t, th.Sections, 2)
		assert.Equal(t, "footer", th.Sections[1].ID)
	case err := <-failed:
		t.Fatalf("Reload failed: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for reload")
	}
}

func TestWatchReportsBrokenTheme(t *testing.T) {
	path := writeTheme(t, "sections: []\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	failed := make(chan error, 4)
	require.NoError(t, Watch(ctx, path, nil, func(_ *Theme, err error) {
		if err != nil {
			failed <- err
		}
	}))

	require.NoError(t, os.WriteFile(path, []byte("sections: [\n"), 0644))

	select {
	case err := <-failed:
		assert.Contains(t, err.Error(), "failed to decode theme")
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for reload error")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), "/definitely/not/here/theme.yaml", nil, func(*Theme, error) {})
	assert.Error(t, err)
}

func TestWatchRunsReloadsOneAtATime(t *testing.T) {
	path := writeTheme(t, "sections:\n  - name: Hero\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var running, overlapped atomic.Int32
	done := make(chan struct{}, 16)
	require.NoError(t, Watch(ctx, path, nil, func(*Theme, error) {
		if running.Add(1) > 1 {
			overlapped.Add(1)
		}
		time.Sleep(3 * ReloadDelay)
		running.Add(-1)
		select {
		case done <- struct{}{}:
		default:
		}
	}))

	// writes spaced past the delay each schedule a reload while the
	// previous one is still running
	for i := 0; i < 3; i++ {
		body := fmt.Sprintf("sections:\n  - name: Hero%d\n", i)
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		time.Sleep(2 * ReloadDelay)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for reload")
	}
	time.Sleep(10 * ReloadDelay)
	assert.Zero(t, overlapped.Load())
}
