// SPDX-License-Identifier: MIT
package theme

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReloadDelay is how long Watch waits for writes to settle
var ReloadDelay = 500 * time.Millisecond

// Watch calls fn with the freshly loaded theme whenever path is written or
// recreated. The parent directory is watched so editors that replace the
// file are noticed. fn runs on the watcher goroutine, one call at a time.
// Watching stops when ctx is done.
func Watch(ctx context.Context, path string, log *zap.Logger, fn func(*Theme, error)) error {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("theme")

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve theme path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer watcher.Close()

		// pending fires once writes have settled; nil while idle
		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case <-pending:
				pending = nil
				fn(Load(abs))

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				log.Debug("Theme file changed", zap.String("op", event.Op.String()))

				pending = time.After(ReloadDelay)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("Theme watcher error", zap.Error(err))
			}
		}
	}()

	log.Info("Watching theme", zap.String("path", abs))
	return nil
}
