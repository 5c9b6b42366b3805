package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/philipparndt/gobim/pkg/watcher"
)

// EnableAutoReload watches the given model file and flags a reload when
// it changes. The reload itself happens on the render-loop thread via
// CheckReload.
func (c *Controller) EnableAutoReload(path string) error {
	fw, err := watcher.New(c.cfg.WatchDebounce, c.log)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Watch([]string{path}, func(changed string) {
		c.log.Info("model file changed", zap.String("file", changed))
		c.watch.needsReload.Store(true)
	}); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	fw.Start()
	c.watch.watcher = fw
	return nil
}

// CheckReload starts a reload if the watched file changed and no load is
// in flight. Called once per frame from the render loop. The flag is
// cleared before the load starts, so a change flagged while the load is
// starting survives for the next frame instead of being overwritten.
func (c *Controller) CheckReload() {
	if !c.watch.needsReload.CompareAndSwap(true, false) {
		return
	}
	source := c.model.source
	if source == "" {
		return
	}
	if _, err := c.StartLoad(source); err != nil {
		if errors.Is(err, ErrLoadBusy) {
			// Retry next frame
			c.watch.needsReload.Store(true)
			return
		}
		c.log.Warn("auto-reload failed", zap.Error(err))
	}
}
