// Package watcher provides debounced file-change notification, used to
// auto-reload a model when its source file is rewritten.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FileWatcher watches files for changes and triggers a callback after a
// debounce interval, collapsing editor save bursts into one event.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	log      *zap.Logger
	mu       sync.Mutex
	callback func(string)
	watched  map[string]struct{}
	debounce time.Duration
	timers   map[string]*time.Timer
}

// New creates a file watcher with the given debounce interval
func New(debounce time.Duration, log *zap.Logger) (*FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &FileWatcher{
		watcher:  fsw,
		log:      log,
		watched:  make(map[string]struct{}),
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Watch registers files and the callback invoked when any of them change
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if err := fw.watcher.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		fw.watched[absPath] = struct{}{}
	}
	fw.callback = callback
	return nil
}

// Start begins delivering change events until Close is called
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					fw.handleChange(event.Name)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fw.log.Warn("watcher error", zap.Error(err))
			}
		}
	}()
}

func (fw *FileWatcher) handleChange(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, ok := fw.watched[path]; !ok || fw.callback == nil {
		return
	}
	if timer, ok := fw.timers[path]; ok {
		timer.Stop()
	}
	callback := fw.callback
	fw.timers[path] = time.AfterFunc(fw.debounce, func() {
		callback(path)
	})
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
