package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/philipparndt/gobim/pkg/bim"
)

// ErrLoadBusy rejects a load started while another one is in flight.
// Loads are serialized: two decodes must never race for the registry.
var ErrLoadBusy = errors.New("a model load is already in progress")

// Progress is one incremental update of an in-flight load
type Progress struct {
	TaskID uuid.UUID
	Done   int
	Total  int
}

// LoadResult is the single terminal outcome of a load task
type LoadResult struct {
	Stats bim.DecodeStats
	Err   error
}

// LoadTask is one cancellable asynchronous load. Progress delivers
// incremental updates until the task finishes; Wait blocks for the
// terminal outcome. A successful task holds its decoded snapshot until
// the controller installs it with ApplyLoaded on the render-loop thread.
type LoadTask struct {
	ID       uuid.UUID
	Progress <-chan Progress

	progress chan Progress
	cancel   context.CancelFunc
	finished atomic.Bool
	done     chan struct{}
	result   LoadResult
}

// Cancel aborts the task. Partially allocated geometry subsets are
// released by the decoder before the task finishes.
func (t *LoadTask) Cancel() {
	t.cancel()
}

// Wait blocks until the task has finished and returns its outcome
func (t *LoadTask) Wait() LoadResult {
	<-t.done
	return t.result
}

// Finished reports whether the task has reached its terminal outcome
func (t *LoadTask) Finished() bool {
	return t.finished.Load()
}

// StartLoad validates and asynchronously loads a model file. Validation
// failures (extension, size ceiling) are returned immediately and no
// task is started.
func (c *Controller) StartLoad(path string) (*LoadTask, error) {
	if err := c.validateExtension(path); err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, &bim.ValidationError{Reason: fmt.Sprintf("cannot access %s: %v", filepath.Base(path), err)}
	}
	if info.Size() > c.cfg.MaxFileSize {
		return nil, &bim.ValidationError{
			Reason: fmt.Sprintf("file is %d bytes, the limit is %d bytes", info.Size(), c.cfg.MaxFileSize),
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &bim.ValidationError{Reason: fmt.Sprintf("cannot read %s: %v", filepath.Base(path), err)}
	}
	return c.startLoad(path, data)
}

// LoadBytes validates and asynchronously loads an in-memory model, for
// byte sources that are not files (network fetches). name is only used
// for extension validation and reporting.
func (c *Controller) LoadBytes(name string, data []byte) (*LoadTask, error) {
	if err := c.validateExtension(name); err != nil {
		return nil, err
	}
	if int64(len(data)) > c.cfg.MaxFileSize {
		return nil, &bim.ValidationError{
			Reason: fmt.Sprintf("model is %d bytes, the limit is %d bytes", len(data), c.cfg.MaxFileSize),
		}
	}
	return c.startLoad(name, data)
}

func (c *Controller) validateExtension(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range c.cfg.AllowedExtensions {
		if ext == allowed {
			return nil
		}
	}
	return &bim.ValidationError{
		Reason: fmt.Sprintf("unsupported file type %q (expected %s)", ext, strings.Join(c.cfg.AllowedExtensions, ", ")),
	}
}

func (c *Controller) startLoad(source string, data []byte) (*LoadTask, error) {
	c.load.mu.Lock()
	if c.load.task != nil && !c.load.task.Finished() {
		c.load.mu.Unlock()
		return nil, ErrLoadBusy
	}
	c.load.mu.Unlock()

	// A finished task whose snapshot was never installed would leak its
	// geometry; drop it before starting over.
	c.dropPending()

	ctx, cancel := context.WithCancel(context.Background())
	task := &LoadTask{
		ID:       uuid.New(),
		progress: make(chan Progress, 16),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	task.Progress = task.progress

	c.load.mu.Lock()
	c.load.task = task
	c.load.mu.Unlock()

	log := c.log.With(zap.String("task", task.ID.String()), zap.String("source", source))
	log.Info("load started", zap.Int("bytes", len(data)))

	go func() {
		defer close(task.progress)

		components, stats, err := c.decoder.Decode(ctx, data, func(done, total int) {
			update := Progress{TaskID: task.ID, Done: done, Total: total}
			select {
			case task.progress <- update:
			default:
				// A slow consumer only loses intermediate updates
			}
		})

		if err != nil {
			log.Warn("load failed", zap.Error(err))
			task.result = LoadResult{Stats: stats, Err: err}
		} else {
			c.load.mu.Lock()
			c.load.pending = components
			c.load.pendingStats = stats
			c.load.pendingSource = source
			c.load.mu.Unlock()
			log.Info("load decoded",
				zap.Int("components", stats.Processed),
				zap.Int("skipped", stats.Failed))
			task.result = LoadResult{Stats: stats}
		}
		task.finished.Store(true)
		close(task.done)
	}()

	return task, nil
}

// ApplyLoaded installs a finished load's snapshot into the registry.
// It must run on the render-loop thread. The previous snapshot is
// cleared (and its handles released) strictly before the new one is
// installed; a failed or cancelled task installs nothing. Returns true
// when a new snapshot was installed.
func (c *Controller) ApplyLoaded() bool {
	c.load.mu.Lock()
	task := c.load.task
	if task == nil || !task.Finished() {
		c.load.mu.Unlock()
		return false
	}
	pending := c.load.pending
	stats := c.load.pendingStats
	source := c.load.pendingSource
	c.load.task = nil
	c.load.pending = nil
	c.load.mu.Unlock()

	if pending == nil {
		return false
	}

	c.registry.Clear()
	if err := c.registry.Load(pending); err != nil {
		// Cannot happen with decoder-produced snapshots; release so
		// nothing leaks if it ever does.
		c.log.Error("snapshot rejected", zap.Error(err))
		for _, comp := range pending {
			if comp.Geometry != nil {
				comp.Geometry.Release()
			}
		}
		return false
	}

	c.model.source = source
	c.model.stats = stats
	c.refreshDerived()
	c.explode.amount = 0

	// Reapply an active clip so the new components are not left unclipped
	if c.clip.Active() {
		c.clip.SetActive(c.registry, true)
	}

	c.present()
	return true
}

// dropPending releases a decoded-but-never-installed snapshot
func (c *Controller) dropPending() {
	c.load.mu.Lock()
	pending := c.load.pending
	c.load.pending = nil
	c.load.task = nil
	c.load.mu.Unlock()

	for _, comp := range pending {
		if comp.Geometry != nil {
			comp.Geometry.Release()
		}
	}
}
