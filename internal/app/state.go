package app

import (
	"sync"
	"sync/atomic"

	"github.com/philipparndt/gobim/pkg/bim"
	"github.com/philipparndt/gobim/pkg/geometry"
	"github.com/philipparndt/gobim/pkg/model"
	"github.com/philipparndt/gobim/pkg/watcher"
)

// ModelState holds the derived data of the installed snapshot. Bounds
// and centroids are recomputed only when the component identity set
// changes (a load); recomputing them mid-gesture would re-baseline
// explode directions.
type ModelState struct {
	source    string
	bounds    geometry.BoundingBox
	center    geometry.Vector3
	size      float64
	centroids map[int32]geometry.Vector3
	stats     bim.DecodeStats
}

// ExplodeState holds the explode slider state
type ExplodeState struct {
	amount float64
}

// LoadState tracks the single in-flight load task. The decode goroutine
// writes the pending snapshot under mu; the render-loop thread installs
// it with ApplyLoaded.
type LoadState struct {
	mu            sync.Mutex
	task          *LoadTask
	pending       []*model.Component
	pendingStats  bim.DecodeStats
	pendingSource string
}

// FileWatchState holds auto-reload state
type FileWatchState struct {
	watcher     *watcher.FileWatcher
	needsReload atomic.Bool
}
