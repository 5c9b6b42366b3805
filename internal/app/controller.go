package app

import (
	"go.uber.org/zap"

	"github.com/philipparndt/gobim/pkg/bim"
	"github.com/philipparndt/gobim/pkg/clip"
	"github.com/philipparndt/gobim/pkg/geometry"
	"github.com/philipparndt/gobim/pkg/measure"
	"github.com/philipparndt/gobim/pkg/model"
	"github.com/philipparndt/gobim/pkg/picking"
	"github.com/philipparndt/gobim/pkg/spatial"
)

// Controller is the application-level state container: it owns the
// registry and the interaction engines, runs all mutations on the
// render-loop thread, and re-presents the full snapshot after every
// change.
type Controller struct {
	cfg Config
	log *zap.Logger

	registry    *model.Registry
	decoder     *bim.Decoder
	presenter   Presenter
	scene       picking.Scene
	selection   *picking.SelectionEngine
	measurement *measure.Engine
	clip        *clip.Controller

	// OnMeasurement receives every completed measurement
	OnMeasurement func(measure.Result)

	model   ModelState
	explode ExplodeState
	load    LoadState
	watch   FileWatchState
}

// NewController wires a controller over the given runtime. A nil
// presenter runs headless, a nil logger disables logging.
func NewController(cfg Config, runtime bim.Runtime, presenter Presenter, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	if presenter == nil {
		presenter = NopPresenter{}
	}
	registry := model.NewRegistry()
	return &Controller{
		cfg:         cfg,
		log:         log,
		registry:    registry,
		decoder:     bim.NewDecoder(runtime, cfg.CategoryTable(), log),
		presenter:   presenter,
		scene:       &picking.BoundsScene{Registry: registry},
		selection:   picking.NewSelectionEngine(registry),
		measurement: measure.NewEngine(),
		clip:        clip.NewController(),
	}
}

// Registry exposes the component registry to the UI layer
func (c *Controller) Registry() *model.Registry {
	return c.registry
}

// Components returns the current snapshot
func (c *Controller) Components() []*model.Component {
	return c.registry.Components()
}

// SetScene replaces the default bounds-based scene with the rendering
// collaborator's intersection query.
func (c *Controller) SetScene(scene picking.Scene) {
	c.scene = scene
}

// ModelBounds returns the cached model bounds; ok is false with no model
func (c *Controller) ModelBounds() (geometry.BoundingBox, bool) {
	return c.model.bounds, c.model.bounds.IsValid()
}

// ModelSource returns the path of the loaded model file, if any
func (c *Controller) ModelSource() string {
	return c.model.source
}

// DecodeStats returns the per-id outcome counts of the installed load
func (c *Controller) DecodeStats() bim.DecodeStats {
	return c.model.stats
}

// SetVisibility toggles one component and re-presents the snapshot
func (c *Controller) SetVisibility(id int32, visible bool) {
	c.registry.SetVisibility(id, visible)
	c.present()
}

// SetClipAxis switches the clip axis
func (c *Controller) SetClipAxis(axis geometry.Axis) {
	c.clip.SetAxis(c.registry, axis)
	c.present()
}

// SetSplitPosition moves the clip plane; values are clamped to [0,100]
func (c *Controller) SetSplitPosition(position float64) {
	c.clip.SetPosition(c.registry, position)
	c.present()
}

// SetClipActive enables or disables clipping
func (c *Controller) SetClipActive(active bool) {
	c.clip.SetActive(c.registry, active)
	c.present()
}

// ClipActive reports whether clipping is applied
func (c *Controller) ClipActive() bool {
	return c.clip.Active()
}

// SetExplodeAmount displaces every component outward from the model
// center. The amount is clamped to [0, ExplodeMax]; zero restores every
// component to its initial position exactly.
func (c *Controller) SetExplodeAmount(amount float64) {
	if amount < 0 {
		amount = 0
	}
	if amount > c.cfg.ExplodeMax {
		amount = c.cfg.ExplodeMax
	}
	c.explode.amount = amount

	offsets := spatial.ExplodeOffsets(amount, c.model.centroids, c.model.center, c.model.size)
	spatial.ApplyOffsets(c.registry, offsets)
	c.present()
}

// ExplodeAmount returns the current explode amount
func (c *Controller) ExplodeAmount() float64 {
	return c.explode.amount
}

// SetMeasureActive arms or disarms the measurement tool. Disarming
// discards a half-finished measurement.
func (c *Controller) SetMeasureActive(active bool) {
	if active {
		c.measurement.Activate()
		return
	}
	c.measurement.Deactivate()
}

// MeasureActive reports whether picks feed the measurement tool
func (c *Controller) MeasureActive() bool {
	return c.measurement.Active()
}

// Pick resolves a pointer ray. With the measurement tool active the
// picked point feeds the distance state machine; otherwise the nearest
// component is highlighted.
func (c *Controller) Pick(ray geometry.Ray) {
	if c.measurement.Active() {
		hit, ok := picking.Nearest(c.scene.Intersect(ray))
		if !ok {
			return
		}
		if result, done := c.measurement.AddPoint(hit.Point); done {
			c.log.Info("measurement complete", zap.Float64("distance", result.Distance))
			if c.OnMeasurement != nil {
				c.OnMeasurement(result)
			}
		}
		return
	}

	if _, ok := c.selection.Pick(ray, c.scene); ok {
		c.present()
	}
}

// refreshDerived recomputes bounds and centroids after an identity
// change of the component set.
func (c *Controller) refreshDerived() {
	components := c.registry.Components()

	bounds, skipped := spatial.Bounds(components)
	if skipped > 0 {
		c.log.Warn("components without computable bounds", zap.Int("count", skipped))
	}
	c.model.bounds = bounds
	if bounds.IsValid() {
		c.model.center = bounds.Center()
		c.model.size = bounds.Size().MaxComponent()
	} else {
		c.model.center = geometry.Vector3{}
		c.model.size = 0
	}
	c.model.centroids = spatial.Centroids(components)
}

func (c *Controller) present() {
	c.presenter.Present(c.registry.Components())
}

// Shutdown cancels any in-flight load, stops the watcher and releases
// the current snapshot.
func (c *Controller) Shutdown() {
	c.load.mu.Lock()
	task := c.load.task
	c.load.mu.Unlock()
	if task != nil {
		task.Cancel()
		task.Wait()
	}
	c.dropPending()
	if c.watch.watcher != nil {
		c.watch.watcher.Close()
		c.watch.watcher = nil
	}
	c.registry.Clear()
}
