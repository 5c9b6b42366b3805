package bim

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/philipparndt/gobim/pkg/geometry"
	"github.com/philipparndt/gobim/pkg/model"
)

// defaultLookupLimit bounds the number of in-flight property lookups per
// decode.
const defaultLookupLimit = 8

// DecodeStats counts the per-id outcomes of a decode
type DecodeStats struct {
	Processed int
	Failed    int
}

// Decoder extracts components from raw model bytes. Per-id metadata
// failures are absorbed and counted; only whole-load failures are
// returned as errors.
type Decoder struct {
	runtime     Runtime
	categories  CategoryTable
	log         *zap.Logger
	lookupLimit int

	// subsetHook observes every allocated subset; tests use it to verify
	// that no subset outlives a failed decode.
	subsetHook func(*GeometrySubset)
}

// NewDecoder creates a decoder over the given runtime. A nil category
// table falls back to the built-in one, a nil logger disables logging.
func NewDecoder(runtime Runtime, categories CategoryTable, log *zap.Logger) *Decoder {
	if categories == nil {
		categories = DefaultCategories()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Decoder{
		runtime:     runtime,
		categories:  categories,
		log:         log,
		lookupLimit: defaultLookupLimit,
	}
}

// Decode turns raw model bytes into an ordered component list. Order is
// first-seen id order of the vertex stream. onProgress, when non-nil, is
// invoked after every finished id; it may be called from multiple
// goroutines. On cancellation every geometry subset allocated so far is
// released before the error is returned.
func (d *Decoder) Decode(ctx context.Context, data []byte, onProgress func(done, total int)) ([]*model.Component, DecodeStats, error) {
	buffer, handle, err := d.runtime.Decode(data)
	if err != nil {
		return nil, DecodeStats{}, &ParseError{Err: err}
	}
	if err := buffer.Validate(); err != nil {
		return nil, DecodeStats{}, &ParseError{Err: err}
	}

	ids := buffer.DistinctIDs()
	d.log.Debug("extracting components",
		zap.Int("vertices", len(buffer.Vertices)),
		zap.Int("entities", len(ids)))

	results := make([]*model.Component, len(ids))

	var mu sync.Mutex
	done := 0
	failed := 0
	report := func() {
		mu.Lock()
		done++
		current := done
		mu.Unlock()
		if onProgress != nil {
			onProgress(current, len(ids))
		}
	}
	skip := func(subset *GeometrySubset, lookupErr *PropertyLookupError) {
		subset.Release()
		mu.Lock()
		failed++
		mu.Unlock()
		d.log.Warn("skipping entity", zap.Int32("id", lookupErr.ID), zap.Error(lookupErr))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.lookupLimit)
	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			subset := buffer.Subset(id)
			if d.subsetHook != nil {
				d.subsetHook(subset)
			}
			props, err := d.runtime.ItemProperties(handle, id)
			if err != nil {
				skip(subset, &PropertyLookupError{ID: id, Err: err})
				report()
				return nil
			}
			code, ok := props.TypeCode()
			if !ok {
				skip(subset, &PropertyLookupError{ID: id})
				report()
				return nil
			}
			name, ok := props.Name()
			if !ok {
				name = fmt.Sprintf("ID %d", id)
			}
			// Subset vertices are already world-space, so the explode
			// baseline every component starts from is the origin.
			results[i] = model.NewComponent(id, name, d.categories.Resolve(code), subset, geometry.Vector3{})
			report()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, c := range results {
			if c != nil {
				c.Geometry.Release()
			}
		}
		return nil, DecodeStats{}, err
	}

	components := make([]*model.Component, 0, len(results))
	for _, c := range results {
		if c != nil {
			components = append(components, c)
		}
	}
	stats := DecodeStats{Processed: len(components), Failed: failed}

	if len(components) == 0 {
		return nil, stats, &EmptyModelError{}
	}
	d.log.Info("decode complete",
		zap.Int("components", stats.Processed),
		zap.Int("skipped", stats.Failed))
	return components, stats, nil
}
