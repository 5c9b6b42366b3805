package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gobim/pkg/geometry"
	"github.com/philipparndt/gobim/pkg/measure"
)

func TestExplodeDisplacesAndRestores(t *testing.T) {
	c := newTestController(nil)
	loadFixture(t, c, simpleFixture(1, 3))

	// Model spans x 1..4, so the center is x=2.5 and component 1's
	// centroid (x=1.5) lies on the negative x side.
	c.SetExplodeAmount(1.0)

	comp, ok := c.Registry().Get(1)
	require.True(t, ok)
	assert.Less(t, comp.Position.X, 0.0)
	assert.InDelta(t, 0.0, comp.Position.Y, 1e-10)

	other, ok := c.Registry().Get(3)
	require.True(t, ok)
	assert.Greater(t, other.Position.X, 0.0)

	c.SetExplodeAmount(0)
	assert.Equal(t, comp.InitialPosition, comp.Position)
	assert.Equal(t, other.InitialPosition, other.Position)
}

func TestExplodeAmountIsClamped(t *testing.T) {
	c := newTestController(nil)
	loadFixture(t, c, simpleFixture(1, 3))

	c.SetExplodeAmount(99)
	assert.Equal(t, c.cfg.ExplodeMax, c.ExplodeAmount())

	c.SetExplodeAmount(-5)
	assert.Equal(t, 0.0, c.ExplodeAmount())
	comp, _ := c.Registry().Get(1)
	assert.Equal(t, comp.InitialPosition, comp.Position)
}

func TestExplodeZeroDriftAfterRepeatedGestures(t *testing.T) {
	c := newTestController(nil)
	loadFixture(t, c, simpleFixture(1, 3))

	for range 50 {
		c.SetExplodeAmount(1.7)
		c.SetExplodeAmount(0.3)
	}
	c.SetExplodeAmount(0)

	for _, comp := range c.Components() {
		assert.Equal(t, comp.InitialPosition, comp.Position)
	}
}

func TestClipSequence(t *testing.T) {
	c := newTestController(nil)
	loadFixture(t, c, simpleFixture(1, 2))

	c.SetClipActive(true)
	c.SetSplitPosition(40)

	for _, comp := range c.Components() {
		require.NotNil(t, comp.ClipPlane)
		assert.Equal(t, geometry.NewVector3(1, 0, 0), comp.ClipPlane.Normal)
		assert.InDelta(t, -4.0, comp.ClipPlane.Constant, 1e-10)
	}

	c.SetClipAxis(geometry.AxisZ)
	for _, comp := range c.Components() {
		assert.Equal(t, geometry.NewVector3(0, 0, 1), comp.ClipPlane.Normal)
	}

	c.SetClipActive(false)
	for _, comp := range c.Components() {
		assert.Nil(t, comp.ClipPlane)
	}

	c.SetClipActive(true)
	for _, comp := range c.Components() {
		require.NotNil(t, comp.ClipPlane)
		assert.InDelta(t, -4.0, comp.ClipPlane.Constant, 1e-10)
	}
}

func TestClipSurvivesReload(t *testing.T) {
	c := newTestController(nil)
	loadFixture(t, c, simpleFixture(1))

	c.SetClipActive(true)
	c.SetSplitPosition(70)

	loadFixture(t, c, simpleFixture(5, 6))

	assert.True(t, c.ClipActive())
	for _, comp := range c.Components() {
		require.NotNil(t, comp.ClipPlane)
		assert.InDelta(t, -7.0, comp.ClipPlane.Constant, 1e-10)
	}
}

func TestPickHighlightsNearestComponent(t *testing.T) {
	presenter := &recordingPresenter{}
	c := newTestController(presenter)
	loadFixture(t, c, simpleFixture(1, 2))
	presented := presenter.presented

	c.Pick(geometry.NewRay(geometry.NewVector3(1.2, 0.3, -5), geometry.NewVector3(0, 0, 1)))

	comp, ok := c.Registry().Highlighted()
	require.True(t, ok)
	assert.Equal(t, int32(1), comp.ID)
	assert.Equal(t, presented+1, presenter.presented)

	// A second pick moves the highlight, never adds one
	c.Pick(geometry.NewRay(geometry.NewVector3(2.2, 0.3, -5), geometry.NewVector3(0, 0, 1)))
	comp, ok = c.Registry().Highlighted()
	require.True(t, ok)
	assert.Equal(t, int32(2), comp.ID)
}

func TestPickMissLeavesHighlightUntouched(t *testing.T) {
	presenter := &recordingPresenter{}
	c := newTestController(presenter)
	loadFixture(t, c, simpleFixture(1))

	c.Pick(geometry.NewRay(geometry.NewVector3(1.2, 0.3, -5), geometry.NewVector3(0, 0, 1)))
	presented := presenter.presented

	c.Pick(geometry.NewRay(geometry.NewVector3(50, 50, -5), geometry.NewVector3(0, 0, 1)))

	comp, ok := c.Registry().Highlighted()
	require.True(t, ok)
	assert.Equal(t, int32(1), comp.ID)
	assert.Equal(t, presented, presenter.presented)
}

func TestMeasurementThroughPicks(t *testing.T) {
	c := newTestController(nil)
	loadFixture(t, c, simpleFixture(1, 4))

	var results []measure.Result
	c.OnMeasurement = func(r measure.Result) { results = append(results, r) }

	c.SetMeasureActive(true)
	c.Pick(geometry.NewRay(geometry.NewVector3(1.2, 0.3, -5), geometry.NewVector3(0, 0, 1)))
	assert.Empty(t, results)

	c.Pick(geometry.NewRay(geometry.NewVector3(4.2, 0.3, -5), geometry.NewVector3(0, 0, 1)))
	require.Len(t, results, 1)
	assert.InDelta(t, 3.0, results[0].Distance, 1e-10)

	// The tool stays armed; measuring again works without rearming
	c.Pick(geometry.NewRay(geometry.NewVector3(1.2, 0.3, -5), geometry.NewVector3(0, 0, 1)))
	c.Pick(geometry.NewRay(geometry.NewVector3(1.4, 0.3, -5), geometry.NewVector3(0, 0, 1)))
	assert.Len(t, results, 2)

	// Picks while measuring never move the highlight
	_, highlighted := c.Registry().Highlighted()
	assert.False(t, highlighted)
}

func TestMeasurementMissIsIgnored(t *testing.T) {
	c := newTestController(nil)
	loadFixture(t, c, simpleFixture(1))

	var results []measure.Result
	c.OnMeasurement = func(r measure.Result) { results = append(results, r) }

	c.SetMeasureActive(true)
	c.Pick(geometry.NewRay(geometry.NewVector3(1.2, 0.3, -5), geometry.NewVector3(0, 0, 1)))
	c.Pick(geometry.NewRay(geometry.NewVector3(50, 50, -5), geometry.NewVector3(0, 0, 1)))
	assert.Empty(t, results)

	// The miss did not consume the first point
	c.Pick(geometry.NewRay(geometry.NewVector3(1.4, 0.3, -5), geometry.NewVector3(0, 0, 1)))
	require.Len(t, results, 1)
	assert.InDelta(t, 0.2, results[0].Distance, 1e-10)
}

func TestDeactivatingMeasurementDiscardsCapture(t *testing.T) {
	c := newTestController(nil)
	loadFixture(t, c, simpleFixture(1))

	var results []measure.Result
	c.OnMeasurement = func(r measure.Result) { results = append(results, r) }

	c.SetMeasureActive(true)
	c.Pick(geometry.NewRay(geometry.NewVector3(1.2, 0.3, -5), geometry.NewVector3(0, 0, 1)))
	c.SetMeasureActive(false)
	c.SetMeasureActive(true)

	c.Pick(geometry.NewRay(geometry.NewVector3(1.4, 0.3, -5), geometry.NewVector3(0, 0, 1)))
	assert.Empty(t, results)
}

func TestShutdownReleasesEverything(t *testing.T) {
	c := newTestController(nil)
	loadFixture(t, c, simpleFixture(1, 2))

	c.Shutdown()
	assert.Equal(t, 0, c.Registry().Len())
}
