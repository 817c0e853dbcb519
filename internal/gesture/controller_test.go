package gesture

import (
	"testing"

	"garment-studio/internal/garment"
	"garment-studio/internal/placement"
	"garment-studio/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*placement.Store, *Controller, *[]string) {
	t.Helper()
	regions, err := garment.RegionsFor(garment.TypeTShirt)
	require.NoError(t, err)
	store := placement.NewStore(regions)

	var changed []string
	ctrl := New(store, func(id string) { changed = append(changed, id) })
	return store, ctrl, &changed
}

var (
	overlay = geometry.NewSize(200, 200)
	center  = geometry.Point2D{X: 100, Y: 100}
)

func TestDragMovesPositionNormalized(t *testing.T) {
	store, ctrl, changed := setup(t)

	ctrl.PointerDown(garment.RegionFront, ControlMove, geometry.Point2D{X: 100, Y: 100}, overlay, center)
	ctrl.PointerMove(geometry.Point2D{X: 120, Y: 90})

	p, _ := store.Get(garment.RegionFront)
	assert.InDelta(t, 0.6, p.Position.X, 1e-9) // 0.5 + 20/200
	assert.InDelta(t, 0.45, p.Position.Y, 1e-9)
	assert.Equal(t, []string{garment.RegionFront}, *changed)
}

func TestDragClampsAtBoundary(t *testing.T) {
	store, ctrl, _ := setup(t)

	ctrl.PointerDown(garment.RegionFront, ControlMove, geometry.Point2D{}, overlay, center)
	ctrl.PointerMove(geometry.Point2D{X: 1e7, Y: -1e7})

	p, _ := store.Get(garment.RegionFront)
	assert.Equal(t, 1.0, p.Position.X)
	assert.Equal(t, 0.0, p.Position.Y)
}

func TestScaleConvergesToMax(t *testing.T) {
	store, ctrl, _ := setup(t)

	// Each gesture drags the handle from distance 10 to 200: a 20x step.
	for i := 0; i < 10; i++ {
		ctrl.PointerDown(garment.RegionFront, ControlScale, geometry.Point2D{X: 110, Y: 100}, overlay, center)
		ctrl.PointerMove(geometry.Point2D{X: 300, Y: 100})
		ctrl.PointerUp()
	}
	p, _ := store.Get(garment.RegionFront)
	assert.Equal(t, placement.MaxScale, p.Scale)

	// Shrinking below the floor clamps at MinScale.
	for i := 0; i < 40; i++ {
		ctrl.PointerDown(garment.RegionFront, ControlScale, geometry.Point2D{X: 180, Y: 100}, overlay, center)
		ctrl.PointerMove(geometry.Point2D{X: 104, Y: 100})
		ctrl.PointerUp()
	}
	p, _ = store.Get(garment.RegionFront)
	assert.Equal(t, placement.MinScale, p.Scale)
}

func TestRotateFollowsAngleDelta(t *testing.T) {
	store, ctrl, _ := setup(t)

	// From +X axis to +Y axis around the center: 90 degrees.
	ctrl.PointerDown(garment.RegionFront, ControlRotate, geometry.Point2D{X: 150, Y: 100}, overlay, center)
	ctrl.PointerMove(geometry.Point2D{X: 100, Y: 150})

	p, _ := store.Get(garment.RegionFront)
	assert.InDelta(t, 90, p.RotationDeg, 1e-9)
}

func TestRotateNearCenterIsIgnored(t *testing.T) {
	store, ctrl, _ := setup(t)

	ctrl.PointerDown(garment.RegionFront, ControlRotate, geometry.Point2D{X: 100.5, Y: 100}, overlay, center)
	ctrl.PointerMove(geometry.Point2D{X: 100, Y: 100.5})

	p, _ := store.Get(garment.RegionFront)
	assert.Equal(t, 0.0, p.RotationDeg)
}

func TestSingleActiveRegion(t *testing.T) {
	_, ctrl, _ := setup(t)

	ctrl.PointerDown(garment.RegionFront, ControlMove, center, overlay, center)
	assert.Equal(t, garment.RegionFront, ctrl.ActiveRegion())
	assert.Equal(t, Dragging, ctrl.Mode())

	// Grabbing another region implicitly ends the first gesture.
	ctrl.PointerDown(garment.RegionBack, ControlRotate, center, overlay, center)
	assert.Equal(t, garment.RegionBack, ctrl.ActiveRegion())
	assert.Equal(t, Rotating, ctrl.Mode())

	ctrl.PointerUp()
	assert.Equal(t, Idle, ctrl.Mode())
	assert.Equal(t, "", ctrl.ActiveRegion())
}

func TestMoveWhileIdleDoesNothing(t *testing.T) {
	store, ctrl, changed := setup(t)
	before := store.Version()

	ctrl.PointerMove(geometry.Point2D{X: 50, Y: 50})

	assert.Equal(t, before, store.Version())
	assert.Empty(t, *changed)
}
