// Package gesture interprets pointer input on overlay widgets and turns it
// into placement mutations. The controller is UI-toolkit agnostic; the Fyne
// layer translates its events into PointerDown/Move/Up calls.
package gesture

import (
	"math"

	"garment-studio/internal/coords"
	"garment-studio/internal/placement"
	"garment-studio/pkg/geometry"
)

// Mode is the controller state.
type Mode int

const (
	Idle Mode = iota
	Dragging
	Scaling
	Rotating
)

func (m Mode) String() string {
	switch m {
	case Dragging:
		return "dragging"
	case Scaling:
		return "scaling"
	case Rotating:
		return "rotating"
	default:
		return "idle"
	}
}

// Control identifies which sub-control of an overlay widget was grabbed.
type Control int

const (
	ControlMove Control = iota
	ControlScale
	ControlRotate
)

// minGestureDist ignores scale/rotate steps too close to the widget center,
// where the distance ratio and angle become numerically meaningless.
const minGestureDist = 2.0

// PlacementUpdater applies gesture deltas to placements. The app state
// implements it and serializes the write against async image completions.
type PlacementUpdater interface {
	UpdateFromGesture(regionID string, d placement.Delta)
}

// Controller tracks at most one active gesture and applies a placement
// delta on each movement step. Only one region can be active at a time;
// grabbing a second region implicitly ends the first gesture.
type Controller struct {
	store PlacementUpdater

	mode    Mode
	region  string
	lastPos geometry.Point2D

	// Overlay frame captured at gesture start: widget pixel size for drag
	// normalization, widget center for scale/rotate vectors.
	overlaySize geometry.Size
	center      geometry.Point2D

	// onChange fires after every applied step; the app layer recomposites.
	onChange func(regionID string)
}

// New creates a Controller over the given updater. onChange may be nil.
func New(store PlacementUpdater, onChange func(regionID string)) *Controller {
	return &Controller{store: store, onChange: onChange}
}

// Mode returns the current gesture mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// ActiveRegion returns the region id of the gesture in progress, or "".
func (c *Controller) ActiveRegion() string {
	if c.mode == Idle {
		return ""
	}
	return c.region
}

// PointerDown starts a gesture on a region. pos is in overlay pixel
// coordinates; overlaySize and center describe the widget the gesture runs
// in, captured once so mid-gesture layout changes cannot skew deltas.
func (c *Controller) PointerDown(regionID string, ctrl Control, pos geometry.Point2D, overlaySize geometry.Size, center geometry.Point2D) {
	if c.mode != Idle && c.region != regionID {
		// Single-active-region rule.
		c.Cancel()
	}

	switch ctrl {
	case ControlScale:
		c.mode = Scaling
	case ControlRotate:
		c.mode = Rotating
	default:
		c.mode = Dragging
	}
	c.region = regionID
	c.lastPos = pos
	c.overlaySize = overlaySize
	c.center = center
}

// PointerMove applies one movement step of the active gesture.
func (c *Controller) PointerMove(pos geometry.Point2D) {
	if c.mode == Idle {
		return
	}

	var delta placement.Delta
	applied := false

	switch c.mode {
	case Dragging:
		if c.overlaySize.Width > 0 && c.overlaySize.Height > 0 {
			delta.Move = coords.PixelToNormalized(pos.Sub(c.lastPos), c.overlaySize)
			applied = true
		}

	case Rotating:
		last := c.lastPos.Sub(c.center)
		cur := pos.Sub(c.center)
		if last.Distance(geometry.Point2D{}) >= minGestureDist &&
			cur.Distance(geometry.Point2D{}) >= minGestureDist {
			delta.RotateDeg = angleDeltaDeg(last, cur)
			applied = true
		}

	case Scaling:
		lastDist := c.lastPos.Distance(c.center)
		curDist := pos.Distance(c.center)
		if lastDist >= minGestureDist && curDist >= minGestureDist {
			delta.ScaleFactor = curDist / lastDist
			applied = true
		}
	}

	c.lastPos = pos
	if !applied {
		return
	}

	c.store.UpdateFromGesture(c.region, delta)
	if c.onChange != nil {
		c.onChange(c.region)
	}
}

// PointerUp ends the active gesture.
func (c *Controller) PointerUp() {
	c.reset()
}

// Cancel aborts the active gesture without a final step.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	c.mode = Idle
	c.region = ""
	c.lastPos = geometry.Point2D{}
	c.overlaySize = geometry.Size{}
	c.center = geometry.Point2D{}
}

// angleDeltaDeg returns the signed angle from vector a to vector b in
// degrees, in (-180, 180].
func angleDeltaDeg(a, b geometry.Point2D) float64 {
	d := (b.Angle() - a.Angle()) * 180 / math.Pi
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
