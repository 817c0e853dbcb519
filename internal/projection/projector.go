// Package projection maps camera views to the visible/primary region set
// and pseudo-3D transforms for the flat overlay widgets. The mapping is a
// hand-authored per-view table, not real raycasting: the camera orbits
// between four discrete views, and the table is cheaper and adequate.
package projection

import (
	"log"

	"garment-studio/internal/coords"
	"garment-studio/internal/garment"
)

// Perspective strengths: the primary region faces the camera head-on,
// secondaries curve away.
const (
	PrimaryStrength   = 1.0
	SecondaryStrength = 0.7
)

// Stacking order values for Transform.Order.
const (
	OrderHidden = iota
	OrderSecondary
	OrderPrimary
)

// Transform is a pure-data pseudo-3D transform for an overlay widget. The
// platform adapter decides how to render it (Fyne approximates it with
// scale and offset); the core never deals in toolkit transform strings.
type Transform struct {
	RotateY    float64 // degrees, positive turns the widget's left edge away
	TranslateX float64 // normalized screen units, positive moves right
	TranslateZ float64 // pseudo-depth, negative recedes from the camera
	Order      int     // stacking order, higher draws on top
}

// Projection describes one region's overlay for the current camera view.
type Projection struct {
	RegionID  string
	Visible   bool
	IsPrimary bool
	Strength  float64
	Transform Transform
}

type tableEntry struct {
	region    string
	primary   bool
	transform Transform
}

// viewTable is the per-view visibility heuristic. One primary per view plus
// one or two secondaries that suggest curvature away from the camera.
// Entries for regions the active garment lacks are skipped.
var viewTable = map[coords.View][]tableEntry{
	coords.ViewFront: {
		{region: garment.RegionFront, primary: true, transform: Transform{Order: OrderPrimary}},
		{region: garment.RegionLeftArm, transform: Transform{RotateY: 35, TranslateX: -0.12, TranslateZ: -0.20, Order: OrderSecondary}},
		{region: garment.RegionRightArm, transform: Transform{RotateY: -35, TranslateX: 0.12, TranslateZ: -0.20, Order: OrderSecondary}},
	},
	coords.ViewBack: {
		{region: garment.RegionBack, primary: true, transform: Transform{Order: OrderPrimary}},
		// Arms swap screen sides when the camera faces the back.
		{region: garment.RegionRightArm, transform: Transform{RotateY: 35, TranslateX: -0.12, TranslateZ: -0.20, Order: OrderSecondary}},
		{region: garment.RegionLeftArm, transform: Transform{RotateY: -35, TranslateX: 0.12, TranslateZ: -0.20, Order: OrderSecondary}},
		{region: garment.RegionHood, transform: Transform{RotateY: 0, TranslateX: 0, TranslateZ: -0.10, Order: OrderSecondary}},
	},
	coords.ViewLeft: {
		{region: garment.RegionLeftArm, primary: true, transform: Transform{Order: OrderPrimary}},
		{region: garment.RegionFront, transform: Transform{RotateY: -55, TranslateX: 0.18, TranslateZ: -0.30, Order: OrderSecondary}},
	},
	coords.ViewRight: {
		{region: garment.RegionRightArm, primary: true, transform: Transform{Order: OrderPrimary}},
		{region: garment.RegionFront, transform: Transform{RotateY: 55, TranslateX: -0.18, TranslateZ: -0.30, Order: OrderSecondary}},
	},
}

// Project returns one projection per region of the garment, in registry
// order, for a recognized camera view.
func Project(view coords.View, regions []garment.Region) []Projection {
	entries, ok := viewTable[view]
	if !ok {
		return identityFallback(view.String(), regions)
	}

	byRegion := make(map[string]tableEntry, len(entries))
	for _, e := range entries {
		byRegion[e.region] = e
	}

	out := make([]Projection, 0, len(regions))
	for _, r := range regions {
		e, visible := byRegion[r.ID]
		p := Projection{RegionID: r.ID, Visible: visible}
		if visible {
			p.IsPrimary = e.primary
			p.Transform = e.transform
			if e.primary {
				p.Strength = PrimaryStrength
			} else {
				p.Strength = SecondaryStrength
			}
		}
		out = append(out, p)
	}
	return out
}

// ProjectID projects a raw camera-view id. Unrecognized ids fall back
// through the coordinate mapper's identity mapping: if a region with the
// same id exists it becomes the sole primary, otherwise nothing is visible.
func ProjectID(viewID string, regions []garment.Region) []Projection {
	if v := coords.ParseView(viewID); v != coords.ViewUnknown {
		return Project(v, regions)
	}
	return identityFallback(viewID, regions)
}

func identityFallback(viewID string, regions []garment.Region) []Projection {
	target := coords.ViewToRegion(viewID)
	if _, ok := garment.Find(regions, target); !ok {
		log.Printf("projection: view %q matches no region, hiding overlays", viewID)
	}

	out := make([]Projection, 0, len(regions))
	for _, r := range regions {
		p := Projection{RegionID: r.ID}
		if r.ID == target {
			p.Visible = true
			p.IsPrimary = true
			p.Strength = PrimaryStrength
			p.Transform = Transform{Order: OrderPrimary}
		}
		out = append(out, p)
	}
	return out
}

// Primary returns the primary projection of a set, if any.
func Primary(projections []Projection) (Projection, bool) {
	for _, p := range projections {
		if p.IsPrimary {
			return p, true
		}
	}
	return Projection{}, false
}
