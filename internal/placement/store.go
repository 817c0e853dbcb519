// Package placement tracks the mutable per-region decoration state:
// which image is placed where, at what scale and rotation.
package placement

import (
	"image"
	"log"

	"garment-studio/internal/garment"
	"garment-studio/pkg/geometry"
)

const (
	// MinScale and MaxScale bound a placement's scale at every observation
	// point; setters clamp rather than reject.
	MinScale = 0.1
	MaxScale = 3.0

	// All addresses every region in Clear.
	All = "all"
)

// Placement is the mutable state of one print region. Position is in
// placement space ([0,1]² across the region), rotation wraps mod 360.
type Placement struct {
	Image       image.Image
	Position    geometry.Point2D
	Scale       float64
	RotationDeg float64
}

// Delta is an incremental placement change produced by a gesture step.
// Zero-valued fields leave their component untouched.
type Delta struct {
	Move        geometry.Point2D // normalized position offset
	ScaleFactor float64          // multiplicative; 0 means no change
	RotateDeg   float64          // additive degrees
}

// Store holds exactly one Placement per region of the active garment. It is
// not safe for concurrent use; the app state wraps every call, including
// gesture steps and async image completions, in its own mutex.
type Store struct {
	regions    []garment.Region
	placements map[string]*Placement
	version    uint64
}

// NewStore creates a store with one default placement per region.
func NewStore(regions []garment.Region) *Store {
	s := &Store{}
	s.Reset(regions)
	return s
}

// Reset replaces the region set and reseeds every placement from the region
// defaults. Called on garment type change.
func (s *Store) Reset(regions []garment.Region) {
	s.regions = regions
	s.placements = make(map[string]*Placement, len(regions))
	for _, r := range regions {
		s.placements[r.ID] = &Placement{
			Position: geometry.Point2D{X: 0.5, Y: 0.5},
			Scale:    geometry.Clamp(r.DefaultScale, MinScale, MaxScale),
		}
	}
	s.version++
}

// SetImage places a decoded image on a region. A nil image clears it.
func (s *Store) SetImage(regionID string, img image.Image) {
	p, ok := s.placements[regionID]
	if !ok {
		log.Printf("placement: SetImage: unknown region %q, ignoring", regionID)
		return
	}
	p.Image = img
	s.version++
}

// Clear removes the image from a region (or every region when id is All)
// and restores the region's default transform.
func (s *Store) Clear(regionID string) {
	if regionID == All {
		s.Reset(s.regions)
		return
	}
	r, ok := garment.Find(s.regions, regionID)
	if !ok {
		log.Printf("placement: Clear: unknown region %q, ignoring", regionID)
		return
	}
	s.placements[regionID] = &Placement{
		Position: geometry.Point2D{X: 0.5, Y: 0.5},
		Scale:    geometry.Clamp(r.DefaultScale, MinScale, MaxScale),
	}
	s.version++
}

// ApplyPreset sets a region's transform from a named preset. Unknown region
// or preset names are warned and ignored.
func (s *Store) ApplyPreset(regionID, presetName string) {
	p, ok := s.placements[regionID]
	if !ok {
		log.Printf("placement: ApplyPreset: unknown region %q, ignoring", regionID)
		return
	}
	preset, ok := presets[presetName]
	if !ok {
		log.Printf("placement: ApplyPreset: unknown preset %q, ignoring", presetName)
		return
	}
	p.Position = preset.Position.Clamp(0, 1)
	p.Scale = geometry.Clamp(preset.Scale, MinScale, MaxScale)
	p.RotationDeg = geometry.WrapDegrees(preset.RotationDeg)
	s.version++
}

// UpdateFromGesture applies an incremental gesture delta, clamping position
// and scale and wrapping rotation.
func (s *Store) UpdateFromGesture(regionID string, d Delta) {
	p, ok := s.placements[regionID]
	if !ok {
		log.Printf("placement: UpdateFromGesture: unknown region %q, ignoring", regionID)
		return
	}
	p.Position = p.Position.Add(d.Move).Clamp(0, 1)
	if d.ScaleFactor != 0 {
		p.Scale = geometry.Clamp(p.Scale*d.ScaleFactor, MinScale, MaxScale)
	}
	if d.RotateDeg != 0 {
		p.RotationDeg = geometry.WrapDegrees(p.RotationDeg + d.RotateDeg)
	}
	s.version++
}

// Get returns a copy of a region's placement.
func (s *Store) Get(regionID string) (Placement, bool) {
	p, ok := s.placements[regionID]
	if !ok {
		return Placement{}, false
	}
	return *p, true
}

// Snapshot returns a copy of every placement keyed by region id, suitable
// as immutable compositor input.
func (s *Store) Snapshot() map[string]Placement {
	out := make(map[string]Placement, len(s.placements))
	for id, p := range s.placements {
		out[id] = *p
	}
	return out
}

// Regions returns the active region table in draw order.
func (s *Store) Regions() []garment.Region {
	return s.regions
}

// Version increments on every mutation; the UI uses it to skip redundant
// recomposites.
func (s *Store) Version() uint64 {
	return s.version
}
