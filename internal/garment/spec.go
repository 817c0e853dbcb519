// Package garment provides per-garment-type print region definitions.
package garment

import (
	"errors"
	"fmt"

	"garment-studio/pkg/geometry"
)

// Well-known region identifiers. Side views of the camera map onto the arm
// regions; see the coords package.
const (
	RegionFront    = "front"
	RegionBack     = "back"
	RegionLeftArm  = "left_arm"
	RegionRightArm = "right_arm"
	RegionHood     = "hood"
)

// Garment type identifiers.
const (
	TypeTShirt     = "tshirt"
	TypeHoodie     = "hoodie"
	TypeLongsleeve = "longsleeve"

	// DefaultType is the fallback when an unknown garment type is requested.
	DefaultType = TypeTShirt
)

// ErrUnknownGarment is returned by RegionsFor for garment types without a
// region table. Callers fall back to DefaultType instead of leaving regions
// undefined.
var ErrUnknownGarment = errors.New("unknown garment type")

// Correction is an optional per-region transform compensating for how the
// garment mesh was unwrapped (mirrored sleeves, tilted UV islands).
type Correction struct {
	Scale       geometry.Point2D `json:"scale"`
	RotationDeg float64          `json:"rotation"`
	Offset      geometry.Point2D `json:"offset"`
}

// Region describes one print region of a garment: where its interaction
// overlay sits on screen (normalized bounds), which part of the texture it
// owns (UV rectangle), and how placements are scaled into it.
type Region struct {
	ID          string
	DisplayName string

	// Bounds is the overlay bounding box in normalized screen space.
	Bounds geometry.Rect

	// UVRect is the texture-space target rectangle.
	UVRect geometry.UVRect

	// DefaultScale seeds the region's placement.
	DefaultScale float64

	// StretchU/StretchV are heuristic constants correcting UV distortion:
	// a decoration drawn at scale s covers s/StretchU of the rect
	// horizontally. Sleeves stretch differently than the torso.
	StretchU float64
	StretchV float64

	Correction *Correction
}

// registry maps garment types to region table constructors.
var registry = map[string]func() []Region{
	TypeTShirt:     TShirtRegions,
	TypeHoodie:     HoodieRegions,
	TypeLongsleeve: LongsleeveRegions,
}

// RegionsFor returns the region table for a garment type, in draw order.
func RegionsFor(garmentType string) ([]Region, error) {
	ctor, ok := registry[garmentType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGarment, garmentType)
	}
	return ctor(), nil
}

// Types returns the known garment type identifiers.
func Types() []string {
	return []string{TypeTShirt, TypeHoodie, TypeLongsleeve}
}

// Find returns the region with the given id from a region table.
func Find(regions []Region, id string) (Region, bool) {
	for _, r := range regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}
