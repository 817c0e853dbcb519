package garment

import "garment-studio/pkg/geometry"

// Longsleeve region layout. Same island arrangement as the t-shirt but the
// sleeve islands run the full bottom band and stretch harder along U.

const (
	longsleeveSleeveStretchU = 1.60
	longsleeveSleeveStretchV = 1.05
)

// LongsleeveRegions returns the print regions of the longsleeve shirt,
// in draw order.
func LongsleeveRegions() []Region {
	return []Region{
		{
			ID:           RegionFront,
			DisplayName:  "Front",
			Bounds:       geometry.NewRect(0.30, 0.25, 0.40, 0.45),
			UVRect:       geometry.UVRect{U1: 0.05, V1: 0.05, U2: 0.45, V2: 0.58},
			DefaultScale: 1.0,
			StretchU:     tshirtTorsoStretchU,
			StretchV:     tshirtTorsoStretchV,
		},
		{
			ID:           RegionBack,
			DisplayName:  "Back",
			Bounds:       geometry.NewRect(0.30, 0.25, 0.40, 0.45),
			UVRect:       geometry.UVRect{U1: 0.55, V1: 0.05, U2: 0.95, V2: 0.58},
			DefaultScale: 1.0,
			StretchU:     tshirtTorsoStretchU,
			StretchV:     tshirtTorsoStretchV,
		},
		{
			ID:           RegionLeftArm,
			DisplayName:  "Left Sleeve",
			Bounds:       geometry.NewRect(0.05, 0.28, 0.18, 0.34),
			UVRect:       geometry.UVRect{U1: 0.03, V1: 0.65, U2: 0.48, V2: 0.95},
			DefaultScale: 0.5,
			StretchU:     longsleeveSleeveStretchU,
			StretchV:     longsleeveSleeveStretchV,
			Correction: &Correction{
				Scale:       geometry.Point2D{X: -1, Y: 1},
				RotationDeg: -6,
			},
		},
		{
			ID:           RegionRightArm,
			DisplayName:  "Right Sleeve",
			Bounds:       geometry.NewRect(0.77, 0.28, 0.18, 0.34),
			UVRect:       geometry.UVRect{U1: 0.52, V1: 0.65, U2: 0.97, V2: 0.95},
			DefaultScale: 0.5,
			StretchU:     longsleeveSleeveStretchU,
			StretchV:     longsleeveSleeveStretchV,
			Correction: &Correction{
				Scale:       geometry.Point2D{X: 1, Y: 1},
				RotationDeg: 6,
			},
		},
	}
}
