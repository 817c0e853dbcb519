package garment

import "garment-studio/pkg/geometry"

// Hoodie region layout.
//
// The hoodie atlas reserves the bottom-right corner for the hood island.
// Front print area is shorter than the t-shirt's because of the kangaroo
// pocket; overlay bounds reflect that.

const (
	hoodieTorsoStretchU  = 1.05
	hoodieTorsoStretchV  = 1.20
	hoodieSleeveStretchU = 1.40
	hoodieSleeveStretchV = 1.15
	hoodieHoodStretchU   = 1.25
	hoodieHoodStretchV   = 1.25
)

// HoodieRegions returns the print regions of the hoodie, in draw order.
func HoodieRegions() []Region {
	return []Region{
		{
			ID:           RegionFront,
			DisplayName:  "Front",
			Bounds:       geometry.NewRect(0.31, 0.27, 0.38, 0.33),
			UVRect:       geometry.UVRect{U1: 0.05, V1: 0.05, U2: 0.45, V2: 0.50},
			DefaultScale: 0.9,
			StretchU:     hoodieTorsoStretchU,
			StretchV:     hoodieTorsoStretchV,
		},
		{
			ID:           RegionBack,
			DisplayName:  "Back",
			Bounds:       geometry.NewRect(0.30, 0.25, 0.40, 0.45),
			UVRect:       geometry.UVRect{U1: 0.55, V1: 0.05, U2: 0.95, V2: 0.60},
			DefaultScale: 1.0,
			StretchU:     hoodieTorsoStretchU,
			StretchV:     hoodieTorsoStretchV,
		},
		{
			ID:           RegionLeftArm,
			DisplayName:  "Left Sleeve",
			Bounds:       geometry.NewRect(0.07, 0.30, 0.17, 0.30),
			UVRect:       geometry.UVRect{U1: 0.05, V1: 0.62, U2: 0.25, V2: 0.95},
			DefaultScale: 0.55,
			StretchU:     hoodieSleeveStretchU,
			StretchV:     hoodieSleeveStretchV,
			Correction: &Correction{
				Scale:       geometry.Point2D{X: -1, Y: 1},
				RotationDeg: -10,
			},
		},
		{
			ID:           RegionRightArm,
			DisplayName:  "Right Sleeve",
			Bounds:       geometry.NewRect(0.76, 0.30, 0.17, 0.30),
			UVRect:       geometry.UVRect{U1: 0.30, V1: 0.62, U2: 0.50, V2: 0.95},
			DefaultScale: 0.55,
			StretchU:     hoodieSleeveStretchU,
			StretchV:     hoodieSleeveStretchV,
			Correction: &Correction{
				Scale:       geometry.Point2D{X: 1, Y: 1},
				RotationDeg: 10,
			},
		},
		{
			ID:           RegionHood,
			DisplayName:  "Hood",
			Bounds:       geometry.NewRect(0.38, 0.06, 0.24, 0.14),
			UVRect:       geometry.UVRect{U1: 0.60, V1: 0.65, U2: 0.92, V2: 0.95},
			DefaultScale: 0.5,
			StretchU:     hoodieHoodStretchU,
			StretchV:     hoodieHoodStretchV,
			Correction: &Correction{
				Scale:       geometry.Point2D{X: 1, Y: 1},
				RotationDeg: 180,
				Offset:      geometry.Point2D{X: 0, Y: 0.05},
			},
		},
	}
}
