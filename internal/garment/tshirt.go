package garment

import "garment-studio/pkg/geometry"

// T-shirt region layout.
//
// The texture atlas packs the torso islands in the top band (front left,
// back right) and both sleeve islands along the bottom. Overlay bounds are
// authored against the front-facing camera framing used by the viewer.

const (
	// Sleeve islands are unwrapped from a curved surface, so a decoration
	// needs extra horizontal shrink to look undistorted on the mesh.
	tshirtSleeveStretchU = 1.35
	tshirtSleeveStretchV = 1.10

	// Torso islands are near-flat; only slight vertical correction.
	tshirtTorsoStretchU = 1.00
	tshirtTorsoStretchV = 1.15
)

// TShirtRegions returns the print regions of the basic t-shirt, in draw order.
func TShirtRegions() []Region {
	return []Region{
		{
			ID:           RegionFront,
			DisplayName:  "Front",
			Bounds:       geometry.NewRect(0.30, 0.25, 0.40, 0.45),
			UVRect:       geometry.UVRect{U1: 0.05, V1: 0.05, U2: 0.45, V2: 0.60},
			DefaultScale: 1.0,
			StretchU:     tshirtTorsoStretchU,
			StretchV:     tshirtTorsoStretchV,
		},
		{
			ID:           RegionBack,
			DisplayName:  "Back",
			Bounds:       geometry.NewRect(0.30, 0.25, 0.40, 0.45),
			UVRect:       geometry.UVRect{U1: 0.55, V1: 0.05, U2: 0.95, V2: 0.60},
			DefaultScale: 1.0,
			StretchU:     tshirtTorsoStretchU,
			StretchV:     tshirtTorsoStretchV,
		},
		{
			ID:           RegionLeftArm,
			DisplayName:  "Left Sleeve",
			Bounds:       geometry.NewRect(0.08, 0.30, 0.16, 0.25),
			UVRect:       geometry.UVRect{U1: 0.05, V1: 0.70, U2: 0.25, V2: 0.95},
			DefaultScale: 0.6,
			StretchU:     tshirtSleeveStretchU,
			StretchV:     tshirtSleeveStretchV,
			// The left sleeve island is mirrored in the atlas.
			Correction: &Correction{
				Scale:       geometry.Point2D{X: -1, Y: 1},
				RotationDeg: -8,
			},
		},
		{
			ID:           RegionRightArm,
			DisplayName:  "Right Sleeve",
			Bounds:       geometry.NewRect(0.76, 0.30, 0.16, 0.25),
			UVRect:       geometry.UVRect{U1: 0.30, V1: 0.70, U2: 0.50, V2: 0.95},
			DefaultScale: 0.6,
			StretchU:     tshirtSleeveStretchU,
			StretchV:     tshirtSleeveStretchV,
			Correction: &Correction{
				Scale:       geometry.Point2D{X: 1, Y: 1},
				RotationDeg: 8,
			},
		},
	}
}
