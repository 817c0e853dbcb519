package placement

import "garment-studio/pkg/geometry"

// Preset is a named placement transform.
type Preset struct {
	Position    geometry.Point2D
	Scale       float64
	RotationDeg float64
}

// Named presets offered by the UI. Positions are in placement space.
var presets = map[string]Preset{
	"center": {
		Position: geometry.Point2D{X: 0.5, Y: 0.5},
		Scale:    1.0,
	},
	// Small chest print, left side as worn.
	"chest": {
		Position: geometry.Point2D{X: 0.70, Y: 0.25},
		Scale:    0.35,
	},
	"full": {
		Position: geometry.Point2D{X: 0.5, Y: 0.5},
		Scale:    2.2,
	},
	"sleeve": {
		Position: geometry.Point2D{X: 0.5, Y: 0.40},
		Scale:    0.5,
	},
}

// PresetNames returns the known preset names.
func PresetNames() []string {
	return []string{"center", "chest", "full", "sleeve"}
}
