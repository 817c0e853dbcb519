// Package coords converts between camera views, print regions, and the
// pixel / normalized / UV coordinate spaces.
package coords

import (
	"garment-studio/internal/garment"
	"garment-studio/pkg/geometry"
)

// View identifies one of the discrete camera orbit positions.
type View int

const (
	ViewFront View = iota
	ViewBack
	ViewLeft
	ViewRight
	ViewUnknown
)

var viewNames = map[View]string{
	ViewFront: "front",
	ViewBack:  "back",
	ViewLeft:  "left",
	ViewRight: "right",
}

var viewsByName = map[string]View{
	"front": ViewFront,
	"back":  ViewBack,
	"left":  ViewLeft,
	"right": ViewRight,
}

// viewRegion maps each recognized view to the region it faces. Side views
// map many-to-one onto the arm regions.
var viewRegion = map[View]string{
	ViewFront: garment.RegionFront,
	ViewBack:  garment.RegionBack,
	ViewLeft:  garment.RegionLeftArm,
	ViewRight: garment.RegionRightArm,
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return "unknown"
}

// ParseView returns the view for a camera-view id, or ViewUnknown.
func ParseView(id string) View {
	if v, ok := viewsByName[id]; ok {
		return v
	}
	return ViewUnknown
}

// Views returns all recognized views in orbit order.
func Views() []View {
	return []View{ViewFront, ViewBack, ViewLeft, ViewRight}
}

// Region returns the region id a recognized view faces.
func (v View) Region() string {
	return viewRegion[v]
}

// ViewToRegion is the total view→region mapping over raw ids: recognized
// side views collapse onto the arm regions, everything else (front, back,
// and any unrecognized id) maps to itself.
func ViewToRegion(id string) string {
	if v := ParseView(id); v != ViewUnknown {
		return viewRegion[v]
	}
	return id
}

// PixelToNormalized maps a pixel position on a surface of the given size to
// normalized (0..1, 0..1) coordinates.
func PixelToNormalized(p geometry.Point2D, size geometry.Size) geometry.Point2D {
	if size.Width == 0 || size.Height == 0 {
		return geometry.Point2D{}
	}
	return geometry.Point2D{X: p.X / size.Width, Y: p.Y / size.Height}
}

// NormalizedToPixel maps normalized coordinates to pixels on a surface of
// the given size.
func NormalizedToPixel(n geometry.Point2D, size geometry.Size) geometry.Point2D {
	return geometry.Point2D{X: n.X * size.Width, Y: n.Y * size.Height}
}

// NormalizedToUV maps a placement-space position (0..1 within a region) to
// absolute UV coordinates inside the region's UV rectangle.
func NormalizedToUV(n geometry.Point2D, uv geometry.UVRect) geometry.Point2D {
	return geometry.Point2D{
		X: uv.U1 + n.X*uv.Width(),
		Y: uv.V1 + n.Y*uv.Height(),
	}
}

// UVToNormalized maps absolute UV coordinates to placement space within the
// region's UV rectangle.
func UVToNormalized(p geometry.Point2D, uv geometry.UVRect) geometry.Point2D {
	w, h := uv.Width(), uv.Height()
	if w == 0 || h == 0 {
		return geometry.Point2D{}
	}
	return geometry.Point2D{X: (p.X - uv.U1) / w, Y: (p.Y - uv.V1) / h}
}

// UVToPixel maps absolute UV coordinates to pixels on a texture canvas of
// the given size.
func UVToPixel(p geometry.Point2D, canvas geometry.Size) geometry.Point2D {
	return geometry.Point2D{X: p.X * canvas.Width, Y: p.Y * canvas.Height}
}
