package coords

import (
	"testing"

	"garment-studio/pkg/geometry"

	"github.com/stretchr/testify/assert"
)

func TestViewToRegion(t *testing.T) {
	tests := []struct {
		view, region string
	}{
		{"front", "front"},
		{"back", "back"},
		{"left", "left_arm"},
		{"right", "right_arm"},
		{"unknown-x", "unknown-x"}, // identity fallback
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.region, ViewToRegion(tt.view), tt.view)
	}
}

func TestParseView(t *testing.T) {
	assert.Equal(t, ViewFront, ParseView("front"))
	assert.Equal(t, ViewLeft, ParseView("left"))
	assert.Equal(t, ViewUnknown, ParseView("top-down"))
	assert.Equal(t, "left", ViewLeft.String())
	assert.Equal(t, "unknown", ViewUnknown.String())
}

func TestEveryViewHasRegion(t *testing.T) {
	for _, v := range Views() {
		assert.NotEmpty(t, v.Region(), v.String())
	}
}

func TestPixelNormalizedRoundTrip(t *testing.T) {
	size := geometry.NewSize(800, 600)
	px := geometry.Point2D{X: 200, Y: 450}

	n := PixelToNormalized(px, size)
	assert.InDelta(t, 0.25, n.X, 1e-12)
	assert.InDelta(t, 0.75, n.Y, 1e-12)

	back := NormalizedToPixel(n, size)
	assert.InDelta(t, px.X, back.X, 1e-9)
	assert.InDelta(t, px.Y, back.Y, 1e-9)
}

func TestPixelToNormalizedZeroSize(t *testing.T) {
	n := PixelToNormalized(geometry.Point2D{X: 10, Y: 10}, geometry.Size{})
	assert.Equal(t, geometry.Point2D{}, n)
}

func TestUVRoundTrip(t *testing.T) {
	uv := geometry.UVRect{U1: 0.1, V1: 0.2, U2: 0.5, V2: 0.8}

	center := NormalizedToUV(geometry.Point2D{X: 0.5, Y: 0.5}, uv)
	assert.InDelta(t, 0.3, center.X, 1e-12)
	assert.InDelta(t, 0.5, center.Y, 1e-12)

	n := UVToNormalized(center, uv)
	assert.InDelta(t, 0.5, n.X, 1e-12)
	assert.InDelta(t, 0.5, n.Y, 1e-12)

	px := UVToPixel(center, geometry.NewSize(1024, 1024))
	assert.InDelta(t, 307.2, px.X, 1e-9)
	assert.InDelta(t, 512.0, px.Y, 1e-9)
}
