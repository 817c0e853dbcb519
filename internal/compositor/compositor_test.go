package compositor

import (
	"image"
	"image/color"
	"testing"

	"garment-studio/internal/garment"
	"garment-studio/internal/noise"
	"garment-studio/internal/placement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.CanvasSize = 64
	return opts
}

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func tshirtSetup(t *testing.T) ([]garment.Region, *placement.Store) {
	t.Helper()
	regions, err := garment.RegionsFor(garment.TypeTShirt)
	require.NoError(t, err)
	return regions, placement.NewStore(regions)
}

func TestComposeDeterministic(t *testing.T) {
	regions, store := tshirtSetup(t)
	store.SetImage(garment.RegionFront, solidImage(8, 8, color.RGBA{10, 10, 10, 255}))
	base := color.RGBA{200, 40, 40, 255}

	a := New(noise.New(42), testOptions()).
		Compose(garment.TypeTShirt, regions, store.Snapshot(), base, store.Version())
	b := New(noise.New(42), testOptions()).
		Compose(garment.TypeTShirt, regions, store.Snapshot(), base, store.Version())

	assert.Equal(t, a.Image.Pix, b.Image.Pix, "identical inputs must give byte-identical rasters")
}

func TestComposeUpdatedFlag(t *testing.T) {
	regions, store := tshirtSetup(t)
	c := New(noise.New(1), testOptions())
	base := color.RGBA{180, 180, 180, 255}

	first := c.Compose(garment.TypeTShirt, regions, store.Snapshot(), base, store.Version())
	assert.True(t, first.Updated)

	again := c.Compose(garment.TypeTShirt, regions, store.Snapshot(), base, store.Version())
	assert.False(t, again.Updated)
	assert.Same(t, first.Image, again.Image)

	store.UpdateFromGesture(garment.RegionFront, placement.Delta{RotateDeg: 10})
	third := c.Compose(garment.TypeTShirt, regions, store.Snapshot(), base, store.Version())
	assert.True(t, third.Updated)
}

func TestDecorationAppearsInFrontRectAndClears(t *testing.T) {
	regions, store := tshirtSetup(t)
	base := color.RGBA{220, 220, 220, 255}
	opts := testOptions()

	c := New(noise.New(7), opts)
	plain := c.Compose(garment.TypeTShirt, regions, store.Snapshot(), base, store.Version())

	store.SetImage(garment.RegionFront, solidImage(8, 8, color.RGBA{0, 0, 0, 255}))
	decorated := c.Compose(garment.TypeTShirt, regions, store.Snapshot(), base, store.Version())

	front, _ := garment.Find(regions, garment.RegionFront)
	rect := front.UVRect.ToRect(float64(opts.CanvasSize), float64(opts.CanvasSize))
	x0, y0 := int(rect.X), int(rect.Y)
	x1, y1 := int(rect.X+rect.Width)+1, int(rect.Y+rect.Height)+1

	diffInside, diffOutside := 0, 0
	for y := 0; y < opts.CanvasSize; y++ {
		for x := 0; x < opts.CanvasSize; x++ {
			i := decorated.Image.PixOffset(x, y)
			same := decorated.Image.Pix[i] == plain.Image.Pix[i] &&
				decorated.Image.Pix[i+1] == plain.Image.Pix[i+1] &&
				decorated.Image.Pix[i+2] == plain.Image.Pix[i+2]
			inside := x >= x0 && x < x1 && y >= y0 && y < y1
			if !same {
				if inside {
					diffInside++
				} else {
					diffOutside++
				}
			}
		}
	}
	assert.Greater(t, diffInside, 0, "front UV rect must contain non-background pixels")
	assert.Zero(t, diffOutside, "decoration must be clipped to its UV island")

	store.Clear(garment.RegionFront)
	cleared := c.Compose(garment.TypeTShirt, regions, store.Snapshot(), base, store.Version())
	assert.Equal(t, plain.Image.Pix, cleared.Image.Pix, "clearing must restore the grain-only raster")
}

func TestEmptyImageSkipsRegionOnly(t *testing.T) {
	regions, store := tshirtSetup(t)
	base := color.RGBA{220, 220, 220, 255}
	c := New(noise.New(7), testOptions())

	plain := c.Compose(garment.TypeTShirt, regions, store.Snapshot(), base, store.Version())

	// A zero-sized image stands in for a failed decode: that region is
	// skipped, the others still draw.
	store.SetImage(garment.RegionFront, image.NewRGBA(image.Rect(0, 0, 0, 0)))
	store.SetImage(garment.RegionBack, solidImage(4, 4, color.RGBA{0, 0, 0, 255}))
	out := c.Compose(garment.TypeTShirt, regions, store.Snapshot(), base, store.Version())

	front, _ := garment.Find(regions, garment.RegionFront)
	rect := front.UVRect.ToRect(64, 64)
	for y := int(rect.Y) + 1; y < int(rect.Y+rect.Height)-1; y++ {
		for x := int(rect.X) + 1; x < int(rect.X+rect.Width)-1; x++ {
			i := out.Image.PixOffset(x, y)
			assert.Equal(t, plain.Image.Pix[i], out.Image.Pix[i])
		}
	}

	back, _ := garment.Find(regions, garment.RegionBack)
	bc := back.UVRect.ToRect(64, 64).Center()
	i := out.Image.PixOffset(int(bc.X), int(bc.Y))
	assert.NotEqual(t, plain.Image.Pix[i], out.Image.Pix[i], "back region must still draw")
}

func TestShadingDarkensTowardEdges(t *testing.T) {
	regions, store := tshirtSetup(t)
	base := color.RGBA{200, 200, 200, 255}
	out := New(noise.New(3), testOptions()).
		Compose(garment.TypeTShirt, regions, store.Snapshot(), base, store.Version())

	corner := out.Image.PixOffset(0, 0)
	center := out.Image.PixOffset(32, 32)
	assert.Less(t, out.Image.Pix[corner], out.Image.Pix[center],
		"ambient occlusion must darken the texture border")
}
