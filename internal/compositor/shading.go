package compositor

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"garment-studio/pkg/geometry"
)

// applyShading multiplies the canvas by the fabric grain and edge
// ambient-occlusion field. The field depends only on canvas size, noise
// seed, and options, so it is built once and reused across composites.
func (c *Compositor) applyShading(dst *image.RGBA) {
	if c.shading == nil {
		c.shading = c.buildShadingField()
	}

	size := c.opts.CanvasSize
	for y := 0; y < size; y++ {
		row := y * dst.Stride
		for x := 0; x < size; x++ {
			m := c.shading[y*size+x]
			i := row + x*4
			dst.Pix[i] = mul8(dst.Pix[i], m)
			dst.Pix[i+1] = mul8(dst.Pix[i+1], m)
			dst.Pix[i+2] = mul8(dst.Pix[i+2], m)
		}
	}
}

// buildShadingField renders the grain at reduced resolution, upsamples it
// back with Catmull-Rom, and folds in the analytic edge falloff.
func (c *Compositor) buildShadingField() []float64 {
	size := c.opts.CanvasSize
	small := size / c.opts.GrainDownsample
	if small < 1 {
		small = 1
	}

	field := c.noise.GrainField(small, small, c.opts.Grain)

	// Quantize the small field into a grayscale image for resampling.
	smallImg := image.NewGray(image.Rect(0, 0, small, small))
	for i, v := range field {
		smallImg.Pix[i] = uint8(geometry.Clamp(v, 0, 1)*255 + 0.5)
	}
	fullImg := image.NewGray(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(fullImg, fullImg.Bounds(), smallImg, smallImg.Bounds(), xdraw.Src, nil)

	shading := make([]float64, size*size)
	inv := 1 / float64(size)
	for y := 0; y < size; y++ {
		ny := (float64(y) + 0.5) * inv
		for x := 0; x < size; x++ {
			nx := (float64(x) + 0.5) * inv

			// The field is centered at 0.5, so grain both darkens and
			// lightens around the base color.
			grain := float64(fullImg.Pix[y*size+x])/255 - 0.5
			lum := 1 + grain*c.opts.GrainGain

			edge := math.Min(math.Min(nx, 1-nx), math.Min(ny, 1-ny))
			ao := 1 - (1-geometry.Clamp(edge*10, 0, 1))*c.opts.AOStrength

			shading[y*size+x] = lum * ao
		}
	}
	return shading
}

func mul8(v uint8, m float64) uint8 {
	return uint8(geometry.Clamp(float64(v)/255*m, 0, 1)*255 + 0.5)
}
