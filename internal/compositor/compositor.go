// Package compositor synthesizes the combined color map: base color,
// procedural fabric grain, and every placed decoration.
package compositor

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"

	"garment-studio/internal/garment"
	"garment-studio/internal/noise"
	"garment-studio/internal/placement"
	"garment-studio/pkg/geometry"
)

// Options configures composition.
type Options struct {
	CanvasSize int // square texture edge in pixels

	GrainGain  float64 // luminance multiplier gain for fabric grain
	AOStrength float64 // edge ambient-occlusion falloff strength

	// GrainDownsample is the linear downsampling factor for grain synthesis;
	// the field is rendered small and upsampled. Quality knob only.
	GrainDownsample int

	// BlendOpacity is the decoration draw opacity; below 1 the grain stays
	// visible through prints.
	BlendOpacity float64

	Grain noise.GrainParams
}

// DefaultOptions returns the production texture settings.
func DefaultOptions() Options {
	return Options{
		CanvasSize:      1024,
		GrainGain:       0.12,
		AOStrength:      0.35,
		GrainDownsample: 4,
		BlendOpacity:    0.9,
		Grain:           noise.DefaultGrainParams(),
	}
}

// Result is a composed raster plus a flag telling the renderer whether the
// image changed since the previous call.
type Result struct {
	Image   *image.RGBA
	Updated bool
}

// Compositor renders combined rasters. Composition is a pure function of
// (regions, placements, base color, noise seed); the struct only caches the
// shading field and the previous output for change detection.
type Compositor struct {
	opts  Options
	noise *noise.Synthesizer

	shading []float64 // full-res grain×AO multiplier field, built lazily

	lastVersion uint64
	lastBase    color.RGBA
	lastGarment string
	lastResult  *image.RGBA
}

// New creates a Compositor over the given noise synthesizer.
func New(n *noise.Synthesizer, opts Options) *Compositor {
	if opts.CanvasSize <= 0 {
		opts.CanvasSize = DefaultOptions().CanvasSize
	}
	if opts.GrainDownsample < 1 {
		opts.GrainDownsample = 1
	}
	return &Compositor{opts: opts, noise: n}
}

// Compose renders the combined raster. garmentType and version identify the
// inputs for change detection: when nothing changed since the last call the
// previous raster is returned with Updated=false.
func (c *Compositor) Compose(garmentType string, regions []garment.Region, placements map[string]placement.Placement, base color.Color, version uint64) Result {
	baseRGBA := toRGBA(base)
	if c.lastResult != nil && version == c.lastVersion && baseRGBA == c.lastBase && garmentType == c.lastGarment {
		return Result{Image: c.lastResult, Updated: false}
	}

	size := c.opts.CanvasSize
	out := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(out, out.Bounds(), &image.Uniform{baseRGBA}, image.Point{}, draw.Src)

	c.applyShading(out)

	// Registry order gives a deterministic draw order.
	for _, r := range regions {
		p, ok := placements[r.ID]
		if !ok || p.Image == nil {
			continue
		}
		if b := p.Image.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
			log.Printf("compositor: region %q has an empty image, skipping", r.ID)
			continue
		}
		c.drawRegion(out, r, p)
	}

	c.lastVersion = version
	c.lastBase = baseRGBA
	c.lastGarment = garmentType
	c.lastResult = out
	return Result{Image: out, Updated: true}
}

// drawRegion draws one placement into its UV rectangle using inverse-mapped
// bilinear sampling and a multiply-style blend.
func (c *Compositor) drawRegion(dst *image.RGBA, r garment.Region, p placement.Placement) {
	size := float64(c.opts.CanvasSize)
	rect := r.UVRect.ToRect(size, size)

	src := p.Image
	srcB := src.Bounds()
	srcW := float64(srcB.Dx())
	srcH := float64(srcB.Dy())

	// At scale 1 the decoration is contained in the region rect; stretch
	// constants then shrink each axis to counter UV distortion on the mesh.
	fit := math.Min(rect.Width/srcW, rect.Height/srcH)
	sx := fit * p.Scale / r.StretchU
	sy := fit * p.Scale / r.StretchV

	rotation := p.RotationDeg
	offset := geometry.Point2D{}
	if corr := r.Correction; corr != nil {
		if corr.Scale.X != 0 {
			sx *= corr.Scale.X
		}
		if corr.Scale.Y != 0 {
			sy *= corr.Scale.Y
		}
		rotation += corr.RotationDeg
		offset = geometry.Point2D{X: corr.Offset.X * rect.Width, Y: corr.Offset.Y * rect.Height}
	}

	center := rect.Center().Add(geometry.Point2D{
		X: (p.Position.X - 0.5) * rect.Width,
		Y: (p.Position.Y - 0.5) * rect.Height,
	}).Add(offset)

	forward := geometry.Translation(center.X, center.Y).
		Compose(geometry.Rotation(rotation * math.Pi / 180)).
		Compose(geometry.Scale(sx, sy))
	inverse, ok := forward.Inverse()
	if !ok {
		log.Printf("compositor: region %q transform is degenerate, skipping", r.ID)
		return
	}

	// Decorations are clipped to their UV island so prints never bleed
	// into a neighboring region's texture space.
	x0 := int(math.Floor(math.Max(rect.X, 0)))
	y0 := int(math.Floor(math.Max(rect.Y, 0)))
	x1 := int(math.Ceil(math.Min(rect.X+rect.Width, size)))
	y1 := int(math.Ceil(math.Min(rect.Y+rect.Height, size)))

	opacity := c.opts.BlendOpacity
	halfW := srcW / 2
	halfH := srcH / 2

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			// Pixel center through the inverse transform, image centered
			// at the origin.
			sp := inverse.Apply(geometry.Point2D{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			fx := sp.X + halfW
			fy := sp.Y + halfH
			if fx < 0 || fy < 0 || fx >= srcW || fy >= srcH {
				continue
			}

			sr, sg, sb, sa := sampleBilinear(src, fx, fy)
			if sa <= 0.001 {
				continue
			}

			i := dst.PixOffset(x, y)
			dr := float64(dst.Pix[i]) / 255
			dg := float64(dst.Pix[i+1]) / 255
			db := float64(dst.Pix[i+2]) / 255

			// Multiply blend keeps the underlying grain visible.
			alpha := sa * opacity
			dst.Pix[i] = mix8(sr*dr, dr, alpha)
			dst.Pix[i+1] = mix8(sg*dg, dg, alpha)
			dst.Pix[i+2] = mix8(sb*db, db, alpha)
		}
	}
}

// sampleBilinear samples src at a fractional position relative to its
// bounds origin, returning non-premultiplied channels in [0, 1].
func sampleBilinear(src image.Image, fx, fy float64) (r, g, b, a float64) {
	b0 := src.Bounds()
	x0 := int(math.Floor(fx - 0.5))
	y0 := int(math.Floor(fy - 0.5))
	tx := fx - 0.5 - float64(x0)
	ty := fy - 0.5 - float64(y0)

	var acc [4]float64
	for dy := 0; dy <= 1; dy++ {
		for dx := 0; dx <= 1; dx++ {
			sx := clampInt(x0+dx, 0, b0.Dx()-1)
			sy := clampInt(y0+dy, 0, b0.Dy()-1)
			cr, cg, cb, ca := src.At(b0.Min.X+sx, b0.Min.Y+sy).RGBA()

			wx := 1 - tx
			if dx == 1 {
				wx = tx
			}
			wy := 1 - ty
			if dy == 1 {
				wy = ty
			}
			w := wx * wy
			acc[0] += float64(cr) / 65535 * w
			acc[1] += float64(cg) / 65535 * w
			acc[2] += float64(cb) / 65535 * w
			acc[3] += float64(ca) / 65535 * w
		}
	}
	return acc[0], acc[1], acc[2], acc[3]
}

func mix8(blended, under, alpha float64) uint8 {
	v := blended*alpha + under*(1-alpha)
	return uint8(geometry.Clamp(v, 0, 1)*255 + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
