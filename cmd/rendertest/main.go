// Command rendertest composes a garment texture headlessly and writes it to
// a PNG or WebP file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"garment-studio/internal/compositor"
	"garment-studio/internal/garment"
	"garment-studio/internal/noise"
	"garment-studio/internal/placement"
	"garment-studio/internal/projection"

	"github.com/HugoSmits86/nativewebp"
	_ "golang.org/x/image/tiff"
)

func main() {
	garmentType := flag.String("garment", garment.DefaultType, "Garment type: tshirt, hoodie, or longsleeve")
	view := flag.String("view", "front", "Camera view: front, back, left, or right")
	baseColor := flag.String("color", "ebebeb", "Base fabric color as RRGGBB hex")
	imagePath := flag.String("image", "", "Decoration image to place (PNG, JPEG, or TIFF)")
	region := flag.String("region", garment.RegionFront, "Region to place the decoration on")
	preset := flag.String("preset", "", "Placement preset: "+strings.Join(placement.PresetNames(), ", "))
	seed := flag.Int64("seed", 1, "Fabric grain seed")
	size := flag.Int("size", 1024, "Texture size in pixels")
	outPath := flag.String("out", "texture.png", "Output file (.png or .webp)")
	flag.Parse()

	regions, err := garment.RegionsFor(*garmentType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	base, err := parseHexColor(*baseColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad -color: %v\n", err)
		os.Exit(1)
	}

	store := placement.NewStore(regions)

	if *imagePath != "" {
		f, err := os.Open(*imagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
			os.Exit(1)
		}
		img, format, err := image.Decode(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
			os.Exit(1)
		}
		bounds := img.Bounds()
		fmt.Printf("Loaded %s decoration: %dx%d pixels\n", format, bounds.Dx(), bounds.Dy())

		store.SetImage(*region, img)
		if *preset != "" {
			store.ApplyPreset(*region, *preset)
		}
	}

	opts := compositor.DefaultOptions()
	opts.CanvasSize = *size
	comp := compositor.New(noise.New(*seed), opts)

	result := comp.Compose(*garmentType, regions, store.Snapshot(), base, store.Version())

	fmt.Printf("Composed %dx%d texture for %s\n", *size, *size, *garmentType)
	for _, p := range projection.ProjectID(*view, regions) {
		if !p.Visible {
			continue
		}
		role := "secondary"
		if p.IsPrimary {
			role = "primary"
		}
		fmt.Printf("  %-10s %-9s strength=%.1f rotY=%.0f\n",
			p.RegionID, role, p.Strength, p.Transform.RotateY)
	}

	if err := writeImage(*outPath, result.Image); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPath)
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		return nativewebp.Encode(f, img, nil)
	default:
		return png.Encode(f, img)
	}
}

func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("want RRGGBB, got %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
