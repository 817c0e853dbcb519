package noise

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GrainParams configures fabric grain synthesis.
type GrainParams struct {
	Frequency  float64 // noise cycles across the field
	Octaves    int
	Lacunarity float64
	Gain       float64
	Contrast   float64 // target standard deviation after normalization
}

// DefaultGrainParams returns grain parameters tuned for woven cotton.
func DefaultGrainParams() GrainParams {
	return GrainParams{
		Frequency:  48,
		Octaves:    3,
		Lacunarity: 2.0,
		Gain:       0.5,
		Contrast:   0.18,
	}
}

// GrainField renders a w×h row-major field of fbm samples, normalized to
// mean 0.5 and the target contrast so grain intensity does not drift with
// seed or frequency choice. Values are clamped to [0, 1].
func (s *Synthesizer) GrainField(w, h int, p GrainParams) []float64 {
	if w <= 0 || h <= 0 {
		return nil
	}

	field := make([]float64, w*h)
	for y := 0; y < h; y++ {
		ny := float64(y) / float64(h)
		for x := 0; x < w; x++ {
			nx := float64(x) / float64(w)
			field[y*w+x] = s.FBM(nx*p.Frequency, ny*p.Frequency, p.Octaves, p.Lacunarity, p.Gain)
		}
	}

	mean, std := stat.MeanStdDev(field, nil)
	floats.AddConst(-mean, field)
	if std > 1e-9 && p.Contrast > 0 {
		floats.Scale(p.Contrast/std, field)
	}
	floats.AddConst(0.5, field)

	for i, v := range field {
		if v < 0 {
			field[i] = 0
		} else if v > 1 {
			field[i] = 1
		}
	}
	return field
}
