// Package noise provides deterministic 2D gradient noise for fabric grain.
package noise

import (
	"math"
	"math/rand"
	"time"
)

const (
	// MaxOctaves caps fractal summation; more octaves than this add cost
	// without visible grain detail at texture resolution.
	MaxOctaves = 3

	// cacheLimit bounds the memoization cache. Purely an optimization;
	// results are identical with the cache disabled.
	cacheLimit = 1000

	// cacheQuantum is the coordinate rounding step for cache keys.
	cacheQuantum = 1.0 / 512.0
)

// Synthesizer generates deterministic 2D gradient noise from a fixed
// permutation table built once at construction. Not safe for concurrent use;
// the engine is single-threaded by design.
type Synthesizer struct {
	perm  [512]uint8
	cache map[cacheKey]float64
}

type cacheKey struct {
	x, y int64
}

// New creates a Synthesizer seeded explicitly. The same seed always yields
// the same noise, which is what the compositor's determinism guarantee and
// the tests rely on.
func New(seed int64) *Synthesizer {
	s := &Synthesizer{
		cache: make(map[cacheKey]float64, cacheLimit),
	}

	rng := rand.New(rand.NewSource(seed))
	var table [256]uint8
	for i := range table {
		table[i] = uint8(i)
	}
	rng.Shuffle(len(table), func(i, j int) {
		table[i], table[j] = table[j], table[i]
	})
	for i := 0; i < 512; i++ {
		s.perm[i] = table[i&255]
	}
	return s
}

// NewRandom creates a Synthesizer with a time-based seed. Grain varies per
// session but stays fixed for the lifetime of the process.
func NewRandom() *Synthesizer {
	return New(time.Now().UnixNano())
}

// Noise2D returns gradient noise at (x, y) in the range [0, 1].
func (s *Synthesizer) Noise2D(x, y float64) float64 {
	key := cacheKey{
		x: int64(math.Round(x / cacheQuantum)),
		y: int64(math.Round(y / cacheQuantum)),
	}
	if v, ok := s.cache[key]; ok {
		return v
	}

	v := (s.raw(x, y) + 1) * 0.5
	v = math.Max(0, math.Min(1, v))

	if len(s.cache) >= cacheLimit {
		// Wholesale reset is cheaper than tracking eviction order and the
		// working set per composite pass fits comfortably.
		s.cache = make(map[cacheKey]float64, cacheLimit)
	}
	s.cache[key] = v
	return v
}

// FBM sums damped noise octaves, normalized by total amplitude so the
// result stays in [0, 1] regardless of octave count.
func (s *Synthesizer) FBM(x, y float64, octaves int, lacunarity, gain float64) float64 {
	if octaves < 1 {
		octaves = 1
	}
	if octaves > MaxOctaves {
		octaves = MaxOctaves
	}

	var sum, amp, totalAmp float64
	amp = 1
	freq := 1.0
	for i := 0; i < octaves; i++ {
		sum += s.Noise2D(x*freq, y*freq) * amp
		totalAmp += amp
		amp *= gain
		freq *= lacunarity
	}
	return sum / totalAmp
}

// raw returns classic Perlin noise in [-1, 1].
func (s *Synthesizer) raw(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := s.perm[int(s.perm[xi])+yi]
	ab := s.perm[int(s.perm[xi])+yi+1]
	ba := s.perm[int(s.perm[xi+1])+yi]
	bb := s.perm[int(s.perm[xi+1])+yi+1]

	x1 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x2 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)
	return lerp(x1, x2, v)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// grad picks one of eight unit-ish gradients from the hash and returns its
// dot product with the offset vector.
func grad(hash uint8, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return x - y
	case 2:
		return -x + y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}
