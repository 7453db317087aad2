// Package noise implements 2D gradient noise with fractal composition.
// The permutation table is shuffled by the caller's random stream, so the
// noise character itself depends on the world seed.
package noise

import (
	"math"

	"github.com/talgya/worldforge/internal/rng"
)

// Generator produces 2D gradient noise from a seeded permutation table.
type Generator struct {
	perm [512]int
}

// New builds a generator whose permutation table is shuffled by r.
func New(r *rng.Stream) *Generator {
	g := &Generator{}

	var base [256]int
	for i := range base {
		base[i] = i
	}
	r.Shuffle(256, func(i, j int) {
		base[i], base[j] = base[j], base[i]
	})

	// Duplicate for wrapping.
	for i := 0; i < 256; i++ {
		g.perm[i] = base[i]
		g.perm[i+256] = base[i]
	}
	return g
}

// fade applies the smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad returns the dot product of a pseudo-random gradient and the
// distance vector.
func grad(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

// Eval computes noise at (x, y). Returns a value in [-1, 1].
func (g *Generator) Eval(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255

	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := g.perm[g.perm[xi]+yi]
	ab := g.perm[g.perm[xi]+yi+1]
	ba := g.perm[g.perm[xi+1]+yi]
	bb := g.perm[g.perm[xi+1]+yi+1]

	x1 := lerp(u, grad(aa, xf, yf), grad(ba, xf-1, yf))
	x2 := lerp(u, grad(ab, xf, yf-1), grad(bb, xf-1, yf-1))
	return lerp(v, x1, x2)
}

// Eval01 is Eval rescaled into [0, 1].
func (g *Generator) Eval01(x, y float64) float64 {
	return (g.Eval(x, y) + 1) / 2
}

// Fractal sums octaves at doubling frequency and decaying amplitude,
// normalized by total amplitude. Returns a value in [-1, 1].
func (g *Generator) Fractal(x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxAmp := 0.0

	for i := 0; i < octaves; i++ {
		total += g.Eval(x*frequency, y*frequency) * amplitude
		maxAmp += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxAmp
}

// Fractal01 is Fractal rescaled into [0, 1].
func (g *Generator) Fractal01(x, y float64, octaves int, frequency, persistence float64) float64 {
	return (g.Fractal(x, y, octaves, frequency, persistence) + 1) / 2
}

// Ridged composes octaves folded around their midpoint to carve sharp
// ridgelines: each octave's signal becomes 1-|2n-1|, squared, and is
// weighted by the previous octave's folded value so detail concentrates
// on the spines. Returns a value in [0, 1].
func (g *Generator) Ridged(x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxAmp := 0.0
	weight := 1.0

	for i := 0; i < octaves; i++ {
		n := g.Eval01(x*frequency, y*frequency)
		signal := 1 - math.Abs(2*n-1)
		signal *= signal
		signal *= weight

		weight = signal
		if weight > 1 {
			weight = 1
		}

		total += signal * amplitude
		maxAmp += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxAmp
}
