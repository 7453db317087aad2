// Climate: latitude/elevation temperature and moisture with water
// proximity and a rain-shadow ray-march against the wind.
package worldgen

import (
	"math"

	"github.com/talgya/worldforge/internal/noise"
	"github.com/talgya/worldforge/internal/rng"
)

// buildTemperature peaks at the vertical center, cools with height above
// sea level, and jitters slightly with noise.
func (g *generation) buildTemperature(r *rng.Stream) {
	cfg := g.set.Climate
	seaLevel := g.set.Continents.SeaLevel
	jitter := noise.New(r.Fork())

	span := float64(g.h - 1)
	if span == 0 {
		span = 1
	}
	for y := 0; y < g.h; y++ {
		lat := 1 - math.Abs(float64(y)/span-0.5)*2
		latTerm := 1 - (1-lat)*cfg.LatitudeStrength
		for x := 0; x < g.w; x++ {
			i := y*g.w + x

			above := 0.0
			if g.snap.Elevation[i] > seaLevel {
				above = (g.snap.Elevation[i] - seaLevel) / (1 - seaLevel)
			}

			t := latTerm - above*cfg.ElevationCooling
			t += jitter.Fractal(float64(x), float64(y), 3, 0.02, 0.5) * cfg.NoiseJitter
			g.snap.Temperature[i] = clamp01(t)
		}
	}
}

// buildMoisture combines a rainfall baseline, water proximity, the
// rain-shadow march, and noise jitter.
func (g *generation) buildMoisture(r *rng.Stream) {
	cfg := g.set.Climate
	jitter := noise.New(r.Fork())

	// Wind as a unit vector; the march walks upwind from each cell.
	rad := cfg.WindDirection * math.Pi / 180
	windX, windY := math.Cos(rad), math.Sin(rad)

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x

			m := cfg.RainfallBias
			m += (1 - g.snap.WaterDist[i]) * cfg.WaterInfluence
			m -= g.rainShadow(x, y, windX, windY) * cfg.RainShadowEffect
			m += jitter.Fractal(float64(x), float64(y), 3, 0.025, 0.5) * cfg.NoiseJitter
			g.snap.Moisture[i] = clamp01(m)
		}
	}
}

// rainShadow marches a fixed distance upwind and returns the largest
// elevation excess over the sampled cell, attenuated by distance.
func (g *generation) rainShadow(x, y int, windX, windY float64) float64 {
	cfg := g.set.Climate
	here := g.snap.Elevation[y*g.w+x]
	shadow := 0.0

	for step := 1; step <= cfg.RainShadowLength; step++ {
		sx := x - int(math.Round(windX*float64(step)))
		sy := y - int(math.Round(windY*float64(step)))
		if sx < 0 || sx >= g.w || sy < 0 || sy >= g.h {
			break
		}
		excess := g.snap.Elevation[sy*g.w+sx] - here
		if excess <= 0 {
			continue
		}
		attenuated := excess * (1 - float64(step)/float64(cfg.RainShadowLength+1))
		if attenuated > shadow {
			shadow = attenuated
		}
	}
	return shadow
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
