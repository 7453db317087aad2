// Forest density: vegetation intensity from noise, moisture, river
// proximity, and a per-biome bias.
package worldgen

import (
	"github.com/talgya/worldforge/internal/noise"
	"github.com/talgya/worldforge/internal/rng"
)

// forestBias is the fixed additive bias per biome. Biomes absent from the
// table never grow forest.
var forestBias = map[Biome]float64{
	BiomeTaiga:           0.25,
	BiomeTemperateForest: 0.3,
	BiomeRainforest:      0.35,
	BiomeGrassland:       -0.15,
	BiomeSavanna:         -0.1,
	BiomeTundra:          -0.25,
}

// buildForest fills the vegetation layer. Density above the threshold is
// rescaled into 1..MaxIntensity; below it, forest is absent.
func (g *generation) buildForest(r *rng.Stream) {
	cfg := g.set.Forests
	field := noise.New(r.Fork())

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			bias, eligible := forestBias[g.snap.Biomes[i]]
			if !eligible {
				continue
			}

			density := field.Fractal01(float64(x), float64(y), cfg.NoiseOctaves, cfg.NoiseScale, 0.5)
			density += g.snap.Moisture[i] * cfg.MoistureWeight
			density += (1 - g.snap.WaterDist[i]) * cfg.RiverBoost
			density += bias

			if density <= cfg.Threshold {
				continue
			}
			span := 1 + cfg.MoistureWeight + cfg.RiverBoost - cfg.Threshold
			scaled := (density - cfg.Threshold) / span
			intensity := 1 + int(scaled*float64(cfg.MaxIntensity-1))
			if intensity > cfg.MaxIntensity {
				intensity = cfg.MaxIntensity
			}
			g.snap.Forest[i] = intensity
		}
	}
}
