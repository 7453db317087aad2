// Biome classification: an ordered decision table over water, elevation,
// temperature, and moisture. First matching rule wins.
package worldgen

// beachSearchRadius is how far a low cell looks for ocean before being
// called a beach.
const beachSearchRadius = 2

// buildBiomes classifies every cell. The check order is part of the
// contract: water, lake, beach, high terrain, then temperature bands.
func (g *generation) buildBiomes() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			g.snap.Biomes[i] = g.classify(x, y, i)
		}
	}
}

func (g *generation) classify(x, y, i int) Biome {
	cfg := g.set.Biomes
	seaLevel := g.set.Continents.SeaLevel

	if !g.snap.Land[i] {
		return BiomeOcean
	}
	if g.snap.Debug.Lake[i] {
		return BiomeLake
	}

	above := (g.snap.Elevation[i] - seaLevel) / (1 - seaLevel)
	temp := g.snap.Temperature[i]
	moist := g.snap.Moisture[i]

	if above < cfg.BeachMaxElevation && g.nearOcean(x, y, beachSearchRadius) {
		return BiomeBeach
	}

	if above > cfg.MountainMinElevation {
		if temp < cfg.SnowTemperature {
			return BiomeSnow
		}
		return BiomeMountainRock
	}

	switch {
	case temp < cfg.ColdTemperature:
		if moist < cfg.DryMoisture {
			return BiomeTundra
		}
		return BiomeSnow
	case temp < cfg.CoolTemperature:
		if moist < cfg.DryMoisture {
			return BiomeTundra
		}
		return BiomeTaiga
	case temp < cfg.WarmTemperature:
		if moist < cfg.WetMoisture {
			return BiomeGrassland
		}
		return BiomeTemperateForest
	default:
		if moist < cfg.DryMoisture {
			return BiomeDesert
		}
		if moist < cfg.WetMoisture {
			return BiomeSavanna
		}
		return BiomeRainforest
	}
}

func (g *generation) nearOcean(cx, cy, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= g.h {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := cx + dx
			if x < 0 || x >= g.w {
				continue
			}
			i := y*g.w + x
			if !g.snap.Land[i] && !g.snap.Debug.Lake[i] {
				return true
			}
		}
	}
	return false
}
