// Settlement placement — scores every cell for suitability and places
// cities greedily under a minimum-spacing constraint.
package worldgen

import (
	"math"

	"github.com/talgya/worldforge/internal/rng"
)

// placementSamples bounds the random candidates drawn per city.
const placementSamples = 1000

// settleableBiomes are the biomes a city can occupy.
var settleableBiomes = map[Biome]bool{
	BiomeBeach:           true,
	BiomeGrassland:       true,
	BiomeTemperateForest: true,
	BiomeTaiga:           true,
	BiomeSavanna:         true,
}

// buildSettlements places up to Count cities. Fewer suitable cells than
// requested is not an error; placement simply stops short.
func (g *generation) buildSettlements(r *rng.Stream) {
	cfg := g.set.Cities
	if !cfg.Enabled || cfg.Count <= 0 {
		return
	}

	suitability := g.scoreSuitability(r)

	for id := 0; id < cfg.Count; id++ {
		bestIdx := -1
		bestScore := 0.0
		for s := 0; s < placementSamples; s++ {
			x := r.IntRange(0, g.w-1)
			y := r.IntRange(0, g.h-1)
			i := y*g.w + x
			if suitability[i] > bestScore {
				bestScore = suitability[i]
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break
		}

		x, y := bestIdx%g.w, bestIdx/g.w
		city := City{
			ID:   id,
			Pos:  Point{x, y},
			Size: citySize(id, bestScore, r),
			Type: g.cityType(id, x, y, bestScore),
			Name: generateName(r),
		}
		g.snap.Cities = append(g.snap.Cities, city)

		// Zero the exclusion disk so later iterations cannot land here.
		zeroDisk(suitability, g.w, g.h, x, y, cfg.MinSpacing)
	}
}

// scoreSuitability rates every cell: zero off-land and outside eligible
// biomes, otherwise a base of 1 plus flatness, water bonuses, and jitter.
func (g *generation) scoreSuitability(r *rng.Stream) []float64 {
	cfg := g.set.Cities
	scores := make([]float64, g.w*g.h)

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			if !g.snap.Land[i] || !settleableBiomes[g.snap.Biomes[i]] {
				continue
			}

			score := 1.0
			score += 1 / (1 + g.maxNeighborDrop(x, y)*20)

			if g.nearOcean(x, y, cfg.CoastalRadius) {
				score += cfg.CoastalBonus
			}
			if g.snap.River[i] > 0 {
				score += cfg.RiverBonus
			} else if g.nearRiver(x, y, cfg.RiverRadius) {
				score += cfg.RiverBonus / 2
			}

			score += r.Float() * cfg.ScoreJitter
			scores[i] = score
		}
	}
	return scores
}

// maxNeighborDrop returns the largest absolute height difference to a
// neighbor; flat terrain scores near zero.
func (g *generation) maxNeighborDrop(x, y int) float64 {
	h := g.snap.Elevation[y*g.w+x]
	maxDiff := 0.0
	for _, d := range neighbor8 {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= g.w || ny < 0 || ny >= g.h {
			continue
		}
		diff := math.Abs(g.snap.Elevation[ny*g.w+nx] - h)
		if diff > maxDiff {
			maxDiff = diff
		}
	}
	return maxDiff
}

func (g *generation) nearRiver(cx, cy, radius int) bool {
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
			if g.snap.River[y*g.w+x] > 0 {
				return true
			}
		}
	}
	return false
}

// cityType: the first city is always the capital; coastal cities become
// ports; high scorers are cities; the rest are towns.
func (g *generation) cityType(id, x, y int, score float64) CityType {
	if id == 0 {
		return CityCapital
	}
	if g.nearOcean(x, y, 1) {
		return CityPort
	}
	if score >= 2.2 || g.snap.River[y*g.w+x] > 0 {
		return CityRegular
	}
	return CityTown
}

func citySize(id int, score float64, r *rng.Stream) float64 {
	if id == 0 {
		return 1
	}
	size := score/4 + r.Range(0.1, 0.3)
	if size > 1 {
		size = 1
	}
	if size < 0.1 {
		size = 0.1
	}
	return size
}

func zeroDisk(scores []float64, w, h, cx, cy int, radius float64) {
	ir := int(math.Ceil(radius))
	for dy := -ir; dy <= ir; dy++ {
		y := cy + dy
		if y < 0 || y >= h {
			continue
		}
		for dx := -ir; dx <= ir; dx++ {
			x := cx + dx
			if x < 0 || x >= w {
				continue
			}
			if math.Hypot(float64(dx), float64(dy)) < radius {
				scores[y*w+x] = 0
			}
		}
	}
}
