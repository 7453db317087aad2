// Landmass synthesis: continent seed scatter, influence falloff, coastline
// noise, and an optional archipelago pass.
package worldgen

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/worldforge/internal/noise"
	"github.com/talgya/worldforge/internal/rng"
)

// continentSeed is consumed during mask construction and discarded after.
type continentSeed struct {
	x, y   float64
	radius float64
	id     int
}

// seedAttemptBudget bounds rejection sampling before falling back to
// unconstrained placement.
const seedAttemptBudget = 200

// archipelagoSearchRadius limits island growth to cells near existing
// land, preventing orphan specks in open ocean.
const archipelagoSearchRadius = 12

func (g *generation) placeContinentSeeds(r *rng.Stream) []continentSeed {
	cfg := g.set.Continents
	count := r.IntRange(cfg.CountMin, cfg.CountMax)

	minDim := math.Min(float64(g.w), float64(g.h))
	minSpacing := minDim * cfg.SpacingFraction
	radius := minDim * cfg.RadiusFraction

	seeds := make([]continentSeed, 0, count)
	for i := 0; i < count; i++ {
		placed := false
		for attempt := 0; attempt < seedAttemptBudget; attempt++ {
			x := r.Range(radius*0.4, float64(g.w)-radius*0.4)
			y := r.Range(radius*0.4, float64(g.h)-radius*0.4)
			ok := true
			for _, s := range seeds {
				if math.Hypot(x-s.x, y-s.y) < minSpacing {
					ok = false
					break
				}
			}
			if ok {
				seeds = append(seeds, continentSeed{x: x, y: y, radius: radius, id: i})
				placed = true
				break
			}
		}
		if !placed {
			// Spacing cannot be satisfied; place unconstrained rather
			// than dropping the continent.
			x := r.Range(radius*0.4, float64(g.w)-radius*0.4)
			y := r.Range(radius*0.4, float64(g.h)-radius*0.4)
			seeds = append(seeds, continentSeed{x: x, y: y, radius: radius, id: i})
		}
	}
	return seeds
}

// buildLandmass fills the land mask, continent-id debug layer, and a raw
// influence field the elevation stage reuses as its continental base.
func (g *generation) buildLandmass(r *rng.Stream) {
	cfg := g.set.Continents
	seeds := g.placeContinentSeeds(r)

	coast := noise.New(r.Fork())

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x

			best := 0.0
			bestID := -1
			for _, s := range seeds {
				d := math.Hypot(float64(x)-s.x, float64(y)-s.y)
				if d >= s.radius {
					continue
				}
				inf := 1 - math.Pow(d/s.radius, cfg.Falloff)
				if inf > best {
					best = inf
					bestID = s.id
				}
			}

			n := coast.Fractal(float64(x), float64(y), cfg.CoastNoiseOctaves, cfg.CoastNoiseScale, 0.5)
			v := best + n*cfg.CoastNoiseAmp

			g.influence[i] = v
			if v > cfg.SeaLevel {
				g.snap.Land[i] = true
				g.snap.Debug.ContinentID[i] = bestID
			} else {
				g.snap.Debug.ContinentID[i] = -1
			}
		}
	}

	if cfg.Archipelago {
		g.sprinkleArchipelago(r)
	}
}

// sprinkleArchipelago adds isolated island cells from an independent
// high-frequency field, only within reach of existing land.
func (g *generation) sprinkleArchipelago(r *rng.Stream) {
	cfg := g.set.Continents
	field := opensimplex.NewNormalized(int64(r.Float() * float64(1<<31)))

	// Snapshot the mask first so new islands do not seed further islands.
	base := make([]bool, len(g.snap.Land))
	copy(base, g.snap.Land)

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			if base[i] {
				continue
			}
			v := field.Eval2(float64(x)*cfg.ArchipelagoScale, float64(y)*cfg.ArchipelagoScale)
			if v < 0.82 {
				continue
			}
			if !nearLand(base, g.w, g.h, x, y, archipelagoSearchRadius) {
				continue
			}
			if !r.Bool(cfg.ArchipelagoChance) {
				continue
			}
			g.snap.Land[i] = true
			g.influence[i] = cfg.SeaLevel + (v-0.82)*0.5
		}
	}
}

func nearLand(land []bool, w, h, cx, cy, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= h {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := cx + dx
			if x < 0 || x >= w {
				continue
			}
			if land[y*w+x] {
				return true
			}
		}
	}
	return false
}
