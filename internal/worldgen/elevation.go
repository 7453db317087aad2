// Elevation synthesis: mountain-range random walks, noise-based height
// construction, and thermal erosion.
package worldgen

import (
	"math"

	"github.com/talgya/worldforge/internal/noise"
	"github.com/talgya/worldforge/internal/rng"
)

type fpoint struct {
	x, y float64
}

// mountainRange is a random-walk spine consumed during height
// construction and discarded after.
type mountainRange struct {
	spine  []fpoint
	width  float64
	height float64
}

const (
	rangeStepMin = 4.0
	rangeStepMax = 9.0
	// Angular kick applied when a walk is about to step off land.
	rangeLandKick = 0.9
	// Attempts to find a land cell to start a walk from.
	rangeStartBudget = 400
)

func (g *generation) buildMountainRanges(r *rng.Stream) []mountainRange {
	cfg := g.set.Elevation
	count := r.IntRange(cfg.RangeCountMin, cfg.RangeCountMax)

	ranges := make([]mountainRange, 0, count)
	for n := 0; n < count; n++ {
		start, ok := g.randomLandCell(r, rangeStartBudget)
		if !ok {
			continue
		}

		mr := mountainRange{
			width:  cfg.RangeWidth * r.Range(0.7, 1.3),
			height: cfg.RangeHeight * r.Range(0.8, 1.2),
		}
		cur := fpoint{float64(start.X), float64(start.Y)}
		heading := r.Range(0, 2*math.Pi)
		mr.spine = append(mr.spine, cur)

		for step := 0; step < cfg.RangeSteps; step++ {
			heading += r.Range(-cfg.Curviness, cfg.Curviness)
			length := r.Range(rangeStepMin, rangeStepMax)
			next := fpoint{cur.x + math.Cos(heading)*length, cur.y + math.Sin(heading)*length}

			if next.x < 0 || next.x >= float64(g.w) || next.y < 0 || next.y >= float64(g.h) {
				// Walk would leave the map: keep the spine so far.
				break
			}
			if !g.snap.Land[int(next.y)*g.w+int(next.x)] {
				// Nudge back toward land and try the step once more.
				heading += rangeLandKick
				next = fpoint{cur.x + math.Cos(heading)*length, cur.y + math.Sin(heading)*length}
				if next.x < 0 || next.x >= float64(g.w) || next.y < 0 || next.y >= float64(g.h) {
					break
				}
				if !g.snap.Land[int(next.y)*g.w+int(next.x)] {
					break
				}
			}
			cur = next
			mr.spine = append(mr.spine, cur)
		}

		if len(mr.spine) > 1 {
			ranges = append(ranges, mr)
		}
	}
	return ranges
}

func (g *generation) randomLandCell(r *rng.Stream, budget int) (Point, bool) {
	for i := 0; i < budget; i++ {
		x := r.IntRange(0, g.w-1)
		y := r.IntRange(0, g.h-1)
		if g.snap.Land[y*g.w+x] {
			return Point{x, y}, true
		}
	}
	return Point{}, false
}

// buildElevation fills the height layer: shallow noisy sea floor, land
// rescaled into the band above sea level, mountain spines boosted by a
// squared falloff with ridged detail near the crest.
func (g *generation) buildElevation(r *rng.Stream) {
	cfg := g.set.Elevation
	seaLevel := g.set.Continents.SeaLevel

	ranges := g.buildMountainRanges(r)
	base := noise.New(r.Fork())
	ridged := noise.New(r.Fork())

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			fx, fy := float64(x), float64(y)

			if !g.snap.Land[i] {
				depth := base.Fractal01(fx, fy, 3, cfg.NoiseScale*2, 0.5)
				g.snap.Elevation[i] = seaLevel * (0.2 + 0.6*depth)
				continue
			}

			n := base.Fractal01(fx, fy, cfg.NoiseOctaves, cfg.NoiseScale, cfg.NoisePersist)
			// Continental interiors sit higher than coasts; the raw
			// influence field from the landmass stage supplies that lift.
			interior := clamp01((g.influence[i] - seaLevel) / (1 - seaLevel))
			elev := seaLevel + (0.65*n+0.35*interior)*(1-seaLevel)*0.5

			// Mountain influence: squared falloff of perpendicular
			// distance to the nearest spine.
			influence := 0.0
			for ri := range ranges {
				mr := &ranges[ri]
				d := distToPolyline(mr.spine, fx, fy)
				if d >= mr.width {
					continue
				}
				nd := 1 - d/mr.width
				inf := nd * nd * mr.height
				if inf > influence {
					influence = inf
				}
			}
			if influence > 0 {
				elev += influence
				if influence > cfg.RidgedThreshold {
					rv := ridged.Ridged(fx, fy, 4, cfg.NoiseScale*4, 0.5)
					elev += rv * cfg.RidgedAmount * influence
				}
				g.snap.Debug.Mountain[i] = true
			}

			if elev > 1 {
				elev = 1
			}
			g.snap.Elevation[i] = elev
		}
	}

	g.thermalErosion(cfg.ErosionPasses, cfg.ErosionTalus)
}

// thermalErosion relaxes steep land cells toward the mean of neighbors
// whose height differs by more than the talus threshold, blended 80/20
// with the pre-pass value.
func (g *generation) thermalErosion(passes int, talus float64) {
	if passes <= 0 {
		return
	}
	next := make([]float64, len(g.snap.Elevation))
	for p := 0; p < passes; p++ {
		copy(next, g.snap.Elevation)
		for y := 0; y < g.h; y++ {
			for x := 0; x < g.w; x++ {
				i := y*g.w + x
				if !g.snap.Land[i] {
					continue
				}
				h := g.snap.Elevation[i]
				sum := 0.0
				count := 0
				for _, d := range neighbor8 {
					nx, ny := x+d.X, y+d.Y
					if nx < 0 || nx >= g.w || ny < 0 || ny >= g.h {
						continue
					}
					nh := g.snap.Elevation[ny*g.w+nx]
					if math.Abs(nh-h) > talus {
						sum += nh
						count++
					}
				}
				if count > 0 {
					next[i] = h*0.8 + (sum/float64(count))*0.2
				}
			}
		}
		copy(g.snap.Elevation, next)
	}
}

// distToPolyline returns the minimum perpendicular distance from (px, py)
// to any segment of the spine.
func distToPolyline(spine []fpoint, px, py float64) float64 {
	best := math.MaxFloat64
	for i := 0; i+1 < len(spine); i++ {
		d := distToSegment(spine[i], spine[i+1], px, py)
		if d < best {
			best = d
		}
	}
	return best
}

func distToSegment(a, b fpoint, px, py float64) float64 {
	dx, dy := b.x-a.x, b.y-a.y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-a.x, py-a.y)
	}
	t := ((px-a.x)*dx + (py-a.y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(px-(a.x+t*dx), py-(a.y+t*dy))
}
