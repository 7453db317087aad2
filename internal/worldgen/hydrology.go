// Hydrology: downslope flow routing, topological flow accumulation,
// river extraction, bounded lake fill, and the water-distance field.
package worldgen

import "math"

const (
	// Lake fill bounds, fixed by the generator rather than configured.
	lakeMaxCells  = 100
	lakeTolerance = 0.02
)

// buildFlowDirections picks the steepest-descent neighbor for every land
// cell, diagonal drops weighted by step distance. Local minima get
// FlowNone.
func (g *generation) buildFlowDirections() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			g.snap.FlowDir[i] = FlowNone
			if !g.snap.Land[i] {
				continue
			}
			h := g.snap.Elevation[i]
			bestSlope := 0.0
			bestDir := FlowNone
			for d, off := range neighbor8 {
				nx, ny := x+off.X, y+off.Y
				if nx < 0 || nx >= g.w || ny < 0 || ny >= g.h {
					continue
				}
				nh := g.snap.Elevation[ny*g.w+nx]
				slope := (h - nh) / neighborCost[d]
				if slope > bestSlope {
					bestSlope = slope
					bestDir = int8(d)
				}
			}
			g.snap.FlowDir[i] = bestDir
		}
	}
}

// buildFlowAccumulation propagates one rainfall unit per cell along the
// flow graph in topological order: a cell drains only after every
// upstream contributor has been summed into it. O(cells).
func (g *generation) buildFlowAccumulation() {
	n := g.w * g.h
	indegree := make([]int, n)

	for i := 0; i < n; i++ {
		g.snap.FlowAcc[i] = 1
		if t, ok := g.flowTarget(i); ok {
			indegree[t]++
		}
	}

	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if g.snap.Land[i] && indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		t, ok := g.flowTarget(i)
		if !ok {
			continue
		}
		g.snap.FlowAcc[t] += g.snap.FlowAcc[i]
		indegree[t]--
		if indegree[t] == 0 && g.snap.Land[t] {
			queue = append(queue, t)
		}
	}
}

// flowTarget resolves a cell's downstream index, if it has one on land.
func (g *generation) flowTarget(i int) (int, bool) {
	d := g.snap.FlowDir[i]
	if d == FlowNone {
		return 0, false
	}
	x := i%g.w + neighbor8[d].X
	y := i/g.w + neighbor8[d].Y
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return 0, false
	}
	return y*g.w + x, true
}

// buildRivers marks cells whose accumulation crosses the configured
// threshold with a log-scaled intensity.
func (g *generation) buildRivers() {
	threshold := g.set.Hydrology.RiverThreshold
	if threshold <= 0 {
		threshold = 1
	}
	for i, acc := range g.snap.FlowAcc {
		if !g.snap.Land[i] || acc < threshold {
			continue
		}
		g.snap.River[i] = 1 + math.Log(acc/threshold)
	}
}

// buildLakes flood-fills bounded depressions from undrained land cells.
// Only neighbors at or below the seed height plus a small tolerance are
// admitted; fills that exceed the size cap are rejected outright.
func (g *generation) buildLakes() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := y*g.w + x
			if !g.snap.Land[i] || g.snap.FlowDir[i] != FlowNone || g.snap.Debug.Lake[i] {
				continue
			}

			limit := g.snap.Elevation[i] + lakeTolerance
			filled := []int{i}
			visited := map[int]bool{i: true}
			overflow := false

			for qi := 0; qi < len(filled) && !overflow; qi++ {
				c := filled[qi]
				cx, cy := c%g.w, c/g.w
				for _, off := range neighbor8 {
					nx, ny := cx+off.X, cy+off.Y
					if nx < 0 || nx >= g.w || ny < 0 || ny >= g.h {
						continue
					}
					ni := ny*g.w + nx
					if visited[ni] || !g.snap.Land[ni] || g.snap.Elevation[ni] > limit {
						continue
					}
					visited[ni] = true
					filled = append(filled, ni)
					if len(filled) > lakeMaxCells {
						overflow = true
						break
					}
				}
			}

			if !overflow && len(filled) > 1 {
				for _, c := range filled {
					g.snap.Debug.Lake[c] = true
				}
			}
		}
	}
}

// buildWaterDistance runs a multi-source sweep outward from every water
// cell (ocean, river, lake), diagonal steps costing sqrt 2, and
// normalizes by the observed maximum.
func (g *generation) buildWaterDistance() {
	n := g.w * g.h
	dist := make([]float64, n)
	queue := make([]int, 0, n)

	for i := 0; i < n; i++ {
		if !g.snap.Land[i] || g.snap.River[i] > 0 || g.snap.Debug.Lake[i] {
			dist[i] = 0
			queue = append(queue, i)
		} else {
			dist[i] = math.MaxFloat64
		}
	}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		x, y := i%g.w, i/g.w
		for d, off := range neighbor8 {
			nx, ny := x+off.X, y+off.Y
			if nx < 0 || nx >= g.w || ny < 0 || ny >= g.h {
				continue
			}
			ni := ny*g.w + nx
			nd := dist[i] + neighborCost[d]
			if nd < dist[ni] {
				dist[ni] = nd
				queue = append(queue, ni)
			}
		}
	}

	maxDist := 0.0
	for _, d := range dist {
		if d != math.MaxFloat64 && d > maxDist {
			maxDist = d
		}
	}
	if maxDist == 0 {
		maxDist = 1
	}
	for i, d := range dist {
		if d == math.MaxFloat64 {
			d = maxDist
		}
		g.snap.WaterDist[i] = d / maxDist
	}
}
