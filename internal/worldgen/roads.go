// Road network: terrain-aware A* between city pairs, shortest pairs
// first, with connection-degree caps and Douglas–Peucker simplification.
package worldgen

import (
	"container/heap"
	"math"
	"sort"
)

// aStarBudget bounds the search per city pair. Exhaustion means the pair
// is silently skipped; no fallback search is attempted.
const aStarBudget = 60000

type cityPair struct {
	a, b int // indexes into snap.Cities
	dist float64
}

// buildRoads connects cities pairwise, nearest pairs first, respecting
// each city's maximum connection degree.
func (g *generation) buildRoads() {
	cfg := g.set.Roads
	if !cfg.Enabled || len(g.snap.Cities) < 2 {
		return
	}

	pairs := make([]cityPair, 0, len(g.snap.Cities)*(len(g.snap.Cities)-1)/2)
	for a := 0; a < len(g.snap.Cities); a++ {
		for b := a + 1; b < len(g.snap.Cities); b++ {
			pa, pb := g.snap.Cities[a].Pos, g.snap.Cities[b].Pos
			pairs = append(pairs, cityPair{a, b, math.Hypot(float64(pa.X-pb.X), float64(pa.Y-pb.Y))})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].dist < pairs[j].dist })

	degree := make([]int, len(g.snap.Cities))
	for _, p := range pairs {
		if degree[p.a] >= cfg.MaxConnections || degree[p.b] >= cfg.MaxConnections {
			continue
		}
		path := g.findPath(g.snap.Cities[p.a].Pos, g.snap.Cities[p.b].Pos)
		if path == nil {
			continue
		}
		g.snap.Roads = append(g.snap.Roads, Road{
			FromID: g.snap.Cities[p.a].ID,
			ToID:   g.snap.Cities[p.b].ID,
			Path:   simplifyPath(path, cfg.SimplifyTolerance),
		})
		degree[p.a]++
		degree[p.b]++
	}
}

// moveCost is the price of entering cell i: 1 plus terrain penalties.
func (g *generation) moveCost(from, to int) float64 {
	cfg := g.set.Roads
	cost := 1.0
	if !g.snap.Land[to] || g.snap.Debug.Lake[to] {
		cost += cfg.WaterPenalty
	}
	cost += math.Abs(g.snap.Elevation[to]-g.snap.Elevation[from]) * cfg.SlopePenalty
	if g.snap.Elevation[to] > cfg.MountainElevation {
		cost += cfg.MountainPenalty
	}
	cost += float64(g.snap.Forest[to]) * cfg.ForestPenalty
	return cost
}

type pathNode struct {
	idx      int
	priority float64
	order    int // insertion tiebreak keeps expansion deterministic
}

type pathHeap []pathNode

func (h pathHeap) Len() int { return len(h) }
func (h pathHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].order < h[j].order
}
func (h pathHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *pathHeap) Push(x any)   { *h = append(*h, x.(pathNode)) }
func (h *pathHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	*h = old[:n-1]
	return node
}

// findPath runs bounded A* over the grid, 8-directional, Manhattan
// heuristic. Returns nil when the budget runs out.
func (g *generation) findPath(start, goal Point) []Point {
	startIdx := start.Y*g.w + start.X
	goalIdx := goal.Y*g.w + goal.X

	gScore := map[int]float64{startIdx: 0}
	cameFrom := map[int]int{}
	closed := map[int]bool{}

	open := &pathHeap{{idx: startIdx, priority: manhattan(start, goal)}}
	heap.Init(open)
	pushes := 1

	for iter := 0; iter < aStarBudget && open.Len() > 0; iter++ {
		cur := heap.Pop(open).(pathNode)
		if cur.idx == goalIdx {
			return reconstructPath(cameFrom, cur.idx, g.w)
		}
		if closed[cur.idx] {
			continue
		}
		closed[cur.idx] = true

		x, y := cur.idx%g.w, cur.idx/g.w
		for d, off := range neighbor8 {
			nx, ny := x+off.X, y+off.Y
			if nx < 0 || nx >= g.w || ny < 0 || ny >= g.h {
				continue
			}
			ni := ny*g.w + nx
			if closed[ni] {
				continue
			}
			tentative := gScore[cur.idx] + g.moveCost(cur.idx, ni)*neighborCost[d]
			if prev, seen := gScore[ni]; seen && tentative >= prev {
				continue
			}
			gScore[ni] = tentative
			cameFrom[ni] = cur.idx
			heap.Push(open, pathNode{
				idx:      ni,
				priority: tentative + manhattan(Point{nx, ny}, goal),
				order:    pushes,
			})
			pushes++
		}
	}
	return nil
}

func manhattan(a, b Point) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

func reconstructPath(cameFrom map[int]int, idx, w int) []Point {
	var rev []Point
	for {
		rev = append(rev, Point{idx % w, idx / w})
		prev, ok := cameFrom[idx]
		if !ok {
			break
		}
		idx = prev
	}
	path := make([]Point, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}

// simplifyPath applies Douglas–Peucker: points whose deviation from the
// local chord stays within the tolerance are dropped; both endpoints are
// always kept.
func simplifyPath(path []Point, tolerance float64) []Point {
	if len(path) <= 2 {
		return path
	}
	keep := make([]bool, len(path))
	keep[0] = true
	keep[len(path)-1] = true
	douglasPeucker(path, 0, len(path)-1, tolerance, keep)

	out := make([]Point, 0, len(path))
	for i, k := range keep {
		if k {
			out = append(out, path[i])
		}
	}
	return out
}

func douglasPeucker(path []Point, first, last int, tolerance float64, keep []bool) {
	if last <= first+1 {
		return
	}
	maxDist := 0.0
	maxIdx := -1
	a := fpoint{float64(path[first].X), float64(path[first].Y)}
	b := fpoint{float64(path[last].X), float64(path[last].Y)}
	for i := first + 1; i < last; i++ {
		d := distToSegment(a, b, float64(path[i].X), float64(path[i].Y))
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxDist > tolerance {
		keep[maxIdx] = true
		douglasPeucker(path, first, maxIdx, tolerance, keep)
		douglasPeucker(path, maxIdx, last, tolerance, keep)
	}
}
