package worldgen

import "testing"

func TestRoadEndpointsAndDegrees(t *testing.T) {
	set := SmallSettings()
	snap, err := Generate(set, nil)
	if err != nil {
		t.Fatal(err)
	}

	degree := make(map[int]int)
	seen := make(map[[2]int]bool)
	for _, road := range snap.Roads {
		if road.FromID == road.ToID {
			t.Fatalf("road self-loop at city %d", road.FromID)
		}
		key := [2]int{road.FromID, road.ToID}
		if road.FromID > road.ToID {
			key = [2]int{road.ToID, road.FromID}
		}
		if seen[key] {
			t.Fatalf("duplicate road between %d and %d", road.FromID, road.ToID)
		}
		seen[key] = true
		degree[road.FromID]++
		degree[road.ToID]++

		from := snap.CityByID(road.FromID)
		to := snap.CityByID(road.ToID)
		if from == nil || to == nil {
			t.Fatalf("road references unknown city %d or %d", road.FromID, road.ToID)
		}
		if len(road.Path) < 2 {
			t.Fatalf("road %d-%d path has %d points", road.FromID, road.ToID, len(road.Path))
		}
		if road.Path[0] != from.Pos {
			t.Errorf("road %d-%d does not start at city %d", road.FromID, road.ToID, road.FromID)
		}
		if road.Path[len(road.Path)-1] != to.Pos {
			t.Errorf("road %d-%d does not end at city %d", road.FromID, road.ToID, road.ToID)
		}
	}

	for id, d := range degree {
		if d > set.Roads.MaxConnections {
			t.Errorf("city %d has %d connections, max %d", id, d, set.Roads.MaxConnections)
		}
	}
}

func TestSimplifyPathKeepsEndpoints(t *testing.T) {
	// A staircase with one sharp corner: simplification must keep the
	// corner and both ends, and never grow the path.
	path := []Point{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
		{4, 1}, {4, 2}, {4, 3}, {4, 4},
	}
	out := simplifyPath(path, 0.5)
	if len(out) > len(path) {
		t.Fatalf("simplified path grew: %d > %d", len(out), len(path))
	}
	if out[0] != path[0] || out[len(out)-1] != path[len(path)-1] {
		t.Fatal("simplification moved an endpoint")
	}
	foundCorner := false
	for _, p := range out {
		if p == (Point{4, 0}) {
			foundCorner = true
		}
	}
	if !foundCorner {
		t.Error("simplification dropped the corner point")
	}
}

func TestSimplifyCollinear(t *testing.T) {
	path := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	out := simplifyPath(path, 0.5)
	if len(out) != 2 {
		t.Fatalf("collinear path simplified to %d points, want 2", len(out))
	}
}

func TestSimplifyShortPathsUntouched(t *testing.T) {
	for _, path := range [][]Point{
		{{1, 1}},
		{{1, 1}, {5, 5}},
	} {
		out := simplifyPath(path, 2)
		if len(out) != len(path) {
			t.Fatalf("path of %d points changed to %d", len(path), len(out))
		}
	}
}

func TestFindPathPrefersLand(t *testing.T) {
	set := SmallSettings()
	snap, err := Generate(set, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Water crossings are heavily penalized, so roads should be almost
	// entirely on land.
	for _, road := range snap.Roads {
		water := 0
		for _, p := range road.Path {
			if !snap.Land[snap.Index(p.X, p.Y)] {
				water++
			}
		}
		if water > len(road.Path)/2 {
			t.Errorf("road %d-%d runs mostly over water (%d/%d points)",
				road.FromID, road.ToID, water, len(road.Path))
		}
	}
}
