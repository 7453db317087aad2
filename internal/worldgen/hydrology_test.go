package worldgen

import (
	"math"
	"testing"
)

func TestFlowConservation(t *testing.T) {
	snap, err := Generate(SmallSettings(), nil)
	if err != nil {
		t.Fatal(err)
	}

	g := &generation{set: SmallSettings(), w: snap.Width, h: snap.Height, snap: snap}

	// Every cell's accumulation is 1 rainfall unit plus everything its
	// upstream cells drain into it.
	inflow := make([]float64, snap.Width*snap.Height)
	for i := range snap.FlowDir {
		if target, ok := g.flowTarget(i); ok {
			inflow[target] += snap.FlowAcc[i]
		}
	}

	for i, l := range snap.Land {
		if !l {
			continue
		}
		if snap.FlowAcc[i] < 1 {
			t.Fatalf("cell %d accumulation %v < 1", i, snap.FlowAcc[i])
		}
		want := 1 + inflow[i]
		if math.Abs(snap.FlowAcc[i]-want) > 1e-9 {
			t.Fatalf("cell %d accumulation %v, want %v", i, snap.FlowAcc[i], want)
		}
	}
}

func TestFlowDirectionsPointDownhill(t *testing.T) {
	snap, err := Generate(SmallSettings(), nil)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			i := snap.Index(x, y)
			d := snap.FlowDir[i]
			if d == FlowNone {
				continue
			}
			nx, ny := x+neighbor8[d].X, y+neighbor8[d].Y
			if !snap.In(nx, ny) {
				t.Fatalf("flow at (%d,%d) points off the grid", x, y)
			}
			if snap.Elevation[snap.Index(nx, ny)] >= snap.Elevation[i] {
				t.Fatalf("flow at (%d,%d) points uphill", x, y)
			}
		}
	}
}

func TestRiversMeetThreshold(t *testing.T) {
	set := SmallSettings()
	snap, err := Generate(set, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range snap.River {
		if r == 0 {
			continue
		}
		if !snap.Land[i] {
			t.Fatalf("river on water cell %d", i)
		}
		if snap.FlowAcc[i] < set.Hydrology.RiverThreshold {
			t.Fatalf("river cell %d accumulation %v below threshold", i, snap.FlowAcc[i])
		}
		if r < 1 {
			t.Fatalf("river intensity %v below log-scale floor", r)
		}
	}
}

func TestWaterDistanceNormalized(t *testing.T) {
	snap, err := Generate(SmallSettings(), nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, d := range snap.WaterDist {
		if d < 0 || d > 1 {
			t.Fatalf("water distance %v at cell %d outside [0,1]", d, i)
		}
		if !snap.Land[i] && d != 0 {
			t.Fatalf("ocean cell %d has nonzero water distance %v", i, d)
		}
	}
}

func TestLakesOnLandAndClassified(t *testing.T) {
	snap, err := Generate(SmallSettings(), nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, isLake := range snap.Debug.Lake {
		if !isLake {
			continue
		}
		if !snap.Land[i] {
			t.Fatalf("lake cell %d sits on ocean", i)
		}
		if snap.Biomes[i] != BiomeLake {
			t.Fatalf("lake cell %d classified as %s", i, BiomeName(snap.Biomes[i]))
		}
	}
}
