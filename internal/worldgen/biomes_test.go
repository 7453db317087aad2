package worldgen

import "testing"

// TestClassifyTotal sweeps the classifier's whole input space on a tiny
// grid: every combination of land/lake flags and sampled elevation,
// temperature, and moisture must map to exactly one named biome.
func TestClassifyTotal(t *testing.T) {
	set := SmallSettings()
	g := &generation{set: set, w: 3, h: 3}
	n := g.w * g.h
	g.snap = &Snapshot{
		Width:       g.w,
		Height:      g.h,
		Elevation:   make([]float64, n),
		Land:        make([]bool, n),
		Temperature: make([]float64, n),
		Moisture:    make([]float64, n),
		Biomes:      make([]Biome, n),
		Debug: DebugLayers{
			Lake: make([]bool, n),
		},
	}

	const i = 4 // center cell; neighbors control the beach adjacency path
	steps := []float64{0, 0.1, 0.25, 0.39, 0.41, 0.5, 0.65, 0.8, 0.95, 1}

	for _, land := range []bool{false, true} {
		for _, lake := range []bool{false, true} {
			for _, oceanNeighbor := range []bool{false, true} {
				for _, elev := range steps {
					for _, temp := range steps {
						for _, moist := range steps {
							g.snap.Land[i] = land
							g.snap.Debug.Lake[i] = lake
							g.snap.Land[0] = !oceanNeighbor
							g.snap.Elevation[i] = elev
							g.snap.Temperature[i] = temp
							g.snap.Moisture[i] = moist

							b := g.classify(1, 1, i)
							if BiomeName(b) == "Unknown" {
								t.Fatalf("unclassified input: land=%v lake=%v elev=%v temp=%v moist=%v",
									land, lake, elev, temp, moist)
							}
							if !land && b != BiomeOcean {
								t.Fatalf("water cell classified as %s", BiomeName(b))
							}
							if land && lake && b != BiomeLake {
								t.Fatalf("lake cell classified as %s", BiomeName(b))
							}
						}
					}
				}
			}
		}
	}
}

func TestBiomeLayersConsistent(t *testing.T) {
	snap, err := Generate(SmallSettings(), nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range snap.Biomes {
		if !snap.Land[i] && b != BiomeOcean {
			t.Fatalf("cell %d: water but biome %s", i, BiomeName(b))
		}
		if snap.Land[i] && b == BiomeOcean {
			t.Fatalf("cell %d: land but biome Ocean", i)
		}
	}
}

func TestForestOnlyInEligibleBiomes(t *testing.T) {
	snap, err := Generate(SmallSettings(), nil)
	if err != nil {
		t.Fatal(err)
	}
	set := SmallSettings()
	for i, f := range snap.Forest {
		if f == 0 {
			continue
		}
		if f < 1 || f > set.Forests.MaxIntensity {
			t.Fatalf("cell %d forest intensity %d outside 1..%d", i, f, set.Forests.MaxIntensity)
		}
		if _, ok := forestBias[snap.Biomes[i]]; !ok {
			t.Fatalf("forest in ineligible biome %s", BiomeName(snap.Biomes[i]))
		}
	}
}
