// Pipeline orchestration. Stages run in a fixed order, each on its own
// forked random stream, so reparameterizing a later stage never perturbs
// an earlier stage's output.
package worldgen

import (
	"log/slog"

	"github.com/talgya/worldforge/internal/rng"
)

// ProgressFunc receives a stage name and a monotonically non-decreasing
// percentage at fixed milestones. May be nil.
type ProgressFunc func(stage string, percent int)

// generation carries the in-flight state of one run. Layers are owned by
// the snapshot from the start; scratch fields live here and are dropped
// when the run ends.
type generation struct {
	set  Settings
	w, h int
	snap *Snapshot

	// influence is the raw continental falloff field, reused by the
	// elevation stage and discarded with the generation.
	influence []float64
}

// Generate runs the full pipeline. Identical settings (including the
// seed) produce a bit-identical snapshot. Validation failures surface
// before any stage executes.
func Generate(set Settings, progress ProgressFunc) (*Snapshot, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	w, h := set.Map.Width, set.Map.Height
	n := w * h
	g := &generation{
		set: set,
		w:   w,
		h:   h,
		snap: &Snapshot{
			Width:       w,
			Height:      h,
			Elevation:   make([]float64, n),
			Land:        make([]bool, n),
			Temperature: make([]float64, n),
			Moisture:    make([]float64, n),
			Biomes:      make([]Biome, n),
			FlowDir:     make([]int8, n),
			FlowAcc:     make([]float64, n),
			River:       make([]float64, n),
			WaterDist:   make([]float64, n),
			Forest:      make([]int, n),
			Debug: DebugLayers{
				ContinentID: make([]int, n),
				Mountain:    make([]bool, n),
				Lake:        make([]bool, n),
			},
		},
		influence: make([]float64, n),
	}

	root := rng.NewString(set.Map.Seed)

	// Every stage forks before running, whether or not it is enabled, so
	// stream assignment is stable across setting changes.
	continentsRNG := root.Fork()
	elevationRNG := root.Fork()
	climateRNG := root.Fork()
	forestRNG := root.Fork()
	cityRNG := root.Fork()

	report := func(stage string, pct int) {
		slog.Debug("generation stage complete", "stage", stage, "percent", pct)
		if progress != nil {
			progress(stage, pct)
		}
	}

	g.buildLandmass(continentsRNG)
	report("Continents", 10)

	g.buildElevation(elevationRNG)
	report("Elevation", 25)

	g.buildFlowDirections()
	g.buildFlowAccumulation()
	g.buildRivers()
	g.buildLakes()
	g.buildWaterDistance()
	report("Hydrology", 45)

	g.buildTemperature(climateRNG)
	g.buildMoisture(climateRNG)
	report("Climate", 55)

	g.buildBiomes()
	report("Biomes", 65)

	g.buildForest(forestRNG)
	report("Forests", 72)

	g.buildSettlements(cityRNG)
	report("Settlements", 85)

	g.buildRoads()
	report("Roads", 97)

	report("Done", 100)
	return g.snap, nil
}
