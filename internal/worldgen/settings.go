// Package worldgen generates a complete fantasy world from a seed and a
// settings tree: landmasses, elevation, rivers, climate, biomes, forests,
// settlements, and roads. Generation is a pure function of seed plus
// settings; the same inputs always yield an identical snapshot.
package worldgen

import "fmt"

// Settings holds every generation parameter, one sub-record per stage.
// All fields must be populated; stages read complete records and never
// fall back to implicit defaults.
type Settings struct {
	Map        MapSettings
	Continents ContinentSettings
	Elevation  ElevationSettings
	Hydrology  HydrologySettings
	Climate    ClimateSettings
	Biomes     BiomeSettings
	Forests    ForestSettings
	Cities     CitySettings
	Roads      RoadSettings
}

// MapSettings controls grid dimensions and the seed.
type MapSettings struct {
	Width  int
	Height int
	Seed   string // hashed to a 32-bit stream seed
}

// ContinentSettings controls landmass synthesis.
type ContinentSettings struct {
	CountMin          int
	CountMax          int
	RadiusFraction    float64 // influence radius as a fraction of the smaller map dimension
	SpacingFraction   float64 // minimum seed spacing as a fraction of the smaller map dimension
	Falloff           float64 // exponent of the radial influence falloff
	SeaLevel          float64 // threshold in (0,1) separating ocean from land
	CoastNoiseOctaves int
	CoastNoiseScale   float64
	CoastNoiseAmp     float64
	Archipelago       bool
	ArchipelagoScale  float64 // frequency of the island noise field
	ArchipelagoChance float64 // acceptance probability per candidate cell
}

// ElevationSettings controls height synthesis and erosion.
type ElevationSettings struct {
	NoiseOctaves    int
	NoiseScale      float64
	NoisePersist    float64
	RangeCountMin   int
	RangeCountMax   int
	RangeHeight     float64 // peak boost added on a mountain spine
	RangeWidth      float64 // influence half-width in cells
	RangeSteps      int     // max random-walk steps per range
	Curviness       float64 // per-step heading perturbation in radians
	RidgedThreshold float64 // spine influence above which ridged detail is layered
	RidgedAmount    float64
	ErosionPasses   int
	ErosionTalus    float64 // neighbor height difference that triggers relaxation
}

// HydrologySettings controls river and lake extraction.
type HydrologySettings struct {
	RiverThreshold float64 // minimum flow accumulation for a river cell
}

// ClimateSettings controls temperature and moisture fields.
type ClimateSettings struct {
	LatitudeStrength  float64
	ElevationCooling  float64
	NoiseJitter       float64
	RainfallBias      float64
	WaterInfluence    float64
	WindDirection     float64 // degrees, 0 = wind from the west
	RainShadowLength  int     // upwind march distance in cells
	RainShadowEffect  float64
}

// BiomeSettings holds the classifier thresholds. The band structure and
// check order live in Classify; these are the knobs.
type BiomeSettings struct {
	BeachMaxElevation    float64
	MountainMinElevation float64
	SnowTemperature      float64 // below this, high terrain is snow instead of rock
	ColdTemperature      float64
	CoolTemperature      float64
	WarmTemperature      float64
	DryMoisture          float64
	WetMoisture          float64
}

// ForestSettings controls the vegetation density layer.
type ForestSettings struct {
	NoiseOctaves   int
	NoiseScale     float64
	MoistureWeight float64
	RiverBoost     float64
	Threshold      float64
	MaxIntensity   int
}

// CitySettings controls settlement placement.
type CitySettings struct {
	Enabled       bool
	Count         int
	MinSpacing    float64
	CoastalBonus  float64
	RiverBonus    float64
	ScoreJitter   float64
	CoastalRadius int
	RiverRadius   int
}

// RoadSettings controls the road network builder.
type RoadSettings struct {
	Enabled           bool
	MaxConnections    int
	WaterPenalty      float64
	SlopePenalty      float64
	MountainPenalty   float64
	MountainElevation float64
	ForestPenalty     float64
	SimplifyTolerance float64
}

// DefaultSettings returns the standard full-size configuration.
func DefaultSettings() Settings {
	return Settings{
		Map: MapSettings{
			Width:  512,
			Height: 384,
			Seed:   "fantasy-world",
		},
		Continents: ContinentSettings{
			CountMin:          2,
			CountMax:          4,
			RadiusFraction:    0.35,
			SpacingFraction:   0.25,
			Falloff:           2.2,
			SeaLevel:          0.4,
			CoastNoiseOctaves: 4,
			CoastNoiseScale:   0.012,
			CoastNoiseAmp:     0.18,
			Archipelago:       true,
			ArchipelagoScale:  0.08,
			ArchipelagoChance: 0.3,
		},
		Elevation: ElevationSettings{
			NoiseOctaves:    5,
			NoiseScale:      0.008,
			NoisePersist:    0.5,
			RangeCountMin:   2,
			RangeCountMax:   5,
			RangeHeight:     0.45,
			RangeWidth:      18,
			RangeSteps:      24,
			Curviness:       0.6,
			RidgedThreshold: 0.35,
			RidgedAmount:    0.25,
			ErosionPasses:   3,
			ErosionTalus:    0.04,
		},
		Hydrology: HydrologySettings{
			RiverThreshold: 60,
		},
		Climate: ClimateSettings{
			LatitudeStrength: 0.8,
			ElevationCooling: 0.55,
			NoiseJitter:      0.06,
			RainfallBias:     0.35,
			WaterInfluence:   0.4,
			WindDirection:    0,
			RainShadowLength: 24,
			RainShadowEffect: 0.5,
		},
		Biomes: BiomeSettings{
			BeachMaxElevation:    0.035,
			MountainMinElevation: 0.62,
			SnowTemperature:      0.35,
			ColdTemperature:      0.2,
			CoolTemperature:      0.4,
			WarmTemperature:      0.7,
			DryMoisture:          0.3,
			WetMoisture:          0.6,
		},
		Forests: ForestSettings{
			NoiseOctaves:   4,
			NoiseScale:     0.03,
			MoistureWeight: 0.35,
			RiverBoost:     0.25,
			Threshold:      0.45,
			MaxIntensity:   5,
		},
		Cities: CitySettings{
			Enabled:       true,
			Count:         12,
			MinSpacing:    28,
			CoastalBonus:  0.8,
			RiverBonus:    0.6,
			ScoreJitter:   0.15,
			CoastalRadius: 3,
			RiverRadius:   3,
		},
		Roads: RoadSettings{
			Enabled:           true,
			MaxConnections:    3,
			WaterPenalty:      40,
			SlopePenalty:      60,
			MountainPenalty:   8,
			MountainElevation: 0.62,
			ForestPenalty:     1.5,
			SimplifyTolerance: 1.5,
		},
	}
}

// SmallSettings returns a tiny world for rapid iteration and tests.
func SmallSettings() Settings {
	s := DefaultSettings()
	s.Map.Width = 96
	s.Map.Height = 72
	s.Cities.Count = 5
	s.Cities.MinSpacing = 12
	return s
}

// Validate reports the first invalid field, or nil. Generation refuses to
// start on an invalid settings tree; it never produces a partial snapshot.
func (s Settings) Validate() error {
	if s.Map.Width <= 0 || s.Map.Height <= 0 {
		return fmt.Errorf("map dimensions must be positive, got %dx%d", s.Map.Width, s.Map.Height)
	}
	if s.Continents.CountMin > s.Continents.CountMax {
		return fmt.Errorf("continents: count min %d exceeds max %d", s.Continents.CountMin, s.Continents.CountMax)
	}
	if s.Continents.CountMin < 0 {
		return fmt.Errorf("continents: count min %d is negative", s.Continents.CountMin)
	}
	if s.Continents.SeaLevel <= 0 || s.Continents.SeaLevel >= 1 {
		return fmt.Errorf("continents: sea level %v outside (0,1)", s.Continents.SeaLevel)
	}
	if s.Elevation.RangeCountMin > s.Elevation.RangeCountMax {
		return fmt.Errorf("elevation: range count min %d exceeds max %d", s.Elevation.RangeCountMin, s.Elevation.RangeCountMax)
	}
	if s.Elevation.RangeCountMin < 0 {
		return fmt.Errorf("elevation: range count min %d is negative", s.Elevation.RangeCountMin)
	}
	if s.Cities.Count < 0 {
		return fmt.Errorf("cities: count %d is negative", s.Cities.Count)
	}
	if s.Roads.MaxConnections < 0 {
		return fmt.Errorf("roads: max connections %d is negative", s.Roads.MaxConnections)
	}
	return nil
}
