package worldgen

import "fmt"

// Biome identifies a terrain classification.
type Biome uint8

const (
	BiomeOcean Biome = iota
	BiomeLake
	BiomeBeach
	BiomeSnow
	BiomeMountainRock
	BiomeTundra
	BiomeTaiga
	BiomeGrassland
	BiomeTemperateForest
	BiomeDesert
	BiomeSavanna
	BiomeRainforest
)

// BiomeName returns a human-readable name for a biome.
func BiomeName(b Biome) string {
	switch b {
	case BiomeOcean:
		return "Ocean"
	case BiomeLake:
		return "Lake"
	case BiomeBeach:
		return "Beach"
	case BiomeSnow:
		return "Snow"
	case BiomeMountainRock:
		return "MountainRock"
	case BiomeTundra:
		return "Tundra"
	case BiomeTaiga:
		return "Taiga"
	case BiomeGrassland:
		return "Grassland"
	case BiomeTemperateForest:
		return "TemperateForest"
	case BiomeDesert:
		return "Desert"
	case BiomeSavanna:
		return "Savanna"
	case BiomeRainforest:
		return "Rainforest"
	default:
		return "Unknown"
	}
}

// CityType categorizes a settlement. Exactly one capital exists per world
// when any cities are placed.
type CityType uint8

const (
	CityCapital CityType = iota
	CityRegular
	CityTown
	CityPort
)

// CityTypeName returns a human-readable name for a city type.
func CityTypeName(t CityType) string {
	switch t {
	case CityCapital:
		return "capital"
	case CityRegular:
		return "city"
	case CityTown:
		return "town"
	case CityPort:
		return "port"
	default:
		return "unknown"
	}
}

// Point is a grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// City is a placed settlement. IDs are assigned in placement order.
type City struct {
	ID   int      `json:"id"`
	Pos  Point    `json:"pos"`
	Size float64  `json:"size"` // (0,1]
	Type CityType `json:"type"`
	Name string   `json:"name"`
}

// Road connects two cities with a simplified polyline. The pair is
// unordered and appears at most once; FromID != ToID always.
type Road struct {
	FromID int     `json:"from_id"`
	ToID   int     `json:"to_id"`
	Path   []Point `json:"path"`
}

// Flow direction sentinel: the cell has no downhill neighbor.
const FlowNone int8 = -1

// Snapshot is the complete output of one generation run. All layers share
// the same row-major index space (y*Width + x). The snapshot is immutable
// once returned; consumers read, never write.
type Snapshot struct {
	Width  int
	Height int

	Elevation   []float64 // [0,1]; below SeaLevel is ocean floor
	Land        []bool
	Temperature []float64
	Moisture    []float64
	Biomes      []Biome

	FlowDir   []int8    // index into the 8-neighbor table, FlowNone for pits and water
	FlowAcc   []float64
	River     []float64 // log-scaled intensity, 0 where no river
	WaterDist []float64 // normalized distance to nearest water

	Forest []int // 0 = none, 1..MaxIntensity

	Cities []City
	Roads  []Road

	Debug DebugLayers
}

// DebugLayers carries intermediate masks kept for inspection tooling.
type DebugLayers struct {
	ContinentID []int // -1 for ocean
	Mountain    []bool
	Lake        []bool
}

// Index returns the linear index for (x, y).
func (s *Snapshot) Index(x, y int) int { return y*s.Width + x }

// In reports whether (x, y) lies on the grid.
func (s *Snapshot) In(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// CityByID returns the city with the given id, or nil.
func (s *Snapshot) CityByID(id int) *City {
	for i := range s.Cities {
		if s.Cities[i].ID == id {
			return &s.Cities[i]
		}
	}
	return nil
}

// String returns a one-line summary.
func (s *Snapshot) String() string {
	return fmt.Sprintf("Snapshot(%dx%d, cities=%d, roads=%d)", s.Width, s.Height, len(s.Cities), len(s.Roads))
}

// neighbor8 is the standard 8-neighborhood, paired with step costs
// (diagonals weighted sqrt 2).
var neighbor8 = [8]Point{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var neighborCost = [8]float64{
	1, 1, 1, 1,
	1.4142135623730951, 1.4142135623730951, 1.4142135623730951, 1.4142135623730951,
}
