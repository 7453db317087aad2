package worldgen

import "github.com/talgya/worldforge/internal/rng"

// Name fragments. Roots always appear; prefix and suffix each join with
// independent probability.
var (
	namePrefixes = []string{
		"Iron", "Green", "Ash", "Stone", "Mill", "Cross", "Black",
		"Silver", "Red", "White", "Dark", "Bright", "High", "Low",
		"Old", "New", "Far", "Deep", "Long", "Broad", "Gold", "Frost",
		"Storm", "Thorn", "Elm", "Oak", "Pine", "Copper", "River",
	}
	nameRoots = []string{
		"haven", "ford", "hollow", "wick", "bridge", "gate", "keep",
		"stead", "wood", "field", "dale", "crest", "vale", "port",
		"bury", "marsh", "well", "brook", "cliff", "moor", "ridge",
		"watch", "fall", "rest", "point", "reach", "helm", "mere",
	}
	nameSuffixes = []string{
		"ton", "burg", "holm", "shire", "gard", "mont", "stad",
		"wyn", "by", "ham", "mouth", "crag", "fell",
	}
)

const (
	namePrefixChance = 0.6
	nameSuffixChance = 0.35
)

// generateName assembles prefix+root+suffix. Draw order is fixed so
// naming consumes a stable number of stream values per call shape.
func generateName(r *rng.Stream) string {
	name := ""
	if r.Bool(namePrefixChance) {
		name += namePrefixes[r.Pick(len(namePrefixes))]
	}
	root := nameRoots[r.Pick(len(nameRoots))]
	if name == "" {
		// Capitalize the root when it leads the name.
		root = string(root[0]-('a'-'A')) + root[1:]
	}
	name += root
	if r.Bool(nameSuffixChance) {
		name += nameSuffixes[r.Pick(len(nameSuffixes))]
	}
	return name
}
