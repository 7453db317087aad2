package worldgen

import (
	"math"
	"testing"

	"github.com/talgya/worldforge/internal/rng"
)

func TestCitySpacing(t *testing.T) {
	set := SmallSettings()
	snap, err := Generate(set, nil)
	if err != nil {
		t.Fatal(err)
	}
	for a := 0; a < len(snap.Cities); a++ {
		for b := a + 1; b < len(snap.Cities); b++ {
			pa, pb := snap.Cities[a].Pos, snap.Cities[b].Pos
			d := math.Hypot(float64(pa.X-pb.X), float64(pa.Y-pb.Y))
			if d < set.Cities.MinSpacing {
				t.Errorf("cities %d and %d are %v apart, min spacing %v",
					snap.Cities[a].ID, snap.Cities[b].ID, d, set.Cities.MinSpacing)
			}
		}
	}
}

func TestCityInvariants(t *testing.T) {
	set := SmallSettings()
	snap, err := Generate(set, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Cities) > set.Cities.Count {
		t.Fatalf("placed %d cities, requested %d", len(snap.Cities), set.Cities.Count)
	}
	capitals := 0
	for i, c := range snap.Cities {
		if c.ID != i {
			t.Errorf("city %d has id %d; ids must follow placement order", i, c.ID)
		}
		if c.Type == CityCapital {
			capitals++
		}
		if c.Size <= 0 || c.Size > 1 {
			t.Errorf("city %d size %v outside (0,1]", c.ID, c.Size)
		}
		if c.Name == "" {
			t.Errorf("city %d has no name", c.ID)
		}
		if !snap.Land[snap.Index(c.Pos.X, c.Pos.Y)] {
			t.Errorf("city %d placed on water", c.ID)
		}
	}
	if len(snap.Cities) > 0 {
		if capitals != 1 {
			t.Errorf("world has %d capitals, want exactly 1", capitals)
		}
		if snap.Cities[0].Type != CityCapital {
			t.Error("first placed city is not the capital")
		}
	}
}

func TestDisabledCities(t *testing.T) {
	set := SmallSettings()
	set.Cities.Enabled = false
	snap, err := Generate(set, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Cities) != 0 {
		t.Errorf("disabled placement produced %d cities", len(snap.Cities))
	}
	if len(snap.Roads) != 0 {
		t.Errorf("no cities but %d roads", len(snap.Roads))
	}
}

func TestGenerateNameShape(t *testing.T) {
	r := rng.New(31)
	for i := 0; i < 200; i++ {
		name := generateName(r)
		if name == "" {
			t.Fatal("empty name")
		}
		if name[0] >= 'a' && name[0] <= 'z' {
			t.Fatalf("name %q starts lowercase", name)
		}
	}
}
