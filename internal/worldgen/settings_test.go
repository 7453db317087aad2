package worldgen

import (
	"strings"
	"testing"
)

func TestDefaultSettingsValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
	if err := SmallSettings().Validate(); err != nil {
		t.Fatalf("small settings invalid: %v", err)
	}
}

func TestValidateNamesField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
		want   string
	}{
		{"dimensions", func(s *Settings) { s.Map.Width = 0 }, "map dimensions"},
		{"continent counts", func(s *Settings) { s.Continents.CountMin = 9; s.Continents.CountMax = 1 }, "continents"},
		{"sea level", func(s *Settings) { s.Continents.SeaLevel = 1.5 }, "sea level"},
		{"range counts", func(s *Settings) { s.Elevation.RangeCountMin = 7; s.Elevation.RangeCountMax = 3 }, "elevation"},
		{"city count", func(s *Settings) { s.Cities.Count = -1 }, "cities"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set := DefaultSettings()
			tc.mutate(&set)
			err := set.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not identify %q", err.Error(), tc.want)
			}
		})
	}
}
