package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/talgya/worldforge/internal/worldgen"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	set := worldgen.SmallSettings()
	snap, err := worldgen.Generate(set, nil)
	if err != nil {
		t.Fatal(err)
	}
	srv := &Server{Settings: set, Snapshot: snap}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestStatusEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/status")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var status struct {
		Seed   string `json:"seed"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatal(err)
	}
	if status.Width != 96 || status.Height != 72 {
		t.Errorf("dimensions %dx%d, want 96x72", status.Width, status.Height)
	}
	if status.Seed == "" {
		t.Error("status missing seed")
	}
}

func TestLayerEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/layer/elevation")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var layer struct {
		Width  int       `json:"width"`
		Height int       `json:"height"`
		Data   []float64 `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&layer); err != nil {
		t.Fatal(err)
	}
	if len(layer.Data) != layer.Width*layer.Height {
		t.Errorf("layer has %d values for %dx%d grid", len(layer.Data), layer.Width, layer.Height)
	}
}

func TestUnknownLayer(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/layer/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCitiesEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/cities")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var cities []struct {
		ID       int    `json:"id"`
		TypeName string `json:"type_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&cities); err != nil {
		t.Fatal(err)
	}
	if len(cities) > 0 && cities[0].TypeName != "capital" {
		t.Errorf("first city type %q, want capital", cities[0].TypeName)
	}
}
