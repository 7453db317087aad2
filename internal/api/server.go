// Package api serves a generated world snapshot over HTTP. All endpoints
// are GET and read-only; the snapshot is never mutated after generation.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/talgya/worldforge/internal/worldgen"
)

// Server exposes one in-memory snapshot.
type Server struct {
	Settings worldgen.Settings
	Snapshot *worldgen.Snapshot
}

// Handler returns the route table for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/settings", s.handleSettings)
	mux.HandleFunc("/api/v1/cities", s.handleCities)
	mux.HandleFunc("/api/v1/roads", s.handleRoads)
	mux.HandleFunc("/api/v1/layer/", s.handleLayer)
	return logRequests(mux)
}

// ListenAndServe blocks serving the API on the given port.
func (s *Server) ListenAndServe(addr string) error {
	slog.Info("api listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("api request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"seed":   s.Settings.Map.Seed,
		"width":  s.Snapshot.Width,
		"height": s.Snapshot.Height,
		"cities": len(s.Snapshot.Cities),
		"roads":  len(s.Snapshot.Roads),
	})
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Settings)
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	type cityView struct {
		worldgen.City
		TypeName string `json:"type_name"`
	}
	out := make([]cityView, 0, len(s.Snapshot.Cities))
	for _, c := range s.Snapshot.Cities {
		out = append(out, cityView{City: c, TypeName: worldgen.CityTypeName(c.Type)})
	}
	writeJSON(w, out)
}

func (s *Server) handleRoads(w http.ResponseWriter, r *http.Request) {
	roads := s.Snapshot.Roads
	if roads == nil {
		roads = []worldgen.Road{}
	}
	writeJSON(w, roads)
}

// handleLayer serves a raster layer as a row-major float array.
func (s *Server) handleLayer(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/api/v1/layer/")

	var data []float64
	switch name {
	case "elevation":
		data = s.Snapshot.Elevation
	case "temperature":
		data = s.Snapshot.Temperature
	case "moisture":
		data = s.Snapshot.Moisture
	case "flow_acc":
		data = s.Snapshot.FlowAcc
	case "river":
		data = s.Snapshot.River
	case "water_dist":
		data = s.Snapshot.WaterDist
	case "biomes":
		ints := make([]int, len(s.Snapshot.Biomes))
		for i, b := range s.Snapshot.Biomes {
			ints[i] = int(b)
		}
		writeJSON(w, map[string]any{
			"name": name, "width": s.Snapshot.Width, "height": s.Snapshot.Height, "data": ints,
		})
		return
	case "forest":
		writeJSON(w, map[string]any{
			"name": name, "width": s.Snapshot.Width, "height": s.Snapshot.Height, "data": s.Snapshot.Forest,
		})
		return
	default:
		http.Error(w, "unknown layer", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]any{
		"name": name, "width": s.Snapshot.Width, "height": s.Snapshot.Height, "data": data,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
