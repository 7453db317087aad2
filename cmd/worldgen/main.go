// Command worldgen generates a fantasy world from a seed, stores the
// snapshot, and can serve it over HTTP for map viewers.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/talgya/worldforge/internal/api"
	"github.com/talgya/worldforge/internal/persistence"
	"github.com/talgya/worldforge/internal/worldgen"
)

func main() {
	var (
		seed    = flag.String("seed", "fantasy-world", "world seed (any string)")
		width   = flag.Int("width", 512, "map width in cells")
		height  = flag.Int("height", 384, "map height in cells")
		cities  = flag.Int("cities", 12, "settlement count")
		dbPath  = flag.String("db", "", "SQLite path to store the snapshot (empty = no save)")
		serve   = flag.Int("serve", 0, "port to serve the snapshot API on (0 = don't serve)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	set := worldgen.DefaultSettings()
	set.Map.Seed = *seed
	set.Map.Width = *width
	set.Map.Height = *height
	set.Cities.Count = *cities

	slog.Info("generating world", "seed", set.Map.Seed, "size", fmt.Sprintf("%dx%d", *width, *height))

	snap, err := worldgen.Generate(set, func(stage string, pct int) {
		slog.Info("progress", "stage", stage, "percent", pct)
	})
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}

	land := 0
	for _, l := range snap.Land {
		if l {
			land++
		}
	}
	slog.Info("world generated",
		"land_cells", land,
		"cities", len(snap.Cities),
		"roads", len(snap.Roads),
	)
	for _, c := range snap.Cities {
		slog.Debug("city",
			"id", c.ID,
			"name", c.Name,
			"type", worldgen.CityTypeName(c.Type),
			"pos", fmt.Sprintf("(%d,%d)", c.Pos.X, c.Pos.Y),
		)
	}

	if *dbPath != "" {
		db, err := persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		id, err := db.SaveWorld(set, snap)
		if err != nil {
			slog.Error("failed to save world", "error", err)
			os.Exit(1)
		}
		slog.Info("snapshot stored", "path", *dbPath, "world_id", id)
	}

	if *serve > 0 {
		srv := &api.Server{Settings: set, Snapshot: snap}
		if err := srv.ListenAndServe(fmt.Sprintf(":%d", *serve)); err != nil {
			slog.Error("api server stopped", "error", err)
			os.Exit(1)
		}
	}
}
