// Package persistence provides SQLite-based storage for generated world
// snapshots. Generation itself never touches the database; callers save
// finished snapshots and load them back for rendering or export.
package persistence

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/worldforge/internal/worldgen"
)

// DB wraps a SQLite connection for snapshot storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS worlds (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		seed TEXT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		settings_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS layers (
		world_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		data BLOB NOT NULL,
		PRIMARY KEY (world_id, name)
	);

	CREATE TABLE IF NOT EXISTS cities (
		world_id INTEGER NOT NULL,
		id INTEGER NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		size REAL NOT NULL,
		type INTEGER NOT NULL,
		name TEXT NOT NULL,
		PRIMARY KEY (world_id, id)
	);

	CREATE TABLE IF NOT EXISTS roads (
		world_id INTEGER NOT NULL,
		from_id INTEGER NOT NULL,
		to_id INTEGER NOT NULL,
		path_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_roads_world ON roads(world_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// WorldInfo summarizes a stored world.
type WorldInfo struct {
	ID        int64  `db:"id" json:"id"`
	Seed      string `db:"seed" json:"seed"`
	Width     int    `db:"width" json:"width"`
	Height    int    `db:"height" json:"height"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// SaveWorld stores a snapshot with the settings that produced it and
// returns the new world id.
func (db *DB) SaveWorld(set worldgen.Settings, snap *worldgen.Snapshot) (int64, error) {
	slog.Info("saving world", "seed", set.Map.Seed, "cities", len(snap.Cities), "roads", len(snap.Roads))

	tx, err := db.conn.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	settingsJSON, err := json.Marshal(set)
	if err != nil {
		return 0, fmt.Errorf("marshal settings: %w", err)
	}

	res, err := tx.Exec(
		"INSERT INTO worlds (seed, width, height, settings_json, created_at) VALUES (?, ?, ?, ?, ?)",
		set.Map.Seed, snap.Width, snap.Height, string(settingsJSON),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert world: %w", err)
	}
	worldID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	layers := []struct {
		name string
		data []byte
	}{
		{"elevation", encodeFloats(snap.Elevation)},
		{"temperature", encodeFloats(snap.Temperature)},
		{"moisture", encodeFloats(snap.Moisture)},
		{"flow_acc", encodeFloats(snap.FlowAcc)},
		{"river", encodeFloats(snap.River)},
		{"water_dist", encodeFloats(snap.WaterDist)},
		{"biomes", encodeBiomes(snap.Biomes)},
		{"land", encodeBools(snap.Land)},
	}
	for _, l := range layers {
		if _, err := tx.Exec(
			"INSERT INTO layers (world_id, name, data) VALUES (?, ?, ?)",
			worldID, l.name, l.data,
		); err != nil {
			return 0, fmt.Errorf("insert layer %s: %w", l.name, err)
		}
	}

	for _, c := range snap.Cities {
		if _, err := tx.Exec(
			"INSERT INTO cities (world_id, id, x, y, size, type, name) VALUES (?, ?, ?, ?, ?, ?, ?)",
			worldID, c.ID, c.Pos.X, c.Pos.Y, c.Size, c.Type, c.Name,
		); err != nil {
			return 0, fmt.Errorf("insert city %d: %w", c.ID, err)
		}
	}

	for _, r := range snap.Roads {
		pathJSON, _ := json.Marshal(r.Path)
		if _, err := tx.Exec(
			"INSERT INTO roads (world_id, from_id, to_id, path_json) VALUES (?, ?, ?, ?)",
			worldID, r.FromID, r.ToID, string(pathJSON),
		); err != nil {
			return 0, fmt.Errorf("insert road %d-%d: %w", r.FromID, r.ToID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	slog.Info("world saved", "id", worldID)
	return worldID, nil
}

// ListWorlds returns stored worlds, newest first.
func (db *DB) ListWorlds() ([]WorldInfo, error) {
	var worlds []WorldInfo
	err := db.conn.Select(&worlds,
		"SELECT id, seed, width, height, created_at FROM worlds ORDER BY id DESC")
	return worlds, err
}

// LoadSettings returns the settings a stored world was generated with.
func (db *DB) LoadSettings(worldID int64) (worldgen.Settings, error) {
	var raw string
	if err := db.conn.Get(&raw,
		"SELECT settings_json FROM worlds WHERE id = ?", worldID); err != nil {
		return worldgen.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	var set worldgen.Settings
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return worldgen.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return set, nil
}

// LoadLayer returns a stored scalar layer by name.
func (db *DB) LoadLayer(worldID int64, name string) ([]float64, error) {
	var blob []byte
	if err := db.conn.Get(&blob,
		"SELECT data FROM layers WHERE world_id = ? AND name = ?", worldID, name); err != nil {
		return nil, fmt.Errorf("load layer %s: %w", name, err)
	}
	return decodeFloats(blob), nil
}

// LoadCities returns the city list for a stored world, in placement order.
func (db *DB) LoadCities(worldID int64) ([]worldgen.City, error) {
	rows, err := db.conn.Queryx(
		"SELECT id, x, y, size, type, name FROM cities WHERE world_id = ? ORDER BY id", worldID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []worldgen.City
	for rows.Next() {
		var (
			id, x, y int
			size     float64
			typ      int
			name     string
		)
		if err := rows.Scan(&id, &x, &y, &size, &typ, &name); err != nil {
			return nil, err
		}
		cities = append(cities, worldgen.City{
			ID:   id,
			Pos:  worldgen.Point{X: x, Y: y},
			Size: size,
			Type: worldgen.CityType(typ),
			Name: name,
		})
	}
	return cities, rows.Err()
}

// LoadRoads returns the road list for a stored world.
func (db *DB) LoadRoads(worldID int64) ([]worldgen.Road, error) {
	rows, err := db.conn.Queryx(
		"SELECT from_id, to_id, path_json FROM roads WHERE world_id = ?", worldID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roads []worldgen.Road
	for rows.Next() {
		var (
			fromID, toID int
			pathJSON     string
		)
		if err := rows.Scan(&fromID, &toID, &pathJSON); err != nil {
			return nil, err
		}
		var path []worldgen.Point
		if err := json.Unmarshal([]byte(pathJSON), &path); err != nil {
			return nil, fmt.Errorf("decode road path: %w", err)
		}
		roads = append(roads, worldgen.Road{FromID: fromID, ToID: toID, Path: path})
	}
	return roads, rows.Err()
}

func encodeFloats(data []float64) []byte {
	buf := make([]byte, 8*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

func decodeFloats(blob []byte) []float64 {
	data := make([]float64, len(blob)/8)
	for i := range data {
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(blob[i*8:]))
	}
	return data
}

func encodeBiomes(biomes []worldgen.Biome) []byte {
	buf := make([]byte, len(biomes))
	for i, b := range biomes {
		buf[i] = byte(b)
	}
	return buf
}

func encodeBools(mask []bool) []byte {
	buf := make([]byte, len(mask))
	for i, b := range mask {
		if b {
			buf[i] = 1
		}
	}
	return buf
}
