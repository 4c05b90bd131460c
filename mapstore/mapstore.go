package mapstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/tessellate/tiledata"
	"github.com/katalvlaran/tessellate/tilegrid"
)

// SavedMap is one persisted solve: its run ID, the seed and tile data that
// produced it, and the tile name at every grid position (row-major), with
// an empty string standing in for a cell that never collapsed.
type SavedMap struct {
	RunID        uuid.UUID
	Seed         int64
	Width        int
	Height       int
	TileDataHash string
	Solved       bool
	Tiles        [][]string // Tiles[row][col]
}

// Store wraps a SQLite connection holding completed maps.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at path, running migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mapstore: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("mapstore: open database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("mapstore: %s: %w", pragma, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	const schema = `CREATE TABLE IF NOT EXISTS maps (
		run_id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		tile_data_hash TEXT NOT NULL,
		solved INTEGER NOT NULL,
		tiles TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("mapstore: migration failed: %w\nSQL: %s", err, schema)
	}
	return nil
}

// Save persists grid's final state under runID. grid is read, never
// mutated; the caller is expected to have already drained the solver that
// produced it (whether to completion or to a logged give-up).
func (s *Store) Save(runID uuid.UUID, seed int64, tileDataHash string, grid *tilegrid.Grid, td *tiledata.TileData) error {
	solved := true
	tiles := make([][]string, grid.Height)
	for row := range tiles {
		tiles[row] = make([]string, grid.Width)
	}
	grid.Each(func(c tilegrid.Coord, cell *tilegrid.Cell) {
		if !cell.Collapsed {
			solved = false
			return
		}
		tiles[c.Row][c.Col] = td.NameOf(cell.TileType)
	})

	encoded, err := json.Marshal(tiles)
	if err != nil {
		return fmt.Errorf("mapstore: encode tiles: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO maps (run_id, seed, width, height, tile_data_hash, solved, tiles)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(run_id) DO UPDATE SET
		   seed=excluded.seed, width=excluded.width, height=excluded.height,
		   tile_data_hash=excluded.tile_data_hash, solved=excluded.solved, tiles=excluded.tiles`,
		runID.String(), seed, grid.Width, grid.Height, tileDataHash, solved, string(encoded),
	)
	if err != nil {
		return fmt.Errorf("mapstore: save %s: %w", runID, err)
	}
	return nil
}

// Load retrieves a previously saved map by run ID, or ErrNotFound if none
// exists.
func (s *Store) Load(runID uuid.UUID) (*SavedMap, error) {
	row := s.db.QueryRow(
		`SELECT seed, width, height, tile_data_hash, solved, tiles FROM maps WHERE run_id = ?`,
		runID.String(),
	)

	var (
		m         SavedMap
		solved    int
		tilesJSON string
	)
	m.RunID = runID
	if err := row.Scan(&m.Seed, &m.Width, &m.Height, &m.TileDataHash, &solved, &tilesJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mapstore: load %s: %w", runID, err)
	}
	m.Solved = solved != 0

	if err := json.Unmarshal([]byte(tilesJSON), &m.Tiles); err != nil {
		return nil, fmt.Errorf("mapstore: decode tiles for %s: %w", runID, err)
	}
	return &m, nil
}
