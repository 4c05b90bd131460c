// Command tessellate loads a tile catalogue and a generation config, runs
// the wave function collapse solver to completion, and prints, saves, or
// streams the result.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/tessellate/atlas"
	"github.com/katalvlaran/tessellate/config"
	"github.com/katalvlaran/tessellate/eventstream"
	"github.com/katalvlaran/tessellate/logger"
	"github.com/katalvlaran/tessellate/mapstore"
	"github.com/katalvlaran/tessellate/tiledata"
	"github.com/katalvlaran/tessellate/tilegrid"
)

func main() {
	configPath := flag.String("config", "tessellate.yaml", "path to YAML configuration")
	floorIdx := flag.Int("floor", 0, "index of the map to generate within the atlas")
	serve := flag.Bool("serve", false, "also start the event-stream websocket server")
	outPath := flag.String("out", "", "optional path to write the solved grid as an ASCII dump")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "error initializing logger: %v\n", err)
		os.Exit(1)
	}

	td, err := tiledata.Load(cfg.Generate.TileDataPath)
	if err != nil {
		logger.Errorf("failed to load tile data from %s: %v", cfg.Generate.TileDataPath, err)
		os.Exit(1)
	}

	seed := cfg.Generate.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := atlas.New(seed, cfg.Generate.Width, cfg.Generate.Height, td.FullDomain, td.Constraints)

	var hub *eventstream.Hub
	if *serve && cfg.EventStream.Enabled {
		hub = eventstream.NewHub()
		mux := http.NewServeMux()
		mux.Handle(cfg.EventStream.Path, hub)
		go func() {
			logger.Infof("event stream listening on %s%s", cfg.EventStream.Addr, cfg.EventStream.Path)
			if err := http.ListenAndServe(cfg.EventStream.Addr, mux); err != nil {
				logger.Errorf("event stream server stopped: %v", err)
			}
		}()
	}

	m, err := a.Get(*floorIdx)
	if err != nil {
		logger.Errorf("failed to generate map %d: %v", *floorIdx, err)
		os.Exit(1)
	}
	logger.Always("generation complete", "index", *floorIdx, "seed", m.Seed, "events", len(m.Events))

	if hub != nil {
		for _, e := range m.Events {
			hub.BroadcastEvent(e, td.NameOf)
		}
	}

	logger.Always("solve outcome", "solved", allCollapsed(m.Grid))

	if cfg.Store.Enabled {
		saveMap(cfg, m.Seed, m.Grid, td)
	}

	dump := asciiDump(m.Grid, td)
	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(dump), 0o644); err != nil {
			logger.Errorf("failed to write output file %s: %v", *outPath, err)
			os.Exit(1)
		}
	} else {
		fmt.Print(dump)
	}
}

func saveMap(cfg *config.Config, seed int64, grid *tilegrid.Grid, td *tiledata.TileData) {
	store, err := mapstore.Open(cfg.Store.DBPath)
	if err != nil {
		logger.Errorf("failed to open map store: %v", err)
		return
	}
	defer store.Close()

	runID := uuid.New()
	if err := store.Save(runID, seed, tileDataHash(cfg.Generate.TileDataPath), grid, td); err != nil {
		logger.Errorf("failed to save map: %v", err)
		return
	}
	logger.Infof("saved %dx%d map under run %s", cfg.Generate.Width, cfg.Generate.Height, runID)
}

func allCollapsed(grid *tilegrid.Grid) bool {
	collapsed := true
	grid.Each(func(_ tilegrid.Coord, cell *tilegrid.Cell) {
		if !cell.Collapsed {
			collapsed = false
		}
	})
	return collapsed
}

// tileDataHash fingerprints the tile catalogue file so a stored map can be
// checked against the catalogue that produced it on a later load.
func tileDataHash(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%x", fnv1a(data))
}

func fnv1a(data []byte) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for _, b := range data {
		h ^= uint64(b)
		h *= prime
	}
	return h
}

// asciiDump renders the grid as rows of tile names (or "?" for an
// uncollapsed cell), grounded on the original generator's plain-text
// Map::print() dump.
func asciiDump(grid *tilegrid.Grid, td *tiledata.TileData) string {
	var b strings.Builder
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			cell := grid.Cell(tilegrid.Coord{Row: row, Col: col})
			name := "?"
			if cell.Collapsed {
				name = td.NameOf(cell.TileType)
			}
			fmt.Fprintf(&b, "%-10s", name)
		}
		b.WriteString("\n")
	}
	return b.String()
}
