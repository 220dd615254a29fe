package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"mazeroll/pkg/engine/input"
	"mazeroll/pkg/game/config"
	"mazeroll/pkg/game/gameplay"
	"mazeroll/pkg/game/progress"
	"mazeroll/pkg/game/renderer"
	ebitenrenderer "mazeroll/pkg/game/renderer/ebiten"
	"mazeroll/pkg/game/renderer/tui"
)

func main() {
	startLevel := flag.Int("level", 0, "starting level (for developer testing, 0 uses the config)")
	configPath := flag.String("config", "maze.yaml", "YAML config file, ignored if missing")
	seed := flag.Int64("seed", 0, "seed for level generation, 0 picks one from the clock")
	noSave := flag.Bool("no-save", false, "keep progress in memory only")
	useTUI := flag.Bool("tui", false, "play in the terminal instead of a window")
	locale := flag.String("locale", "", "language for UI text, e.g. de_DE")
	localeDir := flag.String("locale-dir", "locales", "directory holding <locale>/LC_MESSAGES/default.po")
	flag.Parse()

	if *locale != "" {
		gotext.Configure(*localeDir, *locale, "default")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Warning: %v, using defaults", err)
	}
	if *startLevel > 0 {
		cfg.Levels.Start = *startLevel
		cfg.Normalize()
	}

	bindings := input.DefaultBindings()
	keys, err := config.LoadKeys(*configPath)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	if err := bindings.Rebind(keys); err != nil {
		log.Printf("Warning: %v", err)
	}

	var store progress.Store = progress.NewFileStore(cfg.SavePath)
	if *noSave {
		store = progress.NewMemoryStore(0)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Starting at level %d with seed %d", cfg.Levels.Start, *seed)

	g := gameplay.BuildGame(cfg, store, *seed)

	if *useTUI {
		renderer.SetRenderer(tui.New(bindings))
	} else {
		renderer.SetRenderer(ebitenrenderer.New(bindings))
	}
	renderer.Init()

	if err := renderer.Run(g); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
