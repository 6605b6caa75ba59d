package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"mimir/cmd/inspector/internal/config"
	"mimir/cmd/inspector/internal/ui"
	"mimir/logging"
	"mimir/store"
)

func main() {
	configPath := flag.String("config", "inspector.yaml", "scenario file")
	dataDir := flag.String("dir", "", "store directory (default: fresh temp dir)")
	flag.Parse()

	// ---------------- Scenario ----------------

	sc, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("scenario load failed: %v", err)
	}

	// ---------------- Logging ----------------

	if err := logging.Init(logging.Config{Level: "info", OutputPath: sc.LogPath}); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}
	defer logging.Close()

	// ---------------- Store ----------------

	dir := *dataDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "mimir-inspector-*")
		if err != nil {
			log.Fatalf("temp dir failed: %v", err)
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}

	st, err := store.Open(dir)
	if err != nil {
		log.Fatalf("store open failed: %v", err)
	}

	// ---------------- TUI ----------------

	p := tea.NewProgram(ui.New(sc, st), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("inspector exited: %v", err)
	}
}
