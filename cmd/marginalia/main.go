package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"marginalia/app"
	"marginalia/core"
	"marginalia/internal/config"
	"marginalia/internal/database"
	"marginalia/internal/database/repository"
	"marginalia/internal/logging"
	"marginalia/internal/metadata"
	"marginalia/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	closer, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	articles := repository.NewArticleRepo(db)
	deps := app.Deps{
		Config:   cfg,
		Articles: articles,
		Tags:     repository.NewTagRepo(db),
		Fetcher:  metadata.NewFetcher(time.Duration(cfg.Fetch.TimeoutSecs)*time.Second, cfg.Fetch.UserAgent),
		Deduper:  &service.Deduper{Articles: articles},
	}

	m := core.NewModel(
		app.Tabs(deps),
		core.NewKeyRegistry(core.DefaultKeyBindings()),
		core.NewCommandRegistry(nil),
		core.AppData{},
	)
	app.ConfigureModel(&m, deps)

	slog.Info("starting", "db", cfg.Database.Path)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
