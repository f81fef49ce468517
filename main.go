package main

import (
	"context"
	"fmt"
	"os"

	"carta/cmd"
	"carta/internal/db"
	"carta/internal/logger"
	"carta/internal/model"
	"carta/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Parse CLI flags
	config, err := cmd.ParseFlags(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if config.ShowVersion {
		fmt.Printf("carta %s\n", config.Version)
		return
	}

	log, err := logger.New("carta", config.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if err := run(config, log); err != nil {
		log.Errorw("carta exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Close()
		os.Exit(1)
	}
}

func run(config *cmd.Config, log *logger.Logger) error {
	ctx := context.Background()

	items, err := loadSeed(config.SeedPath)
	if err != nil {
		return err
	}

	// Open database
	database, err := db.Open(db.MemoryDSN)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.SeedItems(ctx, database, items); err != nil {
		return fmt.Errorf("failed to seed menu: %w", err)
	}
	log.Infow("menu seeded", "items", len(items), "source", seedSource(config.SeedPath), "lang", config.Lang)

	if config.Export {
		return cmd.Export(ctx, os.Stdout, config, database)
	}

	p := tea.NewProgram(ui.New(database, ui.Options{
		Lang:     config.Lang,
		Category: config.Category,
		Query:    config.Query,
	}, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

func loadSeed(path string) ([]model.MenuItem, error) {
	if path == "" {
		return db.DefaultSeed()
	}
	return db.LoadSeedFile(path)
}

func seedSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
