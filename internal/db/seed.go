package db

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"carta/internal/model"
)

//go:embed seed.json
var defaultSeed []byte

// DefaultSeed returns the built-in menu.
func DefaultSeed() ([]model.MenuItem, error) {
	return parseSeed(defaultSeed)
}

// LoadSeedFile reads a menu from a JSON file with the same shape as the built-in seed.
func LoadSeedFile(path string) ([]model.MenuItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return parseSeed(data)
}

func parseSeed(data []byte) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("seed item %q has no id", item.Name)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("duplicate seed item id %q", item.ID)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("seed item %q has a negative price", item.ID)
		}
		if err := checkTags(item); err != nil {
			return nil, err
		}
		seen[item.ID] = true
	}
	return items, nil
}

// checkTags enforces that tags form a set over the known tag ids.
func checkTags(item model.MenuItem) error {
	for i, tag := range item.Tags {
		if !slices.Contains(model.Tags, tag) {
			return fmt.Errorf("seed item %q has unknown tag %q", item.ID, tag)
		}
		if slices.Contains(item.Tags[:i], tag) {
			return fmt.Errorf("seed item %q repeats tag %q", item.ID, tag)
		}
	}
	return nil
}
