package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"carta/internal/locale"
	"carta/internal/model"

	"github.com/joho/godotenv"
)

// Config holds CLI configuration.
type Config struct {
	Version     string
	ShowVersion bool
	Lang        model.Language
	SeedPath    string
	LogPath     string
	Export      bool
	Category    string
	Query       string
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags(version string) (*Config, error) {
	// Load .env files first so env-based defaults work with existing flag parsing.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	return Parse(os.Args[1:], version)
}

// Parse builds the configuration from args, using CARTA_* environment
// variables as defaults. Flags win over the environment.
func Parse(args []string, version string) (*Config, error) {
	config := &Config{Version: version}

	var lang string
	fs := flag.NewFlagSet("carta", flag.ContinueOnError)
	fs.StringVar(&lang, "lang", envOr("CARTA_LANG", string(model.LangEN)), "Menu language: en, es, de, fr or it (or set CARTA_LANG)")
	fs.StringVar(&config.SeedPath, "seed", os.Getenv("CARTA_SEED"), "JSON file with menu items to load instead of the built-in menu (or set CARTA_SEED)")
	fs.StringVar(&config.LogPath, "log", envOr("CARTA_LOG", filepath.Join(os.TempDir(), "carta.log")), "Path to the log file (or set CARTA_LOG)")
	fs.BoolVar(&config.Export, "export", false, "Print the menu as text and exit")
	fs.StringVar(&config.Category, "category", locale.AllCategoryID, "Category to show or export")
	fs.StringVar(&config.Query, "query", "", "Search text to filter by")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	config.Lang = model.Language(lang)
	if !config.Lang.Valid() {
		return nil, fmt.Errorf("unsupported language %q (want one of %v)", lang, model.Languages)
	}

	if config.Category != locale.AllCategoryID {
		if _, ok := locale.LookupCategory(config.Category); !ok {
			return nil, fmt.Errorf("unknown category %q", config.Category)
		}
	}

	return config, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
