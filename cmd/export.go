package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"carta/internal/db"
	"carta/internal/menu"
)

// Export writes the print document for the configured category, query and
// language to w.
func Export(ctx context.Context, w io.Writer, config *Config, database *sql.DB) error {
	items, err := db.ListItems(ctx, database)
	if err != nil {
		return err
	}
	filtered := menu.Filter(items, config.Category, config.Query, config.Lang)
	if _, err := io.WriteString(w, menu.RenderText(menu.Project(filtered, config.Lang))); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
