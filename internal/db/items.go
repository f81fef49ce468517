package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"carta/internal/model"
)

// ErrItemNotFound is returned when an update names an id the catalog does not hold.
var ErrItemNotFound = errors.New("menu item not found")

const itemColumns = `id, category_id, name, price, image_seed, custom_image, description, ingredients,
	glass_type, intensity, bartender_notes, garnish, preparation_steps, flavor_profile, allergens, tags`

type rowScanner interface {
	Scan(dest ...any) error
}

// ListItems returns the whole catalog in display order. New items come first.
func ListItems(ctx context.Context, db *sql.DB) ([]model.MenuItem, error) {
	query := `SELECT ` + itemColumns + ` FROM menu_items ORDER BY position, rowid`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu item rows: %w", err)
	}

	return items, nil
}

// GetItem retrieves a single item by id.
func GetItem(ctx context.Context, db *sql.DB, id string) (model.MenuItem, error) {
	query := `SELECT ` + itemColumns + ` FROM menu_items WHERE id = ?`

	item, err := scanItem(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.MenuItem{}, fmt.Errorf("failed to get menu item %q: %w", id, ErrItemNotFound)
	}
	if err != nil {
		return model.MenuItem{}, err
	}
	return item, nil
}

// AddItem stores item ahead of every existing item.
func AddItem(ctx context.Context, db *sql.DB, item model.MenuItem) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var first int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MIN(position), 0) FROM menu_items`).Scan(&first); err != nil {
		return fmt.Errorf("failed to read first position: %w", err)
	}

	if err := insertItem(ctx, tx, item, first-1); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SeedItems appends items in the given order.
func SeedItems(ctx context.Context, db *sql.DB, items []model.MenuItem) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var last int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), 0) FROM menu_items`).Scan(&last); err != nil {
		return fmt.Errorf("failed to read last position: %w", err)
	}

	for i, item := range items {
		if err := insertItem(ctx, tx, item, last+int64(i)+1); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateItem replaces the stored record that has item's id. The position is kept.
func UpdateItem(ctx context.Context, db *sql.DB, item model.MenuItem) error {
	query := `
		UPDATE menu_items
		SET category_id = ?, name = ?, price = ?, image_seed = ?, custom_image = ?, description = ?, ingredients = ?,
		    glass_type = ?, intensity = ?, bartender_notes = ?, garnish = ?, preparation_steps = ?, flavor_profile = ?,
		    allergens = ?, tags = ?, updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')
		WHERE id = ?
	`

	args, err := itemArgs(item)
	if err != nil {
		return err
	}
	args = append(args[1:], item.ID)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed to update menu item %q: %w", item.ID, ErrItemNotFound)
	}
	return nil
}

func insertItem(ctx context.Context, tx *sql.Tx, item model.MenuItem, position int64) error {
	query := `
		INSERT INTO menu_items (id, category_id, name, price, image_seed, custom_image, description, ingredients,
		    glass_type, intensity, bartender_notes, garnish, preparation_steps, flavor_profile, allergens, tags, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if item.ID == "" {
		return fmt.Errorf("failed to insert menu item: id is required")
	}

	args, err := itemArgs(item)
	if err != nil {
		return err
	}
	args = append(args, position)

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert menu item %q: %w", item.ID, err)
	}
	return nil
}

// itemArgs returns the column values in itemColumns order.
func itemArgs(item model.MenuItem) ([]any, error) {
	description, err := encodeJSON(item.Description)
	if err != nil {
		return nil, err
	}
	ingredients, err := encodeJSON(item.IngredientsText)
	if err != nil {
		return nil, err
	}
	steps, err := encodeJSON(item.PreparationSteps)
	if err != nil {
		return nil, err
	}
	flavor, err := encodeJSON(item.FlavorProfile)
	if err != nil {
		return nil, err
	}
	allergens, err := encodeJSON(item.Allergens)
	if err != nil {
		return nil, err
	}
	tags, err := encodeJSON(item.Tags)
	if err != nil {
		return nil, err
	}

	return []any{
		item.ID,
		item.CategoryID,
		item.Name,
		item.Price,
		item.ImageSeed,
		nullable(item.CustomImage),
		description,
		ingredients,
		nullable(item.GlassType),
		nullable(string(item.Intensity)),
		nullable(item.BartenderNotes),
		nullable(item.Garnish),
		steps,
		flavor,
		allergens,
		tags,
	}, nil
}

func scanItem(row rowScanner) (model.MenuItem, error) {
	var item model.MenuItem
	var customImage, description, ingredients, glassType, intensity, notes, garnish sql.NullString
	var steps, flavor, allergens, tags sql.NullString

	err := row.Scan(
		&item.ID, &item.CategoryID, &item.Name, &item.Price, &item.ImageSeed, &customImage, &description, &ingredients,
		&glassType, &intensity, &notes, &garnish, &steps, &flavor, &allergens, &tags,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.MenuItem{}, err
	}
	if err != nil {
		return model.MenuItem{}, fmt.Errorf("failed to scan menu item: %w", err)
	}

	item.CustomImage = customImage.String
	item.GlassType = glassType.String
	item.Intensity = model.Intensity(intensity.String)
	item.BartenderNotes = notes.String
	item.Garnish = garnish.String

	if err := decodeJSON(description, &item.Description); err != nil {
		return model.MenuItem{}, err
	}
	if err := decodeJSON(ingredients, &item.IngredientsText); err != nil {
		return model.MenuItem{}, err
	}
	if err := decodeJSON(steps, &item.PreparationSteps); err != nil {
		return model.MenuItem{}, err
	}
	if err := decodeJSON(flavor, &item.FlavorProfile); err != nil {
		return model.MenuItem{}, err
	}
	if err := decodeJSON(allergens, &item.Allergens); err != nil {
		return model.MenuItem{}, err
	}
	if err := decodeJSON(tags, &item.Tags); err != nil {
		return model.MenuItem{}, err
	}

	return item, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// encodeJSON stores nil maps and slices as NULL.
func encodeJSON[T any](v T) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode column: %w", err)
	}
	if string(data) == "null" {
		return nil, nil
	}
	return string(data), nil
}

func decodeJSON(col sql.NullString, dest any) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(col.String), dest); err != nil {
		return fmt.Errorf("failed to decode column: %w", err)
	}
	return nil
}
