package menu

import (
	"math/rand"
	"strconv"
	"time"

	"carta/internal/model"
)

// NewItem builds a placeholder item of the given kind. The id is the creation
// time in Unix milliseconds, which is unique enough for a single editor.
func NewItem(kind model.ItemKind, now time.Time, rng *rand.Rand) model.MenuItem {
	categoryID := "starters"
	price := 10.0
	name := "New Meal"

	switch kind {
	case model.KindCocktail:
		categoryID = "cocktails_classic"
		price = 8.0
		name = "New Cocktail"
	case model.KindDrink:
		categoryID = "premium_drinks"
		price = 4.0
		name = "New Drink"
	}

	return model.MenuItem{
		ID:         strconv.FormatInt(now.UnixMilli(), 10),
		CategoryID: categoryID,
		Name:       name,
		Price:      price,
		ImageSeed:  rng.Intn(10000),
		Description: model.Text{
			model.LangEN: "Click to edit description",
			model.LangES: "Clic para editar descripción",
		},
		IngredientsText: model.Text{
			model.LangEN: "",
			model.LangES: "",
		},
		Tags: []model.Tag{},
	}
}
