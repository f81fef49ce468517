package menu

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"carta/internal/locale"
	"carta/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []model.MenuItem {
	return []model.MenuItem{
		{
			ID:         "60",
			Name:       "Mojito",
			CategoryID: "cocktails_classic",
			Price:      8,
			IngredientsText: model.Text{
				model.LangES: "Ron, hierbabuena, azúcar, lima, soda",
				model.LangEN: "Rum, mint, sugar, lime, soda",
			},
			Description: model.Text{
				model.LangEN: "A refreshing Cuban classic.",
				model.LangES: "Un clásico cubano refrescante.",
			},
			Tags: []model.Tag{model.TagCitrus, model.TagSweet},
		},
		{
			ID:              "200",
			Name:            "Mediterranean Salad",
			CategoryID:      "salads",
			Price:           11,
			IngredientsText: model.Text{model.LangEN: "Lettuce, tomato, cucumber, olives, feta cheese"},
		},
		{
			ID:              "1",
			Name:            "Roman squid",
			CategoryID:      "starters",
			Price:           7.5,
			IngredientsText: model.Text{model.LangEN: "Fried squid rings with lemon"},
		},
		{
			ID:              "22",
			Name:            "Tuna Salad",
			CategoryID:      "salads",
			Price:           9,
			IngredientsText: model.Text{model.LangEN: "Tomato, tuna, oregano", model.LangES: "Tomate, atún, orégano"},
		},
		{
			ID:          "99",
			Name:        "Crema Catalana",
			CategoryID:  "desserts",
			Price:       5,
			Description: model.Text{model.LangES: "Postre de crema quemada"},
		},
	}
}

func itemIDs(items []model.MenuItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestResolveFallbackChain(t *testing.T) {
	full := model.Text{model.LangEN: "en", model.LangES: "es", model.LangDE: "de"}
	assert.Equal(t, "de", Resolve(full, model.LangDE))
	assert.Equal(t, "en", Resolve(full, model.LangFR))
	assert.Equal(t, "es", Resolve(model.Text{model.LangES: "es"}, model.LangIT))
	assert.Equal(t, "", Resolve(model.Text{model.LangDE: "de"}, model.LangIT))
	assert.Equal(t, "", Resolve(nil, model.LangEN))
}

func TestResolveTreatsEmptyAsMissing(t *testing.T) {
	text := model.Text{model.LangFR: "", model.LangEN: "", model.LangES: "hola"}
	assert.Equal(t, "hola", Resolve(text, model.LangFR))
}

func TestFilterAllReturnsEverythingInOrder(t *testing.T) {
	items := catalog()
	for _, lang := range model.Languages {
		assert.Equal(t, itemIDs(items), itemIDs(Filter(items, locale.AllCategoryID, "", lang)), lang)
	}
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(catalog(), "salads", "", model.LangEN)
	assert.Equal(t, []string{"200", "22"}, itemIDs(got))
}

func TestFilterSearchHasNoSpanishFallback(t *testing.T) {
	items := catalog()

	assert.Contains(t, itemIDs(Filter(items, locale.AllCategoryID, "mint", model.LangEN)), "60")
	assert.NotContains(t, itemIDs(Filter(items, locale.AllCategoryID, "mint", model.LangES)), "60")
	assert.Contains(t, itemIDs(Filter(items, locale.AllCategoryID, "ron", model.LangES)), "60")

	// Spanish-only description is invisible to a German search.
	assert.Empty(t, Filter(items, locale.AllCategoryID, "quemada", model.LangDE))
	assert.Equal(t, []string{"99"}, itemIDs(Filter(items, locale.AllCategoryID, "quemada", model.LangES)))
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	got := Filter(catalog(), locale.AllCategoryID, "SALAD", model.LangEN)
	assert.Equal(t, []string{"200", "22"}, itemIDs(got))
}

func TestFilterDoesNotTrimWhitespace(t *testing.T) {
	items := catalog()
	assert.Empty(t, Filter(items, locale.AllCategoryID, " mojito", model.LangEN))
	assert.Equal(t, []string{"1"}, itemIDs(Filter(items, locale.AllCategoryID, "roman squid", model.LangEN)))
}

func TestFilterCombinesCategoryAndSearch(t *testing.T) {
	got := Filter(catalog(), "salads", "tuna", model.LangEN)
	assert.Equal(t, []string{"22"}, itemIDs(got))
	assert.Empty(t, Filter(catalog(), "starters", "tuna", model.LangEN))
}

func TestFilterLongerQueryNeverWidens(t *testing.T) {
	items := catalog()
	for _, lang := range model.Languages {
		full := "tomato, tuna"
		prev := Filter(items, locale.AllCategoryID, "", lang)
		for i := 1; i <= len(full); i++ {
			cur := Filter(items, locale.AllCategoryID, full[:i], lang)
			assert.Subset(t, itemIDs(prev), itemIDs(cur), "query %q", full[:i])
			prev = cur
		}
	}
}

func TestFiltererRecomputesOnlyOnChange(t *testing.T) {
	items := catalog()
	var f Filterer

	first := f.Apply(items, 1, locale.AllCategoryID, "", model.LangEN)
	again := f.Apply(items, 1, locale.AllCategoryID, "", model.LangEN)
	assert.Equal(t, 1, f.Runs())
	assert.Equal(t, itemIDs(first), itemIDs(again))

	f.Apply(items, 1, locale.AllCategoryID, "", model.LangES)
	f.Apply(items, 1, "salads", "", model.LangES)
	f.Apply(items, 1, "salads", "t", model.LangES)
	f.Apply(items, 2, "salads", "t", model.LangES)
	assert.Equal(t, 5, f.Runs())
}

func TestToggleTag(t *testing.T) {
	item := catalog()[0]

	added := ToggleTag(item, model.TagVegan)
	assert.True(t, added.HasTag(model.TagVegan))
	assert.False(t, item.HasTag(model.TagVegan), "input must not change")

	removed := ToggleTag(item, model.TagCitrus)
	assert.Equal(t, []model.Tag{model.TagSweet}, removed.Tags)
	assert.Equal(t, []model.Tag{model.TagCitrus, model.TagSweet}, item.Tags)
}

func TestToggleTagTwiceRestoresMembership(t *testing.T) {
	item := catalog()[0]
	for _, tag := range model.Tags {
		back := ToggleTag(ToggleTag(item, tag), tag)
		assert.ElementsMatch(t, item.Tags, back.Tags, tag)
	}

	var empty model.MenuItem
	assert.Empty(t, ToggleTag(ToggleTag(empty, model.TagSpicy), model.TagSpicy).Tags)
}

func TestNewItemDefaults(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		kind     model.ItemKind
		category string
		price    float64
		name     string
	}{
		{model.KindMeal, "starters", 10, "New Meal"},
		{model.KindCocktail, "cocktails_classic", 8, "New Cocktail"},
		{model.KindDrink, "premium_drinks", 4, "New Drink"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			item := NewItem(tt.kind, now, rng)
			assert.Equal(t, "1700000000123", item.ID)
			assert.Equal(t, tt.category, item.CategoryID)
			assert.Equal(t, tt.price, item.Price)
			assert.Equal(t, tt.name, item.Name)
			assert.Equal(t, "Click to edit description", item.Description[model.LangEN])
			assert.Equal(t, "Clic para editar descripción", item.Description[model.LangES])
			assert.Empty(t, item.IngredientsText[model.LangEN])
			assert.Empty(t, item.Tags)
			assert.GreaterOrEqual(t, item.ImageSeed, 0)
			assert.Less(t, item.ImageSeed, 10000)
		})
	}
}

func TestProjectGroupsByCategoryTableOrder(t *testing.T) {
	items := catalog()
	sections := Project(items, model.LangEN)

	require.Len(t, sections, 4)
	assert.Equal(t, "cocktails_classic", sections[0].CategoryID)
	assert.Equal(t, "starters", sections[1].CategoryID)
	assert.Equal(t, "salads", sections[2].CategoryID)
	assert.Equal(t, "desserts", sections[3].CategoryID)

	salads := sections[2]
	assert.Equal(t, "Salads", salads.Title)
	require.Len(t, salads.Lines, 2)
	assert.Equal(t, "Mediterranean Salad", salads.Lines[0].Name)
	assert.Equal(t, "11.00€", salads.Lines[0].Price)
	assert.Equal(t, "Tuna Salad", salads.Lines[1].Name)

	assert.Equal(t, "A refreshing Cuban classic.", sections[0].Lines[0].Description)
	assert.Equal(t, "8.00€", sections[0].Lines[0].Price)
}

func TestProjectOmitsEmptyCategoriesAndLocalizes(t *testing.T) {
	filtered := Filter(catalog(), "salads", "", model.LangDE)
	sections := Project(filtered, model.LangDE)

	require.Len(t, sections, 1)
	assert.Equal(t, "Salate", sections[0].Title)

	assert.Empty(t, Project(nil, model.LangEN))
}

func TestProjectDescriptionSkipsSpanishFallback(t *testing.T) {
	sections := Project(catalog(), model.LangIT)
	last := sections[len(sections)-1]
	require.Equal(t, "desserts", last.CategoryID)
	assert.Empty(t, last.Lines[0].Description)
}

func TestRenderText(t *testing.T) {
	doc := RenderText(Project(catalog(), model.LangEN))

	assert.Contains(t, doc, PrintTitle)
	assert.Contains(t, doc, "CLASSIC COCKTAILS")
	assert.Contains(t, doc, "  A refreshing Cuban classic.")
	assert.Less(t, strings.Index(doc, "CLASSIC COCKTAILS"), strings.Index(doc, "SALADS"))

	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "Mojito ") {
			assert.True(t, strings.HasSuffix(line, " 8.00€"), line)
		}
	}
}
