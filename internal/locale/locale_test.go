package locale

import (
	"testing"

	"carta/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryTableIsComplete(t *testing.T) {
	require.Len(t, Categories, 17)
	assert.Equal(t, "cocktails_classic", Categories[0].ID)
	assert.Equal(t, "children", Categories[16].ID)

	seen := map[string]bool{}
	for _, c := range Categories {
		assert.False(t, seen[c.ID], "duplicate category %s", c.ID)
		seen[c.ID] = true
		for _, lang := range model.Languages {
			assert.NotEmpty(t, c.Names[lang], "%s missing %s", c.ID, lang)
		}
	}
}

func TestEveryLanguageHasStrings(t *testing.T) {
	for _, lang := range model.Languages {
		s := For(lang)
		assert.NotEmpty(t, s.Title, lang)
		assert.Equal(t, "€", s.Currency, lang)
	}
	assert.Equal(t, "All", For(model.Language("xx")).AllCategories)
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Ensaladas", CategoryName("salads", model.LangES))
	assert.Equal(t, "Tutti", CategoryName(AllCategoryID, model.LangIT))
	assert.Equal(t, "Unknown", CategoryName("nope", model.LangEN))
}

func TestCategoryIndexRoundTrip(t *testing.T) {
	assert.Equal(t, AllCategoryID, CategoryAt(0))
	for i, c := range Categories {
		assert.Equal(t, i+1, CategoryIndex(c.ID))
		assert.Equal(t, c.ID, CategoryAt(i+1))
	}
	assert.Equal(t, "children", CategoryAt(-1))
	assert.Equal(t, AllCategoryID, CategoryAt(len(Categories)+1))
}

func TestEveryTagHasInfo(t *testing.T) {
	for _, tag := range model.Tags {
		assert.NotEqual(t, string(tag), Tag(tag).Label)
	}
	assert.Equal(t, "mystery", Tag("mystery").Label)
}
