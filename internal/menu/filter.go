// Package menu derives what the menu shows from the catalog: the filtered
// list, localized text, tag toggles, new items and the print projection.
package menu

import (
	"strings"

	"carta/internal/locale"
	"carta/internal/model"
)

// Filter returns the items in category that match query, in catalog order.
// The query is only lower-cased; an empty query matches everything.
func Filter(items []model.MenuItem, category, query string, lang model.Language) []model.MenuItem {
	q := strings.ToLower(query)

	out := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if category != locale.AllCategoryID && item.CategoryID != category {
			continue
		}
		if !matchesQuery(item, q, lang) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesQuery(item model.MenuItem, q string, lang model.Language) bool {
	return strings.Contains(strings.ToLower(item.Name), q) ||
		strings.Contains(strings.ToLower(resolvePreferredOrEnglish(item.Description, lang)), q) ||
		strings.Contains(strings.ToLower(resolvePreferredOrEnglish(item.IngredientsText, lang)), q)
}

type filterKey struct {
	revision int
	category string
	query    string
	lang     model.Language
}

// Filterer caches the last Filter result and recomputes only when the catalog
// revision or one of the controls changes.
type Filterer struct {
	key    filterKey
	valid  bool
	result []model.MenuItem
	runs   int
}

// Apply returns the filtered view for the given inputs. Callers must bump
// revision whenever items changes.
func (f *Filterer) Apply(items []model.MenuItem, revision int, category, query string, lang model.Language) []model.MenuItem {
	key := filterKey{revision: revision, category: category, query: query, lang: lang}
	if f.valid && f.key == key {
		return f.result
	}
	f.key = key
	f.result = Filter(items, category, query, lang)
	f.valid = true
	f.runs++
	return f.result
}

// Runs reports how many times the filter was actually computed.
func (f *Filterer) Runs() int {
	return f.runs
}
