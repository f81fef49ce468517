package model

import (
	"fmt"
	"slices"
)

// Language is one of the supported menu languages.
type Language string

const (
	LangEN Language = "en"
	LangES Language = "es"
	LangDE Language = "de"
	LangFR Language = "fr"
	LangIT Language = "it"
)

// Languages lists the supported languages in switcher order.
var Languages = []Language{LangEN, LangES, LangDE, LangFR, LangIT}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return slices.Contains(Languages, l)
}

// Next returns the language after l in switcher order, wrapping around.
func (l Language) Next() Language {
	i := slices.Index(Languages, l)
	return Languages[(i+1)%len(Languages)]
}

// Text is a multilingual string. Not every language has to be present.
type Text map[Language]string

// Clone returns an independent copy of t. A nil Text stays nil.
func (t Text) Clone() Text {
	if t == nil {
		return nil
	}
	out := make(Text, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// WithLanguage returns a copy of t where only lang is set to value.
// Entries for other languages are carried over untouched.
func (t Text) WithLanguage(lang Language, value string) Text {
	out := make(Text, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out[lang] = value
	return out
}

// Tag marks a dietary or flavour property of an item.
type Tag string

const (
	TagSpicy      Tag = "spicy"
	TagGlutenFree Tag = "gluten_free"
	TagVegan      Tag = "vegan"
	TagVegetarian Tag = "vegetarian"
	TagSweet      Tag = "sweet"
	TagCitrus     Tag = "citrus"
	TagStrong     Tag = "strong"
	TagLowCal     Tag = "low_cal"
)

// Tags lists every known tag in display order.
var Tags = []Tag{TagSpicy, TagGlutenFree, TagVegan, TagVegetarian, TagSweet, TagCitrus, TagStrong, TagLowCal}

// Intensity is the strength of a drink.
type Intensity string

const (
	IntensitySoft   Intensity = "Soft"
	IntensityMedium Intensity = "Medium"
	IntensityStrong Intensity = "Strong"
)

// Level returns 1-3 for a known intensity and 0 otherwise.
func (i Intensity) Level() int {
	switch i {
	case IntensitySoft:
		return 1
	case IntensityMedium:
		return 2
	case IntensityStrong:
		return 3
	default:
		return 0
	}
}

// MenuItem is a single catalog record. The JSON names match the seed data.
type MenuItem struct {
	ID               string    `json:"id"`
	CategoryID       string    `json:"categoryId"`
	Name             string    `json:"name"`
	Price            float64   `json:"price"`
	ImageSeed        int       `json:"imageSeed"`
	CustomImage      string    `json:"customImage,omitempty"`
	Description      Text      `json:"description,omitempty"`
	IngredientsText  Text      `json:"ingredientsText,omitempty"`
	GlassType        string    `json:"glassType,omitempty"`
	Intensity        Intensity `json:"intensity,omitempty"`
	BartenderNotes   string    `json:"bartenderNotes,omitempty"`
	Garnish          string    `json:"garnish,omitempty"`
	PreparationSteps []string  `json:"preparationSteps,omitempty"`
	FlavorProfile    []string  `json:"flavorProfile,omitempty"`
	Allergens        []string  `json:"allergens,omitempty"`
	Tags             []Tag     `json:"tags,omitempty"`
}

// Clone returns a deep copy of the item so edits never alias the original.
func (m MenuItem) Clone() MenuItem {
	out := m
	out.Description = m.Description.Clone()
	out.IngredientsText = m.IngredientsText.Clone()
	out.PreparationSteps = slices.Clone(m.PreparationSteps)
	out.FlavorProfile = slices.Clone(m.FlavorProfile)
	out.Allergens = slices.Clone(m.Allergens)
	out.Tags = slices.Clone(m.Tags)
	return out
}

// HasTag reports whether the item carries tag.
func (m MenuItem) HasTag(tag Tag) bool {
	return slices.Contains(m.Tags, tag)
}

// ImageRef returns the custom image when set, otherwise the placeholder URL
// derived from the image seed.
func (m MenuItem) ImageRef() string {
	if m.CustomImage != "" {
		return m.CustomImage
	}
	return PlaceholderImageURL(m.ImageSeed)
}

// Category is a fixed menu section with a name per language.
type Category struct {
	ID    string
	Names map[Language]string
}

// Name returns the category name in lang, falling back to English.
func (c Category) Name(lang Language) string {
	if n := c.Names[lang]; n != "" {
		return n
	}
	return c.Names[LangEN]
}

// ItemKind selects defaults for a newly added item.
type ItemKind string

const (
	KindMeal     ItemKind = "meal"
	KindCocktail ItemKind = "cocktail"
	KindDrink    ItemKind = "drink"
)

// PlaceholderImageURL returns the stock photo reference for an image seed.
func PlaceholderImageURL(seed int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/800/600", seed)
}
