// Package locale holds the fixed UI strings, category names and tag labels
// for every supported language.
package locale

import "carta/internal/model"

// Strings are the UI labels for one language.
type Strings struct {
	Title             string
	SearchPlaceholder string
	AllCategories     string
	Price             string
	Ingredients       string
	Description       string
	Close             string
	DownloadPDF       string
	NoResults         string
	Currency          string
	Preparation       string
	Garnish           string
	Intensity         string
	Flavor            string
	GlassType         string
	BartenderNotes    string
	AddNotes          string
	Soft              string
	Medium            string
	Strong            string
	Allergens         string
	Category          string
	Tags              string
	NoDescription     string
}

var translations = map[model.Language]Strings{
	model.LangEN: {
		Title:             "Arcos Playa Menu",
		SearchPlaceholder: "Search for cocktails, dishes...",
		AllCategories:     "All",
		Price:             "Price",
		Ingredients:       "Ingredients",
		Description:       "Description",
		Close:             "Close",
		DownloadPDF:       "Download Menu",
		NoResults:         "No items found",
		Currency:          "€",
		Preparation:       "Preparation",
		Garnish:           "Garnish",
		Intensity:         "Intensity",
		Flavor:            "Flavor Profile",
		GlassType:         "Glass",
		BartenderNotes:    "Bartender Notes",
		AddNotes:          "Add bartender notes...",
		Soft:              "Soft",
		Medium:            "Medium",
		Strong:            "Strong",
		Allergens:         "Allergens",
		Category:          "Category",
		Tags:              "Tags",
		NoDescription:     "No description yet",
	},
	model.LangES: {
		Title:             "Menú Arcos Playa",
		SearchPlaceholder: "Buscar cócteles, platos...",
		AllCategories:     "Todos",
		Price:             "Precio",
		Ingredients:       "Ingredientes",
		Description:       "Descripción",
		Close:             "Cerrar",
		DownloadPDF:       "Descargar Menú",
		NoResults:         "No se encontraron artículos",
		Currency:          "€",
		Preparation:       "Preparación",
		Garnish:           "Decoración",
		Intensity:         "Intensidad",
		Flavor:            "Perfil de Sabor",
		GlassType:         "Vaso",
		BartenderNotes:    "Notas del Bartender",
		AddNotes:          "Añadir notas...",
		Soft:              "Suave",
		Medium:            "Medio",
		Strong:            "Fuerte",
		Allergens:         "Alérgenos",
		Category:          "Categoría",
		Tags:              "Etiquetas",
		NoDescription:     "Sin descripción",
	},
	model.LangDE: {
		Title:             "Arcos Playa Menü",
		SearchPlaceholder: "Cocktails, Gerichte suchen...",
		AllCategories:     "Alle",
		Price:             "Preis",
		Ingredients:       "Zutaten",
		Description:       "Beschreibung",
		Close:             "Schließen",
		DownloadPDF:       "Menü herunterladen",
		NoResults:         "Keine Artikel gefunden",
		Currency:          "€",
		Preparation:       "Zubereitung",
		Garnish:           "Garnitur",
		Intensity:         "Intensität",
		Flavor:            "Geschmacksprofil",
		GlassType:         "Glas",
		BartenderNotes:    "Barkeeper Notizen",
		AddNotes:          "Notizen hinzufügen...",
		Soft:              "Leicht",
		Medium:            "Mittel",
		Strong:            "Stark",
		Allergens:         "Allergene",
		Category:          "Kategorie",
		Tags:              "Merkmale",
		NoDescription:     "Noch keine Beschreibung",
	},
	model.LangFR: {
		Title:             "Menu Arcos Playa",
		SearchPlaceholder: "Rechercher cocktails, plats...",
		AllCategories:     "Tout",
		Price:             "Prix",
		Ingredients:       "Ingrédients",
		Description:       "Description",
		Close:             "Fermer",
		DownloadPDF:       "Télécharger le menu",
		NoResults:         "Aucun article trouvé",
		Currency:          "€",
		Preparation:       "Préparation",
		Garnish:           "Garniture",
		Intensity:         "Intensité",
		Flavor:            "Profil de saveur",
		GlassType:         "Verre",
		BartenderNotes:    "Notes du Barman",
		AddNotes:          "Ajouter des notes...",
		Soft:              "Doux",
		Medium:            "Moyen",
		Strong:            "Fort",
		Allergens:         "Allergènes",
		Category:          "Catégorie",
		Tags:              "Étiquettes",
		NoDescription:     "Pas encore de description",
	},
	model.LangIT: {
		Title:             "Menu Arcos Playa",
		SearchPlaceholder: "Cerca cocktail, piatti...",
		AllCategories:     "Tutti",
		Price:             "Prezzo",
		Ingredients:       "Ingredienti",
		Description:       "Descrizione",
		Close:             "Chiudere",
		DownloadPDF:       "Scarica Menu",
		NoResults:         "Nessun articolo trovato",
		Currency:          "€",
		Preparation:       "Preparazione",
		Garnish:           "Guarnizione",
		Intensity:         "Intensità",
		Flavor:            "Profilo di sapore",
		GlassType:         "Bicchiere",
		BartenderNotes:    "Note del Barista",
		AddNotes:          "Aggiungi note...",
		Soft:              "Leggero",
		Medium:            "Medio",
		Strong:            "Forte",
		Allergens:         "Allergeni",
		Category:          "Categoria",
		Tags:              "Etichette",
		NoDescription:     "Nessuna descrizione",
	},
}

// For returns the UI strings for lang, or English for an unknown language.
func For(lang model.Language) Strings {
	if s, ok := translations[lang]; ok {
		return s
	}
	return translations[model.LangEN]
}

// IntensityLabel returns the localized name of an intensity level.
func (s Strings) IntensityLabel(i model.Intensity) string {
	switch i {
	case model.IntensitySoft:
		return s.Soft
	case model.IntensityMedium:
		return s.Medium
	case model.IntensityStrong:
		return s.Strong
	default:
		return ""
	}
}
