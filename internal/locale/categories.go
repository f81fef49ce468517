package locale

import "carta/internal/model"

// AllCategoryID selects every category in the filter bar.
const AllCategoryID = "all"

func cat(id, en, es, de, fr, it string) model.Category {
	return model.Category{
		ID: id,
		Names: map[model.Language]string{
			model.LangEN: en,
			model.LangES: es,
			model.LangDE: de,
			model.LangFR: fr,
			model.LangIT: it,
		},
	}
}

// Categories is the fixed category table in menu order.
var Categories = []model.Category{
	// drinks and cocktails
	cat("cocktails_classic", "Classic Cocktails", "Cócteles Clásicos", "Klassische Cocktails", "Cocktails Classiques", "Cocktail Classici"),
	cat("cocktails_signature", "Signature Cocktails", "Cócteles de Autor", "Signature Cocktails", "Cocktails Signature", "Cocktail d'Autore"),
	cat("alcohol_free", "Alcohol Free", "Sin Alcohol", "Alkoholfrei", "Sans Alcool", "Analcolici"),
	cat("smoothies", "Smoothies & Refreshers", "Smoothies y Refrescos", "Smoothies & Erfrischungen", "Smoothies & Rafraîchissements", "Frullati e Bibite"),
	cat("premium_drinks", "Premium Drinks", "Copas Premium", "Premium Drinks", "Boissons Premium", "Bevande Premium"),
	cat("aperitifs", "Aperitifs & More", "Aperitivos y Más", "Aperitifs & Mehr", "Apéritifs & Plus", "Aperitivi e Altro"),

	// food
	cat("breakfast", "Breakfast", "Desayunos", "Frühstück", "Petit Déjeuner", "Colazione"),
	cat("starters", "Starters", "Entrantes", "Vorspeisen", "Entrées", "Antipasti"),
	cat("salads", "Salads", "Ensaladas", "Salate", "Salades", "Insalate"),
	cat("mains", "Main Courses", "Platos Principales", "Hauptgerichte", "Plats Principaux", "Piatti Principali"),
	cat("burgers", "Burgers & Sandwiches", "Hamburguesas y Sandwiches", "Burger & Sandwiches", "Burgers & Sandwichs", "Hamburger e Panini"),
	cat("meats", "Meats", "Carnes", "Fleischgerichte", "Viandes", "Carni"),
	cat("fish", "Fish & Seafood", "Pescados y Mariscos", "Fisch & Meeresfrüchte", "Poissons et Fruits de Mer", "Pesce e Frutti di Mare"),
	cat("pasta", "Pasta", "Pasta", "Nudeln", "Pâtes", "Pasta"),
	cat("desserts", "Desserts", "Postres", "Desserts", "Desserts", "Dolci"),
	cat("vegetarian", "Vegetarian Options", "Opciones Vegetarianas", "Vegetarische Optionen", "Options Végétariennes", "Opzioni Vegetariane"),
	cat("children", "Children Menu", "Menú Infantil", "Kindermenü", "Menu Enfant", "Menu Bambini"),
}

// LookupCategory finds a category by id.
func LookupCategory(id string) (model.Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// CategoryName returns the localized name of id, or "Unknown".
func CategoryName(id string, lang model.Language) string {
	if id == AllCategoryID {
		return For(lang).AllCategories
	}
	if c, ok := LookupCategory(id); ok {
		return c.Name(lang)
	}
	return "Unknown"
}

// CategoryIndex returns the position of id in the filter bar, where 0 is "all".
func CategoryIndex(id string) int {
	for i, c := range Categories {
		if c.ID == id {
			return i + 1
		}
	}
	return 0
}

// CategoryAt is the inverse of CategoryIndex. Indexes wrap around.
func CategoryAt(idx int) string {
	n := len(Categories) + 1
	idx = ((idx % n) + n) % n
	if idx == 0 {
		return AllCategoryID
	}
	return Categories[idx-1].ID
}
