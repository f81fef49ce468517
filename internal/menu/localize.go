package menu

import "carta/internal/model"

// Resolve picks the display string for lang, falling back to English and then
// Spanish. A missing field resolves to "".
func Resolve(text model.Text, lang model.Language) string {
	if s := text[lang]; s != "" {
		return s
	}
	if s := text[model.LangEN]; s != "" {
		return s
	}
	return text[model.LangES]
}

// resolvePreferredOrEnglish is the narrower chain used by search and print. It never
// falls back to Spanish.
func resolvePreferredOrEnglish(text model.Text, lang model.Language) string {
	if s := text[lang]; s != "" {
		return s
	}
	return text[model.LangEN]
}
