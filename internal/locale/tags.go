package locale

import "carta/internal/model"

// TagInfo describes how a tag is shown.
type TagInfo struct {
	Symbol string
	Label  string
	Color  string
}

var tagInfo = map[model.Tag]TagInfo{
	model.TagSpicy:      {Symbol: "🌶", Label: "Spicy", Color: "#ef4444"},
	model.TagGlutenFree: {Symbol: "🌾", Label: "Gluten Free", Color: "#f59e0b"},
	model.TagVegan:      {Symbol: "🌿", Label: "Vegan", Color: "#22c55e"},
	model.TagVegetarian: {Symbol: "🥕", Label: "Vegetarian", Color: "#84cc16"},
	model.TagSweet:      {Symbol: "🍬", Label: "Sweet", Color: "#f472b6"},
	model.TagCitrus:     {Symbol: "🍋", Label: "Citrus", Color: "#facc15"},
	model.TagStrong:     {Symbol: "⚡", Label: "Strong", Color: "#a855f7"},
	model.TagLowCal:     {Symbol: "🪶", Label: "Low Cal", Color: "#22d3ee"},
}

// Tag returns display info for tag. Unknown tags get their raw id as label.
func Tag(tag model.Tag) TagInfo {
	if info, ok := tagInfo[tag]; ok {
		return info
	}
	return TagInfo{Label: string(tag)}
}
