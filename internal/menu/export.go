package menu

import (
	"strings"
	"unicode/utf8"

	"carta/internal/locale"
	"carta/internal/model"
	"carta/internal/util"
)

// PrintTitle heads the printed menu.
const PrintTitle = "Apartamentos Arcos Playa Menu"

const printWidth = 64

// Section is one category of the printed menu.
type Section struct {
	CategoryID string
	Title      string
	Lines      []Line
}

// Line is one item of the printed menu.
type Line struct {
	ItemID      string
	Name        string
	Description string
	Price       string
}

// Project groups the filtered items by category in category table order.
// Categories without items are left out.
func Project(filtered []model.MenuItem, lang model.Language) []Section {
	currency := locale.For(lang).Currency

	var sections []Section
	for _, c := range locale.Categories {
		var lines []Line
		for _, item := range filtered {
			if item.CategoryID != c.ID {
				continue
			}
			lines = append(lines, Line{
				ItemID:      item.ID,
				Name:        item.Name,
				Description: resolvePreferredOrEnglish(item.Description, lang),
				Price:       util.FormatPrice(item.Price, currency),
			})
		}
		if len(lines) == 0 {
			continue
		}
		sections = append(sections, Section{
			CategoryID: c.ID,
			Title:      c.Name(lang),
			Lines:      lines,
		})
	}
	return sections
}

// RenderText lays the sections out as a plain-text document.
func RenderText(sections []Section) string {
	var b strings.Builder

	b.WriteString(center(PrintTitle, printWidth))
	b.WriteString("\n")

	for _, s := range sections {
		b.WriteString("\n")
		title := strings.ToUpper(s.Title)
		b.WriteString(title + "\n")
		b.WriteString(strings.Repeat("─", printWidth) + "\n")
		for _, l := range s.Lines {
			b.WriteString(leader(l.Name, l.Price, printWidth) + "\n")
			if l.Description != "" {
				b.WriteString("  " + l.Description + "\n")
			}
		}
	}
	return b.String()
}

func leader(left, right string, width int) string {
	dots := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right) - 2
	if dots < 1 {
		dots = 1
	}
	return left + " " + strings.Repeat(".", dots) + " " + right
}

func center(s string, width int) string {
	pad := (width - utf8.RuneCountInString(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
