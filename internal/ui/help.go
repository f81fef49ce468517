package ui

import (
	"strings"

	"carta/internal/locale"
	"carta/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders context-sensitive help footer.
func (m Model) RenderHelp() string {
	if m.adding {
		return renderHelpLine([]string{
			bindingHelp(m.addKeys.Meal),
			bindingHelp(m.addKeys.Cocktail),
			bindingHelp(m.addKeys.Drink),
			helpKey("esc", "cancel"),
		}, m.width)
	}

	if m.mode == model.ModeInsert {
		if m.screen == model.ScreenMenu {
			return renderHelpLine([]string{
				helpKey("enter", "keep search"),
				helpKey("esc", "clear search"),
			}, m.width)
		}
		return renderHelpLine([]string{
			bindingHelp(m.formKeys.Save),
			bindingHelp(m.formKeys.Cancel),
			bindingHelp(m.formKeys.Language),
		}, m.width)
	}

	switch m.screen {
	case model.ScreenMenu:
		return renderHelpLine([]string{
			helpKey("j/k", "navigate"),
			bindingHelp(m.keys.PrevCategory),
			bindingHelp(m.keys.NextCategory),
			bindingHelp(m.keys.Search),
			bindingHelp(m.keys.Language),
			bindingHelp(m.keys.Add),
			bindingHelp(m.keys.Select),
			bindingHelp(m.keys.Print),
			helpKey("u/ctrl+r", "undo/redo"),
		}, m.width)
	case model.ScreenItemDetail:
		if m.detail != nil {
			if _, ok := m.detail.pickerOpen(); ok {
				return renderHelpLine([]string{
					helpKey("j/k", "choose"),
					bindingHelp(m.keys.Toggle),
					helpKey("esc", "close"),
				}, m.width)
			}
		}
		return renderHelpLine([]string{
			helpKey("j/k", "field"),
			bindingHelp(m.keys.Edit),
			bindingHelp(m.keys.Image),
			bindingHelp(m.keys.Language),
			helpKey("u/ctrl+r", "undo/redo"),
			bindingHelp(m.keys.Back),
		}, m.width)
	case model.ScreenPrint:
		return renderHelpLine([]string{
			helpKey("j/k", "scroll"),
			bindingHelp(m.keys.Top),
			bindingHelp(m.keys.Bottom),
			helpKey("esc", locale.For(m.lang).Close),
		}, m.width)
	default:
		return renderHelpLine([]string{
			helpKey("j/k", "navigate"),
			bindingHelp(m.keys.Quit),
		}, m.width)
	}
}

func bindingHelp(b key.Binding) string {
	h := b.Help()
	return helpKey(h.Key, h.Desc)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Navigation"),
		helpSection([]helpItem{
			{"j / ↓", "Move down"},
			{"k / ↑", "Move up"},
			{"gg", "Jump to top"},
			{"G", "Jump to bottom"},
			{"ctrl+d", "Half page down"},
			{"ctrl+u", "Half page up"},
			{"L", "Next language (en, es, de, fr, it)"},
			{"u / ctrl+r", "Undo / redo an edit"},
			{"esc / h", "Back"},
			{"q", "Quit (from the menu)"},
			{"?", "Toggle help"},
		}),
		titleSection("Menu"),
		helpSection([]helpItem{
			{"[ / ] / ← / →", "Previous / next category"},
			{"/", "Search name, description and ingredients"},
			{"a then m / c / d", "Add a meal, cocktail or drink"},
			{"enter / l", "Open item"},
			{"p", "Print view of the current selection"},
		}),
		titleSection("Item"),
		helpSection([]helpItem{
			{"e / enter", "Edit the selected field"},
			{"enter", "Save the field"},
			{"esc", "Cancel the field"},
			{"space", "Toggle tag (tag picker)"},
			{"i", "Load a photo from a file"},
			{"ctrl+l", "Switch language while editing (drops the edit)"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
