package ui

import (
	"carta/internal/menu"
	"carta/internal/model"

	"github.com/charmbracelet/bubbles/viewport"
)

// PrintModel shows the print document in a scrollable viewport.
type PrintModel struct {
	doc      string
	sections int
	viewport viewport.Model
}

// NewPrintModel projects the filtered items and lays them out for printing.
func NewPrintModel(filtered []model.MenuItem, lang model.Language, width, height int) *PrintModel {
	sections := menu.Project(filtered, lang)
	doc := menu.RenderText(sections)

	vp := viewport.New(max(width-4, 10), max(height-2, 3))
	vp.SetContent(doc)
	return &PrintModel{doc: doc, sections: len(sections), viewport: vp}
}

// Resize fits the viewport to the content area.
func (m *PrintModel) Resize(width, height int) {
	m.viewport.Width = max(width-4, 10)
	m.viewport.Height = max(height-2, 3)
}

// View renders the document.
func (m *PrintModel) View(width, height int) string {
	m.Resize(width, height)
	return PanelStyle.Padding(0, 1).Render(m.viewport.View())
}

// MoveDown scrolls one line down.
func (m *PrintModel) MoveDown() { m.viewport.LineDown(1) }

// MoveUp scrolls one line up.
func (m *PrintModel) MoveUp() { m.viewport.LineUp(1) }

// JumpToTop scrolls to the title.
func (m *PrintModel) JumpToTop() { m.viewport.GotoTop() }

// JumpToBottom scrolls to the end.
func (m *PrintModel) JumpToBottom() { m.viewport.GotoBottom() }

// HalfPageDown scrolls half a page down.
func (m *PrintModel) HalfPageDown() { m.viewport.HalfViewDown() }

// HalfPageUp scrolls half a page up.
func (m *PrintModel) HalfPageUp() { m.viewport.HalfViewUp() }
