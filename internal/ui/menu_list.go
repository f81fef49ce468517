package ui

import (
	"fmt"
	"strings"

	"carta/internal/locale"
	"carta/internal/menu"
	"carta/internal/model"
	"carta/internal/util"

	"github.com/charmbracelet/lipgloss"
)

type menuColumn struct {
	key   string
	width int
}

// MenuListModel represents the menu list screen. Rows are the filtered view;
// the list never reorders them.
type MenuListModel struct {
	rows   []model.MenuItem
	total  int
	cursor int
	offset int

	viewportHeight int

	columns []menuColumn
}

// NewMenuListModel creates an empty menu list.
func NewMenuListModel() *MenuListModel {
	return &MenuListModel{
		columns: []menuColumn{
			{key: "name", width: 24},
			{key: "category", width: 18},
			{key: "price", width: 9},
			{key: "tags", width: 10},
			{key: "description", width: 30},
		},
	}
}

// SetRows replaces the visible rows, keeping the cursor on the same item id
// when it is still visible.
func (m *MenuListModel) SetRows(rows []model.MenuItem, total int) {
	selected := m.SelectedID()
	m.rows = rows
	m.total = total
	if selected != "" {
		m.SelectID(selected)
	}
	m.clampCursor()
}

// SelectedID returns the id under the cursor, or "" for an empty list.
func (m *MenuListModel) SelectedID() string {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return ""
	}
	return m.rows[m.cursor].ID
}

// SelectID moves the cursor to id. It reports false when id is not visible.
func (m *MenuListModel) SelectID(id string) bool {
	for i, row := range m.rows {
		if row.ID == id {
			m.cursor = i
			m.scrollToCursor()
			return true
		}
	}
	return false
}

func (m *MenuListModel) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scrollToCursor()
}

func (m *MenuListModel) pageHeight() int {
	if m.viewportHeight == 0 {
		return 10
	}
	return m.viewportHeight
}

func (m *MenuListModel) scrollToCursor() {
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
	if vh := m.pageHeight(); m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

// View renders the list.
func (m *MenuListModel) View(width, height int, lang model.Language) string {
	s := locale.For(lang)
	if len(m.rows) == 0 {
		return EmptyStateStyle.
			Width(width).
			Height(height).
			Render(s.NoResults)
	}

	labels := map[string]string{
		"name":        "name",
		"category":    strings.ToLower(s.Category),
		"price":       strings.ToLower(s.Price),
		"tags":        strings.ToLower(s.Tags),
		"description": strings.ToLower(s.Description),
	}

	widths := make([]int, len(m.columns))
	headers := make([]string, len(m.columns))
	total := 0
	for i, col := range m.columns {
		widths[i] = col.width + 2
		headers[i] = labels[col.key]
		total += widths[i]
	}
	if extra := width - total - 2; extra > 0 {
		widths[len(widths)-1] += extra
	}

	header := renderTableRow(headers, widths, TableHeaderStyle)
	divider := renderTableDivider(widths)

	visibleHeight := height - 3
	m.viewportHeight = visibleHeight
	m.scrollToCursor()

	var rows []string
	for i := m.offset; i < len(m.rows) && i < m.offset+visibleHeight; i++ {
		row := m.rows[i]
		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}

		cells := make([]string, 0, len(m.columns))
		for j, col := range m.columns {
			switch col.key {
			case "name":
				cells = append(cells, util.TruncateString(row.Name, col.width))
			case "category":
				cells = append(cells, util.TruncateString(locale.CategoryName(row.CategoryID, lang), col.width))
			case "price":
				cells = append(cells, util.FormatPrice(row.Price, s.Currency))
			case "tags":
				cells = append(cells, tagSymbols(row.Tags))
			case "description":
				desc := menu.Resolve(row.Description, lang)
				if desc == "" {
					desc = menu.Resolve(row.IngredientsText, lang)
				}
				cells = append(cells, util.TruncateString(desc, widths[j]-2))
			}
		}
		rows = append(rows, renderTableRow(cells, widths, style))
	}

	filterInfo := ""
	if len(m.rows) != m.total {
		filterInfo = fmt.Sprintf("  ·  filtered: %d/%d", len(m.rows), m.total)
	}
	status := StatusBarStyle.Render(fmt.Sprintf("%d items  ·  row %d/%d%s", len(m.rows), m.cursor+1, len(m.rows), filterInfo))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		divider,
		strings.Join(rows, "\n"),
	)
	spacerHeight := max(0, height-lipgloss.Height(content)-lipgloss.Height(status))
	spacer := lipgloss.NewStyle().Height(spacerHeight).Render("")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		spacer,
		status,
	)
}

// MoveDown moves the cursor down.
func (m *MenuListModel) MoveDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
		m.scrollToCursor()
	}
}

// MoveUp moves the cursor up.
func (m *MenuListModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
		m.scrollToCursor()
	}
}

// JumpToTop jumps to the first item.
func (m *MenuListModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last item.
func (m *MenuListModel) JumpToBottom() {
	if len(m.rows) > 0 {
		m.cursor = len(m.rows) - 1
		m.scrollToCursor()
	}
}

// HalfPageDown moves down half a page.
func (m *MenuListModel) HalfPageDown() {
	m.cursor += m.pageHeight() / 2
	m.clampCursor()
}

// HalfPageUp moves up half a page.
func (m *MenuListModel) HalfPageUp() {
	m.cursor -= m.pageHeight() / 2
	m.clampCursor()
}

func tagSymbols(tags []model.Tag) string {
	var parts []string
	for _, t := range tags {
		info := locale.Tag(t)
		if info.Symbol == "" {
			continue
		}
		parts = append(parts, info.Symbol)
	}
	return strings.Join(parts, " ")
}

func renderTableRow(cells []string, widths []int, style lipgloss.Style) string {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		parts = append(parts, style.Width(widths[i]).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

func renderTableDivider(widths []int) string {
	total := 0
	for _, w := range widths {
		total += w
	}
	return MutedStyle.Render(strings.Repeat("─", total))
}
