package ui

import (
	"fmt"
	"slices"
	"strings"

	"carta/internal/edit"
	"carta/internal/locale"
	"carta/internal/menu"
	"carta/internal/model"
	"carta/internal/util"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// rowPhoto is the detail row for the photo. It is not a controller field:
// a new photo is written as soon as the file has been read.
const rowPhoto edit.Field = "photo"

var detailRows = append(slices.Clone(edit.Fields), rowPhoto)

var textFields = []edit.Field{edit.FieldName, edit.FieldPrice, edit.FieldDescription, edit.FieldIngredients, edit.FieldNotes}

// ItemDetailModel represents the item detail screen.
type ItemDetailModel struct {
	ctrl   *edit.Controller
	cursor int

	input         textinput.Model
	imageInput    textinput.Model
	choosingImage bool
	pickerCursor  int

	image imageCache
}

// NewItemDetailModel opens item in lang.
func NewItemDetailModel(item model.MenuItem, lang model.Language) *ItemDetailModel {
	input := textinput.New()
	input.CharLimit = 500

	imageInput := textinput.New()
	imageInput.Placeholder = "path/to/photo.jpg"
	imageInput.CharLimit = 1024

	return &ItemDetailModel{
		ctrl:       edit.New(item, lang),
		input:      input,
		imageInput: imageInput,
	}
}

// Item returns the record shown.
func (m *ItemDetailModel) Item() model.MenuItem {
	return m.ctrl.Item()
}

// Row returns the row under the cursor.
func (m *ItemDetailModel) Row() edit.Field {
	return detailRows[m.cursor]
}

// SelectRow moves the cursor to field.
func (m *ItemDetailModel) SelectRow(field edit.Field) {
	if i := slices.Index(detailRows, field); i >= 0 {
		m.cursor = i
	}
}

// Open returns the field with an open session, if any.
func (m *ItemDetailModel) Open() (edit.Field, bool) {
	for _, f := range edit.Fields {
		if m.ctrl.Editing(f) {
			return f, true
		}
	}
	return "", false
}

func (m *ItemDetailModel) pickerOpen() (edit.Field, bool) {
	f, ok := m.Open()
	if ok && (f == edit.FieldCategory || f == edit.FieldTags) {
		return f, true
	}
	return "", false
}

// TextEditing reports whether a text input has focus.
func (m *ItemDetailModel) TextEditing() bool {
	if m.choosingImage {
		return true
	}
	f, ok := m.Open()
	return ok && slices.Contains(textFields, f)
}

// Begin opens the row under the cursor. It returns the blink command when a
// text input takes focus.
func (m *ItemDetailModel) Begin() tea.Cmd {
	m.closeAll()

	row := m.Row()
	switch row {
	case rowPhoto:
		return m.BeginImage()
	case edit.FieldCategory:
		m.ctrl.Begin(row)
		m.pickerCursor = max(0, locale.CategoryIndex(m.ctrl.Item().CategoryID)-1)
		return nil
	case edit.FieldTags:
		m.ctrl.Begin(row)
		m.pickerCursor = 0
		return nil
	}

	m.input.SetValue(m.ctrl.Begin(row))
	m.input.CursorEnd()
	return m.input.Focus()
}

// BeginImage focuses the photo path input.
func (m *ItemDetailModel) BeginImage() tea.Cmd {
	m.closeAll()
	m.SelectRow(rowPhoto)
	m.choosingImage = true
	m.imageInput.SetValue("")
	return m.imageInput.Focus()
}

// closeAll drops any open session and input focus.
func (m *ItemDetailModel) closeAll() {
	if f, ok := m.Open(); ok {
		m.ctrl.Cancel(f)
	}
	m.blur()
}

func (m *ItemDetailModel) blur() {
	m.input.Blur()
	m.imageInput.Blur()
	m.choosingImage = false
}

// UpdateInput feeds a key to the focused input and mirrors the text into the
// staged value.
func (m *ItemDetailModel) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.choosingImage {
		m.imageInput, cmd = m.imageInput.Update(msg)
		return cmd
	}
	f, ok := m.Open()
	if !ok {
		return nil
	}
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetStaged(f, m.input.Value())
	return cmd
}

// Commit confirms the open text field.
func (m *ItemDetailModel) Commit() (model.MenuItem, edit.Field, bool, error) {
	f, ok := m.Open()
	if !ok {
		return m.ctrl.Item(), "", false, nil
	}
	m.ctrl.SetStaged(f, m.input.Value())
	m.blur()
	item, write, err := m.ctrl.Commit(f)
	return item, f, write, err
}

// ImagePath closes the photo input and returns what was typed.
func (m *ItemDetailModel) ImagePath() string {
	path := strings.TrimSpace(m.imageInput.Value())
	m.blur()
	return path
}

// Cancel closes whatever is open without writing.
func (m *ItemDetailModel) Cancel() {
	m.closeAll()
}

// Pick confirms the picker choice under the picker cursor.
func (m *ItemDetailModel) Pick() (model.MenuItem, string, error) {
	f, _ := m.pickerOpen()
	switch f {
	case edit.FieldCategory:
		id := locale.Categories[m.pickerCursor].ID
		item, err := m.ctrl.SelectCategory(id)
		return item, "category changed", err
	case edit.FieldTags:
		tag := model.Tags[m.pickerCursor]
		return m.ctrl.ToggleTag(tag), "tag " + string(tag) + " toggled", nil
	}
	return m.ctrl.Item(), "", nil
}

// Sync refreshes the record and language. It reports whether a staged edit
// was thrown away.
func (m *ItemDetailModel) Sync(item model.MenuItem, lang model.Language) bool {
	discarded := m.ctrl.Sync(item, lang)
	if _, ok := m.Open(); !ok {
		m.input.Blur()
	}
	return discarded
}

// Close discards every staged value.
func (m *ItemDetailModel) Close() {
	m.ctrl.Reset()
	m.blur()
}

func (m *ItemDetailModel) pickerLen() int {
	f, ok := m.pickerOpen()
	if !ok {
		return 0
	}
	if f == edit.FieldCategory {
		return len(locale.Categories)
	}
	return len(model.Tags)
}

// MoveDown moves the picker cursor or the row cursor.
func (m *ItemDetailModel) MoveDown() {
	if n := m.pickerLen(); n > 0 {
		m.pickerCursor = min(m.pickerCursor+1, n-1)
		return
	}
	m.cursor = min(m.cursor+1, len(detailRows)-1)
}

// MoveUp moves the picker cursor or the row cursor.
func (m *ItemDetailModel) MoveUp() {
	if m.pickerLen() > 0 {
		m.pickerCursor = max(m.pickerCursor-1, 0)
		return
	}
	m.cursor = max(m.cursor-1, 0)
}

// JumpToTop selects the first entry.
func (m *ItemDetailModel) JumpToTop() {
	if m.pickerLen() > 0 {
		m.pickerCursor = 0
		return
	}
	m.cursor = 0
}

// JumpToBottom selects the last entry.
func (m *ItemDetailModel) JumpToBottom() {
	if n := m.pickerLen(); n > 0 {
		m.pickerCursor = n - 1
		return
	}
	m.cursor = len(detailRows) - 1
}

// HalfPageDown moves four entries down.
func (m *ItemDetailModel) HalfPageDown() {
	for i := 0; i < 4; i++ {
		m.MoveDown()
	}
}

// HalfPageUp moves four entries up.
func (m *ItemDetailModel) HalfPageUp() {
	for i := 0; i < 4; i++ {
		m.MoveUp()
	}
}

// View renders the detail.
func (m *ItemDetailModel) View(width, height int) string {
	item := m.ctrl.Item()
	lang := m.ctrl.Lang()
	s := locale.For(lang)

	title := lipgloss.JoinHorizontal(
		lipgloss.Left,
		LabelStyle.Render(item.Name),
		"  ",
		PriceStyle.Render(util.FormatPrice(item.Price, s.Currency)),
	)

	var rows []string
	for i, f := range detailRows {
		rows = append(rows, m.renderRow(f, i == m.cursor, item, s))
	}

	sections := []string{title, strings.Join(rows, "\n")}
	if info := renderDrinkInfo(item, s); info != "" {
		sections = append(sections, info)
	}

	body := PanelStyle.
		Width(width - 4).
		Render(strings.Join(sections, "\n\n"))

	photo := m.renderPhoto(item, width)
	if photo == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, photo)
}

func (m *ItemDetailModel) label(f edit.Field, s locale.Strings) string {
	switch f {
	case edit.FieldName:
		return "Name"
	case edit.FieldPrice:
		return s.Price
	case edit.FieldCategory:
		return s.Category
	case edit.FieldDescription:
		return s.Description
	case edit.FieldIngredients:
		return s.Ingredients
	case edit.FieldNotes:
		return s.BartenderNotes
	case edit.FieldTags:
		return s.Tags
	default:
		return "Photo"
	}
}

func (m *ItemDetailModel) renderRow(f edit.Field, selected bool, item model.MenuItem, s locale.Strings) string {
	label := m.label(f, s)
	marker := "  "
	if selected {
		marker = HelpKeyStyle.Render("› ")
	}

	if f == rowPhoto && m.choosingImage {
		return renderFormField(label, m.imageInput, true)
	}
	if slices.Contains(textFields, f) && m.ctrl.Editing(f) {
		return renderFormField(label, m.input, true)
	}

	lang := m.ctrl.Lang()
	var value string
	switch f {
	case edit.FieldName:
		value = item.Name
	case edit.FieldPrice:
		value = util.FormatPrice(item.Price, s.Currency)
	case edit.FieldCategory:
		value = locale.CategoryName(item.CategoryID, lang)
	case edit.FieldDescription:
		value = menu.Resolve(item.Description, lang)
		if value == "" {
			value = MutedStyle.Render(s.NoDescription)
		}
	case edit.FieldIngredients:
		value = menu.Resolve(item.IngredientsText, lang)
	case edit.FieldNotes:
		value = item.BartenderNotes
		if value == "" {
			value = MutedStyle.Render(s.AddNotes)
		}
	case edit.FieldTags:
		value = renderTags(item.Tags)
	case rowPhoto:
		if item.CustomImage != "" {
			value = "custom photo"
		} else {
			value = MutedStyle.Render(item.ImageRef())
		}
	}

	line := marker + renderField(label, value)
	switch {
	case f == edit.FieldCategory && m.ctrl.Editing(f):
		line += "\n" + m.renderCategoryPicker(item, lang)
	case f == edit.FieldTags && m.ctrl.Editing(f):
		line += "\n" + m.renderTagPicker(item)
	}
	return line
}

func (m *ItemDetailModel) renderCategoryPicker(item model.MenuItem, lang model.Language) string {
	var lines []string
	for i, c := range locale.Categories {
		name := c.Name(lang)
		if c.ID == item.CategoryID {
			name += " ✓"
		}
		style := NormalRowStyle
		if i == m.pickerCursor {
			style = SelectedRowStyle
		}
		lines = append(lines, "    "+style.Render(" "+name+" "))
	}
	return strings.Join(lines, "\n")
}

func (m *ItemDetailModel) renderTagPicker(item model.MenuItem) string {
	var lines []string
	for i, t := range model.Tags {
		info := locale.Tag(t)
		box := "[ ]"
		if item.HasTag(t) {
			box = "[x]"
		}
		text := fmt.Sprintf(" %s %s %s ", box, info.Symbol, info.Label)
		style := tagStyle(info.Color)
		if i == m.pickerCursor {
			style = SelectedRowStyle
		}
		lines = append(lines, "    "+style.Render(text))
	}
	return strings.Join(lines, "\n")
}

func (m *ItemDetailModel) renderPhoto(item model.MenuItem, width int) string {
	if item.CustomImage == "" {
		return ""
	}
	art, err := m.image.render(item.CustomImage, min(width-4, 60), 20)
	if err != nil {
		return ErrorStyle.Render("Photo: " + err.Error())
	}
	return art
}

func renderDrinkInfo(item model.MenuItem, s locale.Strings) string {
	var fields []string
	if item.GlassType != "" {
		fields = append(fields, renderField(s.GlassType, item.GlassType))
	}
	if item.Intensity != "" {
		meter := util.IntensityMeter(item.Intensity.Level())
		fields = append(fields, renderField(s.Intensity, meter+" "+s.IntensityLabel(item.Intensity)))
	}
	if item.Garnish != "" {
		fields = append(fields, renderField(s.Garnish, item.Garnish))
	}
	if len(item.FlavorProfile) > 0 {
		fields = append(fields, renderField(s.Flavor, strings.Join(item.FlavorProfile, ", ")))
	}
	if len(item.Allergens) > 0 {
		fields = append(fields, renderField(s.Allergens, strings.Join(item.Allergens, ", ")))
	}
	if len(item.PreparationSteps) > 0 {
		steps := make([]string, len(item.PreparationSteps))
		for i, step := range item.PreparationSteps {
			steps[i] = fmt.Sprintf("  %d. %s", i+1, step)
		}
		fields = append(fields, LabelStyle.Render(s.Preparation+":")+"\n"+NormalRowStyle.Render(strings.Join(steps, "\n")))
	}
	return strings.Join(fields, "\n")
}

func renderTags(tags []model.Tag) string {
	var parts []string
	for _, t := range tags {
		info := locale.Tag(t)
		parts = append(parts, tagStyle(info.Color).Render(strings.TrimSpace(info.Symbol+" "+info.Label)))
	}
	return strings.Join(parts, "  ")
}

func renderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + NormalRowStyle.Render(util.OrDash(value))
}

func renderFormField(label string, input textinput.Model, focused bool) string {
	style := BorderStyle
	if focused {
		style = ActiveBorderStyle
	}

	field := lipgloss.JoinVertical(
		lipgloss.Left,
		LabelStyle.Render(label),
		input.View(),
	)

	return style.Render(field)
}
