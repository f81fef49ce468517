package ui

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"carta/internal/db"
	"carta/internal/edit"
	"carta/internal/logger"
	"carta/internal/menu"
	"carta/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	database, err := db.Open(db.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	items, err := db.DefaultSeed()
	require.NoError(t, err)
	require.NoError(t, db.SeedItems(context.Background(), database, items))

	m := New(database, Options{Lang: model.LangEN}, logger.Nop())
	m.now = func() time.Time { return time.UnixMilli(1700000000000) }

	m = send(t, m, m.Init()())
	return send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = send(t, m, keyMsg(k))
	}
	return m
}

// pressRun presses k and feeds the resulting command's message back.
func pressRun(t *testing.T, m Model, k string) Model {
	t.Helper()
	updated, cmd := m.Update(keyMsg(k))
	m = updated.(Model)
	require.NotNil(t, cmd)
	return send(t, m, cmd())
}

func stored(t *testing.T, m Model, id string) model.MenuItem {
	t.Helper()
	item, err := db.GetItem(context.Background(), m.db, id)
	require.NoError(t, err)
	return item
}

func visibleIDs(m Model) []string {
	ids := make([]string, len(m.list.rows))
	for i, row := range m.list.rows {
		ids[i] = row.ID
	}
	return ids
}

// openMojito opens the first seeded item and puts the cursor on field.
func openMojito(t *testing.T, m Model, field edit.Field) Model {
	t.Helper()
	m = press(t, m, "enter")
	require.Equal(t, model.ScreenItemDetail, m.screen)
	require.Equal(t, "60", m.detail.Item().ID)
	m.detail.SelectRow(field)
	return m
}

func TestInitialLoad(t *testing.T) {
	m := newTestModel(t)

	assert.Len(t, m.list.rows, 10)
	assert.Equal(t, "60", m.list.SelectedID())
	assert.Equal(t, model.ScreenMenu, m.screen)

	view := m.View()
	assert.Contains(t, view, "carta")
	assert.Contains(t, view, "Mojito")
}

func TestListNavigation(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "j", "j")
	assert.Equal(t, "64", m.list.SelectedID())
	m = press(t, m, "G")
	assert.Equal(t, "22", m.list.SelectedID())
	m = press(t, m, "g", "g")
	assert.Equal(t, "60", m.list.SelectedID())
}

func TestAddCocktailBecomesActiveCategoryAndSelection(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "a")
	assert.True(t, m.adding)
	m = press(t, m, "c")

	assert.False(t, m.adding)
	assert.Equal(t, "cocktails_classic", m.category)
	require.Equal(t, model.ScreenItemDetail, m.screen)

	item := m.detail.Item()
	assert.Equal(t, "1700000000000", item.ID)
	assert.Equal(t, "cocktails_classic", item.CategoryID)
	assert.Equal(t, 8.0, item.Price)
	assert.Equal(t, "New Cocktail", item.Name)

	assert.Equal(t, item.ID, m.items[0].ID, "new items are prepended")
	assert.Equal(t, item.ID, m.list.SelectedID())
	assert.Equal(t, []string{item.ID, "60", "63", "64"}, visibleIDs(m))
}

func TestAddPromptCancelledByOtherKey(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a", "x")

	assert.False(t, m.adding)
	assert.Len(t, m.items, 10)
	assert.Equal(t, model.ScreenMenu, m.screen)
}

func TestPriceEdit(t *testing.T) {
	m := openMojito(t, newTestModel(t), edit.FieldPrice)

	m = press(t, m, "e")
	require.Equal(t, model.ModeInsert, m.mode)
	m = press(t, m, "ctrl+u", "12.5x", "enter")

	assert.Equal(t, model.ModeNav, m.mode)
	assert.Contains(t, m.error, "invalid price")
	assert.Equal(t, 8.0, stored(t, m, "60").Price)
	assert.False(t, m.detail.ctrl.Editing(edit.FieldPrice))

	m = press(t, m, "e", "ctrl+u", "12.5", "enter")
	assert.Empty(t, m.error)
	assert.Equal(t, 12.5, stored(t, m, "60").Price)
	assert.Equal(t, 12.5, m.detail.Item().Price, "detail shows the stored record")
}

func TestHugePriceRejected(t *testing.T) {
	m := openMojito(t, newTestModel(t), edit.FieldPrice)

	m = press(t, m, "e", "ctrl+u", "1e400", "enter")
	assert.Contains(t, m.error, "invalid price")
	assert.Equal(t, 8.0, stored(t, m, "60").Price)
	assert.NotPanics(t, func() { _ = m.View() })
}

func TestEmptyNameRejected(t *testing.T) {
	m := openMojito(t, newTestModel(t), edit.FieldName)

	m = press(t, m, "e", "ctrl+u", "   ", "enter")
	assert.Contains(t, m.error, edit.ErrEmptyName.Error())
	assert.Equal(t, "Mojito", stored(t, m, "60").Name)
}

func TestDescriptionEditKeepsOtherLanguages(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "L")
	require.Equal(t, model.LangES, m.lang)

	m = openMojito(t, m, edit.FieldDescription)
	m = press(t, m, "e")
	staged, ok := m.detail.ctrl.Staged(edit.FieldDescription)
	require.True(t, ok)
	assert.Equal(t, "Un clásico cubano refrescante.", staged)

	m = press(t, m, "ctrl+u", "Clásico cubano", "enter")

	item := stored(t, m, "60")
	assert.Equal(t, "Clásico cubano", item.Description[model.LangES])
	assert.Equal(t, "A refreshing Cuban classic.", item.Description[model.LangEN])
	assert.NotContains(t, item.Description, model.LangDE)
}

func TestLanguageSwitchDiscardsStagedEdit(t *testing.T) {
	m := openMojito(t, newTestModel(t), edit.FieldDescription)

	m = press(t, m, "e", "half typed")
	require.True(t, m.detail.TextEditing())

	m = press(t, m, "ctrl+l")
	assert.Equal(t, model.LangES, m.lang)
	assert.Equal(t, model.ModeNav, m.mode)
	assert.False(t, m.detail.TextEditing())
	assert.Contains(t, m.info, "discarded")
	assert.Equal(t, "A refreshing Cuban classic.", stored(t, m, "60").Description[model.LangEN])
}

func TestCancelAndCloseDiscardStagedValues(t *testing.T) {
	m := openMojito(t, newTestModel(t), edit.FieldName)

	m = press(t, m, "e", "Foo", "esc")
	assert.Equal(t, model.ModeNav, m.mode)
	assert.False(t, m.detail.ctrl.Editing(edit.FieldName))

	m = press(t, m, "esc")
	assert.Equal(t, model.ScreenMenu, m.screen)
	assert.Nil(t, m.detail)
	assert.Equal(t, "Mojito", stored(t, m, "60").Name)
}

func TestSearchHasNoSpanishFallback(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "/", "mint", "enter")
	assert.Equal(t, model.ModeNav, m.mode)
	assert.Contains(t, visibleIDs(m), "60")

	m = press(t, m, "L")
	assert.NotContains(t, visibleIDs(m), "60")

	m = press(t, m, "/", "ctrl+u", "ron", "enter")
	assert.Contains(t, visibleIDs(m), "60")

	m = press(t, m, "esc")
	assert.Len(t, visibleIDs(m), 10)
}

func TestCategoryBar(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "]")
	assert.Equal(t, "cocktails_classic", m.category)
	assert.Equal(t, []string{"60", "63", "64"}, visibleIDs(m))

	m = press(t, m, "[", "[")
	assert.Equal(t, "children", m.category)
	assert.Equal(t, []string{"50"}, visibleIDs(m))
}

func TestFilterRecomputedOnlyOnInputChange(t *testing.T) {
	m := newTestModel(t)
	runs := m.filterer.Runs()

	m = press(t, m, "j", "k", "G")
	_ = m.View()
	assert.Equal(t, runs, m.filterer.Runs())

	m = press(t, m, "L")
	assert.Equal(t, runs+1, m.filterer.Runs())
}

func TestCategoryPicker(t *testing.T) {
	m := openMojito(t, newTestModel(t), edit.FieldCategory)

	m = press(t, m, "e")
	_, open := m.detail.pickerOpen()
	require.True(t, open)

	m = press(t, m, "j", "enter")
	assert.Equal(t, "cocktails_signature", stored(t, m, "60").CategoryID)
	_, open = m.detail.pickerOpen()
	assert.False(t, open)
}

func TestTagToggleUndoRedo(t *testing.T) {
	m := openMojito(t, newTestModel(t), edit.FieldTags)

	m = press(t, m, "e", " ")
	assert.Equal(t, []model.Tag{model.TagCitrus, model.TagSweet, model.TagSpicy}, stored(t, m, "60").Tags)
	_, open := m.detail.pickerOpen()
	assert.True(t, open, "tag panel stays open")

	m = press(t, m, "esc")
	assert.Equal(t, model.ScreenItemDetail, m.screen)

	m = pressRun(t, m, "u")
	assert.Equal(t, []model.Tag{model.TagCitrus, model.TagSweet}, stored(t, m, "60").Tags)
	assert.Equal(t, "Undid: tag spicy toggled", m.info)
	assert.False(t, m.detail.Item().HasTag(model.TagSpicy))

	m = pressRun(t, m, "ctrl+r")
	assert.True(t, stored(t, m, "60").HasTag(model.TagSpicy))
}

func TestNothingToUndo(t *testing.T) {
	m := press(t, newTestModel(t), "u")
	assert.Equal(t, "Nothing to undo", m.info)
}

func TestUpdateOfMissingItemShowsError(t *testing.T) {
	m := newTestModel(t)
	ghost := m.items[0].Clone()
	ghost.ID = "missing"

	m.saveItem("name updated", m.items[0], ghost)
	assert.Contains(t, m.error, db.ErrItemNotFound.Error())
	assert.Empty(t, m.undoStack)
}

func writeTestPNG(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	path := filepath.Join(t.TempDir(), "mojito.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestPhotoUpload(t *testing.T) {
	m := openMojito(t, newTestModel(t), edit.FieldName)

	m = press(t, m, "i")
	require.Equal(t, model.ModeInsert, m.mode)
	m = press(t, m, writeTestPNG(t))
	m = pressRun(t, m, "enter")

	assert.Empty(t, m.error)
	assert.True(t, strings.HasPrefix(stored(t, m, "60").CustomImage, "data:image/png;base64,"))
	assert.Equal(t, stored(t, m, "60").CustomImage, m.detail.Item().ImageRef())
}

func TestPhotoUploadRejectsNonImage(t *testing.T) {
	m := openMojito(t, newTestModel(t), edit.FieldName)

	path := filepath.Join(t.TempDir(), "menu.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a photo\n"), 0o600))

	m = press(t, m, "i", path)
	m = pressRun(t, m, "enter")

	assert.Contains(t, m.error, edit.ErrNotImage.Error())
	assert.Empty(t, stored(t, m, "60").CustomImage)
}

func TestPrintView(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "]")

	m = press(t, m, "p")
	require.Equal(t, model.ScreenPrint, m.screen)
	assert.Contains(t, m.print.doc, menu.PrintTitle)
	assert.Contains(t, m.print.doc, "CLASSIC COCKTAILS")
	assert.NotContains(t, m.print.doc, "SALADS")
	assert.Equal(t, 1, m.print.sections)
	assert.Contains(t, m.View(), "Download Menu")
	assert.Contains(t, m.RenderHelp(), "Close")

	m = press(t, m, "L")
	assert.Contains(t, m.View(), "Descargar Menú")
	assert.Contains(t, m.print.doc, "CÓCTELES CLÁSICOS")

	m = press(t, m, "esc")
	assert.Equal(t, model.ScreenMenu, m.screen)
}
