package ui

import (
	"context"
	"database/sql"
	"math/rand"
	"strings"
	"time"

	"carta/internal/db"
	"carta/internal/edit"
	"carta/internal/locale"
	"carta/internal/logger"
	"carta/internal/menu"
	"carta/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options are the startup choices for the menu screen.
type Options struct {
	Lang     model.Language
	Category string
	Query    string
}

// Model is the root Bubble Tea model.
type Model struct {
	db  *sql.DB
	ctx context.Context
	log *logger.Logger
	now func() time.Time
	rng *rand.Rand

	screen model.Screen
	mode   model.Mode
	gState GState
	adding bool

	width  int
	height int

	error       string
	info        string
	showingHelp bool

	lang     model.Language
	category string
	items    []model.MenuItem
	revision int
	filterer *menu.Filterer
	search   textinput.Model

	list   *MenuListModel
	detail *ItemDetailModel
	print  *PrintModel

	keys      KeyMap
	formKeys  FormKeyMap
	addKeys   AddKeyMap
	undoStack []undoAction
	redoStack []undoAction
}

// New creates a new root model.
func New(database *sql.DB, opts Options, log *logger.Logger) Model {
	if !opts.Lang.Valid() {
		opts.Lang = model.LangEN
	}
	if opts.Category == "" {
		opts.Category = locale.AllCategoryID
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = locale.For(opts.Lang).SearchPlaceholder
	search.CharLimit = 100
	search.SetValue(opts.Query)

	return Model{
		db:       database,
		ctx:      context.Background(),
		log:      log,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		screen:   model.ScreenMenu,
		mode:     model.ModeNav,
		gState:   GStateIdle,
		lang:     opts.Lang,
		category: opts.Category,
		filterer: &menu.Filterer{},
		search:   search,
		list:     NewMenuListModel(),
		keys:     DefaultKeyMap(),
		formKeys: DefaultFormKeyMap(),
		addKeys:  DefaultAddKeyMap(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return loadItemsCmd(m.ctx, m.db)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Handle ctrl+c globally
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.adding {
			return m.handleAddPrompt(msg)
		}

		if key.Matches(msg, m.keys.Help) && m.mode == model.ModeNav {
			m.showingHelp = !m.showingHelp
			return m, nil
		}

		if m.showingHelp {
			if msg.String() == "esc" {
				m.showingHelp = false
			}
			return m, nil
		}

		if m.mode == model.ModeNav {
			return m.handleNavMode(msg)
		}
		return m.handleInsertMode(msg)

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		m.log.Warnw("command failed", "error", msg.Err)
		return m, nil

	case model.ItemsLoadedMsg:
		m.setItems(msg.Items)
		m.error = ""
		return m, nil

	case model.ImageLoadedMsg:
		m.handleImageLoaded(msg)
		return m, nil

	case undoAppliedMsg:
		m.applyUndoResult(msg)
		return m, nil

	default:
		// Cursor blink and friends go to the focused input
		if m.mode == model.ModeInsert {
			return m.handleInsertMode(msg)
		}
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	s := locale.For(m.lang)
	breadcrumbParts := []string{s.Title}
	top := []string{}

	switch m.screen {
	case model.ScreenMenu:
		top = append(top, renderCategoryBar(m.category, m.lang, m.width), m.renderSearch())
	case model.ScreenItemDetail:
		if m.detail != nil {
			breadcrumbParts = append(breadcrumbParts, m.detail.Item().Name)
		}
	case model.ScreenPrint:
		breadcrumbParts = append(breadcrumbParts, s.DownloadPDF)
	}

	if m.error != "" {
		top = append(top, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		top = append(top, SuccessStyle.Width(m.width).Render(m.info))
	}

	header := m.renderHeader(breadcrumbParts)
	footer := m.RenderHelp()
	top = append([]string{header}, top...)
	topBlock := lipgloss.JoinVertical(lipgloss.Left, top...)

	contentHeight := max(3, m.height-lipgloss.Height(topBlock)-lipgloss.Height(footer))

	var content string
	switch m.screen {
	case model.ScreenMenu:
		content = m.list.View(m.width, contentHeight, m.lang)
	case model.ScreenItemDetail:
		if m.detail != nil {
			content = m.detail.View(m.width, contentHeight)
		}
	case model.ScreenPrint:
		if m.print != nil {
			content = m.print.View(m.width, contentHeight)
		}
	}

	// Ensure content fills the available height to anchor footer at bottom
	content = lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, topBlock, content, footer)
}

func (m Model) renderSearch() string {
	if m.mode == model.ModeInsert || m.search.Value() != "" {
		return "  " + m.search.View()
	}
	return "  " + MutedStyle.Render("/ "+locale.For(m.lang).SearchPlaceholder)
}

func renderCategoryBar(active string, lang model.Language, width int) string {
	ids := []string{locale.AllCategoryID}
	for _, c := range locale.Categories {
		ids = append(ids, c.ID)
	}

	tabs := make([]string, len(ids))
	activeIdx := 0
	for i, id := range ids {
		tabStyle := lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorMuted)
		if id == active {
			activeIdx = i
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}
		tabs[i] = tabStyle.Render(locale.CategoryName(id, lang))
	}

	// Scroll the bar so the active tab stays on screen
	start := 0
	for start < activeIdx && lipgloss.Width(lipgloss.JoinHorizontal(lipgloss.Left, tabs[start:activeIdx+1]...)) > width-8 {
		start++
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Left, tabs[start:]...)
	if start > 0 {
		bar = MutedStyle.Render("‹ ") + bar
	}

	return lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(bar)
}

func (m Model) renderHeader(breadcrumbParts []string) string {
	title := HeaderStyle.Render("carta")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb

	right := BreadcrumbActiveStyle.Render(strings.ToUpper(string(m.lang))) +
		BreadcrumbStyle.Render("  "+m.now().Format("Mon 02 Jan")) + "  "

	padding := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	return TitleStyle.Width(m.width).Render(left + strings.Repeat(" ", padding) + right)
}

// visible is the filtered view of the catalog.
func (m *Model) visible() []model.MenuItem {
	return m.filterer.Apply(m.items, m.revision, m.category, m.search.Value(), m.lang)
}

func (m *Model) refresh() {
	m.list.SetRows(m.visible(), len(m.items))
}

func (m *Model) itemByID(id string) (model.MenuItem, bool) {
	for _, item := range m.items {
		if item.ID == id {
			return item, true
		}
	}
	return model.MenuItem{}, false
}

func (m *Model) setItems(items []model.MenuItem) {
	m.items = items
	m.revision++
	m.refresh()
	m.syncDetail()
}

// reload re-reads the catalog after a write.
func (m *Model) reload() {
	items, err := db.ListItems(m.ctx, m.db)
	if err != nil {
		m.error = err.Error()
		m.log.Errorw("failed to reload items", "error", err)
		return
	}
	m.setItems(items)
}

// syncDetail hands the current record and language to the open detail view.
func (m *Model) syncDetail() {
	if m.detail == nil {
		return
	}
	item, ok := m.itemByID(m.detail.Item().ID)
	if !ok {
		return
	}
	if m.detail.Sync(item, m.lang) {
		m.info = "Unsaved edit discarded"
		m.log.Infow("staged edit discarded", "id", item.ID, "lang", m.lang)
	}
	if !m.detail.TextEditing() && m.screen == model.ScreenItemDetail {
		m.mode = model.ModeNav
	}
}

func (m *Model) setLanguage(lang model.Language) {
	m.lang = lang
	m.search.Placeholder = locale.For(lang).SearchPlaceholder
	m.info = "Language: " + strings.ToUpper(string(lang))
	m.refresh()
	m.syncDetail()
	if m.print != nil {
		m.print = NewPrintModel(m.visible(), m.lang, m.width, m.height)
	}
}

func (m *Model) setCategory(id string) {
	m.category = id
	m.refresh()
}

// saveItem writes a committed edit and records it for undo.
func (m *Model) saveItem(label string, before, after model.MenuItem) {
	if err := db.UpdateItem(m.ctx, m.db, after); err != nil {
		m.error = err.Error()
		m.log.Warnw("item update failed", "id", after.ID, "change", label, "error", err)
		return
	}
	m.pushUndoAction(m.buildUpdateAction(label, before, after))
	m.error = ""
	m.info = label + " (u to undo)"
	m.log.Infow("item updated", "id", after.ID, "change", label)
	m.reload()
}

func (m *Model) addItem(kind model.ItemKind) {
	item := menu.NewItem(kind, m.now(), m.rng)
	if err := db.AddItem(m.ctx, m.db, item); err != nil {
		m.error = err.Error()
		m.log.Warnw("item add failed", "kind", kind, "error", err)
		return
	}
	m.log.Infow("item added", "id", item.ID, "kind", kind, "category", item.CategoryID)

	m.category = item.CategoryID
	m.reload()
	m.list.SelectID(item.ID)
	m.openDetail(item)
	m.error = ""
	m.info = "Added " + item.Name
}

func (m *Model) openDetail(item model.MenuItem) {
	m.detail = NewItemDetailModel(item, m.lang)
	m.screen = model.ScreenItemDetail
	m.mode = model.ModeNav
}

func (m *Model) closeDetail() {
	if m.detail != nil {
		m.detail.Close()
	}
	m.detail = nil
	m.screen = model.ScreenMenu
	m.mode = model.ModeNav
}

func (m *Model) currentCursor() cursorController {
	switch m.screen {
	case model.ScreenMenu:
		return m.list
	case model.ScreenItemDetail:
		if m.detail != nil {
			return m.detail
		}
	case model.ScreenPrint:
		if m.print != nil {
			return m.print
		}
	}
	return nil
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Undo):
		if len(m.undoStack) == 0 {
			m.info = "Nothing to undo"
			return m, nil
		}
		return m, m.undoCmd()
	case key.Matches(msg, m.keys.Redo):
		if len(m.redoStack) == 0 {
			m.info = "Nothing to redo"
			return m, nil
		}
		return m, m.redoCmd()
	case key.Matches(msg, m.keys.Language):
		m.setLanguage(m.lang.Next())
		return m, nil
	}

	// Handle "gg" state machine
	if key.Matches(msg, m.keys.Top) {
		if m.gState == GStateIdle {
			m.gState = GStateFirstG
			return m, nil
		}
		m.gState = GStateIdle
		if c := m.currentCursor(); c != nil {
			c.JumpToTop()
		}
		return m, nil
	}
	m.gState = GStateIdle

	if c := m.currentCursor(); c != nil {
		switch {
		case key.Matches(msg, m.keys.Down):
			c.MoveDown()
			return m, nil
		case key.Matches(msg, m.keys.Up):
			c.MoveUp()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			c.JumpToBottom()
			return m, nil
		case key.Matches(msg, m.keys.HalfPageDown):
			c.HalfPageDown()
			return m, nil
		case key.Matches(msg, m.keys.HalfPageUp):
			c.HalfPageUp()
			return m, nil
		}
	}

	switch m.screen {
	case model.ScreenMenu:
		return m.handleMenuNav(msg)
	case model.ScreenItemDetail:
		return m.handleDetailNav(msg)
	case model.ScreenPrint:
		return m.handlePrintNav(msg)
	}
	return m, nil
}

func (m Model) handleMenuNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.mode = model.ModeInsert
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.NextCategory):
		m.setCategory(locale.CategoryAt(locale.CategoryIndex(m.category) + 1))
		return m, nil
	case key.Matches(msg, m.keys.PrevCategory):
		m.setCategory(locale.CategoryAt(locale.CategoryIndex(m.category) - 1))
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.info = "Add: m meal · c cocktail · d drink"
		return m, nil
	case key.Matches(msg, m.keys.Select):
		if item, ok := m.itemByID(m.list.SelectedID()); ok {
			m.info = ""
			m.openDetail(item)
		}
		return m, nil
	case key.Matches(msg, m.keys.Print):
		m.print = NewPrintModel(m.visible(), m.lang, m.width, m.height)
		m.screen = model.ScreenPrint
		return m, nil
	case msg.String() == "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refresh()
		}
		m.info = ""
		m.error = ""
		return m, nil
	}
	return m, nil
}

func (m Model) handleAddPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.adding = false
	m.info = ""
	switch {
	case key.Matches(msg, m.addKeys.Meal):
		m.addItem(model.KindMeal)
	case key.Matches(msg, m.addKeys.Cocktail):
		m.addItem(model.KindCocktail)
	case key.Matches(msg, m.addKeys.Drink):
		m.addItem(model.KindDrink)
	}
	return m, nil
}

func (m Model) handleDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail == nil {
		m.screen = model.ScreenMenu
		return m, nil
	}

	if _, ok := m.detail.pickerOpen(); ok {
		switch {
		case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Edit):
			before := m.detail.Item()
			after, label, err := m.detail.Pick()
			if err != nil {
				m.error = err.Error()
				m.log.Warnw("edit rejected", "id", before.ID, "error", err)
				return m, nil
			}
			m.saveItem(label, before, after)
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.detail.Cancel()
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeDetail()
		return m, nil
	case key.Matches(msg, m.keys.Image):
		m.mode = model.ModeInsert
		return m, m.detail.BeginImage()
	case key.Matches(msg, m.keys.Edit):
		cmd := m.detail.Begin()
		if m.detail.TextEditing() {
			m.mode = model.ModeInsert
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) handlePrintNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Print) {
		m.print = nil
		m.screen = model.ScreenMenu
	}
	return m, nil
}

// handleInsertMode handles insert/edit mode input.
func (m Model) handleInsertMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case model.ScreenMenu:
		return m.handleSearchInput(msg)
	case model.ScreenItemDetail:
		if m.detail != nil {
			return m.handleDetailInput(msg)
		}
	}
	m.mode = model.ModeNav
	return m, nil
}

func (m Model) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.search.Blur()
			m.mode = model.ModeNav
			return m, nil
		case "esc":
			m.search.SetValue("")
			m.search.Blur()
			m.mode = model.ModeNav
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m Model) handleDetailInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.detail.UpdateInput(msg)
	}

	switch {
	case key.Matches(keyMsg, m.formKeys.Cancel):
		m.detail.Cancel()
		m.mode = model.ModeNav
		return m, nil

	case key.Matches(keyMsg, m.formKeys.Language):
		m.setLanguage(m.lang.Next())
		return m, nil

	case key.Matches(keyMsg, m.formKeys.Save):
		m.mode = model.ModeNav
		if m.detail.choosingImage {
			path := m.detail.ImagePath()
			if path == "" {
				return m, nil
			}
			m.info = "Loading photo..."
			return m, loadImageCmd(m.detail.Item().ID, path)
		}

		before := m.detail.Item()
		after, field, write, err := m.detail.Commit()
		if err != nil {
			m.error = err.Error()
			m.log.Warnw("edit rejected", "id", before.ID, "field", field, "error", err)
			return m, nil
		}
		if write {
			m.saveItem(string(field)+" updated", before, after)
		}
		return m, nil
	}

	return m, m.detail.UpdateInput(keyMsg)
}

func (m *Model) handleImageLoaded(msg model.ImageLoadedMsg) {
	if msg.Err != nil {
		m.error = msg.Err.Error()
		m.info = ""
		m.log.Warnw("photo load failed", "id", msg.ItemID, "error", msg.Err)
		return
	}

	var before, after model.MenuItem
	if m.detail != nil && m.detail.Item().ID == msg.ItemID {
		before = m.detail.Item()
		after = m.detail.ctrl.SetImage(msg.DataURI)
	} else {
		item, err := db.GetItem(m.ctx, m.db, msg.ItemID)
		if err != nil {
			m.error = err.Error()
			m.log.Warnw("photo target missing", "id", msg.ItemID, "error", err)
			return
		}
		before = item
		after = item.Clone()
		after.CustomImage = msg.DataURI
	}
	m.log.Infow("photo loaded", "id", msg.ItemID, "bytes", len(msg.DataURI))
	m.saveItem("photo updated", before, after)
}

// Commands

func loadItemsCmd(ctx context.Context, database *sql.DB) tea.Cmd {
	return func() tea.Msg {
		items, err := db.ListItems(ctx, database)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.ItemsLoadedMsg{Items: items}
	}
}

func loadImageCmd(itemID, path string) tea.Cmd {
	return func() tea.Msg {
		uri, err := edit.LoadImage(path)
		return model.ImageLoadedMsg{ItemID: itemID, DataURI: uri, Err: err}
	}
}
