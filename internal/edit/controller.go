// Package edit holds the staged-edit state of the item detail view.
package edit

import (
	"errors"
	"fmt"
	"strings"

	"carta/internal/locale"
	"carta/internal/menu"
	"carta/internal/model"
	"carta/internal/util"
)

var (
	ErrInvalidPrice    = errors.New("invalid price")
	ErrEmptyName       = errors.New("name must not be empty")
	ErrUnknownCategory = errors.New("unknown category")
	ErrNotImage        = errors.New("file is not an image")
)

// Field identifies one editable part of an item.
type Field string

const (
	FieldName        Field = "name"
	FieldPrice       Field = "price"
	FieldDescription Field = "description"
	FieldIngredients Field = "ingredients"
	FieldCategory    Field = "category"
	FieldNotes       Field = "notes"
	FieldTags        Field = "tags"
)

// Fields lists the editable fields in detail view order.
var Fields = []Field{FieldName, FieldPrice, FieldCategory, FieldDescription, FieldIngredients, FieldNotes, FieldTags}

// Session is an open edit of one field. Category and tag sessions only mark
// their picker as open; Staged is unused for them.
type Session struct {
	Staged string
}

// Controller tracks which fields of the selected item are being edited.
// A field without a session is in the viewing state.
type Controller struct {
	item     model.MenuItem
	lang     model.Language
	synced   bool
	sessions map[Field]*Session
}

// New returns a controller bound to item in lang.
func New(item model.MenuItem, lang model.Language) *Controller {
	c := &Controller{}
	c.Sync(item, lang)
	return c
}

// Item returns the authoritative record the controller edits against.
func (c *Controller) Item() model.MenuItem {
	return c.item
}

// Lang returns the language edits are staged in.
func (c *Controller) Lang() model.Language {
	return c.lang
}

// Sync must be called whenever the selected item or the active language may
// have changed. When either differs from the previous call every session is
// dropped; it reports whether that threw away an open edit. Syncing the same
// id and language only refreshes the authoritative record.
func (c *Controller) Sync(item model.MenuItem, lang model.Language) bool {
	changed := !c.synced || item.ID != c.item.ID || lang != c.lang
	c.item = item.Clone()
	c.lang = lang
	c.synced = true
	if !changed {
		return false
	}
	discarded := c.hasStagedEdits()
	c.sessions = make(map[Field]*Session)
	return discarded
}

func (c *Controller) hasStagedEdits() bool {
	for f := range c.sessions {
		if f != FieldCategory && f != FieldTags {
			return true
		}
	}
	return false
}

// Reset closes every session, as when the detail view is closed.
func (c *Controller) Reset() {
	c.sessions = make(map[Field]*Session)
}

// Begin opens field for editing and returns the staged starting value.
// Reopening an open field keeps its staged value.
func (c *Controller) Begin(field Field) string {
	if s, ok := c.sessions[field]; ok {
		return s.Staged
	}
	s := &Session{Staged: c.current(field)}
	c.sessions[field] = s
	return s.Staged
}

func (c *Controller) current(field Field) string {
	switch field {
	case FieldName:
		return c.item.Name
	case FieldPrice:
		return util.FormatPriceInput(c.item.Price)
	case FieldDescription:
		return menu.Resolve(c.item.Description, c.lang)
	case FieldIngredients:
		return menu.Resolve(c.item.IngredientsText, c.lang)
	case FieldNotes:
		return c.item.BartenderNotes
	case FieldCategory:
		return c.item.CategoryID
	default:
		return ""
	}
}

// Editing reports whether field has an open session.
func (c *Controller) Editing(field Field) bool {
	_, ok := c.sessions[field]
	return ok
}

// Staged returns the staged value of field, if it is being edited.
func (c *Controller) Staged(field Field) (string, bool) {
	s, ok := c.sessions[field]
	if !ok {
		return "", false
	}
	return s.Staged, true
}

// SetStaged replaces the staged value of an open field. It is a no-op for a
// field that is not being edited.
func (c *Controller) SetStaged(field Field, value string) {
	if s, ok := c.sessions[field]; ok {
		s.Staged = value
	}
}

// Cancel drops the session for field without writing anything.
func (c *Controller) Cancel(field Field) {
	delete(c.sessions, field)
}

// Commit closes the session for field and returns the record to store.
// write is false when there is nothing to store; err explains a rejected value.
// The session is closed in every case.
func (c *Controller) Commit(field Field) (item model.MenuItem, write bool, err error) {
	s, ok := c.sessions[field]
	if !ok {
		return c.item, false, nil
	}
	delete(c.sessions, field)

	out := c.item.Clone()
	switch field {
	case FieldName:
		name := strings.TrimSpace(s.Staged)
		if name == "" {
			return c.item, false, ErrEmptyName
		}
		out.Name = name
	case FieldPrice:
		price, err := util.ParsePrice(s.Staged)
		if err != nil {
			return c.item, false, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
		}
		out.Price = price
	case FieldDescription:
		out.Description = out.Description.WithLanguage(c.lang, s.Staged)
	case FieldIngredients:
		out.IngredientsText = out.IngredientsText.WithLanguage(c.lang, s.Staged)
	case FieldNotes:
		out.BartenderNotes = s.Staged
	default:
		// pickers commit on selection
		return c.item, false, nil
	}
	return out, true, nil
}

// SelectCategory moves the item to category id and closes the picker.
func (c *Controller) SelectCategory(id string) (model.MenuItem, error) {
	delete(c.sessions, FieldCategory)
	if _, ok := locale.LookupCategory(id); !ok {
		return c.item, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}
	out := c.item.Clone()
	out.CategoryID = id
	return out, nil
}

// ToggleTag returns the item with tag toggled. The tag panel stays open.
func (c *Controller) ToggleTag(tag model.Tag) model.MenuItem {
	return menu.ToggleTag(c.item, tag)
}

// SetImage returns the item with its custom image replaced by dataURI.
func (c *Controller) SetImage(dataURI string) model.MenuItem {
	out := c.item.Clone()
	out.CustomImage = dataURI
	return out
}
