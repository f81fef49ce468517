package ui

import (
	"fmt"

	"carta/internal/db"
	"carta/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

type undoAction struct {
	label  string
	itemID string
	undo   func() error
	redo   func() error
}

type undoAppliedMsg struct {
	err       error
	action    undoAction
	direction string // undo, redo
}

func (m *Model) pushUndoAction(action undoAction) {
	m.undoStack = append(m.undoStack, action)
	m.redoStack = nil
}

func (m *Model) undoCmd() tea.Cmd {
	if len(m.undoStack) == 0 {
		return nil
	}
	action := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	return func() tea.Msg {
		err := action.undo()
		return undoAppliedMsg{err: err, action: action, direction: "undo"}
	}
}

func (m *Model) redoCmd() tea.Cmd {
	if len(m.redoStack) == 0 {
		return nil
	}
	action := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	return func() tea.Msg {
		err := action.redo()
		return undoAppliedMsg{err: err, action: action, direction: "redo"}
	}
}

// buildUpdateAction records a committed update. Adds are not undoable since
// the catalog has no delete.
func (m *Model) buildUpdateAction(label string, before, after model.MenuItem) undoAction {
	database := m.db
	ctx := m.ctx
	before = before.Clone()
	after = after.Clone()
	return undoAction{
		label:  label,
		itemID: after.ID,
		undo: func() error {
			return db.UpdateItem(ctx, database, before)
		},
		redo: func() error {
			return db.UpdateItem(ctx, database, after)
		},
	}
}

func (m *Model) applyUndoResult(msg undoAppliedMsg) {
	if msg.err != nil {
		m.error = fmt.Sprintf("%s failed: %v", msg.direction, msg.err)
		m.log.Warnw("undo stack action failed", "direction", msg.direction, "label", msg.action.label, "error", msg.err)
		return
	}

	if msg.direction == "undo" {
		m.redoStack = append(m.redoStack, msg.action)
		m.info = "Undid: " + msg.action.label
	} else {
		m.undoStack = append(m.undoStack, msg.action)
		m.info = "Redid: " + msg.action.label
	}
	m.error = ""
	m.log.Infow("undo stack action applied", "direction", msg.direction, "label", msg.action.label, "id", msg.action.itemID)
	m.reload()
}
