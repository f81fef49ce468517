package ui

import "github.com/charmbracelet/bubbles/key"

// GState represents the state for "gg" navigation.
type GState int

const (
	GStateIdle GState = iota
	GStateFirstG
)

// KeyMap defines all keybindings for nav mode.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Select       key.Binding
	Back         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	HalfPageDown key.Binding
	HalfPageUp   key.Binding
	Search       key.Binding
	Quit         key.Binding
	Help         key.Binding
	Add          key.Binding
	Edit         key.Binding
	Toggle       key.Binding
	Image        key.Binding
	Language     key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Print        key.Binding
	Undo         key.Binding
	Redo         key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "l"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("h", "b", "esc"),
			key.WithHelp("h/esc", "back"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "½ page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "½ page up"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add item"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e/enter", "edit field"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Image: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "photo"),
		),
		Language: key.NewBinding(
			key.WithKeys("L", "ctrl+l"),
			key.WithHelp("L", "language"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("]", "right", "tab"),
			key.WithHelp("]/→", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("[", "left", "shift+tab"),
			key.WithHelp("[/←", "prev category"),
		),
		Print: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "print view"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "redo"),
		),
	}
}

// FormKeyMap defines keybindings for insert/edit mode.
type FormKeyMap struct {
	Save     key.Binding
	Cancel   key.Binding
	Language key.Binding
}

// DefaultFormKeyMap returns the default form keybindings.
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Language: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "language (drops edit)"),
		),
	}
}

// AddKeyMap picks the kind of item after "a".
type AddKeyMap struct {
	Meal     key.Binding
	Cocktail key.Binding
	Drink    key.Binding
}

// DefaultAddKeyMap returns the default add-prompt keybindings.
func DefaultAddKeyMap() AddKeyMap {
	return AddKeyMap{
		Meal: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "meal"),
		),
		Cocktail: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cocktail"),
		),
		Drink: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "drink"),
		),
	}
}
