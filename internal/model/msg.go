package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// ItemsLoadedMsg is sent when the catalog has been read from the store.
type ItemsLoadedMsg struct {
	Items []MenuItem
}

// ImageLoadedMsg carries an uploaded image encoded as a data URI.
type ImageLoadedMsg struct {
	ItemID  string
	DataURI string
	Err     error
}

// Screen represents different app screens.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenItemDetail
	ScreenPrint
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	ModeInsert
)
