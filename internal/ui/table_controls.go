package ui

// cursorController is implemented by every screen that moves a cursor or
// scrolls, so vim-style motions are handled once in the root model.
type cursorController interface {
	MoveDown()
	MoveUp()
	JumpToTop()
	JumpToBottom()
	HalfPageDown()
	HalfPageUp()
}
