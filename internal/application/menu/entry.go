package menu

import "github.com/younwookim/screenstack/internal/application/input"

// Entry is a single selectable line in a menu screen.
type Entry struct {
	// Text is the label drawn for this entry.
	Text string

	// Selected is invoked when the entry is chosen. The player argument is
	// the player that confirmed the selection, which for any-player menus is
	// how "press start" lobbies learn who player one is.
	Selected func(player input.PlayerIndex)
}

// NewEntry creates a menu entry.
func NewEntry(text string, selected func(player input.PlayerIndex)) *Entry {
	return &Entry{Text: text, Selected: selected}
}

func (e *Entry) fire(player input.PlayerIndex) {
	if e.Selected != nil {
		e.Selected(player)
	}
}
