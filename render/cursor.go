package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cursor is the host cursor-mode collaborator for the terminal. While
// captured it draws a fixed center crosshair (look mode); while free the
// gesture layer draws the pointer marker instead.
type Cursor struct {
	free bool
}

// NewCursor creates a captured cursor
func NewCursor() *Cursor {
	return &Cursor{}
}

// SetFree toggles between captured-and-hidden and free-and-visible
func (c *Cursor) SetFree(free bool) {
	c.free = free
}

// Free reports the current cursor mode
func (c *Cursor) Free() bool {
	return c.free
}

func (c *Cursor) Render(screen tcell.Screen) {
	if c.free {
		return
	}

	width, height := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	screen.SetContent(width/2, height/2, '+', nil, style)
}
