package render

import (
	"github.com/gdamore/tcell/v2"
)

// Renderer draws one layer of the frame
// Renderers run in registration order after all systems have updated
type Renderer interface {
	Render(screen tcell.Screen)
}

// putStr writes a string without wrapping
func putStr(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
