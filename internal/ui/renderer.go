package ui

import "github.com/gdamore/tcell/v2"

// View is one frame of the exploration screen.
type View struct {
	Title      string   // Current room announcement
	TitleColor string   // Optional "#RRGGBB" for the title
	Lines      []string // Menu or summary lines below the title
	Status     string   // Feedback for the last key press
}

// Renderer handles drawing exploration frames to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws a frame: the title on the first row, a blank row, the lines,
// and the status message on the bottom row.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	r.drawText(0, 0, v.Title, r.titleStyle(v.TitleColor))

	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range v.Lines {
		r.drawText(0, i+2, line, lineStyle)
	}

	if v.Status != "" {
		_, height := r.screen.Size()
		statusStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		r.drawText(0, height-1, v.Status, statusStyle)
	}

	r.screen.Show()
}

func (r *Renderer) titleStyle(hex string) tcell.Style {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	if hex == "" {
		return style
	}
	color, err := ParseHexColor(hex)
	if err != nil {
		return style
	}
	return style.Foreground(color)
}

// drawText writes msg starting at column x of row y, clipped to the screen width.
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	width, _ := r.screen.Size()
	for _, ch := range msg {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
