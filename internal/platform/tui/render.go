package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/session"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("32")), // Closest to #0095DD
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// tokenColors resolves the game's color tokens for the terminal.
var tokenColors = map[breakout.ColorToken]core.Color{
	breakout.ColorBrick:  core.ColorBlue,
	breakout.ColorBall:   core.ColorBrightWhite,
	breakout.ColorPaddle: core.ColorBlue,
	breakout.ColorScore:  core.ColorBlue,
}

// Glyphs used by the rasterizer.
const (
	brickRune  = '█'
	paddleRune = '▀'
	ballRune   = '●'
)

// Rasterize draws a frame onto the screen, scaling world units to cells.
func Rasterize(f session.Frame, s *core.Screen) {
	s.Clear()
	if f.Width <= 0 || f.Height <= 0 || s.Width() == 0 || s.Height() == 0 {
		return
	}

	sx := float64(s.Width()) / f.Width
	sy := float64(s.Height()) / f.Height

	for _, op := range f.Ops {
		c := tokenColors[op.Color]
		switch op.Kind {
		case session.OpBrick:
			s.FillRect(scaleRect(op.Rect, sx, sy), brickRune, c)
		case session.OpPaddle:
			r := scaleRect(op.Rect, sx, sy)
			// Keep the paddle on the bottom row
			r.Y = s.Height() - 1
			r.H = 1
			s.FillRect(r, paddleRune, c)
		case session.OpBall:
			x := core.Clamp(int(op.Center.X*sx), 0, s.Width()-1)
			y := core.Clamp(int(op.Center.Y*sy), 0, s.Height()-1)
			s.SetCell(x, y, ballRune, c)
		}
	}

	s.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", f.Score), tokenColors[breakout.ColorScore])
}

// scaleRect converts a world rectangle to cells. Non-empty rectangles cover
// at least one cell.
func scaleRect(r core.RectF, sx, sy float64) core.Rect {
	x := int(math.Round(r.X * sx))
	y := int(math.Round(r.Y * sy))
	right := int(math.Round(r.Right() * sx))
	bottom := int(math.Round(r.Bottom() * sy))
	return core.NewRect(x, y, core.Max(1, right-x), core.Max(1, bottom-y))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
