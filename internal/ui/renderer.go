package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/brickbreak/internal/game"
	"github.com/diegok/brickbreak/internal/session"
)

const (
	BallChar   = '⬤' // ⬤
	BrickChar  = '█' // █
	PaddleChar = '▀' // ▀
)

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// field maps playfield coordinates ([-1,1] on both axes) to terminal cells
// between the scoreboard row and the status bar
type field struct {
	w, h int
}

func (f field) col(x float64) int {
	c := int((x - game.PlayfieldMin) / (game.PlayfieldMax - game.PlayfieldMin) * float64(f.w))
	return clamp(c, 0, f.w-1)
}

func (f field) row(y float64) int {
	r := int((game.PlayfieldMax - y) / (game.PlayfieldMax - game.PlayfieldMin) * float64(f.h))
	return clamp(r, 0, f.h-1) + 1 // +1 for top status bar
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Render draws the current view, with the game over box on top when the game ended
func (r *Renderer) Render(view session.View) {
	r.renderGame(view)
	if view.Phase == session.PhaseGameOver {
		r.renderGameOver(view)
	}
	r.screen.Show()
}

func (r *Renderer) renderGame(view session.View) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	f := field{w: screenW, h: screenH - 2}

	// Draw court background (black)
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	for _, brick := range view.Bricks {
		if !brick.Active {
			continue
		}
		left := f.col(brick.X - brick.HalfWidth)
		right := f.col(brick.X + brick.HalfWidth)
		top := f.row(brick.Y + brick.HalfHeight)
		bottom := f.row(brick.Y - brick.HalfHeight)
		// Leave a one cell gap so neighbours stay apart
		width := right - left
		if width < 1 {
			width = 1
		}
		height := bottom - top
		if height < 1 {
			height = 1
		}
		r.screen.FillRect(left, top, width, height, ForegroundStyle(brick.Color), BrickChar)
	}

	// Draw paddle
	p := view.Paddle
	paddleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	paddleRow := f.row(p.Y + p.Height)
	for x := f.col(p.X - p.Width/2); x <= f.col(p.X+p.Width/2); x++ {
		r.screen.SetCell(x, paddleRow, paddleStyle, PaddleChar)
	}

	for _, ball := range view.Balls {
		r.screen.SetCell(f.col(ball.X), f.row(ball.Y), ForegroundStyle(ball.Color), BallChar)
	}

	r.renderScoreboard(view)

	// Status bar at bottom
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}
	statusText := " ←/→ move | SPACE launch | Q quit"
	if view.WaitingBalls > 0 {
		statusText += fmt.Sprintf(" | Balls ready: %d", view.WaitingBalls)
	}
	r.screen.DrawText(0, statusY, statusText, statusStyle)
}

// renderScoreboard draws the score at top center
func (r *Renderer) renderScoreboard(view session.View) {
	screenW, _ := r.screen.Size()
	barStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, 0, barStyle, ' ')
	}

	best := 0
	if len(view.HighScores) > 0 {
		best = view.HighScores[0]
	}
	scoreStyle := barStyle.Bold(true)
	r.screen.DrawTextCentered(0, fmt.Sprintf("[ SCORE %d ]", view.Score), scoreStyle)
	r.screen.DrawText(1, 0, fmt.Sprintf("BEST %d", best), barStyle)
}

// renderGameOver draws the final score and high score table in a box
func (r *Renderer) renderGameOver(view session.View) {
	screenW, screenH := r.screen.Size()

	boxW := 32
	boxH := 11 + len(view.HighScores)
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	boxStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGray)
	r.screen.FillRect(boxX, boxY, boxW, boxH, boxStyle, ' ')
	r.screen.DrawBox(boxX, boxY, boxW, boxH, boxStyle)

	y := boxY + 2
	titleStyle := boxStyle.Bold(true).Foreground(tcell.ColorYellow)
	r.screen.DrawTextCentered(y, "=== GAME OVER ===", titleStyle)
	y += 2

	r.screen.DrawTextCentered(y, fmt.Sprintf("Final Score: %d", view.Score), boxStyle)
	y++
	if view.NewRecord {
		r.screen.DrawTextCentered(y, "NEW HIGH SCORE!", boxStyle.Bold(true).Foreground(tcell.ColorGreen))
	}
	y += 2

	r.screen.DrawTextCentered(y, "High Scores", boxStyle.Foreground(tcell.ColorTeal))
	y++
	for i, s := range view.HighScores {
		r.screen.DrawTextCentered(y, fmt.Sprintf("%d. %d", i+1, s), boxStyle)
		y++
	}
	y++

	r.screen.DrawTextCentered(y, "Press ENTER to play again", boxStyle.Foreground(tcell.ColorGreen))
}

// RenderError displays an error message
func (r *Renderer) RenderError(msg string) {
	r.screen.Clear()
	_, screenH := r.screen.Size()

	errorStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	r.screen.DrawTextCentered(screenH/2-1, "Error: "+msg, errorStyle)
	r.screen.DrawTextCentered(screenH/2+1, "Press any key to exit", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}
