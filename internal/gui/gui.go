// Package gui is the windowed frontend. It drives the same session as the
// terminal UI and adds tweened effects for broken bricks and the score.
package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/diegok/brickbreak/internal/game"
	"github.com/diegok/brickbreak/internal/session"
)

const (
	screenSize = 480
	hudHeight  = 24

	burstDuration = 0.35 // Seconds a broken brick flashes
	burstRadius   = 0.2  // Final burst radius in world units
	scoreDuration = 0.5  // Seconds the score counter takes to catch up
)

var (
	background  = color.RGBA{R: 12, G: 12, B: 20, A: 255}
	paddleColor = colorful.Color{R: 0.9, G: 0.9, B: 0.9}
	burstColor  = colorful.Color{R: 1, G: 0.6, B: 0.1}
)

// field maps the [-1,1] playfield onto the square below the HUD
type field struct {
	size float32
	top  float32
}

func (f field) x(v float64) float32 {
	return float32((v + 1) / 2 * float64(f.size))
}

func (f field) y(v float64) float32 {
	return f.top + float32((1-v)/2*float64(f.size))
}

func (f field) length(v float64) float32 {
	return float32(v / 2 * float64(f.size))
}

// burst is an expanding, fading ring where a brick broke
type burst struct {
	x, y   float64
	radius float32
	alpha  float32
	grow   *gween.Tween
	fade   *gween.Tween
	done   bool
}

func newBurst(x, y float64) *burst {
	return &burst{
		x:     x,
		y:     y,
		alpha: 1,
		grow:  gween.New(0, burstRadius, burstDuration, ease.OutQuad),
		fade:  gween.New(1, 0, burstDuration, ease.InQuad),
	}
}

func (b *burst) update(dt float32) {
	radius, grown := b.grow.Update(dt)
	alpha, faded := b.fade.Update(dt)
	b.radius = radius
	b.alpha = alpha
	b.done = grown && faded
}

// Game implements ebiten.Game on top of a session
type Game struct {
	session *session.Session
	field   field
	dt      float32

	bursts     []*burst
	score      int
	shownScore float32
	scoreTween *gween.Tween
}

func newGame(s *session.Session, fps int) *Game {
	return &Game{
		session: s,
		field:   field{size: screenSize, top: hudHeight},
		dt:      1 / float32(fps),
	}
}

// Run opens the window and blocks until it is closed
func Run(s *session.Session, fps int) error {
	ebiten.SetWindowSize(screenSize, screenSize+hudHeight)
	ebiten.SetWindowTitle("Brickbreak")
	ebiten.SetTPS(fps)

	err := ebiten.RunGame(newGame(s, fps))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run window")
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch g.session.Phase() {
	case session.PhasePlaying:
		if dir := pressedDirection(); dir != game.DirNone {
			g.session.Steer(dir, 1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.session.Launch()
		}
		events := g.session.Tick()
		g.apply(events, g.session.View().Score)
	case session.PhaseGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.session.Restart() {
			g.reset()
		}
	}

	g.animate(g.dt)
	return nil
}

func pressedDirection() game.Direction {
	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	switch {
	case left && !right:
		return game.DirLeft
	case right && !left:
		return game.DirRight
	}
	return game.DirNone
}

// apply starts effects for one frame's events
func (g *Game) apply(events []game.Event, score int) {
	for _, ev := range events {
		if ev.Type == game.EventBrickBroken {
			g.bursts = append(g.bursts, newBurst(ev.X, ev.Y))
		}
	}

	if score != g.score {
		g.score = score
		g.scoreTween = gween.New(g.shownScore, float32(score), scoreDuration, ease.OutQuad)
	}
}

func (g *Game) animate(dt float32) {
	live := g.bursts[:0]
	for _, b := range g.bursts {
		b.update(dt)
		if !b.done {
			live = append(live, b)
		}
	}
	g.bursts = live

	if g.scoreTween != nil {
		val, finished := g.scoreTween.Update(dt)
		g.shownScore = val
		if finished {
			g.shownScore = float32(g.score)
			g.scoreTween = nil
		}
	}
}

func (g *Game) reset() {
	g.bursts = nil
	g.score = 0
	g.shownScore = 0
	g.scoreTween = nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	view := g.session.View()
	screen.Fill(background)

	for _, brk := range view.Bricks {
		if !brk.Active {
			continue
		}
		vector.DrawFilledRect(screen,
			g.field.x(brk.X-brk.HalfWidth), g.field.y(brk.Y+brk.HalfHeight),
			g.field.length(2*brk.HalfWidth), g.field.length(2*brk.HalfHeight),
			brk.Color, false)
	}

	for _, b := range g.bursts {
		vector.StrokeCircle(screen, g.field.x(b.x), g.field.y(b.y), g.field.length(float64(b.radius)), 2, fade(burstColor, b.alpha), false)
	}

	p := view.Paddle
	vector.DrawFilledRect(screen,
		g.field.x(p.X-p.Width/2), g.field.y(p.Y+p.Height),
		g.field.length(p.Width), g.field.length(p.Height),
		paddleColor, false)

	for _, b := range view.Balls {
		vector.DrawFilledCircle(screen, g.field.x(b.X), g.field.y(b.Y), g.field.length(b.Radius), b.Color, false)
	}

	g.drawHUD(screen, view)
	if view.Phase == session.PhaseGameOver {
		g.drawGameOver(screen, view)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, view session.View) {
	best := 0
	if len(view.HighScores) > 0 {
		best = view.HighScores[0]
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", int(g.shownScore+0.5)), 8, 4)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BEST %d", best), screenSize/2-24, 4)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("READY %d", view.WaitingBalls), screenSize-72, 4)
}

func (g *Game) drawGameOver(screen *ebiten.Image, view session.View) {
	vector.DrawFilledRect(screen, 0, 0, screenSize, screenSize+hudHeight, color.RGBA{A: 160}, false)

	lines := gameOverLines(view)
	y := screenSize/2 - len(lines)*8
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, screenSize/2-len(line)*3, y)
		y += 16
	}
}

func gameOverLines(view session.View) []string {
	lines := []string{"GAME OVER", fmt.Sprintf("Final Score: %d", view.Score)}
	if view.NewRecord {
		lines = append(lines, "NEW HIGH SCORE!")
	}
	lines = append(lines, "", "High Scores")
	for i, s := range view.HighScores {
		lines = append(lines, fmt.Sprintf("%d. %d", i+1, s))
	}
	return append(lines, "", "Press ENTER to play again")
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenSize, screenSize + hudHeight
}

func fade(c colorful.Color, alpha float32) color.NRGBA {
	r, gr, b := c.Clamped().RGB255()
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: r, G: gr, B: b, A: uint8(alpha * 255)}
}
