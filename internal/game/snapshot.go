package game

import colorful "github.com/lucasb-eyer/go-colorful"

// BrickView is a read-only copy of a brick for drawing
type BrickView struct {
	X, Y       float64
	HalfWidth  float64
	HalfHeight float64
	Active     bool
	HitCount   int
	Kind       BrickKind
	Color      colorful.Color
}

// BallView is a read-only copy of a ball for drawing
type BallView struct {
	X, Y    float64
	Radius  float64
	Waiting bool
	Color   colorful.Color
}

// PaddleView is the paddle rectangle
type PaddleView struct {
	X, Y          float64 // Center, bottom edge
	Width, Height float64
}

// Snapshot is everything a renderer needs for one frame
type Snapshot struct {
	Tick         int
	Bricks       []BrickView
	Balls        []BallView
	Paddle       PaddleView
	Score        int
	WaitingBalls int
	GameOver     bool
}

// Snapshot copies the current state for drawing
func (w *World) Snapshot(p *Paddle) Snapshot {
	bricks := make([]BrickView, len(w.Bricks))
	for i, brk := range w.Bricks {
		bricks[i] = BrickView{
			X:          brk.X,
			Y:          brk.Y,
			HalfWidth:  brk.HalfWidth(),
			HalfHeight: brk.HalfHeight(),
			Active:     brk.Active,
			HitCount:   brk.HitCount,
			Kind:       brk.Kind,
			Color:      brk.Color,
		}
	}

	balls := make([]BallView, len(w.Balls))
	for i, b := range w.Balls {
		balls[i] = BallView{
			X:       b.X,
			Y:       b.Y,
			Radius:  b.Radius,
			Waiting: b.Waiting(),
			Color:   b.Color,
		}
	}

	return Snapshot{
		Tick:   w.Tick,
		Bricks: bricks,
		Balls:  balls,
		Paddle: PaddleView{
			X:      p.X,
			Y:      p.Y,
			Width:  p.Width,
			Height: p.Height,
		},
		Score:        w.Score,
		WaitingBalls: w.WaitingBalls(),
		GameOver:     w.gameOver,
	}
}
