package game

import "math/rand/v2"

const (
	SubSteps      = 4 // Integration steps per frame
	BreaksPerBall = 3 // Destroyed bricks needed for an extra ball
)

// World owns the board, the live balls and the score. It advances once per
// frame and is not safe for concurrent use.
type World struct {
	Bricks []*Brick
	Balls  []*Ball
	Score  int
	Tick   int

	layout   Layout
	breaks   int // Bricks destroyed since the milestone counter was reset
	gameOver bool
	rng      *rand.Rand
	events   []Event
}

// NewWorld creates a world with a fresh board and one waiting ball
func NewWorld(layout Layout, rng *rand.Rand) *World {
	w := &World{
		layout: layout,
		rng:    rng,
	}
	w.NewGame(0)
	return w
}

// NewGame starts over: fresh board, one waiting ball, score and milestone
// counter back to zero.
func (w *World) NewGame(paddleX float64) {
	w.rebuild(paddleX)
	w.Score = 0
	w.gameOver = false
	w.ResetMilestones()
}

// ResetRound rebuilds the board after it was cleared. Score carries over.
func (w *World) ResetRound(paddleX float64) {
	w.rebuild(paddleX)
}

// ResetMilestones zeroes the bricks-destroyed counter used for extra balls
func (w *World) ResetMilestones() {
	w.breaks = 0
}

func (w *World) rebuild(paddleX float64) {
	w.Bricks = w.layout.Build()
	w.Balls = []*Ball{NewWaitingBall(paddleX)}
}

// Launch puts the first waiting ball in play. Returns false when no ball waits.
func (w *World) Launch() bool {
	if w.gameOver {
		return false
	}
	for _, b := range w.Balls {
		if b.Waiting() {
			b.Launch(RandomLaunchAngle(w.rng))
			return true
		}
	}
	return false
}

// GameOver reports whether every ball was lost
func (w *World) GameOver() bool {
	return w.gameOver
}

// ActiveBricks counts bricks still standing
func (w *World) ActiveBricks() int {
	n := 0
	for _, brk := range w.Bricks {
		if brk.Active {
			n++
		}
	}
	return n
}

// WaitingBalls counts balls parked on the paddle
func (w *World) WaitingBalls() int {
	n := 0
	for _, b := range w.Balls {
		if b.Waiting() {
			n++
		}
	}
	return n
}

// Step advances the world one frame with the paddle as ground truth. The
// returned events are valid until the next call.
func (w *World) Step(p *Paddle) []Event {
	w.events = w.events[:0]
	if w.gameOver {
		return w.events
	}
	w.Tick++

	// Balls spawned during this frame are picked up next frame
	n := len(w.Balls)
	for i := 0; i < n; i++ {
		b := w.Balls[i]
		switch b.State {
		case BallWaiting:
			b.X = p.X
			continue
		case BallExited:
			continue
		}

		w.collideBricks(b, p)
		w.advance(b, p)

		if b.State == BallExited {
			w.emit(Event{Type: EventBallLost, X: b.X, Y: b.Y})
			continue
		}

		for j, other := range w.Balls {
			if j != i && CollideBalls(b, other) {
				w.emit(Event{Type: EventBallCollision, X: (b.X + other.X) / 2, Y: (b.Y + other.Y) / 2})
			}
		}
	}

	w.compact()
	w.checkRound(p)
	return w.events
}

// collideBricks registers at most one brick hit for the ball this frame
func (w *World) collideBricks(b *Ball, p *Paddle) {
	b.HitThisFrame = false
	for _, brk := range w.Bricks {
		res, hit := CollideBrick(b, brk)
		if !hit {
			continue
		}

		if !res.Broken {
			w.emit(Event{Type: EventBrickHit, X: brk.X, Y: brk.Y})
			return
		}

		w.Score += res.ScoreDelta
		w.emit(Event{Type: EventBrickBroken, X: brk.X, Y: brk.Y, ScoreDelta: res.ScoreDelta})
		if w.registerBreak() {
			w.Balls = append(w.Balls, NewWaitingBall(p.X))
			w.emit(Event{Type: EventBallSpawned, X: p.X, Y: WaitingBallY})
		}
		return
	}
}

// registerBreak counts a destroyed brick and reports when an extra ball is due
func (w *World) registerBreak() bool {
	w.breaks++
	if w.breaks >= BreaksPerBall {
		w.breaks = 0
		return true
	}
	return false
}

// advance integrates one frame in SubSteps, stopping early once the ball
// drops out through the bottom.
func (w *World) advance(b *Ball, p *Paddle) {
	for step := 0; step < SubSteps; step++ {
		b.X += b.VX / SubSteps
		b.Y += b.VY / SubSteps

		if b.Cooldown > 0 {
			b.Cooldown--
		}

		if CollideWalls(b) {
			w.emit(Event{Type: EventWallBounce, X: b.X, Y: b.Y})
		}
		if CollidePaddle(b, p) {
			w.emit(Event{Type: EventPaddleHit, X: b.X, Y: b.Y})
		}

		b.Normalize(TargetSpeed)

		if b.Bottom() < PlayfieldMin {
			b.State = BallExited
			return
		}
	}
}

// compact drops exited balls once the pass is over
func (w *World) compact() {
	live := w.Balls[:0]
	for _, b := range w.Balls {
		if b.State != BallExited {
			live = append(live, b)
		}
	}
	for i := len(live); i < len(w.Balls); i++ {
		w.Balls[i] = nil
	}
	w.Balls = live
}

func (w *World) checkRound(p *Paddle) {
	if w.ActiveBricks() == 0 {
		w.ResetRound(p.X)
		w.emit(Event{Type: EventBoardCleared})
		return
	}

	if len(w.Balls) == 0 {
		w.gameOver = true
		w.emit(Event{Type: EventGameOver})
	}
}

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}
