package game

const (
	PaddleY          = -0.95 // Bottom edge
	PaddleWidth      = 0.3
	PaddleHeight     = 0.05
	PaddleStep       = 0.02 // Distance per frame while steering
	PaddleDeflection = 1.5  // Horizontal velocity per unit of offset from center
	paddleBand       = 0.015

	// Ticks to keep moving after last input, terminals report no key release
	MovementTimeout = 8
)

// Direction is the paddle steering direction
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

type Paddle struct {
	X             float64 // Center
	Y             float64 // Bottom edge
	Width         float64
	Height        float64
	Direction     Direction
	MovementTicks int // Countdown for movement timeout
}

func NewPaddle() *Paddle {
	return &Paddle{
		Y:      PaddleY,
		Width:  PaddleWidth,
		Height: PaddleHeight,
	}
}

// Steer sets the direction for the given number of ticks
func (p *Paddle) Steer(dir Direction, ticks int) {
	p.Direction = dir
	if dir != DirNone {
		p.MovementTicks = ticks
	}
}

func (p *Paddle) Move() {
	switch p.Direction {
	case DirLeft:
		p.X -= PaddleStep
	case DirRight:
		p.X += PaddleStep
	}
	p.Clamp()

	// Decrement movement timeout and stop when it expires
	if p.MovementTicks > 0 {
		p.MovementTicks--
		if p.MovementTicks == 0 {
			p.Direction = DirNone
		}
	}
}

// Clamp keeps the paddle inside the playfield
func (p *Paddle) Clamp() {
	half := p.Width / 2
	if p.X-half < PlayfieldMin {
		p.X = PlayfieldMin + half
	}
	if p.X+half > PlayfieldMax {
		p.X = PlayfieldMax - half
	}
}

func (p *Paddle) Top() float64 {
	return p.Y + p.Height
}

func (p *Paddle) ContainsX(x float64) bool {
	half := p.Width / 2
	return x >= p.X-half && x <= p.X+half
}
