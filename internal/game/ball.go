package game

import (
	"math"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	BallRadius   = 0.05
	TargetSpeed  = 0.03 // Speed every ball is renormalized to
	LaunchSpeed  = 0.02
	MinSteepness = 0.25 // Lower bound for |sin(angle)|, about 14.5 degrees
	WaitingBallY = -0.85

	minLaunchAngle = 45.0 // degrees
	maxLaunchAngle = 135.0
)

// BallState is where a ball is in its lifecycle
type BallState int

const (
	BallWaiting BallState = iota // Parked on the paddle
	BallActive
	BallExited // Left through the bottom, removed at the end of the frame
)

func (s BallState) String() string {
	switch s {
	case BallWaiting:
		return "waiting"
	case BallActive:
		return "active"
	case BallExited:
		return "exited"
	}
	return "unknown"
}

type Ball struct {
	X, Y         float64
	VX, VY       float64
	Radius       float64
	State        BallState
	HitThisFrame bool
	Cooldown     int // Frames until another brick hit may register
	Color        colorful.Color
}

// NewWaitingBall parks a ball on the paddle at x
func NewWaitingBall(x float64) *Ball {
	return &Ball{
		X:      x,
		Y:      WaitingBallY,
		Radius: BallRadius,
		State:  BallWaiting,
		Color:  colorful.Color{R: 1, G: 1, B: 1},
	}
}

func (b *Ball) Waiting() bool {
	return b.State == BallWaiting
}

func (b *Ball) Active() bool {
	return b.State == BallActive
}

// Launch puts a waiting ball in play at the given angle in degrees, always upward
func (b *Ball) Launch(angleDeg float64) {
	if b.State != BallWaiting {
		return
	}
	rad := angleDeg * math.Pi / 180
	b.VX = math.Cos(rad) * LaunchSpeed
	b.VY = math.Abs(math.Sin(rad) * LaunchSpeed)
	b.State = BallActive
}

// RandomLaunchAngle picks a launch angle in [45, 135] degrees
func RandomLaunchAngle(rng *rand.Rand) float64 {
	return minLaunchAngle + rng.Float64()*(maxLaunchAngle-minLaunchAngle)
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Normalize rescales velocity to target while keeping the trajectory at
// least MinSteepness away from horizontal.
func (b *Ball) Normalize(target float64) {
	angle := math.Atan2(b.VY, b.VX)

	if math.Abs(math.Sin(angle)) < MinSteepness {
		angle = math.Asin(MinSteepness)
		if b.VY < 0 {
			angle = -angle
		}
		if b.VX < 0 {
			angle = math.Pi - angle
		}
	}

	b.VX = math.Cos(angle) * target
	b.VY = math.Sin(angle) * target
}

// Bottom is the lowest point of the ball
func (b *Ball) Bottom() float64 {
	return b.Y - b.Radius
}
