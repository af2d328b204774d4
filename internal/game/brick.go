package game

import colorful "github.com/lucasb-eyer/go-colorful"

const (
	MaxHits    = 3  // Hits needed to destroy a brick
	BrickScore = 10 // Points for a destroyed brick
)

// Colors by hit count: fresh, once hit, twice hit
var hitColors = []colorful.Color{
	{R: 0, G: 1, B: 0},
	{R: 1, G: 1, B: 0},
	{R: 1, G: 0, B: 0},
}

// HitResult reports what a registered hit did to a brick
type HitResult struct {
	Broken     bool
	ScoreDelta int
}

// Brick is a destructible target
type Brick struct {
	X, Y     float64
	Width    float64
	Kind     BrickKind
	HitCount int
	Active   bool
	Color    colorful.Color
}

func NewBrick(spec BrickSpec) *Brick {
	b := &Brick{
		X:      spec.X,
		Y:      spec.Y,
		Width:  spec.Width,
		Kind:   spec.Kind,
		Active: true,
	}
	b.updateColor()
	return b
}

// HalfWidth is half the horizontal extent of the collision box
func (b *Brick) HalfWidth() float64 {
	return b.Width / 2
}

// HalfHeight is half the vertical extent; bricks are half as tall as wide
func (b *Brick) HalfHeight() float64 {
	return b.Width / 4
}

// Hit registers one hit. A brick reaching MaxHits switches off and is worth
// BrickScore. Hitting an inactive brick does nothing.
func (b *Brick) Hit() HitResult {
	if !b.Active {
		return HitResult{}
	}

	b.HitCount++
	if b.HitCount >= MaxHits {
		b.HitCount = MaxHits
		b.Active = false
		return HitResult{Broken: true, ScoreDelta: BrickScore}
	}

	b.updateColor()
	return HitResult{}
}

func (b *Brick) updateColor() {
	if b.HitCount < len(hitColors) {
		b.Color = hitColors[b.HitCount]
		return
	}
	b.Color = colorful.Color{}
}
