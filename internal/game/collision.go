package game

import "math"

const (
	PlayfieldMin = -1.0
	PlayfieldMax = 1.0

	BrickCooldown     = 5 // Frames a ball ignores bricks after a hit
	separationEpsilon = 0.001
)

// CollideBrick tests a ball against one brick and resolves a hit. A hit only
// registers on an active brick, with no cooldown left, and when the ball has
// not already hit a brick this frame. Side detection is coarse: the axis with
// the larger center offset is the one reflected.
func CollideBrick(b *Ball, brk *Brick) (HitResult, bool) {
	if b.Cooldown > 0 || !brk.Active || b.HitThisFrame {
		return HitResult{}, false
	}

	halfW := brk.HalfWidth()
	halfH := brk.HalfHeight()
	overlaps := b.X+b.Radius > brk.X-halfW && b.X-b.Radius < brk.X+halfW &&
		b.Y+b.Radius > brk.Y-halfH && b.Y-b.Radius < brk.Y+halfH
	if !overlaps {
		return HitResult{}, false
	}

	res := brk.Hit()

	if math.Abs(b.Y-brk.Y) > math.Abs(b.X-brk.X) {
		b.VY = -b.VY
	} else {
		b.VX = -b.VX
	}

	b.Cooldown = BrickCooldown
	b.Normalize(TargetSpeed)
	b.HitThisFrame = true
	return res, true
}

// CollideWalls bounces off the side walls and the ceiling. There is no floor.
func CollideWalls(b *Ball) bool {
	bounced := false

	if b.X-b.Radius < PlayfieldMin {
		b.X = PlayfieldMin + b.Radius
		b.VX = math.Abs(b.VX)
		bounced = true
	} else if b.X+b.Radius > PlayfieldMax {
		b.X = PlayfieldMax - b.Radius
		b.VX = -math.Abs(b.VX)
		bounced = true
	}

	if b.Y+b.Radius > PlayfieldMax {
		b.Y = PlayfieldMax - b.Radius
		b.VY = -math.Abs(b.VY)
		bounced = true
	}

	return bounced
}

// CollidePaddle catches a descending ball whose lower edge is in a thin band
// around the paddle top. The further from the paddle center, the steeper the
// horizontal deflection.
func CollidePaddle(b *Ball, p *Paddle) bool {
	if b.VY >= 0 {
		return false
	}

	bottom := b.Bottom()
	top := p.Top()
	if bottom > top+paddleBand || bottom < p.Y-paddleBand {
		return false
	}
	if !p.ContainsX(b.X) {
		return false
	}

	b.Y = top + b.Radius
	b.VX = (b.X - p.X) * PaddleDeflection
	b.VY = math.Abs(b.VY)
	return true
}

// CollideBalls resolves an equal-mass elastic collision between two balls
// and pushes them apart. Waiting balls never collide.
func CollideBalls(a, b *Ball) bool {
	if a == b || a.State != BallActive || b.State != BallActive {
		return false
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	distSq := dx*dx + dy*dy
	radiusSum := a.Radius + b.Radius
	if distSq >= radiusSum*radiusSum {
		return false
	}

	dist := math.Sqrt(distSq)
	nx, ny := 1.0, 0.0
	if dist > 0 {
		nx = dx / dist
		ny = dy / dist
	}

	// Relative velocity along the normal, positive means separating
	rel := (b.VX-a.VX)*nx + (b.VY-a.VY)*ny
	if rel > 0 {
		return false
	}

	// Equal masses exchange their normal components
	a.VX += rel * nx
	a.VY += rel * ny
	b.VX -= rel * nx
	b.VY -= rel * ny

	overlap := 0.5 * (radiusSum - dist + separationEpsilon)
	a.X -= overlap * nx
	a.Y -= overlap * ny
	b.X += overlap * nx
	b.Y += overlap * ny
	return true
}
