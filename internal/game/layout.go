package game

// BrickKind tags a brick in the layout. Collision treats every kind the same.
type BrickKind int

const (
	BrickReflective BrickKind = iota
	BrickDestructible
)

const (
	layoutRows    = 3
	layoutColumns = 7
	brickWidth    = 0.28
)

// BrickSpec is one entry of a board layout
type BrickSpec struct {
	X, Y  float64
	Width float64
	Kind  BrickKind
}

// Layout is the immutable blueprint a board is rebuilt from
type Layout []BrickSpec

// DefaultLayout returns the standard 3x7 staggered board
func DefaultLayout() Layout {
	layout := make(Layout, 0, layoutRows*layoutColumns)
	half := layoutColumns / 2
	for row := 0; row < layoutRows; row++ {
		kind := BrickDestructible
		if row == 0 {
			kind = BrickReflective
		}
		for col := -half; col <= half; col++ {
			layout = append(layout, BrickSpec{
				X:     float64(col)*0.3 + 0.1*float64(row%2),
				Y:     0.6 - float64(row)*0.25,
				Width: brickWidth,
				Kind:  kind,
			})
		}
	}
	return layout
}

// Build creates a fresh set of active bricks
func (l Layout) Build() []*Brick {
	bricks := make([]*Brick, len(l))
	for i, spec := range l {
		bricks[i] = NewBrick(spec)
	}
	return bricks
}
