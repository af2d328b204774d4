package game

import (
	"math"
	"testing"
)

func TestBrick_New(t *testing.T) {
	brick := NewBrick(BrickSpec{X: 0.3, Y: 0.6, Width: 0.28, Kind: BrickDestructible})

	if !brick.Active {
		t.Error("expected new brick to be active")
	}
	if brick.HitCount != 0 {
		t.Errorf("expected HitCount=0, got %d", brick.HitCount)
	}
	if brick.Color != hitColors[0] {
		t.Errorf("expected fresh color %v, got %v", hitColors[0], brick.Color)
	}
	if math.Abs(brick.HalfWidth()-0.14) > epsilon {
		t.Errorf("expected half width 0.14, got %f", brick.HalfWidth())
	}
	if math.Abs(brick.HalfHeight()-0.07) > epsilon {
		t.Errorf("expected half height 0.07, got %f", brick.HalfHeight())
	}
}

func TestBrick_HitSequence(t *testing.T) {
	brick := NewBrick(BrickSpec{Width: 0.28})

	res := brick.Hit()
	if res.Broken || res.ScoreDelta != 0 {
		t.Errorf("first hit should not break, got %+v", res)
	}
	if brick.Color != hitColors[1] {
		t.Errorf("expected yellow after one hit, got %v", brick.Color)
	}

	res = brick.Hit()
	if res.Broken {
		t.Error("second hit should not break")
	}
	if brick.Color != hitColors[2] {
		t.Errorf("expected red after two hits, got %v", brick.Color)
	}

	res = brick.Hit()
	if !res.Broken {
		t.Error("third hit should break the brick")
	}
	if res.ScoreDelta != BrickScore {
		t.Errorf("expected score delta %d, got %d", BrickScore, res.ScoreDelta)
	}
	if brick.Active {
		t.Error("expected broken brick to be inactive")
	}
	if brick.HitCount != MaxHits {
		t.Errorf("expected HitCount=%d, got %d", MaxHits, brick.HitCount)
	}
}

func TestBrick_HitInactiveIsNoop(t *testing.T) {
	brick := NewBrick(BrickSpec{Width: 0.28})
	for i := 0; i < MaxHits; i++ {
		brick.Hit()
	}

	res := brick.Hit()

	if res != (HitResult{}) {
		t.Errorf("expected empty result, got %+v", res)
	}
	if brick.HitCount != MaxHits {
		t.Errorf("hit count should stay at %d, got %d", MaxHits, brick.HitCount)
	}
}
