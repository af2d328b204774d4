package game

// EventType identifies something that happened during a frame
type EventType int

const (
	EventLaunch EventType = iota
	EventBrickHit
	EventBrickBroken
	EventBallSpawned
	EventWallBounce
	EventPaddleHit
	EventBallCollision
	EventBallLost
	EventBoardCleared
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventLaunch:
		return "launch"
	case EventBrickHit:
		return "brick-hit"
	case EventBrickBroken:
		return "brick-broken"
	case EventBallSpawned:
		return "ball-spawned"
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleHit:
		return "paddle-hit"
	case EventBallCollision:
		return "ball-collision"
	case EventBallLost:
		return "ball-lost"
	case EventBoardCleared:
		return "board-cleared"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event is emitted by the world for frontends (sound, effects). X and Y are
// where it happened, ScoreDelta is set for broken bricks.
type Event struct {
	Type       EventType
	X, Y       float64
	ScoreDelta int
}
