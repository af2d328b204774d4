// Package session drives one player's game: it owns the paddle, steps the
// world once per frame, forwards events to a sound sink and records the
// final score when a game ends.
package session

import (
	"io"
	"log"

	"github.com/diegok/brickbreak/internal/game"
	"github.com/diegok/brickbreak/internal/score"
)

// Phase is the screen the player is on
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// View is what frontends draw each frame
type View struct {
	game.Snapshot
	Phase      Phase
	HighScores []int
	NewRecord  bool
}

type Session struct {
	world  *game.World
	paddle *game.Paddle
	board  *score.Board
	sound  func(game.Event)
	logger *log.Logger

	phase     Phase
	newRecord bool
}

// New wires a session. sound and logger may be nil.
func New(world *game.World, board *score.Board, sound func(game.Event), logger *log.Logger) *Session {
	if sound == nil {
		sound = func(game.Event) {}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		world:  world,
		paddle: game.NewPaddle(),
		board:  board,
		sound:  sound,
		logger: logger,
	}
}

func (s *Session) Phase() Phase {
	return s.phase
}

// Steer moves the paddle for the given number of frames
func (s *Session) Steer(dir game.Direction, ticks int) {
	if s.phase != PhasePlaying {
		return
	}
	s.paddle.Steer(dir, ticks)
}

// Launch fires the next waiting ball
func (s *Session) Launch() bool {
	if s.phase != PhasePlaying {
		return false
	}
	if !s.world.Launch() {
		return false
	}
	s.sound(game.Event{Type: game.EventLaunch, X: s.paddle.X, Y: game.WaitingBallY})
	return true
}

// Tick advances one frame and returns the frame's events
func (s *Session) Tick() []game.Event {
	if s.phase != PhasePlaying {
		return nil
	}

	s.paddle.Move()
	events := s.world.Step(s.paddle)

	for _, ev := range events {
		s.sound(ev)
		switch ev.Type {
		case game.EventBoardCleared:
			s.logger.Printf("board cleared at frame %d, score %d", s.world.Tick, s.world.Score)
		case game.EventGameOver:
			s.finish()
		}
	}
	return events
}

// finish records the final score once the last ball is gone
func (s *Session) finish() {
	s.phase = PhaseGameOver
	final := s.world.Score
	s.newRecord = s.board.Qualifies(final)
	s.logger.Printf("game over, score %d", final)

	if err := s.board.Submit(final); err != nil {
		s.logger.Printf("save high scores: %v", err)
	}
}

// Restart begins a new game after game over. Returns false while playing.
func (s *Session) Restart() bool {
	if s.phase != PhaseGameOver {
		return false
	}
	s.world.NewGame(s.paddle.X)
	s.phase = PhasePlaying
	s.newRecord = false
	s.logger.Printf("new game")
	return true
}

// View snapshots the session for drawing
func (s *Session) View() View {
	return View{
		Snapshot:   s.world.Snapshot(s.paddle),
		Phase:      s.phase,
		HighScores: s.board.Top(),
		NewRecord:  s.newRecord,
	}
}
