package ui

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/brickbreak/internal/game"
	"github.com/diegok/brickbreak/internal/session"
)

func newSimScreen(t *testing.T, w, h int) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)
	return sim, NewScreen(sim)
}

func rowText(sim tcell.SimulationScreen, y int) string {
	w, _ := sim.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenText(sim tcell.SimulationScreen) string {
	_, h := sim.Size()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		rows[y] = rowText(sim, y)
	}
	return strings.Join(rows, "\n")
}

func testView(phase session.Phase) session.View {
	world := game.NewWorld(game.DefaultLayout(), rand.New(rand.NewPCG(1, 2)))
	world.Score = 120
	return session.View{
		Snapshot:   world.Snapshot(game.NewPaddle()),
		Phase:      phase,
		HighScores: []int{300, 120, 0},
		NewRecord:  true,
	}
}

func TestField_Mapping(t *testing.T) {
	f := field{w: 80, h: 22}

	if f.col(game.PlayfieldMin) != 0 {
		t.Errorf("left edge should map to column 0, got %d", f.col(game.PlayfieldMin))
	}
	if f.col(game.PlayfieldMax) != 79 {
		t.Errorf("right edge should map to last column, got %d", f.col(game.PlayfieldMax))
	}
	if f.col(0) != 40 {
		t.Errorf("center should map to column 40, got %d", f.col(0))
	}
	if f.row(game.PlayfieldMax) != 1 {
		t.Errorf("top should map below the scoreboard, got %d", f.row(game.PlayfieldMax))
	}
	if f.row(game.PlayfieldMin) != 22 {
		t.Errorf("bottom should map above the status bar, got %d", f.row(game.PlayfieldMin))
	}
}

func TestRenderer_Game(t *testing.T) {
	sim, screen := newSimScreen(t, 80, 24)
	r := NewRenderer(screen)

	r.Render(testView(session.PhasePlaying))

	if top := rowText(sim, 0); !strings.Contains(top, "SCORE 120") {
		t.Errorf("expected score in scoreboard, got %q", top)
	}
	if top := rowText(sim, 0); !strings.Contains(top, "BEST 300") {
		t.Errorf("expected best score in scoreboard, got %q", top)
	}

	text := screenText(sim)
	if !strings.ContainsRune(text, BrickChar) {
		t.Error("expected bricks drawn")
	}
	if !strings.ContainsRune(text, PaddleChar) {
		t.Error("expected paddle drawn")
	}
	if !strings.ContainsRune(text, BallChar) {
		t.Error("expected waiting ball drawn")
	}
	if strings.Contains(text, "GAME OVER") {
		t.Error("game over box should not show while playing")
	}
	if status := rowText(sim, 23); !strings.Contains(status, "Balls ready: 1") {
		t.Errorf("expected waiting ball count in status bar, got %q", status)
	}
}

func TestRenderer_GameOver(t *testing.T) {
	sim, screen := newSimScreen(t, 80, 24)
	r := NewRenderer(screen)

	r.Render(testView(session.PhaseGameOver))

	text := screenText(sim)
	for _, want := range []string{"GAME OVER", "Final Score: 120", "NEW HIGH SCORE!", "1. 300", "2. 120", "3. 0", "Press ENTER"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q on game over screen", want)
		}
	}
}

func TestRenderer_InactiveBricksHidden(t *testing.T) {
	sim, screen := newSimScreen(t, 80, 24)
	r := NewRenderer(screen)

	view := testView(session.PhasePlaying)
	for i := range view.Bricks {
		view.Bricks[i].Active = false
	}
	r.Render(view)

	if strings.ContainsRune(screenText(sim), BrickChar) {
		t.Error("expected no bricks drawn")
	}
}

func TestRenderer_Error(t *testing.T) {
	sim, screen := newSimScreen(t, 80, 24)
	r := NewRenderer(screen)

	r.RenderError("boom")

	if !strings.Contains(screenText(sim), "Error: boom") {
		t.Error("expected error message")
	}
}
