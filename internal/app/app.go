package app

import (
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/diegok/brickbreak/internal/audio"
	"github.com/diegok/brickbreak/internal/config"
	"github.com/diegok/brickbreak/internal/game"
	"github.com/diegok/brickbreak/internal/gui"
	"github.com/diegok/brickbreak/internal/score"
	"github.com/diegok/brickbreak/internal/session"
	"github.com/diegok/brickbreak/internal/ui"
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *session.Session
	logger   *log.Logger
	logFile  *os.File

	quit     chan struct{}
	stopOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It builds the session, then hands it to the terminal or window frontend.
func (a *App) Run() error {
	if err := a.setup(); err != nil {
		a.cleanup()
		return err
	}

	var runErr error
	if a.cfg.GUI {
		runErr = gui.Run(a.session, a.cfg.FPS)
	} else {
		runErr = a.runTerminal()
	}

	// Cleanup
	a.cleanup()

	return runErr
}

// setup opens the log, loads high scores and creates the session
func (a *App) setup() error {
	logger, err := a.openLog()
	if err != nil {
		return err
	}
	a.logger = logger

	board, err := score.Open(a.cfg.ScoresPath)
	if err != nil {
		return errors.Wrap(err, "failed to load high scores")
	}

	var sound func(game.Event)
	if !a.cfg.Mute {
		// Ignore errors - game works without sound
		if err := audio.Init(); err != nil {
			a.logger.Printf("audio disabled: %v", err)
		} else {
			sound = audio.Play
		}
	}

	world := game.NewWorld(game.DefaultLayout(), newRand(a.cfg.Seed))
	a.session = session.New(world, board, sound, a.logger)
	a.logger.Printf("new game, high scores %v", board.Top())
	return nil
}

// openLog appends to the configured log file, or discards output
func (a *App) openLog() (*log.Logger, error) {
	if a.cfg.LogPath == "" {
		return log.New(io.Discard, "", 0), nil
	}
	f, err := os.OpenFile(a.cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open log file")
	}
	a.logFile = f
	return log.New(f, "brickbreak ", log.LstdFlags), nil
}

// newRand seeds launch angles; zero picks a time based seed
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// runTerminal initializes the screen, sets up signal handling, and runs the main loop.
func (a *App) runTerminal() error {
	screen, err := ui.InitScreen()
	if err != nil {
		return errors.Wrap(err, "failed to initialize screen")
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.stop()
		case <-a.quit:
		}
	}()

	return a.mainLoop()
}

// mainLoop is the main event loop that handles all input and state updates.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	// One world step per tick
	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.stop()
				return nil
			}

		case <-ticker.C:
			a.session.Tick()
			a.render()
		}
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		// Quit keys always work
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}

		switch a.session.Phase() {
		case session.PhasePlaying:
			a.handleGameEvent(ev)
		case session.PhaseGameOver:
			a.handleGameOverEvent(ev)
		}

	case *tcell.EventResize:
		// Handle resize by updating screen
		a.screen.Clear()
		a.render()
	}

	return false
}

// handleGameEvent handles events during gameplay.
func (a *App) handleGameEvent(ev *tcell.EventKey) {
	if ui.IsLaunchKey(ev.Key(), ev.Rune()) {
		a.session.Launch()
		return
	}

	if dir := ui.KeyToDirection(ev.Key(), ev.Rune()); dir != game.DirNone {
		a.session.Steer(dir, game.MovementTimeout)
	}
}

// handleGameOverEvent handles events on the game over screen.
func (a *App) handleGameOverEvent(ev *tcell.EventKey) {
	if ui.IsStartKey(ev.Key()) {
		a.session.Restart()
	}
}

// stop releases the event pump and signal goroutines
func (a *App) stop() {
	a.stopOnce.Do(func() {
		close(a.quit)
	})
}

func (a *App) render() {
	a.renderer.Render(a.session.View())
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	// Close audio
	audio.Close()

	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
	}

	// Stop signal handling
	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}
}
