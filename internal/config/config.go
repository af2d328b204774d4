package config

import (
	"flag"

	"github.com/pkg/errors"
)

// Default values for configuration
const (
	DefaultScoresPath = "highscores.txt"
	DefaultFPS        = 60
	MinFPS            = 10
	MaxFPS            = 240
)

// Config holds the application configuration
type Config struct {
	GUI        bool
	ScoresPath string
	FPS        int
	Seed       uint64
	Mute       bool
	LogPath    string
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("brickbreak", flag.ContinueOnError)

	gui := fs.Bool("gui", false, "open a window instead of the terminal UI")
	scores := fs.String("scores", DefaultScoresPath, "high score file")
	fps := fs.Int("fps", DefaultFPS, "frames per second (10-240)")
	seed := fs.Uint64("seed", 0, "random seed for launch angles (0 = time based)")
	mute := fs.Bool("mute", false, "disable sound")
	logPath := fs.String("log", "", "append diagnostics to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Validate frame rate
	if *fps < MinFPS || *fps > MaxFPS {
		return nil, errors.Errorf("fps must be between %d and %d, got %d", MinFPS, MaxFPS, *fps)
	}

	if *scores == "" {
		return nil, errors.New("scores path must not be empty")
	}

	cfg := &Config{
		GUI:        *gui,
		ScoresPath: *scores,
		FPS:        *fps,
		Seed:       *seed,
		Mute:       *mute,
		LogPath:    *logPath,
	}

	return cfg, nil
}
