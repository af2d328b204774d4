package main

import (
	"fmt"
	"os"

	"github.com/diegok/brickbreak/internal/app"
	"github.com/diegok/brickbreak/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  brickbreak [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --gui               Open a window instead of the terminal UI")
	fmt.Fprintf(os.Stderr, "  --scores <file>     High score file (default: %s)\n", config.DefaultScoresPath)
	fmt.Fprintf(os.Stderr, "  --fps <n>           Frames per second, %d-%d (default: %d)\n", config.MinFPS, config.MaxFPS, config.DefaultFPS)
	fmt.Fprintln(os.Stderr, "  --seed <n>          Random seed for launch angles (default: time based)")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "  --log <file>        Append diagnostics to a file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  Left/Right, A/D     Move the paddle")
	fmt.Fprintln(os.Stderr, "  Space               Launch a waiting ball")
	fmt.Fprintln(os.Stderr, "  Enter               Play again after game over")
	fmt.Fprintln(os.Stderr, "  Q, Esc              Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  brickbreak")
	fmt.Fprintln(os.Stderr, "  brickbreak --gui --fps 120")
	fmt.Fprintln(os.Stderr, "  brickbreak --seed 42 --mute --log brickbreak.log")
}
