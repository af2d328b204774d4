package config

import (
	"testing"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GUI {
		t.Error("expected terminal UI by default")
	}
	if cfg.ScoresPath != DefaultScoresPath {
		t.Errorf("expected scores path %q, got %q", DefaultScoresPath, cfg.ScoresPath)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected fps %d, got %d", DefaultFPS, cfg.FPS)
	}
	if cfg.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Seed)
	}
	if cfg.Mute {
		t.Error("expected sound on by default")
	}
	if cfg.LogPath != "" {
		t.Errorf("expected no log file, got %q", cfg.LogPath)
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--gui", "--scores", "/tmp/hs.txt", "--fps", "120", "--seed", "42", "--mute", "--log", "bb.log"}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.GUI {
		t.Error("expected GUI to be true")
	}
	if cfg.ScoresPath != "/tmp/hs.txt" {
		t.Errorf("expected scores path '/tmp/hs.txt', got '%s'", cfg.ScoresPath)
	}
	if cfg.FPS != 120 {
		t.Errorf("expected fps 120, got %d", cfg.FPS)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if !cfg.Mute {
		t.Error("expected Mute to be true")
	}
	if cfg.LogPath != "bb.log" {
		t.Errorf("expected log path 'bb.log', got '%s'", cfg.LogPath)
	}
}

func TestParseArgs_InvalidFPS(t *testing.T) {
	tests := []struct {
		name string
		fps  string
	}{
		{"too low", "9"},
		{"too high", "241"},
		{"negative", "-60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs([]string{"--fps", tt.fps})
			if err == nil {
				t.Errorf("expected error for fps %s", tt.fps)
			}
		})
	}
}

func TestParseArgs_ValidFPSBoundaries(t *testing.T) {
	tests := []struct {
		name string
		fps  string
		want int
	}{
		{"minimum fps", "10", 10},
		{"maximum fps", "240", 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseArgs([]string{"--fps", tt.fps})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.FPS != tt.want {
				t.Errorf("expected fps %d, got %d", tt.want, cfg.FPS)
			}
		})
	}
}

func TestParseArgs_EmptyScoresPath(t *testing.T) {
	_, err := ParseArgs([]string{"--scores", ""})
	if err == nil {
		t.Error("expected error for empty scores path")
	}
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	_, err := ParseArgs([]string{"--server"})
	if err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestParseArgs_StrayArgument(t *testing.T) {
	_, err := ParseArgs([]string{"play"})
	if err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestDefaultConstants(t *testing.T) {
	if DefaultFPS != 60 {
		t.Errorf("expected DefaultFPS 60, got %d", DefaultFPS)
	}
	if DefaultScoresPath != "highscores.txt" {
		t.Errorf("expected DefaultScoresPath 'highscores.txt', got %q", DefaultScoresPath)
	}
}
