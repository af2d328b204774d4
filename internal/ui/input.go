package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/brickbreak/internal/game"
)

// KeyToDirection converts a key event to a paddle direction
// For Breakout, only left/right movement is allowed
func KeyToDirection(key tcell.Key, r rune) game.Direction {
	switch key {
	case tcell.KeyLeft:
		return game.DirLeft
	case tcell.KeyRight:
		return game.DirRight
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return game.DirLeft
		case 'd', 'D':
			return game.DirRight
		}
	}
	return game.DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsStartKey returns true if the key should start/confirm
func IsStartKey(key tcell.Key) bool {
	return key == tcell.KeyEnter
}

// IsLaunchKey returns true if the key launches a waiting ball
func IsLaunchKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && r == ' '
}
