package ui

import "github.com/gdamore/tcell/v2"

// Command is a game action triggered by a key
type Command int

const (
	CmdNone Command = iota
	CmdLeft
	CmdRight
	CmdLaunch
	CmdReset
	CmdQuit
)

// KeyToCommand converts a key event to a game command
func KeyToCommand(key tcell.Key, r rune) Command {
	if IsQuitKey(key, r) {
		return CmdQuit
	}

	switch key {
	case tcell.KeyLeft:
		return CmdLeft
	case tcell.KeyRight:
		return CmdRight
	case tcell.KeyEnter:
		return CmdLaunch
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return CmdLeft
		case 'd', 'D':
			return CmdRight
		case ' ':
			return CmdLaunch
		case 'r', 'R':
			return CmdReset
		}
	}
	return CmdNone
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

// PointerToField maps a screen column to a logical x at the column's center.
func PointerToField(col, screenW int, fieldW float64) float64 {
	if screenW <= 0 {
		return 0
	}
	return (float64(col) + 0.5) * fieldW / float64(screenW)
}
