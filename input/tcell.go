package input

import "github.com/gdamore/tcell/v2"

var tcellKeys = map[tcell.Key]Command{
	tcell.KeyUp:     MoveUp,
	tcell.KeyDown:   MoveDown,
	tcell.KeyLeft:   MoveLeft,
	tcell.KeyRight:  MoveRight,
	tcell.KeyEnter:  Confirm,
	tcell.KeyEscape: Quit,
	tcell.KeyCtrlC:  Quit,
}

// FromTcell maps a tcell key event with the same table Decode uses for raw bytes
func FromTcell(ev *tcell.EventKey) Command {
	if ev == nil {
		return None
	}
	if ev.Key() == tcell.KeyRune {
		return runeCommands[ev.Rune()]
	}
	return tcellKeys[ev.Key()]
}
