// Package terminal provides direct ANSI terminal control for a character-cell game.
//
// Features:
//   - Line discipline switched to non-canonical, no-echo, non-blocking reads (VMIN=0, VTIME=0)
//   - Alternate screen, hidden cursor and disabled auto-wrap for the session
//   - Bounded-timeout input polling decoded into game commands
//   - Unconditional restoration on Close, plus EmergencyReset for panic paths
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
