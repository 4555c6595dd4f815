package input

const (
	keyEscape = 0x1b
	keyLF     = 0x0a
	keyCR     = 0x0d
)

// MaxSequenceLen is the largest read a poll hands to Decode
const MaxSequenceLen = 3

// arrowFinals maps the final byte of CSI/SS3 cursor sequences
var arrowFinals = map[byte]Command{
	'A': MoveUp,
	'B': MoveDown,
	'C': MoveRight,
	'D': MoveLeft,
}

// runeCommands maps single printable keys
var runeCommands = map[rune]Command{
	'q': Quit,
	'h': MoveLeft,
	'j': MoveDown,
	'k': MoveUp,
	'l': MoveRight,
}

// Decode maps one read worth of raw bytes to a command.
// Accepted: a lone confirm byte (LF or CR), a lone quit byte (ESC or q), a lone vi motion key,
// or a three byte ESC [ X / ESC O X cursor sequence. Anything else is None.
func Decode(b []byte) Command {
	switch len(b) {
	case 1:
		switch b[0] {
		case keyLF, keyCR:
			return Confirm
		case keyEscape:
			return Quit
		}
		return runeCommands[rune(b[0])]
	case 3:
		if b[0] != keyEscape || (b[1] != '[' && b[1] != 'O') {
			return None
		}
		return arrowFinals[b[2]]
	}
	return None
}
