package menu

// Key is a decoded keyboard command.
type Key int

const (
	KeyUp Key = iota + 1
	KeyDown
	KeyEnter
	KeyEscape
	KeyQuit
	KeyRefresh
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyQuit:
		return "quit"
	case KeyRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// Console scan codes that follow a 0x00 or 0xE0 prefix byte.
const (
	scanUp   = 72
	scanDown = 80
)

// DecodeKeys turns one read from a raw-mode terminal into key commands.
// It understands ANSI cursor sequences (ESC [ A, ESC O A), the console
// extended scan-code pairs (0xE0 72, 0x00 80), and single-byte commands.
// A lone ESC byte is the Escape key; an introducer cut off at the end of
// the read (ESC [ or ESC O) is dropped. Unrecognised bytes are dropped.
func DecodeKeys(input []byte) []Key {
	var keys []Key
	for len(input) > 0 {
		// ANSI escape sequences
		if input[0] == 0x1b {
			if len(input) >= 3 && (input[1] == '[' || input[1] == 'O') {
				switch input[2] {
				case 'A':
					keys = append(keys, KeyUp)
				case 'B':
					keys = append(keys, KeyDown)
				}
				input = skipSequence(input)
				continue
			}
			if len(input) == 2 && (input[1] == '[' || input[1] == 'O') {
				// Introducer split from its final byte by the read.
				break
			}
			keys = append(keys, KeyEscape)
			input = input[1:]
			continue
		}

		// Extended scan codes
		if (input[0] == 0xe0 || input[0] == 0x00) && len(input) >= 2 {
			switch input[1] {
			case scanUp:
				keys = append(keys, KeyUp)
			case scanDown:
				keys = append(keys, KeyDown)
			}
			input = input[2:]
			continue
		}

		switch input[0] {
		case '\r', '\n':
			keys = append(keys, KeyEnter)
		case 'q', 'Q', 0x03: // Ctrl+C
			keys = append(keys, KeyQuit)
		case 'r', 'R':
			keys = append(keys, KeyRefresh)
		case 'k': // vim up
			keys = append(keys, KeyUp)
		case 'j': // vim down
			keys = append(keys, KeyDown)
		}
		input = input[1:]
	}
	return keys
}

// skipSequence drops one CSI/SS3 sequence (ESC, introducer, parameters,
// final byte) from the front of input.
func skipSequence(input []byte) []byte {
	i := 2
	for i < len(input) && input[i] >= 0x30 && input[i] <= 0x3f {
		i++ // parameter bytes, e.g. "1;5" in ESC [ 1 ; 5 A
	}
	if i < len(input) {
		i++ // final byte
	}
	return input[i:]
}
