package teach

import (
	"bufio"
	"io"
)

// Key represents a keyboard input.
type Key int

const (
	KeyUnknown Key = iota
	KeyCtrlC
	KeyRune // Regular printable character
)

// KeyEvent represents a key press event.
type KeyEvent struct {
	Key  Key
	Rune rune // Only valid when Key == KeyRune
}

// KeyReader reads single-key input from a raw terminal.
type KeyReader struct {
	reader *bufio.Reader
}

// NewKeyReader creates a KeyReader from the given io.Reader. The reader
// should be a raw terminal input (e.g. os.Stdin after term.MakeRaw).
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{
		reader: bufio.NewReaderSize(r, 64),
	}
}

// ReadKey reads a single key event, blocking until a key is pressed.
func (k *KeyReader) ReadKey() (KeyEvent, error) {
	b, err := k.reader.ReadByte()
	if err != nil {
		return KeyEvent{}, err
	}

	switch {
	case b == 0x03:
		return KeyEvent{Key: KeyCtrlC}, nil
	case b >= 0x20 && b < 0x7F:
		return KeyEvent{Key: KeyRune, Rune: rune(b)}, nil
	default:
		return KeyEvent{Key: KeyUnknown}, nil
	}
}
