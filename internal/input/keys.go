package input

import (
	"unicode"
	"unicode/utf8"
)

// Key is a logical key name. Named keys use the names bubbletea reports
// ("left", "enter", "ctrl+c"); printable keys are the rune itself.
type Key string

const (
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyHome      Key = "home"
	KeyEnd       Key = "end"
	KeyPgUp      Key = "pgup"
	KeyPgDown    Key = "pgdown"
	KeyEnter     Key = "enter"
	KeyEsc       Key = "esc"
	KeyBackspace Key = "backspace"
	KeyCtrlC     Key = "ctrl+c"
)

// Rune returns the single printable rune k stands for.
func (k Key) Rune() (rune, bool) {
	s := string(k)
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return 0, false
	}
	return r, true
}

func isDigit(k Key) bool {
	r, ok := k.Rune()
	return ok && r >= '0' && r <= '9'
}

func isPrintable(k Key) bool {
	_, ok := k.Rune()
	return ok
}
