package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samdwyer/mansion/internal/mansion"
)

// Choice is a parsed player command.
type Choice int

const (
	ChoiceInvalid Choice = iota
	ChoiceLeft           // "e" (esquerda)
	ChoiceRight          // "d" (direita)
	ChoiceExit           // "s" (sair)
)

// String returns a human-readable choice name.
func (c Choice) String() string {
	switch c {
	case ChoiceLeft:
		return "left"
	case ChoiceRight:
		return "right"
	case ChoiceExit:
		return "exit"
	default:
		return "invalid"
	}
}

// Direction maps a movement choice to a room exit.
func (c Choice) Direction() (mansion.Direction, bool) {
	switch c {
	case ChoiceLeft:
		return mansion.Left, true
	case ChoiceRight:
		return mansion.Right, true
	default:
		return 0, false
	}
}

// ParseChoice interprets the first non-whitespace character of line,
// ignoring case. Only e, d and s (either case) are commands; anything else,
// including a blank line, is ChoiceInvalid.
func ParseChoice(line string) Choice {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	r, size := utf8.DecodeRuneInString(line)
	if size == 0 {
		return ChoiceInvalid
	}

	switch unicode.ToLower(r) {
	case 'e':
		return ChoiceLeft
	case 'd':
		return ChoiceRight
	case 's':
		return ChoiceExit
	default:
		return ChoiceInvalid
	}
}
