package format

import "fmt"

const escape = "\x1b"

// Color is an ANSI foreground color code.
type Color uint8

const (
	Black Color = iota + 30
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Format wraps the given string in the escape sequences for the color.
func (c Color) Format(s string) string {
	return fmt.Sprintf("%s[%dm%s%s[0m", escape, c, s, escape)
}
