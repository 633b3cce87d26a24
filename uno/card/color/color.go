package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
	Wild   Color = "wild"
)

// Priority is the fixed tie-break order used whenever a color must be chosen.
var Priority = []Color{Red, Blue, Green, Yellow}

var Stdout io.Writer = color.Output

var painters = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Wild:   color.New(color.FgHiMagenta).SprintfFunc(),
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(text string, args ...interface{}) string {
	paint, ok := painters[c]
	if !ok {
		return fmt.Sprintf(text, args...)
	}
	return paint(text, args...)
}

// Playable reports whether c can be the active color of the table.
func (c Color) Playable() bool {
	switch c {
	case Red, Blue, Green, Yellow:
		return true
	}
	return false
}

func (c Color) String() string {
	return string(c)
}

func ByName(name string) (Color, error) {
	c := Color(name)
	if !c.Playable() {
		return "", fmt.Errorf("invalid color '%s'", name)
	}
	return c, nil
}
