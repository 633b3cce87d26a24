package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ratel-online/unotable/uno/card/color"
)

// Console is the human seat's terminal.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	pause time.Duration
}

// NewConsole reads from in and writes to out, pausing after every printed line.
func NewConsole(in io.Reader, out io.Writer, pause time.Duration) *Console {
	return &Console{in: bufio.NewReader(in), out: out, pause: pause}
}

// Stdio is the console on the process' terminal.
func Stdio(pause time.Duration) *Console {
	return NewConsole(os.Stdin, color.Stdout, pause)
}

func (c *Console) Printfln(format string, args ...interface{}) {
	c.Println(fmt.Sprintf(format, args...))
}

func (c *Console) Printlns(lines []string) {
	c.Println(strings.Join(lines, "\n"))
}

func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
	time.Sleep(c.pause)
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
