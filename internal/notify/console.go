// Package notify carries user-visible notifications to the terminal. It is
// the CLI's stand-in for the toast layer a web client would render.
package notify

import (
	"fmt"
	"io"
	"os"
)

// Console writes one line per notification.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

func (c *Console) Success(msg string) { fmt.Fprintln(c.out, "✔", msg) }
func (c *Console) Info(msg string)    { fmt.Fprintln(c.out, "•", msg) }
func (c *Console) Error(msg string)   { fmt.Fprintln(c.out, "✖", msg) }
