package diorama

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"diorama/params"
)

const consoleHelp = `commands:
  set <path> <value>   change a parameter
  get <path>           print a parameter
  list                 print every parameter with its range
  dump                 print all values as YAML
  reset                restore defaults
  quit                 stop
`

// Console is a line-oriented control panel over a Store.
type Console struct {
	Store *params.Store
	Out   io.Writer
	Quit  func() // called on "quit"; may be nil
}

// Exec runs one command line synchronously. Call it from the frame goroutine.
func (c *Console) Exec(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "set":
		if len(args) != 2 {
			fmt.Fprintln(c.Out, "usage: set <path> <value>")
			return
		}
		if err := c.Store.SetString(args[0], args[1]); err != nil {
			fmt.Fprintf(c.Out, "error: %v\n", err)
			return
		}
		c.print(args[0])
	case "get":
		if len(args) != 1 {
			fmt.Fprintln(c.Out, "usage: get <path>")
			return
		}
		c.print(args[0])
	case "list":
		for _, f := range c.Store.Fields() {
			v, _ := c.Store.Get(f.Path)
			if f.Kind == params.KindNumber {
				fmt.Fprintf(c.Out, "%-28s %-6s [%g, %g] step %g = %s\n", f.Path, f.Kind, f.Min, f.Max, f.Step, v)
			} else {
				fmt.Fprintf(c.Out, "%-28s %-6s = %s\n", f.Path, f.Kind, v)
			}
		}
	case "dump":
		if err := c.Store.WriteYAML(c.Out); err != nil {
			fmt.Fprintf(c.Out, "error: %v\n", err)
		}
	case "reset":
		c.Store.Reset()
		fmt.Fprintln(c.Out, "defaults restored")
	case "quit", "exit":
		if c.Quit != nil {
			c.Quit()
		}
	case "help", "?":
		fmt.Fprint(c.Out, consoleHelp)
	default:
		fmt.Fprintf(c.Out, "unknown command %q, try help\n", cmd)
	}
}

func (c *Console) print(path string) {
	v, err := c.Store.Get(path)
	if err != nil {
		fmt.Fprintf(c.Out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(c.Out, "%s = %s\n", path, v)
}

// Run reads command lines from r and hands each to enqueue so it executes on
// the frame goroutine. It returns at EOF, on a read error, or once ctx is done.
func (c *Console) Run(ctx context.Context, r io.Reader, enqueue func(func())) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := sc.Text()
		enqueue(func() { c.Exec(line) })
	}
	return sc.Err()
}
