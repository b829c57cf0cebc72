package diorama

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestConsoleExec(t *testing.T) {
	d := newTestDiorama(t)
	var out bytes.Buffer
	c := &Console{Store: d.Store, Out: &out}

	c.Exec("set trees.count 7")
	if !strings.Contains(out.String(), "trees.count = 7") {
		t.Errorf("unexpected output %q", out.String())
	}
	if d.Trees.Count() != 7 {
		t.Errorf("expected 7 trees, got %d", d.Trees.Count())
	}

	out.Reset()
	c.Exec("set tree.count 3")
	if !strings.Contains(out.String(), "did you mean") {
		t.Errorf("expected a suggestion, got %q", out.String())
	}

	out.Reset()
	c.Exec("set ground.color nope")
	if !strings.Contains(out.String(), "error:") {
		t.Errorf("expected an error, got %q", out.String())
	}

	out.Reset()
	c.Exec("dump")
	if !strings.Contains(out.String(), "ground:") || !strings.Contains(out.String(), "count: 7") {
		t.Errorf("unexpected dump %q", out.String())
	}

	out.Reset()
	c.Exec("list")
	if lines := strings.Count(out.String(), "\n"); lines != len(d.Store.Fields()) {
		t.Errorf("expected %d lines, got %d", len(d.Store.Fields()), lines)
	}
}

func TestConsoleQuit(t *testing.T) {
	d := newTestDiorama(t)
	quit := false
	c := &Console{Store: d.Store, Out: &bytes.Buffer{}, Quit: func() { quit = true }}
	c.Exec("quit")
	if !quit {
		t.Error("quit callback not invoked")
	}
}

func TestConsoleRunEnqueues(t *testing.T) {
	d := newTestDiorama(t)
	dr := NewDriver(d, nil)
	var out bytes.Buffer
	c := &Console{Store: d.Store, Out: &out}

	in := strings.NewReader("set water.height 0.25\nget water.height\n")
	if err := c.Run(context.Background(), in, dr.Enqueue); err != nil {
		t.Fatal(err)
	}
	// Nothing runs until the driver ticks.
	if out.Len() != 0 {
		t.Fatalf("commands ran before the tick: %q", out.String())
	}
	if err := dr.Tick(0); err != nil {
		t.Fatal(err)
	}
	if got := d.Water.Transform.Position.Y(); got != float32(0.25) {
		t.Errorf("water height: expected 0.25, got %v", got)
	}
	if strings.Count(out.String(), "water.height = 0.25") != 2 {
		t.Errorf("unexpected output %q", out.String())
	}
}
