package main

import (
	"flag"
	"fmt"

	"diorama/diorama"
	"diorama/params"
)

// Config represents the command-line parameters for the binary.
type Config struct {
	Width      int
	Height     int
	Seed       int64
	Headless   bool
	TPS        int
	Snow       bool
	Trees      int
	DumpParams bool
}

// NewConfig returns a Config populated with the defaults of the scene.
func NewConfig() *Config {
	return &Config{Width: 1280, Height: 720, Seed: 1, TPS: 60, Trees: -1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for terrain, trees and snow")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without a window, reading commands from stdin")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second in headless mode")
	fs.BoolVar(&c.Snow, "snow", c.Snow, "start with snow falling")
	fs.IntVar(&c.Trees, "trees", c.Trees, "initial tree count (-1 keeps the default)")
	fs.BoolVar(&c.DumpParams, "dump-params", c.DumpParams, "print the initial parameters as YAML and exit")
}

// Apply pushes the flag overrides into the store, through the same bindings
// the panel uses.
func (c *Config) Apply(s *params.Store) error {
	if c.Snow {
		if err := s.SetBool(diorama.PathSnowVisible, true); err != nil {
			return err
		}
	}
	if c.Trees >= 0 {
		if err := s.SetNumber(diorama.PathTreeCount, float64(c.Trees)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validate() error {
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if !c.Headless && (c.Width <= 0 || c.Height <= 0) {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}
