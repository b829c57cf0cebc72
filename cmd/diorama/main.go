package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"diorama/core"
	"diorama/diorama"
	"diorama/renderer"
	"diorama/scene"
)

// statsInterval is how often the windowed loop prints draw stats.
const statsInterval = 5 * time.Second

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	logger := log.New(os.Stderr, "diorama: ", log.LstdFlags)
	if cfg.DumpParams {
		logger = nil
	}
	d, err := diorama.New(diorama.Options{
		Seed:   cfg.Seed,
		Logger: logger,
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		log.Fatalf("build scene: %v", err)
	}
	if err := cfg.Apply(d.Store); err != nil {
		log.Fatalf("apply flags: %v", err)
	}

	if cfg.DumpParams {
		if err := d.Store.WriteYAML(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if cfg.Headless {
		runHeadless(d, cfg)
		return
	}
	runWindow(d, cfg)
}

func runHeadless(d *diorama.Diorama, cfg *Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := diorama.NewDriver(d, diorama.NewHeadlessRenderer(d.Logger(), time.Second))
	console := &diorama.Console{Store: d.Store, Out: os.Stdout, Quit: stop}
	go func() {
		if err := console.Run(ctx, os.Stdin, driver.Enqueue); err != nil {
			d.Logger().Printf("console: %v", err)
		}
	}()

	fmt.Printf("Running headless at %d ticks/s; type help for commands\n", cfg.TPS)
	if err := driver.Run(ctx, time.Second/time.Duration(cfg.TPS)); err != nil {
		log.Fatalf("frame loop: %v", err)
	}
	fmt.Printf("Stopped after %d frames (%.1fs simulated)\n", driver.Frames(), driver.Elapsed().Seconds())
}

func runWindow(d *diorama.Diorama, cfg *Config) {
	windowConfig := core.DefaultWindowConfig()
	windowConfig.Width = cfg.Width
	windowConfig.Height = cfg.Height

	window, err := core.NewWindow(windowConfig)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Destroy()

	engine, err := renderer.NewRenderEngine(window)
	if err != nil {
		log.Fatalf("Failed to create render engine: %v", err)
	}
	defer engine.Destroy()

	driver := diorama.NewDriver(d, engine)
	driver.Resize(window.Width, window.Height)
	window.OnResize(driver.Resize)

	orbit := newOrbitController(scene.NewOrbitCamera(d.Scene.Camera))
	window.SetScrollCallback(orbit.Scroll)

	panel := newKeyPanel(d.Store)
	window.SetKeyCallback(func(key int, shift bool) {
		switch key {
		case core.KeyEscape:
			window.SetShouldClose(true)
		case core.KeyP:
			engine.SetWireframe(!engine.IsWireframe())
		default:
			panel.Key(key, shift)
		}
	})

	// The console runs beside the window; its commands execute on this
	// goroutine through the driver queue.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	console := &diorama.Console{Store: d.Store, Out: os.Stdout, Quit: func() { window.SetShouldClose(true) }}
	go console.Run(ctx, os.Stdin, driver.Enqueue)

	fmt.Println("Drag to orbit, scroll to zoom")
	fmt.Println("Up/Down select, Left/Right adjust (Shift x10), PgUp/PgDn group, H helper, R reset, P wireframe, Esc quit")

	title := ""
	lastTime := core.GetTime()
	lastStats := time.Now()
	for !window.ShouldClose() {
		now := core.GetTime()
		dt := now - lastTime
		lastTime = now

		orbit.Update(window)
		if err := driver.Tick(time.Duration(dt * float64(time.Second))); err != nil {
			log.Fatalf("render: %v", err)
		}
		engine.Present()

		if t := panel.Title(); t != title {
			window.SetTitle(t)
			title = t
		}
		if time.Since(lastStats) >= statsInterval {
			objects, vertices, triangles, points := engine.DrawStats()
			fmt.Printf("frame %d: %d objects (%d culled), %d vertices, %d triangles, %d points\n",
				driver.Frames(), objects, engine.Culled(), vertices, triangles, points)
			lastStats = time.Now()
		}
		window.PollEvents()
	}
}
