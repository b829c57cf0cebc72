package diorama

import (
	"context"
	"time"

	"diorama/scene"
)

// Renderer draws a scene. Implementations must not mutate it.
type Renderer interface {
	Render(s *scene.Scene) error
}

// Resizer is implemented by renderers that track the viewport size.
type Resizer interface {
	Resize(width, height int)
}

// Driver runs the per-frame update. Every mutation of the store and the
// scene happens on the goroutine calling Tick; other goroutines hand work
// over with Enqueue.
type Driver struct {
	Diorama  *Diorama
	Renderer Renderer

	elapsed time.Duration
	frames  uint64
	queue   chan func()
}

func NewDriver(d *Diorama, r Renderer) *Driver {
	return &Driver{
		Diorama:  d,
		Renderer: r,
		queue:    make(chan func(), 64),
	}
}

// Enqueue schedules fn to run at the start of the next tick. It blocks when
// the queue is full.
func (dr *Driver) Enqueue(fn func()) {
	dr.queue <- fn
}

// Elapsed returns the simulated time accumulated by Tick.
func (dr *Driver) Elapsed() time.Duration { return dr.elapsed }

// Frames returns the number of completed ticks.
func (dr *Driver) Frames() uint64 { return dr.frames }

// Tick runs queued commands, advances the clock by dt, updates the light and
// snow, and submits the frame.
func (dr *Driver) Tick(dt time.Duration) error {
	dr.drain()
	if dt > 0 {
		dr.elapsed += dt
	}
	dr.Diorama.Advance(dr.elapsed)
	dr.frames++
	if dr.Renderer == nil {
		return nil
	}
	return dr.Renderer.Render(dr.Diorama.Scene)
}

// Resize updates the camera aspect and forwards the size to the renderer
// when it cares.
func (dr *Driver) Resize(width, height int) {
	if cam := dr.Diorama.Scene.Camera; cam != nil {
		cam.UpdateAspectRatio(float32(width), float32(height))
	}
	if r, ok := dr.Renderer.(Resizer); ok {
		r.Resize(width, height)
	}
}

// Run ticks every interval until ctx is done. It returns nil on
// cancellation and the first render error otherwise.
func (dr *Driver) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if err := dr.Tick(dt); err != nil {
				return err
			}
		}
	}
}

func (dr *Driver) drain() {
	for {
		select {
		case fn := <-dr.queue:
			fn()
		default:
			return
		}
	}
}
