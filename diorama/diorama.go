package diorama

import (
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"diorama/core"
	"diorama/params"
	"diorama/procgen"
	"diorama/scene"
)

// Scene constants that are not exposed as parameters.
const (
	FogNear          = 1
	FogFar           = 20
	AmbientIntensity = 0.5
	SunHeight        = 10
	OrbitRate        = 0.1 // radians per second
	CameraFOV        = 75  // degrees
	CameraNear       = 0.1
	CameraFar        = 100

	// ShadowCoverage scales the ground size into the sun's shadow camera
	// half-size; it covers the half diagonal plus the trees.
	ShadowCoverage = 0.75
)

// Options configures New.
type Options struct {
	Seed   int64
	Logger *log.Logger // nil discards

	// Viewport size used for the initial camera aspect.
	Width, Height int
}

// Diorama owns the parameter store and the scene it drives.
type Diorama struct {
	Store *params.Store
	Scene *scene.Scene

	Ground   *scene.Node
	Water    *scene.Node
	SnowNode *scene.Node
	Snow     *scene.SnowField
	Sun      *scene.Light
	Trees    *procgen.Population
	Factory  *procgen.TreeFactory
	Moved    int // terrain vertices displaced at construction

	rng    *core.RNG
	logger *log.Logger
}

// New builds the store, the scene and the bindings between them.
func New(opts Options) (*Diorama, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	d := &Diorama{
		Store:  params.NewStore(),
		Scene:  scene.NewScene(),
		rng:    core.NewRNG(opts.Seed),
		logger: logger,
	}
	if err := defineParams(d.Store); err != nil {
		return nil, fmt.Errorf("define parameters: %w", err)
	}
	d.Store.OnClamp = func(ev params.ClampEvent) {
		d.logger.Printf("clamped %s: %v -> %v", ev.Path, ev.Requested, ev.Stored)
	}

	d.buildEnvironment(opts.Width, opts.Height)
	d.buildGround()
	d.buildWater()
	d.buildTrees()
	d.buildSnow()

	if err := d.bind(); err != nil {
		return nil, fmt.Errorf("bind parameters: %w", err)
	}
	d.logger.Printf("diorama ready: seed=%d trees=%d terrain-displaced=%d",
		opts.Seed, d.Trees.Count(), d.Moved)
	return d, nil
}

// Logger returns the logger the diorama reports to.
func (d *Diorama) Logger() *log.Logger { return d.logger }

func (d *Diorama) groundSize() float32 {
	return float32(d.Store.Number(PathGroundSize))
}

func (d *Diorama) buildEnvironment(width, height int) {
	s := d.Scene
	bg := d.Store.Color(PathBackgroundColor)
	s.Background = bg
	s.Fog = scene.Fog{Enabled: true, Color: bg, Near: FogNear, Far: FogFar}

	d.Sun = &scene.Light{
		Type:       scene.LightTypeDirectional,
		Position:   mgl32.Vec3{0, SunHeight, 0},
		Color:      d.Store.Color(PathLightColor),
		Intensity:  float32(d.Store.Number(PathLightIntensity)),
		ShowHelper: d.Store.Bool(PathShowLightHelper),
		CastShadow: true,
	}
	s.AddLight(d.Sun)
	s.Ambient = &scene.Light{
		Type:      scene.LightTypeAmbient,
		Color:     core.ColorWhite,
		Intensity: AmbientIntensity,
	}

	aspect := float32(16) / 9
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	cam := scene.NewCamera(mgl32.DegToRad(CameraFOV), aspect, CameraNear, CameraFar)
	cam.SetPosition(mgl32.Vec3{0, 2, 5})
	s.SetCamera(cam)
}

func (d *Diorama) buildGround() {
	geometry, moved := procgen.NewTerrainGeometry(d.rng)
	d.Moved = moved

	mat := scene.NewStandardMaterial("Ground",
		d.Store.Color(PathGroundColor),
		float32(d.Store.Number(PathGroundRoughness)),
		float32(d.Store.Number(PathGroundMetalness)))
	mat.FlatShading = true

	d.Ground = scene.NewNode("Ground", scene.TagTerrain)
	d.Ground.Mesh = scene.NewMesh(geometry, mat)
	d.Ground.Mesh.CastShadow, d.Ground.Mesh.ReceiveShadow = true, true
	size := d.groundSize()
	d.Ground.SetScale(mgl32.Vec3{size, 1, size})
	d.Scene.AddNode(d.Ground)
	d.Sun.ShadowRadius = size * ShadowCoverage
	d.Sun.LookAt(d.Ground.WorldPosition())
}

func (d *Diorama) buildWater() {
	mat := scene.NewStandardMaterial("Water",
		d.Store.Color(PathWaterColor),
		float32(d.Store.Number(PathWaterRoughness)),
		float32(d.Store.Number(PathWaterMetalness)))

	d.Water = scene.NewNode("Water", scene.TagWater)
	d.Water.Mesh = scene.NewMesh(scene.CreatePlane(1, 1, 1, 1), mat)
	d.Water.Transform.Rotation[0] = -math.Pi / 2
	size := d.groundSize()
	d.Water.SetScale(mgl32.Vec3{size, size, 1})
	d.Water.Transform.Position[1] = float32(d.Store.Number(PathWaterHeight))
	d.Scene.AddNode(d.Water)
}

func (d *Diorama) buildTrees() {
	trunk := scene.NewStandardMaterial("Trunk",
		d.Store.Color(PathTrunkColor),
		float32(d.Store.Number(PathTrunkRoughness)),
		float32(d.Store.Number(PathTrunkMetalness)))
	leaves := scene.NewStandardMaterial("Leaves",
		d.Store.Color(PathLeavesColor),
		float32(d.Store.Number(PathLeavesRoughness)),
		float32(d.Store.Number(PathLeavesMetalness)))

	d.Factory = procgen.NewTreeFactory(d.rng, trunk, leaves)
	d.Trees = &procgen.Population{
		Scene:      d.Scene,
		Factory:    d.Factory,
		GroundSize: d.groundSize,
	}
	d.Trees.Reconcile(int(d.Store.Number(PathTreeCount)))
}

func (d *Diorama) buildSnow() {
	visible := d.Store.Bool(PathSnowVisible)
	d.Snow = scene.NewSnowField(int(d.Store.Number(PathSnowCount)), d.groundSize()/2, d.rng)
	d.Snow.Visible = visible

	mat := scene.NewPointsMaterial("Snow",
		d.Store.Color(PathSnowColor),
		float32(d.Store.Number(PathSnowSize)))
	d.SnowNode = scene.NewNode("Snow", scene.TagSnowParticles)
	d.SnowNode.Mesh = scene.NewPoints(d.Snow.Geometry, mat)
	d.SnowNode.Visible = visible
	d.Scene.AddNode(d.SnowNode)
}

// Advance moves everything that depends on time: the sun orbits the terrain
// on an ellipse scaled by the current ground size and re-aims at it, and the
// snow steps once when visible.
func (d *Diorama) Advance(elapsed time.Duration) {
	t := elapsed.Seconds() * OrbitRate
	size := d.Store.Number(PathGroundSize)
	d.Sun.Position = mgl32.Vec3{
		float32(math.Sin(t) * 2 * size),
		SunHeight,
		float32(math.Cos(t) * size),
	}
	d.Sun.LookAt(d.Ground.WorldPosition())

	if d.Snow.Visible {
		d.Snow.Step(float32(d.Store.Number(PathSnowSpeed)))
	}
}
