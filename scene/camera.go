package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position    mgl32.Vec3
	Target      mgl32.Vec3
	Up          mgl32.Vec3
	FOV         float32 // vertical, radians
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(fov, aspectRatio, nearPlane, farPlane float32) *Camera {
	return &Camera{
		Up:          mgl32.Vec3{0, 1, 0},
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   nearPlane,
		FarPlane:    farPlane,
	}
}

// UpdateAspectRatio follows a viewport resize; zero heights are ignored.
func (c *Camera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
	}
}

func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.Position = pos
}

func (c *Camera) LookAt(target mgl32.Vec3) {
	c.Target = target
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewProjectionMatrix() mgl32.Mat4 {
	return c.GetProjectionMatrix().Mul4(c.GetViewMatrix())
}

// OrbitCamera drives a Camera around its target on a sphere. Call Sync once
// after the camera's position and target are first set so the controller
// adopts them instead of its own defaults.
type OrbitCamera struct {
	Camera   *Camera
	Distance float32
	Yaw      float32
	Pitch    float32

	MinDistance float32
	MaxDistance float32
}

func NewOrbitCamera(camera *Camera) *OrbitCamera {
	o := &OrbitCamera{
		Camera:      camera,
		MinDistance: 0.5,
		MaxDistance: 50,
	}
	o.Sync()
	return o
}

// Sync re-derives distance, yaw and pitch from the camera's current transform.
func (o *OrbitCamera) Sync() {
	offset := o.Camera.Position.Sub(o.Camera.Target)
	o.Distance = offset.Len()
	if o.Distance == 0 {
		o.Yaw, o.Pitch = 0, 0
		return
	}
	o.Yaw = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
	o.Pitch = float32(math.Asin(float64(offset.Y() / o.Distance)))
}

// UpdatePosition writes the spherical coordinates back to the camera.
func (o *OrbitCamera) UpdatePosition() {
	// Clamp pitch
	if o.Pitch > 1.5 {
		o.Pitch = 1.5
	}
	if o.Pitch < -1.5 {
		o.Pitch = -1.5
	}
	if o.Distance < o.MinDistance {
		o.Distance = o.MinDistance
	}
	if o.MaxDistance > 0 && o.Distance > o.MaxDistance {
		o.Distance = o.MaxDistance
	}

	cosPitch := float32(math.Cos(float64(o.Pitch)))
	sinPitch := float32(math.Sin(float64(o.Pitch)))
	cosYaw := float32(math.Cos(float64(o.Yaw)))
	sinYaw := float32(math.Sin(float64(o.Yaw)))

	offset := mgl32.Vec3{
		o.Distance * cosPitch * sinYaw,
		o.Distance * sinPitch,
		o.Distance * cosPitch * cosYaw,
	}
	o.Camera.Position = o.Camera.Target.Add(offset)
}

func (o *OrbitCamera) Orbit(deltaYaw, deltaPitch float32) {
	o.Yaw += deltaYaw
	o.Pitch += deltaPitch
	o.UpdatePosition()
}

func (o *OrbitCamera) Zoom(delta float32) {
	o.Distance += delta
	o.UpdatePosition()
}
