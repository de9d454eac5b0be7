package camera

import (
	"math"

	"blockcraft/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultPanSpeed  = 0.01
	DefaultZoomSpeed = 0.1
	zoomScale        = -0.01
)

// OrbitCamera is a perspective camera that always faces a fixed target (the world origin).
// Neither pan nor zoom is bounded: the camera can drop below the ground or pass through the
// target.
type OrbitCamera struct {
	Position  rl.Vector3
	Target    rl.Vector3
	Up        rl.Vector3
	Fovy      float32 // vertical field of view in degrees
	Aspect    float32
	Near      float32
	Far       float32
	PanSpeed  float32
	ZoomSpeed float32
}

func New(pos rl.Vector3) *OrbitCamera {
	return &OrbitCamera{
		Position:  pos,
		Target:    rl.Vector3Zero(),
		Up:        rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:      75,
		Aspect:    1,
		Near:      0.1,
		Far:       1000,
		PanSpeed:  DefaultPanSpeed,
		ZoomSpeed: DefaultZoomSpeed,
	}
}

// Pan shifts the camera by a pixel delta and re-aims it at the origin. Dragging right moves
// the camera left, dragging down moves it up.
func (c *OrbitCamera) Pan(dx, dy float32) {
	c.Position.X -= dx * c.PanSpeed
	c.Position.Y += dy * c.PanSpeed
	c.LookAtOrigin()
}

// Zoom moves the camera along its direction from the origin. A positive wheel delta moves
// it closer.
func (c *OrbitCamera) Zoom(wheelDelta float32) {
	direction := rl.Vector3Normalize(c.Position)
	c.Position = rl.Vector3Add(c.Position, rl.Vector3Scale(direction, wheelDelta*c.ZoomSpeed*zoomScale))
}

func (c *OrbitCamera) LookAtOrigin() {
	c.Target = rl.Vector3Zero()
}

// Resize matches the aspect ratio to a surface of width x height pixels. A zero height is
// ignored.
func (c *OrbitCamera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

func (c *OrbitCamera) up() rl.Vector3 {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(c.Target, c.Position))
	if math.Abs(float64(rl.Vector3DotProduct(forward, rl.Vector3Normalize(c.Up)))) > 0.999 {
		return rl.Vector3{X: 0, Y: 0, Z: -1}
	}
	return c.Up
}

// GetRaylibCamera returns the camera in the form raylib draws with.
func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         c.up(),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// PickRay returns the world-space ray from the camera through a point given in normalized
// device coordinates (x right, y up, both in [-1, 1]). A camera sitting on its target yields
// a ray with zero direction, which hits nothing.
func (c *OrbitCamera) PickRay(ndcX, ndcY float32) physics.Ray {
	origin := c.Position
	if c.Position == c.Target {
		return physics.Ray{Origin: origin}
	}

	up := c.up()
	view := mgl32.LookAtV(vec(c.Position), vec(c.Target), vec(up))
	proj := mgl32.Perspective(mgl32.DegToRad(c.Fovy), c.Aspect, c.Near, c.Far)
	inv := proj.Mul4(view).Inv()

	near := unproject(inv, ndcX, ndcY, -1)
	far := unproject(inv, ndcX, ndcY, 1)
	dir := far.Sub(near)
	if dir.Len() == 0 {
		return physics.Ray{Origin: origin}
	}
	dir = dir.Normalize()

	return physics.Ray{
		Origin:    origin,
		Direction: rl.Vector3{X: dir.X(), Y: dir.Y(), Z: dir.Z()},
	}
}

func unproject(inv mgl32.Mat4, x, y, z float32) mgl32.Vec3 {
	p := inv.Mul4x1(mgl32.Vec4{x, y, z, 1})
	if p.W() == 0 {
		return p.Vec3()
	}
	return p.Vec3().Mul(1 / p.W())
}

func vec(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
