package interaction

import (
	"fmt"

	"blockcraft/internal/camera"
	"blockcraft/internal/engine"
	"blockcraft/internal/logging"
	"blockcraft/internal/physics"
	"blockcraft/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxPickDistance bounds the ray cast; it matches the camera's far plane.
const MaxPickDistance = 1000

// Notifier receives the user-facing success messages.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Controller turns input events into world mutations and camera moves. It owns all the
// interaction state so a view can be torn down and rebuilt without leftovers.
//
// Keyboard movement is not handled even though the help text mentions WASD.
type Controller struct {
	World    *world.World
	Camera   *camera.OrbitCamera
	surface  Surface
	selected string
	notifier Notifier
	log      *logging.Logger

	panning bool
	prevX   float32
	prevY   float32

	subs []engine.Subscription
}

func NewController(w *world.World, cam *camera.OrbitCamera, surface Surface, notifier Notifier) *Controller {
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	c := &Controller{
		World:    w,
		Camera:   cam,
		surface:  surface,
		selected: w.Palette.First().Name,
		notifier: notifier,
		log:      logging.Default(),
	}
	cam.Resize(int(surface.Width), int(surface.Height))
	return c
}

// Bind subscribes the controller to every event it handles. Calling Bind again first drops
// the previous subscriptions.
func (c *Controller) Bind(bus *Bus) {
	c.Close()
	c.subs = append(c.subs,
		bus.Click.AddListener(c.HandleClick),
		bus.MouseDown.AddListener(c.HandleMouseDown),
		bus.MouseUp.AddListener(c.HandleMouseUp),
		bus.MouseMove.AddListener(c.HandleMouseMove),
		bus.Wheel.AddListener(c.HandleWheel),
		bus.Resize.AddListener(c.HandleResize),
	)
}

// Close removes every subscription made by Bind. It is safe to call more than once.
func (c *Controller) Close() {
	for _, s := range c.subs {
		s.Remove()
	}
	c.subs = nil
	c.panning = false
}

// Select sets the active block type name. Unknown names are accepted; placement then falls
// back to the first palette entry.
func (c *Controller) Select(name string) {
	c.selected = name
}

func (c *Controller) Selected() string {
	return c.selected
}

func (c *Controller) Surface() Surface {
	return c.surface
}

func (c *Controller) Panning() bool {
	return c.panning
}

// Cast returns the nearest block surface under the window pixel (px, py).
func (c *Controller) Cast(px, py float32) (physics.RaycastHit, bool) {
	x, y := c.surface.NDC(px, py)
	ray := c.Camera.PickRay(x, y)
	return physics.Raycast(ray, c.World.Colliders(), MaxPickDistance)
}

// PlacementCoord is the grid cell adjacent to the clicked face.
func PlacementCoord(hit physics.RaycastHit) world.Coord {
	return world.FloorCoord(rl.Vector3Add(hit.Point, rl.Vector3Scale(hit.Normal, 0.5)))
}

// HandleClick places on primary and removes on secondary. Clicks outside the surface are
// ignored.
func (c *Controller) HandleClick(ev Click) {
	if !c.surface.Contains(ev.X, ev.Y) {
		return
	}
	switch ev.Button {
	case ButtonPrimary:
		c.place(ev)
	case ButtonSecondary:
		c.remove(ev)
	}
}

func (c *Controller) place(ev Click) {
	hit, ok := c.Cast(ev.X, ev.Y)
	if !ok {
		return
	}
	pos := PlacementCoord(hit)
	if c.World.Contains(pos) {
		c.log.Debugf("cell %s already occupied, stacking another block", pos)
	}
	b := c.World.PlaceNamed(pos, c.selected)
	c.log.Debugf("placed %s block %s at %s", c.selected, b.ID, pos)
	c.notifier.Notify(fmt.Sprintf("%s block placed!", c.selected))
}

func (c *Controller) remove(ev Click) {
	hit, ok := c.Cast(ev.X, ev.Y)
	if !ok {
		return
	}
	owner := hit.GameObject
	if owner.Parent != nil {
		owner = owner.Parent
	}
	if c.World.Remove(owner.Transform.Position) {
		c.log.Debugf("removed block at %v (object %d)", owner.Transform.Position, owner.UID)
		c.notifier.Notify("Block removed!")
	}
}

func (c *Controller) HandleMouseDown(ev MouseDown) {
	if ev.Button == ButtonMiddle {
		c.panning = true
	}
}

func (c *Controller) HandleMouseUp(MouseUp) {
	c.panning = false
}

// HandleMouseMove pans while the middle button is held. The previous pointer position is
// tracked on every move, panning or not.
func (c *Controller) HandleMouseMove(ev MouseMove) {
	if c.panning {
		c.Camera.Pan(ev.X-c.prevX, ev.Y-c.prevY)
	}
	c.prevX, c.prevY = ev.X, ev.Y
}

func (c *Controller) HandleWheel(ev Wheel) {
	c.Camera.Zoom(ev.DeltaY)
}

// HandleResize tracks the surface's new size and updates the camera aspect.
func (c *Controller) HandleResize(ev Resize) {
	c.surface.Width = float32(ev.Width)
	c.surface.Height = float32(ev.Height)
	c.Camera.Resize(ev.Width, ev.Height)
}
