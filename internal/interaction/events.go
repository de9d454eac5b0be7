package interaction

import "blockcraft/internal/engine"

// MouseButton numbers follow the usual pointer convention.
type MouseButton int

const (
	ButtonPrimary   MouseButton = 0
	ButtonMiddle    MouseButton = 1
	ButtonSecondary MouseButton = 2
)

func (b MouseButton) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonMiddle:
		return "middle"
	case ButtonSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Click is a completed click in surface-window pixel coordinates.
type Click struct {
	Button MouseButton
	X, Y   float32
}

// MouseDown is a button press on the surface.
type MouseDown struct {
	Button MouseButton
	X, Y   float32
}

// MouseUp is a button release, delivered wherever the pointer is.
type MouseUp struct {
	Button MouseButton
	X, Y   float32
}

// MouseMove is the new pointer position in window pixels.
type MouseMove struct {
	X, Y float32
}

// Wheel carries a pixel-style vertical delta: positive when scrolling down.
type Wheel struct {
	DeltaY float32
}

// Resize carries the new surface size in pixels.
type Resize struct {
	Width, Height int
}

// Bus fans raw input out to whoever subscribed. The input pump publishes, the
// controller listens.
type Bus struct {
	Click     engine.EventWithArg[Click]
	MouseDown engine.EventWithArg[MouseDown]
	MouseUp   engine.EventWithArg[MouseUp]
	MouseMove engine.EventWithArg[MouseMove]
	Wheel     engine.EventWithArg[Wheel]
	Resize    engine.EventWithArg[Resize]
}

func NewBus() *Bus {
	return &Bus{}
}

// ListenerCount is the total number of live subscriptions on the bus.
func (b *Bus) ListenerCount() int {
	return b.Click.GetListenerCount() +
		b.MouseDown.GetListenerCount() +
		b.MouseUp.GetListenerCount() +
		b.MouseMove.GetListenerCount() +
		b.Wheel.GetListenerCount() +
		b.Resize.GetListenerCount()
}
