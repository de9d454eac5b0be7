package game

import (
	"blockcraft/internal/interaction"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WheelPixelsPerNotch converts a wheel notch into a pixel-style delta (positive = scroll down).
const WheelPixelsPerNotch = 100

// InputSource is the per-frame input state the pump reads.
type InputSource interface {
	MousePosition() (x, y float32)
	ButtonPressed(b interaction.MouseButton) bool
	ButtonReleased(b interaction.MouseButton) bool
	WheelMove() float32
	Resized() bool
	ScreenSize() (width, height int)
}

type raylibInput struct{}

var raylibButtons = map[interaction.MouseButton]rl.MouseButton{
	interaction.ButtonPrimary:   rl.MouseLeftButton,
	interaction.ButtonMiddle:    rl.MouseMiddleButton,
	interaction.ButtonSecondary: rl.MouseRightButton,
}

func (raylibInput) MousePosition() (float32, float32) {
	p := rl.GetMousePosition()
	return p.X, p.Y
}

func (raylibInput) ButtonPressed(b interaction.MouseButton) bool {
	return rl.IsMouseButtonPressed(raylibButtons[b])
}

func (raylibInput) ButtonReleased(b interaction.MouseButton) bool {
	return rl.IsMouseButtonReleased(raylibButtons[b])
}

func (raylibInput) WheelMove() float32 { return rl.GetMouseWheelMove() }

func (raylibInput) Resized() bool { return rl.IsWindowResized() }

func (raylibInput) ScreenSize() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

var buttons = []interaction.MouseButton{
	interaction.ButtonPrimary,
	interaction.ButtonMiddle,
	interaction.ButtonSecondary,
}

// InputPump turns polled input into bus events once per frame. Pointer events that start on
// the overlay (the palette header) are not forwarded.
type InputPump struct {
	bus       *interaction.Bus
	source    InputSource
	overlay   func(x, y float32) bool
	lastX     float32
	lastY     float32
	primaryOn bool
}

func NewInputPump(bus *interaction.Bus, source InputSource, overlay func(x, y float32) bool) *InputPump {
	if overlay == nil {
		overlay = func(float32, float32) bool { return false }
	}
	return &InputPump{bus: bus, source: source, overlay: overlay}
}

func (p *InputPump) Poll() {
	if p.source.Resized() {
		w, h := p.source.ScreenSize()
		p.bus.Resize.Invoke(interaction.Resize{Width: w, Height: h})
	}

	x, y := p.source.MousePosition()
	if x != p.lastX || y != p.lastY {
		p.bus.MouseMove.Invoke(interaction.MouseMove{X: x, Y: y})
		p.lastX, p.lastY = x, y
	}
	onView := !p.overlay(x, y)

	for _, b := range buttons {
		if p.source.ButtonPressed(b) && onView {
			p.bus.MouseDown.Invoke(interaction.MouseDown{Button: b, X: x, Y: y})
			switch b {
			case interaction.ButtonPrimary:
				p.primaryOn = true
			case interaction.ButtonSecondary:
				// Secondary clicks act on press, like a context menu.
				p.bus.Click.Invoke(interaction.Click{Button: b, X: x, Y: y})
			}
		}
		if p.source.ButtonReleased(b) {
			p.bus.MouseUp.Invoke(interaction.MouseUp{Button: b, X: x, Y: y})
			if b == interaction.ButtonPrimary && p.primaryOn {
				p.primaryOn = false
				if onView {
					p.bus.Click.Invoke(interaction.Click{Button: b, X: x, Y: y})
				}
			}
		}
	}

	if notch := p.source.WheelMove(); notch != 0 && onView {
		p.bus.Wheel.Invoke(interaction.Wheel{DeltaY: -notch * WheelPixelsPerNotch})
	}
}
