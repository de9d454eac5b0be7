package components

import (
	"blockcraft/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CubeRenderer draws a unit cube at its GameObject's world position using a shared
// cube model, optionally followed by a wire outline of the cube edges.
type CubeRenderer struct {
	engine.BaseComponent
	Color        rl.Color
	Outline      bool
	OutlineColor rl.Color
}

func NewCubeRenderer(color rl.Color) *CubeRenderer {
	return &CubeRenderer{
		Color:        color,
		Outline:      true,
		OutlineColor: rl.Black,
	}
}

func (c *CubeRenderer) Draw(cube rl.Model) {
	g := c.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	pos := g.WorldPosition()
	scale := g.WorldScale()

	rl.DrawModelEx(cube, pos, rl.Vector3{Y: 1}, 0, scale, c.Color)
	if c.Outline {
		rl.DrawCubeWiresV(pos, scale, c.OutlineColor)
	}
}
