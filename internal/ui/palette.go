package ui

import (
	"blockcraft/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HeaderHeight = 120

	HelpText = "Left click to place blocks | Right click to remove blocks | WASD to move | Mouse to look around"

	buttonWidth  = 100
	buttonHeight = 40
	buttonGap    = 8
)

var (
	colorHeader = rl.NewColor(18, 18, 24, 235)
	colorMuted  = rl.NewColor(200, 200, 208, 255)
)

// PaletteBar is the header strip: title, help line and one button per block type.
type PaletteBar struct {
	Title    string
	OnSelect func(name string)
}

func NewPaletteBar(title string, onSelect func(name string)) *PaletteBar {
	return &PaletteBar{Title: title, OnSelect: onSelect}
}

// ButtonBounds lays the palette buttons out left to right under the help line.
func ButtonBounds(count int) []rl.Rectangle {
	out := make([]rl.Rectangle, count)
	for i := range out {
		out[i] = rl.Rectangle{
			X:      float32(16 + i*(buttonWidth+buttonGap)),
			Y:      70,
			Width:  buttonWidth,
			Height: buttonHeight,
		}
	}
	return out
}

// Contains reports whether a window pixel falls on the header, where clicks belong to the
// palette rather than the 3D view.
func (p *PaletteBar) Contains(x, y float32) bool {
	return y >= 0 && y < HeaderHeight
}

func (p *PaletteBar) Draw(screenWidth int32, entries []world.BlockType, selected string) {
	rl.DrawRectangle(0, 0, screenWidth, HeaderHeight, colorHeader)
	rl.DrawText(p.Title, 16, 10, 28, rl.RayWhite)
	rl.DrawText(HelpText, 16, 44, 16, colorMuted)

	prevBase := gui.GetStyle(gui.BUTTON, gui.BASE_COLOR_NORMAL)
	prevBorder := gui.GetStyle(gui.BUTTON, gui.BORDER_COLOR_NORMAL)
	prevText := gui.GetStyle(gui.BUTTON, gui.TEXT_COLOR_NORMAL)
	defer func() {
		gui.SetStyle(gui.BUTTON, gui.BASE_COLOR_NORMAL, prevBase)
		gui.SetStyle(gui.BUTTON, gui.BORDER_COLOR_NORMAL, prevBorder)
		gui.SetStyle(gui.BUTTON, gui.TEXT_COLOR_NORMAL, prevText)
	}()

	for i, bounds := range ButtonBounds(len(entries)) {
		e := entries[i]
		if e.Name == selected {
			gui.SetStyle(gui.BUTTON, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(e.Color))
			gui.SetStyle(gui.BUTTON, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(rl.White))
		} else {
			gui.SetStyle(gui.BUTTON, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorHeader))
			gui.SetStyle(gui.BUTTON, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(e.Color))
		}
		gui.SetStyle(gui.BUTTON, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(e.Color))

		if gui.Button(bounds, e.Name) && p.OnSelect != nil {
			p.OnSelect(e.Name)
		}
	}
}
