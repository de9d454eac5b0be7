package components

import (
	"blockcraft/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DirectionalLight shines from its GameObject's position toward Target.
// It also carries the scene's ambient term.
type DirectionalLight struct {
	engine.BaseComponent
	Target           rl.Vector3
	Color            rl.Color
	Intensity        float32
	AmbientColor     rl.Color
	AmbientIntensity float32
}

func NewDirectionalLight() *DirectionalLight {
	return &DirectionalLight{
		Color:            rl.White,
		Intensity:        0.8,
		AmbientColor:     rl.White,
		AmbientIntensity: 0.6,
	}
}

// Direction is the normalized direction light travels in.
func (l *DirectionalLight) Direction() rl.Vector3 {
	from := rl.Vector3{}
	if g := l.GetGameObject(); g != nil {
		from = g.WorldPosition()
	}
	return rl.Vector3Normalize(rl.Vector3Subtract(l.Target, from))
}

func (l *DirectionalLight) GetColorFloat() []float32 {
	return scaledColor(l.Color, l.Intensity)
}

func (l *DirectionalLight) GetAmbientFloat() []float32 {
	return scaledColor(l.AmbientColor, l.AmbientIntensity)
}

func scaledColor(c rl.Color, intensity float32) []float32 {
	return []float32{
		float32(c.R) / 255.0 * intensity,
		float32(c.G) / 255.0 * intensity,
		float32(c.B) / 255.0 * intensity,
		1.0,
	}
}
