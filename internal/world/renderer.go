package world

import (
	_ "embed"

	"blockcraft/internal/components"
	"blockcraft/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	//go:embed shaders/lambert.vs
	lambertVS string
	//go:embed shaders/lambert.fs
	lambertFS string
)

// SkyColor is the scene background (#87ceeb).
var SkyColor = rl.NewColor(0x87, 0xce, 0xeb, 255)

// Renderer draws block groups with ambient plus directional Lambert lighting. All blocks
// share one unit cube model; per-block color is passed as the draw tint.
type Renderer struct {
	Shader rl.Shader
	Cube   rl.Model
	Light  *components.DirectionalLight
	loaded bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Initialize must be called after the window (and GL context) exists.
func (r *Renderer) Initialize(light *components.DirectionalLight) {
	r.Shader = rl.LoadShaderFromMemory(lambertVS, lambertFS)
	r.Cube = rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
	r.Cube.Materials.Shader = r.Shader
	r.Cube.Materials.Maps.Color = rl.White
	r.loaded = true
	r.SetLight(light)
}

func (r *Renderer) SetLight(light *components.DirectionalLight) {
	r.Light = light
	r.updateShaderUniforms()
}

func (r *Renderer) updateShaderUniforms() {
	if r.Light == nil || !r.loaded {
		return
	}
	dir := r.Light.Direction()

	lightDirLoc := rl.GetShaderLocation(r.Shader, "lightDir")
	rl.SetShaderValue(r.Shader, lightDirLoc, []float32{dir.X, dir.Y, dir.Z}, rl.ShaderUniformVec3)

	lightColorLoc := rl.GetShaderLocation(r.Shader, "lightColor")
	rl.SetShaderValue(r.Shader, lightColorLoc, r.Light.GetColorFloat(), rl.ShaderUniformVec4)

	ambientLoc := rl.GetShaderLocation(r.Shader, "ambient")
	rl.SetShaderValue(r.Shader, ambientLoc, r.Light.GetAmbientFloat(), rl.ShaderUniformVec4)
}

// Draw renders one frame of the scene from camera. The caller owns BeginDrawing/EndDrawing.
func (r *Renderer) Draw(camera rl.Camera3D, gameObjects []*engine.GameObject) {
	rl.ClearBackground(SkyColor)

	rl.BeginMode3D(camera)
	for _, g := range gameObjects {
		g.Walk(func(obj *engine.GameObject) {
			if cube := engine.GetComponent[*components.CubeRenderer](obj); cube != nil {
				cube.Draw(r.Cube)
			}
		})
	}
	rl.EndMode3D()
}

func (r *Renderer) Unload() {
	if !r.loaded {
		return
	}
	r.loaded = false
	rl.UnloadModel(r.Cube)
	rl.UnloadShader(r.Shader)
}
