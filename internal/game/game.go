package game

import (
	"context"
	"fmt"

	"blockcraft/internal/camera"
	"blockcraft/internal/config"
	"blockcraft/internal/interaction"
	"blockcraft/internal/logging"
	"blockcraft/internal/ui"
	"blockcraft/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const loadedMessage = "World loaded! Start building!"

// Game owns the window and everything that lives inside it for one run.
type Game struct {
	Config     config.Config
	World      *world.World
	Camera     *camera.OrbitCamera
	Controller *interaction.Controller
	Renderer   *world.Renderer

	bus    *interaction.Bus
	input  *InputPump
	header *ui.PaletteBar
	toasts *ui.Toasts
	loop   Loop
	log    *logging.Logger

	panCursor bool
}

// New builds the world and controller from cfg. The world is seeded when the view mounts,
// and no window is opened until Run.
func New(cfg config.Config) (*Game, error) {
	palette, err := cfg.BuildPalette()
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	g := &Game{
		Config:   cfg,
		World:    world.New(palette),
		Renderer: world.NewRenderer(),
		bus:      interaction.NewBus(),
		toasts:   ui.NewToasts(ui.DefaultToastTTL),
		log:      logging.Default(),
	}

	g.Camera = camera.New(g.startPosition())
	g.Camera.Fovy = cfg.Camera.Fovy
	g.Camera.PanSpeed = cfg.Camera.PanSpeed
	g.Camera.ZoomSpeed = cfg.Camera.ZoomSpeed

	surface := interaction.Surface{Width: float32(cfg.Window.Width), Height: float32(cfg.Window.Height)}
	g.Controller = interaction.NewController(g.World, g.Camera, surface, interaction.NotifierFunc(g.notify))
	g.header = ui.NewPaletteBar(cfg.Window.Title, g.Controller.Select)
	g.input = NewInputPump(g.bus, raylibInput{}, g.header.Contains)
	return g, nil
}

func (g *Game) startPosition() rl.Vector3 {
	pos := g.Config.Camera.Position
	return rl.Vector3{X: pos[0], Y: pos[1], Z: pos[2]}
}

func (g *Game) notify(message string) {
	g.log.Infof("%s", message)
	g.toasts.Notify(message)
}

// mount builds a fresh world for the view: ground seeded, camera at its start position,
// controller listening on the bus.
func (g *Game) mount() {
	g.World.Reset()

	ground, ok := g.World.Palette.Lookup(g.Config.World.GroundBlock)
	if !ok {
		ground = g.World.Palette.First()
		g.log.Warnf("ground block %q not in palette, using %s", g.Config.World.GroundBlock, ground.Name)
	}
	g.World.SeedGround(g.Config.World.GroundRadius, ground.Color)
	g.World.Scene.Start()

	g.Camera.Position = g.startPosition()
	g.Camera.LookAtOrigin()

	g.Controller.Bind(g.bus)
	g.log.Infof("%d blocks seeded, palette: %d types", g.World.Len(), g.World.Palette.Len())
	g.notify(loadedMessage)
}

// unmount drops the controller's listeners and discards the world.
func (g *Game) unmount() {
	g.Controller.Close()
	g.World.Reset()
}

// Stop ends the loop before its next frame. Safe from any goroutine.
func (g *Game) Stop() {
	g.loop.Stop()
}

// Run opens the window and draws until it is closed, ctx is done, or Stop is called. The
// controller's listeners are removed, the world discarded and GPU resources released on
// every exit path.
func (g *Game) Run(ctx context.Context) error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(g.Config.Window.Width), int32(g.Config.Window.Height), g.Config.Window.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("window %q could not be created", g.Config.Window.Title)
	}
	rl.SetTargetFPS(int32(g.Config.Window.TargetFPS))
	rl.SetExitKey(0)

	g.Renderer.Initialize(g.World.Light)
	defer g.Renderer.Unload()

	g.mount()
	defer g.unmount()

	// The window may not honor the requested size (HighDPI, tiling WMs).
	g.bus.Resize.Invoke(interaction.Resize{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()})

	g.loop.Run(ctx, g.frame)
	if g.loop.Stopped() {
		g.log.Infof("stopped after %d frames", g.loop.Frames())
	} else {
		g.log.Infof("canceled after %d frames: %v", g.loop.Frames(), context.Cause(ctx))
	}
	return nil
}

func (g *Game) frame() bool {
	if rl.WindowShouldClose() {
		return false
	}
	g.input.Poll()
	g.World.Scene.Update(rl.GetFrameTime())
	g.updateCursor()
	g.Draw()
	return true
}

func (g *Game) updateCursor() {
	panning := g.Controller.Panning()
	if panning == g.panCursor {
		return
	}
	g.panCursor = panning
	if panning {
		rl.SetMouseCursor(rl.MouseCursorResizeAll)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

func (g *Game) Draw() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	rl.BeginDrawing()
	g.Renderer.Draw(g.Camera.GetRaylibCamera(), g.World.Scene.GameObjects)
	g.header.Draw(w, g.World.Palette.Entries(), g.Controller.Selected())
	g.toasts.Draw(w, h)
	rl.EndDrawing()
}
