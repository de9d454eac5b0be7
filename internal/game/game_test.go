package game

import (
	"testing"

	"blockcraft/internal/config"
	"blockcraft/internal/interaction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedsWorldFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.World.GroundRadius = 1
	cfg.Camera.Fovy = 60

	g, err := New(cfg)
	require.NoError(t, err)
	assert.Zero(t, g.World.Len(), "seeding waits for mount")

	g.mount()
	t.Cleanup(g.unmount)

	assert.Equal(t, 9, g.World.Len())
	assert.Equal(t, float32(60), g.Camera.Fovy)
	assert.Equal(t, "Grass", g.Controller.Selected())
	assert.Equal(t, interaction.Surface{Width: 1280, Height: 720}, g.Controller.Surface())
}

func TestNewRejectsBadPalette(t *testing.T) {
	cfg := config.Default()
	cfg.Palette = nil

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNotifyQueuesToast(t *testing.T) {
	g, err := New(config.Default())
	require.NoError(t, err)

	g.notify(loadedMessage)

	active := g.toasts.Active()
	require.Len(t, active, 1)
	assert.Equal(t, loadedMessage, active[0].Message)
}

func TestHeaderSelectsBlock(t *testing.T) {
	g, err := New(config.Default())
	require.NoError(t, err)

	g.header.OnSelect("Stone")
	assert.Equal(t, "Stone", g.Controller.Selected())
}

func TestMountUnmountDiscardsWorld(t *testing.T) {
	g, err := New(config.Default())
	require.NoError(t, err)

	g.mount()
	require.Equal(t, 121, g.World.Len())
	require.Equal(t, 6, g.bus.ListenerCount())

	g.bus.Click.Invoke(interaction.Click{Button: interaction.ButtonPrimary, X: 600, Y: 400})
	g.bus.Wheel.Invoke(interaction.Wheel{DeltaY: 300})
	require.Equal(t, 122, g.World.Len())

	g.unmount()

	assert.Zero(t, g.World.Len())
	assert.Empty(t, g.World.Colliders())
	assert.Zero(t, g.bus.ListenerCount())
	require.Len(t, g.World.Scene.GameObjects, 1, "only the light is left")

	g.mount()
	defer g.unmount()

	assert.Equal(t, 121, g.World.Len(), "remount starts from a fresh seed")
	assert.Equal(t, g.startPosition(), g.Camera.Position)
}

func TestMountFallsBackOnUnknownGroundBlock(t *testing.T) {
	cfg := config.Default()
	cfg.World.GroundRadius = 0
	cfg.World.GroundBlock = "Obsidian"

	g, err := New(cfg)
	require.NoError(t, err)
	g.mount()
	defer g.unmount()

	require.Equal(t, 1, g.World.Len())
	assert.Equal(t, g.World.Palette.First().Color, g.World.Blocks()[0].Color)
}
