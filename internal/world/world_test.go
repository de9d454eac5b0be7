package world

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededWorld(t *testing.T) *World {
	t.Helper()
	w := New(DefaultPalette())
	w.SeedGround(DefaultGroundRadius, w.Palette.ColorOf("Grass"))
	return w
}

func TestSeedGround(t *testing.T) {
	w := seededWorld(t)
	grass, ok := w.Palette.Lookup("Grass")
	require.True(t, ok)

	require.Equal(t, 121, w.Len())
	for _, b := range w.Blocks() {
		assert.Equal(t, 0, b.Position.Y)
		assert.GreaterOrEqual(t, b.Position.X, -5)
		assert.LessOrEqual(t, b.Position.X, 5)
		assert.GreaterOrEqual(t, b.Position.Z, -5)
		assert.LessOrEqual(t, b.Position.Z, 5)
		assert.Equal(t, grass.Color, b.Color)
	}
	assert.True(t, w.Contains(Coord{X: -5, Z: 5}))
	assert.False(t, w.Contains(Coord{X: 6}))
	assert.Len(t, w.Colliders(), 121)
	assert.Len(t, w.Scene.FindByTag(BlockTag), 121)
}

func TestPlaceAppends(t *testing.T) {
	w := seededWorld(t)
	before := w.Len()

	b := w.PlaceNamed(Coord{X: 1, Y: 1, Z: 2}, "Stone")

	assert.Equal(t, before+1, w.Len())
	assert.Equal(t, Coord{X: 1, Y: 1, Z: 2}, b.Position)
	assert.Equal(t, w.Palette.ColorOf("Stone"), b.Color)
	blocks := w.Blocks()
	assert.Same(t, b, blocks[len(blocks)-1])
	assert.Equal(t, b.Position.Vector(), b.Group().Transform.Position)
	assert.Same(t, w.Scene, b.Group().Scene)
}

func TestPlaceAllowsDuplicates(t *testing.T) {
	w := New(DefaultPalette())
	first := w.PlaceNamed(Coord{}, "Dirt")
	second := w.PlaceNamed(Coord{}, "Sand")

	assert.Equal(t, 2, w.Len())
	assert.NotEqual(t, first.ID, second.ID)

	require.True(t, w.Remove(rl.Vector3{}))
	require.Equal(t, 1, w.Len())
	assert.Same(t, second, w.Blocks()[0], "the first matching block is removed")
}

func TestPlaceNamedUnknownFallsBack(t *testing.T) {
	w := New(DefaultPalette())

	b := w.PlaceNamed(Coord{Y: 1}, "Obsidian")

	assert.Equal(t, w.Palette.First().Color, b.Color)
}

func TestRemoveWithinTolerance(t *testing.T) {
	w := seededWorld(t)
	target := w.PlaceNamed(Coord{X: 2, Y: 1, Z: -3}, "Wood")
	before := w.Len()

	removed := w.Remove(rl.Vector3{X: 2.3, Y: 0.6, Z: -3.49})

	assert.True(t, removed)
	assert.Equal(t, before-1, w.Len())
	for _, b := range w.Blocks() {
		assert.NotSame(t, target, b)
	}
	assert.Nil(t, target.Group().Scene)
	assert.False(t, w.Contains(Coord{X: 2, Y: 1, Z: -3}))
}

func TestRemoveNoMatch(t *testing.T) {
	w := seededWorld(t)
	before := w.Len()

	assert.False(t, w.Remove(rl.Vector3{X: 0, Y: 3, Z: 0}))
	assert.False(t, w.Remove(rl.Vector3{X: 0.5, Y: 0, Z: 0}), "tolerance is strict")
	assert.Equal(t, before, w.Len())

	empty := New(DefaultPalette())
	assert.False(t, empty.Remove(rl.Vector3{}))
}

func TestReset(t *testing.T) {
	w := seededWorld(t)

	groups := w.Scene.FindByTag(BlockTag)

	w.Reset()

	assert.Zero(t, w.Len())
	assert.Empty(t, w.Colliders())
	require.Len(t, w.Scene.GameObjects, 1, "light survives reset")
	assert.Same(t, w.Light.GetGameObject(), w.Scene.GameObjects[0])
	for _, g := range groups {
		assert.Nil(t, g.Scene)
	}

	w.SeedGround(1, w.Palette.First().Color)
	assert.Equal(t, 9, w.Len())
	assert.Len(t, w.Colliders(), 9)
}

func TestFloorCoord(t *testing.T) {
	assert.Equal(t, Coord{X: 0, Y: 1, Z: -1}, FloorCoord(rl.Vector3{X: 0.99, Y: 1, Z: -0.01}))
	assert.Equal(t, "(1, -2, 3)", Coord{X: 1, Y: -2, Z: 3}.String())
}

func TestBlockGroupStructure(t *testing.T) {
	w := New(DefaultPalette())
	b := w.PlaceNamed(Coord{X: 3}, "Grass")

	group := b.Group()
	require.Len(t, group.Children, 1)
	surface := group.Children[0]
	assert.Same(t, group, surface.Parent)
	assert.Equal(t, rl.Vector3{X: 3}, surface.WorldPosition())
	assert.True(t, group.HasTag(BlockTag))

	hits := w.Colliders()
	require.Len(t, hits, 1)
	assert.Same(t, surface, hits[0].GetGameObject())
}

func TestLightPointsAtOrigin(t *testing.T) {
	w := New(DefaultPalette())
	dir := w.Light.Direction()

	assert.InDelta(t, -0.57735, dir.X, 1e-4)
	assert.InDelta(t, -0.57735, dir.Y, 1e-4)
	assert.InDelta(t, -0.57735, dir.Z, 1e-4)
	assert.InDelta(t, 0.8, w.Light.GetColorFloat()[0], 1e-6)
	assert.InDelta(t, 0.6, w.Light.GetAmbientFloat()[0], 1e-6)
}
