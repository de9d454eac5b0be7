package world

import (
	"fmt"
	"math"

	"blockcraft/internal/components"
	"blockcraft/internal/engine"
	"blockcraft/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

const (
	BlockTag = "block"

	// RemoveTolerance is the per-axis distance under which a point matches a block.
	RemoveTolerance = 0.5

	DefaultGroundRadius = 5
)

// Coord is an integer grid cell. A block at Coord c occupies the unit cube centered on c.
type Coord struct {
	X, Y, Z int
}

func (c Coord) Vector() rl.Vector3 {
	return rl.Vector3{X: float32(c.X), Y: float32(c.Y), Z: float32(c.Z)}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// FloorCoord floors each axis of v.
func FloorCoord(v rl.Vector3) Coord {
	return Coord{
		X: int(math.Floor(float64(v.X))),
		Y: int(math.Floor(float64(v.Y))),
		Z: int(math.Floor(float64(v.Z))),
	}
}

// Block is a placed unit cube.
type Block struct {
	ID       uuid.UUID
	Position Coord
	Color    rl.Color
	group    *engine.GameObject
}

// Group is the scene group that renders this block.
func (b *Block) Group() *engine.GameObject {
	return b.group
}

// World is the insertion-ordered collection of placed blocks. Placement does not check for
// an existing block at the same coordinate, so overlapping blocks are possible.
type World struct {
	Scene   *engine.Scene
	Palette *Palette
	Light   *components.DirectionalLight
	sun     *engine.GameObject
	blocks  []*Block
}

func New(palette *Palette) *World {
	w := &World{
		Scene:   engine.NewScene("Main"),
		Palette: palette,
	}
	w.addLight()
	return w
}

func (w *World) addLight() {
	w.sun = engine.NewGameObject("DirectionalLight")
	w.sun.Transform.Position = rl.Vector3{X: 10, Y: 10, Z: 10}
	w.Light = components.NewDirectionalLight()
	w.sun.AddComponent(w.Light)
	w.Scene.AddGameObject(w.sun)
}

// SeedGround lays a flat square of blocks at y=0 with x and z in [-radius, radius].
func (w *World) SeedGround(radius int, color rl.Color) {
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			w.Place(Coord{X: x, Y: 0, Z: z}, color)
		}
	}
}

// Place appends a block at pos and adds its geometry to the scene.
func (w *World) Place(pos Coord, color rl.Color) *Block {
	b := &Block{
		ID:       uuid.New(),
		Position: pos,
		Color:    color,
	}
	b.group = newBlockGroup(b)
	w.Scene.AddGameObject(b.group)
	b.group.Start()
	w.blocks = append(w.blocks, b)
	return b
}

// PlaceNamed places a block colored by the palette entry called name, falling back to the
// first palette entry.
func (w *World) PlaceNamed(pos Coord, name string) *Block {
	return w.Place(pos, w.Palette.ColorOf(name))
}

func newBlockGroup(b *Block) *engine.GameObject {
	group := engine.NewGameObject("Block_" + b.ID.String())
	group.Tags = []string{BlockTag}
	group.Transform.Position = b.Position.Vector()

	surface := engine.NewGameObject("Surface")
	surface.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	surface.AddComponent(components.NewCubeRenderer(b.Color))
	group.AddChild(surface)
	return group
}

// Remove deletes the first block whose stored position is within RemoveTolerance of point on
// every axis. It reports whether a block was removed.
func (w *World) Remove(point rl.Vector3) bool {
	i := w.indexNear(point)
	if i < 0 {
		return false
	}
	b := w.blocks[i]
	w.Scene.RemoveGameObject(b.group)
	w.blocks = append(w.blocks[:i], w.blocks[i+1:]...)
	return true
}

// Contains reports whether any block's stored position equals c.
func (w *World) Contains(c Coord) bool {
	for _, b := range w.blocks {
		if b.Position == c {
			return true
		}
	}
	return false
}

func (w *World) indexNear(point rl.Vector3) int {
	for i, b := range w.blocks {
		p := b.Position.Vector()
		if abs32(p.X-point.X) < RemoveTolerance &&
			abs32(p.Y-point.Y) < RemoveTolerance &&
			abs32(p.Z-point.Z) < RemoveTolerance {
			return i
		}
	}
	return -1
}

// Blocks returns the blocks in insertion order. The slice is a copy.
func (w *World) Blocks() []*Block {
	return append([]*Block(nil), w.blocks...)
}

func (w *World) Len() int {
	return len(w.blocks)
}

// Colliders returns the pickable surfaces of every block.
func (w *World) Colliders() []physics.Collider {
	return components.CollectColliders(w.Scene.FindByTag(BlockTag))
}

// Reset discards every block and clears the scene down to the light.
func (w *World) Reset() {
	w.Scene.Clear()
	w.Scene.AddGameObject(w.sun)
	w.blocks = nil
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
