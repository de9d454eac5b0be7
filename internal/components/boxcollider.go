package components

import (
	"blockcraft/internal/engine"
	"blockcraft/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider makes its GameObject pickable by the ray caster.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

func (b *BoxCollider) GetAABB() physics.AABB {
	g := b.GetGameObject()
	center := rl.Vector3Add(g.WorldPosition(), b.Offset)
	scale := g.WorldScale()
	size := rl.Vector3{X: b.Size.X * scale.X, Y: b.Size.Y * scale.Y, Z: b.Size.Z * scale.Z}
	return physics.NewAABBFromCenter(center, size)
}

// CollectColliders gathers every active BoxCollider under the given roots.
func CollectColliders(roots []*engine.GameObject) []physics.Collider {
	var out []physics.Collider
	for _, root := range roots {
		root.Walk(func(g *engine.GameObject) {
			if !g.Active {
				return
			}
			if c := engine.GetComponent[*BoxCollider](g); c != nil {
				out = append(out, c)
			}
		})
	}
	return out
}
