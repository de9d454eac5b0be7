package physics

import (
	"math"
	"sort"

	"blockcraft/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is anything the ray caster can test against.
type Collider interface {
	GetAABB() AABB
	GetGameObject() *engine.GameObject
}

type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// RaycastAll returns every front-face intersection within maxDistance, nearest first.
func RaycastAll(ray Ray, colliders []Collider, maxDistance float32) []RaycastHit {
	direction := rl.Vector3Normalize(ray.Direction)
	if direction == (rl.Vector3{}) {
		return nil
	}

	var hits []RaycastHit
	for _, c := range colliders {
		hit, ok := raycastBox(ray.Origin, direction, c.GetAABB(), maxDistance)
		if !ok {
			continue
		}
		hit.GameObject = c.GetGameObject()
		hits = append(hits, hit)
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// Raycast returns the nearest hit only.
func Raycast(ray Ray, colliders []Collider, maxDistance float32) (RaycastHit, bool) {
	hits := RaycastAll(ray, colliders, maxDistance)
	if len(hits) == 0 {
		return RaycastHit{}, false
	}
	return hits[0], true
}

// raycastBox is a slab test. Rays starting inside the box report no hit, matching
// single-sided surface picking.
func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{direction.X, direction.Y, direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)
	enterAxis := -1

	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (lo[axis] - o[axis]) / d[axis]
		t2 := (hi[axis] - o[axis]) / d[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
			enterAxis = axis
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if enterAxis < 0 || tmin < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	var n [3]float32
	if d[enterAxis] > 0 {
		n[enterAxis] = -1
	} else {
		n[enterAxis] = 1
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, tmin))
	return RaycastHit{
		Point:    point,
		Normal:   rl.Vector3{X: n[0], Y: n[1], Z: n[2]},
		Distance: tmin,
	}, true
}
