package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
}

// RemoveGameObject removes g and any of its descendants that were added to the scene.
// Removing an object that is not in the scene is a no-op.
func (s *Scene) RemoveGameObject(g *GameObject) {
	g.Walk(s.removeOne)
}

func (s *Scene) removeOne(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			g.Scene = nil
			return
		}
	}
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Clear drops every object from the scene.
func (s *Scene) Clear() {
	for _, g := range s.GameObjects {
		g.Scene = nil
	}
	s.GameObjects = s.GameObjects[:0]
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update ticks every active object and its children once per frame.
func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
