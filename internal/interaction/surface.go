package interaction

// Surface is the bounding rectangle of the drawing surface in window pixels.
type Surface struct {
	X, Y          float32
	Width, Height float32
}

// NDC converts a window pixel to normalized device coordinates relative to the surface:
// x grows right, y grows up, both span [-1, 1] across the surface.
func (s Surface) NDC(px, py float32) (float32, float32) {
	if s.Width == 0 || s.Height == 0 {
		return 0, 0
	}
	x := (px-s.X)/s.Width*2 - 1
	y := -((py-s.Y)/s.Height)*2 + 1
	return x, y
}

// Contains reports whether the window pixel (px, py) lies on the surface.
func (s Surface) Contains(px, py float32) bool {
	return px >= s.X && px < s.X+s.Width && py >= s.Y && py < s.Y+s.Height
}
