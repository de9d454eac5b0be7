package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultToastTTL = 3 * time.Second
	maxToasts       = 4
)

type Toast struct {
	Message string
	Expires time.Time
}

// Toasts is a short queue of success notices shown in the corner of the window.
type Toasts struct {
	items []Toast
	ttl   time.Duration
	now   func() time.Time
}

func NewToasts(ttl time.Duration) *Toasts {
	return &Toasts{ttl: ttl, now: time.Now}
}

// Notify queues message, dropping the oldest notice once the queue is full.
func (t *Toasts) Notify(message string) {
	t.items = append(t.items, Toast{Message: message, Expires: t.now().Add(t.ttl)})
	if len(t.items) > maxToasts {
		t.items = t.items[len(t.items)-maxToasts:]
	}
}

// Active drops expired notices and returns the rest, oldest first.
func (t *Toasts) Active() []Toast {
	now := t.now()
	kept := t.items[:0]
	for _, item := range t.items {
		if now.Before(item.Expires) {
			kept = append(kept, item)
		}
	}
	t.items = kept
	return append([]Toast(nil), kept...)
}

func (t *Toasts) Draw(screenWidth, screenHeight int32) {
	const (
		width    = 320
		height   = 32
		margin   = 12
		fontSize = 18
	)
	active := t.Active()
	for i, item := range active {
		y := screenHeight - int32(len(active)-i)*(height+margin)
		x := screenWidth - width - margin
		rl.DrawRectangle(x, y, width, height, rl.NewColor(20, 20, 30, 220))
		rl.DrawRectangleLines(x, y, width, height, rl.NewColor(124, 179, 66, 255))
		rl.DrawText(item.Message, x+10, y+(height-fontSize)/2, fontSize, rl.RayWhite)
	}
}
