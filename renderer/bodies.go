// Package renderer draws world bodies with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/platformer/camera"
	"github.com/pthm-cable/platformer/components"
)

// Background is the clear colour behind the level.
var Background = rl.NewColor(216, 216, 255, 255)

// DrawBodies draws each body as a filled rectangle, skipping those off screen.
func DrawBodies(cam *camera.Camera, bodies []components.Drawable) {
	for _, b := range bodies {
		if !cam.IsVisible(b.Position.X, b.Position.Y, b.HalfExtents.X, b.HalfExtents.Y) {
			continue
		}
		rl.DrawRectangleRec(bodyRect(cam, b), b.Color)
	}
}

// DrawOutline draws a thin border around one body, used to mark the player.
func DrawOutline(cam *camera.Camera, b components.Drawable, color rl.Color) {
	rl.DrawRectangleLinesEx(bodyRect(cam, b), 2, color)
}

func bodyRect(cam *camera.Camera, b components.Drawable) rl.Rectangle {
	x, y, w, h := cam.RectToScreen(b.Position.X, b.Position.Y, b.HalfExtents.X, b.HalfExtents.Y)
	return rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
}
