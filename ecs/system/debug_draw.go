package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lodestone2d/lodestone/ecs"
	"github.com/lodestone2d/lodestone/ecs/component"
	"github.com/lodestone2d/lodestone/physics"
)

var (
	debugStaticColor  = color.RGBA{R: 0x44, G: 0xaa, B: 0x44, A: 0xff}
	debugDynamicColor = color.RGBA{R: 0xdd, G: 0xdd, B: 0x55, A: 0xff}
	debugRayColor     = color.RGBA{R: 0x66, G: 0x88, B: 0xff, A: 0xff}
	debugHitColor     = color.RGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff}
)

// DebugCamera maps world coordinates (Y up) to screen pixels (Y down).
type DebugCamera struct {
	Scale   float64 // pixels per world unit
	OriginX float64 // screen x of world origin
	OriginY float64 // screen y of world origin
}

func (c DebugCamera) screen(p physics.Vec2) (float32, float32) {
	return float32(c.OriginX + p.X*c.Scale), float32(c.OriginY - p.Y*c.Scale)
}

// DrawPhysicsDebug outlines every rigid body in the world.
func DrawPhysicsDebug(w *ecs.World, screen *ebiten.Image, cam DebugCamera) {
	if w == nil || screen == nil {
		return
	}
	ecs.ForEach2(w, component.RigidBodyComponent, component.TransformComponent, func(_ ecs.Entity, rb *component.RigidBody, tf *component.Transform) {
		clr := debugDynamicColor
		if rb.Mode == physics.BodyStatic {
			clr = debugStaticColor
		}
		cx, cy := cam.screen(physics.Vec2{X: tf.X, Y: tf.Y})

		if rb.Shape == component.ShapeCircle {
			vector.StrokeCircle(screen, cx, cy, float32(rb.Radius*cam.Scale), 1, clr, true)
			return
		}
		hw := float32(rb.Width / 2 * cam.Scale)
		hh := float32(rb.Height / 2 * cam.Scale)
		vector.StrokeRect(screen, cx-hw, cy-hh, hw*2, hh*2, 1, clr, true)
	})
}

// DrawRayDebug draws a cast segment and its ordered hits.
func DrawRayDebug(screen *ebiten.Image, cam DebugCamera, from, to physics.Vec2, hits []physics.RayHit) {
	if screen == nil {
		return
	}
	x0, y0 := cam.screen(from)
	x1, y1 := cam.screen(to)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, debugRayColor, true)

	for _, h := range hits {
		hx, hy := cam.screen(h.Point)
		vector.StrokeCircle(screen, hx, hy, 3, 1, debugHitColor, true)
		nx, ny := cam.screen(h.Point.Add(h.Normal.Scale(0.5)))
		vector.StrokeLine(screen, hx, hy, nx, ny, 1, debugHitColor, true)
	}
}
