package scene

import (
	"math"

	"github.com/hubastard/grovegui/engine/core"
)

// OrthoController2D: WASD move, Q/E rotate, wheel zoom.
type OrthoController2D struct {
	MoveSpeed float32 // screen pixels per second, independent of zoom
	RotSpeed  float32 // radians per second
	ZoomSpeed float32 // zoom factor per wheel notch
	Camera    *OrthoCamera2D
}

func NewOrthoController2D(cam *OrthoCamera2D) *OrthoController2D {
	return &OrthoController2D{
		MoveSpeed: 300,
		RotSpeed:  2.0,
		ZoomSpeed: 1.2,
		Camera:    cam,
	}
}

func (cc *OrthoController2D) Update(e *core.Engine, dt float32) {
	in := e.Input
	speed := cc.MoveSpeed * dt / cc.Camera.Zoom
	rotSpeed := cc.RotSpeed * dt

	if in.IsKeyDown(core.KeyW) {
		cc.Camera.Move(0, speed)
	}
	if in.IsKeyDown(core.KeyS) {
		cc.Camera.Move(0, -speed)
	}
	if in.IsKeyDown(core.KeyA) {
		cc.Camera.Move(-speed, 0)
	}
	if in.IsKeyDown(core.KeyD) {
		cc.Camera.Move(speed, 0)
	}
	if in.IsKeyDown(core.KeyQ) {
		cc.Camera.Rotate(rotSpeed)
	}
	if in.IsKeyDown(core.KeyE) {
		cc.Camera.Rotate(-rotSpeed)
	}
}

// HandleEvent zooms on wheel input and reports whether it used ev.
func (cc *OrthoController2D) HandleEvent(ev core.Event) bool {
	s, ok := ev.(core.EventScroll)
	if !ok || s.Yoff == 0 {
		return false
	}
	factor := float32(math.Pow(float64(cc.ZoomSpeed), s.Yoff))
	cc.Camera.SetZoom(cc.Camera.Zoom * factor)
	return true
}
