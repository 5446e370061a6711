package scene

import (
	"math"
	"testing"

	"github.com/hubastard/grovegui/engine/core"
)

// project maps a world point through a column-major matrix.
func project(m [16]float32, x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-4 }

func TestOrthoCameraVP(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(c *OrthoCamera2D)
		x, y         float32
		wantX, wantY float32
	}{
		{"corner at rest", func(*OrthoCamera2D) {}, 100, 50, 1, 1},
		{"origin at rest", func(*OrthoCamera2D) {}, 0, 0, 0, 0},
		{"moved", func(c *OrthoCamera2D) { c.Move(100, 50) }, 100, 50, 0, 0},
		{"moved corner", func(c *OrthoCamera2D) { c.Move(-100, 0) }, 0, 50, 1, 1},
		{"zoomed", func(c *OrthoCamera2D) { c.SetZoom(2) }, 50, 25, 1, 1},
		{"rotated", func(c *OrthoCamera2D) { c.Rotate(math.Pi / 2) }, 0, 50, 0.5, 0},
		{"resized", func(c *OrthoCamera2D) { c.SetViewportPixels(400, 100) }, 200, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrtho2D(200, 100)
			tt.setup(c)
			gx, gy := project(c.VP(), tt.x, tt.y)
			if !near(gx, tt.wantX) || !near(gy, tt.wantY) {
				t.Fatalf("(%v, %v) -> (%v, %v), want (%v, %v)", tt.x, tt.y, gx, gy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMulOrder(t *testing.T) {
	// Translate then scale differs from scale then translate.
	scale := [16]float32{2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	x, _ := project(mul(scale, translate(1, 0, 0)), 0, 0)
	if x != 2 {
		t.Fatalf("scale*translate maps origin to x=%v, want 2", x)
	}
	x, _ = project(mul(translate(1, 0, 0), scale), 0, 0)
	if x != 1 {
		t.Fatalf("translate*scale maps origin to x=%v, want 1", x)
	}
}

func TestZoomClamp(t *testing.T) {
	c := NewOrtho2D(10, 10)
	c.SetZoom(0)
	if c.Zoom != minZoom {
		t.Fatalf("zoom = %v, want %v", c.Zoom, minZoom)
	}
}

func TestControllerMovesWithKeys(t *testing.T) {
	e := &core.Engine{Input: core.NewInput()}
	c := NewOrtho2D(200, 100)
	c.SetZoom(2)
	cc := NewOrthoController2D(c)
	cc.MoveSpeed = 100

	e.Input.Handle(core.EventKey{Key: core.KeyD, Down: true})
	e.Input.Handle(core.EventKey{Key: core.KeyW, Down: true})
	cc.Update(e, 0.5)
	if !near(c.X, 25) || !near(c.Y, 25) {
		t.Fatalf("camera at (%v, %v), want (25, 25)", c.X, c.Y)
	}

	e.Input.Handle(core.EventKey{Key: core.KeyD, Down: false})
	e.Input.Handle(core.EventKey{Key: core.KeyW, Down: false})
	e.Input.Handle(core.EventKey{Key: core.KeyQ, Down: true})
	cc.Update(e, 0.5)
	if !near(c.X, 25) || !near(c.RotationRad, cc.RotSpeed*0.5) {
		t.Fatalf("camera at x=%v rot=%v", c.X, c.RotationRad)
	}
}

func TestControllerWheelZoom(t *testing.T) {
	c := NewOrtho2D(200, 100)
	cc := NewOrthoController2D(c)
	cc.ZoomSpeed = 2

	if !cc.HandleEvent(core.EventScroll{Yoff: 1}) || !near(c.Zoom, 2) {
		t.Fatalf("zoom = %v, want 2", c.Zoom)
	}
	if !cc.HandleEvent(core.EventScroll{Yoff: -2}) || !near(c.Zoom, 0.5) {
		t.Fatalf("zoom = %v, want 0.5", c.Zoom)
	}
	if cc.HandleEvent(core.EventScroll{Xoff: 1}) || cc.HandleEvent(core.EventText{Text: "x"}) {
		t.Fatal("only vertical wheel input zooms")
	}
}
