package render3d

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/1siamBot/tripod-arena/engine/geom"
)

// Camera3D is a perspective chase camera that trails the followed target
type Camera3D struct {
	Offset mgl64.Vec3 // eye offset from the target at yaw 0
	FovY   float64    // degrees
	Near   float64
	Far    float64

	ScreenW, ScreenH int

	Eye    mgl64.Vec3
	Target mgl64.Vec3

	view     mgl64.Mat4
	proj     mgl64.Mat4
	viewProj mgl64.Mat4
	dirty    bool
}

// NewCamera3D creates the chase camera
func NewCamera3D(screenW, screenH int) *Camera3D {
	c := &Camera3D{
		Offset:  mgl64.Vec3{0, 8, 15},
		FovY:    75,
		Near:    0.1,
		Far:     1000,
		ScreenW: screenW,
		ScreenH: screenH,
		dirty:   true,
	}
	c.Follow(mgl64.Vec3{}, 0)
	return c
}

// Follow places the eye behind target, turned by yaw
func (c *Camera3D) Follow(target mgl64.Vec3, yaw float64) {
	c.Target = target
	c.Eye = target.Add(geom.YawQuat(yaw).Rotate(c.Offset))
	c.dirty = true
}

// Resize updates the viewport
func (c *Camera3D) Resize(w, h int) {
	if w == c.ScreenW && h == c.ScreenH {
		return
	}
	c.ScreenW, c.ScreenH = w, h
	c.dirty = true
}

func (c *Camera3D) update() {
	if !c.dirty {
		return
	}
	c.dirty = false

	aspect := 1.0
	if c.ScreenH > 0 {
		aspect = float64(c.ScreenW) / float64(c.ScreenH)
	}
	c.view = mgl64.LookAtV(c.Eye, c.Target, geom.Up)
	c.proj = mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
	c.viewProj = c.proj.Mul4(c.view)
}

// ViewProj returns the combined view-projection matrix
func (c *Camera3D) ViewProj() mgl64.Mat4 {
	c.update()
	return c.viewProj
}

// Project maps a world point to screen pixels. depth grows with distance;
// ok is false for points behind the near plane.
func (c *Camera3D) Project(p mgl64.Vec3) (sx, sy, depth float64, ok bool) {
	c.update()
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w < c.Near {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)
	sx = (ndc.X()*0.5 + 0.5) * float64(c.ScreenW)
	sy = (1 - (ndc.Y()*0.5 + 0.5)) * float64(c.ScreenH)
	return sx, sy, w, true
}
