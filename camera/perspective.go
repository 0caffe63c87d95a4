package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/linedrawer/debugdraw"
)

// Perspective is a pinhole camera looking from Eye towards Target.
type Perspective struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	// FovY is the vertical field of view in degrees.
	FovY float32
	Near float32
	Far  float32

	// Width and Height are the screen size in pixels.
	Width  int
	Height int
}

var _ debugdraw.Camera = (*Perspective)(nil)

// NewPerspective creates a camera with a +Y up vector.
func NewPerspective(eye, target mgl32.Vec3, fovY, near, far float32, width, height int) *Perspective {
	return &Perspective{
		Eye:    eye,
		Target: target,
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   fovY,
		Near:   near,
		Far:    far,
		Width:  width,
		Height: height,
	}
}

// SetScreenSize updates the viewport used for projection.
func (c *Perspective) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Width = w
	c.Height = h
}

func (c *Perspective) view() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

func (c *Perspective) projection() mgl32.Mat4 {
	aspect := float32(1)
	if c.Height > 0 {
		aspect = float32(c.Width) / float32(c.Height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// Forward returns the unit view direction.
func (c *Perspective) Forward() mgl32.Vec3 {
	return c.Target.Sub(c.Eye).Normalize()
}

// Project maps p to screen pixels with the origin at the top left.
func (c *Perspective) Project(p mgl32.Vec3) (float32, float32) {
	win := mgl32.Project(p, c.view(), c.projection(), 0, 0, c.Width, c.Height)
	return win.X(), float32(c.Height) - win.Y()
}

// IsBehind reports whether p lies behind the near plane.
func (c *Perspective) IsBehind(p mgl32.Vec3) bool {
	return c.Forward().Dot(p.Sub(c.Eye)) < c.Near
}

// Ray returns the world-space ray through the screen pixel (x, y), starting
// on the near plane.
func (c *Perspective) Ray(x, y float32) (origin, dir mgl32.Vec3, err error) {
	view, proj := c.view(), c.projection()
	wy := float32(c.Height) - y
	nearPt, err := mgl32.UnProject(mgl32.Vec3{x, wy, 0}, view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return mgl32.Vec3{}, mgl32.Vec3{}, err
	}
	farPt, err := mgl32.UnProject(mgl32.Vec3{x, wy, 1}, view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return mgl32.Vec3{}, mgl32.Vec3{}, err
	}
	return nearPt, farPt.Sub(nearPt).Normalize(), nil
}
