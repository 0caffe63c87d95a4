package debugdraw

import "image/color"

// Camera projects world-space points into screen space for the render pass.
type Camera interface {
	// Project returns the screen-space position of a world point.
	Project(p Vec3) (x, y float32)
	// IsBehind reports whether p cannot be meaningfully projected onto the
	// current view.
	IsBehind(p Vec3) bool
}

// Surface is the 2D target of a render pass.
type Surface interface {
	StrokeLine(x0, y0, x1, y1 float32, clr color.Color)
}

// CameraFunc adapts a pair of functions to the Camera interface. It is
// handy for orthographic views and tests.
type CameraFunc struct {
	ProjectFunc  func(p Vec3) (float32, float32)
	IsBehindFunc func(p Vec3) bool
}

func (c CameraFunc) Project(p Vec3) (float32, float32) {
	if c.ProjectFunc == nil {
		return p.X(), p.Y()
	}
	return c.ProjectFunc(p)
}

func (c CameraFunc) IsBehind(p Vec3) bool {
	if c.IsBehindFunc == nil {
		return false
	}
	return c.IsBehindFunc(p)
}
