package debugdraw

import "image/color"

var (
	axisColorX = color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
	axisColorY = color.RGBA{R: 0x40, G: 0xff, B: 0x40, A: 0xff}
	axisColorZ = color.RGBA{R: 0x40, G: 0x80, B: 0xff, A: 0xff}
)

// AddCube retains the 12 edges of an axis-aligned cube wireframe centered on
// center with the given half extent.
func (d *Drawer) AddCube(center Vec3, halfExtent float32, clr color.RGBA, time float32) {
	d.AddBox(center, Vec3{halfExtent, halfExtent, halfExtent}, clr, time)
}

// AddBox retains the 12 edges of an axis-aligned box wireframe. The top face
// is walked first starting at the (-x, +y, -z) corner, then the bottom face,
// then the four vertical edges as rays going up from the bottom corners.
func (d *Drawer) AddBox(center, halfExtents Vec3, clr color.RGBA, time float32) {
	sx := Vec3{2 * halfExtents.X(), 0, 0}
	sy := Vec3{0, 2 * halfExtents.Y(), 0}
	sz := Vec3{0, 0, 2 * halfExtents.Z()}

	start := Vec3{
		center.X() - halfExtents.X(),
		center.Y() + halfExtents.Y(),
		center.Z() - halfExtents.Z(),
	}

	quad := func(p Vec3) Vec3 {
		edges := [4]Vec3{sz, sx, sz.Mul(-1), sx.Mul(-1)}
		for _, e := range edges {
			next := p.Add(e)
			d.AddLine(p, next, clr, time)
			p = next
		}
		return p
	}

	p := quad(start)
	p = quad(p.Sub(sy))

	for _, step := range [4]Vec3{{}, sz, sx, sz.Mul(-1)} {
		p = p.Add(step)
		d.AddRay(p, sy, clr, time)
	}
}

// AddAxes retains an axis gizmo at origin: +X red, +Y green, +Z blue.
func (d *Drawer) AddAxes(origin Vec3, size float32, time float32) {
	d.AddRay(origin, Vec3{size, 0, 0}, axisColorX, time)
	d.AddRay(origin, Vec3{0, size, 0}, axisColorY, time)
	d.AddRay(origin, Vec3{0, 0, size}, axisColorZ, time)
}
