package physicsdebug

import (
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/linedrawer/common"
	"github.com/milk9111/linedrawer/debugdraw"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 0.1
)

// LineSink receives the segments produced while walking a space.
type LineSink interface {
	AddLine(start, end debugdraw.Vec3, clr color.RGBA, time float32)
}

// Drawer implements cp.Drawer by turning every outline into a debug line on
// the plane z = Z.
type Drawer struct {
	Sink LineSink
	Z    float32
	// Time is the lifetime given to emitted lines.
	Time float32
	// Color overrides the outline colors chipmunk passes in when its alpha
	// is non-zero.
	Color color.RGBA
}

var _ cp.Drawer = (*Drawer)(nil)

// DrawSpace emits debug lines for every shape in space.
func (d *Drawer) DrawSpace(space *cp.Space) {
	if d == nil || d.Sink == nil || space == nil {
		return
	}
	cp.DrawSpace(space, d)
}

func (d *Drawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *Drawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *Drawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *Drawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 || count > len(verts) {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *Drawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *Drawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_CONSTRAINTS
}

func (d *Drawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

func (d *Drawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *Drawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *Drawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *Drawer) Data() interface{} {
	return nil
}

func (d *Drawer) drawLine(a, b cp.Vector, c cp.FColor) {
	if d.Sink == nil {
		return
	}
	clr := d.Color
	if clr.A == 0 {
		clr = toRGBA(c)
	}
	d.Sink.AddLine(
		debugdraw.Vec3{float32(a.X), float32(a.Y), d.Z},
		debugdraw.Vec3{float32(b.X), float32(b.Y), d.Z},
		clr,
		d.Time,
	)
}

func (d *Drawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *Drawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toRGBA(c cp.FColor) color.RGBA {
	return common.FloatRGBA(c.R, c.G, c.B, c.A)
}
