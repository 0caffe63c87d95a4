package physicsdebug

import (
	"math/rand"

	"github.com/jakecoffman/cp"
)

const (
	demoGroundHalfWidth = 6.0
	demoSpawnHeight     = 6.0
	demoMaxBodies       = 24
	demoSpawnInterval   = 0.75
	demoKillHeight      = -10.0
)

// Demo is a small chipmunk space whose shapes are mirrored into the debug
// overlay every frame. It satisfies frame.System.
type Demo struct {
	space  *cp.Space
	drawer *Drawer
	rng    *rand.Rand

	bodies     []*cp.Body
	spawnTimer float64
}

// NewDemo builds a space with a tilted floor and two walls.
func NewDemo(drawer *Drawer, seed int64) *Demo {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: -9.8})

	static := space.StaticBody
	segments := [][2]cp.Vector{
		{{X: -demoGroundHalfWidth, Y: -1}, {X: demoGroundHalfWidth, Y: -1.5}},
		{{X: -demoGroundHalfWidth, Y: -1}, {X: -demoGroundHalfWidth, Y: 3}},
		{{X: demoGroundHalfWidth, Y: -1.5}, {X: demoGroundHalfWidth, Y: 3}},
	}
	for _, seg := range segments {
		shape := space.AddShape(cp.NewSegment(static, seg[0], seg[1], 0.05))
		shape.SetFriction(0.8)
		shape.SetElasticity(0.3)
	}

	return &Demo{
		space:  space,
		drawer: drawer,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Space exposes the underlying chipmunk space.
func (d *Demo) Space() *cp.Space {
	return d.space
}

// Bodies returns the number of live dynamic bodies.
func (d *Demo) Bodies() int {
	return len(d.bodies)
}

// Spawn drops a box or a ball at x.
func (d *Demo) Spawn(x float64) {
	if len(d.bodies) >= demoMaxBodies {
		return
	}

	const mass = 1.0
	var body *cp.Body
	var shape *cp.Shape
	if d.rng.Intn(2) == 0 {
		size := 0.3 + d.rng.Float64()*0.4
		body = cp.NewBody(mass, cp.MomentForBox(mass, size, size))
		shape = cp.NewBox(body, size, size, 0)
	} else {
		radius := 0.15 + d.rng.Float64()*0.25
		body = cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
		shape = cp.NewCircle(body, radius, cp.Vector{})
	}
	body.SetPosition(cp.Vector{X: x, Y: demoSpawnHeight})
	body.SetAngularVelocity(d.rng.Float64()*4 - 2)
	shape.SetFriction(0.6)
	shape.SetElasticity(0.2)

	d.space.AddBody(body)
	d.space.AddShape(shape)
	d.bodies = append(d.bodies, body)
}

func (d *Demo) Update(dt float64) {
	if dt > 0 {
		d.spawnTimer += dt
		if d.spawnTimer >= demoSpawnInterval {
			d.spawnTimer = 0
			d.Spawn((d.rng.Float64()*2 - 1) * (demoGroundHalfWidth - 1))
		}
		d.space.Step(dt)
		d.removeFallen()
	}
	d.drawer.DrawSpace(d.space)
}

func (d *Demo) removeFallen() {
	kept := d.bodies[:0]
	for _, body := range d.bodies {
		if body.Position().Y >= demoKillHeight {
			kept = append(kept, body)
			continue
		}
		var shapes []*cp.Shape
		body.EachShape(func(shape *cp.Shape) {
			shapes = append(shapes, shape)
		})
		for _, shape := range shapes {
			d.space.RemoveShape(shape)
		}
		d.space.RemoveBody(body)
	}
	clear(d.bodies[len(kept):])
	d.bodies = kept
}
