package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	maxPitch    = 89.0
	minDistance = 0.5
)

// Orbit moves a Perspective camera on a sphere around its target.
type Orbit struct {
	// Yaw and Pitch are in degrees. Yaw 0 looks down -Z.
	Yaw      float32
	Pitch    float32
	Distance float32
	// Speed is the rotation rate in degrees per second.
	Speed float32
}

// OrbitFrom derives orbit angles from the camera's current eye and target.
func OrbitFrom(c *Perspective, speed float32) *Orbit {
	off := c.Eye.Sub(c.Target)
	dist := off.Len()
	o := &Orbit{Distance: dist, Speed: speed}
	if dist == 0 {
		o.Distance = minDistance
		return o
	}
	o.Pitch = mgl32.RadToDeg(float32(math.Asin(float64(off.Y() / dist))))
	o.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(off.X()), float64(off.Z()))))
	return o
}

// Rotate turns the orbit by the given direction scaled by Speed and dt.
// yawDir and pitchDir are usually -1, 0 or +1.
func (o *Orbit) Rotate(yawDir, pitchDir float32, dt float64) {
	step := o.Speed * float32(dt)
	o.Yaw = float32(math.Mod(float64(o.Yaw+yawDir*step), 360))
	o.Pitch = mgl32.Clamp(o.Pitch+pitchDir*step, -maxPitch, maxPitch)
}

// Zoom scales the orbit distance. Factors below 1 move closer.
func (o *Orbit) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	o.Distance = max(o.Distance*factor, minDistance)
}

// Apply places c.Eye according to the orbit around c.Target.
func (o *Orbit) Apply(c *Perspective) {
	yaw := float64(mgl32.DegToRad(o.Yaw))
	pitch := float64(mgl32.DegToRad(o.Pitch))
	off := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Sin(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Cos(yaw)),
	}
	c.Eye = c.Target.Add(off.Mul(o.Distance))
}
