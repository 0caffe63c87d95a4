package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func testCamera() *Perspective {
	return NewPerspective(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}, 60, 0.1, 100, 800, 600)
}

func TestPerspectiveProject(t *testing.T) {
	c := testCamera()

	t.Run("target_is_screen_center", func(t *testing.T) {
		x, y := c.Project(mgl32.Vec3{0, 0, 0})
		if !near(x, 400, 0.01) || !near(y, 300, 0.01) {
			t.Fatalf("expected (400,300), got (%v,%v)", x, y)
		}
	})

	t.Run("up_is_screen_up", func(t *testing.T) {
		_, y := c.Project(mgl32.Vec3{0, 1, 0})
		if y >= 300 {
			t.Fatalf("world +Y should project above center, got y=%v", y)
		}
	})

	t.Run("right_is_screen_right", func(t *testing.T) {
		x, _ := c.Project(mgl32.Vec3{1, 0, 0})
		if x <= 400 {
			t.Fatalf("world +X should project right of center, got x=%v", x)
		}
	})
}

func TestPerspectiveIsBehind(t *testing.T) {
	c := testCamera()
	cases := []struct {
		name string
		p    mgl32.Vec3
		want bool
	}{
		{"in_front", mgl32.Vec3{0, 0, 0}, false},
		{"off_axis_in_front", mgl32.Vec3{50, -20, 5}, false},
		{"behind_eye", mgl32.Vec3{0, 0, 11}, true},
		{"at_eye", mgl32.Vec3{0, 0, 10}, true},
		{"inside_near_plane", mgl32.Vec3{0, 0, 9.95}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.IsBehind(tc.p); got != tc.want {
				t.Fatalf("IsBehind(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestOrbit(t *testing.T) {
	c := testCamera()
	o := OrbitFrom(c, 90)
	if !near(o.Distance, 10, 1e-4) || !near(o.Yaw, 0, 1e-4) || !near(o.Pitch, 0, 1e-4) {
		t.Fatalf("unexpected orbit %+v", o)
	}

	o.Rotate(1, 0, 1)
	o.Apply(c)
	if !near(c.Eye.X(), 10, 1e-3) || !near(c.Eye.Z(), 0, 1e-3) {
		t.Fatalf("expected eye at (10,0,0) after 90 degree yaw, got %v", c.Eye)
	}

	o.Rotate(0, 1, 10)
	if o.Pitch != maxPitch {
		t.Fatalf("pitch should clamp to %v, got %v", maxPitch, o.Pitch)
	}

	o.Zoom(0.01)
	if o.Distance != minDistance {
		t.Fatalf("distance should clamp to %v, got %v", minDistance, o.Distance)
	}
}

func TestPerspectiveRay(t *testing.T) {
	c := testCamera()
	origin, dir, err := c.Ray(400, 300)
	if err != nil {
		t.Fatalf("ray: %v", err)
	}
	if !near(dir.X(), 0, 1e-3) || !near(dir.Y(), 0, 1e-3) || !near(dir.Z(), -1, 1e-3) {
		t.Fatalf("center ray should point down -Z, got %v", dir)
	}
	if !near(origin.Z(), 9.9, 1e-2) {
		t.Fatalf("ray should start on the near plane, got %v", origin)
	}

	_, up, err := c.Ray(400, 0)
	if err != nil {
		t.Fatalf("ray: %v", err)
	}
	if up.Y() <= 0 {
		t.Fatalf("top of screen should aim up, got %v", up)
	}
}
