package debugdraw

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

type stroke struct {
	X0, Y0, X1, Y1 float32
	Color          color.Color
}

type recordingSurface struct {
	strokes []stroke
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1 float32, clr color.Color) {
	s.strokes = append(s.strokes, stroke{x0, y0, x1, y1, clr})
}

// flatCamera projects onto the XY plane and treats negative z as behind.
var flatCamera = CameraFunc{
	IsBehindFunc: func(p Vec3) bool { return p.Z() < 0 },
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestDrawerLifetime(t *testing.T) {
	cases := []struct {
		name      string
		time      float32
		ticks     []float64
		wantDraws int
	}{
		{"one_frame", 0, []float64{0.016, 0.016, 0.016}, 1},
		{"negative_time_drawn_once", -1, []float64{0.016, 0.016}, 1},
		{"exact_boundary_still_draws", 1, []float64{0.5, 0.5, 0.5}, 3},
		{"two_frames", 0.02, []float64{0.016, 0.016, 0.016}, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := NewDrawer()
			d.AddLine(Vec3{0, 0, 0}, Vec3{1, 0, 0}, red, c.time)

			surf := &recordingSurface{}
			for _, dt := range c.ticks {
				d.Update(dt)
				d.Draw(surf, flatCamera)
			}
			if len(surf.strokes) != c.wantDraws {
				t.Fatalf("expected %d draws, got %d", c.wantDraws, len(surf.strokes))
			}
			if d.Len() != 0 {
				t.Fatalf("expected empty store, got %d lines", d.Len())
			}
		})
	}
}

func TestDrawerAgingExample(t *testing.T) {
	d := NewDrawer()
	d.AddLine(Vec3{0, 0, 0}, Vec3{1, 0, 0}, red, 1.0)
	surf := &recordingSurface{}

	d.Update(0.5)
	d.Draw(surf, flatCamera)
	lines := d.Lines()
	if len(lines) != 1 || !approx(lines[0].Remaining, 0.5) {
		t.Fatalf("expected one line with 0.5s left, got %+v", lines)
	}

	d.Update(0.6)
	if got := d.Lines()[0].Remaining; !approx(got, -0.1) {
		t.Fatalf("expected -0.1s left, got %v", got)
	}
	d.Draw(surf, flatCamera)
	if len(surf.strokes) != 2 {
		t.Fatalf("expected the expiring line to be drawn once more, got %d draws", len(surf.strokes))
	}
	if d.Len() != 0 {
		t.Fatalf("expected line evicted after draw")
	}
}

func TestDrawerRedrawRequests(t *testing.T) {
	requests := 0
	d := NewDrawer(WithRedrawFunc(func() { requests++ }))
	surf := &recordingSurface{}

	frame := func() bool {
		d.Update(0.016)
		req := d.RedrawRequested()
		d.Draw(surf, flatCamera)
		return req
	}

	if frame() {
		t.Fatalf("idle empty drawer should not request a redraw")
	}

	d.AddLine(Vec3{}, Vec3{1, 1, 0}, red, 0)
	got := []bool{frame(), frame(), frame(), frame()}
	want := []bool{true, true, false, false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("redraw sequence mismatch (-want +got):\n%s", diff)
	}
	if requests != 2 {
		t.Fatalf("expected 2 redraw callbacks, got %d", requests)
	}
}

func TestDrawerChainsRedrawFuncs(t *testing.T) {
	var calls []string
	d := NewDrawer(
		WithRedrawFunc(func() { calls = append(calls, "first") }),
		WithRedrawFunc(nil),
		WithRedrawFunc(func() { calls = append(calls, "second") }),
	)
	d.AddLine(Vec3{}, Vec3{1, 0, 0}, red, 0)
	d.Update(0.016)

	if diff := cmp.Diff([]string{"first", "second"}, calls); diff != "" {
		t.Fatalf("redraw hooks mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawerCoalescesAppends(t *testing.T) {
	requests := 0
	d := NewDrawer(WithRedrawFunc(func() { requests++ }))
	for i := 0; i < 10; i++ {
		d.AddLine(Vec3{}, Vec3{float32(i), 0, 0}, red, 1)
	}
	d.Update(0.016)
	if requests != 1 {
		t.Fatalf("expected a single redraw request, got %d", requests)
	}
}

func TestDrawerSkipsBehindCamera(t *testing.T) {
	cases := []struct {
		name       string
		start, end Vec3
		wantDrawn  bool
	}{
		{"both_in_front", Vec3{0, 0, 1}, Vec3{1, 0, 1}, true},
		{"start_behind", Vec3{0, 0, -1}, Vec3{1, 0, 1}, false},
		{"end_behind", Vec3{0, 0, 1}, Vec3{1, 0, -1}, false},
		{"both_behind", Vec3{0, 0, -1}, Vec3{1, 0, -1}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := NewDrawer()
			d.AddLine(c.start, c.end, red, 0.5)
			surf := &recordingSurface{}

			d.Update(0.1)
			d.Draw(surf, flatCamera)
			if got := len(surf.strokes) == 1; got != c.wantDrawn {
				t.Fatalf("drawn=%v, want %v", got, c.wantDrawn)
			}
			if d.Len() != 1 {
				t.Fatalf("culled line must stay in the store until it expires")
			}

			d.Update(0.5)
			d.Draw(surf, flatCamera)
			if d.Len() != 0 {
				t.Fatalf("culled line must still be evicted when expired")
			}
		})
	}
}

func TestDrawerDrawOrderAndProjection(t *testing.T) {
	d := NewDrawer()
	d.AddLine(Vec3{0, 0, 0}, Vec3{1, 2, 0}, red, 0)
	d.AddLine(Vec3{3, 4, 0}, Vec3{5, 6, 0}, blue, 0)

	cam := CameraFunc{
		ProjectFunc: func(p Vec3) (float32, float32) { return p.X() * 10, p.Y() * 10 },
	}
	surf := &recordingSurface{}
	d.Update(0)
	d.Draw(surf, cam)

	want := []stroke{
		{0, 0, 10, 20, red},
		{30, 40, 50, 60, blue},
	}
	if diff := cmp.Diff(want, surf.strokes); diff != "" {
		t.Fatalf("strokes mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawerEvictionKeepsOrder(t *testing.T) {
	d := NewDrawer()
	d.AddLine(Vec3{0, 0, 0}, Vec3{1, 0, 0}, red, 1)
	d.AddLine(Vec3{1, 0, 0}, Vec3{2, 0, 0}, red, 0)
	d.AddLine(Vec3{2, 0, 0}, Vec3{3, 0, 0}, blue, 1)
	d.AddLine(Vec3{3, 0, 0}, Vec3{4, 0, 0}, blue, 0)

	d.Update(0.1)
	d.Draw(nil, flatCamera)

	got := d.Lines()
	want := []Line{
		{Start: Vec3{0, 0, 0}, End: Vec3{1, 0, 0}, Color: red, Remaining: 0.9},
		{Start: Vec3{2, 0, 0}, End: Vec3{3, 0, 0}, Color: blue, Remaining: 0.9},
	}
	opt := cmp.Comparer(approx)
	if diff := cmp.Diff(want, got, opt); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawerNilCameraStillEvicts(t *testing.T) {
	d := NewDrawer()
	d.AddLine(Vec3{}, Vec3{1, 0, 0}, red, 0)
	surf := &recordingSurface{}

	d.Update(0.016)
	d.Draw(surf, nil)
	if len(surf.strokes) != 0 {
		t.Fatalf("expected nothing drawn without a camera")
	}
	if d.Len() != 0 {
		t.Fatalf("expected expired line evicted without a camera")
	}
}

func TestDrawerWithoutRenderPassKeepsLines(t *testing.T) {
	d := NewDrawer()
	d.AddLine(Vec3{}, Vec3{1, 0, 0}, red, 0)
	for i := 0; i < 5; i++ {
		d.Update(1)
	}
	if d.Len() != 1 {
		t.Fatalf("eviction only happens in the render pass, got %d lines", d.Len())
	}
}

func TestDrawerClear(t *testing.T) {
	d := NewDrawer()
	d.AddLine(Vec3{}, Vec3{1, 0, 0}, red, 10)
	d.Clear()
	if d.Len() != 0 {
		t.Fatalf("expected empty store after Clear")
	}

	d.Update(0.016)
	if !d.RedrawRequested() {
		t.Fatalf("expected one redraw after Clear")
	}
	d.Update(0.016)
	if d.RedrawRequested() {
		t.Fatalf("expected no redraw on idle frame")
	}
}

func TestAddRayMatchesAddLine(t *testing.T) {
	origin := Vec3{1, 2, 3}
	dir := Vec3{-4, 0.5, 2}

	a := NewDrawer()
	a.AddRay(origin, dir, red, 0.25)
	b := NewDrawer()
	b.AddLine(origin, origin.Add(dir), red, 0.25)

	if diff := cmp.Diff(b.Lines(), a.Lines()); diff != "" {
		t.Fatalf("ray mismatch (-line +ray):\n%s", diff)
	}
}

func TestDump(t *testing.T) {
	d := NewDrawer()
	d.AddLine(Vec3{0, 0, 0}, Vec3{1, 0, 0}, red, 0.5)

	var sb strings.Builder
	if err := d.Dump(&sb); err != nil {
		t.Fatalf("dump: %v", err)
	}
	want := "0: (0.000, 0.000, 0.000) -> (1.000, 0.000, 0.000) #ff0000ff ttl=0.500\n"
	if sb.String() != want {
		t.Fatalf("unexpected dump %q", sb.String())
	}
}
