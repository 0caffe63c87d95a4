package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/linedrawer/debugdraw"
)

// CameraSource returns the camera that is active for the current frame.
type CameraSource func() debugdraw.Camera

// Overlay hosts a debugdraw.Drawer on an offscreen layer. The layer is only
// re-rendered on frames where the drawer asked for a redraw; other frames
// reuse the previous contents.
type Overlay struct {
	drawer *debugdraw.Drawer
	camera CameraSource

	off     *ebiten.Image
	surface ImageSurface

	dirty  bool
	passes int
}

// NewOverlay creates an overlay and its drawer. Extra options are passed
// through to debugdraw.NewDrawer; redraw hooks among them run after the
// overlay has marked itself dirty.
func NewOverlay(camera CameraSource, strokeWidth float32, antiAlias bool, opts ...debugdraw.Option) *Overlay {
	o := &Overlay{
		camera: camera,
		surface: ImageSurface{
			StrokeWidth: strokeWidth,
			AntiAlias:   antiAlias,
		},
	}
	all := append([]debugdraw.Option{debugdraw.WithRedrawFunc(o.queueRedraw)}, opts...)
	o.drawer = debugdraw.NewDrawer(all...)
	return o
}

func (o *Overlay) queueRedraw() {
	o.dirty = true
}

// Drawer returns the line store callers append to.
func (o *Overlay) Drawer() *debugdraw.Drawer {
	return o.drawer
}

// SetStroke changes the stroke used by later render passes.
func (o *Overlay) SetStroke(width float32, antiAlias bool) {
	o.surface.StrokeWidth = width
	o.surface.AntiAlias = antiAlias
}

// Update ticks the drawer. It satisfies frame.System.
func (o *Overlay) Update(dt float64) {
	o.drawer.Update(dt)
}

// Passes returns how many render passes have run.
func (o *Overlay) Passes() int {
	return o.passes
}

// Render runs a render pass into dst if one was requested since the last
// pass and reports whether it did. The active camera is looked up anew on
// every pass.
func (o *Overlay) Render(dst debugdraw.Surface) bool {
	if !o.dirty {
		return false
	}
	var cam debugdraw.Camera
	if o.camera != nil {
		cam = o.camera()
	}
	o.drawer.Draw(dst, cam)
	o.dirty = false
	o.passes++
	return true
}

// Draw renders into the offscreen layer when a pass is pending and
// composites the layer onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}

	b := screen.Bounds()
	if o.off == nil || o.off.Bounds().Dx() != b.Dx() || o.off.Bounds().Dy() != b.Dy() {
		if o.off != nil {
			o.off.Deallocate()
		}
		o.off = ebiten.NewImage(b.Dx(), b.Dy())
		o.dirty = true
	}

	if o.dirty {
		o.off.Clear()
		o.surface.Image = o.off
		o.Render(&o.surface)
	}

	screen.DrawImage(o.off, nil)
}
