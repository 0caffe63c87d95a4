package debugdraw

import "image/color"

// Drawer retains timed debug lines and renders them once per frame.
//
// Lines are appended by any caller during a frame. Update ages every line by
// the frame's elapsed time and decides whether a render pass is needed. Draw
// is the render pass: it projects and strokes every line whose endpoints are
// both in front of the camera, then evicts the lines whose lifetime went
// negative. A line therefore always gets drawn at least once, even with a
// zero or negative lifetime.
//
// Drawer is not safe for concurrent use.
type Drawer struct {
	store lineStore

	// evicted is set by a render pass that removed lines and consumed by
	// the next Update, so the frame that empties the store still gets one
	// redraw to clear the overlay.
	evicted bool

	redrawRequested bool
	onRedraw        func()
}

// Option configures a Drawer.
type Option func(*Drawer)

// WithRedrawFunc registers fn to be called whenever Update requests a
// render pass. Several hooks may be registered; they run in option order.
func WithRedrawFunc(fn func()) Option {
	return func(d *Drawer) {
		if fn == nil {
			return
		}
		prev := d.onRedraw
		if prev == nil {
			d.onRedraw = fn
			return
		}
		d.onRedraw = func() {
			prev()
			fn()
		}
	}
}

// NewDrawer creates an empty Drawer.
func NewDrawer(opts ...Option) *Drawer {
	d := &Drawer{}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// AddLine retains a line from start to end for time seconds.
func (d *Drawer) AddLine(start, end Vec3, clr color.RGBA, time float32) {
	d.store.add(Line{Start: start, End: end, Color: clr, Remaining: time})
}

// AddRay retains a line from origin to origin+dir for time seconds.
func (d *Drawer) AddRay(origin, dir Vec3, clr color.RGBA, time float32) {
	d.AddLine(origin, origin.Add(dir), clr, time)
}

// Update is the per-frame tick. dt is the elapsed time in seconds since the
// previous frame.
func (d *Drawer) Update(dt float64) {
	d.store.age(float32(dt))

	d.redrawRequested = false
	if d.store.len() > 0 || d.evicted {
		d.redrawRequested = true
		d.evicted = false
		if d.onRedraw != nil {
			d.onRedraw()
		}
	}
}

// RedrawRequested reports whether the last Update asked for a render pass.
func (d *Drawer) RedrawRequested() bool {
	return d.redrawRequested
}

// Draw is the render pass. cam is the camera active for this pass; a nil
// camera draws nothing but still evicts expired lines.
func (d *Drawer) Draw(dst Surface, cam Camera) {
	if dst != nil && cam != nil {
		for _, l := range d.store.lines {
			x0, y0 := cam.Project(l.Start)
			x1, y1 := cam.Project(l.End)
			if cam.IsBehind(l.Start) || cam.IsBehind(l.End) {
				continue
			}
			dst.StrokeLine(x0, y0, x1, y1, l.Color)
		}
	}

	if d.store.evict() > 0 {
		d.evicted = true
	}
}

// Len returns the number of retained lines.
func (d *Drawer) Len() int {
	return d.store.len()
}

// Lines returns a copy of the retained lines in draw order.
func (d *Drawer) Lines() []Line {
	if d.store.len() == 0 {
		return nil
	}
	out := make([]Line, d.store.len())
	copy(out, d.store.lines)
	return out
}

// Clear drops every retained line. The next Update still requests one
// redraw if anything was dropped.
func (d *Drawer) Clear() {
	if d.store.reset() > 0 {
		d.evicted = true
	}
}
