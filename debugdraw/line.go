package debugdraw

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a world-space point or direction.
type Vec3 = mgl32.Vec3

// Line is one retained debug line.
type Line struct {
	Start Vec3
	End   Vec3
	// Color is alpha-premultiplied, as color.RGBA requires.
	Color color.RGBA
	// Remaining is the lifetime left in seconds. The line is evicted after
	// the first render pass that observes it below zero.
	Remaining float32
}

// Expired reports whether the line must be evicted after it is drawn.
func (l Line) Expired() bool {
	return l.Remaining < 0
}

// lineStore keeps lines in insertion order, which is also draw order.
type lineStore struct {
	lines []Line
}

func (s *lineStore) add(l Line) {
	s.lines = append(s.lines, l)
}

func (s *lineStore) age(dt float32) {
	for i := range s.lines {
		s.lines[i].Remaining -= dt
	}
}

// evict compacts the store in place, dropping expired lines while keeping
// the order of the survivors. It returns the number of lines removed.
func (s *lineStore) evict() int {
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.Expired() {
			continue
		}
		kept = append(kept, l)
	}
	removed := len(s.lines) - len(kept)
	clear(s.lines[len(kept):])
	s.lines = kept
	return removed
}

func (s *lineStore) len() int {
	return len(s.lines)
}

func (s *lineStore) reset() int {
	n := len(s.lines)
	s.lines = nil
	return n
}
