package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/linedrawer/debugdraw"
)

// ImageSurface strokes debug lines onto an ebiten image.
type ImageSurface struct {
	Image       *ebiten.Image
	StrokeWidth float32
	AntiAlias   bool
}

var _ debugdraw.Surface = (*ImageSurface)(nil)

func (s *ImageSurface) StrokeLine(x0, y0, x1, y1 float32, clr color.Color) {
	if s == nil || s.Image == nil {
		return
	}
	width := s.StrokeWidth
	if width <= 0 {
		width = 1
	}
	vector.StrokeLine(s.Image, x0, y0, x1, y1, width, clr, s.AntiAlias)
}
