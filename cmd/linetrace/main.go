// Command linetrace runs the debug line pipeline without a window and prints
// every stroke each render pass would make. It is meant for checking probe
// scripts and lifetimes from a terminal.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/milk9111/linedrawer/camera"
	"github.com/milk9111/linedrawer/config"
	"github.com/milk9111/linedrawer/debugdraw"
	"github.com/milk9111/linedrawer/frame"
	"github.com/milk9111/linedrawer/script"
)

type textSurface struct {
	w       io.Writer
	strokes int
}

func (s *textSurface) StrokeLine(x0, y0, x1, y1 float32, clr color.Color) {
	s.strokes++
	r, g, b, a := clr.RGBA()
	fmt.Fprintf(s.w, "  stroke (%.1f, %.1f) -> (%.1f, %.1f) rgba(%d, %d, %d, %d)\n", x0, y0, x1, y1, r>>8, g>>8, b>>8, a>>8)
}

func main() {
	settingsName := flag.String("config", config.DefaultSettingsFile, "settings file in config/")
	scriptName := flag.String("script", "", "probe script (defaults to the one in settings)")
	frames := flag.Int("frames", 5, "number of frames to simulate")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per frame")
	quiet := flag.Bool("q", false, "print only per-frame totals")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsName)
	if err != nil {
		log.Fatal(err)
	}
	name := settings.Probes.Script
	if *scriptName != "" {
		name = *scriptName
	}

	cs := settings.Camera
	cam := camera.NewPerspective(cs.EyeVec(), cs.TargetVec(), cs.FovY, cs.Near, cs.Far, settings.Window.Width, settings.Window.Height)
	lines := debugdraw.NewDrawer()

	probe, err := script.NewProbe(name, lines)
	if err != nil {
		log.Fatal(err)
	}
	sched := frame.NewScheduler(probe, lines)

	out := io.Writer(os.Stdout)
	if *quiet {
		out = io.Discard
	}
	surf := &textSurface{w: out}

	for i := 0; i < *frames; i++ {
		sched.Update(*dt)
		fmt.Printf("frame %d: lines=%d redraw=%v\n", i, lines.Len(), lines.RedrawRequested())
		if !lines.RedrawRequested() {
			continue
		}
		surf.strokes = 0
		lines.Draw(surf, cam)
		fmt.Printf("  strokes=%d evicted_to=%d\n", surf.strokes, lines.Len())
	}
}
