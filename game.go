package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/linedrawer/camera"
	"github.com/milk9111/linedrawer/config"
	"github.com/milk9111/linedrawer/debugdraw"
	"github.com/milk9111/linedrawer/frame"
	"github.com/milk9111/linedrawer/physicsdebug"
	"github.com/milk9111/linedrawer/render"
	"github.com/milk9111/linedrawer/script"
	"golang.design/x/clipboard"
)

var backgroundColor = color.RGBA{R: 0x12, G: 0x14, B: 0x18, A: 0xff}

const clickRayLength = 50

type Game struct {
	settingsName string
	settings     *config.Settings
	debug        bool

	cam     *camera.Perspective
	orbit   *camera.Orbit
	overlay *render.Overlay
	sched   *frame.Scheduler
	probe   *script.Probe
	physics *physicsdebug.Demo
	watcher *config.Watcher

	pauseUI   *ebitenui.UI
	pauseInfo *widget.Text

	clipboardOK bool
	paused      bool
}

func NewGame(settingsName string, settings *config.Settings, debug, watch bool) *Game {
	g := &Game{
		settingsName: settingsName,
		settings:     settings,
		debug:        debug,
	}

	cs := settings.Camera
	g.cam = camera.NewPerspective(cs.EyeVec(), cs.TargetVec(), cs.FovY, cs.Near, cs.Far, settings.Window.Width, settings.Window.Height)
	g.orbit = camera.OrbitFrom(g.cam, cs.OrbitSpeed)
	g.overlay = render.NewOverlay(g.activeCamera, settings.Overlay.StrokeWidth, settings.Overlay.AntiAlias)

	lines := g.overlay.Drawer()
	g.sched = frame.NewScheduler(frame.SystemFunc(g.drawGrid))

	if settings.Probes.Physics {
		g.physics = physicsdebug.NewDemo(&physicsdebug.Drawer{Sink: lines, Color: settings.Colors.Physics.RGBA}, 1)
		g.sched.Add(g.physics)
	}

	if settings.Probes.Script != "" {
		probe, err := script.NewProbe(settings.Probes.Script, lines, script.WithGlobal("grid", settings.Probes.GridSize))
		if err != nil {
			log.Printf("game: probe %s disabled: %v", settings.Probes.Script, err)
		} else {
			g.probe = probe
			g.sched.Add(probe)
		}
	}

	// The overlay ticks last so every line appended this frame is aged and
	// drawn in the same frame.
	g.sched.Add(g.overlay)

	if watch {
		w, err := config.NewWatcher(config.Dir, filepath.Join(config.Dir, "scripts"))
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI, g.pauseInfo = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("game: clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	return g
}

func (g *Game) activeCamera() debugdraw.Camera {
	return g.cam
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	g.reload()
	g.handleInput(dt)

	// While paused nothing ticks, so the overlay keeps its last render pass.
	if g.paused {
		g.pauseInfo.Label = g.stats()
		g.pauseUI.Update()
		return nil
	}
	g.sched.Update(dt)
	return nil
}

func (g *Game) handleInput(dt float64) {
	var yaw, pitch float32
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		yaw--
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		yaw++
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		pitch++
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		pitch--
	}
	if yaw != 0 || pitch != 0 {
		g.orbit.Rotate(yaw, pitch, dt)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		if wy > 0 {
			g.orbit.Zoom(0.9)
		} else {
			g.orbit.Zoom(1.1)
		}
	}
	g.orbit.Apply(g.cam)

	lines := g.overlay.Drawer()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		lines.AddCube(g.cam.Target, 0.5, g.settings.Colors.Cube.RGBA, g.settings.Probes.CubeSeconds)
	}
	// Clicks belong to the pause panel while paused.
	if !g.paused && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		origin, dir, err := g.cam.Ray(float32(mx), float32(my))
		if err == nil {
			lines.AddRay(origin, dir.Mul(clickRayLength), g.settings.Colors.Click.RGBA, 2)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		lines.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyLines()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
}

func (g *Game) drawGrid(dt float64) {
	n := g.settings.Probes.GridSize
	lines := g.overlay.Drawer()
	if n > 0 {
		clr := g.settings.Colors.Grid.RGBA
		ext := float32(n)
		for i := -n; i <= n; i++ {
			f := float32(i)
			lines.AddLine(debugdraw.Vec3{f, 0, -ext}, debugdraw.Vec3{f, 0, ext}, clr, 0)
			lines.AddLine(debugdraw.Vec3{-ext, 0, f}, debugdraw.Vec3{ext, 0, f}, clr, 0)
		}
	}
	lines.AddAxes(debugdraw.Vec3{}, g.settings.Probes.AxesSize, 0)
}

func (g *Game) copyLines() {
	if !g.clipboardOK {
		return
	}
	var buf bytes.Buffer
	if err := g.overlay.Drawer().Dump(&buf); err != nil {
		log.Printf("game: dump lines: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, buf.Bytes())
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for _, change := range g.watcher.Poll() {
		switch change.Kind {
		case config.ChangeSettings:
			settings, err := config.LoadSettings(g.settingsName)
			if err != nil {
				log.Printf("game: reload %s: %v", change.Path, err)
				continue
			}
			g.applySettings(settings)
		case config.ChangeScript:
			if g.probe == nil {
				continue
			}
			if err := g.probe.Reload(); err != nil {
				log.Printf("game: reload %s: %v", change.Path, err)
			}
		}
	}
	if err := g.watcher.Err(); err != nil {
		log.Printf("game: watcher: %v", err)
	}
}

// applySettings takes the parts of the settings that can change at runtime.
// Window size, physics and the probe script are fixed at startup.
func (g *Game) applySettings(s *config.Settings) {
	s.Probes.Script = g.settings.Probes.Script
	s.Probes.Physics = g.settings.Probes.Physics
	g.settings = s
	g.overlay.SetStroke(s.Overlay.StrokeWidth, s.Overlay.AntiAlias)
	g.cam.FovY = s.Camera.FovY
	g.cam.Near = s.Camera.Near
	g.cam.Far = s.Camera.Far
	g.orbit.Speed = s.Camera.OrbitSpeed
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.overlay.Draw(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
		return
	}
	if !g.debug {
		return
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.2f  %s\n[arrows] orbit [wheel] zoom [space] cube [click] ray [x] clear [c] copy [p] pause",
		ebiten.ActualFPS(), g.stats(),
	))
}

func (g *Game) stats() string {
	bodies := 0
	if g.physics != nil {
		bodies = g.physics.Bodies()
	}
	return fmt.Sprintf("Lines: %d  Passes: %d  Bodies: %d  Elapsed: %.1fs",
		g.overlay.Drawer().Len(), g.overlay.Passes(), bodies, g.sched.Elapsed())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.cam.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
