package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

const DefaultSettingsFile = "overlay.yaml"

type Settings struct {
	Window  WindowSpec  `yaml:"window"`
	Overlay OverlaySpec `yaml:"overlay"`
	Camera  CameraSpec  `yaml:"camera"`
	Probes  ProbesSpec  `yaml:"probes"`
	Colors  ColorsSpec  `yaml:"colors"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type OverlaySpec struct {
	StrokeWidth float32 `yaml:"stroke_width"`
	AntiAlias   bool    `yaml:"anti_alias"`
}

type CameraSpec struct {
	FovY       float32    `yaml:"fov_y"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	Eye        [3]float32 `yaml:"eye"`
	Target     [3]float32 `yaml:"target"`
	OrbitSpeed float32    `yaml:"orbit_speed"`
}

func (c CameraSpec) EyeVec() mgl32.Vec3 {
	return mgl32.Vec3(c.Eye)
}

func (c CameraSpec) TargetVec() mgl32.Vec3 {
	return mgl32.Vec3(c.Target)
}

type ProbesSpec struct {
	Script      string  `yaml:"script"`
	Physics     bool    `yaml:"physics"`
	AxesSize    float32 `yaml:"axes_size"`
	GridSize    int     `yaml:"grid_size"`
	CubeSeconds float32 `yaml:"cube_seconds"`
}

type ColorsSpec struct {
	Grid    Color `yaml:"grid"`
	Cube    Color `yaml:"cube"`
	Physics Color `yaml:"physics"`
	Click   Color `yaml:"click"`
}

// LoadSettings reads and decodes a settings file and fills in defaults.
func LoadSettings(name string) (*Settings, error) {
	if name == "" {
		name = DefaultSettingsFile
	}
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", name, err)
	}
	return ParseSettings(data)
}

func ParseSettings(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("config: unmarshal settings: %w", err)
	}
	s.withDefaults()
	return &s, nil
}

func (s *Settings) withDefaults() {
	if s.Window.Width <= 0 {
		s.Window.Width = 1280
	}
	if s.Window.Height <= 0 {
		s.Window.Height = 720
	}
	if s.Window.Title == "" {
		s.Window.Title = "linedrawer"
	}
	if s.Overlay.StrokeWidth <= 0 {
		s.Overlay.StrokeWidth = 1
	}
	if s.Camera.FovY <= 0 {
		s.Camera.FovY = 60
	}
	if s.Camera.Near <= 0 {
		s.Camera.Near = 0.1
	}
	if s.Camera.Far <= s.Camera.Near {
		s.Camera.Far = 1000
	}
	if s.Camera.Eye == s.Camera.Target {
		s.Camera.Eye = [3]float32{6, 4, 10}
	}
	if s.Camera.OrbitSpeed <= 0 {
		s.Camera.OrbitSpeed = 90
	}
	if s.Probes.AxesSize <= 0 {
		s.Probes.AxesSize = 1
	}
	if s.Probes.CubeSeconds < 0 {
		s.Probes.CubeSeconds = 0
	}
	if s.Colors.Grid.A == 0 {
		s.Colors.Grid.RGBA = colorOrZero("dimgray")
	}
	if s.Colors.Cube.A == 0 {
		s.Colors.Cube.RGBA = colorOrZero("yellow")
	}
	if s.Colors.Physics.A == 0 {
		s.Colors.Physics.RGBA = colorOrZero("lime")
	}
	if s.Colors.Click.A == 0 {
		s.Colors.Click.RGBA = colorOrZero("orange")
	}
}
