package script

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/linedrawer/config"
	"github.com/milk9111/linedrawer/debugdraw"
)

var ErrNoScript = errors.New("script: no script name")

// Sink is the part of the line store a probe script can append to.
type Sink interface {
	AddLine(start, end debugdraw.Vec3, clr color.RGBA, time float32)
	AddRay(origin, dir debugdraw.Vec3, clr color.RGBA, time float32)
	AddCube(center debugdraw.Vec3, halfExtent float32, clr color.RGBA, time float32)
	AddAxes(origin debugdraw.Vec3, size float32, time float32)
}

// Probe runs a tengo script once per frame. The script sees the globals
// dt and elapsed (seconds) and a debug module with line, ray, cube and axes.
type Probe struct {
	name     string
	sink     Sink
	compiled *tengo.Compiled
	elapsed  float64
	lastErr  string
	extra    []global
}

type global struct {
	name  string
	value any
}

// Option configures a Probe.
type Option func(*Probe)

// WithGlobal exposes an extra host value to the script as a global. It must
// be convertible by tengo.FromInterface.
func WithGlobal(name string, value any) Option {
	return func(p *Probe) {
		p.extra = append(p.extra, global{name: name, value: value})
	}
}

// NewProbe loads and compiles the named script from config.
func NewProbe(name string, sink Sink, opts ...Option) (*Probe, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNoScript
	}
	src, err := config.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return NewProbeSource(name, src, sink, opts...)
}

// NewProbeSource compiles src directly.
func NewProbeSource(name string, src []byte, sink Sink, opts ...Option) (*Probe, error) {
	p := &Probe{name: name, sink: sink}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if err := p.compile(src); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Probe) Name() string {
	return p.name
}

// Reload recompiles the script from config. On failure the previous program
// keeps running.
func (p *Probe) Reload() error {
	src, err := config.LoadScript(p.name)
	if err != nil {
		return fmt.Errorf("script: load %s: %w", p.name, err)
	}
	return p.compile(src)
}

func (p *Probe) compile(src []byte) error {
	s := tengo.NewScript(src)
	globals := append([]global{
		{"dt", 0.0},
		{"elapsed", 0.0},
		{"debug", p.module()},
	}, p.extra...)
	for _, g := range globals {
		if err := s.Add(g.name, g.value); err != nil {
			return fmt.Errorf("script: %s: add %s: %w", p.name, g.name, err)
		}
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return fmt.Errorf("script: compile %s: %w", p.name, err)
	}
	p.compiled = compiled
	p.lastErr = ""
	return nil
}

// Update runs the script for one frame. Runtime errors are logged once per
// distinct message and never stop the frame.
func (p *Probe) Update(dt float64) {
	if err := p.Run(dt); err != nil {
		if msg := err.Error(); msg != p.lastErr {
			log.Printf("script: %v", err)
			p.lastErr = msg
		}
	}
}

// Run executes the script once and returns any runtime error.
func (p *Probe) Run(dt float64) error {
	if p == nil || p.compiled == nil {
		return ErrNoScript
	}
	p.elapsed += dt
	if err := p.compiled.Set("dt", dt); err != nil {
		return err
	}
	if err := p.compiled.Set("elapsed", p.elapsed); err != nil {
		return err
	}
	if err := p.compiled.Run(); err != nil {
		return fmt.Errorf("run %s: %w", p.name, err)
	}
	return nil
}

func (p *Probe) module() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["line"] = &tengo.UserFunction{Name: "line", Value: func(args ...tengo.Object) (tengo.Object, error) {
		a, b, clr, ttl, err := segmentArgs("line", args)
		if err != nil {
			return nil, err
		}
		p.sink.AddLine(a, b, clr, ttl)
		return tengo.UndefinedValue, nil
	}}

	values["ray"] = &tengo.UserFunction{Name: "ray", Value: func(args ...tengo.Object) (tengo.Object, error) {
		origin, dir, clr, ttl, err := segmentArgs("ray", args)
		if err != nil {
			return nil, err
		}
		p.sink.AddRay(origin, dir, clr, ttl)
		return tengo.UndefinedValue, nil
	}}

	values["cube"] = &tengo.UserFunction{Name: "cube", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 3 || len(args) > 4 {
			return nil, tengo.ErrWrongNumArguments
		}
		center, err := toVec3("cube", "first", args[0])
		if err != nil {
			return nil, err
		}
		half, err := toFloat32("cube", "second", args[1])
		if err != nil {
			return nil, err
		}
		clr, err := toColor("cube", "third", args[2])
		if err != nil {
			return nil, err
		}
		ttl, err := optionalTime("cube", args, 3)
		if err != nil {
			return nil, err
		}
		p.sink.AddCube(center, half, clr, ttl)
		return tengo.UndefinedValue, nil
	}}

	values["axes"] = &tengo.UserFunction{Name: "axes", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 || len(args) > 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		origin, err := toVec3("axes", "first", args[0])
		if err != nil {
			return nil, err
		}
		size, err := toFloat32("axes", "second", args[1])
		if err != nil {
			return nil, err
		}
		ttl, err := optionalTime("axes", args, 2)
		if err != nil {
			return nil, err
		}
		p.sink.AddAxes(origin, size, ttl)
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func segmentArgs(name string, args []tengo.Object) (a, b debugdraw.Vec3, clr color.RGBA, ttl float32, err error) {
	if len(args) < 3 || len(args) > 4 {
		err = tengo.ErrWrongNumArguments
		return
	}
	if a, err = toVec3(name, "first", args[0]); err != nil {
		return
	}
	if b, err = toVec3(name, "second", args[1]); err != nil {
		return
	}
	if clr, err = toColor(name, "third", args[2]); err != nil {
		return
	}
	ttl, err = optionalTime(name, args, 3)
	return
}
