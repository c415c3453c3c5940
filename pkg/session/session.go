// Package session ties the grid, the simulation engine and the camera
// together behind a single-threaded command interface.
package session

import (
	"fmt"
	"strconv"

	"lifeview/pkg/camera"
	"lifeview/pkg/core"
	"lifeview/pkg/sims/life"

	"seehuhn.de/go/geom/matrix"
)

// Config controls a Session.
type Config struct {
	Grid   life.Config
	Camera camera.Config

	// Seed initialises the RNG used by the Seed command.
	Seed int64
	// Speed is the number of generations advanced per Tick.
	Speed    int
	MaxSpeed int
	// Paused is the initial state of the pause gate.
	Paused bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Grid:     life.DefaultConfig(),
		Camera:   camera.DefaultConfig(),
		Seed:     42,
		Speed:    1,
		MaxSpeed: 16,
		Paused:   true,
	}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if err := c.Camera.Validate(); err != nil {
		return err
	}
	if c.Speed < 1 || c.MaxSpeed < c.Speed {
		return fmt.Errorf("session: speed %d of max %d: %w", c.Speed, c.MaxSpeed, core.ErrInvalidSpeed)
	}
	return nil
}

// Session owns all mutable state of one running simulation. It is not safe
// for concurrent use; commands are applied one at a time, and a Tick runs
// to completion before the next command.
type Session struct {
	cfg    Config
	grid   *life.Grid
	engine *life.Engine
	cam    *camera.Camera
	rng    *core.RNG

	paused   bool
	stepOnce bool
	speed    int
}

// New builds a Session with an empty grid.
func New(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := life.NewGrid(cfg.Grid.Size)
	if err != nil {
		return nil, err
	}
	engine, err := life.NewEngine(cfg.Grid.Size)
	if err != nil {
		return nil, err
	}
	cam, err := camera.New(cfg.Camera)
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:    cfg,
		grid:   grid,
		engine: engine,
		cam:    cam,
		rng:    core.NewRNG(cfg.Seed),
		paused: cfg.Paused,
		speed:  cfg.Speed,
	}, nil
}

// Apply runs the commands in order.
func (s *Session) Apply(cmds ...Command) {
	for _, cmd := range cmds {
		if cmd != nil {
			cmd.apply(s)
		}
	}
}

// Grid returns the simulated grid.
func (s *Session) Grid() *life.Grid { return s.grid }

// Camera returns the view camera.
func (s *Session) Camera() *camera.Camera { return s.cam }

// LiveCells returns the live cells for rendering.
func (s *Session) LiveCells() []core.Point { return s.grid.LiveCells() }

// RenderTransform returns the camera's grid-to-NDC transform.
func (s *Session) RenderTransform() matrix.Matrix { return s.cam.RenderTransform() }

// Generation returns the number of generations since the last clear or seed.
func (s *Session) Generation() int { return s.engine.Generation() }

// Paused reports whether ticks are currently ignored.
func (s *Session) Paused() bool { return s.paused }

// Speed returns the number of generations advanced per Tick.
func (s *Session) Speed() int { return s.speed }

func (s *Session) tick() {
	if s.paused && !s.stepOnce {
		return
	}
	n := s.speed
	if s.stepOnce {
		n = 1
		s.stepOnce = false
	}
	s.engine.StepN(s.grid, n)
}

func (s *Session) clear() {
	s.grid.Clear()
	s.engine.ResetGeneration()
}

func (s *Session) seed() {
	s.clear()
	size := s.grid.Size()
	s.grid.Seed(life.DefaultSeedRegion(size), s.cfg.Grid.Density, s.rng)
}

func (s *Session) setSpeed(n int) {
	if n < 1 {
		n = 1
	}
	if n > s.cfg.MaxSpeed {
		n = s.cfg.MaxSpeed
	}
	s.speed = n
}

// Parameters returns a snapshot of the session state for display.
func (s *Session) Parameters() core.ParameterSnapshot {
	panX, panY := s.cam.Pan()
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Simulation",
				Params: []core.Parameter{
					intParam("generation", "Generation", s.Generation()),
					intParam("population", "Population", s.grid.Population()),
					intParam("speed", "Speed", s.speed),
					boolParam("paused", "Paused", s.paused),
				},
			},
			{
				Name: "Grid",
				Params: []core.Parameter{
					intParam("size", "Size", s.grid.Size()),
					floatParam("density", "Seed density", s.cfg.Grid.Density),
				},
			},
			{
				Name: "Camera",
				Params: []core.Parameter{
					floatParam("zoom", "Zoom", s.cam.Zoom()),
					floatParam("pan_x", "Pan X", panX),
					floatParam("pan_y", "Pan Y", panY),
				},
			},
		},
	}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', 3, 64)}
}

func boolParam(key, label string, v bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(v)}
}
