package app

import (
	"flag"

	"lifeview/pkg/session"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Size        int
	Density     float64
	Seed        int64
	SeedOnStart bool
	Paused      bool

	TPS      int
	Speed    int
	MaxSpeed int

	ZoomMin     float64
	ZoomMax     float64
	ScrollSpeed float64

	Width  int
	Height int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := session.DefaultConfig()
	return &Config{
		Size:        def.Grid.Size,
		Density:     def.Grid.Density,
		Seed:        def.Seed,
		SeedOnStart: true,
		Paused:      def.Paused,
		TPS:         20,
		Speed:       def.Speed,
		MaxSpeed:    def.MaxSpeed,
		ZoomMin:     def.Camera.ZoomMin,
		ZoomMax:     def.Camera.ZoomMax,
		ScrollSpeed: def.Camera.ScrollSpeed,
		Width:       700,
		Height:      500,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid edge length in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a seeded cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills")
	fs.BoolVar(&c.SeedOnStart, "seed-on-start", c.SeedOnStart, "fill the seed region at startup")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the simulation paused")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.Speed, "speed", c.Speed, "generations per tick")
	fs.IntVar(&c.MaxSpeed, "max-speed", c.MaxSpeed, "upper bound for generations per tick")
	fs.Float64Var(&c.ZoomMin, "zoom-min", c.ZoomMin, "minimum zoom")
	fs.Float64Var(&c.ZoomMax, "zoom-max", c.ZoomMax, "maximum zoom")
	fs.Float64Var(&c.ScrollSpeed, "scroll-speed", c.ScrollSpeed, "zoom change per wheel step")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
}

// Session returns the validated session configuration.
func (c *Config) Session() (session.Config, error) {
	cfg := session.DefaultConfig()
	cfg.Grid.Size = c.Size
	cfg.Grid.Density = c.Density
	cfg.Seed = c.Seed
	cfg.Paused = c.Paused
	cfg.Speed = c.Speed
	cfg.MaxSpeed = c.MaxSpeed
	cfg.Camera.ZoomMin = c.ZoomMin
	cfg.Camera.ZoomMax = c.ZoomMax
	cfg.Camera.ScrollSpeed = c.ScrollSpeed
	return cfg, cfg.Validate()
}
