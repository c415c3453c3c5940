package session

// Command is a discrete input applied to a Session. Hosts decode window
// and input events into commands and apply them in order.
type Command interface {
	apply(s *Session)
}

// Resize reports a new window size in pixels.
type Resize struct{ W, H int }

// Pan drags the view by a mouse delta in pixels.
type Pan struct{ DX, DY float64 }

// KeyPan moves the view by keyboard steps.
type KeyPan struct{ DX, DY float64 }

// Zoom applies a mouse wheel delta.
type Zoom struct{ Delta float64 }

// KeyZoom zooms by one keyboard step; Dir is positive to zoom in.
type KeyZoom struct{ Dir float64 }

// PaintAt sets the cell under a screen point alive.
type PaintAt struct{ X, Y float64 }

// Tick is the fixed-rate simulation trigger.
type Tick struct{}

// StepOnce requests a single generation on the next Tick, even while paused.
type StepOnce struct{}

// TogglePause flips the paused flag.
type TogglePause struct{}

// SetPaused sets the paused flag.
type SetPaused struct{ Paused bool }

// Clear kills every cell and resets the generation counter.
type Clear struct{}

// Seed clears the grid and seeds the default region at the configured
// density.
type Seed struct{}

// SetSpeed sets the number of generations advanced per Tick. Values are
// clamped to [1, MaxSpeed].
type SetSpeed struct{ N int }

// AdjustSpeed changes the speed by Delta generations per Tick.
type AdjustSpeed struct{ Delta int }

func (c Resize) apply(s *Session) { s.cam.Resize(c.W, c.H) }
func (c Pan) apply(s *Session) { s.cam.PanBy(c.DX, c.DY) }
func (c KeyPan) apply(s *Session) { s.cam.PanKey(c.DX, c.DY) }
func (c Zoom) apply(s *Session) { s.cam.ZoomBy(c.Delta) }
func (c KeyZoom) apply(s *Session) { s.cam.ZoomKey(c.Dir) }
func (c PaintAt) apply(s *Session) { Paint(s.grid, s.cam, c.X, c.Y) }
func (Tick) apply(s *Session) { s.tick() }
func (StepOnce) apply(s *Session) { s.stepOnce = true }
func (TogglePause) apply(s *Session) { s.paused = !s.paused }
func (c SetPaused) apply(s *Session) { s.paused = c.Paused }
func (Clear) apply(s *Session) { s.clear() }
func (Seed) apply(s *Session) { s.seed() }
func (c SetSpeed) apply(s *Session) { s.setSpeed(c.N) }
func (c AdjustSpeed) apply(s *Session) { s.setSpeed(s.speed + c.Delta) }
