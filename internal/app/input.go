package app

import "lifeview/pkg/session"

// Input is one frame of decoded host input.
type Input struct {
	Quit        bool
	TogglePause bool
	StepOnce    bool
	Clear       bool
	Seed        bool
	ToggleHUD   bool
	SpeedUp     bool
	SpeedDown   bool

	// Held keys.
	Left, Right, Up, Down bool
	ZoomIn, ZoomOut       bool

	CursorX, CursorY int
	Paint            bool
	Drag             bool
	Wheel            float64
}

// pointerState remembers the cursor between frames to turn drags into deltas.
type pointerState struct {
	x, y     int
	dragging bool
}

// commands translates one frame of input into session commands. Camera
// commands come first so that painting in the same frame uses the updated
// view.
func (p *pointerState) commands(in Input) []session.Command {
	var cmds []session.Command

	if in.Wheel != 0 {
		cmds = append(cmds, session.Zoom{Delta: in.Wheel})
	}
	if in.ZoomIn {
		cmds = append(cmds, session.KeyZoom{Dir: 1})
	}
	if in.ZoomOut {
		cmds = append(cmds, session.KeyZoom{Dir: -1})
	}

	var dx, dy float64
	if in.Left {
		dx++
	}
	if in.Right {
		dx--
	}
	if in.Up {
		dy++
	}
	if in.Down {
		dy--
	}
	if dx != 0 || dy != 0 {
		cmds = append(cmds, session.KeyPan{DX: dx, DY: dy})
	}

	if in.Drag {
		if p.dragging && (in.CursorX != p.x || in.CursorY != p.y) {
			cmds = append(cmds, session.Pan{DX: float64(in.CursorX - p.x), DY: float64(in.CursorY - p.y)})
		}
		p.dragging = true
	} else {
		p.dragging = false
	}
	p.x, p.y = in.CursorX, in.CursorY

	if in.Paint {
		cmds = append(cmds, session.PaintAt{X: float64(in.CursorX), Y: float64(in.CursorY)})
	}

	if in.TogglePause {
		cmds = append(cmds, session.TogglePause{})
	}
	if in.StepOnce {
		cmds = append(cmds, session.StepOnce{})
	}
	if in.SpeedUp {
		cmds = append(cmds, session.AdjustSpeed{Delta: 1})
	}
	if in.SpeedDown {
		cmds = append(cmds, session.AdjustSpeed{Delta: -1})
	}
	if in.Clear {
		cmds = append(cmds, session.Clear{})
	}
	if in.Seed {
		cmds = append(cmds, session.Seed{})
	}
	return cmds
}
