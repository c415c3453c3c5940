//go:build ebiten

package app

import (
	"image/color"

	"lifeview/internal/render"
	"lifeview/internal/ui"
	"lifeview/pkg/core"
	"lifeview/pkg/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	step    *core.FixedStep
	pointer pointerState

	onColor  color.Color
	offColor color.Color
	bgColor  color.Color

	width, height int
}

// New constructs a Game for the provided session.
func New(sess *session.Session, cfg *Config) *Game {
	return &Game{
		sess:     sess,
		painter:  render.NewGridPainter(sess.Grid().Size()),
		hud:      ui.NewHUD(sess, 220),
		step:     core.NewFixedStep(cfg.TPS),
		onColor:  color.RGBA{R: 255, G: 255, A: 255},
		offColor: color.RGBA{R: 12, G: 12, B: 16, A: 255},
		bgColor:  color.Black,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	in := pollInput()
	if in.Quit {
		return ebiten.Termination
	}
	if in.ToggleHUD {
		g.hud.Toggle()
	}
	g.sess.Apply(g.pointer.commands(in)...)
	if g.step.ShouldStep() {
		g.sess.Apply(session.Tick{})
	}
	g.hud.Update()
	return nil
}

func pollInput() Input {
	just := inpututil.IsKeyJustPressed
	held := ebiten.IsKeyPressed
	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	return Input{
		Quit:        just(ebiten.KeyQ) || just(ebiten.KeyEscape),
		TogglePause: just(ebiten.KeySpace) || just(ebiten.KeyP),
		StepOnce:    just(ebiten.KeyN),
		Clear:       just(ebiten.KeyC),
		Seed:        just(ebiten.KeyV),
		ToggleHUD:   just(ebiten.KeyH),
		SpeedUp:     just(ebiten.KeyEqual) || just(ebiten.KeyNumpadAdd),
		SpeedDown:   just(ebiten.KeyMinus) || just(ebiten.KeyNumpadSubtract),

		Left:    held(ebiten.KeyA),
		Right:   held(ebiten.KeyD),
		Up:      held(ebiten.KeyW),
		Down:    held(ebiten.KeyS),
		ZoomIn:  held(ebiten.KeyZ),
		ZoomOut: held(ebiten.KeyX),

		CursorX: x,
		CursorY: y,
		Paint:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Drag:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Wheel:   wheel,
	}
}

// Draw renders the live cells through the camera and the HUD on top.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bgColor)
	g.painter.Blit(screen, g.sess.LiveCells(), g.onColor, g.offColor, g.sess.Camera().View())
	g.hud.Draw(screen)
}

// Layout uses the window size as the logical screen size so that one
// screen unit is one pixel for the camera.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.sess.Apply(session.Resize{W: outsideWidth, H: outsideHeight})
	}
	return outsideWidth, outsideHeight
}
