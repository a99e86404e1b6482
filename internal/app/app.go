//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridlife/internal/render"
	"gridlife/internal/session"
	"gridlife/internal/ui"
)

// commandKeys are the keys with a binding; everything else is delivered to
// the session as unknown so it can be logged.
var commandKeys = map[ebiten.Key]session.Key{
	ebiten.KeySpace:     session.KeyToggleRun,
	ebiten.KeyBackspace: session.KeyReset,
	ebiten.KeyTab:       session.KeyToggleHUD,
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	painter *render.GridPainter
	hud     *ui.HUD

	cellColor       color.Color
	backgroundColor color.Color

	pressed []ebiten.Key
}

// New constructs a Game for the provided session.
func New(s *session.Session) *Game {
	return &Game{
		session:         s,
		painter:         render.NewGridPainter(s.Size()),
		hud:             ui.NewHUD(),
		cellColor:       color.RGBA{R: 255, G: 128, B: 0, A: 255},
		backgroundColor: color.RGBA{R: 112, G: 112, B: 112, A: 255},
	}
}

// Update translates input edges into session events and delivers the
// per-frame tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		if k == ebiten.KeyQ || k == ebiten.KeyEscape {
			continue
		}
		key, ok := commandKeys[k]
		if !ok {
			key = session.KeyUnknown(k.String())
		}
		g.session.Handle(session.KeyPress{Key: key})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.session.Handle(session.Click{X: float64(x), Y: float64(y)})
	}

	g.session.Handle(session.Tick{Now: time.Now()})
	return nil
}

// Draw renders the current board state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.RenderView(), g.cellColor, g.backgroundColor, g.session.CellSize())
	if g.hud != nil {
		g.hud.Draw(screen, g.session)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W * g.session.CellSize(), s.H * g.session.CellSize()
}


