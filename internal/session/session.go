// Package session holds the interactive simulation state and translates
// input events into board mutations.
package session

import (
	"time"

	"github.com/charmbracelet/log"

	"gridlife/internal/board"
	"gridlife/internal/core"
)

// Session owns the board and the run/reset flags. It is single-threaded:
// the event loop delivers one event at a time and each handler runs to
// completion before the next.
type Session struct {
	board    *board.Board
	gate     *core.Gate
	cellSize int

	running      bool
	resetPending bool
	showHUD      bool

	stats Stats
	log   *log.Logger
}

// New wraps a seeded board. ups is the simulation rate in updates per
// second and cellSize the pixel width/height of one cell on screen. A nil
// logger falls back to the package default.
func New(b *board.Board, ups, cellSize int, logger *log.Logger) *Session {
	if cellSize <= 0 {
		cellSize = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		board:    b,
		gate:     core.NewGate(ups),
		cellSize: cellSize,
		log:      logger,
	}
}

// Handle dispatches a single input event.
func (s *Session) Handle(ev Event) {
	switch e := ev.(type) {
	case Tick:
		s.onTick(e.Now)
	case KeyPress:
		s.onKey(e.Key)
	case Click:
		s.onClick(e.X, e.Y)
	}
}

// onTick advances the simulation when the gate allows it. A staged reset
// is applied before stepping so the cleared board is what gets rendered.
func (s *Session) onTick(now time.Time) {
	if !s.gate.Ready(now) {
		return
	}
	if s.resetPending {
		s.board = s.board.Clear()
		s.resetPending = false
		s.stats.Reset()
	}
	if s.running {
		s.board = s.board.Step()
		s.stats.Observe(s.board.Population())
	}
}

func (s *Session) onKey(k Key) {
	switch k.Command {
	case CommandToggleRun:
		s.running = !s.running
	case CommandReset:
		// Deferred to the next eligible tick so a reset never lands
		// mid-frame relative to rendering.
		s.resetPending = true
	case CommandToggleHUD:
		s.showHUD = !s.showHUD
	default:
		s.log.Debug("key has no binding", "key", k.Name)
	}
}

// onClick maps screen coordinates to a grid position and toggles that
// cell. Pointer input is untrusted, so anything outside the board is
// dropped rather than surfaced.
func (s *Session) onClick(x, y float64) {
	if x < 0 || y < 0 {
		s.log.Debug("click outside board", "x", x, "y", y)
		return
	}
	p := core.Position{X: int(x) / s.cellSize, Y: int(y) / s.cellSize}
	if err := s.board.Toggle(p); err != nil {
		s.log.Debug("click outside board", "x", x, "y", y)
	}
}

// RenderView returns the positions of all live cells as a fresh slice,
// safe to consume after the session has since moved on.
func (s *Session) RenderView() []core.Position {
	return s.board.Alive()
}

// Running reports whether the simulation is advancing.
func (s *Session) Running() bool { return s.running }

// HUDVisible reports whether the status line should be drawn.
func (s *Session) HUDVisible() bool { return s.showHUD }

// ShowHUD sets the status line visibility.
func (s *Session) ShowHUD(v bool) { s.showHUD = v }

// Size returns the board dimensions.
func (s *Session) Size() core.Size { return s.board.Size() }

// CellSize returns the pixel size of one cell.
func (s *Session) CellSize() int { return s.cellSize }

// Stats returns a copy of the session counters.
func (s *Session) Stats() Stats { return s.stats }


