//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"gridlife/internal/session"
)

// HUD draws a one-line status readout over the board.
type HUD struct{}

// NewHUD constructs a HUD instance.
func NewHUD() *HUD { return &HUD{} }

// Draw renders the status line when the session has it enabled.
func (h *HUD) Draw(screen *ebiten.Image, s *session.Session) {
	if !s.HUDVisible() {
		return
	}
	state := "paused"
	if s.Running() {
		state = "running"
	}
	st := s.Stats()
	line := fmt.Sprintf("%s | gen %d | pop %d | avg %.1f", state, st.Generation, st.Population, st.AveragePopulation)
	ebitenutil.DebugPrintAt(screen, line, 4, 4)
}


