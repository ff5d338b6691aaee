package tui

import (
	"github.com/vovakirdan/flappydof/internal/core"
)

// HUD is the score display of the play screen. The simulation writes the
// score text into it through sim.ScoreSink.
type HUD struct {
	text string
}

// NewHUD creates an empty HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// SetScoreText implements sim.ScoreSink.
func (h *HUD) SetScoreText(text string) {
	h.text = text
}

// Text returns the latest score text.
func (h *HUD) Text() string {
	return h.text
}

// Draw writes the status line to row y of the screen.
func (h *HUD) Draw(s *core.Screen, y int, state core.GameState, paused bool) {
	s.DrawTextColored(1, y, h.text, core.ColorWhite)

	var status string
	color := core.ColorYellow
	switch {
	case state.GameOver:
		status = "GAME OVER - press R to restart"
		color = core.ColorRed
	case paused:
		status = "PAUSED"
	}
	if status != "" {
		x := s.Width() - len([]rune(status)) - 1
		s.DrawTextColored(x, y, status, color)
	}
}
