package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappydof/internal/core"
	"github.com/vovakirdan/flappydof/internal/sim"
)

// Glyphs of the play field.
const (
	playerGlyph = '@'
	pillarGlyph = '█'
	pillarWidth = 2
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Layout splits the screen into the status row and the boxed play field.
type Layout struct {
	Status int
	Box    core.Rect
	Field  core.Rect
}

// NewLayout computes the layout for a screen of the given size. ok is false
// when the screen is too small to hold a play field.
func NewLayout(width, height int) (Layout, bool) {
	if width < 8 || height < 5 {
		return Layout{}, false
	}
	box := core.NewRect(0, 1, width, height-1)
	return Layout{
		Status: 0,
		Box:    box,
		Field:  core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2),
	}, true
}

// DrawWorld draws the play field and the bodies described by transforms.
// Pillars arrive in spawn order, upper before lower, and each pair is drawn
// as two columns reaching from the field edges to the pillar centers.
func DrawWorld(s *core.Screen, vp Viewport, transforms []sim.Transform) {
	var pillars []sim.Transform
	var player *sim.Transform
	for i := range transforms {
		switch transforms[i].Role {
		case sim.RolePlayer:
			player = &transforms[i]
		case sim.RolePillar:
			pillars = append(pillars, transforms[i])
		}
	}

	top, bottom := vp.Field.Y, vp.Field.Bottom()-1
	for i := 0; i+1 < len(pillars); i += 2 {
		upper, lower := pillars[i], pillars[i+1]
		col, ok := vp.Col(upper.X)
		if !ok {
			continue
		}
		w := min(pillarWidth, vp.Field.Right()-col)
		upperEnd := vp.RowClamped(upper.Y)
		lowerStart := vp.RowClamped(lower.Y)
		s.DrawRect(core.NewRect(col, top, w, upperEnd-top+1), pillarGlyph, core.ColorGreen)
		s.DrawRect(core.NewRect(col, lowerStart, w, bottom-lowerStart+1), pillarGlyph, core.ColorGreen)
	}

	if player == nil {
		return
	}
	col, colOK := vp.Col(player.X)
	row, rowOK := vp.Row(player.Y)
	if colOK && rowOK {
		s.SetColored(col, row, playerGlyph, core.ColorYellow)
	}
}
