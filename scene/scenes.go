package scene

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Built-in scene names, matching the states that request them.
const (
	NameMainMenu = "main_menu"
	NameGameplay = "gameplay"
	NamePaused   = "paused"
	NameGameOver = "game_over"
)

// drawText writes a string starting at (x, y).
func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// drawCentered writes a string centered horizontally on row y.
func drawCentered(screen tcell.Screen, y int, style tcell.Style, text string) {
	w, _ := screen.Size()
	x := (w - len(text)) / 2
	if x < 0 {
		x = 0
	}
	drawText(screen, x, y, style, text)
}

// MenuScene is the title screen.
type MenuScene struct{}

func (MenuScene) Draw(screen tcell.Screen) {
	_, h := screen.Size()
	title := tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	drawCentered(screen, h/2-2, title, "E M B E R F A L L")
	drawCentered(screen, h/2, tcell.StyleDefault, "[enter] play")
	drawCentered(screen, h/2+1, dim, "[q] quit")
}

// GameplayScene shows the active level banner. The level is set by the
// gameplay state before it requests the load.
type GameplayScene struct {
	level string
}

// SetLevel records which level the scene should present.
func (s *GameplayScene) SetLevel(level string) {
	s.level = level
}

func (s *GameplayScene) Draw(screen tcell.Screen) {
	w, h := screen.Size()
	banner := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	drawText(screen, 1, 0, banner, fmt.Sprintf("level: %s", s.level))
	drawText(screen, 1, h-1, dim, "[p] pause  [g] end run  [q] quit")

	// Placeholder playfield frame
	frame := tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	for x := 0; x < w; x++ {
		screen.SetContent(x, 1, tcell.RuneHLine, nil, frame)
		screen.SetContent(x, h-2, tcell.RuneHLine, nil, frame)
	}
}

// PausedScene is the pause overlay.
type PausedScene struct{}

func (PausedScene) Draw(screen tcell.Screen) {
	_, h := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	drawCentered(screen, h/2, style, "-- paused --")
	drawCentered(screen, h/2+1, tcell.StyleDefault, "[p] resume  [m] menu")
}

// GameOverScene shows the final score. The score is set by the game-over
// state before it requests the load.
type GameOverScene struct {
	score int
}

// SetScore records the score the scene should present.
func (s *GameOverScene) SetScore(score int) {
	s.score = score
}

func (s *GameOverScene) Draw(screen tcell.Screen) {
	_, h := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	drawCentered(screen, h/2-1, style, "game over")
	drawCentered(screen, h/2+1, tcell.StyleDefault, fmt.Sprintf("score: %d", s.score))
	drawCentered(screen, h/2+3, tcell.StyleDefault, "[enter] retry  [m] menu")
}
