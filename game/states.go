// Package game provides the concrete state variants behind the engine's
// lifecycle contract. Each state holds a shared reference to the scene
// loader supplied at construction; it does not manage the loader's
// lifecycle.
package game

import (
	"log/slog"
	"time"

	"github.com/tarwick/emberfall/engine"
	"github.com/tarwick/emberfall/scene"
)

// MainMenuState presents the title screen.
type MainMenuState struct {
	engine.NoopUpdate
	scenes *scene.Loader
	log    *slog.Logger
}

func NewMainMenuState(scenes *scene.Loader, log *slog.Logger) *MainMenuState {
	return &MainMenuState{scenes: scenes, log: log}
}

func (s *MainMenuState) Enter(engine.Context) {
	s.scenes.Load(scene.NameMainMenu)
}

func (s *MainMenuState) Exit() {}

// GameplayState runs the active level. Enter reads the level from the
// context (engine.DefaultLevel when absent) and tracks elapsed play time
// across Update calls.
type GameplayState struct {
	scenes    *scene.Loader
	playfield *scene.GameplayScene
	log       *slog.Logger

	level   string
	elapsed time.Duration
}

func NewGameplayState(scenes *scene.Loader, playfield *scene.GameplayScene, log *slog.Logger) *GameplayState {
	return &GameplayState{scenes: scenes, playfield: playfield, log: log}
}

func (s *GameplayState) Enter(ctx engine.Context) {
	s.level = ctx.Level()
	s.elapsed = 0
	s.playfield.SetLevel(s.level)
	s.scenes.Load(scene.NameGameplay)
	s.log.Info("gameplay started", "level", s.level)
}

func (s *GameplayState) Exit() {
	s.log.Info("gameplay ended", "level", s.level, "elapsed", s.elapsed)
}

func (s *GameplayState) Update(dt time.Duration) {
	s.elapsed += dt
}

// Level returns the level the state entered with.
func (s *GameplayState) Level() string {
	return s.level
}

// Elapsed returns accumulated play time since the last Enter.
func (s *GameplayState) Elapsed() time.Duration {
	return s.elapsed
}

// PausedState overlays the pause screen. Resuming transitions back into
// gameplay, which reloads the playfield scene.
type PausedState struct {
	engine.NoopUpdate
	scenes *scene.Loader
	log    *slog.Logger
}

func NewPausedState(scenes *scene.Loader, log *slog.Logger) *PausedState {
	return &PausedState{scenes: scenes, log: log}
}

func (s *PausedState) Enter(engine.Context) {
	s.scenes.Load(scene.NamePaused)
}

func (s *PausedState) Exit() {}

// GameOverState presents the final score read from the context.
type GameOverState struct {
	engine.NoopUpdate
	scenes  *scene.Loader
	summary *scene.GameOverScene
	log     *slog.Logger

	score int
}

func NewGameOverState(scenes *scene.Loader, summary *scene.GameOverScene, log *slog.Logger) *GameOverState {
	return &GameOverState{scenes: scenes, summary: summary, log: log}
}

func (s *GameOverState) Enter(ctx engine.Context) {
	s.score = ctx.Score()
	s.summary.SetScore(s.score)
	s.scenes.Load(scene.NameGameOver)
	s.log.Info("run finished", "score", s.score)
}

func (s *GameOverState) Exit() {}

// Score returns the score the state entered with.
func (s *GameOverState) Score() int {
	return s.score
}
