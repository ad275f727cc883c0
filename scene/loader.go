// Package scene manages named scene resources. States request loads and
// unloads during their lifecycle hooks; the loader keeps at most one scene
// active and swaps synchronously.
package scene

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
)

// Scene is a loadable unit of renderable content.
type Scene interface {
	Draw(screen tcell.Screen)
}

// Loader registers scenes by name and tracks the active one.
type Loader struct {
	scenes  map[string]Scene
	current string
	active  Scene
	log     *slog.Logger
}

// NewLoader creates an empty loader. A nil logger falls back to
// slog.Default.
func NewLoader(log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{
		scenes: make(map[string]Scene),
		log:    log,
	}
}

// Register binds a scene under name. Registration happens once at startup.
func (l *Loader) Register(name string, s Scene) {
	l.scenes[name] = s
}

// Load activates the named scene. Requesting the scene that is already
// loaded logs a warning and is a no-op. Otherwise the previous scene is
// unloaded synchronously before the new one becomes active. An unknown
// name logs an error and leaves the current scene in place.
func (l *Loader) Load(name string) {
	if name == l.current && l.active != nil {
		l.log.Warn("scene already loaded", "scene", name)
		return
	}

	s, ok := l.scenes[name]
	if !ok {
		l.log.Error("unknown scene requested", "scene", name)
		return
	}

	if l.active != nil {
		l.log.Debug("unloading scene", "scene", l.current)
	}

	l.current = name
	l.active = s
	l.log.Info("scene loaded", "scene", name)
}

// Unload deactivates the current scene, if any.
func (l *Loader) Unload() {
	if l.active == nil {
		return
	}

	l.log.Debug("unloading scene", "scene", l.current)
	l.current = ""
	l.active = nil
}

// Current returns the active scene name, or "" when nothing is loaded.
func (l *Loader) Current() string {
	return l.current
}

// Draw renders the active scene, if any.
func (l *Loader) Draw(screen tcell.Screen) {
	if l.active == nil || screen == nil {
		return
	}
	l.active.Draw(screen)
}
