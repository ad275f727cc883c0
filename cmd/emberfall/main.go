package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tarwick/emberfall/audio"
	"github.com/tarwick/emberfall/engine"
	"github.com/tarwick/emberfall/events"
	"github.com/tarwick/emberfall/game"
	"github.com/tarwick/emberfall/scene"
)

const frameInterval = 33 * time.Millisecond

var (
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to logs/")
	muteFlag   = flag.Bool("mute", false, "Disable audio cues")
	levelFlag  = flag.String("level", engine.DefaultLevel, "Level to start gameplay in")
	configFlag = flag.String("config", "", "Optional YAML state-graph override")
)

func main() {
	flag.Parse()

	log, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	// Resolve the state graph before touching the terminal so config
	// errors print cleanly.
	table := engine.DefaultTable()
	initial := engine.StateMainMenu
	if *configFlag != "" {
		data, err := os.ReadFile(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read state config: %v\n", err)
			os.Exit(1)
		}
		table, initial, err = engine.LoadTableConfig(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load state config: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the stack so
	// the trace is readable after the alternate screen is torn down.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nEMBERFALL CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	bus := events.NewBus(log)

	cues := audio.NewCues(log)
	cues.SetMute(*muteFlag)
	cues.Attach(bus)

	scenes := scene.NewLoader(log)
	playfield := &scene.GameplayScene{}
	summary := &scene.GameOverScene{}
	scenes.Register(scene.NameMainMenu, scene.MenuScene{})
	scenes.Register(scene.NameGameplay, playfield)
	scenes.Register(scene.NamePaused, scene.PausedScene{})
	scenes.Register(scene.NameGameOver, summary)

	gameplay := game.NewGameplayState(scenes, playfield, log)

	manager := engine.NewManager(table, bus, log)
	manager.Register(engine.StateMainMenu, game.NewMainMenuState(scenes, log))
	manager.Register(engine.StateGameplay, gameplay)
	manager.Register(engine.StatePaused, game.NewPausedState(scenes, log))
	manager.Register(engine.StateGameOver, game.NewGameOverState(scenes, summary, log))

	if err := manager.Initialize(initial, nil); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to enter initial state: %v\n", err)
		os.Exit(1)
	}

	run(screen, manager, gameplay, scenes)
}

// run drives the cooperative loop: input events and a fixed-interval tick
// feeding Manager.Update with the measured delta.
func run(screen tcell.Screen, manager *engine.Manager, gameplay *game.GameplayState, scenes *scene.Loader) {
	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			switch tev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if !handleKey(tev, manager, gameplay) {
					return
				}
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			manager.Update(dt)

			screen.Clear()
			scenes.Draw(screen)
			screen.Show()
		}
	}
}

// handleKey routes input to transition requests. Returns false to quit.
// Rejected transitions are logged by the manager; input simply has no
// effect in states where the key is not meaningful.
func handleKey(ev *tcell.EventKey, manager *engine.Manager, gameplay *game.GameplayState) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false

	case tcell.KeyEnter:
		ctx := engine.Context{engine.KeyLevel: *levelFlag}
		switch manager.Current() {
		case engine.StateMainMenu, engine.StateGameOver:
			manager.ChangeState(engine.StateGameplay, ctx)
		}
		return true

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'p':
			switch manager.Current() {
			case engine.StateGameplay:
				manager.ChangeState(engine.StatePaused, nil)
			case engine.StatePaused:
				manager.ChangeState(engine.StateGameplay,
					engine.Context{engine.KeyLevel: gameplay.Level()})
			}
		case 'g':
			if manager.Current() == engine.StateGameplay {
				score := int(gameplay.Elapsed().Seconds() * 100)
				manager.ChangeState(engine.StateGameOver,
					engine.Context{engine.KeyScore: score})
			}
		case 'm':
			switch manager.Current() {
			case engine.StatePaused, engine.StateGameOver:
				manager.ChangeState(engine.StateMainMenu, nil)
			}
		}
	}

	return true
}
