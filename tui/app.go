// Package tui is the full-screen front-end: both boards side by side,
// cursor aiming over the enemy waters and the same turn rules as the
// console game.
package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/MaslovStas/BattleSea/audio"
	"github.com/MaslovStas/BattleSea/engine"
	"github.com/MaslovStas/BattleSea/player"
)

const (
	frameIntervalMs = 16
	cursorBlinkMs   = 500
)

// Config selects how the app is assembled.
type Config struct {
	// Seed drives fleet placement, movement and the computer's aim.
	// Zero means a time-based seed.
	Seed int64

	// Reveal shows the enemy fleet instead of the fog of war.
	Reveal bool

	// Name labels the human player in announcements.
	Name string

	// Sound plays the battle cues. An uninitialized manager stays
	// silent.
	Sound *audio.SoundManager
}

// App owns the screen and the running match.
type App struct {
	screen        tcell.Screen
	width, height int

	humanBoard *engine.Board
	aiBoard    *engine.Board
	ai         *player.AI

	name   string
	reveal bool
	sound  *audio.SoundManager

	// Cursor over the enemy grid
	cursorRow, cursorCol int
	cursorBlinkTime      time.Time

	// Shot history the engine keeps no record of: misses into open
	// water, marked per grid cell for display only.
	humanMisses [][]bool
	aiMisses    [][]bool

	humanShots, aiShots int
	round               int
	message             string

	gameOver bool
	winner   string
}

// NewApp builds the app on a fresh terminal screen.
func NewApp(cfg Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newAppWithScreen(screen, cfg)
}

// newAppWithScreen finishes construction on an initialized screen. Split
// out so tests can drive the app on a simulation screen.
func newAppWithScreen(screen tcell.Screen, cfg Config) (*App, error) {
	rng := engine.NewRand(cfg.Seed)

	humanBoard, err := engine.NewBoard(engine.DefaultSize, rng)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	aiBoard, err := engine.NewBoard(engine.DefaultSize, rng)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	name := cfg.Name
	if name == "" {
		name = "Captain"
	}
	sound := cfg.Sound
	if sound == nil {
		sound = audio.NewSoundManager()
	}

	a := &App{
		screen:          screen,
		humanBoard:      humanBoard,
		aiBoard:         aiBoard,
		ai:              player.NewAI(aiBoard, rng, nowhere{}),
		name:            name,
		reveal:          cfg.Reveal,
		sound:           sound,
		cursorRow:       engine.DefaultSize / 2,
		cursorCol:       engine.DefaultSize / 2,
		cursorBlinkTime: time.Now(),
		humanMisses:     newMarks(engine.DefaultSize),
		aiMisses:        newMarks(engine.DefaultSize),
		round:           1,
		message:         "Aim and fire. The enemy fleet is out there.",
	}
	a.width, a.height = screen.Size()
	return a, nil
}

// nowhere swallows the computer player's console announcements; the app
// writes its own message line.
type nowhere struct{}

func (nowhere) Write(p []byte) (int, error) { return len(p), nil }

func newMarks(size int) [][]bool {
	m := make([][]bool, size)
	for i := range m {
		m[i] = make([]bool, size)
	}
	return m
}

// Run drives the event loop until the player quits.
func (a *App) Run() {
	ticker := time.NewTicker(frameIntervalMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
			a.draw()

		case <-ticker.C:
			a.draw()
		}
	}
}

// Cleanup releases the terminal.
func (a *App) Cleanup() {
	a.screen.Fini()
}

func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if a.gameOver {
			// Only leaving the battlefield is left to do.
			if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return false
			}
			return true
		}

		switch ev.Key() {
		case tcell.KeyUp:
			a.moveCursor(-1, 0)
		case tcell.KeyDown:
			a.moveCursor(1, 0)
		case tcell.KeyLeft:
			a.moveCursor(0, -1)
		case tcell.KeyRight:
			a.moveCursor(0, 1)
		case tcell.KeyEnter:
			a.fire()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				a.moveCursor(0, -1)
			case 'j':
				a.moveCursor(1, 0)
			case 'k':
				a.moveCursor(-1, 0)
			case 'l':
				a.moveCursor(0, 1)
			case ' ':
				a.fire()
			}
		}

	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.screen.Sync()
	}

	return true
}

func (a *App) moveCursor(dRow, dCol int) {
	a.cursorRow = clamp(a.cursorRow+dRow, 0, a.aiBoard.Size()-1)
	a.cursorCol = clamp(a.cursorCol+dCol, 0, a.aiBoard.Size()-1)
	a.cursorBlinkTime = time.Now()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
