package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/MaslovStas/BattleSea/audio"
	"github.com/MaslovStas/BattleSea/engine"
	"github.com/MaslovStas/BattleSea/game"
	"github.com/MaslovStas/BattleSea/player"
	"github.com/MaslovStas/BattleSea/tui"
)

var (
	tuiFlag     = flag.Bool("tui", false, "Full-screen interface instead of the line console")
	revealFlag  = flag.Bool("reveal", false, "Show the enemy fleet through the fog (full-screen only)")
	noSoundFlag = flag.Bool("nosound", false, "Disable sound effects (full-screen only)")
	seedFlag    = flag.Int64("seed", 0, "Random seed, 0 draws one from the clock")
	nameFlag    = flag.String("name", "Captain", "Player name in announcements")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to logs/battlesea.log")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			// Restore terminal to sane state immediately
			tui.EmergencyReset(os.Stdout)

			// Print error and stack trace to stderr so it's visible after reset
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBATTLESEA CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if *tuiFlag {
		runFullScreen()
		return
	}
	runConsole()
}

// runConsole plays the classic line game on stdin/stdout.
func runConsole() {
	rng := engine.NewRand(*seedFlag)

	humanBoard, err := engine.NewBoard(engine.DefaultSize, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to lay out the fleet: %v\n", err)
		os.Exit(1)
	}
	aiBoard, err := engine.NewBoard(engine.DefaultSize, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to lay out the fleet: %v\n", err)
		os.Exit(1)
	}

	human := player.NewHuman(*nameFlag, humanBoard, os.Stdin, os.Stdout)
	ai := player.NewAI(aiBoard, rng, os.Stdout)

	result, err := game.New(human, ai, os.Stdout).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Game aborted: %v\n", err)
		os.Exit(1)
	}
	log.Printf("match over: winner=%s human=%d ai=%d", result.Winner.Name(), result.HumanShots, result.AIShots)
}

// runFullScreen plays the same match on the tcell screen.
func runFullScreen() {
	sound := audio.NewSoundManager()
	if !*noSoundFlag {
		if err := sound.Initialize(); err != nil {
			fmt.Printf("Audio initialization failed: %v (continuing without audio)\n", err)
		}
	}
	defer sound.Cleanup()

	app, err := tui.NewApp(tui.Config{
		Seed:   *seedFlag,
		Reveal: *revealFlag,
		Name:   *nameFlag,
		Sound:  sound,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer app.Cleanup()

	app.Run()
}
