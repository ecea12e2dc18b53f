package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-skier/audio"
	"github.com/lixenwraith/vi-skier/config"
	"github.com/lixenwraith/vi-skier/core"
	"github.com/lixenwraith/vi-skier/engine"
	"github.com/lixenwraith/vi-skier/input"
	"github.com/lixenwraith/vi-skier/physics"
	"github.com/lixenwraith/vi-skier/render"
	"github.com/lixenwraith/vi-skier/system"
	"github.com/lixenwraith/vi-skier/vmath"
)

var (
	configFlag  = flag.String("config", "", "Path to TOML config (default "+config.DefaultPath+" if present)")
	keymapFlag  = flag.String("keymap", "", "Path to TOML keymap overrides")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/")
	seedFlag    = flag.Uint64("seed", 0, "Fix the course seed (0 picks one from the clock)")
	noAudioFlag = flag.Bool("no-audio", false, "Disable sound")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-skier: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "vi-skier: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, TOML file, .env and environment, then flags
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *noAudioFlag {
		cfg.Audio.Enabled = false
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	return cfg, cfg.Validate()
}

func loadKeys() (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if *keymapFlag == "" {
		return keys, nil
	}
	data, err := os.ReadFile(*keymapFlag)
	if err != nil {
		return nil, err
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(keys, override), nil
}

func run(cfg *config.Config) error {
	log := logrus.WithField("component", "main")

	keys, err := loadKeys()
	if err != nil {
		return fmt.Errorf("keymap: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)

	scene := render.NewScene()
	world := physics.NewWorld(cfg.Gravity, cfg.Lane.Width)
	game, err := engine.NewGame(cfg, scene, world, vmath.NewFastRand(cfg.Seed))
	if err != nil {
		return err
	}
	system.Install(game)
	defer game.Close()

	log.WithFields(logrus.Fields{
		"seed":        cfg.Seed,
		"slots":       cfg.Lane.Slots,
		"max_hazards": cfg.Ledger.MaxHazards,
		"kinds":       cfg.Spawn.Kinds,
	}).Info("run started")

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer sound.Cleanup()
	sound.StartWind()

	renderer := render.NewTerminalRenderer(screen)
	machine := input.NewMachine(keys)
	steering := input.NewSteering(cfg.Player.SteerHold.Duration)
	muted := false

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(cfg.FrameInterval.Duration)
	defer frameTicker.Stop()
	// Long stalls (suspend, debugger) are folded into a few frames
	maxStep := 4 * cfg.FrameInterval.Duration
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			intent := machine.Process(ev)
			switch intent {
			case input.IntentQuit:
				return nil
			case input.IntentResize:
				screen.Sync()
				renderer.Resize()
			case input.IntentPause:
				game.TogglePause()
			case input.IntentRestart:
				steering.Release()
				game.Reset()
			case input.IntentSkip:
				game.SkipDeath()
			case input.IntentToggleMute:
				muted = !muted
				if muted {
					sound.SetVolume(0)
				} else {
					sound.SetVolume(cfg.Audio.Volume)
				}
			case input.IntentSteerLeft, input.IntentSteerRight:
				steering.Press(intent.SteerDirection())
			}

		case now := <-frameTicker.C:
			dt := now.Sub(last)
			last = now
			if dt > maxStep {
				dt = maxStep
			}

			game.Player.Intent = steering.Advance(dt)
			game.Tick(dt)
			sound.HandleEvents(game.Events.Drain())
			renderer.RenderFrame(game, scene)
		}
	}
}
