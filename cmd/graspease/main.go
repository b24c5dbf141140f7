package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/graspease/audio"
	"github.com/lixenwraith/graspease/config"
	"github.com/lixenwraith/graspease/core"
	"github.com/lixenwraith/graspease/input"
	"github.com/lixenwraith/graspease/render"
	"github.com/lixenwraith/graspease/session"
	"github.com/lixenwraith/graspease/signal"
	"github.com/lixenwraith/graspease/status"
)

func main() {
	os.Exit(mainCode(flag.CommandLine, os.Args[1:]))
}

// mainCode runs the program and returns the process exit code
// Deferred cleanup, the log file included, completes before main exits
func mainCode(fs *flag.FlagSet, args []string) int {
	cfg, err := config.Parse(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "graspease: %v\n", err)
		return 2
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("exiting: %v", err)
		fmt.Fprintf(os.Stderr, "graspease: %v\n", err)
		return 1
	}
	return 0
}

func run(cfg config.Config) error {
	reg := status.NewRegistry()
	tuning := cfg.Tuning()

	sound := audio.NewPlayer(cfg.Volume)
	sound.SetMuted(cfg.Mute)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the game runs silent
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Landmark stream when configured, mouse button otherwise
	latch := &signal.Latch{}
	var pointer *signal.Pointer
	if cfg.Landmarks != "" {
		src, err := openLandmarks(cfg.Landmarks)
		if err != nil {
			return err
		}
		defer src.Close()

		reader := signal.NewReader(src, latch, reg)
		go func() {
			if err := reader.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("landmark reader stopped: %v", err)
			}
		}()
		log.Printf("reading hand landmarks from %s", cfg.Landmarks)
	} else {
		pointer = signal.NewPointer(latch)
	}

	sess, err := session.New(session.Options{
		Tuning:  tuning,
		Metrics: reg,
		Seed:    cfg.Seed,
		Hooks: session.Hooks{
			OnRunStart: func(core.GameKind, string) { sound.Play(audio.CueStart) },
			OnPass:     func(int) { sound.Play(audio.CuePass) },
			OnGameOver: func(session.Result) { sound.Play(audio.CueCrash) },
		},
	})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGRASPEASE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, tuning.Width, tuning.Height, reg)
	handler := input.NewHandler(sess, pointer, sound, renderer.Layout, cfg.PlayerName)
	handler.SetDebug(cfg.Debug)

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// PollEvent returns nil once the screen is finalized
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	interval := tuning.TickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	load := reg.Gauges.Get(status.KeyTickLoad)

	log.Printf("graspease started: %d Hz, area %gx%g", tuning.TickRate, tuning.Width, tuning.Height)
	renderer.RenderFrame(sess.Snapshot(), handler.UI())

	for {
		select {
		case ev := <-eventChan:
			if !handler.HandleEvent(ev) {
				log.Printf("graspease exiting")
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			renderer.RenderFrame(sess.Snapshot(), handler.UI())

		case <-ticker.C:
			start := time.Now()
			sess.Tick(latch.Load())
			load.Set(float64(time.Since(start)) / float64(interval))
			renderer.RenderFrame(sess.Snapshot(), handler.UI())
		}
	}
}

// openLandmarks opens the NDJSON source, "-" is stdin
func openLandmarks(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open landmarks: %w", err)
	}
	return f, nil
}
