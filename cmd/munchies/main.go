package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/munchies/audio"
	"github.com/lixenwraith/munchies/config"
	"github.com/lixenwraith/munchies/constants"
	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/input"
	"github.com/lixenwraith/munchies/level"
	"github.com/lixenwraith/munchies/profile"
	"github.com/lixenwraith/munchies/render"
	"github.com/lixenwraith/munchies/session"
	"github.com/lixenwraith/munchies/spectate"
	"github.com/lixenwraith/munchies/status"
)

var (
	configFlag  = flag.String("config", config.DefaultFileName, "Path to munchies.toml")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to the log directory")
	addrFlag    = flag.String("addr", "", "Spectator websocket listen address, e.g. :8080")
	profileFlag = flag.String("profile", "", "Profile file path")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *addrFlag != "" {
		cfg.Spectate.Addr = *addrFlag
	}
	if *profileFlag != "" {
		cfg.Profile.Path = *profileFlag
	}

	logger, logFile := setupLogging(cfg.Log.Dir, cfg.Log.Debug, cfg.Log.Level)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "munchies: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	screen.EnableMouse()
	defer screen.Fini()

	// Terminal must be restored before anything is printed
	crash := func(who string) func(r any) {
		return func(r any) {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mMUNCHIES %s CRASHED: %v\x1b[0m\r\n", who, r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}

	settings := cfg.Settings()
	renderer := render.NewRenderer(screen, settings.MapSize)

	sound := audio.NewSoundManager(cfg.AudioSettings())
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
	}
	defer sound.Close()

	clock := engine.NewMonotonicTimeProvider()
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	reg := status.NewRegistry()

	world := engine.NewWorld(engine.Deps{
		Settings:  &settings,
		Clock:     clock,
		Rand:      rng,
		Logger:    logger,
		Status:    reg,
		Presenter: renderer,
		HUD:       renderer,
		Audio:     sound,
	})

	catalog, err := level.NewCatalog(rng)
	if err != nil {
		return errors.Wrap(err, "load layouts")
	}

	keyboard := input.NewKeyboard(input.DefaultKeyTable(), clock)
	stick := input.NewJoystick()
	store := profile.NewFileStore(cfg.Profile.Path)

	manager, err := session.NewManager(session.Options{
		World:  world,
		Store:  store,
		Levels: catalog,
		Input:  input.NewMux(keyboard, stick),
		Clock:  clock,
	})
	if err != nil {
		return err
	}

	hub := spectate.NewHub(spectate.Options{
		Commands: manager,
		Stick:    stick,
		Logger:   logger.WithPrefix("spectate"),
		Status:   reg,
	})

	loop := session.NewLoop(manager, constants.FrameInterval)
	loop.SetCrashHandler(crash("LOOP"))
	loop.OnFrame(func(m *session.Manager) {
		renderer.Draw(m.View())
	})
	loop.OnFrame(func(m *session.Manager) {
		hub.Broadcast(spectate.Capture(m.World(), m.State(), m.Paused()))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	if cfg.Spectate.Addr != "" {
		g.Go(func() error {
			return spectate.Serve(gctx, cfg.Spectate.Addr, hub, spectate.NewHandler(hub, reg))
		})
	}

	// PollEvent blocks until Fini, so the poller stays outside the group
	go pollEvents(screen, renderer, keyboard, manager, crash("EVENT POLLER"))

	logger.Info("munchies started", "spectate", cfg.Spectate.Addr, "profile", store.Path())
	err = g.Wait()
	hub.Close()
	if errors.Is(err, session.ErrQuit) {
		logger.Info("quit")
		return nil
	}
	return err
}

// pollEvents turns terminal events into session commands until the screen closes
func pollEvents(screen tcell.Screen, renderer *render.Renderer, keyboard *input.Keyboard, manager *session.Manager, crash func(r any)) {
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if cmd, ok := keyboard.HandleKey(ev); ok {
				manager.Post(cmd)
			}
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			x, y := ev.Position()
			if p, ok := renderer.ScreenToArena(x, y); ok {
				manager.Post(session.Command{Kind: session.CmdEditorClick, Point: p})
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
