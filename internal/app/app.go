package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/calbreak/internal/config"
	"github.com/diegok/calbreak/internal/game"
	"github.com/diegok/calbreak/internal/loop"
	"github.com/diegok/calbreak/internal/ui"
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	clock     loop.Clock
	newScreen func() (*ui.Screen, error)

	screen   *ui.Screen
	renderer *ui.Renderer
	game     *game.Game
	loop     *loop.Loop
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{
		cfg:       cfg,
		logger:    logger,
		clock:     loop.RealClock{},
		newScreen: ui.InitScreen,
	}
}

// Run builds a game, takes over the terminal and blocks until the player
// quits, a signal arrives or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	g, err := a.newGame()
	if err != nil {
		return err
	}
	a.game = g

	screen, err := a.newScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	defer a.screen.Fini()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.loop = loop.New(a.clock, a.cfg.TickRate, loop.StepFunc(a.step), a.logger)

	a.logger.Info("game started",
		"field", fmt.Sprintf("%gx%g", a.cfg.FieldWidth, a.cfg.FieldHeight),
		"tick_rate", a.cfg.TickRate,
		"week", a.game.WeekStart.Format(time.DateOnly),
		"meetings", len(a.game.Bricks))

	a.renderer.Render(a.game.Snapshot())
	go a.pollEvents(cancel)

	if err := a.loop.Run(ctx); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	a.logger.Info("game stopped", "ticks", a.loop.Ticks(), "weeks", a.game.Weeks)
	return nil
}

func (a *App) newGame() (*game.Game, error) {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := game.New(game.Options{
		Width:     a.cfg.FieldWidth,
		Height:    a.cfg.FieldHeight,
		Clock:     a.clock,
		Rand:      rand.New(rand.NewSource(seed)),
		Flavor:    rand.New(rand.NewSource(seed + 1)),
		HoldTicks: a.cfg.HoldTicks,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return g, nil
}

// step runs on the loop goroutine.
func (a *App) step() {
	res := a.game.Update()

	switch {
	case res.Cleared:
		a.logger.Info("week cleared", "week", a.game.WeekStart.Format(time.DateOnly), "weeks", a.game.Weeks, "tick", a.game.Tick)
	case res.Missed:
		a.logger.Debug("ball missed", "tick", a.game.Tick)
	case res.Broken != nil:
		a.logger.Debug("meeting broken",
			"id", res.Broken.Meeting.ID,
			"title", res.Broken.Meeting.Title,
			"left", a.game.AliveCount())
	}

	a.renderer.Render(a.game.Snapshot())
}

// pollEvents forwards terminal input to the loop until the screen is
// finalized or the player quits.
func (a *App) pollEvents(cancel context.CancelFunc) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}

		if _, ok := ev.(*tcell.EventResize); ok {
			a.loop.Post(a.screen.Sync)
			continue
		}

		w, _ := a.screen.Size()
		cmd, quit := commandFor(ev, w, a.cfg.FieldWidth)
		if quit {
			a.logger.Debug("quit requested")
			cancel()
			return
		}
		if cmd == nil {
			continue
		}
		if !a.loop.Post(func() { cmd(a.game) }) {
			return
		}
	}
}

// commandFor maps a terminal event to an action on the game. quit reports
// whether the event should end the session.
func commandFor(ev tcell.Event, screenW int, fieldW float64) (cmd func(*game.Game), quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ui.KeyToCommand(ev.Key(), ev.Rune()) {
		case ui.CmdQuit:
			return nil, true
		case ui.CmdLeft:
			return func(g *game.Game) {
				g.SetMoveRight(false)
				g.SetMoveLeft(true)
			}, false
		case ui.CmdRight:
			return func(g *game.Game) {
				g.SetMoveLeft(false)
				g.SetMoveRight(true)
			}, false
		case ui.CmdLaunch:
			return func(g *game.Game) { g.Launch() }, false
		case ui.CmdReset:
			return func(g *game.Game) { g.Reset() }, false
		}

	case *tcell.EventMouse:
		x, _ := ev.Position()
		pointer := ui.PointerToField(x, screenW, fieldW)
		launch := ev.Buttons()&tcell.Button1 != 0
		return func(g *game.Game) {
			g.SetPaddleTarget(pointer - g.Paddle.Width/2)
			if launch {
				g.Launch()
			}
		}, false
	}

	return nil, false
}
