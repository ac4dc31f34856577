package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/diegok/calbreak/internal/layout"
)

// Clock supplies the current time used to place the week.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures a new Game. Zero Clock and Rand fall back to the
// system clock and a time-seeded source.
type Options struct {
	Width, Height float64
	Clock         Clock
	Rand          *rand.Rand // Launch direction
	Flavor        *rand.Rand // Meeting colors, attendees and ids
	HoldTicks     int
}

// TickResult reports what happened during one Update.
type TickResult struct {
	WallHit   bool
	PaddleHit bool
	Broken    *Brick
	Missed    bool
	Cleared   bool
}

// Game owns the paddle, ball and bricks and advances them one tick at a time.
type Game struct {
	Width     float64
	Height    float64
	Paddle    *Paddle
	Ball      *Ball
	Bricks    []*Brick
	Grid      layout.Grid
	WeekStart time.Time
	Tick      int
	Weeks     int // Schedules generated so far

	clock Clock
	rng   *rand.Rand
	gen   *layout.Generator
}

// New builds a game with a fresh week. It fails when the field is too small
// to hold a calendar.
func New(opts Options) (*Game, error) {
	paddle := NewPaddle(opts.Width, opts.Height)
	paddle.HoldTimeout = opts.HoldTicks

	grid, err := layout.NewGrid(opts.Width, opts.Height, paddle.Y)
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar layout: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = systemClock{}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		Width:  opts.Width,
		Height: opts.Height,
		Paddle: paddle,
		Ball:   NewBall(BallRadius),
		Grid:   grid,
		clock:  clock,
		rng:    rng,
		gen:    layout.NewGenerator(opts.Flavor),
	}
	g.Reset()
	return g, nil
}

// Reset centers the paddle, regenerates the week and reattaches the ball.
func (g *Game) Reset() {
	g.Paddle.Center()
	g.Regenerate()
	g.Ball.AttachTo(g.Paddle)
}

// Regenerate replaces every brick with a new schedule for the current week.
func (g *Game) Regenerate() {
	now := g.clock.Now()
	g.WeekStart = layout.StartOfWeek(now)
	g.Bricks = BuildBricks(g.Grid, g.gen.BuildCalendarEvents(now))
	g.Weeks++
}

// Launch frees an attached ball. It is a no-op while the ball is in flight.
func (g *Game) Launch() bool {
	if !g.Ball.OnPaddle {
		return false
	}
	g.Ball.AttachTo(g.Paddle)
	g.Ball.Launch(g.rng.Intn(2) == 0)
	return true
}

// SetPaddleTarget sets where the paddle's left edge eases toward.
func (g *Game) SetPaddleTarget(x float64) {
	g.Paddle.SetTarget(x)
}

func (g *Game) SetMoveLeft(held bool) {
	g.Paddle.SetMoveLeft(held)
}

func (g *Game) SetMoveRight(held bool) {
	g.Paddle.SetMoveRight(held)
}

// AliveCount returns the number of bricks still standing.
func (g *Game) AliveCount() int {
	n := 0
	for _, b := range g.Bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// Update runs one game tick
func (g *Game) Update() TickResult {
	var res TickResult
	g.Tick++

	g.Paddle.Update()

	if g.Ball.OnPaddle {
		g.Ball.AttachTo(g.Paddle)
	} else {
		g.stepBall(&res)
	}

	// Week cleared
	if g.AliveCount() == 0 {
		g.Regenerate()
		g.Ball.AttachTo(g.Paddle)
		res.Cleared = true
	}

	return res
}

func (g *Game) stepBall(res *TickResult) {
	ball := g.Ball

	ball.Move()

	res.WallHit = ball.bounceOffWalls(g.Width)

	if ball.TouchesPaddle(g.Paddle) {
		ball.BounceOffPaddle(g.Paddle)
		res.PaddleHit = true
	}

	// Missed: the leading edge left the field
	if ball.Y+ball.Radius > g.Height {
		ball.AttachTo(g.Paddle)
		res.Missed = true
		return
	}

	// At most one brick per tick, earliest first
	for _, brick := range g.Bricks {
		if !brick.Alive {
			continue
		}
		if CircleRect(ball.X, ball.Y, ball.Radius, brick.Rect) {
			brick.Alive = false
			ball.BounceOffRect(brick.Rect)
			res.Broken = brick
			break
		}
	}
}
