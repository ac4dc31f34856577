package game

import (
	"time"

	"github.com/diegok/calbreak/internal/layout"
)

// BallView is the drawable part of the ball.
type BallView struct {
	X, Y     float64
	Radius   float64
	Attached bool
}

// BrickView is an alive brick with its meeting details.
type BrickView struct {
	Rect    layout.Rect
	Meeting layout.Meeting
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Width, Height float64
	Tick          int
	Paddle        layout.Rect
	Ball          BallView
	Bricks        []BrickView
	Total         int // Bricks in the week, alive or not
	Grid          layout.Grid
	WeekStart     time.Time
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]BrickView, 0, len(g.Bricks))
	for _, b := range g.Bricks {
		if !b.Alive {
			continue
		}
		bricks = append(bricks, BrickView{Rect: b.Rect, Meeting: b.Meeting})
	}

	return Snapshot{
		Width:     g.Width,
		Height:    g.Height,
		Tick:      g.Tick,
		Paddle:    g.Paddle.Rect(),
		Ball:      BallView{X: g.Ball.X, Y: g.Ball.Y, Radius: g.Ball.Radius, Attached: g.Ball.OnPaddle},
		Bricks:    bricks,
		Total:     len(g.Bricks),
		Grid:      g.Grid,
		WeekStart: g.WeekStart,
	}
}
