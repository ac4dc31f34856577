package game

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/diegok/calbreak/internal/layout"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

var testNow = time.Date(2026, 10, 14, 10, 30, 0, 0, time.UTC)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(Options{
		Width:  1280,
		Height: 720,
		Clock:  fixedClock(testNow),
		Rand:   rand.New(rand.NewSource(1)),
		Flavor: rand.New(rand.NewSource(2)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

// isolate leaves a single alive brick far from the action so the week is
// never cleared by accident.
func isolate(g *Game, bricks ...*Brick) {
	far := &Brick{Rect: layout.Rect{X: 1200, Y: 60, W: 10, H: 10}, Alive: true}
	g.Bricks = append(bricks, far)
}

func TestNew(t *testing.T) {
	g := newTestGame(t)

	if len(g.Bricks) != 16 {
		t.Errorf("expected 16 bricks, got %d", len(g.Bricks))
	}
	if g.AliveCount() != len(g.Bricks) {
		t.Errorf("expected all bricks alive, got %d/%d", g.AliveCount(), len(g.Bricks))
	}
	if !g.Ball.OnPaddle {
		t.Error("expected ball attached after construction")
	}
	if g.Ball.X != g.Paddle.CenterX() {
		t.Errorf("expected ball centered on paddle, got X=%f", g.Ball.X)
	}
	if !g.WeekStart.Equal(time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected week start %v", g.WeekStart)
	}
	if g.Weeks != 1 {
		t.Errorf("expected Weeks=1, got %d", g.Weeks)
	}
}

func TestNew_InvalidField(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
	}{
		{"zero width", 0, 720},
		{"zero height", 1280, 0},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(Options{Width: tt.width, Height: tt.height})
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, layout.ErrInvalidViewport) {
				t.Errorf("expected ErrInvalidViewport, got %v", err)
			}
			if g != nil {
				t.Error("expected nil game")
			}
		})
	}
}

func TestGame_BricksDeterministic(t *testing.T) {
	a := newTestGame(t)
	b, err := New(Options{
		Width:  1280,
		Height: 720,
		Clock:  fixedClock(testNow),
		Flavor: rand.New(rand.NewSource(42)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a.Bricks) != len(b.Bricks) {
		t.Fatalf("expected equal brick counts, got %d and %d", len(a.Bricks), len(b.Bricks))
	}
	for i := range a.Bricks {
		if a.Bricks[i].Rect != b.Bricks[i].Rect {
			t.Errorf("brick %d: rect differs: %+v vs %+v", i, a.Bricks[i].Rect, b.Bricks[i].Rect)
		}
	}
}

func TestGame_Launch(t *testing.T) {
	g := newTestGame(t)

	if !g.Launch() {
		t.Fatal("expected launch from paddle to succeed")
	}
	if g.Ball.OnPaddle {
		t.Error("expected ball to be free")
	}
	if math.Abs(g.Ball.VX) != LaunchVX || g.Ball.VY != -LaunchVY {
		t.Errorf("unexpected launch velocity (%f,%f)", g.Ball.VX, g.Ball.VY)
	}

	vx, vy := g.Ball.VX, g.Ball.VY
	if g.Launch() {
		t.Error("expected launch while free to be a no-op")
	}
	if g.Ball.VX != vx || g.Ball.VY != vy {
		t.Error("expected velocity unchanged by repeated launch")
	}
}

func TestGame_AttachedBallFollowsPaddle(t *testing.T) {
	g := newTestGame(t)
	g.SetPaddleTarget(100)

	for i := 0; i < 30; i++ {
		g.Update()
		if g.Ball.X != g.Paddle.CenterX() {
			t.Fatalf("tick %d: ball X=%f, paddle center=%f", i, g.Ball.X, g.Paddle.CenterX())
		}
		if g.Ball.Y != g.Paddle.Y-g.Ball.Radius-AttachGap {
			t.Fatalf("tick %d: ball not resting on paddle, Y=%f", i, g.Ball.Y)
		}
	}
}

func TestGame_PaddleClampedEveryTick(t *testing.T) {
	g := newTestGame(t)
	g.Launch()

	for i := 0; i < 1000; i++ {
		if i%50 < 25 {
			g.SetPaddleTarget(-500)
		} else {
			g.SetPaddleTarget(5000)
		}
		g.Update()

		if g.Paddle.X < 0 || g.Paddle.X > g.Width-g.Paddle.Width {
			t.Fatalf("tick %d: paddle out of bounds: X=%f", i, g.Paddle.X)
		}
		if g.Ball.OnPaddle {
			g.Launch()
		}
	}
}

func TestGame_PaddleBounceSpeedsUp(t *testing.T) {
	g := newTestGame(t)
	g.Ball.OnPaddle = false
	g.Ball.X = g.Paddle.CenterX() + 20
	g.Ball.Y = 646
	g.Ball.VX, g.Ball.VY = 3, 4
	before := g.Ball.Speed()

	res := g.Update()

	if !res.PaddleHit {
		t.Fatal("expected paddle hit")
	}
	if math.Abs(g.Ball.Speed()-before*PaddleSpeedUp) > 1e-9 {
		t.Errorf("expected speed %f, got %f", before*PaddleSpeedUp, g.Ball.Speed())
	}
	if g.Ball.VY >= 0 {
		t.Errorf("expected ball heading up, VY=%f", g.Ball.VY)
	}
}

func TestGame_Miss(t *testing.T) {
	g := newTestGame(t)
	g.Bricks[0].Alive = false
	g.Bricks[3].Alive = false
	alive := g.AliveCount()

	g.Ball.OnPaddle = false
	g.Ball.X = 200
	g.Ball.Y = 720.5
	g.Ball.VX, g.Ball.VY = 1, 2

	res := g.Update()

	if !res.Missed {
		t.Fatal("expected miss")
	}
	if !g.Ball.OnPaddle {
		t.Error("expected ball attached after miss")
	}
	if g.Ball.X != g.Paddle.CenterX() || g.Ball.Y != g.Paddle.Y-g.Ball.Radius-AttachGap {
		t.Errorf("expected ball re-centered on paddle, got (%f,%f)", g.Ball.X, g.Ball.Y)
	}
	if g.AliveCount() != alive {
		t.Errorf("expected %d alive bricks, got %d", alive, g.AliveCount())
	}
	if g.Bricks[0].Alive || g.Bricks[3].Alive {
		t.Error("expected dead bricks to stay dead")
	}
	if g.Weeks != 1 {
		t.Errorf("expected no regeneration on miss, Weeks=%d", g.Weeks)
	}
}

func TestGame_OneBrickPerTick(t *testing.T) {
	g := newTestGame(t)
	first := &Brick{Rect: layout.Rect{X: 390, Y: 280, W: 20, H: 15}, Alive: true}
	second := &Brick{Rect: layout.Rect{X: 390, Y: 280, W: 20, H: 15}, Alive: true}
	isolate(g, first, second)

	g.Ball.OnPaddle = false
	g.Ball.X, g.Ball.Y = 400, 300
	g.Ball.VX, g.Ball.VY = 0, -1

	res := g.Update()

	if res.Broken != first {
		t.Fatalf("expected first brick broken, got %+v", res.Broken)
	}
	if first.Alive {
		t.Error("expected first brick dead")
	}
	if !second.Alive {
		t.Error("expected second brick to survive this tick")
	}
	if g.Ball.VY <= 0 {
		t.Errorf("expected ball to bounce down off brick bottom, VY=%f", g.Ball.VY)
	}
}

func TestGame_DeadBricksIgnored(t *testing.T) {
	g := newTestGame(t)
	dead := &Brick{Rect: layout.Rect{X: 390, Y: 280, W: 20, H: 15}}
	isolate(g, dead)

	g.Ball.OnPaddle = false
	g.Ball.X, g.Ball.Y = 400, 300
	g.Ball.VX, g.Ball.VY = 0, -1

	res := g.Update()

	if res.Broken != nil {
		t.Errorf("expected no brick broken, got %+v", res.Broken)
	}
	if g.Ball.VY != -1 {
		t.Errorf("expected VY unchanged, got %f", g.Ball.VY)
	}
}

func TestGame_WeekCleared(t *testing.T) {
	g := newTestGame(t)
	g.Launch()
	for _, b := range g.Bricks {
		b.Alive = false
	}

	res := g.Update()

	if !res.Cleared {
		t.Fatal("expected week cleared")
	}
	if len(g.Bricks) == 0 || g.AliveCount() != len(g.Bricks) {
		t.Errorf("expected a full new brick set, got %d/%d alive", g.AliveCount(), len(g.Bricks))
	}
	if !g.Ball.OnPaddle {
		t.Error("expected ball attached after clearing the week")
	}
	if g.Weeks != 2 {
		t.Errorf("expected Weeks=2, got %d", g.Weeks)
	}
}

func TestGame_LastBrickClearsWeek(t *testing.T) {
	g := newTestGame(t)
	last := &Brick{Rect: layout.Rect{X: 390, Y: 280, W: 20, H: 15}, Alive: true}
	g.Bricks = []*Brick{last}

	g.Ball.OnPaddle = false
	g.Ball.X, g.Ball.Y = 400, 300
	g.Ball.VX, g.Ball.VY = 0, -1

	res := g.Update()

	if res.Broken != last || !res.Cleared {
		t.Fatalf("expected last brick broken and week cleared, got %+v", res)
	}
	if len(g.Bricks) != 16 {
		t.Errorf("expected regenerated week of 16 bricks, got %d", len(g.Bricks))
	}
}

func TestGame_Reset(t *testing.T) {
	g := newTestGame(t)
	g.Launch()
	g.Paddle.X = 0
	g.Bricks[1].Alive = false

	g.Reset()

	if !g.Ball.OnPaddle {
		t.Error("expected ball attached after reset")
	}
	if g.Paddle.X != 560 {
		t.Errorf("expected paddle centered, got X=%f", g.Paddle.X)
	}
	if g.AliveCount() != len(g.Bricks) {
		t.Error("expected all bricks alive after reset")
	}
	if g.Weeks != 2 {
		t.Errorf("expected Weeks=2, got %d", g.Weeks)
	}
}

func TestGame_Snapshot(t *testing.T) {
	g := newTestGame(t)
	g.Bricks[0].Alive = false
	g.Update()

	s := g.Snapshot()

	if s.Tick != 1 {
		t.Errorf("expected Tick=1, got %d", s.Tick)
	}
	if len(s.Bricks) != len(g.Bricks)-1 {
		t.Errorf("expected %d alive bricks in snapshot, got %d", len(g.Bricks)-1, len(s.Bricks))
	}
	if s.Total != len(g.Bricks) {
		t.Errorf("expected Total=%d, got %d", len(g.Bricks), s.Total)
	}
	if s.Bricks[0].Meeting.ID != g.Bricks[1].Meeting.ID {
		t.Error("expected snapshot to preserve brick order")
	}
	if !s.Ball.Attached || s.Ball.Radius != BallRadius {
		t.Errorf("unexpected ball view %+v", s.Ball)
	}
	if s.Paddle != g.Paddle.Rect() {
		t.Errorf("expected paddle rect %+v, got %+v", g.Paddle.Rect(), s.Paddle)
	}
}
