package game

import "github.com/diegok/calbreak/internal/layout"

const (
	PaddleWidth        = 160
	PaddleHeight       = 18
	PaddleBottomOffset = 60   // Distance from the paddle top to the field bottom
	PaddleSmoothing    = 0.35 // Fraction of the remaining distance covered per tick
	PaddleSpeed        = 9
	KeyboardBoost      = 2.2
)

type Paddle struct {
	X, Y          float64
	Width, Height float64
	TargetX       float64
	FieldWidth    float64

	MoveLeft  bool
	MoveRight bool

	// HoldTimeout releases held directions after this many ticks without a
	// refresh. Zero keeps them held until explicitly released.
	HoldTimeout int
	holdTicks   int
}

func NewPaddle(fieldWidth, fieldHeight float64) *Paddle {
	p := &Paddle{
		Y:          fieldHeight - PaddleBottomOffset,
		Width:      PaddleWidth,
		Height:     PaddleHeight,
		FieldWidth: fieldWidth,
	}
	p.Center()
	return p
}

// Center moves the paddle, and its target, to the middle of the field.
func (p *Paddle) Center() {
	p.X = clamp(p.FieldWidth/2-p.Width/2, 0, p.MaxX())
	p.TargetX = p.X
}

// SetTarget sets the x the paddle's left edge eases toward.
func (p *Paddle) SetTarget(x float64) {
	p.TargetX = x
}

func (p *Paddle) SetMoveLeft(held bool) {
	p.MoveLeft = held
	p.refreshHold(held)
}

func (p *Paddle) SetMoveRight(held bool) {
	p.MoveRight = held
	p.refreshHold(held)
}

func (p *Paddle) refreshHold(held bool) {
	if held {
		p.holdTicks = p.HoldTimeout
	}
}

// Update eases toward the target and clamps to the field.
func (p *Paddle) Update() {
	delta := 0.0
	if p.MoveRight {
		delta++
	}
	if p.MoveLeft {
		delta--
	}
	if delta != 0 {
		p.TargetX = p.X + delta*PaddleSpeed*KeyboardBoost
	}

	p.X += (p.TargetX - p.X) * PaddleSmoothing
	p.X = clamp(p.X, 0, p.MaxX())

	if p.HoldTimeout > 0 && p.holdTicks > 0 {
		p.holdTicks--
		if p.holdTicks == 0 {
			p.MoveLeft = false
			p.MoveRight = false
		}
	}
}

// MaxX is the largest left-edge position that keeps the paddle on the field.
func (p *Paddle) MaxX() float64 {
	if p.FieldWidth < p.Width {
		return 0
	}
	return p.FieldWidth - p.Width
}

func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

func (p *Paddle) Rect() layout.Rect {
	return layout.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
