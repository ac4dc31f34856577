package game

import "math"

const (
	BallRadius    = 10
	LaunchVX      = 4.4
	LaunchVY      = 6.2
	MaxDeflection = 6.5  // Horizontal velocity at the paddle's edge
	PaddleSpeedUp = 1.02 // Speed multiplier per paddle hit
	AttachGap     = 2    // Gap between an attached ball and the paddle
	PaddleLiftGap = 1    // Gap after a paddle bounce
)

type Ball struct {
	X, Y     float64
	Radius   float64
	VX, VY   float64
	OnPaddle bool
}

func NewBall(radius float64) *Ball {
	return &Ball{Radius: radius, OnPaddle: true}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// AttachTo rests the ball centered above the paddle.
func (b *Ball) AttachTo(p *Paddle) {
	b.OnPaddle = true
	b.X = p.CenterX()
	b.Y = p.Y - b.Radius - AttachGap
	b.VX = 0
	b.VY = 0
}

// Launch frees the ball heading upward, to the right when right is true.
func (b *Ball) Launch(right bool) {
	b.VX = LaunchVX
	if !right {
		b.VX = -LaunchVX
	}
	b.VY = -LaunchVY
	b.OnPaddle = false
}

// BounceOffPaddle steers the ball by where it struck the paddle and speeds
// it up by PaddleSpeedUp.
func (b *Ball) BounceOffPaddle(p *Paddle) {
	speed := b.Speed() * PaddleSpeedUp

	// -1 at the left edge, 1 at the right edge
	hit := (b.X - p.CenterX()) / (p.Width / 2)
	hit = clamp(hit, -1, 1)

	vx := hit * MaxDeflection
	vy := -math.Abs(b.VY)
	angle := math.Atan2(vy, vx)

	b.VX = math.Cos(angle) * speed
	b.VY = math.Sin(angle) * speed
	b.Y = p.Y - b.Radius - PaddleLiftGap
}

// TouchesPaddle reports whether the ball's bottom edge lies within the
// paddle's vertical span, its center within the paddle's extent, and it is
// moving down.
func (b *Ball) TouchesPaddle(p *Paddle) bool {
	bottom := b.Y + b.Radius
	if bottom < p.Y || bottom > p.Y+p.Height {
		return false
	}
	if b.X < p.X || b.X > p.X+p.Width {
		return false
	}
	return b.VY > 0
}
