package game

import (
	"math"

	"github.com/diegok/calbreak/internal/layout"
)

// CircleRect reports whether a circle overlaps a rectangle, comparing the
// squared distance to the rectangle's closest point against r².
func CircleRect(cx, cy, r float64, rect layout.Rect) bool {
	closestX := clamp(cx, rect.X, rect.Right())
	closestY := clamp(cy, rect.Y, rect.Bottom())
	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy <= r*r
}

// BounceOffRect flips one velocity component after the ball struck rect.
// The edge with the smallest penetration wins, but only if the ball's
// previous position was on that side. With no side match the vertical
// component flips.
func (b *Ball) BounceOffRect(rect layout.Rect) {
	prevX := b.X - b.VX
	prevY := b.Y - b.VY
	wasLeft := prevX <= rect.X
	wasRight := prevX >= rect.Right()
	wasAbove := prevY <= rect.Y
	wasBelow := prevY >= rect.Bottom()

	overlapLeft := math.Abs((b.X + b.Radius) - rect.X)
	overlapRight := math.Abs(rect.Right() - (b.X - b.Radius))
	overlapTop := math.Abs((b.Y + b.Radius) - rect.Y)
	overlapBottom := math.Abs(rect.Bottom() - (b.Y - b.Radius))

	minOverlap := math.Min(math.Min(overlapLeft, overlapRight), math.Min(overlapTop, overlapBottom))

	switch {
	case minOverlap == overlapLeft && wasLeft:
		b.VX = -math.Abs(b.VX)
	case minOverlap == overlapRight && wasRight:
		b.VX = math.Abs(b.VX)
	case minOverlap == overlapTop && wasAbove:
		b.VY = -math.Abs(b.VY)
	case minOverlap == overlapBottom && wasBelow:
		b.VY = math.Abs(b.VY)
	default:
		b.VY = -b.VY
	}
}

// bounceOffWalls reflects the ball off the left, right and top edges,
// clamping it back inside. Returns true on any contact.
func (b *Ball) bounceOffWalls(width float64) bool {
	hit := false
	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.VX = -b.VX
		hit = true
	}
	if b.X+b.Radius > width {
		b.X = width - b.Radius
		b.VX = -b.VX
		hit = true
	}
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.VY = -b.VY
		hit = true
	}
	return hit
}
