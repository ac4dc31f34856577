package game

import "github.com/diegok/calbreak/internal/layout"

// Brick is a meeting on the field. Once struck it stays dead until the
// week is regenerated.
type Brick struct {
	layout.Rect
	Meeting layout.Meeting
	Alive   bool
}

// BuildBricks lays out meetings on the grid, preserving their order.
func BuildBricks(grid layout.Grid, meetings []layout.Meeting) []*Brick {
	bricks := make([]*Brick, 0, len(meetings))
	for _, m := range meetings {
		bricks = append(bricks, &Brick{
			Rect:    grid.MeetingRect(m),
			Meeting: m,
			Alive:   true,
		})
	}
	return bricks
}
