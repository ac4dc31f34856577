package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/calbreak/internal/game"
	"github.com/diegok/calbreak/internal/layout"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
	GridChar   = '\u2500' // ─
	DayChar    = '\u2502' // │

	Title    = "Team Meeting Breakout"
	HelpText = "Move: Mouse or ← →  •  Launch: Click / Space / Enter  •  Reset: R  •  Quit: Q"
)

// Renderer draws snapshots onto the screen, scaling the logical field to
// the terminal's cell grid.
type Renderer struct {
	screen *Screen

	scaleX, scaleY float64
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one full frame.
func (r *Renderer) Render(s game.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	if screenW <= 0 || screenH <= 0 {
		return
	}

	r.scaleX = float64(screenW) / s.Width
	r.scaleY = float64(screenH) / s.Height

	bg := tcell.StyleDefault.Background(ColorBackground)
	r.screen.FillRect(0, 0, screenW, screenH, bg, ' ')

	r.renderCalendar(s)
	r.renderBricks(s.Bricks)
	r.renderPaddle(s.Paddle)
	r.renderBall(s.Ball, screenW, screenH)
	r.renderHUD(s, screenW, screenH)

	r.screen.Show()
}

// cellX maps a logical x to a column.
func (r *Renderer) cellX(x float64) int {
	return int(math.Floor(x * r.scaleX))
}

// cellY maps a logical y to a row.
func (r *Renderer) cellY(y float64) int {
	return int(math.Floor(y * r.scaleY))
}

// cells returns the cell span covered by rect, at least one cell each way.
func (r *Renderer) cells(rect layout.Rect) (x, y, w, h int) {
	x = r.cellX(rect.X)
	y = r.cellY(rect.Y)
	w = int(math.Ceil(rect.Right()*r.scaleX)) - x
	h = int(math.Ceil(rect.Bottom()*r.scaleY)) - y
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x, y, w, h
}

func (r *Renderer) renderCalendar(s game.Snapshot) {
	grid := s.Grid

	// Header row with day labels
	headerStyle := tcell.StyleDefault.Background(ColorHeader).Foreground(ColorText).Bold(true)
	hx, hy, hw, _ := r.cells(grid.Frame)
	headerRows := r.cellY(grid.Body.Y) - hy
	if headerRows < 1 {
		headerRows = 1
	}
	r.screen.FillRect(hx, hy, hw, headerRows, headerStyle, ' ')

	labelY := hy + headerRows/2
	for i := 0; i < layout.Days; i++ {
		x := r.cellX(grid.DayX(i)) + 1
		maxX := r.cellX(grid.DayX(i + 1))
		r.screen.DrawText(x, labelY, layout.DayLabel(s.WeekStart, i), headerStyle, maxX)
	}

	// Hour rows and gutter labels
	bodyTop := r.cellY(grid.Body.Y)
	bodyBottom := r.cellY(grid.Body.Bottom())
	left := r.cellX(grid.Body.X)
	right := r.cellX(grid.Body.Right())
	gridStyle := tcell.StyleDefault.Background(ColorBackground).Foreground(ColorGrid)
	timeStyle := tcell.StyleDefault.Background(ColorBackground).Foreground(ColorTimeText)

	hours := layout.EndHour - layout.StartHour
	lastLabelRow := -1
	for h := 0; h <= hours; h++ {
		y := r.cellY(grid.HourY(h))
		if y > bodyBottom {
			y = bodyBottom
		}
		r.screen.DrawHorizontalLine(left, right, y, gridStyle, GridChar)

		// Skip labels that would land on the previous one's row
		if h < hours && y != lastLabelRow {
			r.screen.DrawText(r.cellX(grid.Frame.X)+1, y, layout.HourLabel(h), timeStyle, left)
			lastLabelRow = y
		}
	}

	// Day separators
	boldStyle := tcell.StyleDefault.Background(ColorBackground).Foreground(ColorGridBold)
	for i := 0; i <= layout.Days; i++ {
		r.screen.DrawVerticalLine(r.cellX(grid.DayX(i)), bodyTop, bodyBottom, boldStyle, DayChar)
	}
}

func (r *Renderer) renderBricks(bricks []game.BrickView) {
	for _, b := range bricks {
		x, y, w, h := r.cells(b.Rect)
		style := MeetingStyle(b.Meeting.Color)
		r.screen.FillRect(x, y, w, h, style, ' ')

		r.screen.DrawText(x, y, b.Meeting.Title, style.Bold(true), x+w)
		if h > 1 {
			r.screen.DrawText(x, y+1, b.Meeting.Start.Format("15:04")+" "+b.Meeting.Location, style, x+w)
		}
		if h > 2 && len(b.Meeting.Attendees) > 0 {
			r.screen.DrawText(x, y+2, b.Meeting.Attendees[0], style, x+w)
		}
	}
}

func (r *Renderer) renderPaddle(p layout.Rect) {
	x, y, w, _ := r.cells(p)
	style := tcell.StyleDefault.Background(ColorBackground).Foreground(ColorPaddle)
	r.screen.FillRect(x, y, w, 1, style, PaddleChar)
}

func (r *Renderer) renderBall(b game.BallView, screenW, screenH int) {
	x := r.cellX(b.X)
	y := r.cellY(b.Y)
	if x < 0 || x >= screenW || y < 0 || y >= screenH {
		return
	}
	style := tcell.StyleDefault.Background(ColorBackground).Foreground(ColorBall)
	r.screen.SetCell(x, y, style, BallChar)
}

func (r *Renderer) renderHUD(s game.Snapshot, screenW, screenH int) {
	titleStyle := tcell.StyleDefault.Background(ColorBackground).Foreground(ColorText).Bold(true)
	r.screen.DrawText(1, 0, Title, titleStyle, screenW)

	helpStyle := tcell.StyleDefault.Background(ColorBackground).Foreground(ColorTimeText)
	r.screen.DrawText(len(Title)+3, 0, HelpText, helpStyle, screenW)

	// Status bar at bottom
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(ColorStatus).Foreground(ColorText)
	r.screen.FillRect(0, statusY, screenW, 1, statusStyle, ' ')

	status := fmt.Sprintf(" Week of %s | Meetings left: %d/%d | Tick: %d", s.WeekStart.Format("Jan 2"), len(s.Bricks), s.Total, s.Tick)
	if s.Ball.Attached {
		status += " | Press SPACE to launch"
	}
	r.screen.DrawText(0, statusY, status, statusStyle, screenW)
}
