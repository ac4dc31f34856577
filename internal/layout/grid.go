package layout

import (
	"errors"
	"fmt"
	"time"
)

// Calendar frame geometry, in logical pixels
const (
	FrameMargin       = 24.0
	FrameTop          = FrameMargin + 28 // Leaves room for the title line
	FrameBottomMargin = 32.0
	HeaderHeight      = 56.0
	GutterWidth       = 64.0
	Days              = 7
	StartHour         = 8
	EndHour           = 19 // 7 PM
)

// Meeting placement
const (
	SafeMargin       = 40.0 // Gap kept free above the paddle line
	MinMeetingHeight = 18.0
	MinClippedHeight = 14.0 // Floor applied after clipping to the safe zone
	ColumnInset      = 4.0
	JitterWidth      = 10.0 // Odd slots shift right by this much
)

// ErrInvalidViewport is returned when the viewport leaves no room for a grid.
var ErrInvalidViewport = errors.New("invalid viewport")

// Grid is the weekly calendar geometry: day columns by hour rows.
type Grid struct {
	Frame       Rect // Whole calendar including the header row
	Body        Rect // Hour rows, right of the time gutter
	ColumnWidth float64
	SafeBottom  float64 // No meeting extends below this line
}

// NewGrid sizes the calendar to the viewport. paddleY is the paddle's resting
// line; meetings are kept SafeMargin above it.
func NewGrid(viewW, viewH, paddleY float64) (Grid, error) {
	if viewW <= 0 || viewH <= 0 {
		return Grid{}, fmt.Errorf("%w: %gx%g", ErrInvalidViewport, viewW, viewH)
	}

	frame := Rect{
		X: FrameMargin,
		Y: FrameTop,
		W: viewW - FrameMargin*2,
		H: viewH - FrameTop - FrameBottomMargin,
	}
	body := Rect{
		X: frame.X + GutterWidth,
		Y: frame.Y + HeaderHeight,
		W: frame.W - GutterWidth,
		H: frame.H - HeaderHeight,
	}
	if body.W <= 0 || body.H <= 0 {
		return Grid{}, fmt.Errorf("%w: %gx%g leaves no calendar body", ErrInvalidViewport, viewW, viewH)
	}

	columnW := body.W / Days
	if columnW-ColumnInset*2-JitterWidth <= 0 {
		return Grid{}, fmt.Errorf("%w: day column %.1fpx too narrow", ErrInvalidViewport, columnW)
	}

	safeBottom := paddleY - SafeMargin
	if safeBottom-MinClippedHeight < body.Y {
		return Grid{}, fmt.Errorf("%w: paddle line %g too close to grid top %g", ErrInvalidViewport, paddleY, body.Y)
	}

	return Grid{
		Frame:       frame,
		Body:        body,
		ColumnWidth: columnW,
		SafeBottom:  safeBottom,
	}, nil
}

// TotalMinutes is the span covered by the hour rows.
func (g Grid) TotalMinutes() float64 {
	return float64((EndHour - StartHour) * 60)
}

// MinuteY maps minutes since StartHour to a vertical position.
func (g Grid) MinuteY(minutes float64) float64 {
	return g.Body.Y + minutes/g.TotalMinutes()*g.Body.H
}

// HourY returns the line of the i-th hour row (0 = StartHour).
func (g Grid) HourY(i int) float64 {
	return g.MinuteY(float64(i * 60))
}

// DayX returns the left edge of a day column.
func (g Grid) DayX(day int) float64 {
	return g.Body.X + float64(day)*g.ColumnWidth
}

// MeetingRect derives a meeting's brick rectangle from its start and duration.
func (g Grid) MeetingRect(m Meeting) Rect {
	total := g.TotalMinutes()
	minutes := float64((m.Start.Hour()-StartHour)*60 + m.Start.Minute())

	y := g.MinuteY(minutes) + 2
	h := m.Duration.Minutes()/total*g.Body.H - 4
	if h < MinMeetingHeight {
		h = MinMeetingHeight
	}

	if y+h > g.SafeBottom {
		h = g.SafeBottom - y
		if h < MinClippedHeight {
			h = MinClippedHeight
			y = g.SafeBottom - h
		}
	}

	x := g.DayX(m.Day) + ColumnInset
	if m.Slot%2 == 1 {
		x += JitterWidth
	}

	return Rect{X: x, Y: y, W: g.ColumnWidth - ColumnInset*2 - JitterWidth, H: h}
}

// StartOfWeek returns Sunday 00:00 of the week containing t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	d := t.AddDate(0, 0, -int(t.Weekday()))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// DayLabel formats a column header like "Mon 10/12".
func DayLabel(weekStart time.Time, day int) string {
	d := weekStart.AddDate(0, 0, day)
	return fmt.Sprintf("%s %d/%d", d.Format("Mon"), int(d.Month()), d.Day())
}

// HourLabel formats the i-th hour row like "9 AM".
func HourLabel(i int) string {
	hour24 := StartHour + i
	ampm := "AM"
	if hour24 >= 12 {
		ampm = "PM"
	}
	hour12 := (hour24+11)%12 + 1
	return fmt.Sprintf("%d %s", hour12, ampm)
}
