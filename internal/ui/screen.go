package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/calbreak/internal/layout"
)

// Theme colors
var (
	ColorBackground = tcell.GetColor("#0f172a")
	ColorHeader     = tcell.GetColor("#0b1220")
	ColorPaddle     = tcell.GetColor("#22d3ee")
	ColorBall       = tcell.GetColor("#fcd34d")
	ColorText       = tcell.GetColor("#e2e8f0")
	ColorGrid       = tcell.GetColor("#334155")
	ColorGridBold   = tcell.GetColor("#475569")
	ColorTimeText   = tcell.GetColor("#94a3b8")
	ColorStatus     = tcell.GetColor("#1e293b")
)

type Screen struct {
	screen tcell.Screen
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func InitScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()
	return NewScreen(s), nil
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) Sync() {
	s.screen.Sync()
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

func (s *Screen) SetCell(x, y int, style tcell.Style, r rune) {
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText writes text from x, stopping at maxX (exclusive). A negative
// maxX means no limit.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style, maxX int) {
	col := x
	for _, r := range text {
		if maxX >= 0 && col >= maxX {
			return
		}
		s.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

func (s *Screen) FillRect(x, y, w, h int, style tcell.Style, r rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.screen.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

func (s *Screen) DrawVerticalLine(x, y1, y2 int, style tcell.Style, r rune) {
	for y := y1; y <= y2; y++ {
		s.screen.SetContent(x, y, r, nil, style)
	}
}

func (s *Screen) DrawHorizontalLine(x1, x2, y int, style tcell.Style, r rune) {
	for x := x1; x <= x2; x++ {
		s.screen.SetContent(x, y, r, nil, style)
	}
}

func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// MeetingColor returns the palette color for a meeting.
func MeetingColor(colorIndex int) tcell.Color {
	if colorIndex < 0 || colorIndex >= len(layout.Palette) {
		return tcell.ColorSlateGray
	}
	return tcell.GetColor(layout.Palette[colorIndex])
}

// MeetingStyle returns white text on the meeting's color.
func MeetingStyle(colorIndex int) tcell.Style {
	return tcell.StyleDefault.Background(MeetingColor(colorIndex)).Foreground(tcell.ColorWhite)
}
