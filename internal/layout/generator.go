package layout

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	FirstWorkday = 1 // Monday
	LastWorkday  = 5 // Friday
	MaxAttendees = 4
)

var startMinutes = [4]int{0, 15, 30, 45}

// Generator synthesizes a week of meetings. Placement is a pure function of
// day and slot; Flavor only decides colors, locations, attendees and ids.
type Generator struct {
	Flavor *rand.Rand
}

// NewGenerator returns a generator using flavor for cosmetic variation. A nil
// flavor is seeded from the clock.
func NewGenerator(flavor *rand.Rand) *Generator {
	if flavor == nil {
		flavor = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{Flavor: flavor}
}

// MeetingsPerDay returns how many meetings a weekday gets (2-4).
func MeetingsPerDay(day int) int {
	return 2 + day%3
}

// BuildCalendarEvents returns the meetings of the week containing now, in
// day then slot order.
func (g *Generator) BuildCalendarEvents(now time.Time) []Meeting {
	weekStart := StartOfWeek(now)

	var meetings []Meeting
	for day := FirstWorkday; day <= LastWorkday; day++ {
		for slot := 0; slot < MeetingsPerDay(day); slot++ {
			hour := StartHour + (day*37+slot*17)%9 // 8 AM to 4 PM
			minute := startMinutes[(day*11+slot*7)%len(startMinutes)]
			duration := time.Duration(30+15*((day+slot)%5)) * time.Minute

			date := weekStart.AddDate(0, 0, day)
			start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())

			meetings = append(meetings, Meeting{
				ID:        g.newID(),
				Day:       day,
				Slot:      slot,
				Start:     start,
				Duration:  duration,
				Title:     titles[(day*5+slot*3)%len(titles)],
				Location:  locations[g.Flavor.Intn(len(locations))],
				Attendees: g.attendees(),
				Color:     g.Flavor.Intn(len(Palette)),
			})
		}
	}
	return meetings
}

func (g *Generator) attendees() []string {
	n := 1 + g.Flavor.Intn(MaxAttendees)
	names := make([]string, n)
	for i := range names {
		names[i] = firstName[g.Flavor.Intn(len(firstName))] + " " + lastName[g.Flavor.Intn(len(lastName))]
	}
	return names
}

func (g *Generator) newID() string {
	id, err := uuid.NewRandomFromReader(g.Flavor)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
