package layout

import "time"

// Meeting is one calendar event. Day, Slot, Start, Duration and Title come
// from the deterministic schedule; the rest is cosmetic.
type Meeting struct {
	ID        string
	Day       int // 0 = Sunday
	Slot      int // Position within the day
	Start     time.Time
	Duration  time.Duration
	Title     string
	Location  string
	Attendees []string
	Color     int // Index into Palette
}

// End returns the time the meeting finishes.
func (m Meeting) End() time.Time {
	return m.Start.Add(m.Duration)
}

// Palette holds the meeting colors as hex strings
var Palette = []string{"#4F6BED", "#464EB8", "#8B88F3", "#43B581", "#C67BF4", "#DC5E5E"}

var (
	titles    = []string{"Standup", "Sprint Sync", "1:1", "Design Review", "All Hands", "Demo", "Retro", "Planning", "Customer Call", "Interview"}
	locations = []string{"Room 4A", "Boardroom", "Huddle 2", "Online", "Cafe", "Lab"}
	firstName = []string{"Alex", "Sam", "Taylor", "Jordan", "Casey", "Riley", "Avery", "Cameron", "Drew", "Harper", "Jamie", "Logan", "Morgan", "Parker", "Quinn"}
	lastName  = []string{"Lee", "Patel", "Garcia", "Nguyen", "Kim", "Smith", "Brown", "Khan", "Singh", "Wong", "Lopez", "Martinez", "Davis", "Miller", "Wilson"}
)
