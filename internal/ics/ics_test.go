package ics

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"

	"github.com/diegok/calbreak/internal/layout"
)

func TestEncode_RoundTrip(t *testing.T) {
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	meetings := layout.NewGenerator(rand.New(rand.NewSource(3))).BuildCalendarEvents(now)

	var buf bytes.Buffer
	if err := Encode(&buf, meetings, now); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	cal, err := ical.NewDecoder(&buf).Decode()
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	events := cal.Events()
	if len(events) != len(meetings) {
		t.Fatalf("expected %d events, got %d", len(meetings), len(events))
	}

	for i, ev := range events {
		m := meetings[i]

		summary, err := ev.Props.Text(ical.PropSummary)
		if err != nil {
			t.Fatalf("event %d: summary: %v", i, err)
		}
		if summary != m.Title {
			t.Errorf("event %d: expected summary '%s', got '%s'", i, m.Title, summary)
		}

		uid, _ := ev.Props.Text(ical.PropUID)
		if uid != m.ID {
			t.Errorf("event %d: expected uid '%s', got '%s'", i, m.ID, uid)
		}

		start, err := ev.DateTimeStart(time.UTC)
		if err != nil {
			t.Fatalf("event %d: start: %v", i, err)
		}
		if !start.Equal(m.Start) {
			t.Errorf("event %d: expected start %v, got %v", i, m.Start, start)
		}

		end, err := ev.DateTimeEnd(time.UTC)
		if err != nil {
			t.Fatalf("event %d: end: %v", i, err)
		}
		if !end.Equal(m.End()) {
			t.Errorf("event %d: expected end %v, got %v", i, m.End(), end)
		}

		if got := len(ev.Props[ical.PropAttendee]); got != len(m.Attendees) {
			t.Errorf("event %d: expected %d attendees, got %d", i, len(m.Attendees), got)
		}
	}
}

func TestEncode_Header(t *testing.T) {
	var buf bytes.Buffer
	meetings := []layout.Meeting{{
		ID:       "abc",
		Title:    "Retro",
		Start:    time.Date(2026, 10, 16, 14, 0, 0, 0, time.UTC),
		Duration: 30 * time.Minute,
	}}

	if err := Encode(&buf, meetings, meetings[0].Start); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"BEGIN:VCALENDAR", "PRODID:" + ProductID, "SUMMARY:Retro", "DTSTART:20261016T140000Z", "DTEND:20261016T143000Z"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if strings.Contains(out, "LOCATION") {
		t.Error("expected no LOCATION for a meeting without one")
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Alex Lee", "alex.lee@example.com"},
		{" Quinn Martinez ", "quinn.martinez@example.com"},
		{"Sam", "sam@example.com"},
	}

	for _, tt := range tests {
		if got := Email(tt.name); got != tt.want {
			t.Errorf("Email(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}
