// Package ics exports a generated week as an iCalendar document.
package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/diegok/calbreak/internal/layout"
)

const ProductID = "-//calbreak//EN"

// Encode writes meetings as a VCALENDAR. stamp is used for DTSTAMP.
func Encode(w io.Writer, meetings []layout.Meeting, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, m := range meetings {
		cal.Children = append(cal.Children, toEvent(m, stamp))
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode week to iCal format: %w", err)
	}
	return nil
}

func toEvent(m layout.Meeting, stamp time.Time) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, m.ID)
	ve.Props.SetText(ical.PropSummary, m.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, m.Start.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeEnd, m.End().UTC())

	if m.Location != "" {
		ve.Props.SetText(ical.PropLocation, m.Location)
	}
	for _, name := range m.Attendees {
		p := ical.NewProp(ical.PropAttendee)
		p.SetText("mailto:" + Email(name))
		ve.Props.Add(p)
	}
	return ve
}

// Email derives a placeholder address from an attendee name.
func Email(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ".")) + "@example.com"
}
