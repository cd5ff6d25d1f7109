// Package ics generates minimal iCalendar documents for confirmed bookings.
package ics

import (
	"strings"
	"time"
)

const prodID = "-//Lucero Rodriguez Morales//Bookings//ES"

// Event describes a single calendar event.
type Event struct {
	UID         string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

// Generate renders the event as a VCALENDAR document.
// Timestamps are emitted in compact UTC form (YYYYMMDDTHHMMSSZ).
func Generate(e Event, now time.Time) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"BEGIN:VEVENT",
		"UID:" + e.UID,
		"DTSTAMP:" + formatUTC(now),
		"DTSTART:" + formatUTC(e.Start),
		"DTEND:" + formatUTC(e.End),
		"SUMMARY:" + escapeText(e.Title),
	}

	if e.Description != "" {
		lines = append(lines, "DESCRIPTION:"+escapeText(e.Description))
	}
	if e.Location != "" {
		lines = append(lines, "LOCATION:"+escapeText(e.Location))
	}

	lines = append(lines, "END:VEVENT", "END:VCALENDAR")

	return strings.Join(lines, "\n")
}

func formatUTC(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeText escapes characters that break property values (RFC 5545 3.3.11).
func escapeText(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		"\n", "\\n",
		";", "\\;",
		",", "\\,",
	)
	return replacer.Replace(s)
}
