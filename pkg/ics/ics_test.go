package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_FullEvent(t *testing.T) {
	event := Event{
		UID:         "dddddddd-0000-0000-0000-000000000001@lucerocare",
		Title:       "Canguro tardes",
		Description: "Reserva confirmada",
		Location:    "Calle Mayor 1, Madrid",
		Start:       time.Date(2026, 9, 15, 16, 0, 0, 0, time.UTC),
		End:         time.Date(2026, 9, 15, 19, 0, 0, 0, time.UTC),
	}
	now := time.Date(2026, 9, 1, 12, 30, 45, 0, time.UTC)

	doc := Generate(event, now)
	lines := strings.Split(doc, "\n")

	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])
	assert.Contains(t, lines, "UID:dddddddd-0000-0000-0000-000000000001@lucerocare")
	assert.Contains(t, lines, "DTSTAMP:20260901T123045Z")
	assert.Contains(t, lines, "DTSTART:20260915T160000Z")
	assert.Contains(t, lines, "DTEND:20260915T190000Z")
	assert.Contains(t, lines, "SUMMARY:Canguro tardes")
	assert.Contains(t, lines, "DESCRIPTION:Reserva confirmada")
	assert.Contains(t, lines, "LOCATION:Calle Mayor 1\\, Madrid")
}

func TestGenerate_OmitsEmptyOptionalFields(t *testing.T) {
	doc := Generate(Event{
		UID:   "uid-1",
		Title: "Canguro",
		Start: time.Date(2026, 9, 15, 16, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC),
	}, time.Now())

	assert.NotContains(t, doc, "DESCRIPTION:")
	assert.NotContains(t, doc, "LOCATION:")
}

func TestGenerate_TimestampsAreUTC(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	doc := Generate(Event{
		UID:   "uid-1",
		Title: "Canguro",
		// 16:00 CEST = 14:00 UTC
		Start: time.Date(2026, 9, 15, 16, 0, 0, 0, madrid),
		End:   time.Date(2026, 9, 15, 17, 0, 0, 0, madrid),
	}, time.Now())

	assert.Contains(t, doc, "DTSTART:20260915T140000Z")
	assert.Contains(t, doc, "DTEND:20260915T150000Z")
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, "a\\;b\\,c\\\\d\\ne", escapeText("a;b,c\\d\ne"))
	assert.Equal(t, "sin cambios", escapeText("sin cambios"))
}
