package ui

import (
	"testing"

	"tableflip.dev/calprint/pkg/calendar"
)

func TestDemoNotesStayInHours(t *testing.T) {
	opts := calendar.DefaultOptions()
	opts.HoursStart, opts.HoursEnd = 12, 14
	notes := DemoNotes(calendar.NewDate(2026, 1, 14), opts)

	for key, texts := range notes {
		if len(texts) == 0 {
			t.Errorf("%s has no notes", key)
		}
		if _, hour, err := calendar.ParseTimeSlotKey(key); err == nil && !opts.InHours(hour) {
			t.Errorf("%s is outside the configured hours", key)
		}
	}
	if got := notes["2026-02-14T12:00"]; len(got) != 1 || got[0] != "standup" {
		t.Fatalf("standup should clamp to 12:00, got %v", got)
	}
	if got := notes["2026-02-14T13:00"]; len(got) != 2 {
		t.Fatalf("lunch notes = %v", got)
	}
}
