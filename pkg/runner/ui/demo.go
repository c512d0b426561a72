package ui

import (
	"tableflip.dev/calprint/pkg/calendar"
)

// DemoNotes is a small snapshot around today for trying the UI without
// touching the real notes.
func DemoNotes(today calendar.Date, opts calendar.Options) map[string][]string {
	key := calendar.DateKey
	slot := func(d calendar.Date, hour int) string {
		if hour < opts.HoursStart {
			hour = opts.HoursStart
		}
		if hour > opts.HoursEnd {
			hour = opts.HoursEnd
		}
		return calendar.TimeSlotKey(key(d), hour)
	}

	notes := map[string][]string{}
	add := func(k string, texts ...string) {
		notes[k] = append(notes[k], texts...)
	}
	add(key(today), "this is a note", "this is another note")
	add(slot(today, 9), "standup")
	add(slot(today, 13), "lunch with Sam", "book a table")
	add(key(today.AddDays(1)), "pick up the parcel")
	add(slot(today.AddDays(2), 18), "gym")
	add(key(today.AddDays(-3)), "wish I had more things done")
	add(key(today.AddDays(10)), "dentist")
	add(slot(today.AddDays(10), 8), "leave at 08:00")
	return notes
}
