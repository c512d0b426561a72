package ics

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/calprint/pkg/app"
	"tableflip.dev/calprint/pkg/calendar"
	"tableflip.dev/calprint/pkg/events"
	"tableflip.dev/calprint/pkg/store"
)

func newService(snapshot string) *app.Service {
	var data []byte
	if snapshot != "" {
		data = []byte(snapshot)
	}
	idx := events.New(store.NewMemory(data))
	idx.Load()
	return &app.Service{
		Index:   idx,
		Options: calendar.DefaultOptions(),
		Clock:   calendar.FixedClock(calendar.NewDate(2026, 1, 14)),
	}
}

func fixedNow() time.Time {
	return time.Date(2026, time.February, 14, 12, 0, 0, 0, time.UTC)
}

func TestExport(t *testing.T) {
	notes := []app.KeyNotes{
		{Key: "2026-02-14", Notes: []string{"Birthday", "Cake"}},
		{Key: "2026-02-14T09:00", Notes: []string{"Standup"}},
		{Key: "not-a-key", Notes: []string{"ignored"}},
	}
	var buf bytes.Buffer
	n, err := Export(&buf, notes, ExportOptions{Location: time.UTC, Now: fixedNow})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if n != 3 {
		t.Fatalf("exported %d events, want 3", n)
	}

	cal, err := ical.ParseCalendar(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("parse exported calendar: %v\n%s", err, buf.String())
	}
	evs := cal.Events()
	if len(evs) != 3 {
		t.Fatalf("parsed %d events", len(evs))
	}

	byUID := map[string]*ical.VEvent{}
	for _, ev := range evs {
		byUID[ev.GetProperty(ical.ComponentPropertyUniqueId).Value] = ev
	}
	cake := byUID[UID("2026-02-14", 1)]
	if cake == nil {
		t.Fatalf("missing cake event, have %v", byUID)
	}
	if got := cake.GetProperty(ical.ComponentPropertySummary).Value; got != "Cake" {
		t.Fatalf("summary = %q", got)
	}
	if got := cake.GetProperty(ical.ComponentPropertyDtStart).Value; got != "20260214" {
		t.Fatalf("all-day start = %q", got)
	}

	standup := byUID[UID("2026-02-14T09:00", 0)]
	if standup == nil {
		t.Fatalf("missing standup event")
	}
	start, err := standup.GetStartAt()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !start.Equal(time.Date(2026, time.February, 14, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	end, err := standup.GetEndAt()
	if err != nil || end.Sub(start) != time.Hour {
		t.Fatalf("end = %v, %v", end, err)
	}
}

func TestImportRoundTrip(t *testing.T) {
	src := newService(`{"2026-02-14":["Birthday"],"2026-02-14T09:00":["Standup","Coffee"]}`)
	all, _ := src.AllNotes()
	var buf bytes.Buffer
	if _, err := Export(&buf, all, ExportOptions{Location: time.UTC, Now: fixedNow}); err != nil {
		t.Fatalf("export: %v", err)
	}
	exported := buf.String()

	dst := newService("")
	res, err := Import(strings.NewReader(exported), dst, time.UTC)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Added != 3 || res.Skipped != 0 {
		t.Fatalf("import result = %+v", res)
	}
	got, _ := dst.Notes("2026-02-14T09:00")
	if len(got) != 2 {
		t.Fatalf("slot notes = %v", got)
	}
	day, _ := dst.Notes("2026-02-14")
	if !reflect.DeepEqual(day, []string{"Birthday"}) {
		t.Fatalf("day notes = %v", day)
	}

	again, err := Import(strings.NewReader(exported), dst, time.UTC)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if again.Added != 0 || again.Skipped != 3 {
		t.Fatalf("re-import should skip everything, got %+v", again)
	}
}

const external = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:a@test\r\n" +
	"DTSTAMP:20260201T000000Z\r\n" +
	"DTSTART:20260210T093000Z\r\n" +
	"SUMMARY:Half past\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:b@test\r\n" +
	"DTSTAMP:20260201T000000Z\r\n" +
	"DTSTART:20260210T030000Z\r\n" +
	"SUMMARY:Too early\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:c@test\r\n" +
	"DTSTAMP:20260201T000000Z\r\n" +
	"DTSTART;VALUE=DATE:20260211\r\n" +
	"SUMMARY:Lunch\\, maybe\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:d@test\r\n" +
	"DTSTAMP:20260201T000000Z\r\n" +
	"DTSTART;VALUE=DATE:20260212\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:e@test\r\n" +
	"DTSTAMP:20260201T000000Z\r\n" +
	"DTSTART;VALUE=DATE:18990101\r\n" +
	"SUMMARY:Out of range\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestImportExternal(t *testing.T) {
	s := newService("")
	res, err := Import(strings.NewReader(external), s, time.UTC)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Added != 3 || res.Skipped != 2 {
		t.Fatalf("import result = %+v", res)
	}
	got, _ := s.Notes("2026-02-10")
	if !reflect.DeepEqual(got, []string{"09:30 Half past", "03:00 Too early"}) {
		t.Fatalf("2026-02-10 notes = %v", got)
	}
	lunch, _ := s.Notes("2026-02-11")
	if !reflect.DeepEqual(lunch, []string{"Lunch, maybe"}) {
		t.Fatalf("2026-02-11 notes = %v", lunch)
	}
}

func TestImportRejectsEmpty(t *testing.T) {
	if _, err := Import(strings.NewReader("  \n"), newService(""), time.UTC); err == nil {
		t.Fatalf("expected error for empty input")
	}
}
