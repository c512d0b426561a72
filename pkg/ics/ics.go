// Package ics converts notes to and from iCalendar. Date notes become all-day
// VEVENTs and time slot notes become one hour VEVENTs.
package ics

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/calprint/pkg/app"
	"tableflip.dev/calprint/pkg/calendar"
)

// ProductID identifies calprint in exported calendars.
const ProductID = "-//tableflip.dev//calprint//EN"

const uidDomain = "calprint"

// ExportOptions controls Export.
type ExportOptions struct {
	// Location the wall-clock slot hours are in. Defaults to time.Local.
	Location *time.Location
	// Now stamps every event. Defaults to time.Now.
	Now func() time.Time
}

func (o ExportOptions) loc() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

func (o ExportOptions) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// UID is the stable identifier of the note at index under key.
func UID(key string, index int) string {
	return fmt.Sprintf("%s#%d@%s", key, index, uidDomain)
}

// Export writes every note as a VEVENT. Keys that are neither date nor time
// slot keys are skipped.
func Export(w io.Writer, notes []app.KeyNotes, opts ExportOptions) (int, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)

	loc := opts.loc()
	stamp := opts.now()
	count := 0
	for _, kn := range notes {
		start, allDay, ok := keyStart(kn.Key, loc)
		if !ok {
			continue
		}
		for i, text := range kn.Notes {
			ev := cal.AddEvent(UID(kn.Key, i))
			ev.SetDtStampTime(stamp)
			ev.SetSummary(text)
			if allDay {
				ev.SetAllDayStartAt(start)
				ev.SetAllDayEndAt(start.AddDate(0, 0, 1))
			} else {
				ev.SetStartAt(start)
				ev.SetEndAt(start.Add(time.Hour))
			}
			count++
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return 0, fmt.Errorf("ics: write calendar: %w", err)
	}
	return count, nil
}

func keyStart(key string, loc *time.Location) (time.Time, bool, bool) {
	if d, err := calendar.ParseDateKey(key); err == nil {
		return d.Time(loc), true, true
	}
	if d, hour, err := calendar.ParseTimeSlotKey(key); err == nil {
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, loc), false, true
	}
	return time.Time{}, false, false
}

// ImportResult counts what Import did.
type ImportResult struct {
	Added   int `json:"added" yaml:"added"`
	Skipped int `json:"skipped" yaml:"skipped"`
}

// Import adds a note for every VEVENT in r. All-day events land on their
// start date. Timed events on the hour inside the configured hours land in
// that slot; anything else lands on the start date with the time prefixed to
// the text. Events whose text is already stored under the target key are
// skipped, so importing an export is a no-op.
func Import(r io.Reader, s *app.Service, loc *time.Location) (ImportResult, error) {
	if loc == nil {
		loc = time.Local
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("ics: read: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return ImportResult{}, errors.New("ics: empty calendar")
	}
	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return ImportResult{}, fmt.Errorf("ics: parse: %w", err)
	}

	var res ImportResult
	for _, ev := range cal.Events() {
		key, text, err := noteFor(ev, s, loc)
		if err != nil {
			res.Skipped++
			continue
		}
		existing, err := s.Notes(key)
		if err != nil {
			return res, err
		}
		if contains(existing, text) {
			res.Skipped++
			continue
		}
		if _, err := s.AddNote(key, text); err != nil {
			res.Skipped++
			continue
		}
		res.Added++
	}
	return res, nil
}

func noteFor(ev *ical.VEvent, s *app.Service, loc *time.Location) (string, string, error) {
	var text string
	if p := ev.GetProperty(ical.ComponentPropertySummary); p != nil {
		text = strings.TrimSpace(textUnescaper.Replace(p.Value))
	}
	if text == "" {
		return "", "", errors.New("ics: event has no summary")
	}

	dtStart := ev.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return "", "", errors.New("ics: event has no start")
	}
	if isAllDay(dtStart) {
		t, err := time.ParseInLocation("20060102", strings.TrimSpace(dtStart.Value), loc)
		if err != nil {
			return "", "", fmt.Errorf("ics: all-day start: %w", err)
		}
		key, err := s.ResolveKey(calendar.DateKey(calendar.DateOf(t)))
		return key, text, err
	}

	start, err := ev.GetStartAt()
	if err != nil {
		return "", "", fmt.Errorf("ics: start: %w", err)
	}
	start = start.In(loc)
	d := calendar.DateOf(start)
	key, err := s.ResolveKey(calendar.DateKey(d))
	if err != nil {
		return "", "", err
	}
	if start.Minute() == 0 && start.Second() == 0 && s.Options.InHours(start.Hour()) {
		slot, err := s.SlotKey(d, start.Hour())
		return slot, text, err
	}
	return key, start.Format("15:04") + " " + text, nil
}

// isAllDay treats VALUE=DATE and bare YYYYMMDD values as all-day.
func isAllDay(p *ical.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

// textUnescaper reverses RFC 5545 TEXT escaping.
var textUnescaper = strings.NewReplacer(`\\`, `\`, `\,`, `,`, `\;`, `;`, `\n`, "\n", `\N`, "\n")

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
