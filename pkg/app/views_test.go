package app

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/calprint/pkg/calendar"
)

func TestMonthViewAttachesDayNotes(t *testing.T) {
	s, _ := newTestService(t, `{"2026-02-14":["Dinner","Call Mom"],"2026-02-14T09:00":["standup"],"2026-03-01":["spill"]}`)
	v, err := s.MonthView(2026, 1)
	if err != nil {
		t.Fatalf("MonthView: %v", err)
	}
	if v.Title != "February 2026" || len(v.Cells) != calendar.GridCells {
		t.Fatalf("title %q with %d cells", v.Title, len(v.Cells))
	}
	if v.Weekdays[0] != time.Monday {
		t.Fatalf("first column = %v", v.Weekdays[0])
	}
	if !reflect.DeepEqual(v.Weeks, []int{5, 6, 7, 8, 9}) {
		t.Fatalf("weeks = %v", v.Weeks)
	}

	var withNotes []string
	for _, c := range v.Cells {
		if len(c.Notes) > 0 {
			withNotes = append(withNotes, c.DateKey)
		}
		if c.DateKey == "2026-02-14" {
			if !c.IsToday || !reflect.DeepEqual(c.Notes, []string{"Dinner", "Call Mom"}) {
				t.Fatalf("14th = %+v", c)
			}
		}
	}
	// Slot notes never show on the month grid; padding days do show theirs.
	if !reflect.DeepEqual(withNotes, []string{"2026-02-14", "2026-03-01"}) {
		t.Fatalf("cells with notes = %v", withNotes)
	}
	if rows := v.Rows(); len(rows) != 6 || rows[1][5].DateKey != "2026-02-07" {
		t.Fatalf("unexpected rows layout")
	}
}

func TestMonthViewNormalizesAndChecksYear(t *testing.T) {
	s, _ := newTestService(t, "")
	v, err := s.MonthView(2026, 12)
	if err != nil || v.Year != 2027 || v.Month != 0 {
		t.Fatalf("MonthView(2026, 12) = %d-%d, %v", v.Year, v.Month, err)
	}
	if _, err := s.MonthView(2100, 12); !errors.Is(err, ErrYearOutOfRange) {
		t.Fatalf("expected ErrYearOutOfRange, got %v", err)
	}
}

func TestWeekViewSlots(t *testing.T) {
	s, _ := newTestService(t, `{"2026-02-14":["Dinner"],"2026-02-14T09:00":["standup"]}`)
	s.Options.WeekStart = calendar.Sunday

	v, err := s.WeekView(2026, 7)
	if err != nil {
		t.Fatalf("WeekView: %v", err)
	}
	if v.Title != "Week 7, 2026" || len(v.Rows) != 17 {
		t.Fatalf("title %q rows %d", v.Title, len(v.Rows))
	}
	if v.Days[0].DateKey != "2026-02-08" || v.Days[6].DateKey != "2026-02-14" {
		t.Fatalf("days run %s..%s", v.Days[0].DateKey, v.Days[6].DateKey)
	}
	sat := v.Days[6]
	if !sat.IsToday || !sat.IsWeekend || !reflect.DeepEqual(sat.Notes, []string{"Dinner"}) {
		t.Fatalf("saturday header = %+v", sat)
	}
	if sat.Label() != "Sat 14 Feb" {
		t.Fatalf("label = %q", sat.Label())
	}
	nine := v.Rows[3]
	if nine.Label != "09:00" || nine.Slots[6].Key != "2026-02-14T09:00" {
		t.Fatalf("09:00 row = %+v", nine)
	}
	if !reflect.DeepEqual(nine.Slots[6].Notes, []string{"standup"}) {
		t.Fatalf("slot notes = %v", nine.Slots[6].Notes)
	}
	if nine.Slots[5].Notes != nil {
		t.Fatalf("empty slot should carry no notes")
	}
}

func TestWeekViewBounds(t *testing.T) {
	s, _ := newTestService(t, "")
	if _, err := s.WeekView(2026, 0); !errors.Is(err, ErrWeekOutOfRange) {
		t.Fatalf("expected ErrWeekOutOfRange, got %v", err)
	}
	if _, err := s.WeekView(1969, 1); !errors.Is(err, ErrYearOutOfRange) {
		t.Fatalf("expected ErrYearOutOfRange, got %v", err)
	}
	// 2025 has 52 weeks; week 53 shows the first week of 2026.
	v, err := s.WeekView(2025, 53)
	if err != nil {
		t.Fatalf("WeekView(2025, 53): %v", err)
	}
	if v.Days[0].DateKey != "2025-12-29" {
		t.Fatalf("week 53 of 2025 starts %s", v.Days[0].DateKey)
	}

	// 2020-W53 runs into January 2021, so a range starting in 2021 keeps it.
	s.Options.YearRangeStart = 2021
	if _, err := s.WeekView(2020, 53); err != nil {
		t.Fatalf("WeekView(2020, 53) with range from 2021: %v", err)
	}
	if _, err := s.WeekView(2020, 52); !errors.Is(err, ErrYearOutOfRange) {
		t.Fatalf("WeekView(2020, 52) with range from 2021: %v", err)
	}
}

func TestWeekViewOn(t *testing.T) {
	s, _ := newTestService(t, "")
	v, err := s.WeekViewOn(calendar.NewDate(2021, 0, 1))
	if err != nil {
		t.Fatalf("WeekViewOn: %v", err)
	}
	if v.Year != 2020 || v.Week != 53 {
		t.Fatalf("January 1st 2021 is in %d-W%d, want 2020-W53", v.Year, v.Week)
	}
}

func TestReport(t *testing.T) {
	s, _ := newTestService(t, `{
		"2026-02-14T18:00":["dinner"],
		"2026-02-14":["birthday","cake"],
		"2026-02-10T09:00":["dentist"],
		"2026-02-20":["out of range"],
		"junk":["ignored"]
	}`)
	r, err := s.Report(calendar.NewDate(2026, 1, 15), calendar.NewDate(2026, 1, 9))
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if r.Total != 4 || len(r.Sections) != 2 {
		t.Fatalf("total %d in %d sections", r.Total, len(r.Sections))
	}
	if !r.Since.Equal(calendar.NewDate(2026, 1, 9)) {
		t.Fatalf("bounds should be swapped, since = %s", r.Since)
	}
	if r.Sections[0].Date.String() != "2026-02-10" || r.Sections[0].Entries[0].Hour != 9 {
		t.Fatalf("first section = %+v", r.Sections[0])
	}
	var texts []string
	for _, e := range r.Sections[1].Entries {
		texts = append(texts, e.Text)
	}
	if !reflect.DeepEqual(texts, []string{"birthday", "cake", "dinner"}) {
		t.Fatalf("14th entries = %v", texts)
	}
}
