package calendar

import (
	"reflect"
	"testing"
	"time"
)

func TestISOWeekNumber(t *testing.T) {
	tests := []struct {
		date Date
		want int
	}{
		{NewDate(2026, 1, 14), 7},  // Saturday
		{NewDate(2026, 0, 1), 1},   // Thursday
		{NewDate(2021, 0, 1), 53},  // Friday, still in 2020's last week
		{NewDate(2021, 0, 3), 53},  // Sunday
		{NewDate(2021, 0, 4), 1},   // Monday
		{NewDate(2024, 11, 30), 1}, // Monday, already 2025's first week
		{NewDate(2026, 11, 31), 53},
		{NewDate(2027, 0, 3), 53},
	}
	for _, tt := range tests {
		if got := ISOWeekNumber(tt.date); got != tt.want {
			t.Errorf("ISOWeekNumber(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestISOWeekMatchesTimePackage(t *testing.T) {
	d := NewDate(1970, 0, 1)
	end := NewDate(2100, 11, 31)
	for ; !end.Before(d); d = d.AddDays(1) {
		wantYear, wantWeek := d.Time(time.UTC).ISOWeek()
		year, week := ISOWeek(d)
		if year != wantYear || week != wantWeek {
			t.Fatalf("ISOWeek(%s) = %d-W%d, want %d-W%d", d, year, week, wantYear, wantWeek)
		}
		if got := ISOWeekNumber(d); got != wantWeek {
			t.Fatalf("ISOWeekNumber(%s) = %d, want %d", d, got, wantWeek)
		}
	}
}

func TestWeekDatesRoundTrip(t *testing.T) {
	for year := 1970; year <= 2100; year++ {
		for week := 1; week <= WeeksInYear(year); week++ {
			dates := WeekDates(year, week, Monday)
			if got := ISOWeekNumber(dates[0]); got != week {
				t.Fatalf("ISOWeekNumber(WeekDates(%d, %d)[0]) = %d", year, week, got)
			}
			if dates[0].Weekday() != time.Monday {
				t.Fatalf("week %d of %d starts on %v", week, year, dates[0].Weekday())
			}
		}
	}
}

func TestWeekDatesSundayStart(t *testing.T) {
	monday := WeekDates(2026, 7, Monday)
	sunday := WeekDates(2026, 7, Sunday)

	if DateKey(monday[0]) != "2026-02-09" {
		t.Fatalf("monday start = %s, want 2026-02-09", monday[0])
	}
	if DateKey(sunday[0]) != "2026-02-08" || sunday[0].Weekday() != time.Sunday {
		t.Fatalf("sunday start = %s (%v), want Sunday 2026-02-08", sunday[0], sunday[0].Weekday())
	}
	if DateKey(sunday[6]) != "2026-02-14" {
		t.Fatalf("sunday-start week ends %s, want 2026-02-14", sunday[6])
	}
	for i := 1; i < 7; i++ {
		if !sunday[i].Equal(sunday[i-1].AddDays(1)) {
			t.Fatalf("dates not consecutive at %d: %v", i, sunday)
		}
	}
}

func TestWeekDatesOverflowRollsIntoNextYear(t *testing.T) {
	if WeeksInYear(2025) != 52 {
		t.Fatalf("expected 2025 to have 52 ISO weeks")
	}
	dates := WeekDates(2025, 53, Monday)
	if DateKey(dates[0]) != "2025-12-29" {
		t.Fatalf("week 53 of 2025 starts %s, want 2025-12-29", dates[0])
	}
	if DateKey(dates[6]) != "2026-01-04" {
		t.Fatalf("week 53 of 2025 ends %s, want 2026-01-04", dates[6])
	}
	if got := ISOWeekNumber(dates[0]); got != 1 {
		t.Fatalf("rolled-over week is ISO week %d, want 1", got)
	}
}

func TestWeeksInYear(t *testing.T) {
	for year, want := range map[int]int{2015: 53, 2020: 53, 2021: 52, 2025: 52, 2026: 53, 2032: 53} {
		if got := WeeksInYear(year); got != want {
			t.Errorf("WeeksInYear(%d) = %d, want %d", year, got, want)
		}
	}
}

func TestWeeksInMonth(t *testing.T) {
	tests := []struct {
		year, month int
		want        []int
	}{
		{2026, 1, []int{5, 6, 7, 8, 9}},
		{2021, 0, []int{1, 2, 3, 4, 53}},
		{2015, 1, []int{5, 6, 7, 8, 9}},
		{2026, 7, []int{31, 32, 33, 34, 35, 36}},
		{2027, 1, []int{5, 6, 7, 8}},
	}
	for _, tt := range tests {
		got := WeeksInMonth(tt.year, tt.month)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("WeeksInMonth(%d, %d) = %v, want %v", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestOrderedWeekdays(t *testing.T) {
	mon := OrderedWeekdays(Monday)
	if mon[0] != time.Monday || mon[6] != time.Sunday {
		t.Fatalf("monday order = %v", mon)
	}
	sun := OrderedWeekdays(Sunday)
	if sun[0] != time.Sunday || sun[6] != time.Saturday {
		t.Fatalf("sunday order = %v", sun)
	}
}

func TestParseWeekStart(t *testing.T) {
	for in, want := range map[string]WeekStart{"monday": Monday, "Sunday": Sunday, " SUN ": Sunday, "1": Monday} {
		got, err := ParseWeekStart(in)
		if err != nil || got != want {
			t.Errorf("ParseWeekStart(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseWeekStart("friday"); err == nil {
		t.Fatalf("expected error for friday")
	}
}
