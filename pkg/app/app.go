package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/calprint/pkg/calendar"
	"tableflip.dev/calprint/pkg/events"
)

// Service joins the calendar grids with the notes index so the printers, the
// CLI and the TUI share one view of the calendar.
type Service struct {
	Index   *events.Index
	Options calendar.Options
	Clock   calendar.Clock
}

var (
	ErrNoIndex         = errors.New("app: no notes index configured")
	ErrYearOutOfRange  = errors.New("app: year out of range")
	ErrHourOutOfRange  = errors.New("app: hour out of range")
	ErrWeekOutOfRange  = errors.New("app: week out of range")
	ErrNoteNotFound    = errors.New("app: note not found")
	ErrEmptyNote       = errors.New("app: note text is empty")
	ErrInvalidKey      = calendar.ErrInvalidKey
	ErrInvalidMonthArg = errors.New("app: month must be YYYY-MM")
)

// New returns a Service with the system clock.
func New(idx *events.Index, opts calendar.Options) *Service {
	return &Service{Index: idx, Options: opts, Clock: calendar.SystemClock{}}
}

// Today returns the clock's date.
func (s *Service) Today() calendar.Date {
	if s.Clock == nil {
		return calendar.SystemClock{}.Today()
	}
	return s.Clock.Today()
}

// NewView opens the current month with the configured week start.
func (s *Service) NewView() calendar.View {
	return calendar.NewView(s.Today(), s.Options.WeekStart)
}

func (s *Service) checkYear(year int) error {
	if !s.Options.InYearRange(year) {
		return fmt.Errorf("%w: %d not in %d..%d", ErrYearOutOfRange, year, s.Options.YearRangeStart, s.Options.YearRangeEnd)
	}
	return nil
}

// ResolveKey turns user input into a DateKey or TimeSlotKey. Accepted forms
// are "today", "today HH", "YYYY-MM-DD", "YYYY-MM-DD HH" and
// "YYYY-MM-DDTHH:00". Time slots must fall inside the configured hours.
func (s *Service) ResolveKey(input string) (string, error) {
	input = strings.TrimSpace(input)
	datePart, hourPart := input, ""
	if i := strings.IndexByte(input, ' '); i >= 0 {
		datePart, hourPart = input[:i], strings.TrimSpace(input[i+1:])
	} else if len(input) > 10 && input[10] == 'T' {
		datePart, hourPart = input[:10], input[11:]
	}

	var d calendar.Date
	if strings.EqualFold(datePart, "today") {
		d = s.Today()
	} else {
		parsed, err := calendar.ParseDateKey(datePart)
		if err != nil {
			return "", err
		}
		d = parsed
	}
	if err := s.checkYear(d.Year()); err != nil {
		return "", err
	}
	if hourPart == "" {
		return calendar.DateKey(d), nil
	}

	hour, err := parseHour(hourPart)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, input)
	}
	return s.SlotKey(d, hour)
}

// SlotKey builds the TimeSlotKey for hour on d.
func (s *Service) SlotKey(d calendar.Date, hour int) (string, error) {
	if !s.Options.InHours(hour) {
		return "", fmt.Errorf("%w: %d not in %d..%d", ErrHourOutOfRange, hour, s.Options.HoursStart, s.Options.HoursEnd)
	}
	return calendar.TimeSlotKey(calendar.DateKey(d), hour), nil
}

// parseHour accepts "9", "09" and "09:00".
func parseHour(s string) (int, error) {
	s = strings.TrimSuffix(s, ":00")
	if len(s) == 0 || len(s) > 2 {
		return 0, errors.New("bad hour")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, errors.New("bad hour")
		}
	}
	return strconv.Atoi(s)
}

// ParseMonth parses YYYY-MM into a year and 0-based month. An empty string is
// the current month.
func (s *Service) ParseMonth(in string) (int, int, error) {
	if in == "" {
		today := s.Today()
		return today.Year(), today.MonthIndex(), nil
	}
	t, err := time.Parse("2006-01", in)
	if err != nil || t.Format("2006-01") != in {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonthArg, in)
	}
	if err := s.checkYear(t.Year()); err != nil {
		return 0, 0, err
	}
	return t.Year(), int(t.Month()) - 1, nil
}

// FormatKey renders a key for people, e.g. "Saturday 14 February 2026, 09:00".
func FormatKey(key string) string {
	if d, hour, err := calendar.ParseTimeSlotKey(key); err == nil {
		return fmt.Sprintf("%s, %s", formatDate(d), calendar.HourLabel(hour))
	}
	if d, err := calendar.ParseDateKey(key); err == nil {
		return formatDate(d)
	}
	return key
}

func formatDate(d calendar.Date) string {
	return fmt.Sprintf("%s %d %s %d", d.Weekday(), d.Day(), d.Month(), d.Year())
}

// Notes returns the notes at key.
func (s *Service) Notes(key string) ([]string, error) {
	if s.Index == nil {
		return nil, ErrNoIndex
	}
	return s.Index.Get(key), nil
}

// AddNote appends text at key and returns its position.
func (s *Service) AddNote(key, text string) (int, error) {
	if s.Index == nil {
		return 0, ErrNoIndex
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyNote
	}
	s.Index.Add(key, text)
	return len(s.Index.Get(key)) - 1, nil
}

// EditNote replaces the note at position index.
func (s *Service) EditNote(key string, index int, text string) error {
	if s.Index == nil {
		return ErrNoIndex
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyNote
	}
	if err := s.ensureNote(key, index); err != nil {
		return err
	}
	s.Index.Update(key, index, text)
	return nil
}

// DeleteNote removes the note at position index.
func (s *Service) DeleteNote(key string, index int) error {
	if s.Index == nil {
		return ErrNoIndex
	}
	if err := s.ensureNote(key, index); err != nil {
		return err
	}
	s.Index.Delete(key, index)
	return nil
}

func (s *Service) ensureNote(key string, index int) error {
	if n := len(s.Index.Get(key)); index < 0 || index >= n {
		return fmt.Errorf("%w: %s #%d", ErrNoteNotFound, key, index)
	}
	return nil
}

// KeyNotes is every note stored under one key.
type KeyNotes struct {
	Key   string   `json:"key" yaml:"key"`
	Notes []string `json:"notes" yaml:"notes"`
}

// AllNotes lists every key with notes in key order.
func (s *Service) AllNotes() ([]KeyNotes, error) {
	if s.Index == nil {
		return nil, ErrNoIndex
	}
	keys := s.Index.Keys()
	out := make([]KeyNotes, 0, len(keys))
	for _, k := range keys {
		out = append(out, KeyNotes{Key: k, Notes: s.Index.Get(k)})
	}
	return out, nil
}

// Reload re-reads notes changed outside this process.
func (s *Service) Reload() {
	if s.Index != nil {
		s.Index.Reload()
	}
}
