// Package mcp provides the Model Context Protocol server for calendar notes.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tableflip.dev/calprint/pkg/app"
	"tableflip.dev/calprint/pkg/calendar"
	"tableflip.dev/calprint/pkg/timeutil"
)

// Service serializes MCP requests onto the calendar service.
type Service struct {
	mu  sync.Mutex
	app *app.Service
}

// KeyNotes is every note under one key with a readable label.
type KeyNotes struct {
	Key   string   `json:"key"`
	Label string   `json:"label"`
	Notes []string `json:"notes"`
	Count int      `json:"count"`
}

// Note is a single note and its position under its key.
type Note struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// NewService wraps the calendar service.
func NewService(svc *app.Service) *Service {
	return &Service{app: svc}
}

func (s *Service) ready() error {
	if s.app == nil {
		return errors.New("calendar service is not configured")
	}
	return nil
}

func keyNotes(key string, notes []string) KeyNotes {
	if notes == nil {
		notes = []string{}
	}
	return KeyNotes{Key: key, Label: app.FormatKey(key), Notes: notes, Count: len(notes)}
}

// ListNotes returns every key with notes in key order.
func (s *Service) ListNotes(ctx context.Context) ([]KeyNotes, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.app.AllNotes()
	if err != nil {
		return nil, err
	}
	out := make([]KeyNotes, 0, len(all))
	for _, kn := range all {
		out = append(out, keyNotes(kn.Key, kn.Notes))
	}
	return out, nil
}

// Notes returns the notes of a day or time slot. The key accepts the same
// forms as the command line, such as "today 09".
func (s *Service) Notes(ctx context.Context, input string) (KeyNotes, error) {
	if err := s.ready(); err != nil {
		return KeyNotes{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := s.app.ResolveKey(input)
	if err != nil {
		return KeyNotes{}, err
	}
	notes, err := s.app.Notes(key)
	if err != nil {
		return KeyNotes{}, err
	}
	return keyNotes(key, notes), nil
}

// AddNote appends a note.
func (s *Service) AddNote(ctx context.Context, input, text string) (Note, error) {
	if err := s.ready(); err != nil {
		return Note{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := s.app.ResolveKey(input)
	if err != nil {
		return Note{}, err
	}
	i, err := s.app.AddNote(key, text)
	if err != nil {
		return Note{}, err
	}
	return s.noteAt(key, i)
}

// EditNote replaces the note at index.
func (s *Service) EditNote(ctx context.Context, input string, index int, text string) (Note, error) {
	if err := s.ready(); err != nil {
		return Note{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := s.app.ResolveKey(input)
	if err != nil {
		return Note{}, err
	}
	if err := s.app.EditNote(key, index, text); err != nil {
		return Note{}, err
	}
	return s.noteAt(key, index)
}

// DeleteNote removes the note at index and returns what is left.
func (s *Service) DeleteNote(ctx context.Context, input string, index int) (KeyNotes, error) {
	if err := s.ready(); err != nil {
		return KeyNotes{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := s.app.ResolveKey(input)
	if err != nil {
		return KeyNotes{}, err
	}
	if err := s.app.DeleteNote(key, index); err != nil {
		return KeyNotes{}, err
	}
	notes, err := s.app.Notes(key)
	if err != nil {
		return KeyNotes{}, err
	}
	return keyNotes(key, notes), nil
}

func (s *Service) noteAt(key string, index int) (Note, error) {
	notes, err := s.app.Notes(key)
	if err != nil {
		return Note{}, err
	}
	if index < 0 || index >= len(notes) {
		return Note{}, fmt.Errorf("%w: %s #%d", app.ErrNoteNotFound, key, index)
	}
	return Note{Key: key, Label: app.FormatKey(key), Index: index, Text: notes[index]}, nil
}

// Month returns the month grid for "YYYY-MM", or the current month.
func (s *Service) Month(ctx context.Context, month string) (app.MonthView, error) {
	if err := s.ready(); err != nil {
		return app.MonthView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	year, m, err := s.app.ParseMonth(month)
	if err != nil {
		return app.MonthView{}, err
	}
	return s.app.MonthView(year, m)
}

// Week returns the week containing on ("YYYY-MM-DD" or "today"), or ISO
// week of year when on is empty. A zero week means the current week.
func (s *Service) Week(ctx context.Context, year, week int, on string) (app.WeekView, error) {
	if err := s.ready(); err != nil {
		return app.WeekView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if on != "" {
		key, err := s.app.ResolveKey(on)
		if err != nil {
			return app.WeekView{}, err
		}
		d, err := calendar.ParseDateKey(key)
		if err != nil {
			return app.WeekView{}, fmt.Errorf("week needs a date, got %q", on)
		}
		return s.app.WeekViewOn(d)
	}
	if week == 0 {
		return s.app.WeekViewOn(s.app.Today())
	}
	if year == 0 {
		year, _ = calendar.ISOWeek(s.app.Today())
	}
	return s.app.WeekView(year, week)
}

// Agenda returns the notes from from ("YYYY-MM-DD", empty for today) over a
// span such as "1w" or "3d".
func (s *Service) Agenda(ctx context.Context, from, span string) (app.ReportResult, error) {
	if err := s.ready(); err != nil {
		return app.ReportResult{}, err
	}
	days, _, err := timeutil.ParseSpan(span)
	if err != nil {
		return app.ReportResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.app.Today()
	if from != "" {
		key, err := s.app.ResolveKey(from)
		if err != nil {
			return app.ReportResult{}, err
		}
		if start, err = calendar.ParseDateKey(key); err != nil {
			return app.ReportResult{}, fmt.Errorf("agenda needs a date, got %q", from)
		}
	}
	return s.app.Report(start, start.AddDays(days-1))
}
