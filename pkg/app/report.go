package app

import (
	"sort"

	"tableflip.dev/calprint/pkg/calendar"
)

// ReportItem is one note in a report.
type ReportItem struct {
	Key   string `json:"key" yaml:"key"`
	Hour  int    `json:"hour" yaml:"hour"` // -1 for day notes
	Index int    `json:"index" yaml:"index"`
	Text  string `json:"text" yaml:"text"`
}

// ReportSection groups a report's notes by day.
type ReportSection struct {
	Date    calendar.Date `json:"date" yaml:"date"`
	Title   string        `json:"title" yaml:"title"`
	Entries []ReportItem  `json:"entries" yaml:"entries"`
}

// ReportResult is the agenda for an inclusive range of days.
type ReportResult struct {
	Since    calendar.Date   `json:"since" yaml:"since"`
	Until    calendar.Date   `json:"until" yaml:"until"`
	Sections []ReportSection `json:"sections" yaml:"sections"`
	Total    int             `json:"total" yaml:"total"`
}

// Report returns the notes between since and until, both inclusive, grouped
// by day. Day notes come before the day's time slots, and slots are in hour
// order. Keys that are not valid dates are skipped.
func (s *Service) Report(since, until calendar.Date) (ReportResult, error) {
	if s.Index == nil {
		return ReportResult{}, ErrNoIndex
	}
	if until.Before(since) {
		since, until = until, since
	}
	for _, y := range []int{since.Year(), until.Year()} {
		if err := s.checkYear(y); err != nil {
			return ReportResult{}, err
		}
	}

	grouped := make(map[calendar.Date][]ReportItem)
	total := 0
	// Keys sort as DateKey < DateKeyTHH:00, which is the order we want.
	for _, key := range s.Index.Keys() {
		d, hour, ok := splitKey(key)
		if !ok || d.Before(since) || until.Before(d) {
			continue
		}
		for i, text := range s.Index.Get(key) {
			grouped[d] = append(grouped[d], ReportItem{Key: key, Hour: hour, Index: i, Text: text})
			total++
		}
	}

	days := make([]calendar.Date, 0, len(grouped))
	for d := range grouped {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	sections := make([]ReportSection, 0, len(days))
	for _, d := range days {
		sections = append(sections, ReportSection{
			Date:    d,
			Title:   formatDate(d),
			Entries: grouped[d],
		})
	}
	return ReportResult{Since: since, Until: until, Sections: sections, Total: total}, nil
}

func splitKey(key string) (calendar.Date, int, bool) {
	if d, err := calendar.ParseDateKey(key); err == nil {
		return d, -1, true
	}
	if d, hour, err := calendar.ParseTimeSlotKey(key); err == nil {
		return d, hour, true
	}
	return calendar.Date{}, 0, false
}
