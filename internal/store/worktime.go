package store

import (
	"math"
	"time"

	"github.com/taskflow/taskflow/internal/domain/timeentry"
)

const (
	dateKeyLayout = "2006-01-02"

	// Hard cap on worktime series length.
	maxSeriesDays = 14
)

// AddTimeEntry appends a tracked-time record for the caller. Entries are
// never updated or deleted.
func (s *Store) AddTimeEntry(userID string, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntry, error) {
	var e timeentry.TimeEntry

	err := s.observe("timeentry_create", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		e = timeentry.TimeEntry{
			ID:        newID(),
			UserID:    userID,
			Date:      req.Date,
			Minutes:   int(math.Round(req.Minutes)),
			ProjectID: req.ProjectID,
			TaskID:    req.TaskID,
		}

		s.entries = append(s.entries, e)
		s.rev++

		return nil
	})

	return e, err
}

// WorktimeSeries buckets the caller's tracked minutes into one entry per day
// over [start, start+days). Days is clamped to [1, 14]; an empty or
// unparseable start falls back to today. Gaps are zero-filled.
func (s *Store) WorktimeSeries(userID, start string, days int) []timeentry.Bucket {
	if days < 1 {
		days = 1
	}
	if days > maxSeriesDays {
		days = maxSeriesDays
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	startDay, err := time.ParseInLocation(dateKeyLayout, start, time.UTC)
	if err != nil {
		startDay = s.now().UTC().Truncate(24 * time.Hour)
	}

	buckets := make([]timeentry.Bucket, 0, days)
	index := make(map[string]int, days)

	for i := 0; i < days; i++ {
		key := startDay.AddDate(0, 0, i).Format(dateKeyLayout)
		index[key] = len(buckets)
		buckets = append(buckets, timeentry.Bucket{Date: key})
	}

	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		if i, ok := index[e.Date]; ok {
			buckets[i].Minutes += e.Minutes
		}
	}

	return buckets
}
