package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/taskflow/taskflow/internal/domain/timeentry"
	"github.com/taskflow/taskflow/internal/http/handlers"
)

type fakeWorktimeStore struct {
	addFn    func(userID string, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntry, error)
	seriesFn func(userID, start string, days int) []timeentry.Bucket
}

func (f *fakeWorktimeStore) AddTimeEntry(userID string, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntry, error) {
	if f.addFn != nil {
		return f.addFn(userID, req)
	}

	return timeentry.TimeEntry{}, nil
}

func (f *fakeWorktimeStore) WorktimeSeries(userID, start string, days int) []timeentry.Bucket {
	if f.seriesFn != nil {
		return f.seriesFn(userID, start, days)
	}

	return []timeentry.Bucket{}
}

func TestGetWorktimeSeriesHandler(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		wantDays       int
		wantStart      string
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "defaults",
			url:            "/worktime",
			wantDays:       7,
			wantStart:      "",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "explicit_params",
			url:            "/worktime?start=2024-03-01&days=14",
			wantDays:       14,
			wantStart:      "2024-03-01",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "days_not_integer",
			url:            "/worktime?days=soon",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "days must be an integer",
		},
		{
			name: "oversized_days_passed_to_store",
			url:  "/worktime?days=99",
			// the store clamps, not the handler
			wantDays:       99,
			wantStart:      "",
			wantStatusCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			var gotStart string
			var gotDays int

			store := &fakeWorktimeStore{
				seriesFn: func(userID, start string, days int) []timeentry.Bucket {
					gotStart = start
					gotDays = days

					return []timeentry.Bucket{{Date: "2024-03-01", Minutes: 30}}
				},
			}

			h := handlers.NewWorktimeHandler(store)
			r := setupAuthedRouter(http.MethodGet, "/worktime", h.GetSeries)

			w := doJSON(r, http.MethodGet, tt.url, "", true)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantError != "" {
				if errorBody(t, w) != tt.wantError {
					t.Fatalf("got error %q, want %q", errorBody(t, w), tt.wantError)
				}
				return
			}

			if gotDays != tt.wantDays || gotStart != tt.wantStart {
				t.Fatalf("store called with start=%q days=%d, want start=%q days=%d", gotStart, gotDays, tt.wantStart, tt.wantDays)
			}
		})
	}
}

func TestAddTimeEntryHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{
			name:           "success",
			body:           `{"date": "2024-03-01", "minutes": 45}`,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "zero_minutes",
			body:           `{"date": "2024-03-01", "minutes": 0}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "negative_minutes",
			body:           `{"date": "2024-03-01", "minutes": -10}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "bad_date",
			body:           `{"date": "March 1st", "minutes": 45}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing_date",
			body:           `{"minutes": 45}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			store := &fakeWorktimeStore{
				addFn: func(userID string, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntry, error) {
					return timeentry.TimeEntry{ID: "e1", UserID: userID, Date: req.Date, Minutes: int(req.Minutes)}, nil
				},
			}

			h := handlers.NewWorktimeHandler(store)
			r := setupAuthedRouter(http.MethodPost, "/worktime", h.AddEntry)

			w := doJSON(r, http.MethodPost, "/worktime", tt.body, true)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantStatusCode == http.StatusCreated {
				var entry timeentry.TimeEntry

				if err := json.Unmarshal(w.Body.Bytes(), &entry); err != nil {
					t.Fatalf("bad body: %v", err)
				}

				if entry.UserID != testUserID {
					t.Fatalf("entry recorded for %q, want %q", entry.UserID, testUserID)
				}
			}
		})
	}
}
