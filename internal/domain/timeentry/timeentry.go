package timeentry

// TimeEntry is an append-only record of tracked minutes. Date is a
// day-granularity key in YYYY-MM-DD form.
type TimeEntry struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	Minutes   int    `json:"minutes"`
	ProjectID string `json:"projectId,omitempty"`
	TaskID    string `json:"taskId,omitempty"`
}

// Bucket is one day of the worktime series.
type Bucket struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

type CreateTimeEntryRequest struct {
	Date      string  `json:"date" binding:"required,datetime=2006-01-02"`
	Minutes   float64 `json:"minutes" binding:"required,gt=0"`
	ProjectID string  `json:"projectId" binding:"omitempty"`
	TaskID    string  `json:"taskId" binding:"omitempty"`
}
