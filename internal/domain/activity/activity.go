package activity

import "time"

// Action values recorded in the log.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Entity values recorded in the log.
const (
	EntityProject = "project"
	EntityTask    = "task"
)

// Activity is one entry of the append-only change log.
type Activity struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedItem is the API shape of one activity feed row.
type FeedItem struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Activity string    `json:"activity"`
	Time     time.Time `json:"time"`
}
